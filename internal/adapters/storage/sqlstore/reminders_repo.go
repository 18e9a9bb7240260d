package sqlstore

import (
	"context"

	"github.com/pkg/errors"

	"pet-health/internal/domain/records"
	"pet-health/internal/domain/reminders"
)

type RemindersRepo struct {
	c conn
}

func NewRemindersRepo(db *DB) *RemindersRepo {
	return &RemindersRepo{c: db.conn()}
}

func (r *RemindersRepo) ListDue(ctx context.Context, ownerID, until string) ([]reminders.Due, error) {
	query := `
		SELECT r.id, r.pet_id, p.name, p.species, r.type, r.name, r.sub_type,
			r.event_date, r.next_due_date, r.note
		FROM records r
		JOIN pets p ON p.id = r.pet_id AND p.owner_id = r.owner_id
		WHERE r.owner_id = ? AND r.next_due_date IS NOT NULL`
	args := []any{ownerID}
	if until != "" {
		query += ` AND r.next_due_date <= ?`
		args = append(args, until)
	}
	query += ` ORDER BY r.next_due_date ASC, r.created_at ASC`

	rows, err := r.c.query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list due records")
	}
	defer rows.Close()

	out := make([]reminders.Due, 0)
	for rows.Next() {
		var (
			d   reminders.Due
			typ string
		)
		if err := rows.Scan(
			&d.RecordID,
			&d.PetID,
			&d.PetName,
			&d.PetSpecies,
			&typ,
			&d.Name,
			&d.SubType,
			&d.EventDate,
			&d.NextDueDate,
			&d.Note,
		); err != nil {
			return nil, errors.Wrap(err, "scan due record")
		}
		d.Type = records.Type(typ)
		out = append(out, d)
	}
	return out, errors.Wrap(rows.Err(), "iterate due records")
}
