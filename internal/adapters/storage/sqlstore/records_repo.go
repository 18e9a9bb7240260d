package sqlstore

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pkg/errors"

	"pet-health/internal/domain/records"
)

type RecordsRepo struct {
	c conn
}

func NewRecordsRepo(db *DB) *RecordsRepo {
	return &RecordsRepo{c: db.conn()}
}

const recordColumns = `id, owner_id, pet_id, type, name, event_date, next_due_date, sub_type, weight_value, diet_amount, note, created_at, updated_at`

func (r *RecordsRepo) Create(ctx context.Context, rec records.Record) error {
	_, err := r.c.exec(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.OwnerID,
		rec.PetID,
		string(rec.Type),
		rec.Name,
		rec.EventDate,
		nullString(rec.NextDueDate),
		rec.SubType,
		nullFloat(rec.WeightValue),
		nullFloat(rec.DietAmount),
		rec.Note,
		formatTime(rec.CreatedAt),
		formatTime(rec.UpdatedAt),
	)
	return errors.Wrap(err, "insert record")
}

func (r *RecordsRepo) List(ctx context.Context, ownerID string, filter records.ListFilter) ([]records.Record, error) {
	var (
		where = []string{"owner_id = ?"}
		args  = []any{ownerID}
	)
	if filter.PetID != "" {
		where = append(where, "pet_id = ?")
		args = append(args, filter.PetID)
	}
	if filter.Type != "" {
		where = append(where, "type = ?")
		args = append(args, string(filter.Type))
	}

	rows, err := r.c.query(ctx, `
		SELECT `+recordColumns+`
		FROM records
		WHERE `+strings.Join(where, " AND ")+`
		ORDER BY event_date DESC, created_at DESC
	`, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list records")
	}
	defer rows.Close()

	out := make([]records.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, errors.Wrap(rows.Err(), "iterate records")
}

func (r *RecordsRepo) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.c.exec(ctx, `DELETE FROM records WHERE id = ? AND owner_id = ?`, id, ownerID)
	return errors.Wrap(err, "delete record")
}

func scanRecord(s rowScanner) (records.Record, error) {
	var (
		rec                  records.Record
		typ                  string
		nextDue              sql.NullString
		weight, diet         sql.NullFloat64
		createdAt, updatedAt string
	)
	if err := s.Scan(
		&rec.ID,
		&rec.OwnerID,
		&rec.PetID,
		&typ,
		&rec.Name,
		&rec.EventDate,
		&nextDue,
		&rec.SubType,
		&weight,
		&diet,
		&rec.Note,
		&createdAt,
		&updatedAt,
	); err != nil {
		return records.Record{}, errors.Wrap(err, "scan record")
	}

	rec.Type = records.Type(typ)
	rec.NextDueDate = fromNullString(nextDue)
	rec.WeightValue = fromNullFloat(weight)
	rec.DietAmount = fromNullFloat(diet)

	var err error
	if rec.CreatedAt, err = parseTime(createdAt); err != nil {
		return records.Record{}, err
	}
	if rec.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return records.Record{}, err
	}
	return rec, nil
}
