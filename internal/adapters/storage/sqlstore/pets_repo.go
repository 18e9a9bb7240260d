package sqlstore

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/pkg/errors"

	"pet-health/internal/domain/pets"
	"pet-health/internal/platform/apperr"
)

// PetsRepo puede estar ligado al pool (db != nil) o a una transacción en curso.
type PetsRepo struct {
	c  conn
	db *sql.DB
}

func NewPetsRepo(db *DB) *PetsRepo {
	return &PetsRepo{c: db.conn(), db: db.sql}
}

const petColumns = `id, owner_id, name, species, breed, birth_date, sex, current_weight, created_at, updated_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.c.exec(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.ID,
		p.OwnerID,
		p.Name,
		string(p.Species),
		p.Breed,
		nullString(p.BirthDate),
		string(p.Sex),
		nullFloat(p.CurrentWeight),
		formatTime(p.CreatedAt),
		formatTime(p.UpdatedAt),
	)
	return errors.Wrap(err, "insert pet")
}

func (r *PetsRepo) GetByID(ctx context.Context, ownerID, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, apperr.ErrNotFound
	}

	row := r.c.queryRow(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = ? AND owner_id = ?
	`, id, ownerID)

	p, err := scanPet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return pets.Pet{}, apperr.ErrNotFound
	}
	return p, err
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerID string) ([]pets.Pet, error) {
	rows, err := r.c.query(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE owner_id = ?
		ORDER BY created_at DESC, id DESC
	`, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "list pets")
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, errors.Wrap(rows.Err(), "iterate pets")
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.c.exec(ctx, `
		UPDATE pets
		SET
			name = ?,
			species = ?,
			breed = ?,
			birth_date = ?,
			sex = ?,
			current_weight = ?,
			updated_at = ?
		WHERE id = ? AND owner_id = ?
	`,
		p.Name,
		string(p.Species),
		p.Breed,
		nullString(p.BirthDate),
		string(p.Sex),
		nullFloat(p.CurrentWeight),
		formatTime(p.UpdatedAt),
		p.ID,
		p.OwnerID,
	)
	if err != nil {
		return errors.Wrap(err, "update pet")
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// Delete borra registros y mascota en una transacción (o en la que ya está
// en curso). Ambas sentencias filtran por owner_id.
func (r *PetsRepo) Delete(ctx context.Context, ownerID, id string) error {
	if r.db == nil {
		return deletePet(ctx, r.c, ownerID, id)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin delete pet")
	}
	defer func() { _ = tx.Rollback() }()

	if err := deletePet(ctx, conn{q: tx, driver: r.c.driver}, ownerID, id); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(), "commit delete pet")
}

func deletePet(ctx context.Context, c conn, ownerID, id string) error {
	if _, err := c.exec(ctx, `DELETE FROM records WHERE pet_id = ? AND owner_id = ?`, id, ownerID); err != nil {
		return errors.Wrap(err, "delete pet records")
	}
	if _, err := c.exec(ctx, `DELETE FROM pets WHERE id = ? AND owner_id = ?`, id, ownerID); err != nil {
		return errors.Wrap(err, "delete pet")
	}
	return nil
}

func (r *PetsRepo) SetCurrentWeight(ctx context.Context, ownerID, id string, weight float64, updatedAt time.Time) error {
	res, err := r.c.exec(ctx, `
		UPDATE pets SET current_weight = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?
	`, weight, formatTime(updatedAt), id, ownerID)
	if err != nil {
		return errors.Wrap(err, "set current weight")
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(s rowScanner) (pets.Pet, error) {
	var (
		p                    pets.Pet
		species, sex         string
		birthDate            sql.NullString
		weight               sql.NullFloat64
		createdAt, updatedAt string
	)
	if err := s.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&species,
		&p.Breed,
		&birthDate,
		&sex,
		&weight,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, err
		}
		return pets.Pet{}, errors.Wrap(err, "scan pet")
	}

	p.Species = pets.Species(species)
	p.Sex = pets.Sex(sex)
	p.BirthDate = fromNullString(birthDate)
	p.CurrentWeight = fromNullFloat(weight)

	var err error
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return pets.Pet{}, err
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}
