package sqlstore

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/pkg/errors"

	"pet-health/internal/domain/owners"
	"pet-health/internal/platform/apperr"
)

type OwnersRepo struct {
	c conn
}

func NewOwnersRepo(db *DB) *OwnersRepo {
	return &OwnersRepo{c: db.conn()}
}

const ownerColumns = `id, open_id, nickname, created_at, updated_at`

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) error {
	_, err := r.c.exec(ctx, `
		INSERT INTO owners (`+ownerColumns+`)
		VALUES (?, ?, ?, ?, ?)
	`,
		o.ID,
		o.OpenID,
		o.Nickname,
		formatTime(o.CreatedAt),
		formatTime(o.UpdatedAt),
	)
	return errors.Wrap(err, "insert owner")
}

func (r *OwnersRepo) GetByOpenID(ctx context.Context, openID string) (owners.Owner, error) {
	openID = strings.TrimSpace(openID)
	if openID == "" {
		return owners.Owner{}, apperr.ErrNotFound
	}
	row := r.c.queryRow(ctx, `SELECT `+ownerColumns+` FROM owners WHERE open_id = ?`, openID)
	return scanOwner(row)
}

func (r *OwnersRepo) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	row := r.c.queryRow(ctx, `SELECT `+ownerColumns+` FROM owners WHERE id = ?`, id)
	return scanOwner(row)
}

func (r *OwnersRepo) UpdateNickname(ctx context.Context, id, nickname string, updatedAt time.Time) error {
	res, err := r.c.exec(ctx, `
		UPDATE owners SET nickname = ?, updated_at = ?
		WHERE id = ?
	`, nickname, formatTime(updatedAt), id)
	if err != nil {
		return errors.Wrap(err, "update owner nickname")
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func scanOwner(row *sql.Row) (owners.Owner, error) {
	var (
		o                    owners.Owner
		createdAt, updatedAt string
	)
	if err := row.Scan(&o.ID, &o.OpenID, &o.Nickname, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return owners.Owner{}, apperr.ErrNotFound
		}
		return owners.Owner{}, errors.Wrap(err, "scan owner")
	}

	var err error
	if o.CreatedAt, err = parseTime(createdAt); err != nil {
		return owners.Owner{}, err
	}
	if o.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return owners.Owner{}, err
	}
	return o, nil
}
