package sqlstore

import (
	"context"

	"github.com/pkg/errors"
)

// El esquema es compatible con SQLite y Postgres: ids uuid y fechas como TEXT,
// números como DOUBLE PRECISION. La FK con ON DELETE CASCADE existe, pero el
// borrado de una mascota igual borra sus registros explícitamente por owner.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS owners (
		id         TEXT PRIMARY KEY,
		open_id    TEXT NOT NULL UNIQUE,
		nickname   TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS pets (
		id             TEXT PRIMARY KEY,
		owner_id       TEXT NOT NULL REFERENCES owners(id),
		name           TEXT NOT NULL,
		species        TEXT NOT NULL DEFAULT 'cat',
		breed          TEXT NOT NULL DEFAULT '',
		birth_date     TEXT,
		sex            TEXT NOT NULL DEFAULT 'male',
		current_weight DOUBLE PRECISION,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_pets_owner ON pets (owner_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS records (
		id            TEXT PRIMARY KEY,
		owner_id      TEXT NOT NULL REFERENCES owners(id),
		pet_id        TEXT NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		type          TEXT NOT NULL,
		name          TEXT NOT NULL DEFAULT '',
		event_date    TEXT NOT NULL,
		next_due_date TEXT,
		sub_type      TEXT NOT NULL DEFAULT '',
		weight_value  DOUBLE PRECISION,
		diet_amount   DOUBLE PRECISION,
		note          TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_records_owner_pet ON records (owner_id, pet_id, event_date)`,
	`CREATE INDEX IF NOT EXISTS idx_records_owner_due ON records (owner_id, next_due_date)`,
}

// Migrate crea las tablas si no existen. Es idempotente.
func (d *DB) Migrate(ctx context.Context) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "sqlstore: begin migrate")
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "sqlstore: migrate")
		}
	}
	return errors.Wrap(tx.Commit(), "sqlstore: commit migrate")
}
