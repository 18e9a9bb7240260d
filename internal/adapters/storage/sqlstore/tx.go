package sqlstore

import (
	"context"

	"github.com/pkg/errors"

	"pet-health/internal/domain/pets"
	"pet-health/internal/domain/records"
)

// TxManager implementa records.TxManager.
type TxManager struct {
	db *DB
}

func NewTxManager(db *DB) *TxManager {
	return &TxManager{db: db}
}

type txRepos struct {
	pets    *PetsRepo
	records *RecordsRepo
}

func (t txRepos) Pets() pets.Repository       { return t.pets }
func (t txRepos) Records() records.Repository { return t.records }

// Execute: commit si fn devuelve nil; cualquier error (o panic) hace rollback.
// El error de fn se devuelve sin envolver para conservar su categoría.
func (m *TxManager) Execute(ctx context.Context, fn func(records.Repositories) error) error {
	tx, err := m.db.sql.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer func() { _ = tx.Rollback() }()

	c := conn{q: tx, driver: m.db.driver}
	repos := txRepos{
		pets:    &PetsRepo{c: c},
		records: &RecordsRepo{c: c},
	}
	if err := fn(repos); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(), "commit tx")
}
