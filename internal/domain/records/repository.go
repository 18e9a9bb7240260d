package records

import (
	"context"

	"pet-health/internal/domain/pets"
)

type Repository interface {
	Create(ctx context.Context, rec Record) error
	// List ordena por event_date desc y luego created_at desc.
	List(ctx context.Context, ownerID string, filter ListFilter) ([]Record, error)
	// Delete no falla si el registro no existe o es ajeno.
	Delete(ctx context.Context, ownerID, id string) error
}

type ListFilter struct {
	PetID string
	Type  Type
}

// Repositories expone los repos que participan de una misma transacción.
type Repositories interface {
	Pets() pets.Repository
	Records() Repository
}

// TxManager ejecuta fn dentro de una transacción: commit si fn devuelve nil,
// rollback en cualquier otro caso.
type TxManager interface {
	Execute(ctx context.Context, fn func(Repositories) error) error
}
