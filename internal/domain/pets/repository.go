package pets

import (
	"context"
	"time"
)

// Repository filtra siempre por ownerID; una mascota ajena se comporta igual
// que una inexistente (apperr.ErrNotFound).
type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, ownerID, id string) (Pet, error)
	// ListByOwner ordena por creación descendente.
	ListByOwner(ctx context.Context, ownerID string) ([]Pet, error)
	// Update reemplaza todos los campos editables; ErrNotFound si no afecta filas.
	Update(ctx context.Context, p Pet) error
	// Delete borra los registros de la mascota y luego la mascota, ambos por owner.
	// No es error si no existe.
	Delete(ctx context.Context, ownerID, id string) error
	SetCurrentWeight(ctx context.Context, ownerID, id string, weight float64, updatedAt time.Time) error
}
