package owners

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, o Owner) error
	// GetByOpenID devuelve apperr.ErrNotFound si no existe.
	GetByOpenID(ctx context.Context, openID string) (Owner, error)
	GetByID(ctx context.Context, id string) (Owner, error)
	UpdateNickname(ctx context.Context, id, nickname string, updatedAt time.Time) error
}
