package reminders

import "context"

type Repository interface {
	// ListDue devuelve los registros del dueño con next_due_date no nula,
	// ordenados por next_due_date asc. until vacío = sin horizonte; si no,
	// solo next_due_date <= until.
	ListDue(ctx context.Context, ownerID, until string) ([]Due, error)
}
