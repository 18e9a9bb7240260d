package records

import "time"

// Record es un evento de salud de una mascota. Con NextDueDate presente
// además funciona como recordatorio.
type Record struct {
	ID      string
	OwnerID string
	PetID   string

	Type Type
	Name string

	EventDate   string  // YYYY-MM-DD, obligatorio
	NextDueDate *string // YYYY-MM-DD

	SubType     string
	WeightValue *float64 // kg, solo type=weight
	DietAmount  *float64 // gramos, solo type=diet
	Note        string

	CreatedAt time.Time
	UpdatedAt time.Time
}
