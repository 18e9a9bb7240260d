package pets

import "time"

// Species define las especies soportadas.
// @Enum cat, dog, other
type Species string

const (
	SpeciesCat   Species = "cat"
	SpeciesDog   Species = "dog"
	SpeciesOther Species = "other"
)

// Sex define el sexo de la mascota.
// @Enum male, female
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Pet representa una mascota de un único dueño.
type Pet struct {
	ID      string
	OwnerID string

	Name    string
	Species Species // cat (default), dog, other
	Breed   string
	Sex     Sex // male (default), female

	BirthDate *string // YYYY-MM-DD

	// CurrentWeight es una proyección: la pisa cada registro de peso nuevo,
	// si no conserva el último valor explícito.
	CurrentWeight *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
