package reminders

import "pet-health/internal/domain/records"

// Due es un registro con próxima fecha, ya unido con los datos de su mascota.
type Due struct {
	RecordID    string
	PetID       string
	PetName     string
	PetSpecies  string
	Type        records.Type
	Name        string
	SubType     string
	EventDate   string
	NextDueDate string
	Note        string
}

type Reminder struct {
	Due
	Classification
}
