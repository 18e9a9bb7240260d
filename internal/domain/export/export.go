// Package export arma el volcado completo de datos de un dueño.
package export

import (
	"sort"
	"time"

	"pet-health/internal/domain/pets"
	"pet-health/internal/domain/records"
)

type Export struct {
	ExportTime time.Time `json:"export_time"`
	Pets       []Pet     `json:"pets"`
	Summary    Summary   `json:"summary"`
}

type Pet struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Species       string    `json:"species"`
	Breed         string    `json:"breed"`
	BirthDate     *string   `json:"birth_date"`
	Sex           string    `json:"sex"`
	CurrentWeight *float64  `json:"current_weight"`
	CreatedAt     time.Time `json:"created_at"`
	Records       []Record  `json:"records"`
}

type Record struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Date        string   `json:"date"`
	NextDate    *string  `json:"next_date"`
	SubType     string   `json:"sub_type"`
	WeightValue *float64 `json:"weight_value"`
	DietAmount  *float64 `json:"diet_amount"`
	Note        string   `json:"note"`
}

type Summary struct {
	TotalPets        int `json:"total_pets"`
	TotalRecords     int `json:"total_records"`
	VaccinationCount int `json:"vaccination_count"`
	DewormingCount   int `json:"deworming_count"`
	WeightCount      int `json:"weight_count"`
	DietCount        int `json:"diet_count"`
}

// Build es pura. Mascotas por creación ascendente; registros de cada una por
// event_date ascendente. Registros sin mascota en ps no se exportan.
func Build(ps []pets.Pet, recs []records.Record, now time.Time) Export {
	ordered := append([]pets.Pet(nil), ps...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	byPet := make(map[string][]records.Record, len(ordered))
	for _, r := range recs {
		byPet[r.PetID] = append(byPet[r.PetID], r)
	}

	out := Export{
		ExportTime: now.UTC(),
		Pets:       make([]Pet, 0, len(ordered)),
	}
	out.Summary.TotalPets = len(ordered)

	for _, p := range ordered {
		prs := byPet[p.ID]
		sort.SliceStable(prs, func(i, j int) bool {
			if prs[i].EventDate != prs[j].EventDate {
				return prs[i].EventDate < prs[j].EventDate
			}
			return prs[i].CreatedAt.Before(prs[j].CreatedAt)
		})

		ep := Pet{
			ID:            p.ID,
			Name:          p.Name,
			Species:       string(p.Species),
			Breed:         p.Breed,
			BirthDate:     p.BirthDate,
			Sex:           string(p.Sex),
			CurrentWeight: p.CurrentWeight,
			CreatedAt:     p.CreatedAt,
			Records:       make([]Record, 0, len(prs)),
		}
		for _, r := range prs {
			ep.Records = append(ep.Records, Record{
				ID:          r.ID,
				Type:        string(r.Type),
				Name:        r.Name,
				Date:        r.EventDate,
				NextDate:    r.NextDueDate,
				SubType:     r.SubType,
				WeightValue: r.WeightValue,
				DietAmount:  r.DietAmount,
				Note:        r.Note,
			})
			out.Summary.count(r.Type)
		}
		out.Summary.TotalRecords += len(ep.Records)
		out.Pets = append(out.Pets, ep)
	}
	return out
}

func (s *Summary) count(t records.Type) {
	switch t {
	case records.TypeVaccination:
		s.VaccinationCount++
	case records.TypeDeworming:
		s.DewormingCount++
	case records.TypeWeight:
		s.WeightCount++
	case records.TypeDiet:
		s.DietCount++
	}
}
