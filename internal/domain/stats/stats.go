// Package stats calcula las estadísticas por mascota a partir de sus registros.
package stats

import (
	"sort"

	"pet-health/internal/domain/pets"
	"pet-health/internal/domain/records"
)

type WeightPoint struct {
	Date  string
	Value float64
}

type Stats struct {
	PetID   string
	PetName string
	Pet     pets.Pet

	TotalRecords     int
	VaccinationCount int
	DewormingCount   int

	LastVaccination *records.Record
	LastDeworming   *records.Record

	// WeightHistory va en orden ascendente de fecha (para la curva).
	WeightHistory []WeightPoint
	// CurrentWeight: proyección de la mascota, si no el último punto del historial.
	CurrentWeight *float64
}

// Compute es pura: no depende del orden en que lleguen recs.
func Compute(p pets.Pet, recs []records.Record) Stats {
	st := Stats{
		PetID:         p.ID,
		PetName:       p.Name,
		Pet:           p,
		TotalRecords:  len(recs),
		WeightHistory: []WeightPoint{},
	}

	weights := make([]records.Record, 0)
	for i := range recs {
		rec := recs[i]
		switch rec.Type {
		case records.TypeVaccination:
			st.VaccinationCount++
			st.LastVaccination = latest(st.LastVaccination, rec)
		case records.TypeDeworming:
			st.DewormingCount++
			st.LastDeworming = latest(st.LastDeworming, rec)
		case records.TypeWeight:
			if rec.WeightValue != nil {
				weights = append(weights, rec)
			}
		}
	}

	sort.SliceStable(weights, func(i, j int) bool {
		if weights[i].EventDate != weights[j].EventDate {
			return weights[i].EventDate < weights[j].EventDate
		}
		return weights[i].CreatedAt.Before(weights[j].CreatedAt)
	})
	for _, w := range weights {
		st.WeightHistory = append(st.WeightHistory, WeightPoint{Date: w.EventDate, Value: *w.WeightValue})
	}

	switch {
	case p.CurrentWeight != nil:
		v := *p.CurrentWeight
		st.CurrentWeight = &v
	case len(st.WeightHistory) > 0:
		v := st.WeightHistory[len(st.WeightHistory)-1].Value
		st.CurrentWeight = &v
	}
	return st
}

// latest: mayor event_date; en empate gana el creado después.
func latest(cur *records.Record, rec records.Record) *records.Record {
	if cur == nil ||
		rec.EventDate > cur.EventDate ||
		(rec.EventDate == cur.EventDate && rec.CreatedAt.After(cur.CreatedAt)) {
		return &rec
	}
	return cur
}
