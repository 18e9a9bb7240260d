package stats

import (
	"context"

	"pet-health/internal/domain/pets"
	"pet-health/internal/domain/records"
)

type PetGetter interface {
	Get(ctx context.Context, ownerID, id string) (pets.Pet, error)
}

type RecordLister interface {
	List(ctx context.Context, ownerID, petID, typ string) ([]records.Record, error)
}

type Service struct {
	pets    PetGetter
	records RecordLister
}

func NewService(p PetGetter, r RecordLister) *Service {
	return &Service{pets: p, records: r}
}

// ForPet valida la propiedad de la mascota ("pet not found" si es ajena).
func (s *Service) ForPet(ctx context.Context, ownerID, petID string) (Stats, error) {
	p, err := s.pets.Get(ctx, ownerID, petID)
	if err != nil {
		return Stats{}, err
	}
	recs, err := s.records.List(ctx, ownerID, p.ID, "")
	if err != nil {
		return Stats{}, err
	}
	return Compute(p, recs), nil
}
