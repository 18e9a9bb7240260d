package export

import (
	"context"
	"time"

	"pet-health/internal/domain/pets"
	"pet-health/internal/domain/records"
)

type PetLister interface {
	List(ctx context.Context, ownerID string) ([]pets.Pet, error)
}

type RecordLister interface {
	List(ctx context.Context, ownerID, petID, typ string) ([]records.Record, error)
}

type Service struct {
	pets    PetLister
	records RecordLister
	now     func() time.Time
}

func NewService(p PetLister, r RecordLister) *Service {
	return &Service{pets: p, records: r, now: time.Now}
}

func (s *Service) ForOwner(ctx context.Context, ownerID string) (Export, error) {
	ps, err := s.pets.List(ctx, ownerID)
	if err != nil {
		return Export{}, err
	}
	recs, err := s.records.List(ctx, ownerID, "", "")
	if err != nil {
		return Export{}, err
	}
	return Build(ps, recs, s.now()), nil
}
