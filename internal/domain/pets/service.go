package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-health/internal/platform/apperr"
	"pet-health/internal/platform/dates"
	"pet-health/internal/platform/validation"
)

const msgPetNotFound = "pet not found"

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Input es el conjunto completo de campos editables. Update es un reemplazo
// total: un campo omitido vuelve a su default (o a vacío).
type Input struct {
	Name      string   `json:"name" validate:"required,max=64"`
	Species   Species  `json:"species" validate:"omitempty,oneof=cat dog other"`
	Breed     string   `json:"breed" validate:"max=64"`
	BirthDate string   `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Sex       Sex      `json:"sex" validate:"omitempty,oneof=male female"`
	Weight    *float64 `json:"weight" validate:"omitempty,gt=0"`
}

func (in Input) normalize() Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Species = Species(strings.ToLower(strings.TrimSpace(string(in.Species))))
	in.Breed = strings.TrimSpace(in.Breed)
	in.BirthDate = strings.TrimSpace(in.BirthDate)
	in.Sex = Sex(strings.ToLower(strings.TrimSpace(string(in.Sex))))
	return in
}

func (in Input) validate() (Input, error) {
	in = in.normalize()
	if in.Name == "" {
		return in, apperr.Validation("name is required")
	}
	if err := validation.Struct(in); err != nil {
		return in, err
	}
	if in.Species == "" {
		in.Species = SpeciesCat
	}
	if in.Sex == "" {
		in.Sex = SexMale
	}
	return in, nil
}

func (in Input) birthDate() *string {
	if in.BirthDate == "" {
		return nil
	}
	d, err := dates.Parse(in.BirthDate)
	if err != nil {
		return nil
	}
	return &d
}

func (s *Service) Create(ctx context.Context, ownerID string, in Input) (Pet, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Pet{}, apperr.Unauthenticated("missing user identifier")
	}
	in, err := in.validate()
	if err != nil {
		return Pet{}, err
	}

	now := s.now()
	p := Pet{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		Name:          in.Name,
		Species:       in.Species,
		Breed:         in.Breed,
		Sex:           in.Sex,
		BirthDate:     in.birthDate(),
		CurrentWeight: in.Weight,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Get devuelve "pet not found" tanto si no existe como si es de otro dueño.
func (s *Service) Get(ctx context.Context, ownerID, id string) (Pet, error) {
	p, err := s.repo.GetByID(ctx, ownerID, strings.TrimSpace(id))
	if err != nil {
		return Pet{}, notFound(err)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, ownerID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Update reemplaza todos los campos. Una mascota ajena o inexistente es
// "pet not found" (no un no-op silencioso).
func (s *Service) Update(ctx context.Context, ownerID, id string, in Input) (Pet, error) {
	in, err := in.validate()
	if err != nil {
		return Pet{}, err
	}

	current, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return Pet{}, err
	}

	current.Name = in.Name
	current.Species = in.Species
	current.Breed = in.Breed
	current.Sex = in.Sex
	current.BirthDate = in.birthDate()
	current.CurrentWeight = in.Weight
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Pet{}, notFound(err)
	}
	return current, nil
}

// Delete es idempotente: borrar algo inexistente o ajeno no falla.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.Delete(ctx, ownerID, strings.TrimSpace(id))
}

func notFound(err error) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NotFound(msgPetNotFound)
	}
	return err
}
