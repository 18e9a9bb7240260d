package records

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-health/internal/platform/apperr"
	"pet-health/internal/platform/dates"
	"pet-health/internal/platform/validation"
)

type Service struct {
	repo Repository
	tx   TxManager
	loc  *time.Location
	now  func() time.Time
}

// NewService: loc define qué es "hoy" para la fecha por defecto del evento.
func NewService(repo Repository, tx TxManager, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		repo: repo,
		tx:   tx,
		loc:  loc,
		now:  time.Now,
	}
}

type Input struct {
	PetID       string   `json:"pet_id" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	Name        string   `json:"name" validate:"max=100"`
	EventDate   string   `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	NextDueDate string   `json:"next_due_date" validate:"omitempty,datetime=2006-01-02"`
	SubType     string   `json:"sub_type" validate:"max=32"`
	WeightValue *float64 `json:"weight_value" validate:"omitempty,gt=0"`
	DietAmount  *float64 `json:"diet_amount" validate:"omitempty,gt=0"`
	Note        string   `json:"note" validate:"max=500"`
}

func (in Input) normalize() Input {
	in.PetID = strings.TrimSpace(in.PetID)
	in.Type = strings.TrimSpace(in.Type)
	in.Name = strings.TrimSpace(in.Name)
	in.EventDate = strings.TrimSpace(in.EventDate)
	in.NextDueDate = strings.TrimSpace(in.NextDueDate)
	in.SubType = strings.ToLower(strings.TrimSpace(in.SubType))
	in.Note = strings.TrimSpace(in.Note)
	return in
}

// Create valida, verifica que la mascota sea del dueño y, si es un registro de
// peso con valor, actualiza la proyección Pet.CurrentWeight en la misma transacción.
func (s *Service) Create(ctx context.Context, ownerID string, in Input) (Record, error) {
	in = in.normalize()
	if err := validation.Struct(in); err != nil {
		return Record{}, err
	}

	typ, ok := ParseType(in.Type)
	if !ok {
		return Record{}, apperr.Validation(fmt.Sprintf("type must be one of: %s", joinTypes()))
	}
	if !validSubType(typ, in.SubType) {
		return Record{}, apperr.Validation(fmt.Sprintf("sub_type must be one of: %s", strings.Join(subTypes[typ], ", ")))
	}

	now := s.now()
	rec := Record{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		PetID:     in.PetID,
		Type:      typ,
		Name:      in.Name,
		EventDate: dates.Today(now, s.loc),
		SubType:   in.SubType,
		Note:      in.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.EventDate != "" {
		d, err := dates.Parse(in.EventDate)
		if err != nil {
			return Record{}, apperr.Validation("event_date must be YYYY-MM-DD")
		}
		rec.EventDate = d
	}
	if in.NextDueDate != "" {
		d, err := dates.Parse(in.NextDueDate)
		if err != nil {
			return Record{}, apperr.Validation("next_due_date must be YYYY-MM-DD")
		}
		rec.NextDueDate = &d
	}
	// Los valores numéricos solo tienen sentido para su tipo.
	switch typ {
	case TypeWeight:
		rec.WeightValue = in.WeightValue
	case TypeDiet:
		rec.DietAmount = in.DietAmount
	}

	err := s.tx.Execute(ctx, func(repos Repositories) error {
		if _, err := repos.Pets().GetByID(ctx, ownerID, rec.PetID); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return apperr.Validation("pet not found")
			}
			return err
		}

		if err := repos.Records().Create(ctx, rec); err != nil {
			return err
		}

		if rec.Type == TypeWeight && rec.WeightValue != nil {
			return repos.Pets().SetCurrentWeight(ctx, ownerID, rec.PetID, *rec.WeightValue, now)
		}
		return nil
	})
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// List acepta type vacío (todos) o cualquier tipo/alias válido.
func (s *Service) List(ctx context.Context, ownerID, petID, typ string) ([]Record, error) {
	filter := ListFilter{PetID: strings.TrimSpace(petID)}
	if strings.TrimSpace(typ) != "" {
		t, ok := ParseType(typ)
		if !ok {
			return nil, apperr.Validation(fmt.Sprintf("type must be one of: %s", joinTypes()))
		}
		filter.Type = t
	}
	return s.repo.List(ctx, ownerID, filter)
}

// Delete es idempotente. No recalcula Pet.CurrentWeight: la proyección
// conserva el último valor explícito.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperr.Validation("record id is required")
	}
	return s.repo.Delete(ctx, ownerID, id)
}

func joinTypes() string {
	out := make([]string, 0, len(AllTypes))
	for _, t := range AllTypes {
		out = append(out, string(t))
	}
	return strings.Join(out, ", ")
}
