package reminders

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"pet-health/internal/platform/dates"
)

const DefaultUpcomingDays = 14

type Service struct {
	repo        Repository
	defaultDays int
	loc         *time.Location
	now         func() time.Time
}

// NewService: defaultDays <= 0 usa DefaultUpcomingDays; loc define "hoy".
func NewService(repo Repository, defaultDays int, loc *time.Location) *Service {
	if defaultDays <= 0 {
		defaultDays = DefaultUpcomingDays
	}
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		repo:        repo,
		defaultDays: defaultDays,
		loc:         loc,
		now:         time.Now,
	}
}

func (s *Service) today() string {
	return dates.Today(s.now(), s.loc)
}

// All lista todos los recordatorios, el más urgente primero.
func (s *Service) All(ctx context.Context, ownerID string) ([]Reminder, error) {
	today := s.today()
	due, err := s.repo.ListDue(ctx, ownerID, "")
	if err != nil {
		return nil, err
	}
	return classifyAll(due, today)
}

// Upcoming lista los recordatorios con vencimiento hasta hoy+days (incluye
// vencidos). days <= 0 usa el default configurado.
func (s *Service) Upcoming(ctx context.Context, ownerID string, days int) ([]Reminder, error) {
	if days <= 0 {
		days = s.defaultDays
	}
	today := s.today()
	due, err := s.repo.ListDue(ctx, ownerID, dates.AddDays(today, days))
	if err != nil {
		return nil, err
	}
	return classifyAll(due, today)
}

func classifyAll(due []Due, today string) ([]Reminder, error) {
	out := make([]Reminder, 0, len(due))
	for _, d := range due {
		c, err := Classify(d.NextDueDate, today)
		if err != nil {
			// Las fechas se validan al escribir; una inválida acá es dato corrupto.
			return nil, errors.Wrapf(err, "classify record %s", d.RecordID)
		}
		out = append(out, Reminder{Due: d, Classification: c})
	}
	return out, nil
}
