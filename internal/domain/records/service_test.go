package records

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-health/internal/domain/pets"
	"pet-health/internal/platform/apperr"
)

// memStore implementa ambos repos y una "transacción" por snapshot.
type memStore struct {
	pets    map[string]pets.Pet
	records []Record

	failWeight bool
}

func newMemStore() *memStore { return &memStore{pets: map[string]pets.Pet{}} }

func (m *memStore) Pets() pets.Repository { return memPets{m} }
func (m *memStore) Records() Repository   { return memRecords{m} }

func (m *memStore) Execute(_ context.Context, fn func(Repositories) error) error {
	snapPets := make(map[string]pets.Pet, len(m.pets))
	for k, v := range m.pets {
		snapPets[k] = v
	}
	snapRecords := append([]Record(nil), m.records...)

	if err := fn(m); err != nil {
		m.pets = snapPets
		m.records = snapRecords
		return err
	}
	return nil
}

type memPets struct{ m *memStore }

func (p memPets) Create(_ context.Context, pet pets.Pet) error {
	p.m.pets[pet.ID] = pet
	return nil
}

func (p memPets) GetByID(_ context.Context, ownerID, id string) (pets.Pet, error) {
	pet, ok := p.m.pets[id]
	if !ok || pet.OwnerID != ownerID {
		return pets.Pet{}, apperr.ErrNotFound
	}
	return pet, nil
}

func (p memPets) ListByOwner(context.Context, string) ([]pets.Pet, error) { return nil, nil }
func (p memPets) Update(context.Context, pets.Pet) error                { return nil }
func (p memPets) Delete(context.Context, string, string) error          { return nil }

func (p memPets) SetCurrentWeight(_ context.Context, ownerID, id string, w float64, at time.Time) error {
	if p.m.failWeight {
		return errors.New("disk I/O error")
	}
	pet, ok := p.m.pets[id]
	if !ok || pet.OwnerID != ownerID {
		return apperr.ErrNotFound
	}
	pet.CurrentWeight = &w
	pet.UpdatedAt = at
	p.m.pets[id] = pet
	return nil
}

type memRecords struct{ m *memStore }

func (r memRecords) Create(_ context.Context, rec Record) error {
	r.m.records = append(r.m.records, rec)
	return nil
}

func (r memRecords) List(_ context.Context, ownerID string, f ListFilter) ([]Record, error) {
	out := []Record{}
	for _, rec := range r.m.records {
		if rec.OwnerID != ownerID {
			continue
		}
		if f.PetID != "" && rec.PetID != f.PetID {
			continue
		}
		if f.Type != "" && rec.Type != f.Type {
			continue
		}
		out = append(out, rec)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].EventDate != out[j].EventDate {
			return out[i].EventDate > out[j].EventDate
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r memRecords) Delete(_ context.Context, ownerID, id string) error {
	kept := r.m.records[:0]
	for _, rec := range r.m.records {
		if rec.ID == id && rec.OwnerID == ownerID {
			continue
		}
		kept = append(kept, rec)
	}
	r.m.records = kept
	return nil
}

var fixedNow = time.Date(2026, 2, 25, 10, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *memStore) {
	t.Helper()
	m := newMemStore()
	m.pets["pet-1"] = pets.Pet{ID: "pet-1", OwnerID: "owner-1", Name: "Mango", Species: pets.SpeciesCat}
	m.pets["pet-2"] = pets.Pet{ID: "pet-2", OwnerID: "owner-2", Name: "Rex", Species: pets.SpeciesDog}

	svc := NewService(m.Records(), m, time.UTC)
	svc.now = func() time.Time { return fixedNow }
	return svc, m
}

func ptr[T any](v T) *T { return &v }

func TestCreate_WeightUpdatesProjection(t *testing.T) {
	svc, m := newTestService(t)

	rec, err := svc.Create(context.Background(), "owner-1", Input{
		PetID: "pet-1", Type: "weight", EventDate: "2026-02-10", WeightValue: ptr(5.2),
	})
	require.NoError(t, err)
	assert.Equal(t, TypeWeight, rec.Type)
	assert.Equal(t, "2026-02-10", rec.EventDate)

	require.NotNil(t, m.pets["pet-1"].CurrentWeight)
	assert.Equal(t, 5.2, *m.pets["pet-1"].CurrentWeight)
}

func TestCreate_ProjectionFailureRollsBack(t *testing.T) {
	svc, m := newTestService(t)
	m.failWeight = true

	_, err := svc.Create(context.Background(), "owner-1", Input{PetID: "pet-1", Type: "weight", WeightValue: ptr(4.0)})
	require.Error(t, err)
	assert.Empty(t, m.records)
	assert.Nil(t, m.pets["pet-1"].CurrentWeight)
}

func TestCreate_Defaults(t *testing.T) {
	svc, m := newTestService(t)

	rec, err := svc.Create(context.Background(), "owner-1", Input{
		PetID: "pet-1", Type: "vaccine", Name: " Rabies ", NextDueDate: "2027-02-25", WeightValue: ptr(3.0),
	})
	require.NoError(t, err)

	assert.Equal(t, TypeVaccination, rec.Type)
	assert.Equal(t, "2026-02-25", rec.EventDate)
	assert.Equal(t, "Rabies", rec.Name)
	require.NotNil(t, rec.NextDueDate)
	assert.Equal(t, "2027-02-25", *rec.NextDueDate)
	assert.Nil(t, rec.WeightValue, "weight value only kept for weight records")
	assert.Nil(t, m.pets["pet-1"].CurrentWeight)
}

func TestCreate_Validation(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   Input
		want string
	}{
		{name: "missing pet", in: Input{Type: "weight"}, want: "pet_id is required"},
		{name: "missing type", in: Input{PetID: "pet-1"}, want: "type is required"},
		{name: "unknown type", in: Input{PetID: "pet-1", Type: "bath"}, want: "type must be one of: vaccination, deworming, weight, diet"},
		{name: "bad event date", in: Input{PetID: "pet-1", Type: "diet", EventDate: "25/02/2026"}, want: "event_date must be YYYY-MM-DD"},
		{name: "bad next date", in: Input{PetID: "pet-1", Type: "diet", NextDueDate: "2026-02-30"}, want: "next_due_date must be YYYY-MM-DD"},
		{name: "bad deworm sub type", in: Input{PetID: "pet-1", Type: "deworm", SubType: "oral"}, want: "sub_type must be one of: internal, external, both"},
		{name: "bad diet sub type", in: Input{PetID: "pet-1", Type: "diet", SubType: "raw"}, want: "sub_type must be one of: dry, wet, snack, homemade"},
		{name: "foreign pet", in: Input{PetID: "pet-2", Type: "weight"}, want: "pet not found"},
		{name: "missing pet row", in: Input{PetID: "nope", Type: "weight"}, want: "pet not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, "owner-1", tt.in)
			require.ErrorIs(t, err, apperr.ErrValidation)
			assert.EqualError(t, err, tt.want)
		})
	}
	assert.Empty(t, m.records)
}

func TestCreate_FreeFormSubType(t *testing.T) {
	svc, _ := newTestService(t)

	rec, err := svc.Create(context.Background(), "owner-1", Input{PetID: "pet-1", Type: "vaccination", SubType: "Triple"})
	require.NoError(t, err)
	assert.Equal(t, "triple", rec.SubType)
}

func TestList_FiltersAndOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	mk := func(typ, date string) {
		_, err := svc.Create(ctx, "owner-1", Input{PetID: "pet-1", Type: typ, EventDate: date})
		require.NoError(t, err)
	}
	mk("weight", "2026-01-01")
	mk("diet", "2026-02-01")
	mk("weight", "2026-01-15")

	all, err := svc.List(ctx, "owner-1", "", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2026-02-01", all[0].EventDate)
	assert.Equal(t, "2026-01-15", all[1].EventDate)
	assert.Equal(t, "2026-01-01", all[2].EventDate)

	weights, err := svc.List(ctx, "owner-1", "pet-1", "weight")
	require.NoError(t, err)
	assert.Len(t, weights, 2)

	foreign, err := svc.List(ctx, "owner-2", "pet-1", "")
	require.NoError(t, err)
	assert.Empty(t, foreign)

	_, err = svc.List(ctx, "owner-1", "", "bath")
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestDelete_ScopedAndIdempotent(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, "owner-1", Input{PetID: "pet-1", Type: "weight", WeightValue: ptr(5.0)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "owner-2", rec.ID))
	assert.Len(t, m.records, 1)

	require.NoError(t, svc.Delete(ctx, "owner-1", rec.ID))
	require.NoError(t, svc.Delete(ctx, "owner-1", rec.ID))
	assert.Empty(t, m.records)

	// La proyección conserva el último valor explícito.
	require.NotNil(t, m.pets["pet-1"].CurrentWeight)
	assert.Equal(t, 5.0, *m.pets["pet-1"].CurrentWeight)
}
