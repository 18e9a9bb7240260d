package export

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-health/internal/domain/pets"
	"pet-health/internal/domain/records"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func at(min int) time.Time { return t0.Add(time.Duration(min) * time.Minute) }

func fixture() ([]pets.Pet, []records.Record) {
	ps := []pets.Pet{
		{ID: "p-new", Name: "Rex", Species: pets.SpeciesDog, CreatedAt: at(10)},
		{ID: "p-old", Name: "Mango", Species: pets.SpeciesCat, CreatedAt: at(1)},
	}
	recs := []records.Record{
		{ID: "r1", PetID: "p-old", Type: records.TypeWeight, EventDate: "2026-02-10", CreatedAt: at(20)},
		{ID: "r2", PetID: "p-old", Type: records.TypeVaccination, EventDate: "2026-01-05", CreatedAt: at(21)},
		{ID: "r3", PetID: "p-new", Type: records.TypeDiet, EventDate: "2026-01-07", CreatedAt: at(22)},
		{ID: "r4", PetID: "p-new", Type: records.TypeDeworming, EventDate: "2026-01-07", CreatedAt: at(15)},
		{ID: "r5", PetID: "p-old", Type: records.TypeVaccination, EventDate: "2026-03-01", CreatedAt: at(23)},
	}
	return ps, recs
}

func TestBuild_OrderAndShape(t *testing.T) {
	ps, recs := fixture()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.FixedZone("CST", 8*3600))

	out := Build(ps, recs, now)

	assert.Equal(t, now.UTC(), out.ExportTime)
	require.Len(t, out.Pets, 2)
	assert.Equal(t, "p-old", out.Pets[0].ID)
	assert.Equal(t, "p-new", out.Pets[1].ID)

	ids := func(p Pet) []string {
		out := []string{}
		for _, r := range p.Records {
			out = append(out, r.ID)
		}
		return out
	}
	assert.Equal(t, []string{"r2", "r1", "r5"}, ids(out.Pets[0]))
	assert.Equal(t, []string{"r4", "r3"}, ids(out.Pets[1]))
	assert.Equal(t, "2026-01-05", out.Pets[0].Records[0].Date)
}

func TestBuild_SummaryMatchesRecords(t *testing.T) {
	ps, recs := fixture()
	out := Build(ps, recs, t0)

	s := out.Summary
	assert.Equal(t, 2, s.TotalPets)
	assert.Equal(t, 5, s.TotalRecords)
	assert.Equal(t, 2, s.VaccinationCount)
	assert.Equal(t, 1, s.DewormingCount)
	assert.Equal(t, 1, s.WeightCount)
	assert.Equal(t, 1, s.DietCount)

	flattened := 0
	for _, p := range out.Pets {
		flattened += len(p.Records)
	}
	assert.Equal(t, flattened, s.TotalRecords)
	assert.Equal(t, s.TotalRecords, s.VaccinationCount+s.DewormingCount+s.WeightCount+s.DietCount)
}

func TestBuild_Empty(t *testing.T) {
	out := Build(nil, nil, t0)
	assert.NotNil(t, out.Pets)
	assert.Empty(t, out.Pets)
	assert.Zero(t, out.Summary.TotalRecords)
}

type fakePets []pets.Pet

func (f fakePets) List(context.Context, string) ([]pets.Pet, error) { return f, nil }

type fakeRecords []records.Record

func (f fakeRecords) List(context.Context, string, string, string) ([]records.Record, error) {
	return f, nil
}

func TestForOwner(t *testing.T) {
	ps, recs := fixture()
	svc := NewService(fakePets(ps), fakeRecords(recs))
	svc.now = func() time.Time { return t0 }

	out, err := svc.ForOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, t0, out.ExportTime)
	assert.Equal(t, 5, out.Summary.TotalRecords)
}
