package records

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-assistant/internal/domain/profiles"
)

type fakeRepo struct {
	items []Record
}

func (r *fakeRepo) Append(_ context.Context, rec Record) error {
	r.items = append(r.items, rec)
	return nil
}

func (r *fakeRepo) LoadAll(_ context.Context) ([]Record, error) {
	return r.items, nil
}

func rexProfile() profiles.Profile {
	return profiles.Profile{
		Name:             "Rex",
		Species:          profiles.SpeciesDog,
		Breed:            "Labrador",
		Age:              3,
		Weight:           28,
		HealthConditions: "",
		Allergies:        "Chicken",
	}
}

func TestSave_StampsFreshTimestamp(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 24, 15, 30, 0, 0, time.UTC)
	}

	rec, err := svc.Save(context.Background(), rexProfile())
	require.NoError(t, err)

	assert.Equal(t, "2026-08-24 15:30:00", rec.Timestamp)
	require.Len(t, repo.items, 1)

	// round-trip: el último record refleja el perfil guardado
	got := repo.items[len(repo.items)-1]
	assert.Equal(t, "Rex", got.Name)
	assert.Equal(t, "Dog", got.Species)
	assert.Equal(t, "Labrador", got.Breed)
	assert.Equal(t, 3.0, got.Age)
	assert.Equal(t, 28.0, got.Weight)
	assert.Equal(t, "Chicken", got.Allergies)
}

func TestSave_RejectsOutOfBoundsProfile(t *testing.T) {
	svc := NewService(&fakeRepo{})

	p := rexProfile()
	p.Weight = 250

	_, err := svc.Save(context.Background(), p)
	require.ErrorIs(t, err, profiles.ErrInvalidInput)
}

func TestRecordProfileRoundTrip(t *testing.T) {
	p := rexProfile()
	rec := FromProfile(p)
	rec.Timestamp = "2026-08-24 15:30:00"

	back := rec.Profile()
	assert.Equal(t, p.Name, back.Name)
	assert.Equal(t, profiles.SpeciesDog, back.Species)
	assert.Equal(t, p.Weight, back.Weight)
	assert.Equal(t, "2026-08-24 15:30:00", back.Timestamp)
}
