package advice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-assistant/internal/domain/profiles"
)

type fakeGenerator struct {
	replies []string
	err     error
	prompts []string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	out := g.replies[0]
	g.replies = g.replies[1:]
	return out, nil
}

func TestCareGuide_SequentialDietThenCare(t *testing.T) {
	gen := &fakeGenerator{replies: []string{"diet text", "care text"}}
	svc := NewService(gen)

	got, err := svc.CareGuide(context.Background(), rexProfile())
	require.NoError(t, err)

	// el texto mostrado es exactamente el de la primera completion
	assert.Equal(t, "diet text", got.Diet)
	assert.Equal(t, "care text", got.Care)

	require.Len(t, gen.prompts, 2)
	assert.Contains(t, gen.prompts[0], "diet recommendations")
	assert.Contains(t, gen.prompts[1], "care recommendations")
}

func TestCareGuide_FailurePropagates(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("auth failed")}
	svc := NewService(gen)

	_, err := svc.CareGuide(context.Background(), rexProfile())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth failed")
}

func TestCareGuide_InvalidProfileRejected(t *testing.T) {
	gen := &fakeGenerator{replies: []string{"x", "y"}}
	svc := NewService(gen)

	p := rexProfile()
	p.Age = 45

	_, err := svc.CareGuide(context.Background(), p)
	require.ErrorIs(t, err, profiles.ErrInvalidInput)
	assert.Empty(t, gen.prompts, "no debe llamar al generator con input inválido")
}

func TestSeasonal_UsesInjectedClock(t *testing.T) {
	gen := &fakeGenerator{replies: []string{"seasonal text"}}
	svc := NewService(gen)
	svc.now = func() time.Time {
		return time.Date(2026, time.December, 24, 12, 0, 0, 0, time.UTC)
	}

	out, err := svc.Seasonal(context.Background(), rexProfile())
	require.NoError(t, err)
	assert.Equal(t, "seasonal text", out)

	require.Len(t, gen.prompts, 1)
	assert.True(t, strings.Contains(gen.prompts[0], "December"), "prompt=%s", gen.prompts[0])
}
