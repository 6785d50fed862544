package reports

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-assistant/internal/domain/profiles"
)

func rexProfile() profiles.Profile {
	return profiles.Profile{
		Name:      "Rex",
		Species:   profiles.SpeciesDog,
		Breed:     "Labrador",
		Age:       3,
		Weight:    28,
		Allergies: "Chicken",
	}
}

func sampleSections() []Section {
	return []Section{
		{Title: "Diet Recommendations", Body: "feed twice a day"},
		{Title: "Care Recommendations", Body: "brush weekly"},
	}
}

func storyText(story []block) string {
	var sb strings.Builder
	for _, b := range story {
		sb.WriteString(b.text)
		sb.WriteString("\n")
	}
	return sb.String()
}

func TestBuildStory_OrderAndDisclaimer(t *testing.T) {
	at := time.Date(2026, 8, 24, 15, 30, 0, 0, time.UTC)
	story := buildStory(rexProfile(), sampleSections(), at)

	text := storyText(story)

	// título, perfil, secciones en orden de inserción, timestamp, disclaimer
	idxTitle := strings.Index(text, "Pet Care Report for Rex")
	idxInfo := strings.Index(text, "Pet Information")
	idxDiet := strings.Index(text, "Diet Recommendations")
	idxCare := strings.Index(text, "Care Recommendations")
	idxTS := strings.Index(text, "Report Generated: 2026-08-24 15:30:00")
	idxDisc := strings.Index(text, Disclaimer)

	require.NotEqual(t, -1, idxTitle)
	require.NotEqual(t, -1, idxInfo)
	require.NotEqual(t, -1, idxDiet)
	require.NotEqual(t, -1, idxCare)
	require.NotEqual(t, -1, idxTS)
	require.NotEqual(t, -1, idxDisc, "disclaimer must appear verbatim")

	assert.Less(t, idxTitle, idxInfo)
	assert.Less(t, idxInfo, idxDiet)
	assert.Less(t, idxDiet, idxCare)
	assert.Less(t, idxCare, idxTS)
	assert.Less(t, idxTS, idxDisc)

	// el bloque de perfil interpola None para condiciones vacías
	assert.Contains(t, text, "Health Conditions: None")
	assert.Contains(t, text, "Allergies: Chicken")
}

func TestBuildStory_SectionOrderIsCallerOrder(t *testing.T) {
	reversed := []Section{
		{Title: "Care Recommendations", Body: "b"},
		{Title: "Diet Recommendations", Body: "a"},
	}
	text := storyText(buildStory(rexProfile(), reversed, time.Now()))

	assert.Less(t,
		strings.Index(text, "Care Recommendations"),
		strings.Index(text, "Diet Recommendations"),
	)
}

func TestLayout_PaginatesLongSections(t *testing.T) {
	long := strings.Repeat("line of body text\n", 200)
	story := buildStory(rexProfile(), []Section{{Title: "Long", Body: long}}, time.Now())

	pages := layout(story)
	require.Greater(t, len(pages), 1, "200 líneas no entran en una página carta")

	for _, pg := range pages {
		for _, ln := range pg {
			assert.LessOrEqual(t, ln.y, pageHeight-margin)
		}
	}
}

func TestWrap_PreservesNewlinesAndCutsByWords(t *testing.T) {
	lines := wrap("short\n"+strings.Repeat("word ", 40), 50)

	require.Greater(t, len(lines), 2)
	assert.Equal(t, "short", lines[0])
	for _, ln := range lines {
		assert.LessOrEqual(t, len(ln), 51)
	}
}

func TestRender_ProducesValidPDF(t *testing.T) {
	b, err := Render(rexProfile(), sampleSections(), time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, b)

	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "output must be a PDF")

	// el PDF generado valida con el mismo pdfcpu
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(b), model.NewDefaultConfiguration())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ctx.PageCount, 1)
}
