package reports

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"pet-care-assistant/internal/domain/profiles"
)

// El reporte se arma en dos pasos: primero un "story" puro (bloques en orden,
// fácil de testear), después el layout paginado que se emite vía el JSON de
// creación de pdfcpu hacia un buffer en memoria. Nunca se escribe a disco del
// server: los bytes van directo al download store.

type blockKind int

const (
	blockTitle blockKind = iota
	blockHeading
	blockBody
)

type block struct {
	kind blockKind
	text string
}

// Geometría de página carta con márgenes fijos.
const (
	pageWidth  = 612.0
	pageHeight = 792.0
	margin     = 54.0

	bodyWrapCols = 95 // aprox. Helvetica 10pt sobre el ancho útil
)

type fontSpec struct {
	size       float64
	lineHeight float64
	spaceAfter float64
}

var fontFor = map[blockKind]fontSpec{
	blockTitle:   {size: 20, lineHeight: 24, spaceAfter: 18},
	blockHeading: {size: 13, lineHeight: 16, spaceAfter: 6},
	blockBody:    {size: 10, lineHeight: 13, spaceAfter: 12},
}

// buildStory compone el contenido en orden: título, bloque de perfil, cada
// sección en el orden recibido, timestamp de generación y disclaimer.
func buildStory(p profiles.Profile, sections []Section, generatedAt time.Time) []block {
	story := []block{
		{kind: blockTitle, text: "Pet Care Report for " + p.Name},
		{kind: blockHeading, text: "Pet Information"},
		{kind: blockBody, text: profileSummary(p)},
	}

	for _, s := range sections {
		story = append(story,
			block{kind: blockHeading, text: s.Title},
			block{kind: blockBody, text: s.Body},
		)
	}

	story = append(story,
		block{kind: blockBody, text: "Report Generated: " + generatedAt.Format(profiles.TimestampLayout)},
		block{kind: blockBody, text: Disclaimer},
	)
	return story
}

func profileSummary(p profiles.Profile) string {
	return strings.Join([]string{
		"Type: " + p.Species.Label(),
		"Breed: " + p.Breed,
		fmt.Sprintf("Age: %g years", p.Age),
		fmt.Sprintf("Weight: %g kg", p.Weight),
		"Health Conditions: " + orNone(p.HealthConditions),
		"Allergies: " + orNone(p.Allergies),
	}, "\n")
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "None"
	}
	return s
}

// placed es una línea ya posicionada sobre una página.
type placed struct {
	text string
	size float64
	y    float64
}

// layout pagina el story: corta líneas largas, avanza el cursor vertical y
// abre página nueva cuando la línea no entra.
func layout(story []block) [][]placed {
	var pages [][]placed
	var cur []placed
	y := margin

	newPage := func() {
		if len(cur) > 0 {
			pages = append(pages, cur)
		}
		cur = nil
		y = margin
	}

	for _, b := range story {
		spec := fontFor[b.kind]
		for _, line := range wrap(b.text, bodyWrapCols) {
			if y+spec.lineHeight > pageHeight-margin {
				newPage()
			}
			y += spec.lineHeight
			cur = append(cur, placed{text: line, size: spec.size, y: y})
		}
		y += spec.spaceAfter
	}

	if len(cur) > 0 {
		pages = append(pages, cur)
	}
	return pages
}

// wrap respeta los saltos de línea existentes y corta el resto por palabras.
func wrap(s string, cols int) []string {
	var out []string
	for _, raw := range strings.Split(s, "\n") {
		line := strings.TrimRight(raw, " \t")
		if len(line) <= cols {
			out = append(out, line)
			continue
		}

		words := strings.Fields(line)
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		curr := indent
		for _, w := range words {
			if curr == indent {
				curr += w
				continue
			}
			if len(curr)+1+len(w) > cols {
				out = append(out, curr)
				curr = indent + w
				continue
			}
			curr += " " + w
		}
		if strings.TrimSpace(curr) != "" {
			out = append(out, curr)
		}
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}

// Tipos para el JSON de creación de pdfcpu (comando "create").
type pdfSpec struct {
	Paper  string             `json:"paper"`
	Origin string             `json:"origin"`
	Pages  map[string]pdfPage `json:"pages"`
}

type pdfPage struct {
	Content pdfContent `json:"content"`
}

type pdfContent struct {
	Text []pdfText `json:"text"`
}

type pdfText struct {
	Value    string     `json:"value"`
	Position [2]float64 `json:"position"`
	Font     pdfFont    `json:"font"`
}

type pdfFont struct {
	Name  string  `json:"name"`
	Size  float64 `json:"size"`
	Color string  `json:"color"`
}

// Render produce el PDF como buffer en memoria, listo para ofrecer como
// adjunto descargable.
func Render(p profiles.Profile, sections []Section, generatedAt time.Time) ([]byte, error) {
	pages := layout(buildStory(p, sections, generatedAt))

	spec := pdfSpec{
		Paper:  "Letter",
		Origin: "upperLeft",
		Pages:  make(map[string]pdfPage, len(pages)),
	}
	for i, pg := range pages {
		texts := make([]pdfText, 0, len(pg))
		for _, ln := range pg {
			if strings.TrimSpace(ln.text) == "" {
				continue
			}
			texts = append(texts, pdfText{
				Value:    ln.text,
				Position: [2]float64{margin, ln.y},
				Font:     pdfFont{Name: "Helvetica", Size: ln.size, Color: "#000000"},
			})
		}
		spec.Pages[fmt.Sprintf("%d", i+1)] = pdfPage{Content: pdfContent{Text: texts}}
	}

	js, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("reports: marshal pdf spec: %w", err)
	}

	var buf bytes.Buffer
	conf := model.NewDefaultConfiguration()
	if err := api.Create(nil, bytes.NewReader(js), &buf, conf); err != nil {
		return nil, fmt.Errorf("reports: pdfcpu create: %w", err)
	}
	return buf.Bytes(), nil
}
