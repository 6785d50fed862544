package ui

import (
	"embed"
	"html/template"

	"pet-care-assistant/internal/domain/records"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html.tmpl"))

// formValues refleja el estado crudo del form para re-renderizarlo tal cual
// lo tipeó el usuario (los números recién se parsean al armar el Profile).
type formValues struct {
	Name             string
	Species          string
	Breed            string
	Age              string
	Weight           string
	HealthConditions string
	FavoriteFoods    string
	Allergies        string
}

// defaultForm replica los defaults de los widgets originales.
func defaultForm() formValues {
	return formValues{
		Species: "dog",
		Age:     "1.0",
		Weight:  "5.0",
	}
}

type careResult struct {
	Diet     string
	Care     string
	ReportID string
}

// pageData es todo lo que la página necesita para un render. Los paneles son
// stateless entre renders: solo el resultado de la acción recién disparada
// viene poblado.
type pageData struct {
	Form      formValues
	Active    string
	Error     string
	Flash     string
	Care      *careResult
	Emergency string
	Training  string
	Seasonal  string
	Analysis  string
	Records   []records.Record
}
