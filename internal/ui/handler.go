package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-care-assistant/internal/domain/advice"
	"pet-care-assistant/internal/domain/profiles"
	"pet-care-assistant/internal/domain/records"
	"pet-care-assistant/internal/domain/reports"
	"pet-care-assistant/internal/platform/logger"
)

// Handler es la capa de presentación: un form lateral con los atributos de la
// mascota y seis paneles, cada uno gateado por su propio botón. Cada acción
// arma el perfil desde el estado vivo del form, dispara el par prompt builder
// + generator que corresponda y re-renderiza la página.
type Handler struct {
	advice  *advice.Service
	records *records.Service
	reports *reports.Store
	log     logger.Logger
	now     func() time.Time
}

func NewHandler(adviceSvc *advice.Service, recordsSvc *records.Service, reportStore *reports.Store, log logger.Logger) *Handler {
	return &Handler{
		advice:  adviceSvc,
		records: recordsSvc,
		reports: reportStore,
		log:     log,
		now:     time.Now,
	}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.indexHandler)
	r.Post("/panels", h.panelHandler)
}

func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	data := &pageData{Form: defaultForm()}
	h.loadRecords(r, data)
	h.render(w, data)
}

// panelHandler despacha la acción del botón presionado. Un solo form envuelve
// sidebar y paneles, así cada acción ve el estado completo.
func (h *Handler) panelHandler(w http.ResponseWriter, r *http.Request) {
	if err := parseAnyForm(r); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	action := r.FormValue("action")
	data := &pageData{Form: formValuesFrom(r), Active: action}

	profile, err := data.Form.profile()
	if err != nil {
		data.Error = err.Error()
		h.loadRecords(r, data)
		h.render(w, data)
		return
	}

	switch action {
	case "care":
		h.careGuidePanel(r, data, profile)
	case "emergency":
		textPanel(data, func() (string, error) { return h.advice.Emergency(r.Context(), profile) }, &data.Emergency)
	case "training":
		textPanel(data, func() (string, error) { return h.advice.Training(r.Context(), profile) }, &data.Training)
	case "seasonal":
		textPanel(data, func() (string, error) { return h.advice.Seasonal(r.Context(), profile) }, &data.Seasonal)
	case "save_record":
		if _, err := h.records.Save(r.Context(), profile); err != nil {
			data.Error = err.Error()
		} else {
			data.Active = "records"
			data.Flash = "Health record saved successfully!"
		}
	case "analysis":
		h.analysisPanel(r, data, profile)
	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}

	h.loadRecords(r, data)
	h.render(w, data)
}

// careGuidePanel es el panel combinado: dieta + cuidados (dos llamadas
// secuenciales), y solo si ambas salen bien genera el PDF y persiste el
// perfil. Una generación fallida no deja ningún efecto secundario.
func (h *Handler) careGuidePanel(r *http.Request, data *pageData, profile profiles.Profile) {
	guide, err := h.advice.CareGuide(r.Context(), profile)
	if err != nil {
		data.Error = fmt.Sprintf("Error generating recommendation: %v", err)
		return
	}

	data.Care = &careResult{Diet: guide.Diet, Care: guide.Care}

	sections := []reports.Section{
		{Title: advice.CategoryDiet.SectionTitle(), Body: guide.Diet},
		{Title: advice.CategoryCare.SectionTitle(), Body: guide.Care},
	}
	pdf, err := reports.Render(profile, sections, h.now())
	if err != nil {
		h.log.Error("render report", map[string]any{"err": err.Error()})
		data.Error = "The report PDF could not be generated."
	} else {
		data.Care.ReportID = h.reports.Put(reports.Download{
			Filename: reports.Filename,
			Data:     pdf,
		})
	}

	if _, err := h.records.Save(r.Context(), profile); err != nil {
		h.log.Error("save record", map[string]any{"err": err.Error()})
		data.Error = "The health record could not be saved."
	}
}

func textPanel(data *pageData, generate func() (string, error), out *string) {
	text, err := generate()
	if err != nil {
		data.Error = fmt.Sprintf("Error generating recommendation: %v", err)
		return
	}
	*out = text
}

// analysisPanel consume el JSON de un reporte previo subido por el usuario.
// Sin validación de esquema más allá de deserializar (contrato heredado).
func (h *Handler) analysisPanel(r *http.Request, data *pageData, profile profiles.Profile) {
	f, _, err := r.FormFile("previous_report")
	if err != nil {
		data.Error = "Upload a previous report (JSON) before analyzing changes."
		return
	}
	defer f.Close()

	var prev records.Record
	if err := json.NewDecoder(f).Decode(&prev); err != nil {
		data.Error = "The uploaded file is not a valid report JSON."
		return
	}

	text, err := h.advice.CompareReports(r.Context(), profile, prev.Profile())
	if err != nil {
		data.Error = fmt.Sprintf("Error generating recommendation: %v", err)
		return
	}
	data.Analysis = text
}

// loadRecords puebla la tabla del panel de Health Records en todo render.
func (h *Handler) loadRecords(r *http.Request, data *pageData) {
	items, err := h.records.List(r.Context())
	if err != nil {
		h.log.Error("list records", map[string]any{"err": err.Error()})
		if data.Error == "" {
			data.Error = "Health records could not be loaded."
		}
		return
	}
	data.Records = items
}

// render ejecuta el template a un buffer primero, para no mandar media página
// si algo falla.
func (h *Handler) render(w http.ResponseWriter, data *pageData) {
	var buf bytes.Buffer
	if err := indexTmpl.ExecuteTemplate(&buf, "index.html.tmpl", data); err != nil {
		h.log.Error("render page", map[string]any{"err": err.Error()})
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// parseAnyForm acepta tanto multipart (el form lleva un file input) como
// urlencoded.
func parseAnyForm(r *http.Request) error {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		return r.ParseMultipartForm(2 << 20)
	}
	return r.ParseForm()
}

func formValuesFrom(r *http.Request) formValues {
	return formValues{
		Name:             r.FormValue("name"),
		Species:          r.FormValue("species"),
		Breed:            r.FormValue("breed"),
		Age:              r.FormValue("age"),
		Weight:           r.FormValue("weight"),
		HealthConditions: r.FormValue("health_conditions"),
		FavoriteFoods:    r.FormValue("favorite_foods"),
		Allergies:        r.FormValue("allergies"),
	}
}

// profile arma el PetProfile desde el estado del form. Nombre y raza pueden
// quedar vacíos; solo los límites numéricos de los widgets se re-validan.
func (f formValues) profile() (profiles.Profile, error) {
	sp, err := profiles.ParseSpecies(f.Species)
	if err != nil {
		return profiles.Profile{}, err
	}

	age, err := strconv.ParseFloat(strings.TrimSpace(f.Age), 64)
	if err != nil {
		return profiles.Profile{}, fmt.Errorf("%w: age must be a number", profiles.ErrInvalidInput)
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(f.Weight), 64)
	if err != nil {
		return profiles.Profile{}, fmt.Errorf("%w: weight must be a number", profiles.ErrInvalidInput)
	}

	p := profiles.Profile{
		Name:             strings.TrimSpace(f.Name),
		Species:          sp,
		Breed:            strings.TrimSpace(f.Breed),
		Age:              age,
		Weight:           weight,
		HealthConditions: f.HealthConditions,
		FavoriteFoods:    f.FavoriteFoods,
		Allergies:        f.Allergies,
	}
	if err := p.Validate(); err != nil {
		return profiles.Profile{}, err
	}
	return p, nil
}
