package advice

// Category define los dominios de recomendación soportados.
// Cada categoría tiene su propio template de prompt fijo.
// @Enum diet, care, emergency, training, seasonal, comparison
type Category string

const (
	CategoryDiet       Category = "diet"
	CategoryCare       Category = "care"
	CategoryEmergency  Category = "emergency"
	CategoryTraining   Category = "training"
	CategorySeasonal   Category = "seasonal"
	CategoryComparison Category = "comparison"
)

// SectionTitle es el título con el que la categoría aparece en el reporte PDF.
func (c Category) SectionTitle() string {
	switch c {
	case CategoryDiet:
		return "Diet Recommendations"
	case CategoryCare:
		return "Care Recommendations"
	case CategoryEmergency:
		return "Emergency Care Guide"
	case CategoryTraining:
		return "Training Guide"
	case CategorySeasonal:
		return "Seasonal Care Guide"
	case CategoryComparison:
		return "Changes Analysis"
	default:
		return string(c)
	}
}
