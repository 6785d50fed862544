package records

import "pet-care-assistant/internal/domain/profiles"

// Record es un snapshot de perfil sellado con timestamp, tal como se persiste.
// Los nombres JSON son el contrato del archivo pet_data.json (y del import de
// reportes previos): sin id, sin versión de esquema. Campos desconocidos se
// ignoran al decodificar y campos faltantes quedan en cero, así un archivo
// viejo sigue cargando si algún día se agregan campos.
type Record struct {
	Name             string  `json:"name"`
	Species          string  `json:"species"`
	Breed            string  `json:"breed"`
	Age              float64 `json:"age"`
	Weight           float64 `json:"weight"`
	HealthConditions string  `json:"health_conditions"`
	FavoriteFoods    string  `json:"favorite_foods"`
	Allergies        string  `json:"allergies"`
	Timestamp        string  `json:"timestamp"`
}

// FromProfile congela el perfil actual en un Record (sin sellar timestamp;
// eso lo hace el service al guardar).
func FromProfile(p profiles.Profile) Record {
	return Record{
		Name:             p.Name,
		Species:          p.Species.Label(),
		Breed:            p.Breed,
		Age:              p.Age,
		Weight:           p.Weight,
		HealthConditions: p.HealthConditions,
		FavoriteFoods:    p.FavoriteFoods,
		Allergies:        p.Allergies,
		Timestamp:        p.Timestamp,
	}
}

// Profile reconstruye un perfil desde un record importado (flujo de análisis
// de reporte previo). No valida más allá de la deserialización.
func (r Record) Profile() profiles.Profile {
	sp, err := profiles.ParseSpecies(r.Species)
	if err != nil {
		sp = profiles.Species(r.Species)
	}
	return profiles.Profile{
		Name:             r.Name,
		Species:          sp,
		Breed:            r.Breed,
		Age:              r.Age,
		Weight:           r.Weight,
		HealthConditions: r.HealthConditions,
		FavoriteFoods:    r.FavoriteFoods,
		Allergies:        r.Allergies,
		Timestamp:        r.Timestamp,
	}
}
