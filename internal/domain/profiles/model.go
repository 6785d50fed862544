package profiles

import (
	"errors"
	"fmt"
	"strings"
)

// Species define las especies soportadas.
// @Enum dog, cat
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// ParseSpecies acepta el valor del form ("dog"/"Dog"/"cat"/"Cat").
func ParseSpecies(s string) (Species, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dog":
		return SpeciesDog, nil
	case "cat":
		return SpeciesCat, nil
	default:
		return "", fmt.Errorf("%w: species must be dog or cat", ErrInvalidInput)
	}
}

// Label devuelve la forma legible usada en prompts y reportes ("Dog"/"Cat").
func (s Species) Label() string {
	switch s {
	case SpeciesDog:
		return "Dog"
	case SpeciesCat:
		return "Cat"
	default:
		return string(s)
	}
}

// Límites que el form impone en los widgets; se re-validan server-side.
const (
	MinAgeYears = 0.0
	MaxAgeYears = 30.0
	MinWeightKg = 0.0
	MaxWeightKg = 100.0
)

// TimestampLayout es el formato con el que se sellan perfiles y registros.
const TimestampLayout = "2006-01-02 15:04:05"

var ErrInvalidInput = errors.New("invalid input")

// Profile es el snapshot de los atributos de una mascota en un momento dado.
// Se arma fresco desde el estado del form en cada acción; no se persiste
// hasta un guardado explícito (o como efecto del panel combinado).
type Profile struct {
	Name             string
	Species          Species
	Breed            string
	Age              float64 // años
	Weight           float64 // kg
	HealthConditions string
	FavoriteFoods    string
	Allergies        string
	Timestamp        string // TimestampLayout; vacío hasta que se sella
}

// Validate re-chequea los límites numéricos de los widgets.
// Nombre y raza pueden venir vacíos (comportamiento heredado del producto).
func (p Profile) Validate() error {
	if _, err := ParseSpecies(string(p.Species)); err != nil {
		return err
	}
	if p.Age < MinAgeYears || p.Age > MaxAgeYears {
		return fmt.Errorf("%w: age must be between %.0f and %.0f years", ErrInvalidInput, MinAgeYears, MaxAgeYears)
	}
	if p.Weight < MinWeightKg || p.Weight > MaxWeightKg {
		return fmt.Errorf("%w: weight must be between %.0f and %.0f kg", ErrInvalidInput, MinWeightKg, MaxWeightKg)
	}
	return nil
}
