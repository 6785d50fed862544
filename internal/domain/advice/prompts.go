package advice

import (
	"fmt"
	"strings"

	"pet-care-assistant/internal/domain/profiles"
)

// Los templates reproducen el formato exigido al modelo (bullets con métricas
// exactas). Los campos opcionales vacíos se interpolan como el literal "None",
// nunca como string vacío.

// maxFieldRunes acota el texto libre del usuario antes de incrustarlo en un
// prompt. El texto va a un LLM, no a un shell: alcanza con recortar.
const maxFieldRunes = 500

// orNone interpola campos opcionales: vacío => "None".
func orNone(s string) string {
	s = clip(s)
	if s == "" {
		return "None"
	}
	return s
}

func clip(s string) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) > maxFieldRunes {
		return string(r[:maxFieldRunes])
	}
	return s
}

// BuildDietPrompt arma el prompt de dieta para el perfil dado.
func BuildDietPrompt(p profiles.Profile) string {
	return fmt.Sprintf(`Generate highly specific diet recommendations for:
Species: %s
Breed: %s
Age: %g years
Weight: %g kg
Health Conditions: %s
Allergies: %s

Provide exact measurements and specific products where applicable. Format your response precisely as follows:

- Daily Caloric Requirements:
  - Exact calories: [number] kcal/day
  - Divided into [number] meals
  - Calorie distribution: [%% per meal]

- Macronutrient Breakdown:
  - Protein: [exact %%]
  - Fats: [exact %%]
  - Carbohydrates: [exact %%]

- Recommended Diet:
  - Commercial Foods:
    - [specific brand and product name]
    - [exact portion size in grams]
  - Fresh Foods:
    - [specific ingredient]
    - [exact portion in grams]

- Feeding Schedule:
  - Morning [exact time]: [exact amount in grams]
  - Evening [exact time]: [exact amount in grams]

- Required Supplements:
  - [specific supplement name]
  - [exact dosage]
  - [frequency]

- Foods to Strictly Avoid:
  - [specific food]
  - [reason for avoiding]

- Special Considerations:
  - [specific consideration based on breed/health]
  - [actionable recommendation]`,
		p.Species.Label(),
		clip(p.Breed),
		p.Age,
		p.Weight,
		orNone(p.HealthConditions),
		orNone(p.Allergies),
	)
}

// BuildCarePrompt arma el prompt de cuidados generales.
func BuildCarePrompt(p profiles.Profile) string {
	return fmt.Sprintf(`Generate highly specific care recommendations for:
Species: %s
Breed: %s
Age: %g years
Weight: %g kg
Health Conditions: %s

Provide exact durations, frequencies, and specific products where applicable. Format your response precisely as follows:

- Exercise Requirements:
  - Daily Duration: [exact minutes]
  - Activity Breakdown:
    - [specific exercise type]: [exact minutes]
    - [intensity level]: [specific indicators]
  - Rest Periods: [exact duration]

- Grooming Protocol:
  - Brushing: [specific brush type], [exact frequency], [technique description]
  - Bathing: [specific shampoo type], [exact frequency], [water temperature]
  - Nail Care: [specific tool], [exact frequency]

- Health Monitoring:
  - Vital Signs:
    - Normal Temperature Range: [exact range]
    - Normal Heart Rate: [exact range]
    - Normal Respiratory Rate: [exact range]
  - Regular Checks: [specific check], [exact frequency], [warning signs]

- Behavioral Monitoring:
  - Key Indicators: [specific behavior], [normal frequency/duration], [warning signs]

- Preventive Care Schedule:
  - Vaccinations: [specific vaccine], [exact timing]
  - Parasite Prevention: [specific product], [exact dosage and frequency]

- Environment Requirements:
  - Temperature: [exact range]
  - Exercise Area: [specific dimensions]
  - Rest Area: [specific requirements]`,
		p.Species.Label(),
		clip(p.Breed),
		p.Age,
		p.Weight,
		orNone(p.HealthConditions),
	)
}

// BuildEmergencyPrompt arma el prompt de la guía de emergencias.
func BuildEmergencyPrompt(p profiles.Profile) string {
	return fmt.Sprintf(`Provide emergency care guidelines for a %s, %s.
Include common emergency situations and immediate actions to take before reaching vet.

Format as bullet points:
- Signs of Emergency:
  - [sign 1]
- Immediate Actions:
  - [action 1]
- When to Contact Vet:
  - [situation 1]`,
		p.Species.Label(),
		clip(p.Breed),
	)
}

// BuildTrainingPrompt arma el prompt de entrenamiento.
func BuildTrainingPrompt(p profiles.Profile) string {
	return fmt.Sprintf(`Provide training tips for a %s, %s, %g years old.
Focus on essential commands and behavior training.

Format as bullet points:
- Basic Commands:
  - [command]: [how to train]
- Behavior Training:
  - [behavior]: [training method]
- Common Mistakes:
  - [mistake to avoid]`,
		p.Species.Label(),
		clip(p.Breed),
		p.Age,
	)
}

// BuildSeasonalPrompt arma el prompt estacional. El mes calendario lo aporta
// el caller (el service lo saca de su clock inyectado).
func BuildSeasonalPrompt(p profiles.Profile, month string) string {
	return fmt.Sprintf(`Provide seasonal care tips for %s for a %s, %s.
Include specific seasonal challenges and preparations.

Format as bullet points:
- Seasonal Risks:
  - [risk 1]
- Preventive Measures:
  - [measure 1]
- Essential Items:
  - [item 1]`,
		month,
		p.Species.Label(),
		clip(p.Breed),
	)
}

// BuildComparisonPrompt compara el perfil actual contra un reporte previo
// importado por el usuario.
func BuildComparisonPrompt(current, previous profiles.Profile) string {
	return fmt.Sprintf(`Compare the following pet information and provide specific recommendations based on changes:

Previous Report (%s):
Weight: %g kg
Health: %s

Current Information:
Weight: %g kg
Health: %s

Format your response as bullet points highlighting:
- Notable Changes
- Recommendations Based on Changes
- Areas to Monitor`,
		previous.Timestamp,
		previous.Weight,
		orNone(previous.HealthConditions),
		current.Weight,
		orNone(current.HealthConditions),
	)
}
