package advice

import (
	"context"
	"fmt"
	"time"

	"pet-care-assistant/internal/domain/profiles"
	"pet-care-assistant/internal/ports/llm"
)

// Service orquesta prompt builder + generator por categoría.
// El generator se construye una sola vez en el router y se inyecta acá,
// así los tests sustituyen un stub en lugar de pegarle a la API real.
type Service struct {
	llm llm.Generator
	now func() time.Time
}

func NewService(g llm.Generator) *Service {
	return &Service{
		llm: g,
		now: time.Now,
	}
}

// CareGuide es el resultado del panel combinado (dieta + cuidados).
type CareGuide struct {
	Diet string
	Care string
}

// CareGuide genera dieta y cuidados, secuencial (no en paralelo).
// Si cualquiera de las dos llamadas falla, no hay resultado parcial:
// el caller no debe generar PDF ni persistir.
func (s *Service) CareGuide(ctx context.Context, p profiles.Profile) (CareGuide, error) {
	if err := p.Validate(); err != nil {
		return CareGuide{}, err
	}

	diet, err := s.llm.Generate(ctx, BuildDietPrompt(p))
	if err != nil {
		return CareGuide{}, fmt.Errorf("generate diet recommendation: %w", err)
	}

	care, err := s.llm.Generate(ctx, BuildCarePrompt(p))
	if err != nil {
		return CareGuide{}, fmt.Errorf("generate care recommendation: %w", err)
	}

	return CareGuide{Diet: diet, Care: care}, nil
}

func (s *Service) Emergency(ctx context.Context, p profiles.Profile) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	out, err := s.llm.Generate(ctx, BuildEmergencyPrompt(p))
	if err != nil {
		return "", fmt.Errorf("generate emergency guide: %w", err)
	}
	return out, nil
}

func (s *Service) Training(ctx context.Context, p profiles.Profile) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	out, err := s.llm.Generate(ctx, BuildTrainingPrompt(p))
	if err != nil {
		return "", fmt.Errorf("generate training tips: %w", err)
	}
	return out, nil
}

func (s *Service) Seasonal(ctx context.Context, p profiles.Profile) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	month := s.now().Month().String()
	out, err := s.llm.Generate(ctx, BuildSeasonalPrompt(p, month))
	if err != nil {
		return "", fmt.Errorf("generate seasonal care: %w", err)
	}
	return out, nil
}

// CompareReports analiza cambios entre el perfil actual y uno previo importado.
func (s *Service) CompareReports(ctx context.Context, current, previous profiles.Profile) (string, error) {
	if err := current.Validate(); err != nil {
		return "", err
	}
	out, err := s.llm.Generate(ctx, BuildComparisonPrompt(current, previous))
	if err != nil {
		return "", fmt.Errorf("analyze previous report: %w", err)
	}
	return out, nil
}
