package records

import (
	"context"
	"fmt"
	"time"

	"pet-care-assistant/internal/domain/profiles"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Save sella el perfil con un timestamp fresco y lo appendea al log.
// No hay dedup: dos guardados seguidos producen dos records (con timestamps
// distintos si ocurren en momentos reales distintos).
func (s *Service) Save(ctx context.Context, p profiles.Profile) (Record, error) {
	if err := p.Validate(); err != nil {
		return Record{}, err
	}

	rec := FromProfile(p)
	rec.Timestamp = s.now().Format(profiles.TimestampLayout)

	if err := s.repo.Append(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("append health record: %w", err)
	}
	return rec, nil
}

// List devuelve todos los records en orden de inserción (log sin índice).
func (s *Service) List(ctx context.Context) ([]Record, error) {
	out, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load health records: %w", err)
	}
	return out, nil
}
