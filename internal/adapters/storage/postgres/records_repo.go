package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pet-care-assistant/internal/domain/profiles"
	"pet-care-assistant/internal/domain/records"
)

// RecordsRepo es la alternativa durable al archivo plano, para despliegues
// con más de una sesión escribiendo a la vez.
//
// Esquema esperado:
//
//	CREATE TABLE pet_records (
//	    name              TEXT NOT NULL,
//	    species           TEXT NOT NULL,
//	    breed             TEXT NOT NULL,
//	    age               DOUBLE PRECISION NOT NULL,
//	    weight            DOUBLE PRECISION NOT NULL,
//	    health_conditions TEXT NOT NULL DEFAULT '',
//	    favorite_foods    TEXT NOT NULL DEFAULT '',
//	    allergies         TEXT NOT NULL DEFAULT '',
//	    created_at        TIMESTAMPTZ NOT NULL
//	);
type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

func (r *RecordsRepo) Append(ctx context.Context, rec records.Record) error {
	createdAt, err := time.Parse(profiles.TimestampLayout, rec.Timestamp)
	if err != nil {
		return fmt.Errorf("postgres: bad record timestamp %q: %w", rec.Timestamp, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pet_records (
			name, species, breed,
			age, weight,
			health_conditions, favorite_foods, allergies,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		rec.Name,
		rec.Species,
		rec.Breed,
		rec.Age,
		rec.Weight,
		rec.HealthConditions,
		rec.FavoriteFoods,
		rec.Allergies,
		createdAt,
	)
	return err
}

func (r *RecordsRepo) LoadAll(ctx context.Context) ([]records.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			name, species, breed,
			age, weight,
			health_conditions, favorite_foods, allergies,
			created_at
		FROM pet_records
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]records.Record, 0)
	for rows.Next() {
		var rec records.Record
		var createdAt time.Time
		if err := rows.Scan(
			&rec.Name,
			&rec.Species,
			&rec.Breed,
			&rec.Age,
			&rec.Weight,
			&rec.HealthConditions,
			&rec.FavoriteFoods,
			&rec.Allergies,
			&createdAt,
		); err != nil {
			return nil, err
		}

		rec.Timestamp = createdAt.Format(profiles.TimestampLayout)
		out = append(out, rec)
	}

	return out, rows.Err()
}
