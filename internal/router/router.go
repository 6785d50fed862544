package router

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"pet-care-assistant/internal/adapters/llm/groq"
	fileadapter "pet-care-assistant/internal/adapters/storage/file"
	pg "pet-care-assistant/internal/adapters/storage/postgres"
	"pet-care-assistant/internal/domain/advice"
	"pet-care-assistant/internal/domain/records"
	"pet-care-assistant/internal/domain/reports"
	"pet-care-assistant/internal/middleware"
	"pet-care-assistant/internal/platform/logger"
	"pet-care-assistant/internal/ports/llm"
	"pet-care-assistant/internal/ui"
)

type Options struct {
	Logger logger.Logger // puede ser nil => se crea desde env

	// Opcionales: inyectables para tests. Si vienen nil, se resuelven por env.
	Generator llm.Generator
	Records   records.Repository
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Record store: postgres si hay DB_DSN, si no el archivo plano local.
	repo := opts.Records
	if repo == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			db, err := pg.Open(dsn)
			if err == nil {
				repo = pg.NewRecordsRepo(db)
			} else {
				log.Warn("postgres unavailable, falling back to file store", map[string]any{"err": err.Error()})
			}
		}
	}
	if repo == nil {
		path := os.Getenv("PET_DATA_FILE")
		if path == "" {
			path = "pet_data.json"
		}
		repo = fileadapter.NewRecordsRepo(path)
	}

	// El generator se construye una sola vez acá y se inyecta hacia abajo;
	// los tests pasan un stub por Options en lugar de pegarle a la API real.
	gen := opts.Generator
	if gen == nil {
		client, err := groq.New(groq.Config{
			APIKey:  os.Getenv("GROQ_API_KEY"),
			Model:   os.Getenv("GROQ_MODEL"),
			BaseURL: os.Getenv("GROQ_BASE_URL"),
		})
		if err != nil {
			// Sin API key la app sigue sirviendo (records, reportes viejos);
			// los paneles de generación muestran el error al usuario.
			log.Error("groq client not configured", map[string]any{"err": err.Error()})
			gen = unavailableGenerator{err: err}
		} else {
			gen = client
		}
	}

	// Services por módulo
	adviceSvc := advice.NewService(gen)
	recordsSvc := records.NewService(repo)
	reportStore := reports.NewStore()

	// Rutas por módulo
	records.RegisterRoutes(r, recordsSvc)
	reports.RegisterRoutes(r, reportStore)
	ui.RegisterRoutes(r, ui.NewHandler(adviceSvc, recordsSvc, reportStore, log))

	return r
}

type unavailableGenerator struct {
	err error
}

func (g unavailableGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return "", errors.New("llm generator not configured")
}
