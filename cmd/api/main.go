package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"pet-care-assistant/internal/platform/logger"
	"pet-care-assistant/internal/router"
)

func main() {
	// .env opcional para dev (GROQ_API_KEY, PET_DATA_FILE, etc.)
	_ = godotenv.Load()

	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := router.NewRouter(router.Options{Logger: log})

	srv := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: 10 * time.Second,
		// los paneles esperan una o dos llamadas al LLM dentro del request
		WriteTimeout: 2 * time.Minute,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
