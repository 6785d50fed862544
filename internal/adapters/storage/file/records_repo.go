package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"pet-care-assistant/internal/domain/records"
)

// RecordsRepo persiste el log como un único array JSON en disco, estilo
// pet_data.json: se lee entero, se appendea y se reescribe entero. El mutex
// serializa el read-modify-write para que dos acciones solapadas no pisen
// escrituras (antes era last-writer-wins silencioso).
//
// Para multi-proceso esto no alcanza; ahí corresponde el adapter de postgres.
type RecordsRepo struct {
	mu   sync.Mutex
	path string
}

func NewRecordsRepo(path string) *RecordsRepo {
	return &RecordsRepo{path: path}
}

func (r *RecordsRepo) Append(ctx context.Context, rec records.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.load()
	if err != nil {
		return err
	}

	data = append(data, rec)

	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("file: marshal records: %w", err)
	}
	if err := os.WriteFile(r.path, b, 0o644); err != nil {
		return fmt.Errorf("file: write %s: %w", r.path, err)
	}
	return nil
}

func (r *RecordsRepo) LoadAll(ctx context.Context) ([]records.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// load trata archivo inexistente (o vacío) como log vacío, no como falla.
// El archivo recién se crea en el primer Append.
func (r *RecordsRepo) load() ([]records.Record, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []records.Record{}, nil
		}
		return nil, fmt.Errorf("file: read %s: %w", r.path, err)
	}

	if strings.TrimSpace(string(b)) == "" {
		return []records.Record{}, nil
	}

	var out []records.Record
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("file: decode %s: %w", r.path, err)
	}
	return out, nil
}
