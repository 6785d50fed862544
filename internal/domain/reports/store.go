package reports

import (
	"sync"

	"github.com/google/uuid"
)

// Download es un reporte listo para servir como adjunto.
type Download struct {
	Filename string
	Data     []byte
}

// Store retiene reportes generados en memoria, indexados por un token uuid,
// para ofrecerlos como link de descarga (/reports/{id}) en lugar de inlinear
// base64 en la página. Vive lo que vive el proceso: un restart invalida links.
type Store struct {
	mu   sync.RWMutex
	byID map[string]Download
}

func NewStore() *Store {
	return &Store{
		byID: make(map[string]Download),
	}
}

// Put guarda el download y devuelve su token.
func (s *Store) Put(d Download) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[id] = d

	return id
}

func (s *Store) Get(id string) (Download, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.byID[id]
	return d, ok
}
