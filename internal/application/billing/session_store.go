package billing

import (
	"sync"

	"github.com/google/uuid"

	"github.com/albrtaraya/facturas-api/internal/domain"
	"github.com/albrtaraya/facturas-api/internal/domain/repository"
)

// SessionStore sesiones del portal en memoria, una por montaje de la app.
// El ciclo de vida es explícito: se crean con Create y mueren con Delete
// (cierre del portal) o con el proceso.
type SessionStore struct {
	repo        repository.InvoiceRepository
	rowsPerPage int

	mu       sync.RWMutex
	sessions map[string]*ViewState
}

// NewSessionStore construye el store.
func NewSessionStore(repo repository.InvoiceRepository, rowsPerPage int) *SessionStore {
	return &SessionStore{
		repo:        repo,
		rowsPerPage: rowsPerPage,
		sessions:    make(map[string]*ViewState),
	}
}

// Create crea una sesión nueva y devuelve su id.
func (s *SessionStore) Create() (string, *ViewState) {
	id := uuid.New().String()
	state := NewViewState(s.repo, s.rowsPerPage)
	s.mu.Lock()
	s.sessions[id] = state
	s.mu.Unlock()
	return id, state
}

// Get devuelve la sesión o domain.ErrSessionNotFound.
func (s *SessionStore) Get(id string) (*ViewState, error) {
	s.mu.RLock()
	state, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return state, nil
}

// Delete elimina la sesión; eliminar una inexistente es un no-op.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
