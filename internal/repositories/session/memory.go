package session

import (
	"context"
	"errors"
	"sync"

	"github.com/partygames/sketchparty/internal/models"
)

// memoryRepository implements the Repository interface with an in-process
// map. This is the default backend: sessions are scoped to one play session
// and lost on process exit.
type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.GameSession
}

// NewMemory creates an in-memory session repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sessions: make(map[string]*models.GameSession),
	}
}

// SaveSession stores a deep copy of the session so later mutations of the
// caller's value never leak into the store
func (r *memoryRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}
	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[input.Session.ID] = input.Session.Clone()
	return nil
}

// GetSession returns a deep copy of the stored session
func (r *memoryRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.GameSession, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.sessions[input.SessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return stored.Clone(), nil
}

// DeleteSession removes a session from the map
func (r *memoryRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[input.SessionID]; !ok {
		return ErrSessionNotFound
	}

	delete(r.sessions, input.SessionID)
	return nil
}
