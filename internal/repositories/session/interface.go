package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/partygames/sketchparty/internal/repositories/session Repository

import (
	"context"

	"github.com/partygames/sketchparty/internal/models"
)

// Repository defines the interface for game session persistence
type Repository interface {
	// SaveSession persists a session snapshot, creating or replacing it
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.GameSession, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
