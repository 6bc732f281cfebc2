package session

import "github.com/partygames/sketchparty/internal/models"

type SaveSessionInput struct {
	Session *models.GameSession
}

type GetSessionInput struct {
	SessionID string
}

type DeleteSessionInput struct {
	SessionID string
}
