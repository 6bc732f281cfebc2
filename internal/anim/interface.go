package anim

//go:generate mockgen -package=mocks -destination=mocks/mock_player.go github.com/partygames/sketchparty/internal/anim Player

import (
	"context"

	"github.com/partygames/sketchparty/internal/models"
)

// Player drives decorative animation for game state changes. It is purely
// cosmetic: callers treat every error as non-fatal and the game proceeds
// without it.
type Player interface {
	// Initialize loads the animation resource. Safe to call again with a
	// new resource.
	Initialize(ctx context.Context, resourceRef string) error

	// PlayForState plays the cue matching a game state. Implementations
	// must tolerate being called before Initialize and fail with an error
	// instead of crashing.
	PlayForState(ctx context.Context, state models.GameState) error

	// Stop halts playback and releases the loaded resource
	Stop()
}
