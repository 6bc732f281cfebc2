package anim

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/partygames/sketchparty/internal/models"
)

// LogPlayer is a Player that narrates animation cues through a logger. It
// stands in for a platform renderer on headless builds and in the demo
// shell.
type LogPlayer struct {
	logger zerolog.Logger

	mu       sync.Mutex
	resource string
	ready    bool
}

// NewLogPlayer creates a LogPlayer writing to the given logger
func NewLogPlayer(logger *zerolog.Logger) *LogPlayer {
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}

	return &LogPlayer{logger: l}
}

// Initialize records the resource reference and marks the player ready
func (p *LogPlayer) Initialize(_ context.Context, resourceRef string) error {
	if resourceRef == "" {
		return ErrMissingResource
	}

	p.mu.Lock()
	p.resource = resourceRef
	p.ready = true
	p.mu.Unlock()

	p.logger.Debug().
		Str("resource", resourceRef).
		Msg("animation player initialized")

	return nil
}

// PlayForState logs the cue for a state change
func (p *LogPlayer) PlayForState(_ context.Context, state models.GameState) error {
	p.mu.Lock()
	ready := p.ready
	resource := p.resource
	p.mu.Unlock()

	if !ready {
		return ErrNotInitialized
	}

	p.logger.Debug().
		Str("resource", resource).
		Str("state", string(state)).
		Msg("playing animation cue")

	return nil
}

// Stop halts playback and forgets the loaded resource
func (p *LogPlayer) Stop() {
	p.mu.Lock()
	p.resource = ""
	p.ready = false
	p.mu.Unlock()

	p.logger.Debug().Msg("animation player stopped")
}

// NopPlayer is a Player that does nothing. It is the default collaborator
// when no animation layer is wired in.
type NopPlayer struct{}

// Initialize does nothing
func (NopPlayer) Initialize(context.Context, string) error {
	return nil
}

// PlayForState does nothing
func (NopPlayer) PlayForState(context.Context, models.GameState) error {
	return nil
}

// Stop does nothing
func (NopPlayer) Stop() {}
