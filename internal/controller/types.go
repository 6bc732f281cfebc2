package controller

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/partygames/sketchparty/internal/anim"
	"github.com/partygames/sketchparty/internal/canvas"
	"github.com/partygames/sketchparty/internal/common/clock"
	"github.com/partygames/sketchparty/internal/common/uuid"
	"github.com/partygames/sketchparty/internal/models"
	"github.com/partygames/sketchparty/internal/services/game"
)

const (
	// DefaultGuessEndRoundDelay paces the gap between a correct guess and
	// the next round, long enough for the celebration cue to land
	DefaultGuessEndRoundDelay = 3 * time.Second

	// DefaultTimeUpEndRoundDelay paces the gap between an expired round
	// and the next one, giving players a beat to see the missed word
	DefaultTimeUpEndRoundDelay = 5 * time.Second
)

// EventListener receives game event payloads. Listeners run synchronously
// on the emitting goroutine, in registration order.
type EventListener func(payload *models.GameEventPayload)

// Config holds configuration for the session controller
type Config struct {
	// Service dependencies
	GameService   game.Service
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Animation is the decorative playback collaborator. Defaults to a
	// no-op player; its failures never interrupt game flow.
	Animation anim.Player

	// AnimationResource is handed to the animation player on game
	// initialization
	AnimationResource string

	// Canvas receives drawing updates. Defaults to a no-op board.
	Canvas canvas.Board

	// GuessEndRoundDelay overrides the pacing delay after a correct
	// guess. Zero applies the default.
	GuessEndRoundDelay time.Duration

	// TimeUpEndRoundDelay overrides the pacing delay after a round
	// expiry. Zero applies the default.
	TimeUpEndRoundDelay time.Duration

	// Logger reports swallowed collaborator failures and background
	// errors. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// ConfigOverrides selectively replaces game settings at initialization.
// Nil fields keep the documented defaults.
type ConfigOverrides struct {
	// MaxTime replaces the round length in seconds
	MaxTime *int

	// MaxRounds replaces the number of rounds
	MaxRounds *int

	// Difficulty replaces the word tier
	Difficulty *models.Difficulty

	// HintsEnabled toggles progressive hints
	HintsEnabled *bool
}
