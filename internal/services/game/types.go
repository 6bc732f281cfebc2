package game

import (
	"github.com/rs/zerolog"

	"github.com/partygames/sketchparty/internal/common/clock"
	"github.com/partygames/sketchparty/internal/common/uuid"
	"github.com/partygames/sketchparty/internal/models"
	sessionRepo "github.com/partygames/sketchparty/internal/repositories/session"
	"github.com/partygames/sketchparty/internal/services/timer"
	"github.com/partygames/sketchparty/internal/words"
)

// TimeUpHandler is invoked after the engine applies a round expiry. It runs
// on the timer's goroutine, after the session has been persisted in the
// time-up state.
type TimeUpHandler func(sessionID string)

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	WordCatalog   words.Catalog
	RoundTimer    timer.Service
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger reports failures on timer-driven paths that have no caller
	// to return an error to. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// InitializeGameInput contains parameters for creating a new session
type InitializeGameInput struct {
	// Players are the participants, in drawer rotation order. At least
	// two are required, each with an ID and a name.
	Players []*models.Player

	// Config holds the game settings. Nil applies the documented
	// defaults; a non-nil value is taken as the complete settings.
	Config *models.GameConfig
}

// InitializeGameOutput contains the result of creating a session
type InitializeGameOutput struct {
	// Session is a snapshot of the new session
	Session *models.GameSession
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	// SessionID identifies the session to start
	SessionID string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	// Session is a snapshot taken after the first round began
	Session *models.GameSession
}

// SelectWordInput contains parameters for assigning a round's word
type SelectWordInput struct {
	// SessionID identifies the session to select a word for
	SessionID string
}

// SelectWordOutput contains the result of assigning a word
type SelectWordOutput struct {
	// Session is a snapshot taken after the word was assigned
	Session *models.GameSession

	// Word is the word the drawer must draw
	Word *models.GameWord
}

// SubmitGuessInput contains parameters for checking a guess
type SubmitGuessInput struct {
	// SessionID identifies the session being guessed in
	SessionID string

	// PlayerID is the guessing player
	PlayerID string

	// Guess is the submitted text
	Guess string
}

// SubmitGuessOutput contains the result of checking a guess
type SubmitGuessOutput struct {
	// Session is a snapshot taken after the guess was processed
	Session *models.GameSession

	// Correct reports whether the guess matched the current word
	Correct bool

	// Close reports a near miss. Always false when Correct is true.
	Close bool

	// GuesserPoints is the award added to the guesser's score. Zero
	// unless Correct.
	GuesserPoints int

	// DrawerPoints is the award added to the drawer's score. Zero unless
	// Correct.
	DrawerPoints int
}

// EndRoundInput contains parameters for settling the current round
type EndRoundInput struct {
	// SessionID identifies the session whose round to settle
	SessionID string
}

// EndRoundOutput contains the result of settling a round
type EndRoundOutput struct {
	// Session is a snapshot taken after the round was settled
	Session *models.GameSession

	// GameOver indicates the session reached its final round and is now
	// finished
	GameOver bool
}

// RevealHintInput contains parameters for revealing the next hint
type RevealHintInput struct {
	// SessionID identifies the session to reveal a hint for
	SessionID string
}

// RevealHintOutput contains the result of revealing a hint
type RevealHintOutput struct {
	// Session is a snapshot taken after the reveal
	Session *models.GameSession

	// Hint is the revealed clue text
	Hint string

	// HintNumber is the 1-based position of the revealed hint
	HintNumber int

	// TotalHints is how many hints the current word carries
	TotalHints int
}

// UpdateGameStateInput contains parameters for overwriting a session state
type UpdateGameStateInput struct {
	// SessionID identifies the session to overwrite
	SessionID string

	// State is the state to force
	State models.GameState
}

// UpdateGameStateOutput contains the result of overwriting a state
type UpdateGameStateOutput struct {
	// Session is a snapshot taken after the overwrite
	Session *models.GameSession
}

// GetGameSessionInput contains parameters for reading a session
type GetGameSessionInput struct {
	// SessionID identifies the session to read
	SessionID string
}

// GetGameSessionOutput contains the result of reading a session
type GetGameSessionOutput struct {
	// Session is a snapshot of the session, nil when the ID is unknown
	Session *models.GameSession
}

// EndSessionInput contains parameters for deleting a session
type EndSessionInput struct {
	// SessionID identifies the session to delete
	SessionID string
}

// EndSessionOutput contains the result of deleting a session
type EndSessionOutput struct{}
