package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/partygames/sketchparty/internal/services/game Service

import "context"

// Service defines the interface for game session operations. It owns the
// authoritative session records and enforces the round state machine.
type Service interface {
	// InitializeGame creates a new session in the waiting state
	InitializeGame(ctx context.Context, input *InitializeGameInput) (*InitializeGameOutput, error)

	// StartGame moves a waiting session into its first round
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// SelectWord assigns a word for the current round and starts the
	// round timer
	SelectWord(ctx context.Context, input *SelectWordInput) (*SelectWordOutput, error)

	// SubmitGuess checks a player's guess against the current word and
	// settles scores on a match
	SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error)

	// EndRound settles the current round, advancing to the next one or
	// finishing the game
	EndRound(ctx context.Context, input *EndRoundInput) (*EndRoundOutput, error)

	// RevealHint hands out the next progressive hint for the current word
	RevealHint(ctx context.Context, input *RevealHintInput) (*RevealHintOutput, error)

	// UpdateGameState overwrites a session's state without legality
	// checks. Callers own any side effects the skipped transition implies.
	UpdateGameState(ctx context.Context, input *UpdateGameStateInput) (*UpdateGameStateOutput, error)

	// GetGameSession returns a snapshot of a session, or a nil session if
	// the ID is unknown
	GetGameSession(ctx context.Context, input *GetGameSessionInput) (*GetGameSessionOutput, error)

	// EndSession deletes a session and releases everything held for it
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// SetTimeUpHandler registers the callback invoked after a round
	// expires. At most one handler is kept; later calls replace it.
	SetTimeUpHandler(handler TimeUpHandler)
}
