package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInsufficientPlayers    GameError = "at least two players are required"
	ErrSessionNotFound        GameError = "game session not found"
	ErrInvalidStateTransition GameError = "operation not allowed in the current game state"
	ErrNoActiveWord           GameError = "no word has been selected for this round"
	ErrPlayerNotFound         GameError = "player is not part of this session"
	ErrDrawerCannotGuess      GameError = "the drawer cannot guess their own word"
	ErrHintsDisabled          GameError = "hints are disabled for this session"
	ErrNoHintsRemaining       GameError = "every hint for this word has been revealed"
	ErrInvalidPlayer          GameError = "players must have an ID and a name"
	ErrUnknownGameState       GameError = "unknown game state"
	ErrNilInput               GameError = "input cannot be nil"
	ErrMissingSessionID       GameError = "session ID is required"
	ErrNilConfig              GameError = "config cannot be nil"
	ErrNilSessionRepo         GameError = "session repository cannot be nil"
	ErrNilWordCatalog         GameError = "word catalog cannot be nil"
	ErrNilRoundTimer          GameError = "round timer cannot be nil"
	ErrNilClock               GameError = "clock cannot be nil"
	ErrNilUUIDGenerator       GameError = "UUID generator cannot be nil"
)
