package models

// Default game settings applied when no override is supplied.
const (
	// DefaultMaxTime is the default round length in seconds
	DefaultMaxTime = 60

	// DefaultMaxRounds is the default number of rounds per game
	DefaultMaxRounds = 5

	// DefaultDifficulty is the word tier used when none is configured
	DefaultDifficulty = DifficultyMedium
)

// GameConfig holds the per-game settings. Fixed at initialization.
type GameConfig struct {
	// MaxTime is the round length in seconds
	MaxTime int

	// MaxRounds is the number of rounds before the game ends
	MaxRounds int

	// Difficulty selects the word tier used for every round
	Difficulty Difficulty

	// HintsEnabled controls whether hint reveals are allowed
	HintsEnabled bool
}

// DefaultGameConfig returns the documented default settings
func DefaultGameConfig() GameConfig {
	return GameConfig{
		MaxTime:      DefaultMaxTime,
		MaxRounds:    DefaultMaxRounds,
		Difficulty:   DefaultDifficulty,
		HintsEnabled: true,
	}
}
