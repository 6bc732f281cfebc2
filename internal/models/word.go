package models

// Difficulty identifies a word difficulty tier
type Difficulty string

const (
	// DifficultyEasy is the easiest word tier
	DifficultyEasy Difficulty = "EASY"

	// DifficultyMedium is the middle word tier and the default
	DifficultyMedium Difficulty = "MEDIUM"

	// DifficultyHard is the hardest word tier
	DifficultyHard Difficulty = "HARD"
)

// KnownDifficulty reports whether d is one of the defined tiers
func KnownDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// GameWord represents a drawable word from the catalog
type GameWord struct {
	// ID is the unique identifier for the word
	ID string

	// Word is the literal text players must guess
	Word string

	// Difficulty is the tier the word belongs to
	Difficulty Difficulty

	// Category is a grouping label such as "animals" or "objects"
	Category string

	// Hints are progressive clues revealed during a round
	Hints []string
}

// Clone returns a deep copy of the word
func (w *GameWord) Clone() *GameWord {
	if w == nil {
		return nil
	}

	cp := *w
	if w.Hints != nil {
		cp.Hints = make([]string, len(w.Hints))
		copy(cp.Hints, w.Hints)
	}
	return &cp
}
