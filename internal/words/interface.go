package words

import (
	"github.com/partygames/sketchparty/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_catalog.go github.com/partygames/sketchparty/internal/words Catalog

// Catalog defines the interface for word lookup and guess validation
type Catalog interface {
	// RandomWord returns a uniformly-random word from the given tier
	RandomWord(tier models.Difficulty) (*models.GameWord, error)

	// WordsForTier returns a copy of the tier's word list, empty if the
	// tier is unknown
	WordsForTier(tier models.Difficulty) []*models.GameWord

	// ValidateGuess reports whether guess matches target after
	// normalization
	ValidateGuess(guess, target string) bool

	// IsCloseGuess reports whether guess is a near miss of target
	IsCloseGuess(guess, target string) bool

	// AddWord appends a word to its tier's list
	AddWord(word *models.GameWord) error
}
