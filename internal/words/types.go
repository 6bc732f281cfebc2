package words

import (
	"github.com/partygames/sketchparty/internal/models"
)

// Config holds configuration for the word bank
type Config struct {
	// Words seeds the bank. When nil, the embedded default corpus is
	// loaded instead.
	Words []*models.GameWord

	// Seed fixes the selection sequence for tests. Zero seeds from the
	// current time.
	Seed int64
}

// corpusEntry is the on-disk shape of one embedded corpus word
type corpusEntry struct {
	ID         string   `json:"id"`
	Word       string   `json:"word"`
	Difficulty string   `json:"difficulty"`
	Category   string   `json:"category"`
	Hints      []string `json:"hints"`
}
