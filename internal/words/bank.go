package words

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/partygames/sketchparty/internal/models"
)

//go:embed words.json
var embeddedCorpus []byte

// closeGuessMaxDistance is the largest edit distance still reported as a
// near miss
const closeGuessMaxDistance = 2

// Bank is the default Catalog implementation: an in-memory word list
// grouped by tier. Safe for concurrent use.
type Bank struct {
	mu     sync.Mutex
	random *rand.Rand
	tiers  map[models.Difficulty][]*models.GameWord
}

// NewBank creates a word bank from the config's word list, falling back to
// the embedded default corpus
func NewBank(cfg *Config) (*Bank, error) {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	var list []*models.GameWord
	if cfg != nil && cfg.Words != nil {
		list = cfg.Words
	} else {
		loaded, err := loadEmbeddedCorpus()
		if err != nil {
			return nil, err
		}
		list = loaded
	}

	b := &Bank{
		random: rand.New(rand.NewSource(seed)),
		tiers:  make(map[models.Difficulty][]*models.GameWord),
	}

	for _, w := range list {
		if err := b.AddWord(w); err != nil {
			return nil, fmt.Errorf("failed to load word %q: %w", wordText(w), err)
		}
	}

	return b, nil
}

// RandomWord returns a uniformly-random word from the given tier
func (b *Bank) RandomWord(tier models.Difficulty) (*models.GameWord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.tiers[tier]
	if len(list) == 0 {
		return nil, ErrNoWordsAvailable
	}

	return list[b.random.Intn(len(list))].Clone(), nil
}

// WordsForTier returns a copy of the tier's word list. Unknown tiers yield
// an empty list, never an error.
func (b *Bank) WordsForTier(tier models.Difficulty) []*models.GameWord {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.tiers[tier]
	out := make([]*models.GameWord, len(list))
	for i, w := range list {
		out[i] = w.Clone()
	}
	return out
}

// ValidateGuess reports whether guess matches target after trimming and
// case-folding both. Empty strings never match.
func (b *Bank) ValidateGuess(guess, target string) bool {
	g := normalize(guess)
	t := normalize(target)
	if g == "" || t == "" {
		return false
	}
	return g == t
}

// IsCloseGuess reports whether guess is within a small edit distance of
// target. Exact matches are not close, they are correct.
func (b *Bank) IsCloseGuess(guess, target string) bool {
	g := normalize(guess)
	t := normalize(target)
	if g == "" || t == "" {
		return false
	}

	dist := levenshtein.ComputeDistance(g, t)
	return dist > 0 && dist <= closeGuessMaxDistance
}

// AddWord appends a word to its tier's list. Duplicates are not rejected;
// deduplication is the caller's concern.
func (b *Bank) AddWord(word *models.GameWord) error {
	if word == nil || strings.TrimSpace(word.Word) == "" || !models.KnownDifficulty(word.Difficulty) {
		return ErrInvalidWord
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tiers[word.Difficulty] = append(b.tiers[word.Difficulty], word.Clone())
	return nil
}

// normalize trims surrounding whitespace and case-folds
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// wordText is a nil-safe accessor used in error messages
func wordText(w *models.GameWord) string {
	if w == nil {
		return ""
	}
	return w.Word
}

// loadEmbeddedCorpus parses the default word list shipped with the package
func loadEmbeddedCorpus() ([]*models.GameWord, error) {
	var entries []corpusEntry
	if err := json.Unmarshal(embeddedCorpus, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse embedded corpus: %w", err)
	}

	out := make([]*models.GameWord, 0, len(entries))
	for _, e := range entries {
		out = append(out, &models.GameWord{
			ID:         e.ID,
			Word:       e.Word,
			Difficulty: models.Difficulty(e.Difficulty),
			Category:   e.Category,
			Hints:      e.Hints,
		})
	}
	return out, nil
}
