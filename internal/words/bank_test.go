package words

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/partygames/sketchparty/internal/models"
)

type BankTestSuite struct {
	suite.Suite
	bank *Bank

	// Test data
	easyWord   *models.GameWord
	mediumWord *models.GameWord
	hardWord   *models.GameWord
}

func (s *BankTestSuite) SetupTest() {
	s.easyWord = &models.GameWord{
		ID:         "easy-1",
		Word:       "cat",
		Difficulty: models.DifficultyEasy,
		Category:   "animals",
		Hints:      []string{"It purrs", "Chases mice"},
	}
	s.mediumWord = &models.GameWord{
		ID:         "medium-1",
		Word:       "penguin",
		Difficulty: models.DifficultyMedium,
		Category:   "animals",
		Hints:      []string{"Cannot fly"},
	}
	s.hardWord = &models.GameWord{
		ID:         "hard-1",
		Word:       "photosynthesis",
		Difficulty: models.DifficultyHard,
		Category:   "science",
		Hints:      []string{"Plants do it"},
	}

	bank, err := NewBank(&Config{
		Words: []*models.GameWord{s.easyWord, s.mediumWord, s.hardWord},
		Seed:  42,
	})
	s.Require().NoError(err)
	s.bank = bank
}

func (s *BankTestSuite) TestNewBank_EmbeddedCorpus() {
	bank, err := NewBank(nil)

	s.Require().NoError(err)
	s.NotEmpty(bank.WordsForTier(models.DifficultyEasy))
	s.NotEmpty(bank.WordsForTier(models.DifficultyMedium))
	s.NotEmpty(bank.WordsForTier(models.DifficultyHard))
}

func (s *BankTestSuite) TestNewBank_RejectsInvalidWord() {
	_, err := NewBank(&Config{
		Words: []*models.GameWord{{Word: "  ", Difficulty: models.DifficultyEasy}},
	})

	s.Require().Error(err)
	s.ErrorIs(err, ErrInvalidWord)
}

func (s *BankTestSuite) TestRandomWord_ReturnsWordFromTier() {
	for i := 0; i < 10; i++ {
		word, err := s.bank.RandomWord(models.DifficultyMedium)

		s.Require().NoError(err)
		s.Require().NotNil(word)
		s.Equal(models.DifficultyMedium, word.Difficulty)
	}
}

func (s *BankTestSuite) TestRandomWord_EmptyTier() {
	bank, err := NewBank(&Config{Words: []*models.GameWord{s.easyWord}})
	s.Require().NoError(err)

	word, err := bank.RandomWord(models.DifficultyHard)

	s.Require().Error(err)
	s.ErrorIs(err, ErrNoWordsAvailable)
	s.Nil(word)
}

func (s *BankTestSuite) TestRandomWord_ReturnsCopy() {
	word, err := s.bank.RandomWord(models.DifficultyEasy)
	s.Require().NoError(err)

	word.Word = "mutated"
	word.Hints[0] = "mutated hint"

	again, err := s.bank.RandomWord(models.DifficultyEasy)
	s.Require().NoError(err)
	s.Equal("cat", again.Word)
	s.Equal("It purrs", again.Hints[0])
}

func (s *BankTestSuite) TestWordsForTier_DefensiveCopy() {
	list := s.bank.WordsForTier(models.DifficultyEasy)
	s.Require().Len(list, 1)

	list[0].Word = "mutated"

	fresh := s.bank.WordsForTier(models.DifficultyEasy)
	s.Require().Len(fresh, 1)
	s.Equal("cat", fresh[0].Word)
}

func (s *BankTestSuite) TestWordsForTier_UnknownTier() {
	s.Empty(s.bank.WordsForTier(models.Difficulty("IMPOSSIBLE")))
}

func (s *BankTestSuite) TestValidateGuess() {
	tests := []struct {
		name   string
		guess  string
		target string
		want   bool
	}{
		{name: "exact match", guess: "cat", target: "cat", want: true},
		{name: "case insensitive", guess: "CaT", target: "cat", want: true},
		{name: "surrounding whitespace", guess: "  cat\t", target: "cat", want: true},
		{name: "wrong word", guess: "dog", target: "cat", want: false},
		{name: "empty guess", guess: "", target: "cat", want: false},
		{name: "whitespace only guess", guess: "   ", target: "cat", want: false},
		{name: "empty target", guess: "cat", target: "", want: false},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, s.bank.ValidateGuess(tt.guess, tt.target))
		})
	}
}

func (s *BankTestSuite) TestIsCloseGuess() {
	tests := []struct {
		name   string
		guess  string
		target string
		want   bool
	}{
		{name: "one letter off", guess: "penguim", target: "penguin", want: true},
		{name: "two letters off", guess: "pengium", target: "penguin", want: true},
		{name: "exact match is not close", guess: "penguin", target: "penguin", want: false},
		{name: "case folded before measuring", guess: "PENGUIM", target: "penguin", want: true},
		{name: "far off", guess: "walrus", target: "penguin", want: false},
		{name: "empty guess", guess: "", target: "penguin", want: false},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, s.bank.IsCloseGuess(tt.guess, tt.target))
		})
	}
}

func (s *BankTestSuite) TestAddWord_AppendsToTier() {
	err := s.bank.AddWord(&models.GameWord{
		ID:         "easy-2",
		Word:       "dog",
		Difficulty: models.DifficultyEasy,
	})

	s.Require().NoError(err)
	s.Len(s.bank.WordsForTier(models.DifficultyEasy), 2)
}

func (s *BankTestSuite) TestAddWord_AllowsDuplicates() {
	s.Require().NoError(s.bank.AddWord(s.easyWord))

	s.Len(s.bank.WordsForTier(models.DifficultyEasy), 2)
}

func (s *BankTestSuite) TestAddWord_RejectsUnknownTier() {
	err := s.bank.AddWord(&models.GameWord{Word: "ok", Difficulty: "LEGENDARY"})

	s.Require().Error(err)
	s.ErrorIs(err, ErrInvalidWord)
}

func (s *BankTestSuite) TestAddWord_RejectsNil() {
	err := s.bank.AddWord(nil)

	s.Require().Error(err)
	s.ErrorIs(err, ErrInvalidWord)
}

func TestBankSuite(t *testing.T) {
	suite.Run(t, new(BankTestSuite))
}
