package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/partygames/sketchparty/internal/models"
)

type MemoryRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    Repository
	testNow time.Time

	testSession *models.GameSession
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = NewMemory()
	s.testNow = time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)

	players := []*models.Player{
		{ID: "player-1", Name: "Alice", Score: 150, IsDrawing: true},
		{ID: "player-2", Name: "Bob", Score: 125},
	}

	s.testSession = &models.GameSession{
		ID:      "test-session-id",
		Players: players,
		CurrentWord: &models.GameWord{
			ID:         "word-1",
			Word:       "penguin",
			Difficulty: models.DifficultyMedium,
			Hints:      []string{"Cannot fly"},
		},
		CurrentDrawer: players[0],
		State:         models.GameStateDrawing,
		TimeRemaining: 42,
		RoundNumber:   2,
		Config:        models.DefaultGameConfig(),
		CreatedAt:     s.testNow,
		UpdatedAt:     s.testNow,
	}
}

func (s *MemoryRepositoryTestSuite) TestSaveAndGetSession() {
	err := s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: s.testSession})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "test-session-id"})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal(s.testSession, retrieved)
	s.Require().NotNil(retrieved.CurrentDrawer)
	s.Same(retrieved.Players[0], retrieved.CurrentDrawer)
}

func (s *MemoryRepositoryTestSuite) TestGetSession_ReturnsIsolatedCopy() {
	err := s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: s.testSession})
	s.Require().NoError(err)

	first, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "test-session-id"})
	s.Require().NoError(err)

	first.State = models.GameStateGameOver
	first.Players[0].Score = 9999

	second, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "test-session-id"})
	s.Require().NoError(err)
	s.Equal(models.GameStateDrawing, second.State)
	s.Equal(150, second.Players[0].Score)
}

func (s *MemoryRepositoryTestSuite) TestSaveSession_IsolatedFromCaller() {
	err := s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: s.testSession})
	s.Require().NoError(err)

	// Mutating the saved value must not reach the store.
	s.testSession.Players[1].Score = 9999

	retrieved, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "test-session-id"})
	s.Require().NoError(err)
	s.Equal(125, retrieved.Players[1].Score)
}

func (s *MemoryRepositoryTestSuite) TestSaveSession_ReplacesExisting() {
	err := s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: s.testSession})
	s.Require().NoError(err)

	updated := s.testSession.Clone()
	updated.State = models.GameStateCorrectGuess
	err = s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: updated})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "test-session-id"})
	s.Require().NoError(err)
	s.Equal(models.GameStateCorrectGuess, retrieved.State)
}

func (s *MemoryRepositoryTestSuite) TestSaveSession_Validation() {
	s.Error(s.repo.SaveSession(s.ctx, nil))
	s.Error(s.repo.SaveSession(s.ctx, &SaveSessionInput{}))
	s.Error(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: &models.GameSession{}}))
}

func (s *MemoryRepositoryTestSuite) TestGetSession_NotFound() {
	retrieved, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "missing"})

	s.Require().Error(err)
	s.ErrorIs(err, ErrSessionNotFound)
	s.Nil(retrieved)
}

func (s *MemoryRepositoryTestSuite) TestDeleteSession() {
	err := s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: s.testSession})
	s.Require().NoError(err)

	err = s.repo.DeleteSession(s.ctx, &DeleteSessionInput{SessionID: "test-session-id"})
	s.Require().NoError(err)

	_, err = s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "test-session-id"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *MemoryRepositoryTestSuite) TestDeleteSession_NotFound() {
	err := s.repo.DeleteSession(s.ctx, &DeleteSessionInput{SessionID: "missing"})

	s.Require().Error(err)
	s.ErrorIs(err, ErrSessionNotFound)
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}
