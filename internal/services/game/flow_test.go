package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/partygames/sketchparty/internal/common/clock"
	"github.com/partygames/sketchparty/internal/common/uuid"
	"github.com/partygames/sketchparty/internal/models"
	sessionRepo "github.com/partygames/sketchparty/internal/repositories/session"
	"github.com/partygames/sketchparty/internal/services/timer"
	"github.com/partygames/sketchparty/internal/words"
)

// GameFlowTestSuite drives the service end to end against the real word
// bank, the real in-memory store and a real timer ticking every 10ms, so
// one game second passes in 10ms of wall time.
type GameFlowTestSuite struct {
	suite.Suite
	ctx         context.Context
	gameService Service
	timeUp      chan string
}

func (s *GameFlowTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.timeUp = make(chan string, 1)

	bank, err := words.NewBank(&words.Config{
		Words: []*models.GameWord{
			{ID: "w1", Word: "penguin", Difficulty: models.DifficultyMedium, Hints: []string{"Cannot fly"}},
			{ID: "w2", Word: "volcano", Difficulty: models.DifficultyMedium, Hints: []string{"It erupts"}},
			{ID: "w3", Word: "suitcase", Difficulty: models.DifficultyMedium, Hints: []string{"Packed for trips"}},
		},
		Seed: 7,
	})
	s.Require().NoError(err)

	roundTimer, err := timer.New(&timer.Config{TickInterval: 10 * time.Millisecond})
	s.Require().NoError(err)

	svc, err := New(&Config{
		SessionRepo:   sessionRepo.NewMemory(),
		WordCatalog:   bank,
		RoundTimer:    roundTimer,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)

	svc.SetTimeUpHandler(func(sessionID string) {
		select {
		case s.timeUp <- sessionID:
		default:
		}
	})
	s.gameService = svc
}

func (s *GameFlowTestSuite) awaitTimeUp() string {
	select {
	case id := <-s.timeUp:
		return id
	case <-time.After(2 * time.Second):
		s.FailNow("round timer never expired")
		return ""
	}
}

func (s *GameFlowTestSuite) TestFullGame_GuessesAndExpiries() {
	// Two rounds, five game seconds each
	initOutput, err := s.gameService.InitializeGame(s.ctx, &InitializeGameInput{
		Players: []*models.Player{
			{ID: "alice", Name: "Alice"},
			{ID: "bob", Name: "Bob"},
			{ID: "charlie", Name: "Charlie"},
		},
		Config: &models.GameConfig{
			MaxTime:      5,
			MaxRounds:    2,
			Difficulty:   models.DifficultyMedium,
			HintsEnabled: true,
		},
	})
	s.Require().NoError(err)
	sessionID := initOutput.Session.ID
	s.Equal(models.GameStateWaiting, initOutput.Session.State)

	startOutput, err := s.gameService.StartGame(s.ctx, &StartGameInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal("alice", startOutput.Session.CurrentDrawer.ID)

	// Round one: Bob misses, then hits
	selectOutput, err := s.gameService.SelectWord(s.ctx, &SelectWordInput{SessionID: sessionID})
	s.Require().NoError(err)
	word := selectOutput.Word.Word

	missOutput, err := s.gameService.SubmitGuess(s.ctx, &SubmitGuessInput{
		SessionID: sessionID,
		PlayerID:  "bob",
		Guess:     "definitely not it",
	})
	s.Require().NoError(err)
	s.False(missOutput.Correct)
	s.Equal(models.GameStateDrawing, missOutput.Session.State)

	hitOutput, err := s.gameService.SubmitGuess(s.ctx, &SubmitGuessInput{
		SessionID: sessionID,
		PlayerID:  "bob",
		Guess:     word,
	})
	s.Require().NoError(err)
	s.True(hitOutput.Correct)
	s.Equal(models.GameStateCorrectGuess, hitOutput.Session.State)

	// The guess landed somewhere inside the countdown, so the award sits
	// between the floor and the full-clock bonus
	s.GreaterOrEqual(hitOutput.GuesserPoints, 100)
	s.LessOrEqual(hitOutput.GuesserPoints, 150)
	s.Equal(50, hitOutput.DrawerPoints)
	s.Equal(hitOutput.GuesserPoints, hitOutput.Session.PlayerByID("bob").Score)
	s.Equal(50, hitOutput.Session.PlayerByID("alice").Score)

	// Round two: the pen moves to Bob and nobody guesses
	endOutput, err := s.gameService.EndRound(s.ctx, &EndRoundInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.False(endOutput.GameOver)
	s.Equal(2, endOutput.Session.RoundNumber)
	s.Equal("bob", endOutput.Session.CurrentDrawer.ID)

	_, err = s.gameService.SelectWord(s.ctx, &SelectWordInput{SessionID: sessionID})
	s.Require().NoError(err)

	s.Equal(sessionID, s.awaitTimeUp())

	getOutput, err := s.gameService.GetGameSession(s.ctx, &GetGameSessionInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal(models.GameStateTimeUp, getOutput.Session.State)
	s.Equal(0, getOutput.Session.TimeRemaining)

	// Expired rounds award nothing and take no further guesses
	s.Equal(50, getOutput.Session.PlayerByID("alice").Score)
	lateOutput, err := s.gameService.SubmitGuess(s.ctx, &SubmitGuessInput{
		SessionID: sessionID,
		PlayerID:  "charlie",
		Guess:     word,
	})
	s.Require().ErrorIs(err, ErrInvalidStateTransition)
	s.Nil(lateOutput)

	// Settling the final round finishes the game
	finalOutput, err := s.gameService.EndRound(s.ctx, &EndRoundInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.True(finalOutput.GameOver)
	s.Equal(models.GameStateGameOver, finalOutput.Session.State)
	s.Nil(finalOutput.Session.CurrentDrawer)

	_, err = s.gameService.SelectWord(s.ctx, &SelectWordInput{SessionID: sessionID})
	s.Require().ErrorIs(err, ErrInvalidStateTransition)

	// Tearing the session down releases everything
	_, err = s.gameService.EndSession(s.ctx, &EndSessionInput{SessionID: sessionID})
	s.Require().NoError(err)

	goneOutput, err := s.gameService.GetGameSession(s.ctx, &GetGameSessionInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Nil(goneOutput.Session)
}

func (s *GameFlowTestSuite) TestCountdown_PersistedWhileDrawing() {
	initOutput, err := s.gameService.InitializeGame(s.ctx, &InitializeGameInput{
		Players: []*models.Player{
			{ID: "alice", Name: "Alice"},
			{ID: "bob", Name: "Bob"},
		},
		Config: &models.GameConfig{MaxTime: 5, MaxRounds: 1, Difficulty: models.DifficultyMedium, HintsEnabled: true},
	})
	s.Require().NoError(err)
	sessionID := initOutput.Session.ID

	_, err = s.gameService.StartGame(s.ctx, &StartGameInput{SessionID: sessionID})
	s.Require().NoError(err)
	_, err = s.gameService.SelectWord(s.ctx, &SelectWordInput{SessionID: sessionID})
	s.Require().NoError(err)

	// Let a couple of game seconds pass, then observe a lower countdown
	time.Sleep(35 * time.Millisecond)

	getOutput, err := s.gameService.GetGameSession(s.ctx, &GetGameSessionInput{SessionID: sessionID})
	s.Require().NoError(err)
	s.Equal(models.GameStateDrawing, getOutput.Session.State)
	s.Less(getOutput.Session.TimeRemaining, 5)
	s.GreaterOrEqual(getOutput.Session.TimeRemaining, 0)

	s.Equal(sessionID, s.awaitTimeUp())
}

func TestGameFlowTestSuite(t *testing.T) {
	suite.Run(t, new(GameFlowTestSuite))
}
