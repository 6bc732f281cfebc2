package game

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/partygames/sketchparty/internal/common/clock"
	"github.com/partygames/sketchparty/internal/common/uuid"
	"github.com/partygames/sketchparty/internal/models"
	sessionRepo "github.com/partygames/sketchparty/internal/repositories/session"
	"github.com/partygames/sketchparty/internal/scoring"
	"github.com/partygames/sketchparty/internal/services/timer"
	"github.com/partygames/sketchparty/internal/words"
)

// MinPlayers is the smallest party a session can start with.
const MinPlayers = 2

type service struct {
	sessionRepo sessionRepo.Repository
	wordCatalog words.Catalog
	roundTimer  timer.Service
	clock       clock.Clock
	uuidGen     uuid.UUID
	logger      zerolog.Logger

	// mu guards locks. Each session gets its own mutex so an operation's
	// read-modify-write against the stored snapshot is atomic per session
	// without serializing unrelated sessions.
	mu    sync.Mutex
	locks map[string]*sync.Mutex

	handlerMu     sync.RWMutex
	timeUpHandler TimeUpHandler
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.WordCatalog == nil {
		return nil, ErrNilWordCatalog
	}

	if cfg.RoundTimer == nil {
		return nil, ErrNilRoundTimer
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		wordCatalog: cfg.WordCatalog,
		roundTimer:  cfg.RoundTimer,
		clock:       cfg.Clock,
		uuidGen:     cfg.UUIDGenerator,
		logger:      logger,
		locks:       make(map[string]*sync.Mutex),
	}, nil
}

// InitializeGame creates a new session in the waiting state
func (s *service) InitializeGame(ctx context.Context, input *InitializeGameInput) (*InitializeGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if len(input.Players) < MinPlayers {
		return nil, ErrInsufficientPlayers
	}

	// Players join with clean scores and no pen
	players := make([]*models.Player, len(input.Players))
	for i, p := range input.Players {
		if p == nil || p.ID == "" || p.Name == "" {
			return nil, ErrInvalidPlayer
		}

		cp := p.Clone()
		cp.Score = 0
		cp.IsDrawing = false
		players[i] = cp
	}

	cfg := normalizeConfig(input.Config)
	now := s.clock.Now()

	session := &models.GameSession{
		ID:            s.uuidGen.NewUUID(),
		Players:       players,
		State:         models.GameStateWaiting,
		TimeRemaining: cfg.MaxTime,
		Config:        cfg,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &InitializeGameOutput{Session: session}, nil
}

// StartGame moves a waiting session into its first round
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	lock := s.sessionLock(input.SessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if session.State != models.GameStateWaiting {
		return nil, ErrInvalidStateTransition
	}

	s.advanceRound(session)

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &StartGameOutput{Session: session}, nil
}

// SelectWord draws a word for the current round and arms the round timer
func (s *service) SelectWord(ctx context.Context, input *SelectWordInput) (*SelectWordOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	lock := s.sessionLock(input.SessionID)
	lock.Lock()
	output, err := s.selectWordLocked(ctx, input)
	lock.Unlock()

	if err != nil {
		return nil, err
	}

	// The timer starts outside the session lock. Its first tick is
	// delivered synchronously and the tick path takes the same lock.
	round := output.Session.RoundNumber
	_, err = s.roundTimer.StartTimer(ctx, &timer.StartTimerInput{
		SessionID: input.SessionID,
		Duration:  output.Session.Config.MaxTime,
		OnTick: func(remaining int) {
			s.applyTick(input.SessionID, round, remaining)
		},
		OnComplete: func() {
			s.applyTimeUp(input.SessionID, round)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start round timer: %w", err)
	}

	return output, nil
}

func (s *service) selectWordLocked(ctx context.Context, input *SelectWordInput) (*SelectWordOutput, error) {
	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if session.State == models.GameStateGameOver || session.RoundNumber == 0 {
		return nil, ErrInvalidStateTransition
	}

	// Draw from the tier the session was configured with
	word, err := s.wordCatalog.RandomWord(session.Config.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to select word: %w", err)
	}

	session.CurrentWord = word
	session.HintsRevealed = 0
	session.State = models.GameStateDrawing
	session.TimeRemaining = session.Config.MaxTime
	session.UpdatedAt = s.clock.Now()

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &SelectWordOutput{Session: session, Word: word}, nil
}

// SubmitGuess checks a guess against the current word, settling the round
// when it hits
func (s *service) SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	if input.PlayerID == "" {
		return nil, ErrPlayerNotFound
	}

	lock := s.sessionLock(input.SessionID)
	lock.Lock()
	output, err := s.submitGuessLocked(ctx, input)
	lock.Unlock()

	if err != nil {
		return nil, err
	}

	if output.Correct {
		// The winning guess is persisted and the lock released, so an
		// in-flight expiry can drain before the stop barrier.
		if _, err := s.roundTimer.StopTimer(ctx, &timer.StopTimerInput{SessionID: input.SessionID}); err != nil {
			return nil, fmt.Errorf("failed to stop round timer: %w", err)
		}
	}

	return output, nil
}

func (s *service) submitGuessLocked(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error) {
	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if !models.RoundActive(session.State) {
		return nil, ErrInvalidStateTransition
	}

	if session.CurrentWord == nil {
		return nil, ErrNoActiveWord
	}

	player := session.PlayerByID(input.PlayerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	if session.CurrentDrawer != nil && session.CurrentDrawer.ID == input.PlayerID {
		return nil, ErrDrawerCannotGuess
	}

	if !s.wordCatalog.ValidateGuess(input.Guess, session.CurrentWord.Word) {
		// A miss mutates nothing
		return &SubmitGuessOutput{
			Session: session,
			Close:   s.wordCatalog.IsCloseGuess(input.Guess, session.CurrentWord.Word),
		}, nil
	}

	guesserPoints := scoring.GuessPoints(session.TimeRemaining, session.Config.MaxTime)
	drawerPoints := scoring.DrawerPoints()

	player.Score += guesserPoints
	if session.CurrentDrawer != nil {
		if drawer := session.PlayerByID(session.CurrentDrawer.ID); drawer != nil {
			drawer.Score += drawerPoints
		}
	}

	session.State = models.GameStateCorrectGuess
	session.UpdatedAt = s.clock.Now()

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &SubmitGuessOutput{
		Session:       session,
		Correct:       true,
		GuesserPoints: guesserPoints,
		DrawerPoints:  drawerPoints,
	}, nil
}

// EndRound settles the current round, advancing to the next one or
// finishing the game
func (s *service) EndRound(ctx context.Context, input *EndRoundInput) (*EndRoundOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	// Settling a round always silences its timer first. An expiry that
	// already fired no-ops later on the round check.
	if _, err := s.roundTimer.StopTimer(ctx, &timer.StopTimerInput{SessionID: input.SessionID}); err != nil {
		return nil, fmt.Errorf("failed to stop round timer: %w", err)
	}

	lock := s.sessionLock(input.SessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if session.State == models.GameStateGameOver {
		return nil, ErrInvalidStateTransition
	}

	gameOver := session.RoundNumber >= session.Config.MaxRounds
	if gameOver {
		s.finishGame(session)
	} else {
		s.advanceRound(session)
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &EndRoundOutput{Session: session, GameOver: gameOver}, nil
}

// RevealHint uncovers the next hint for the current word
func (s *service) RevealHint(ctx context.Context, input *RevealHintInput) (*RevealHintOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	lock := s.sessionLock(input.SessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if !session.Config.HintsEnabled {
		return nil, ErrHintsDisabled
	}

	if !models.RoundActive(session.State) {
		return nil, ErrInvalidStateTransition
	}

	if session.CurrentWord == nil {
		return nil, ErrNoActiveWord
	}

	total := len(session.CurrentWord.Hints)
	if session.HintsRevealed >= total {
		return nil, ErrNoHintsRemaining
	}

	hint := session.CurrentWord.Hints[session.HintsRevealed]
	session.HintsRevealed++
	session.UpdatedAt = s.clock.Now()

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &RevealHintOutput{
		Session:    session,
		Hint:       hint,
		HintNumber: session.HintsRevealed,
		TotalHints: total,
	}, nil
}

// UpdateGameState overwrites the session state without legality checks.
// Side effects of a transition, scoring or timers, stay with the caller.
func (s *service) UpdateGameState(ctx context.Context, input *UpdateGameStateInput) (*UpdateGameStateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	if !models.KnownGameState(input.State) {
		return nil, ErrUnknownGameState
	}

	lock := s.sessionLock(input.SessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	session.State = input.State
	session.UpdatedAt = s.clock.Now()

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &UpdateGameStateOutput{Session: session}, nil
}

// GetGameSession returns the current session snapshot. An unknown id reads
// back as an absent session rather than an error.
func (s *service) GetGameSession(ctx context.Context, input *GetGameSessionInput) (*GetGameSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return &GetGameSessionOutput{}, nil
		}

		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return &GetGameSessionOutput{Session: session}, nil
}

// EndSession removes a session and silences its timer
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	lock := s.sessionLock(input.SessionID)
	lock.Lock()
	err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		SessionID: input.SessionID,
	})
	lock.Unlock()

	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}

		return nil, fmt.Errorf("failed to delete session: %w", err)
	}

	if _, err := s.roundTimer.StopTimer(ctx, &timer.StopTimerInput{SessionID: input.SessionID}); err != nil {
		return nil, fmt.Errorf("failed to stop round timer: %w", err)
	}

	s.dropSessionLock(input.SessionID)

	return &EndSessionOutput{}, nil
}

// SetTimeUpHandler registers the callback invoked after a round expires
func (s *service) SetTimeUpHandler(handler TimeUpHandler) {
	s.handlerMu.Lock()
	defer s.handlerMu.Unlock()

	s.timeUpHandler = handler
}

// applyTick persists the countdown value published by the round timer.
// Ticks from a replaced or already settled round fail the round check and
// are dropped.
func (s *service) applyTick(sessionID string, round, remaining int) {
	ctx := context.Background()

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return
	}

	if session.State != models.GameStateDrawing || session.RoundNumber != round {
		return
	}

	if remaining < 0 {
		remaining = 0
	}

	session.TimeRemaining = remaining
	session.UpdatedAt = s.clock.Now()

	if err := s.saveSession(ctx, session); err != nil {
		s.logger.Warn().
			Err(err).
			Str("session_id", sessionID).
			Msg("failed to persist countdown tick")
	}
}

// applyTimeUp settles a round whose timer ran out. When a correct guess
// wins the race the state check makes this a no-op, so a round is never
// settled twice.
func (s *service) applyTimeUp(sessionID string, round int) {
	ctx := context.Background()

	lock := s.sessionLock(sessionID)
	lock.Lock()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		lock.Unlock()
		return
	}

	if !models.RoundActive(session.State) || session.RoundNumber != round {
		lock.Unlock()
		return
	}

	session.TimeRemaining = 0
	session.State = models.GameStateTimeUp
	session.UpdatedAt = s.clock.Now()

	if err := s.saveSession(ctx, session); err != nil {
		lock.Unlock()
		s.logger.Error().
			Err(err).
			Str("session_id", sessionID).
			Msg("failed to persist round expiry")
		return
	}

	lock.Unlock()

	s.handlerMu.RLock()
	handler := s.timeUpHandler
	s.handlerMu.RUnlock()

	if handler != nil {
		handler(sessionID)
	}
}

// advanceRound moves the session into its next round: round-robin drawer
// rotation by join order, fresh word slot, full clock
func (s *service) advanceRound(session *models.GameSession) {
	session.RoundNumber++

	drawer := session.Players[(session.RoundNumber-1)%len(session.Players)]
	for _, p := range session.Players {
		p.IsDrawing = p == drawer
	}

	session.CurrentDrawer = drawer
	session.CurrentWord = nil
	session.HintsRevealed = 0
	session.TimeRemaining = session.Config.MaxTime
	session.State = models.GameStateDrawing
	session.UpdatedAt = s.clock.Now()
}

// finishGame moves a session into its terminal state
func (s *service) finishGame(session *models.GameSession) {
	for _, p := range session.Players {
		p.IsDrawing = false
	}

	session.CurrentDrawer = nil
	session.CurrentWord = nil
	session.HintsRevealed = 0
	session.TimeRemaining = 0
	session.State = models.GameStateGameOver
	session.UpdatedAt = s.clock.Now()
}

// normalizeConfig fills documented defaults into unset fields and falls
// back to the default tier for unknown difficulties
func normalizeConfig(cfg *models.GameConfig) models.GameConfig {
	if cfg == nil {
		return models.DefaultGameConfig()
	}

	out := *cfg
	if out.MaxTime <= 0 {
		out.MaxTime = models.DefaultMaxTime
	}

	if out.MaxRounds <= 0 {
		out.MaxRounds = models.DefaultMaxRounds
	}

	if !models.KnownDifficulty(out.Difficulty) {
		out.Difficulty = models.DefaultDifficulty
	}

	return out
}

func (s *service) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sessionID] = l
	}

	return l
}

func (s *service) dropSessionLock(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.locks, sessionID)
}

// loadSession fetches a session snapshot, mapping the repository's missing
// record error onto the service taxonomy
func (s *service) loadSession(ctx context.Context, sessionID string) (*models.GameSession, error) {
	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}

		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return session, nil
}

func (s *service) saveSession(ctx context.Context, session *models.GameSession) error {
	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}
