package controller

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/partygames/sketchparty/internal/anim"
	"github.com/partygames/sketchparty/internal/canvas"
	"github.com/partygames/sketchparty/internal/common/clock"
	"github.com/partygames/sketchparty/internal/common/uuid"
	"github.com/partygames/sketchparty/internal/models"
	"github.com/partygames/sketchparty/internal/services/game"
)

type listenerEntry struct {
	id string
	fn EventListener
}

type pendingTask struct {
	seq   uint64
	timer *time.Timer
}

// Controller sequences full game use-cases on top of the game service and
// owns the event bus. It fronts one session at a time, the way a single
// device drives one party game.
type Controller struct {
	gameService       game.Service
	animation         anim.Player
	canvas            canvas.Board
	clock             clock.Clock
	uuidGen           uuid.UUID
	logger            zerolog.Logger
	animationResource string

	guessEndRoundDelay  time.Duration
	timeUpEndRoundDelay time.Duration

	// mu guards the fields below. It is never held across a game service
	// call or a listener dispatch.
	mu        sync.Mutex
	sessionID string
	session   *models.GameSession
	listeners []listenerEntry
	pending   map[string]pendingTask
	taskSeq   uint64
}

// New creates a new session controller and registers it for round expiry
// callbacks from the game service
func New(cfg *Config) (*Controller, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	animation := cfg.Animation
	if animation == nil {
		animation = anim.NopPlayer{}
	}

	board := cfg.Canvas
	if board == nil {
		board = canvas.NopBoard{}
	}

	guessDelay := cfg.GuessEndRoundDelay
	if guessDelay <= 0 {
		guessDelay = DefaultGuessEndRoundDelay
	}

	timeUpDelay := cfg.TimeUpEndRoundDelay
	if timeUpDelay <= 0 {
		timeUpDelay = DefaultTimeUpEndRoundDelay
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	c := &Controller{
		gameService:         cfg.GameService,
		animation:           animation,
		canvas:              board,
		clock:               cfg.Clock,
		uuidGen:             cfg.UUIDGenerator,
		logger:              logger,
		animationResource:   cfg.AnimationResource,
		guessEndRoundDelay:  guessDelay,
		timeUpEndRoundDelay: timeUpDelay,
		pending:             make(map[string]pendingTask),
	}

	// Round expiries arrive on the timer goroutine, after the service has
	// already persisted the time-up state
	cfg.GameService.SetTimeUpHandler(c.onEngineTimeUp)

	return c, nil
}

// InitializeGame builds player records from names, creates the session and
// announces it
func (c *Controller) InitializeGame(ctx context.Context, names []string, overrides *ConfigOverrides) (*models.GameSession, error) {
	if len(names) < game.MinPlayers {
		return nil, game.ErrInsufficientPlayers
	}

	players := make([]*models.Player, len(names))
	for i, name := range names {
		players[i] = &models.Player{
			ID:   c.uuidGen.NewUUID(),
			Name: name,
		}
	}

	output, err := c.gameService.InitializeGame(ctx, &game.InitializeGameInput{
		Players: players,
		Config:  mergeOverrides(overrides),
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cancelAllTasksLocked()
	c.sessionID = output.Session.ID
	c.session = output.Session
	c.mu.Unlock()

	// Decorative only: a failed load is logged and the game goes on
	if err := c.animation.Initialize(ctx, c.animationResource); err != nil {
		c.logger.Warn().
			Err(err).
			Str("resource", c.animationResource).
			Msg("animation initialization failed")
	}

	c.emit(models.EventGameStarted, &models.GameStartedData{Session: output.Session})

	return output.Session, nil
}

// StartGame begins round one and immediately selects its word
func (c *Controller) StartGame(ctx context.Context) (*models.GameSession, error) {
	sessionID, err := c.currentSessionID()
	if err != nil {
		return nil, err
	}

	output, err := c.gameService.StartGame(ctx, &game.StartGameInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	c.setSession(output.Session)

	return c.selectWord(ctx, sessionID)
}

// SubmitGuess forwards a guess and announces the outcome. A correct guess
// schedules the round settle after the celebration delay.
func (c *Controller) SubmitGuess(ctx context.Context, playerID, guess string) (*game.SubmitGuessOutput, error) {
	sessionID, err := c.currentSessionID()
	if err != nil {
		return nil, err
	}

	output, err := c.gameService.SubmitGuess(ctx, &game.SubmitGuessInput{
		SessionID: sessionID,
		PlayerID:  playerID,
		Guess:     guess,
	})
	if err != nil {
		return nil, err
	}
	c.setSession(output.Session)

	c.emit(models.EventGuessSubmitted, &models.GuessSubmittedData{
		Session:  output.Session,
		PlayerID: playerID,
		Guess:    guess,
		Correct:  output.Correct,
		Close:    output.Close,
	})

	if output.Correct {
		word := ""
		if output.Session.CurrentWord != nil {
			word = output.Session.CurrentWord.Word
		}

		c.emit(models.EventCorrectGuess, &models.CorrectGuessData{
			Session:       output.Session,
			PlayerID:      playerID,
			Word:          word,
			GuesserPoints: output.GuesserPoints,
			DrawerPoints:  output.DrawerPoints,
		})
		c.playAnimation(ctx, models.GameStateCorrectGuess)
		c.scheduleEndRound(sessionID, c.guessEndRoundDelay)
	}

	return output, nil
}

// EndRound settles the current round, then either finishes the game or
// rolls straight into the next round's word selection
func (c *Controller) EndRound(ctx context.Context) (*game.EndRoundOutput, error) {
	sessionID, err := c.currentSessionID()
	if err != nil {
		return nil, err
	}

	// A manual settle preempts any scheduled one
	c.mu.Lock()
	c.cancelTaskLocked(sessionID)
	c.mu.Unlock()

	output, err := c.gameService.EndRound(ctx, &game.EndRoundInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	c.setSession(output.Session)

	settledRound := output.Session.RoundNumber
	if !output.GameOver {
		settledRound--
	}

	c.emit(models.EventRoundEnded, &models.RoundEndedData{
		Session:     output.Session,
		RoundNumber: settledRound,
	})

	if output.GameOver {
		if _, err := c.EndGame(ctx); err != nil {
			return nil, err
		}
		return output, nil
	}

	if _, err := c.selectWord(ctx, sessionID); err != nil {
		return nil, err
	}

	return output, nil
}

// HandleTimeUp settles a round expiry: it forces the time-up state if the
// session is not already there, announces it and schedules the round
// settle after the reveal delay
func (c *Controller) HandleTimeUp(ctx context.Context) error {
	sessionID, err := c.currentSessionID()
	if err != nil {
		return err
	}

	output, err := c.gameService.GetGameSession(ctx, &game.GetGameSessionInput{SessionID: sessionID})
	if err != nil {
		return err
	}
	if output.Session == nil {
		return game.ErrSessionNotFound
	}

	session := output.Session
	if session.State != models.GameStateTimeUp {
		// Only a live round can be forced to expire
		if !models.RoundActive(session.State) {
			return game.ErrInvalidStateTransition
		}

		updated, err := c.gameService.UpdateGameState(ctx, &game.UpdateGameStateInput{
			SessionID: sessionID,
			State:     models.GameStateTimeUp,
		})
		if err != nil {
			return err
		}
		session = updated.Session
	}
	c.setSession(session)

	word := ""
	if session.CurrentWord != nil {
		word = session.CurrentWord.Word
	}

	c.emit(models.EventTimeUp, &models.TimeUpData{Session: session, Word: word})
	c.playAnimation(ctx, models.GameStateTimeUp)
	c.scheduleEndRound(sessionID, c.timeUpEndRoundDelay)

	return nil
}

// EndGame forces the terminal state if needed, computes the winners and
// announces them
func (c *Controller) EndGame(ctx context.Context) ([]*models.Player, error) {
	sessionID, err := c.currentSessionID()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cancelTaskLocked(sessionID)
	c.mu.Unlock()

	output, err := c.gameService.GetGameSession(ctx, &game.GetGameSessionInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	if output.Session == nil {
		return nil, game.ErrSessionNotFound
	}

	session := output.Session
	if session.State != models.GameStateGameOver {
		updated, err := c.gameService.UpdateGameState(ctx, &game.UpdateGameStateInput{
			SessionID: sessionID,
			State:     models.GameStateGameOver,
		})
		if err != nil {
			return nil, err
		}
		session = updated.Session
	}
	c.setSession(session)

	winners := Winners(session.Players)

	c.emit(models.EventGameEnded, &models.GameEndedData{
		Session: session,
		Winners: winners,
	})
	c.playAnimation(ctx, models.GameStateGameOver)

	return winners, nil
}

// RevealHint passes a hint request through to the game service
func (c *Controller) RevealHint(ctx context.Context) (*game.RevealHintOutput, error) {
	sessionID, err := c.currentSessionID()
	if err != nil {
		return nil, err
	}

	output, err := c.gameService.RevealHint(ctx, &game.RevealHintInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	c.setSession(output.Session)

	return output, nil
}

// EndSession deletes the fronted session and releases everything scheduled
// for it
func (c *Controller) EndSession(ctx context.Context) error {
	sessionID, err := c.currentSessionID()
	if err != nil {
		return err
	}

	if _, err := c.gameService.EndSession(ctx, &game.EndSessionInput{SessionID: sessionID}); err != nil {
		return err
	}

	c.mu.Lock()
	if c.sessionID == sessionID {
		c.cancelAllTasksLocked()
		c.sessionID = ""
		c.session = nil
	}
	c.mu.Unlock()

	c.animation.Stop()

	return nil
}

// OnDrawingChange forwards stroke data to the canvas. The payload is
// opaque to the game core.
func (c *Controller) OnDrawingChange(stroke string) {
	c.canvas.OnDrawingChange(stroke)
}

// Current returns the cached snapshot of the fronted session, nil when no
// game is active
func (c *Controller) Current() *models.GameSession {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.session
}

// AddListener registers an event listener and returns its registration id
func (c *Controller) AddListener(listener EventListener) string {
	if listener == nil {
		return ""
	}

	id := c.uuidGen.NewUUID()

	c.mu.Lock()
	c.listeners = append(c.listeners, listenerEntry{id: id, fn: listener})
	c.mu.Unlock()

	return id
}

// RemoveListener drops a previously registered listener. Unknown ids are
// ignored.
func (c *Controller) RemoveListener(listenerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.listeners[:0]
	for _, l := range c.listeners {
		if l.id != listenerID {
			kept = append(kept, l)
		}
	}
	c.listeners = kept
}

// Reset drops the cached session, every listener and every scheduled task,
// and stops the animation player. The session record itself stays in the
// game service until EndSession.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.cancelAllTasksLocked()
	c.sessionID = ""
	c.session = nil
	c.listeners = nil
	c.mu.Unlock()

	c.animation.Stop()
}

// Winners returns every player tied at the top score
func Winners(players []*models.Player) []*models.Player {
	top := 0
	for i, p := range players {
		if i == 0 || p.Score > top {
			top = p.Score
		}
	}

	winners := make([]*models.Player, 0, 1)
	for _, p := range players {
		if p.Score == top {
			winners = append(winners, p)
		}
	}

	return winners
}

// selectWord assigns the next word, announces the new drawing phase and
// cues the animation
func (c *Controller) selectWord(ctx context.Context, sessionID string) (*models.GameSession, error) {
	output, err := c.gameService.SelectWord(ctx, &game.SelectWordInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	c.setSession(output.Session)

	c.emit(models.EventWordSelected, &models.WordSelectedData{
		Session: output.Session,
		Word:    output.Word,
	})
	c.emit(models.EventDrawingStarted, &models.DrawingStartedData{
		Session: output.Session,
		Drawer:  output.Session.CurrentDrawer,
	})
	c.playAnimation(ctx, models.GameStateDrawing)

	return output.Session, nil
}

// onEngineTimeUp receives round expiries from the game service
func (c *Controller) onEngineTimeUp(sessionID string) {
	c.mu.Lock()
	current := c.sessionID
	c.mu.Unlock()

	// An expiry for a session this controller no longer fronts
	if sessionID != current {
		return
	}

	if err := c.HandleTimeUp(context.Background()); err != nil {
		c.logger.Error().
			Err(err).
			Str("session_id", sessionID).
			Msg("failed to settle round expiry")
	}
}

// scheduleEndRound arms the pacing task that settles the current round,
// replacing any task already scheduled for the session
func (c *Controller) scheduleEndRound(sessionID string, delay time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelTaskLocked(sessionID)

	c.taskSeq++
	seq := c.taskSeq
	c.pending[sessionID] = pendingTask{
		seq: seq,
		timer: time.AfterFunc(delay, func() {
			c.runScheduledEndRound(sessionID, seq)
		}),
	}
}

// runScheduledEndRound fires a pacing task. Tasks that were replaced,
// cancelled, or that outlived their session or their round's settled state
// do nothing.
func (c *Controller) runScheduledEndRound(sessionID string, seq uint64) {
	c.mu.Lock()
	task, ok := c.pending[sessionID]
	if !ok || task.seq != seq || c.sessionID != sessionID {
		c.mu.Unlock()
		return
	}
	delete(c.pending, sessionID)
	c.mu.Unlock()

	ctx := context.Background()

	// The round may have been settled by hand while this task waited
	output, err := c.gameService.GetGameSession(ctx, &game.GetGameSessionInput{SessionID: sessionID})
	if err != nil || output.Session == nil {
		return
	}

	state := output.Session.State
	if state != models.GameStateCorrectGuess && state != models.GameStateTimeUp {
		return
	}

	if _, err := c.EndRound(ctx); err != nil {
		c.logger.Error().
			Err(err).
			Str("session_id", sessionID).
			Msg("scheduled round settle failed")
	}
}

func (c *Controller) cancelTaskLocked(sessionID string) {
	if task, ok := c.pending[sessionID]; ok {
		task.timer.Stop()
		delete(c.pending, sessionID)
	}
}

func (c *Controller) cancelAllTasksLocked() {
	for id, task := range c.pending {
		task.timer.Stop()
		delete(c.pending, id)
	}
}

func (c *Controller) currentSessionID() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID == "" {
		return "", ErrNoActiveSession
	}

	return c.sessionID, nil
}

func (c *Controller) setSession(session *models.GameSession) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if session != nil && session.ID == c.sessionID {
		c.session = session
	}
}

// emit delivers an event to every listener registered at emit time, in
// registration order. A panicking listener is logged and skipped so the
// rest still hear the event.
func (c *Controller) emit(event models.GameEvent, data any) {
	payload := &models.GameEventPayload{
		Event:     event,
		Data:      data,
		Timestamp: c.clock.Now(),
	}

	c.mu.Lock()
	listeners := make([]listenerEntry, len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, l := range listeners {
		c.dispatch(l, payload)
	}
}

func (c *Controller) dispatch(l listenerEntry, payload *models.GameEventPayload) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().
				Str("listener_id", l.id).
				Str("event", string(payload.Event)).
				Interface("panic", r).
				Msg("event listener panicked")
		}
	}()

	l.fn(payload)
}

// playAnimation cues the decorative player, logging and swallowing any
// failure
func (c *Controller) playAnimation(ctx context.Context, state models.GameState) {
	if err := c.animation.PlayForState(ctx, state); err != nil {
		c.logger.Warn().
			Err(err).
			Str("state", string(state)).
			Msg("animation playback failed")
	}
}

// mergeOverrides lays the supplied overrides over the default settings
func mergeOverrides(overrides *ConfigOverrides) *models.GameConfig {
	cfg := models.DefaultGameConfig()
	if overrides == nil {
		return &cfg
	}

	if overrides.MaxTime != nil {
		cfg.MaxTime = *overrides.MaxTime
	}

	if overrides.MaxRounds != nil {
		cfg.MaxRounds = *overrides.MaxRounds
	}

	if overrides.Difficulty != nil {
		cfg.Difficulty = *overrides.Difficulty
	}

	if overrides.HintsEnabled != nil {
		cfg.HintsEnabled = *overrides.HintsEnabled
	}

	return &cfg
}
