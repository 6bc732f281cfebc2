package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/partygames/sketchparty/internal/anim"
	"github.com/partygames/sketchparty/internal/canvas"
	"github.com/partygames/sketchparty/internal/common/clock"
	"github.com/partygames/sketchparty/internal/common/uuid"
	"github.com/partygames/sketchparty/internal/controller"
	"github.com/partygames/sketchparty/internal/models"
	sessionRepo "github.com/partygames/sketchparty/internal/repositories/session"
	"github.com/partygames/sketchparty/internal/services/game"
	"github.com/partygames/sketchparty/internal/services/timer"
	"github.com/partygames/sketchparty/internal/words"
)

// config holds the demo shell settings. The defaults keep a full game under
// half a minute: short rounds and a 250ms virtual second.
type config struct {
	Players    []string `env:"SKETCH_PLAYERS" envDefault:"Alice,Bob,Charlie"`
	MaxRounds  int      `env:"SKETCH_MAX_ROUNDS" envDefault:"3"`
	MaxTime    int      `env:"SKETCH_MAX_TIME" envDefault:"10"`
	Difficulty string   `env:"SKETCH_DIFFICULTY" envDefault:"MEDIUM"`
	TickMS     int      `env:"SKETCH_TICK_MS" envDefault:"250"`
	RedisAddr  string   `env:"SKETCH_REDIS_ADDR"`
	LogLevel   string   `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[config]()
	if err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	tick := time.Duration(cfg.TickMS) * time.Millisecond

	store, closeStore, err := newStore(cfg.RedisAddr, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	bank, err := words.NewBank(nil)
	if err != nil {
		return fmt.Errorf("loading word bank: %w", err)
	}

	roundTimer, err := timer.New(&timer.Config{
		TickInterval: tick,
		Logger:       &logger,
	})
	if err != nil {
		return fmt.Errorf("creating round timer: %w", err)
	}

	gameSvc, err := game.New(&game.Config{
		SessionRepo:   store,
		WordCatalog:   bank,
		RoundTimer:    roundTimer,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		Logger:        &logger,
	})
	if err != nil {
		return fmt.Errorf("creating game service: %w", err)
	}

	ctrl, err := controller.New(&controller.Config{
		GameService:       gameSvc,
		Animation:         anim.NewLogPlayer(&logger),
		AnimationResource: "res://demo/confetti",
		Canvas:            canvas.NewLogBoard(&logger),
		Clock:             &clock.DefaultClock{},
		UUIDGenerator:     uuid.New(),
		// Pacing scaled to the virtual second so the demo keeps moving
		GuessEndRoundDelay:  4 * tick,
		TimeUpEndRoundDelay: 6 * tick,
		Logger:              &logger,
	})
	if err != nil {
		return fmt.Errorf("creating controller: %w", err)
	}

	d := &demo{
		ctrl:   ctrl,
		logger: logger,
		cfg:    cfg,
		tick:   tick,
		events: make(chan *models.GameEventPayload, 64),
	}

	ctrl.AddListener(d.logEvent)
	ctrl.AddListener(func(payload *models.GameEventPayload) {
		select {
		case d.events <- payload:
		default:
		}
	})

	// gameCtx ends either with the process signal or with the game itself,
	// so the watcher goroutine always gets to clean up.
	gameCtx, gameDone := context.WithCancel(ctx)
	defer gameDone()

	g, gctx := errgroup.WithContext(gameCtx)

	g.Go(func() error {
		defer gameDone()
		return d.play(gctx)
	})

	g.Go(func() error {
		<-gameCtx.Done()
		ctrl.Reset()
		return nil
	})

	return g.Wait()
}

// newLogger builds a console logger at the configured level. Unknown levels
// fall back to info.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().
		Timestamp().
		Logger().
		Level(lvl)
}

// newStore picks the session backend: Redis when an address is configured,
// otherwise the in-process store
func newStore(redisAddr string, logger zerolog.Logger) (sessionRepo.Repository, func(), error) {
	if redisAddr == "" {
		logger.Debug().Msg("using in-memory session store")
		return sessionRepo.NewMemory(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: redisAddr})

	repo, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: client})
	if err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("connecting to redis: %w", err)
	}

	logger.Debug().Str("addr", redisAddr).Msg("using redis session store")
	return repo, func() { client.Close() }, nil
}

// demo stands in for the rendering layer: it narrates every event to the
// console and plays a scripted game where a non-drawer guesses the word on
// odd rounds and lets even rounds run out of time.
type demo struct {
	ctrl   *controller.Controller
	logger zerolog.Logger
	cfg    config
	tick   time.Duration
	events chan *models.GameEventPayload
}

func (d *demo) play(ctx context.Context) error {
	difficulty := models.Difficulty(strings.ToUpper(d.cfg.Difficulty))

	if _, err := d.ctrl.InitializeGame(ctx, d.cfg.Players, &controller.ConfigOverrides{
		MaxTime:    &d.cfg.MaxTime,
		MaxRounds:  &d.cfg.MaxRounds,
		Difficulty: &difficulty,
	}); err != nil {
		return fmt.Errorf("initializing game: %w", err)
	}

	if _, err := d.ctrl.StartGame(ctx); err != nil {
		return fmt.Errorf("starting game: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case payload := <-d.events:
			switch data := payload.Data.(type) {
			case *models.DrawingStartedData:
				if err := d.playRound(ctx, data.Session); err != nil {
					return err
				}
			case *models.GameEndedData:
				d.printScoreboard(data.Session, data.Winners)
				return d.ctrl.EndSession(ctx)
			}
		}
	}
}

// playRound scripts one round: scribble a little, miss once, then either
// guess the word or let the clock run out
func (d *demo) playRound(ctx context.Context, session *models.GameSession) error {
	word := session.CurrentWord
	guesser := pickGuesser(session)
	if word == nil || guesser == nil {
		return nil
	}

	if err := d.sleep(ctx, 2*d.tick); err != nil {
		return err
	}

	d.ctrl.OnDrawingChange(fmt.Sprintf(`{"round":%d,"strokes":17}`, session.RoundNumber))

	// A near miss first, so the close-guess feedback shows up in the log
	if err := d.guess(ctx, guesser.ID, word.Word+"s"); err != nil {
		return err
	}

	if session.RoundNumber%2 == 0 {
		return nil
	}

	if session.Config.HintsEnabled {
		if output, err := d.ctrl.RevealHint(ctx); err == nil {
			d.logger.Info().
				Str("hint", output.Hint).
				Int("hint_number", output.HintNumber).
				Msg("hint revealed")
		}
	}

	if err := d.sleep(ctx, d.tick); err != nil {
		return err
	}

	return d.guess(ctx, guesser.ID, word.Word)
}

// guess submits a scripted guess. A round that expired while the script was
// sleeping is part of the show, not a failure.
func (d *demo) guess(ctx context.Context, playerID, text string) error {
	_, err := d.ctrl.SubmitGuess(ctx, playerID, text)
	if err != nil {
		if errors.Is(err, game.ErrInvalidStateTransition) || errors.Is(err, game.ErrNoActiveWord) {
			return nil
		}
		return fmt.Errorf("submitting guess: %w", err)
	}

	return nil
}

func (d *demo) sleep(ctx context.Context, dur time.Duration) error {
	t := time.NewTimer(dur)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// logEvent narrates the event bus for the console
func (d *demo) logEvent(payload *models.GameEventPayload) {
	switch data := payload.Data.(type) {
	case *models.GameStartedData:
		names := make([]string, len(data.Session.Players))
		for i, p := range data.Session.Players {
			names[i] = p.Name
		}
		d.logger.Info().
			Strs("players", names).
			Int("rounds", data.Session.Config.MaxRounds).
			Int("seconds_per_round", data.Session.Config.MaxTime).
			Msg("game started")
	case *models.WordSelectedData:
		d.logger.Info().
			Str("word", data.Word.Word).
			Str("category", data.Word.Category).
			Msg("word selected (the drawer's secret)")
	case *models.DrawingStartedData:
		d.logger.Info().
			Int("round", data.Session.RoundNumber).
			Str("drawer", data.Drawer.Name).
			Msg("round started")
	case *models.GuessSubmittedData:
		d.logger.Info().
			Str("player", playerName(data.Session, data.PlayerID)).
			Str("guess", data.Guess).
			Bool("correct", data.Correct).
			Bool("close", data.Close).
			Msg("guess submitted")
	case *models.CorrectGuessData:
		d.logger.Info().
			Str("player", playerName(data.Session, data.PlayerID)).
			Str("word", data.Word).
			Int("guesser_points", data.GuesserPoints).
			Int("drawer_points", data.DrawerPoints).
			Msg("correct guess")
	case *models.TimeUpData:
		d.logger.Info().
			Str("word", data.Word).
			Msg("time up, nobody got it")
	case *models.RoundEndedData:
		d.logger.Info().
			Int("round", data.RoundNumber).
			Msg("round ended")
	case *models.GameEndedData:
		d.logger.Info().Msg("game ended")
	}
}

func (d *demo) printScoreboard(session *models.GameSession, winners []*models.Player) {
	for _, p := range session.Players {
		d.logger.Info().
			Str("player", p.Name).
			Int("score", p.Score).
			Msg("final score")
	}

	names := make([]string, len(winners))
	for i, w := range winners {
		names[i] = w.Name
	}
	d.logger.Info().Strs("winners", names).Msg("thanks for playing")
}

// pickGuesser returns the first player not holding the pen
func pickGuesser(session *models.GameSession) *models.Player {
	for _, p := range session.Players {
		if session.CurrentDrawer == nil || p.ID != session.CurrentDrawer.ID {
			return p
		}
	}
	return nil
}

func playerName(session *models.GameSession, playerID string) string {
	if p := session.PlayerByID(playerID); p != nil {
		return p.Name
	}
	return playerID
}
