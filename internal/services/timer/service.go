package timer

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// entry tracks one session's countdown. The service mutex guards every
// field; invMu serializes callback delivery so StopTimer and PauseTimer can
// wait out an in-flight callback before returning.
type entry struct {
	sessionID  string
	duration   int
	remaining  int
	paused     bool
	onTick     func(remaining int)
	onComplete func()

	// done identifies the current ticking generation. Closed on stop,
	// pause, and replace; nil while paused.
	done chan struct{}

	invMu *sync.Mutex
}

// awaitDelivery returns once no callback is in flight for this entry
func (e *entry) awaitDelivery() {
	e.invMu.Lock()
	defer e.invMu.Unlock()
}

// service implements the Service interface with one ticking goroutine per
// running countdown
type service struct {
	tickInterval time.Duration
	logger       zerolog.Logger

	mu      sync.Mutex
	entries map[string]*entry
}

// New creates a new timer service
func New(cfg *Config) (*service, error) {
	interval := time.Second
	logger := zerolog.Nop()

	if cfg != nil {
		if cfg.TickInterval > 0 {
			interval = cfg.TickInterval
		}
		if cfg.Logger != nil {
			logger = *cfg.Logger
		}
	}

	return &service{
		tickInterval: interval,
		logger:       logger,
		entries:      make(map[string]*entry),
	}, nil
}

// StartTimer begins a countdown for a session, replacing any timer already
// running for it. OnTick fires synchronously with the full duration before
// StartTimer returns.
func (s *service) StartTimer(ctx context.Context, input *StartTimerInput) (*StartTimerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.SessionID == "" {
		return nil, ErrMissingSessionID
	}
	if input.Duration <= 0 {
		return nil, ErrInvalidDuration
	}

	e := &entry{
		sessionID:  input.SessionID,
		duration:   input.Duration,
		remaining:  input.Duration,
		onTick:     input.OnTick,
		onComplete: input.OnComplete,
		done:       make(chan struct{}),
		invMu:      &sync.Mutex{},
	}

	s.mu.Lock()
	old, replaced := s.entries[input.SessionID]
	if replaced && old.done != nil {
		close(old.done)
	}
	s.entries[input.SessionID] = e
	s.mu.Unlock()

	// Deliver the initial full-duration tick before ticking begins so
	// listeners render the whole countdown.
	e.invMu.Lock()
	s.deliverTick(e, e.remaining)
	e.invMu.Unlock()

	go s.run(e, e.done)

	return &StartTimerOutput{Replaced: replaced}, nil
}

// StopTimer cancels a session's countdown. Idempotent. Once it returns, no
// further callbacks for that countdown will be delivered.
func (s *service) StopTimer(ctx context.Context, input *StopTimerInput) (*StopTimerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	s.mu.Lock()
	e, ok := s.entries[input.SessionID]
	if ok {
		if e.done != nil {
			close(e.done)
		}
		delete(s.entries, input.SessionID)
	}
	s.mu.Unlock()

	if ok {
		// Wait out any callback already in flight.
		e.awaitDelivery()
	}

	return &StopTimerOutput{Stopped: ok}, nil
}

// PauseTimer suspends ticking while preserving the remaining time
func (s *service) PauseTimer(ctx context.Context, input *PauseTimerInput) (*PauseTimerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	s.mu.Lock()
	e, ok := s.entries[input.SessionID]
	paused := ok && !e.paused
	if paused {
		close(e.done)
		e.done = nil
		e.paused = true
	}
	s.mu.Unlock()

	if paused {
		e.awaitDelivery()
	}

	return &PauseTimerOutput{Paused: paused}, nil
}

// ResumeTimer restarts a paused countdown from its preserved remaining time.
// The initial synchronous tick is not repeated.
func (s *service) ResumeTimer(ctx context.Context, input *ResumeTimerInput) (*ResumeTimerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	s.mu.Lock()
	e, ok := s.entries[input.SessionID]
	resumed := ok && e.paused
	if resumed {
		e.paused = false
		e.done = make(chan struct{})
		go s.run(e, e.done)
	}
	s.mu.Unlock()

	return &ResumeTimerOutput{Resumed: resumed}, nil
}

// RemainingTime reports the seconds left on a session's countdown, running
// or paused
func (s *service) RemainingTime(ctx context.Context, input *RemainingTimeInput) (*RemainingTimeOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[input.SessionID]
	if !ok {
		return &RemainingTimeOutput{}, nil
	}

	return &RemainingTimeOutput{Remaining: e.remaining, Active: true}, nil
}

// run decrements one countdown until it finishes or its generation is
// cancelled. Each start and resume spawns a fresh run with its own done
// channel so a stale goroutine can never touch a replaced countdown.
func (s *service) run(e *entry, done chan struct{}) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
		}

		e.invMu.Lock()

		s.mu.Lock()
		if s.entries[e.sessionID] != e || e.done != done {
			// Stopped, paused, or replaced since the tick fired.
			s.mu.Unlock()
			e.invMu.Unlock()
			return
		}

		e.remaining--
		remaining := e.remaining
		finished := remaining <= 0
		if finished {
			// Remove the entry before the callbacks run so a
			// re-entrant StopTimer is a harmless no-op.
			delete(s.entries, e.sessionID)
			e.done = nil
		}
		s.mu.Unlock()

		s.deliverTick(e, remaining)
		if finished {
			s.deliverComplete(e)
			e.invMu.Unlock()
			return
		}

		e.invMu.Unlock()
	}
}

// deliverTick invokes the tick callback, keeping bookkeeping alive if it
// panics. Callers hold the entry's invMu.
func (s *service) deliverTick(e *entry, remaining int) {
	if e.onTick == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Str("session_id", e.sessionID).
				Interface("panic", r).
				Msg("timer tick callback panicked")
		}
	}()

	e.onTick(remaining)
}

// deliverComplete invokes the completion callback at most once per start.
// Callers hold the entry's invMu.
func (s *service) deliverComplete(e *entry) {
	if e.onComplete == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Str("session_id", e.sessionID).
				Interface("panic", r).
				Msg("timer completion callback panicked")
		}
	}()

	e.onComplete()
}
