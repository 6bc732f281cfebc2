package timer

import (
	"time"

	"github.com/rs/zerolog"
)

// Config holds configuration for the timer service
type Config struct {
	// TickInterval is the length of one countdown second. Defaults to
	// time.Second. Tests shorten it so countdowns run in milliseconds.
	TickInterval time.Duration

	// Logger receives callback panic reports. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// StartTimerInput contains parameters for starting a countdown
type StartTimerInput struct {
	// SessionID identifies the session the countdown belongs to
	SessionID string

	// Duration is the countdown length in seconds
	Duration int

	// OnTick is invoked with the remaining seconds: once synchronously
	// with the full duration on start, then after every elapsed second.
	// May be nil.
	OnTick func(remaining int)

	// OnComplete is invoked once when the countdown reaches zero, after
	// the final OnTick(0). May be nil.
	OnComplete func()
}

// StartTimerOutput contains the result of starting a countdown
type StartTimerOutput struct {
	// Replaced indicates an existing countdown was cancelled in favor of
	// the new one
	Replaced bool
}

// StopTimerInput contains parameters for stopping a countdown
type StopTimerInput struct {
	// SessionID identifies the session whose countdown to cancel
	SessionID string
}

// StopTimerOutput contains the result of stopping a countdown
type StopTimerOutput struct {
	// Stopped indicates a countdown existed and was cancelled
	Stopped bool
}

// PauseTimerInput contains parameters for pausing a countdown
type PauseTimerInput struct {
	// SessionID identifies the session whose countdown to pause
	SessionID string
}

// PauseTimerOutput contains the result of pausing a countdown
type PauseTimerOutput struct {
	// Paused indicates a running countdown was actually paused
	Paused bool
}

// ResumeTimerInput contains parameters for resuming a countdown
type ResumeTimerInput struct {
	// SessionID identifies the session whose countdown to resume
	SessionID string
}

// ResumeTimerOutput contains the result of resuming a countdown
type ResumeTimerOutput struct {
	// Resumed indicates a paused countdown was actually resumed
	Resumed bool
}

// RemainingTimeInput contains parameters for reading a countdown
type RemainingTimeInput struct {
	// SessionID identifies the session whose countdown to read
	SessionID string
}

// RemainingTimeOutput contains the result of reading a countdown
type RemainingTimeOutput struct {
	// Remaining is the seconds left. Zero when Active is false.
	Remaining int

	// Active indicates a countdown exists for the session, running or
	// paused
	Active bool
}
