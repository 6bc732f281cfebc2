package timer

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/partygames/sketchparty/internal/services/timer Service

// Service defines the interface for per-session countdown timers
type Service interface {
	// StartTimer begins a countdown for a session, replacing any timer
	// already running for it
	StartTimer(ctx context.Context, input *StartTimerInput) (*StartTimerOutput, error)

	// StopTimer cancels a session's countdown. Safe to call when none is
	// running.
	StopTimer(ctx context.Context, input *StopTimerInput) (*StopTimerOutput, error)

	// PauseTimer suspends ticking while preserving the remaining time
	PauseTimer(ctx context.Context, input *PauseTimerInput) (*PauseTimerOutput, error)

	// ResumeTimer restarts a paused countdown from its preserved remaining
	// time using the original callbacks
	ResumeTimer(ctx context.Context, input *ResumeTimerInput) (*ResumeTimerOutput, error)

	// RemainingTime reports the seconds left on a session's countdown
	RemainingTime(ctx context.Context, input *RemainingTimeInput) (*RemainingTimeOutput, error)
}
