package timer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const testTickInterval = 10 * time.Millisecond

type TimerServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service *service

	mu          sync.Mutex
	ticks       []int
	completions int
	completed   chan struct{}
}

func (s *TimerServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	svc, err := New(&Config{TickInterval: testTickInterval})
	s.Require().NoError(err)
	s.service = svc

	s.ticks = nil
	s.completions = 0
	s.completed = make(chan struct{}, 1)
}

func (s *TimerServiceTestSuite) recordTick(remaining int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticks = append(s.ticks, remaining)
}

func (s *TimerServiceTestSuite) recordComplete() {
	s.mu.Lock()
	s.completions++
	s.mu.Unlock()

	select {
	case s.completed <- struct{}{}:
	default:
	}
}

func (s *TimerServiceTestSuite) recordedTicks() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.ticks...)
}

func (s *TimerServiceTestSuite) completionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completions
}

func (s *TimerServiceTestSuite) waitForCompletion() {
	select {
	case <-s.completed:
	case <-time.After(2 * time.Second):
		s.FailNow("timed out waiting for the countdown to complete")
	}
}

func (s *TimerServiceTestSuite) TestStartTimer_TicksDownAndCompletes() {
	_, err := s.service.StartTimer(s.ctx, &StartTimerInput{
		SessionID:  "session-1",
		Duration:   5,
		OnTick:     s.recordTick,
		OnComplete: s.recordComplete,
	})
	s.Require().NoError(err)

	// The full-duration tick is delivered synchronously on start.
	s.Equal([]int{5}, s.recordedTicks())

	s.waitForCompletion()

	s.Equal([]int{5, 4, 3, 2, 1, 0}, s.recordedTicks())
	s.Equal(1, s.completionCount())

	// The entry is gone once the countdown finishes.
	remaining, err := s.service.RemainingTime(s.ctx, &RemainingTimeInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.False(remaining.Active)
}

func (s *TimerServiceTestSuite) TestStartTimer_Validation() {
	_, err := s.service.StartTimer(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.service.StartTimer(s.ctx, &StartTimerInput{Duration: 5})
	s.ErrorIs(err, ErrMissingSessionID)

	_, err = s.service.StartTimer(s.ctx, &StartTimerInput{SessionID: "session-1", Duration: 0})
	s.ErrorIs(err, ErrInvalidDuration)

	_, err = s.service.StartTimer(s.ctx, &StartTimerInput{SessionID: "session-1", Duration: -3})
	s.ErrorIs(err, ErrInvalidDuration)
}

func (s *TimerServiceTestSuite) TestStartTimer_ReplacesRunningTimer() {
	firstCompleted := make(chan struct{}, 1)

	_, err := s.service.StartTimer(s.ctx, &StartTimerInput{
		SessionID:  "session-1",
		Duration:   60,
		OnComplete: func() { firstCompleted <- struct{}{} },
	})
	s.Require().NoError(err)

	output, err := s.service.StartTimer(s.ctx, &StartTimerInput{
		SessionID:  "session-1",
		Duration:   2,
		OnTick:     s.recordTick,
		OnComplete: s.recordComplete,
	})
	s.Require().NoError(err)
	s.True(output.Replaced)

	s.waitForCompletion()

	s.Equal([]int{2, 1, 0}, s.recordedTicks())

	select {
	case <-firstCompleted:
		s.FailNow("replaced timer must never complete")
	case <-time.After(3 * testTickInterval):
	}
}

func (s *TimerServiceTestSuite) TestStopTimer_PreventsCompletion() {
	_, err := s.service.StartTimer(s.ctx, &StartTimerInput{
		SessionID:  "session-1",
		Duration:   3,
		OnComplete: s.recordComplete,
	})
	s.Require().NoError(err)

	output, err := s.service.StopTimer(s.ctx, &StopTimerInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.True(output.Stopped)

	time.Sleep(6 * testTickInterval)
	s.Equal(0, s.completionCount())

	remaining, err := s.service.RemainingTime(s.ctx, &RemainingTimeInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.False(remaining.Active)
}

func (s *TimerServiceTestSuite) TestStopTimer_Idempotent() {
	_, err := s.service.StartTimer(s.ctx, &StartTimerInput{SessionID: "session-1", Duration: 3})
	s.Require().NoError(err)

	first, err := s.service.StopTimer(s.ctx, &StopTimerInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.True(first.Stopped)

	second, err := s.service.StopTimer(s.ctx, &StopTimerInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.False(second.Stopped)
}

func (s *TimerServiceTestSuite) TestStopTimer_NoTimer() {
	output, err := s.service.StopTimer(s.ctx, &StopTimerInput{SessionID: "never-started"})

	s.Require().NoError(err)
	s.False(output.Stopped)
}

func (s *TimerServiceTestSuite) TestPauseAndResume() {
	_, err := s.service.StartTimer(s.ctx, &StartTimerInput{
		SessionID:  "session-1",
		Duration:   3,
		OnTick:     s.recordTick,
		OnComplete: s.recordComplete,
	})
	s.Require().NoError(err)

	paused, err := s.service.PauseTimer(s.ctx, &PauseTimerInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.True(paused.Paused)

	// No ticks arrive while paused; the remaining time is preserved.
	time.Sleep(5 * testTickInterval)
	s.Equal([]int{3}, s.recordedTicks())

	remaining, err := s.service.RemainingTime(s.ctx, &RemainingTimeInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.True(remaining.Active)
	s.Equal(3, remaining.Remaining)

	resumed, err := s.service.ResumeTimer(s.ctx, &ResumeTimerInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.True(resumed.Resumed)

	s.waitForCompletion()

	// The resume does not repeat the synchronous full-duration tick.
	s.Equal([]int{3, 2, 1, 0}, s.recordedTicks())
	s.Equal(1, s.completionCount())
}

func (s *TimerServiceTestSuite) TestPauseTimer_NotRunning() {
	output, err := s.service.PauseTimer(s.ctx, &PauseTimerInput{SessionID: "never-started"})

	s.Require().NoError(err)
	s.False(output.Paused)
}

func (s *TimerServiceTestSuite) TestPauseTimer_AlreadyPaused() {
	_, err := s.service.StartTimer(s.ctx, &StartTimerInput{SessionID: "session-1", Duration: 10})
	s.Require().NoError(err)

	first, err := s.service.PauseTimer(s.ctx, &PauseTimerInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.True(first.Paused)

	second, err := s.service.PauseTimer(s.ctx, &PauseTimerInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.False(second.Paused)
}

func (s *TimerServiceTestSuite) TestResumeTimer_NotPaused() {
	_, err := s.service.StartTimer(s.ctx, &StartTimerInput{SessionID: "session-1", Duration: 10})
	s.Require().NoError(err)

	running, err := s.service.ResumeTimer(s.ctx, &ResumeTimerInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.False(running.Resumed)

	unknown, err := s.service.ResumeTimer(s.ctx, &ResumeTimerInput{SessionID: "never-started"})
	s.Require().NoError(err)
	s.False(unknown.Resumed)
}

func (s *TimerServiceTestSuite) TestRemainingTime_NoTimer() {
	output, err := s.service.RemainingTime(s.ctx, &RemainingTimeInput{SessionID: "never-started"})

	s.Require().NoError(err)
	s.False(output.Active)
	s.Zero(output.Remaining)
}

func (s *TimerServiceTestSuite) TestCallbackPanicsDoNotBreakBookkeeping() {
	_, err := s.service.StartTimer(s.ctx, &StartTimerInput{
		SessionID: "session-1",
		Duration:  2,
		OnTick:    func(int) { panic("tick exploded") },
		OnComplete: func() {
			s.recordComplete()
			panic("completion exploded")
		},
	})
	s.Require().NoError(err)

	s.waitForCompletion()

	// The entry was cleaned up despite the panics, so the session can
	// start a fresh countdown.
	remaining, err := s.service.RemainingTime(s.ctx, &RemainingTimeInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.False(remaining.Active)

	_, err = s.service.StartTimer(s.ctx, &StartTimerInput{SessionID: "session-1", Duration: 5})
	s.Require().NoError(err)
}

func TestTimerServiceSuite(t *testing.T) {
	suite.Run(t, new(TimerServiceTestSuite))
}
