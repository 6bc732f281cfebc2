package timer

// TimerError is a custom error type for timer-related errors
type TimerError string

// Error implements the error interface
func (e TimerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilInput         TimerError = "input cannot be nil"
	ErrMissingSessionID TimerError = "session ID is required"
	ErrInvalidDuration  TimerError = "duration must be a positive number of seconds"
)
