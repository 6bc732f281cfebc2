package controller

// ControllerError is a custom error type for session controller errors
type ControllerError string

// Error implements the error interface
func (e ControllerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoActiveSession  ControllerError = "no active game session"
	ErrNilConfig        ControllerError = "config cannot be nil"
	ErrNilGameService   ControllerError = "game service cannot be nil"
	ErrNilClock         ControllerError = "clock cannot be nil"
	ErrNilUUIDGenerator ControllerError = "UUID generator cannot be nil"
)
