package models

import (
	"time"
)

// GameEvent identifies a kind of game notification
type GameEvent string

const (
	// EventGameStarted fires once a session has been initialized
	EventGameStarted GameEvent = "GAME_STARTED"

	// EventWordSelected fires when a word has been assigned for a round
	EventWordSelected GameEvent = "WORD_SELECTED"

	// EventDrawingStarted fires when a round's drawing phase begins
	EventDrawingStarted GameEvent = "DRAWING_STARTED"

	// EventGuessSubmitted fires for every guess, correct or not
	EventGuessSubmitted GameEvent = "GUESS_SUBMITTED"

	// EventCorrectGuess fires when a guess matches the current word
	EventCorrectGuess GameEvent = "CORRECT_GUESS"

	// EventTimeUp fires when the round timer expires
	EventTimeUp GameEvent = "TIME_UP"

	// EventRoundEnded fires when a round has been settled
	EventRoundEnded GameEvent = "ROUND_ENDED"

	// EventGameEnded fires when the session reaches game over
	EventGameEnded GameEvent = "GAME_ENDED"
)

// GameEventPayload is the envelope delivered to registered listeners
type GameEventPayload struct {
	// Event identifies the kind of notification
	Event GameEvent

	// Data carries the kind-specific payload, one of the *Data types below
	Data any

	// Timestamp is when the event was emitted
	Timestamp time.Time
}

// GameStartedData accompanies EventGameStarted
type GameStartedData struct {
	// Session is a snapshot of the freshly initialized session
	Session *GameSession
}

// WordSelectedData accompanies EventWordSelected
type WordSelectedData struct {
	// Session is a snapshot taken after the word was assigned
	Session *GameSession

	// Word is the selected word, including the answer text. The rendering
	// layer is responsible for only showing it to the drawer.
	Word *GameWord
}

// DrawingStartedData accompanies EventDrawingStarted
type DrawingStartedData struct {
	// Session is a snapshot taken as the drawing phase begins
	Session *GameSession

	// Drawer is the player holding the pen this round
	Drawer *Player
}

// GuessSubmittedData accompanies EventGuessSubmitted
type GuessSubmittedData struct {
	// Session is a snapshot taken after the guess was processed
	Session *GameSession

	// PlayerID is the guessing player
	PlayerID string

	// Guess is the submitted text as entered
	Guess string

	// Correct reports whether the guess matched the word
	Correct bool

	// Close reports a near miss, for "so close!" feedback
	Close bool
}

// CorrectGuessData accompanies EventCorrectGuess
type CorrectGuessData struct {
	// Session is a snapshot taken after scores were settled
	Session *GameSession

	// PlayerID is the player who guessed the word
	PlayerID string

	// Word is the answer text
	Word string

	// GuesserPoints is what the guesser was awarded
	GuesserPoints int

	// DrawerPoints is what the drawer was awarded
	DrawerPoints int
}

// TimeUpData accompanies EventTimeUp
type TimeUpData struct {
	// Session is a snapshot taken after the expiry was applied
	Session *GameSession

	// Word is the answer nobody guessed in time
	Word string
}

// RoundEndedData accompanies EventRoundEnded
type RoundEndedData struct {
	// Session is a snapshot taken after the round was settled
	Session *GameSession

	// RoundNumber is the round that just ended
	RoundNumber int
}

// GameEndedData accompanies EventGameEnded
type GameEndedData struct {
	// Session is the final session snapshot
	Session *GameSession

	// Winners holds every player tied at the top score
	Winners []*Player
}
