package models

import (
	"time"
)

// GameState represents the lifecycle state of a game session
type GameState string

const (
	// GameStateWaiting indicates a session that has been created but not started
	GameStateWaiting GameState = "WAITING"

	// GameStateDrawing indicates an active round: the drawer draws while the
	// other players guess
	GameStateDrawing GameState = "DRAWING"

	// GameStateGuessing names the guessing phase. The standard flow never
	// enters it; guessing happens while the session is in GameStateDrawing.
	GameStateGuessing GameState = "GUESSING"

	// GameStateCorrectGuess indicates the round ended with a correct guess
	GameStateCorrectGuess GameState = "CORRECT_GUESS"

	// GameStateTimeUp indicates the round ended because the timer expired
	GameStateTimeUp GameState = "TIME_UP"

	// GameStateGameOver indicates the session has finished. Terminal.
	GameStateGameOver GameState = "GAME_OVER"
)

// RoundActive reports whether guesses are accepted in state s
func RoundActive(s GameState) bool {
	return s == GameStateDrawing || s == GameStateGuessing
}

// KnownGameState reports whether s is one of the defined states
func KnownGameState(s GameState) bool {
	switch s {
	case GameStateWaiting, GameStateDrawing, GameStateGuessing,
		GameStateCorrectGuess, GameStateTimeUp, GameStateGameOver:
		return true
	default:
		return false
	}
}

// GameSession is the aggregate root for one game, from initialization to
// game over. The engine stores it keyed by ID and hands out snapshots via
// Clone, never the stored value itself.
type GameSession struct {
	// ID is the unique identifier for the session
	ID string

	// Players holds the participants. Order defines drawer rotation.
	Players []*Player

	// CurrentWord is the word being drawn, nil outside an active round
	CurrentWord *GameWord

	// CurrentDrawer points at the drawing player in Players, nil before
	// the first round starts
	CurrentDrawer *Player

	// State is the current lifecycle state
	State GameState

	// TimeRemaining is the number of seconds left in the active round
	TimeRemaining int

	// RoundNumber is the current round. Zero until the game starts.
	RoundNumber int

	// HintsRevealed counts how many of the current word's hints have been
	// handed out this round
	HintsRevealed int

	// Config holds the settings supplied at initialization
	Config GameConfig

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session was last mutated
	UpdatedAt time.Time
}

// PlayerByID returns the session player with the given id, or nil
func (s *GameSession) PlayerByID(id string) *Player {
	if s == nil {
		return nil
	}

	for _, p := range s.Players {
		if p != nil && p.ID == id {
			return p
		}
	}
	return nil
}

// Clone returns a deep copy of the session. The copy's CurrentDrawer points
// at the copy's own player entry so drawer identity survives the copy.
func (s *GameSession) Clone() *GameSession {
	if s == nil {
		return nil
	}

	cp := *s

	cp.Players = make([]*Player, len(s.Players))
	for i, p := range s.Players {
		cp.Players[i] = p.Clone()
	}

	cp.CurrentWord = s.CurrentWord.Clone()

	cp.CurrentDrawer = nil
	if s.CurrentDrawer != nil {
		if match := cp.PlayerByID(s.CurrentDrawer.ID); match != nil {
			cp.CurrentDrawer = match
		} else {
			cp.CurrentDrawer = s.CurrentDrawer.Clone()
		}
	}

	return &cp
}
