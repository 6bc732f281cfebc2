package models

// Player represents a participant in a game session
type Player struct {
	// ID is the unique identifier for the player within a session
	ID string

	// Name is the display name shown to other players
	Name string

	// Score is the player's cumulative score for the session
	Score int

	// IsDrawing indicates whether the player is the current drawer
	IsDrawing bool
}

// Clone returns a copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}

	cp := *p
	return &cp
}
