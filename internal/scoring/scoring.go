// Package scoring holds the point formulas applied when a round is won.
// The functions are pure; the game engine calls them with values taken
// from the session snapshot it is about to settle.
package scoring

const (
	// GuessBase is awarded for any correct guess
	GuessBase = 100

	// GuessMaxBonus caps the time bonus added on top of GuessBase
	GuessMaxBonus = 50

	// DrawerReward is the fixed award for the drawer when their word is guessed
	DrawerReward = 50
)

// GuessPoints returns the guesser's reward for a correct guess: the base
// plus a bonus proportional to the time remaining. A non-positive maxTime
// yields the base alone, and timeRemaining is clamped to [0, maxTime], so
// the result always lands in [GuessBase, GuessBase+GuessMaxBonus].
func GuessPoints(timeRemaining, maxTime int) int {
	if maxTime <= 0 {
		return GuessBase
	}

	if timeRemaining < 0 {
		timeRemaining = 0
	}
	if timeRemaining > maxTime {
		timeRemaining = maxTime
	}

	return GuessBase + timeRemaining*GuessMaxBonus/maxTime
}

// DrawerPoints returns the drawer's fixed reward when their word is guessed
func DrawerPoints() int {
	return DrawerReward
}
