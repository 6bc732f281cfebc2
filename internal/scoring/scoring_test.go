package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessPoints(t *testing.T) {
	tests := []struct {
		name          string
		timeRemaining int
		maxTime       int
		want          int
	}{
		{name: "half the time left", timeRemaining: 30, maxTime: 60, want: 125},
		{name: "no time left", timeRemaining: 0, maxTime: 60, want: 100},
		{name: "full time left", timeRemaining: 60, maxTime: 60, want: 150},
		{name: "bonus floors fractional seconds", timeRemaining: 20, maxTime: 60, want: 116},
		{name: "zero max time yields base", timeRemaining: 30, maxTime: 0, want: 100},
		{name: "negative max time yields base", timeRemaining: 30, maxTime: -5, want: 100},
		{name: "negative remaining clamps to zero", timeRemaining: -10, maxTime: 60, want: 100},
		{name: "remaining above max clamps to max", timeRemaining: 90, maxTime: 60, want: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GuessPoints(tt.timeRemaining, tt.maxTime))
		})
	}
}

func TestDrawerPoints(t *testing.T) {
	assert.Equal(t, 50, DrawerPoints())
}
