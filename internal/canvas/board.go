package canvas

import (
	"github.com/rs/zerolog"
)

// LogBoard narrates drawing traffic through a logger, standing in for a
// shared display in the demo shell.
type LogBoard struct {
	logger zerolog.Logger
}

// NewLogBoard creates a LogBoard writing to the given logger
func NewLogBoard(logger *zerolog.Logger) *LogBoard {
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}

	return &LogBoard{logger: l}
}

// OnDrawingChange logs the size of the incoming stroke payload
func (b *LogBoard) OnDrawingChange(stroke string) {
	b.logger.Debug().
		Int("stroke_bytes", len(stroke)).
		Msg("drawing updated")
}

// NopBoard is a Board that discards every update. It is the default
// collaborator when no canvas is wired in.
type NopBoard struct{}

// OnDrawingChange does nothing
func (NopBoard) OnDrawingChange(string) {}
