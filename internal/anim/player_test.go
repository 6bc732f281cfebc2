package anim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/partygames/sketchparty/internal/models"
)

type LogPlayerTestSuite struct {
	suite.Suite
	ctx    context.Context
	player *LogPlayer
}

func (s *LogPlayerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.player = NewLogPlayer(nil)
}

func (s *LogPlayerTestSuite) TestPlayForState_BeforeInitialize() {
	err := s.player.PlayForState(s.ctx, models.GameStateDrawing)

	s.Require().ErrorIs(err, ErrNotInitialized)
}

func (s *LogPlayerTestSuite) TestPlayForState_AfterInitialize() {
	s.Require().NoError(s.player.Initialize(s.ctx, "res://confetti"))

	s.NoError(s.player.PlayForState(s.ctx, models.GameStateCorrectGuess))
}

func (s *LogPlayerTestSuite) TestInitialize_RequiresResource() {
	err := s.player.Initialize(s.ctx, "")

	s.Require().ErrorIs(err, ErrMissingResource)
}

func (s *LogPlayerTestSuite) TestStop_ResetsReadiness() {
	s.Require().NoError(s.player.Initialize(s.ctx, "res://confetti"))
	s.player.Stop()

	err := s.player.PlayForState(s.ctx, models.GameStateDrawing)
	s.Require().ErrorIs(err, ErrNotInitialized)
}

func TestLogPlayerTestSuite(t *testing.T) {
	suite.Run(t, new(LogPlayerTestSuite))
}
