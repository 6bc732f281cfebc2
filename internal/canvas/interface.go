package canvas

//go:generate mockgen -package=mocks -destination=mocks/mock_board.go github.com/partygames/sketchparty/internal/canvas Board

// Board receives drawing updates from the controller. Stroke data is an
// opaque string the game core forwards without inspecting; its format is a
// contract between the drawer's device and the rendering layer.
type Board interface {
	// OnDrawingChange delivers the latest stroke data. One-way, best
	// effort, never blocks game flow.
	OnDrawingChange(stroke string)
}
