package cloth

type Config struct {
	// Grid
	Width   int     // points per row
	Height  int     // rows
	Spacing float64 // rest length between neighbors
	StartX  float64 // top-left anchor
	StartY  float64

	// Stretch-before-break fraction shared by every stick of the cloth.
	Elasticity float64
}

// Tuning shared by all cloth instances.
const (
	// Uniform per-step velocity damping.
	Drag = 0.05

	// Selection radius around the pointer, length units.
	CursorRadius = 10.0

	// Pointer-drag impulse scale applied to the clamped per-step
	// pointer displacement.
	DragForceScale = 10000.0
)

// Gravity is the base acceleration applied to every free point, +Y down.
var Gravity = Vec2{X: 0, Y: 981.0}

func DefaultConfig() Config {
	return Config{
		Width:      20,
		Height:     20,
		Spacing:    10,
		StartX:     200,
		StartY:     60,
		Elasticity: 10.0,
	}
}
