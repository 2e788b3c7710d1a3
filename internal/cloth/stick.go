package cloth

import "fmt"

// Stick is a distance constraint between two points. It is positional, not
// force-based: each relaxation step moves both endpoints halfway toward the
// rest length. Endpoint handles index the owning cloth's point list.
type Stick struct {
	P1, P2     int
	Length     float64
	Elasticity float64 // fraction of Length it may stretch before breaking

	Selected bool
	Broken   bool
}

// newStick panics on negative elasticity: the value is a fraction of the
// rest length, so a negative one is a construction bug, not a runtime state.
func newStick(p1, p2 int, length, elasticity float64) Stick {
	if elasticity < 0 {
		panic(fmt.Sprintf("cloth: stick elasticity must be >= 0, got %v", elasticity))
	}
	return Stick{
		P1:     p1,
		P2:     p2,
		Length: length,

		Elasticity: elasticity,
	}
}

// relax applies the break check and a single correction step. It is not
// iterated to convergence; one pass per frame is the intended behavior.
func (s *Stick) relax(points []Point) {
	p1 := &points[s.P1]
	p2 := &points[s.P2]

	diff := p1.Pos.Sub(p2.Pos)
	dist := diff.Len()

	if dist > s.Length*(1+s.Elasticity) {
		s.Broken = true
	}

	// Coincident endpoints would divide by zero here; leave them for the
	// next frame instead of propagating NaN through the grid.
	if dist < 1e-9 {
		return
	}

	offset := diff.Mul((s.Length - dist) / dist * 0.5)
	p1.Pos = p1.Pos.Add(offset)
	p2.Pos = p2.Pos.Sub(offset)
}
