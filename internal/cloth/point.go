package cloth

// Slot indices for a point's registered sticks. Each point tracks at most
// one horizontal and one vertical constraint; the link to its right/down
// neighbor lives in that neighbor's slot, not here.
const (
	SlotHorizontal = 0
	SlotVertical   = 1
)

// NoStick marks an empty slot.
const NoStick = -1

// Point is a mass node of the cloth grid. Stick handles are indices into
// the owning cloth's stick list.
type Point struct {
	Pos    Vec2
	Prev   Vec2
	Anchor Vec2 // frozen at construction; pinned points snap back to it

	Sticks [2]int
	Pinned bool
}

func newPoint(pos Vec2) Point {
	return Point{
		Pos:    pos,
		Prev:   pos,
		Anchor: pos,
		Sticks: [2]int{NoStick, NoStick},
	}
}

func (p *Point) registerStick(handle, slot int) {
	p.Sticks[slot] = handle
}

// integrate advances the point one Verlet step under the given acceleration.
// Pinned points snap back to their anchor instead.
func (p *Point) integrate(dt, drag float64, accel Vec2) {
	if p.Pinned {
		p.Pos = p.Anchor
		return
	}

	next := p.Pos.
		Add(p.Pos.Sub(p.Prev).Mul(1 - drag)).
		Add(accel.Mul((1 - drag) * dt * dt))
	p.Prev = p.Pos
	p.Pos = next
}
