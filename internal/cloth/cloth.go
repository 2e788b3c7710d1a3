// Package cloth simulates a 2-D cloth as a mass-spring grid advanced by
// Verlet integration. Points and sticks live in flat slices and reference
// each other by index, so the package is free of shared-pointer aliasing
// and of any rendering concern; hosts drive Update once per frame and read
// the remaining constraints back as line segments.
package cloth

import (
	"github.com/39bytes/cloth-sim/internal/jobs"
	"github.com/39bytes/cloth-sim/internal/shared/input"
)

type Stats struct {
	SticksBroken int // removed by the end-of-frame sweep, any cause
	PointsTorn   int // right-click tear invocations
}

type Cloth struct {
	Points []Point
	Sticks []Stick

	Elasticity float64
	Stats      Stats

	// Optional phase-1 worker pool; nil means serial force computation.
	pool *jobs.ForcePool
}

// New builds a width x height grid of points row-major (y outer, x inner).
// Each point links to its left neighbor (slot 0) and its up neighbor
// (slot 1); there are no diagonal constraints. Every even column of the top
// row is pinned so the cloth hangs instead of falling.
func New(cfg Config) *Cloth {
	c := &Cloth{
		Points:     make([]Point, 0, cfg.Width*cfg.Height),
		Sticks:     make([]Stick, 0, 2*cfg.Width*cfg.Height),
		Elasticity: cfg.Elasticity,
	}

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			pi := len(c.Points)
			c.Points = append(c.Points, newPoint(Vec2{
				X: cfg.StartX + float64(x)*cfg.Spacing,
				Y: cfg.StartY + float64(y)*cfg.Spacing,
			}))

			if x != 0 {
				c.link(pi, pi-1, cfg.Spacing, SlotHorizontal)
			}
			if y != 0 {
				c.link(pi, x+(y-1)*cfg.Width, cfg.Spacing, SlotVertical)
			}
			if y == 0 && x%2 == 0 {
				c.Points[pi].Pinned = true
			}
		}
	}

	return c
}

func (c *Cloth) link(p1, p2 int, length float64, slot int) {
	handle := len(c.Sticks)
	c.Sticks = append(c.Sticks, newStick(p1, p2, length, c.Elasticity))
	c.Points[p1].registerStick(handle, slot)
	c.Points[p2].registerStick(handle, slot)
}

// SetForcePool routes phase-1 force computation through a shared worker
// pool. The pool may be shared by several cloth instances; results are
// identical to the serial path.
func (c *Cloth) SetForcePool(pool *jobs.ForcePool) {
	c.pool = pool
}

// Update advances the simulation one step. prevPointer is the pointer
// position the host sampled on the previous step; the drag impulse is
// derived from the difference. Callers must serialize Update with any
// segment export.
func (c *Cloth) Update(dt float64, in input.State, prevPointer Vec2) {
	// Phase 1: per-point forces, tearing, integration, stick highlight.
	// Highlight propagation must finish for every point before the
	// relaxation pass below reads or moves anything.
	forces := c.computeForces(in, prevPointer)
	for i := range c.Points {
		p := &c.Points[i]
		f := forces[i]

		if f.Selected && !in.Left && in.Right {
			c.tear(i)
		}

		p.integrate(dt, Drag, Vec2{X: f.AccelX, Y: f.AccelY})

		// Pinned points don't move, but dragging over them still
		// highlights their sticks.
		for _, h := range p.Sticks {
			if h != NoStick {
				c.Sticks[h].Selected = f.Selected
			}
		}
	}

	// Phase 2: one relaxation pass in list order. Sticks that broke this
	// frame still apply their final correction before removal.
	for i := range c.Sticks {
		c.Sticks[i].relax(c.Points)
	}

	// Corrections displace pinned endpoints like any other; they always
	// end the frame back on their anchor.
	for i := range c.Points {
		if c.Points[i].Pinned {
			c.Points[i].Pos = c.Points[i].Anchor
		}
	}

	// Phase 3: drop broken sticks and fix up the points' handles.
	c.sweepBroken()
}

func (c *Cloth) computeForces(in input.State, prevPointer Vec2) []jobs.PointForce {
	req := jobs.ForceRequest{
		Points:       make([]jobs.PointSnapshot, len(c.Points)),
		PointerX:     in.X,
		PointerY:     in.Y,
		PrevPointerX: prevPointer.X,
		PrevPointerY: prevPointer.Y,
		LeftDown:     in.Left,
		Elasticity:   c.Elasticity,
		CursorRadius: CursorRadius,
		ForceScale:   DragForceScale,
		GravityX:     Gravity.X,
		GravityY:     Gravity.Y,
	}
	for i := range c.Points {
		req.Points[i] = jobs.PointSnapshot{X: c.Points[i].Pos.X, Y: c.Points[i].Pos.Y}
	}

	if c.pool != nil {
		return c.pool.Compute(req)
	}
	return jobs.ComputeForces(req)
}

// tear breaks the sticks registered on point pi and clears pi's own slots.
// The other endpoint of each stick keeps its reference until the sweep
// clears it at the end of the frame.
func (c *Cloth) tear(pi int) {
	p := &c.Points[pi]
	torn := false
	for slot, h := range p.Sticks {
		if h == NoStick {
			continue
		}
		c.Sticks[h].Broken = true
		p.Sticks[slot] = NoStick
		torn = true
	}
	if torn {
		c.Stats.PointsTorn++
	}
}

// sweepBroken compacts the stick list in place, preserving survivor order,
// then remaps every point's stick handles. Handles to removed sticks go to
// NoStick on both endpoints regardless of how the stick broke.
func (c *Cloth) sweepBroken() {
	broken := 0
	for i := range c.Sticks {
		if c.Sticks[i].Broken {
			broken++
		}
	}
	if broken == 0 {
		return
	}

	remap := make([]int, len(c.Sticks))
	n := 0
	for i := range c.Sticks {
		if c.Sticks[i].Broken {
			remap[i] = NoStick
			continue
		}
		remap[i] = n
		c.Sticks[n] = c.Sticks[i]
		n++
	}
	c.Sticks = c.Sticks[:n]

	for pi := range c.Points {
		for slot, h := range c.Points[pi].Sticks {
			if h != NoStick {
				c.Points[pi].Sticks[slot] = remap[h]
			}
		}
	}

	c.Stats.SticksBroken += broken
}

// Segment is one drawable constraint: two endpoint positions plus the
// highlight flag.
type Segment struct {
	A, B     Vec2
	Selected bool
	Broken   bool
}

// AppendSegments appends one segment per remaining stick to dst and
// returns it. Broken sticks are normally swept before this is called, but
// mid-frame callers may still observe Broken set.
func (c *Cloth) AppendSegments(dst []Segment) []Segment {
	for i := range c.Sticks {
		s := &c.Sticks[i]
		dst = append(dst, Segment{
			A:        c.Points[s.P1].Pos,
			B:        c.Points[s.P2].Pos,
			Selected: s.Selected,
			Broken:   s.Broken,
		})
	}
	return dst
}
