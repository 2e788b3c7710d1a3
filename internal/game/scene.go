package game

import (
	"runtime"

	"github.com/39bytes/cloth-sim/internal/cloth"
	"github.com/39bytes/cloth-sim/internal/jobs"
	"github.com/39bytes/cloth-sim/internal/shared/input"
)

type Msg interface{ isMsg() }

type MsgPointer struct{ Input input.State }

func (MsgPointer) isMsg() {}

type MsgRestart struct{}

func (MsgRestart) isMsg() {}

type MsgTogglePause struct{}

func (MsgTogglePause) isMsg() {}

// Scene holds independent cloth instances. They share a force pool but
// never interact; each is updated in isolation every tick.
type Scene struct {
	Cloths []*cloth.Cloth
	Paused bool

	cfg   Config
	inbox []Msg
	pool  *jobs.ForcePool

	// Previous-step pointer position, host-owned state the drag impulse
	// is derived from.
	prevPointer cloth.Vec2
}

func NewScene(cfg Config) *Scene {
	s := &Scene{
		cfg:  cfg,
		pool: newForcePool(),
	}
	s.build()
	return s
}

func newForcePool() *jobs.ForcePool {
	workers := runtime.NumCPU() / 2
	if workers < 1 {
		workers = 1
	}
	if workers > 4 {
		workers = 4
	}
	return jobs.NewForcePool(workers)
}

func (s *Scene) build() {
	s.Cloths = s.Cloths[:0]
	for _, spec := range s.cfg.Cloths {
		c := cloth.New(cloth.Config{
			Width:      spec.Width,
			Height:     spec.Height,
			Spacing:    spec.Spacing,
			StartX:     spec.StartX,
			StartY:     spec.StartY,
			Elasticity: spec.Elasticity,
		})
		c.SetForcePool(s.pool)
		s.Cloths = append(s.Cloths, c)
	}
}

// Reset rebuilds every cloth from the scene config. The pool survives.
func (s *Scene) Reset() {
	s.Paused = false
	s.prevPointer = cloth.Vec2{}
	s.build()
}

func (s *Scene) Enqueue(m Msg) {
	s.inbox = append(s.inbox, m)
}

// Tick processes queued messages and advances every cloth one step.
// Pointer messages are applied in arrival order; the last pointer sample
// of the tick becomes the previous position for the next one.
func (s *Scene) Tick(dt float64) {
	for _, m := range s.inbox {
		switch msg := m.(type) {
		case MsgPointer:
			if s.Paused {
				continue
			}
			for _, c := range s.Cloths {
				c.Update(dt, msg.Input, s.prevPointer)
			}
			s.prevPointer = cloth.Vec2{X: msg.Input.X, Y: msg.Input.Y}
		case MsgRestart:
			s.Reset()
		case MsgTogglePause:
			s.Paused = !s.Paused
		}
	}
	s.inbox = s.inbox[:0]
}

// Stats sums the per-cloth counters.
func (s *Scene) Stats() cloth.Stats {
	var total cloth.Stats
	for _, c := range s.Cloths {
		total.SticksBroken += c.Stats.SticksBroken
		total.PointsTorn += c.Stats.PointsTorn
	}
	return total
}

func (s *Scene) Close() {
	if s.pool != nil {
		s.pool.Close()
		s.pool = nil
	}
}
