package game

import (
	"testing"

	"github.com/39bytes/cloth-sim/internal/cloth"
	"github.com/39bytes/cloth-sim/internal/shared/input"
)

const testDt = 1.0 / 60

func testScene(t *testing.T) *Scene {
	t.Helper()
	s := NewScene(DefaultConfig())
	t.Cleanup(s.Close)
	return s
}

func freePointPos(c *cloth.Cloth) cloth.Vec2 {
	for i := range c.Points {
		if !c.Points[i].Pinned {
			return c.Points[i].Pos
		}
	}
	return cloth.Vec2{}
}

func TestSceneTickAdvancesCloths(t *testing.T) {
	s := testScene(t)

	before := freePointPos(s.Cloths[0])
	s.Enqueue(MsgPointer{Input: input.State{X: -1000, Y: -1000}})
	s.Tick(testDt)
	after := freePointPos(s.Cloths[0])

	if after == before {
		t.Fatal("free points should fall under gravity")
	}
	if after.Y <= before.Y {
		t.Fatalf("expected downward motion: before %+v after %+v", before, after)
	}
}

func TestScenePauseStopsSimulation(t *testing.T) {
	s := testScene(t)

	s.Enqueue(MsgTogglePause{})
	s.Tick(testDt)
	if !s.Paused {
		t.Fatal("scene should be paused")
	}

	before := freePointPos(s.Cloths[0])
	s.Enqueue(MsgPointer{Input: input.State{X: -1000, Y: -1000}})
	s.Tick(testDt)

	if freePointPos(s.Cloths[0]) != before {
		t.Fatal("paused scene must not advance")
	}

	s.Enqueue(MsgTogglePause{})
	s.Enqueue(MsgPointer{Input: input.State{X: -1000, Y: -1000}})
	s.Tick(testDt)
	if freePointPos(s.Cloths[0]) == before {
		t.Fatal("unpaused scene should advance again")
	}
}

func TestSceneRestartRebuildsCloths(t *testing.T) {
	s := testScene(t)
	initial := freePointPos(s.Cloths[0])

	for range 30 {
		s.Enqueue(MsgPointer{Input: input.State{X: -1000, Y: -1000}})
		s.Tick(testDt)
	}
	if freePointPos(s.Cloths[0]) == initial {
		t.Fatal("cloth should have moved before the restart")
	}

	s.Enqueue(MsgRestart{})
	s.Tick(testDt)

	if len(s.Cloths) != 2 {
		t.Fatalf("restart should rebuild both cloths, got %d", len(s.Cloths))
	}
	if freePointPos(s.Cloths[0]) != initial {
		t.Fatalf("restart should restore initial positions: %+v", freePointPos(s.Cloths[0]))
	}
	if stats := s.Stats(); stats != (cloth.Stats{}) {
		t.Fatalf("restart should reset stats: %+v", stats)
	}
}

func TestSceneClothsAreIndependent(t *testing.T) {
	s := testScene(t)

	// tear at a free point of the first cloth only
	spec := DefaultConfig().Cloths[0]
	in := input.State{
		X:     spec.StartX + spec.Spacing,
		Y:     spec.StartY + spec.Spacing,
		Right: true,
	}
	s.Enqueue(MsgPointer{Input: in})
	s.Tick(testDt)

	if s.Cloths[0].Stats.PointsTorn == 0 {
		t.Fatal("first cloth should have torn points")
	}
	if s.Cloths[1].Stats.PointsTorn != 0 {
		t.Fatalf("second cloth must be unaffected: %+v", s.Cloths[1].Stats)
	}
}
