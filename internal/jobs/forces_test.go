package jobs

import (
	"testing"
	"time"
)

func almostEq(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func baseRequest(points []PointSnapshot) ForceRequest {
	return ForceRequest{
		Points:       points,
		PointerX:     0,
		PointerY:     0,
		Elasticity:   10,
		CursorRadius: 10,
		ForceScale:   10000,
		GravityX:     0,
		GravityY:     981,
	}
}

func TestComputeForcesSelectionAndDrag(t *testing.T) {
	req := baseRequest([]PointSnapshot{
		{X: 5, Y: 0},   // inside the cursor radius
		{X: 50, Y: 50}, // far away
	})
	req.LeftDown = true
	req.PrevPointerX = -30 // displacement +30, clamped to elasticity 10
	req.PrevPointerY = -2  // displacement +2, within the clamp

	got := ComputeForces(req)

	if len(got) != 2 {
		t.Fatalf("result length: got %d want 2", len(got))
	}

	sel := got[0]
	if !sel.Selected {
		t.Fatal("near point should be selected")
	}
	if !almostEq(sel.AccelX, 10*10000) {
		t.Fatalf("clamped drag force x: got %v want %v", sel.AccelX, 10*10000.0)
	}
	if !almostEq(sel.AccelY, 981+2*10000) {
		t.Fatalf("drag force y: got %v want %v", sel.AccelY, 981+2*10000.0)
	}

	far := got[1]
	if far.Selected {
		t.Fatal("far point should not be selected")
	}
	if !almostEq(far.AccelX, 0) || !almostEq(far.AccelY, 981) {
		t.Fatalf("far point should only see gravity: %+v", far)
	}
}

func TestSelectionIgnoresButtonsWhenNotDragging(t *testing.T) {
	req := baseRequest([]PointSnapshot{{X: 3, Y: 4}}) // dist 5
	req.PrevPointerX = -100

	got := ComputeForces(req)
	if !got[0].Selected {
		t.Fatal("point within radius should be selected")
	}
	if !almostEq(got[0].AccelX, 0) || !almostEq(got[0].AccelY, 981) {
		t.Fatalf("no drag force without the left button: %+v", got[0])
	}
}

func TestSelectionBoundaryIsInclusive(t *testing.T) {
	req := baseRequest([]PointSnapshot{
		{X: 10, Y: 0},   // exactly on the radius
		{X: 10.1, Y: 0}, // just outside
	})

	got := ComputeForces(req)
	if !got[0].Selected {
		t.Fatal("boundary point should be selected")
	}
	if got[1].Selected {
		t.Fatal("point outside the radius should not be selected")
	}
}

func TestForcePoolMatchesSerial(t *testing.T) {
	points := make([]PointSnapshot, 500)
	for i := range points {
		points[i] = PointSnapshot{X: float64(i % 25), Y: float64(i / 25)}
	}
	req := baseRequest(points)
	req.LeftDown = true
	req.PrevPointerX = -3
	req.PrevPointerY = 1

	pool := NewForcePool(4)
	defer pool.Close()

	want := ComputeForces(req)
	got := pool.Compute(req)

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("point %d mismatch: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestForcePoolCloseIsIdempotent(t *testing.T) {
	pool := NewForcePool(2)

	done := make(chan struct{})
	go func() {
		pool.Close()
		pool.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("pool close blocked")
	}
}
