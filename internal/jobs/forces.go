// Package jobs computes per-point selection and applied force for the
// cloth's phase-1 pass, either serially or fanned out over a worker pool.
// The pool path and ComputeForces produce bit-identical results: workers
// write disjoint chunks of one output slice and Compute waits for all of
// them before returning, so the constraint pass never observes a partial
// phase 1.
package jobs

import "sync"

type PointSnapshot struct {
	X, Y float64
}

// ForceRequest is one frame's immutable input: the point positions plus
// pointer state and the cloth tuning needed to derive forces.
type ForceRequest struct {
	Points []PointSnapshot

	PointerX, PointerY         float64
	PrevPointerX, PrevPointerY float64
	LeftDown                   bool

	Elasticity   float64
	CursorRadius float64
	ForceScale   float64
	GravityX     float64
	GravityY     float64
}

// PointForce is the phase-1 result for one point. Tearing is not decided
// here: it mutates constraints, so the cloth applies it serially from the
// Selected flag.
type PointForce struct {
	AccelX, AccelY float64
	Selected       bool
}

// ComputeForces is the pure serial path; the pool workers run the same
// code per chunk.
func ComputeForces(req ForceRequest) []PointForce {
	out := make([]PointForce, len(req.Points))
	computeChunk(&req, out, 0, len(out))
	return out
}

func computeChunk(req *ForceRequest, out []PointForce, start, end int) {
	for i := start; i < end; i++ {
		p := req.Points[i]

		dx := p.X - req.PointerX
		dy := p.Y - req.PointerY
		selected := dx*dx+dy*dy <= req.CursorRadius*req.CursorRadius

		ax := req.GravityX
		ay := req.GravityY

		if selected && req.LeftDown {
			mx := clamp(req.PointerX-req.PrevPointerX, -req.Elasticity, req.Elasticity)
			my := clamp(req.PointerY-req.PrevPointerY, -req.Elasticity, req.Elasticity)
			ax += mx * req.ForceScale
			ay += my * req.ForceScale
		}

		out[i] = PointForce{AccelX: ax, AccelY: ay, Selected: selected}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type chunkJob struct {
	req        *ForceRequest
	out        []PointForce
	start, end int
	done       *sync.WaitGroup
}

type ForcePool struct {
	workers int
	jobs    chan chunkJob
	quit    chan struct{}

	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Points below this count aren't worth fanning out.
const minChunk = 64

func NewForcePool(workerCount int) *ForcePool {
	if workerCount < 1 {
		workerCount = 1
	}

	p := &ForcePool{
		workers: workerCount,
		jobs:    make(chan chunkJob, workerCount),
		quit:    make(chan struct{}),
	}

	p.wg.Add(workerCount)
	for range workerCount {
		go p.worker()
	}

	return p
}

func (p *ForcePool) Close() {
	p.closeOnce.Do(func() {
		close(p.quit)
		p.wg.Wait()
	})
}

func (p *ForcePool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.quit:
			return
		case job := <-p.jobs:
			computeChunk(job.req, job.out, job.start, job.end)
			job.done.Done()
		}
	}
}

// Compute fans the request out in chunks and blocks until every chunk is
// done. Small requests run inline.
func (p *ForcePool) Compute(req ForceRequest) []PointForce {
	n := len(req.Points)
	if n < minChunk*2 || p.workers < 2 {
		return ComputeForces(req)
	}

	out := make([]PointForce, n)
	chunk := (n + p.workers - 1) / p.workers
	if chunk < minChunk {
		chunk = minChunk
	}

	var done sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		done.Add(1)

		job := chunkJob{req: &req, out: out, start: start, end: end, done: &done}
		select {
		case p.jobs <- job:
		default:
			// All workers busy; do it on the caller's goroutine.
			computeChunk(job.req, job.out, job.start, job.end)
			done.Done()
		}
	}
	done.Wait()

	return out
}
