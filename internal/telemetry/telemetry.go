package telemetry

import (
	"sync"
	"time"

	"github.com/39bytes/cloth-sim/internal/commons/logger_config"
)

type Event struct {
	Kind string // "frame", "break", "tear"
	I    int
	F    float64
	At   time.Time
}

// Batch is one flush interval's aggregate.
type Batch struct {
	Frames       int
	DtSum        float64
	SticksBroken int
	PointsTorn   int
}

func (b Batch) AvgDt() float64 {
	if b.Frames == 0 {
		return 0
	}
	return b.DtSum / float64(b.Frames)
}

func (b Batch) empty() bool {
	return b.Frames == 0 && b.SticksBroken == 0 && b.PointsTorn == 0
}

type Sink struct {
	In chan Event

	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func NewSink() *Sink {
	return newSink(2*time.Second, logBatch)
}

func newSink(flushEvery time.Duration, flush func(Batch)) *Sink {
	s := &Sink{
		In:   make(chan Event, 256),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go s.loop(flushEvery, flush)

	return s
}

func (s *Sink) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
		<-s.done
	})
}

func (s *Sink) loop(flushEvery time.Duration, flush func(Batch)) {
	defer close(s.done)

	ticker := time.NewTicker(flushEvery)
	defer ticker.Stop()

	var b Batch

	for {
		select {
		case <-s.quit:
			if !b.empty() {
				flush(b)
			}
			return

		case ev := <-s.In:
			switch ev.Kind {
			case "frame":
				b.Frames++
				b.DtSum += ev.F
			case "break":
				b.SticksBroken += ev.I
			case "tear":
				b.PointsTorn += ev.I
			}

		case <-ticker.C:
			if b.empty() {
				continue
			}
			flush(b)
			b = Batch{}
		}
	}
}

func logBatch(b Batch) {
	logger_config.Logger.Info("telemetry",
		"frames", b.Frames,
		"avg_dt", b.AvgDt(),
		"broken", b.SticksBroken,
		"torn", b.PointsTorn,
	)
}
