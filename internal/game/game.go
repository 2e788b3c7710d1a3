package game

import (
	"time"

	"github.com/39bytes/cloth-sim/internal/assets"
	"github.com/39bytes/cloth-sim/internal/telemetry"
)

type Game struct {
	scene *Scene
	cfg   Config

	// fixed tick
	accum     time.Duration
	last      time.Time
	fixedStep time.Duration

	// asset loader
	loader *assets.Loader
	assets *AssetManager

	// telemetry sink
	telemetry *telemetry.Sink

	// cumulative stat baselines (for delta events)
	lastBroken int
	lastTorn   int
}

func New(cfg Config) *Game {
	g := &Game{
		scene:     NewScene(cfg),
		cfg:       cfg,
		last:      time.Now(),
		fixedStep: time.Second / 60,
	}
	g.loader = assets.NewLoader()
	g.assets = NewAssetManager(g.loader)
	g.telemetry = telemetry.NewSink()

	if cfg.Backdrop != "" {
		g.assets.Request("backdrop", cfg.Backdrop)
	}
	return g
}

func (g *Game) Update() error {
	now := time.Now()
	g.assets.Poll()

	frameDt := now.Sub(g.last)
	g.last = now

	// avoid spiral of death on long pauses
	if frameDt > 250*time.Millisecond {
		frameDt = 250 * time.Millisecond
	}
	g.sendTelemetry(telemetry.Event{
		Kind: "frame",
		F:    frameDt.Seconds(),
		At:   now,
	})

	g.accum += frameDt

	if ReadRestart() {
		g.scene.Enqueue(MsgRestart{})
	}
	if ReadPaused() {
		g.scene.Enqueue(MsgTogglePause{})
	}

	// fixed-step simulation; pointer is re-sampled each sim step so the
	// drag impulse sees per-step displacement, not per-display-frame.
	for g.accum >= g.fixedStep {
		g.scene.Enqueue(MsgPointer{Input: ReadPointer()})
		g.scene.Tick(g.fixedStep.Seconds())
		g.accum -= g.fixedStep
	}
	g.emitSceneDeltas(now)

	return nil
}

func (g *Game) Layout(outsideW, outsideH int) (int, int) {
	return g.cfg.WindowW, g.cfg.WindowH
}

func (g *Game) Close() {
	if g.loader != nil {
		g.loader.Close()
		g.loader = nil
	}
	if g.telemetry != nil {
		g.telemetry.Close()
		g.telemetry = nil
	}
	if g.scene != nil {
		g.scene.Close()
		g.scene = nil
	}
}

func (g *Game) emitSceneDeltas(at time.Time) {
	stats := g.scene.Stats()

	if stats.SticksBroken < g.lastBroken {
		// scene was reset
		g.lastBroken = stats.SticksBroken
	} else if d := stats.SticksBroken - g.lastBroken; d > 0 {
		g.sendTelemetry(telemetry.Event{Kind: "break", I: d, At: at})
		g.lastBroken = stats.SticksBroken
	}

	if stats.PointsTorn < g.lastTorn {
		g.lastTorn = stats.PointsTorn
	} else if d := stats.PointsTorn - g.lastTorn; d > 0 {
		g.sendTelemetry(telemetry.Event{Kind: "tear", I: d, At: at})
		g.lastTorn = stats.PointsTorn
	}
}

func (g *Game) sendTelemetry(ev telemetry.Event) {
	if g.telemetry == nil {
		return
	}

	select {
	case g.telemetry.In <- ev:
	default:
		// Drop on backpressure to avoid stalling the fixed-step loop.
	}
}
