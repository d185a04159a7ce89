package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/lixenwraith/marionette/audio"
	"github.com/lixenwraith/marionette/constants"
	"github.com/lixenwraith/marionette/engine"
	"github.com/lixenwraith/marionette/event"
	"github.com/lixenwraith/marionette/parameter"
	"github.com/lixenwraith/marionette/render"
)

const logPath = "marionette.log"

// defaultPlacement is the fallback spot when no surface hit is
// available: two meters in front of the origin
var defaultPlacement = mgl64.Vec3{0, 0, -2}

func main() {
	paramsPath := flag.String("params", "marionette.yaml", "locomotion parameter overrides")
	debug := flag.Bool("debug", false, "write a debug log to "+logPath)
	mute := flag.Bool("mute", false, "disable jump/land cues")
	flag.Parse()

	logger := setupLogging(*debug)
	defer logger.Sync()

	params, err := parameter.Load(*paramsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()

	var sink event.Sink
	if !*mute {
		cues, err := audio.NewCues()
		if err != nil {
			// Non-fatal, the demo runs silent
			logger.Warn("audio initialization failed", zap.Error(err))
		}
		defer cues.Close()
		sink = cues.Sink()
	}

	keys := &keyboard{}
	poses := &rig{}
	orch := engine.New(keys, poses,
		engine.WithIntegrator(params.Integrator()),
		engine.WithEventSink(sink),
		engine.WithLogger(logger),
	)
	renderer := render.NewTerminal(screen)

	// The demo has no surface detection; place at the fallback spot
	orch.Place(defaultPlacement)
	defer orch.End()

	run(screen, orch, renderer, keys, poses)
}

func run(screen tcell.Screen, orch *engine.Orchestrator, renderer render.Renderer, keys *keyboard, poses *rig) {
	ticker := time.NewTicker(time.Second / constants.TickRate)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return
				}
				keys.HandleKey(ev)
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			// The core integrates on its fixed nominal timestep; the
			// ticker only paces it, elapsed time is never measured
			orch.Tick()
			renderer.Render(orch.Skeleton())
			keys.Decay()
			poses.Advance(constants.TickDelta)
		}
	}
}

// setupLogging returns a no-op logger unless debug is set; the terminal
// is owned by tcell, so debug output goes to a file
func setupLogging(debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{logPath}
	cfg.ErrorOutputPaths = []string{logPath}

	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return logger
}
