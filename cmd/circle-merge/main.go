package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/circle-merge/audio"
	"github.com/lixenwraith/circle-merge/config"
	"github.com/lixenwraith/circle-merge/core"
	"github.com/lixenwraith/circle-merge/engine"
	"github.com/lixenwraith/circle-merge/input"
	"github.com/lixenwraith/circle-merge/render"
	"github.com/lixenwraith/circle-merge/score"
	"github.com/lixenwraith/circle-merge/service"
	"github.com/lixenwraith/circle-merge/storage"
	"github.com/lixenwraith/circle-merge/system"
	"github.com/lixenwraith/circle-merge/vmath"
)

var (
	configFlag    = flag.String("config", "", "Path to YAML config (defaults built in)")
	debugFlag     = flag.Bool("debug", false, "Write logs to logs/ and show the stats overlay")
	seedFlag      = flag.Uint64("seed", 0, "Spawn RNG seed, 0 seeds from the clock")
	muteFlag      = flag.Bool("mute", false, "Start with sound muted")
	highScoreFlag = flag.String("highscore", "", "High score file path")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	// Config errors are reported before the terminal is taken over
	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "circle-merge: %v\n", err)
		os.Exit(1)
	}
	if *configFlag != "" {
		log.Printf("config loaded from %s", *configFlag)
	}

	var rng vmath.RandomSource
	seed := cfg.Spawn.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	if seed != 0 {
		rng = vmath.NewSeededRand(seed)
		log.Printf("spawn seed %d", seed)
	}

	tracker := score.NewTracker(openHighScoreStore(cfg))

	game := engine.NewGameContext(cfg, tracker, rng)
	system.Install(game)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	renderer := render.NewTerminalRenderer(screen)
	renderer.SetOverlay(*debugFlag)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := service.NewHub()
	mustRegister(hub, render.NewScreenService(screen))
	schedulerDeps := []string{"terminal"}

	var sound *audio.SoundManager
	if cfg.Audio.Enabled {
		sound = audio.NewSoundManager(cfg.Audio.Volume)
		mustRegister(hub, audio.NewService(sound, *muteFlag))
		game.RegisterHandler(audio.NewFeedbackHandler(sound))
		schedulerDeps = append(schedulerDeps, "audio")
	}

	scheduler := engine.NewClockScheduler(game, engine.NewRealTicker(cfg.Engine.TickInterval), func() {
		renderer.RenderFrame(game)
	})
	mustRegister(hub, engine.NewSchedulerService(ctx, scheduler, schedulerDeps...))

	if err := hub.InitAll(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer hub.StopAll()
	if err := hub.StartAll(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	// Poller only forwards events; all game mutation happens on the scheduler goroutine
	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	handler := input.NewHandler(game, renderer)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch handler.Handle(ev) {
			case input.IntentQuit:
				log.Printf("quit requested")
				return
			case input.IntentToggleMute:
				if sound != nil {
					log.Printf("muted: %v", sound.ToggleMute())
				}
			case input.IntentToggleOverlay:
				renderer.ToggleOverlay()
			case input.IntentResize:
				screen.Sync()
			}
		}
	}
}

// openHighScoreStore resolves the high score file from flag, config, then the user config dir
// Falls back to an in-memory store when no location can be determined
func openHighScoreStore(cfg *config.Config) storage.HighScoreStore {
	path := *highScoreFlag
	if path == "" {
		path = cfg.Scoring.HighScorePath
	}
	if path == "" {
		p, err := storage.DefaultPath()
		if err != nil {
			log.Printf("high score kept in memory: %v", err)
			return storage.NewMemoryStore(0)
		}
		path = p
	}
	log.Printf("high score file %s", path)
	return storage.NewFileStore(path)
}

func mustRegister(hub *service.Hub, svc service.Service) {
	if err := hub.Register(svc); err != nil {
		fmt.Fprintf(os.Stderr, "circle-merge: %v\n", err)
		os.Exit(1)
	}
}
