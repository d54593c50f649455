package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snakeio/audio"
	"github.com/lixenwraith/snakeio/config"
	"github.com/lixenwraith/snakeio/constants"
	"github.com/lixenwraith/snakeio/core"
	"github.com/lixenwraith/snakeio/engine"
	"github.com/lixenwraith/snakeio/input"
	"github.com/lixenwraith/snakeio/render"
	"github.com/lixenwraith/snakeio/status"
	"github.com/lixenwraith/snakeio/storage"
)

var (
	configFlag = flag.String("config", "", "Settings file (default: user config dir)")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/snakeio.log")
	seedFlag   = flag.Uint64("seed", 0, "Fixed RNG seed, 0 seeds from the clock")
	speedFlag  = flag.String("speed", "", "Starting speed: slow, medium, fast")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := engine.ValidateFoodTable(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Food table error:"), err)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Config error:"), err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.HideCursor()
	core.RegisterTerminal(screen)

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Printf("Continuing without audio: %v", err)
	}
	defer sound.Cleanup()

	store := storage.NewINIStore(cfg.ScorePath)
	registry := status.NewRegistry()
	scheduler := engine.NewClockScheduler()
	defer scheduler.Stop()
	renderer := render.NewRenderer(screen)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("Seed %d, speed %s, board %dx%d, scores %s", seed, cfg.Speed, cfg.Cols, cfg.Rows, store.Path())

	game := engine.NewGame(engine.Options{
		Cols:            cfg.Cols,
		Rows:            cfg.Rows,
		Speed:           cfg.Speed,
		FoodSpeedFactor: cfg.FoodSpeedFactor,
		Rand:            rand.New(rand.NewPCG(seed, seed>>1|1)),
		Clock:           engine.NewMonotonicTimeProvider(),
		Scheduler:       scheduler,
		Audio:           sound,
		Store:           store,
		Renderer:        renderer,
		Status:          registry,
	})
	game.Redraw()

	events := make(chan tcell.Event, constants.EventChannelSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	run(screen, game, scheduler, events)

	core.RegisterTerminal(nil)
	screen.Fini()

	played, dropped := sound.GetStats()
	log.Printf("Audio: %d cues played, %d dropped", played, dropped)
	log.Print(sessionReport(scheduler, renderer, sound.IsSilent()))
	log.Printf("Session metrics:\n%s", registry.Summary())
	printSummary(game, store)
}

// loadConfig resolves the settings file then applies command-line overrides
func loadConfig() (*config.Config, error) {
	path := *configFlag
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if *speedFlag != "" {
		if err := cfg.SetSpeed(*speedFlag); err != nil {
			return nil, fmt.Errorf("-speed: %w", err)
		}
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.Audio.Muted = true
	}
	return cfg, nil
}

// run is the single-threaded game loop, every Game call happens here
// Scheduler channels are re-read each pass since reschedules swap them
func run(screen tcell.Screen, game *engine.Game, scheduler *engine.ClockScheduler, events <-chan tcell.Event) {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if _, resize := ev.(*tcell.EventResize); resize {
				screen.Sync()
				game.Redraw()
				continue
			}
			if !game.HandleIntent(input.FromEvent(ev)) {
				return
			}

		case <-scheduler.TickC():
			game.Tick()

		case <-scheduler.FrameC():
			scheduler.FrameFired()
			game.AnimationFrame()
		}
	}
}

// sessionReport summarizes loop activity for the log
func sessionReport(scheduler *engine.ClockScheduler, renderer *render.Renderer, silent bool) string {
	reschedules, frames := scheduler.Counts()
	return fmt.Sprintf("Loop: %d screens flushed, %d tick reschedules, %d animation frames, last interval %v, audio silent %t",
		renderer.Frames(), reschedules, frames, scheduler.Interval(), silent)
}

// printSummary reports the session on the restored terminal
func printSummary(game *engine.Game, store *storage.INIStore) {
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()

	fmt.Printf("%s  last score %s  best %s\n", bold(constants.Title), green(game.Score()), green(game.HighScore()))
	if store.Degraded() {
		color.Yellow("High score could not be saved to %s", store.Path())
	}
}
