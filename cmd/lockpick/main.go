// Command lockpick is a terminal lock-picking game
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-lockpick/audio"
	"github.com/lixenwraith/vi-lockpick/config"
	"github.com/lixenwraith/vi-lockpick/difficulty"
	"github.com/lixenwraith/vi-lockpick/engine"
	"github.com/lixenwraith/vi-lockpick/history"
	"github.com/lixenwraith/vi-lockpick/input"
	"github.com/lixenwraith/vi-lockpick/parameter"
	"github.com/lixenwraith/vi-lockpick/render"
	"github.com/lixenwraith/vi-lockpick/session"
	"github.com/lixenwraith/vi-lockpick/status"
)

var (
	configFlag     = flag.String("config", "", "YAML tuning file (defaults when empty)")
	difficultyFlag = flag.Int("difficulty", -1, "First lock difficulty 0-100 (config value when negative)")
	policyFlag     = flag.String("policy", "", "Zero-bias policy: hard-biased or easy-biased")
	seedFlag       = flag.Int64("seed", 0, "Replay seed for solutions and difficulties (random when 0)")
	dbFlag         = flag.String("db", "lockpick.db", "Attempt history database (disabled when empty)")
	debugFlag      = flag.Bool("debug", false, "Write debug log to logs/lockpick.log")
	muteFlag       = flag.Bool("mute", false, "Start with audio muted")
	statsFlag      = flag.Bool("stats", false, "Print attempt history and exit")
	dumpFlag       = flag.Bool("dump-config", false, "Print the effective config as YAML and exit")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lockpick: %v\n", err)
		os.Exit(2)
	}

	if *dumpFlag {
		data, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "lockpick: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	if *statsFlag {
		if err := printStats(*dbFlag); err != nil {
			fmt.Fprintf(os.Stderr, "lockpick: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "lockpick: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies flag overrides
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}
	if *difficultyFlag >= 0 {
		cfg.Session.StartDifficulty = *difficultyFlag
	}
	if *policyFlag != "" {
		cfg.Curve.Policy = *policyFlag
	}
	return cfg, cfg.Validate()
}

func printStats(path string) error {
	if path == "" {
		return fmt.Errorf("-stats needs a -db path")
	}
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	sum, err := store.Summary(ctx)
	if err != nil {
		return err
	}
	recent, err := store.Recent(ctx, 10)
	if err != nil {
		return err
	}
	fmt.Print(renderStats(sum, recent, time.Now()))
	return nil
}

func run(cfg config.Config, logger *log.Logger) (err error) {
	// Random sources: a nonzero seed replays solutions and the difficulty sequence
	var lockRand, difficultyRand difficulty.RandomSource
	renderSeed := time.Now().UnixNano()
	if *seedFlag != 0 {
		lockRand = difficulty.NewSeededSource(uint64(*seedFlag))
		difficultyRand = difficulty.NewSeededSource(uint64(*seedFlag) + 1)
		renderSeed = *seedFlag
	}

	var store *history.Store
	if *dbFlag != "" {
		store, err = history.Open(*dbFlag)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error("crashed", "panic", r)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mLOCKPICK CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	// Audio is optional; a missing device leaves cues silent
	player := audio.NewPlayer(beep.SampleRate(parameter.AudioSampleRate))
	if err := player.Initialize(); err != nil {
		logger.Warn("audio unavailable", "err", err)
	}
	defer player.Close()
	player.SetMuted(*muteFlag)

	sim := engine.NewSimulation(cfg.Engine(lockRand))
	sim.Register(audio.NewCues(player, player.SampleRate(), cfg.Host.MoveBuckets))

	board := status.NewBoard()
	game := session.NewGame(sim, cfg.SessionConfig(),
		session.WithBoard(board),
		session.WithLogger(logger),
		session.WithRandom(difficultyRand),
	)
	if store != nil {
		game.OnFinished(func(res session.Result) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if _, err := store.Record(ctx, history.FromResult(res)); err != nil {
				logger.Error("record attempt", "err", err)
			}
		})
	}

	renderer := render.NewRenderer(screen, renderSeed)
	machine := input.NewMachine(nil, input.NewAxes(time.Duration(cfg.Host.AxisHold)))

	game.Start()
	logger.Info("started",
		"difficulty", cfg.Session.StartDifficulty,
		"policy", cfg.Curve.Policy,
		"seed", *seedFlag,
	)

	eventChan := make(chan tcell.Event, 64)
	go func() {
		// Panic recovery for input polling goroutine to ensure terminal cleanup
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	gameTicker := time.NewTicker(time.Duration(cfg.Host.TickInterval))
	defer gameTicker.Stop()
	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	start := time.Now()
	lastTick := start

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			in := machine.Process(ev, time.Now())
			switch in.Type {
			case input.IntentQuit:
				logger.Info("quit", "opened", game.Locks())
				return nil
			case input.IntentTogglePause:
				game.TogglePause()
				machine.Axes().Release()
			case input.IntentToggleMute:
				player.ToggleMute()
			case input.IntentNewLock:
				game.NewLock()
			case input.IntentResize:
				renderer.Resize()
				screen.Sync()
			}

		case now := <-gameTicker.C:
			dt := now.Sub(lastTick)
			lastTick = now
			if dt > parameter.MaxTickDelta {
				dt = parameter.MaxTickDelta
			}
			c, p := machine.Axes().Values(now)
			game.Update(c, p, dt)

		case now := <-frameTicker.C:
			renderer.Draw(board.Snapshot(), now.Sub(start), player.Muted())
		}
	}
}
