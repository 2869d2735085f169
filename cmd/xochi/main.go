// Command xochi runs the Xochi platformer in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/xochi/audio"
	"github.com/lixenwraith/xochi/config"
	"github.com/lixenwraith/xochi/game"
	"github.com/lixenwraith/xochi/input"
	"github.com/lixenwraith/xochi/level"
	"github.com/lixenwraith/xochi/progress"
	"github.com/lixenwraith/xochi/service"
	"github.com/lixenwraith/xochi/status"
	"github.com/lixenwraith/xochi/storage"
)

var (
	configPath     = flag.String("config", "xochi.toml", "Path to the TOML config file")
	keysPath       = flag.String("keys", "", "Path to a TOML key binding file")
	debugFlag      = flag.Bool("debug", false, "Write JSON logs to the log directory")
	seedFlag       = flag.Uint64("seed", 0, "Level generation seed, overrides the config")
	levelFlag      = flag.Int("level", 0, "Start directly at this level")
	difficultyFlag = flag.String("difficulty", "", "easy, medium or hard; overrides the config and the save")
	muteFlag       = flag.Bool("mute", false, "Start with sound effects muted")
	resetFlag      = flag.Bool("reset", false, "Delete the saved progress before starting")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "xochi: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	cfg, err := config.LoadFromPath(*configPath)
	if err != nil {
		return err
	}
	lvl, _ := config.ParseLevel(cfg.Log.Level)
	if *debugFlag {
		lvl = slog.LevelDebug
	}
	logFile, logger := setupLogging(*debugFlag, cfg.Log.Dir, lvl)
	if logFile != nil {
		defer logFile.Close()
	}
	for _, w := range cfg.Warnings {
		logger.Warn("config", "warning", w)
	}

	difficulty := cfg.Difficulty()
	if *difficultyFlag != "" {
		d, ok := progress.ParseDifficulty(*difficultyFlag)
		if !ok {
			return fmt.Errorf("unknown difficulty %q", *difficultyFlag)
		}
		difficulty = d
	}

	store, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	if *resetFlag {
		if err := store.Clear(); err != nil {
			return err
		}
		logger.Info("save cleared")
	}
	state := store.Load(difficulty)
	if *difficultyFlag != "" && state.Difficulty != difficulty {
		state.SetDifficulty(difficulty)
		store.SaveQuiet(state)
		logger.Info("difficulty changed", "difficulty", difficulty, "lives", state.Lives)
	}

	seed := cfg.Game.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	catalog := level.NewCatalog(seed, state.Difficulty)
	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("level catalog: %w", err)
	}

	keys := input.DefaultKeyTable()
	if *keysPath != "" {
		custom, err := input.LoadKeyTable(*keysPath)
		if err != nil {
			return err
		}
		keys.Merge(custom)
	}

	metrics := status.NewRegistry()
	player := audio.NewPlayer(audio.LoadAudioConfig(cfg.AudioSettings()), metrics, logger.With("service", "audio"))

	hub := service.NewHub(logger)
	if err := hub.Register(player, *muteFlag || !state.SfxEnabled); err != nil {
		return err
	}
	if err := hub.InitAll(); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	g, err := game.New(game.Options{
		State:      state,
		Saver:      store,
		Catalog:    catalog,
		Metrics:    metrics,
		Logger:     logger,
		Audio:      player,
		FlowPath:   cfg.Game.FlowPath,
		StartLevel: *levelFlag,
	})
	if err != nil {
		return err
	}
	g.Router().Register(player)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)

	// Crash handler for the loop goroutine: restore the terminal before printing the stack
	crash := func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mXOCHI CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting",
		"level", state.CurrentLevel,
		"difficulty", state.Difficulty,
		"seed", seed,
		"fps", cfg.Display.FPS,
		"services", hub.Order(),
	)

	host := game.NewHost(screen, g, input.NewMachine(keys), cfg.Display.Scale, logger)
	host.Run(ctx, cfg.Display.FPS, metrics, crash)

	state.SfxEnabled = !player.Muted()
	store.SaveQuiet(state)
	logger.Info("stopped", "score", state.Score, "level", state.CurrentLevel, "metrics", metrics.Snapshot())
	return nil
}

func openStore(cfg *config.Config, logger *slog.Logger) (*progress.Store, error) {
	dir, err := cfg.SaveDir()
	if err != nil {
		return nil, fmt.Errorf("save directory: %w", err)
	}
	backend, err := storage.NewFileSystemBackend(dir)
	if err != nil {
		return nil, fmt.Errorf("save directory: %w", err)
	}
	logger.Debug("save directory", "dir", backend.Dir())
	return progress.NewStore(backend, logger), nil
}
