// Command confetti-tui shows burst effects in the terminal: every particle is
// one colored block cell, spawned at the top center of the window.
//
// Usage:
//
//	go run ./cmd/confetti-tui [flags]
//
// Flags:
//
//	--dir <path>      Spawner config directory (default assets/config/spawners)
//	--effect <name>   Start with a specific effect
//	--sound <path>    WAV played on every spawn (default assets/sounds/confetti.wav)
//	--volume <v>      Sound volume 0.0-1.0 (default 0.5)
//	--log <path>      Log file (the terminal is owned by the viewer)
//
// Controls:
//
//	Space             - Spawn the current effect
//	Left/Right Arrow  - Switch effect
//	m                 - Toggle sound
//	q/Escape          - Quit
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/confetti/internal/particle"
	"github.com/decker502/confetti/pkg/systems"
	"github.com/decker502/confetti/pkg/utils"
)

var (
	dirFlag    = flag.String("dir", "assets/config/spawners", "Spawner config directory")
	effectFlag = flag.String("effect", "basic_spawner", "Start with a specific effect name")
	soundFlag  = flag.String("sound", "assets/sounds/confetti.wav", "WAV file played on every spawn")
	volumeFlag = flag.Float64("volume", 0.5, "Sound volume (0.0-1.0)")
	logFlag    = flag.String("log", "", "Log file; logging is disabled when empty")
	seedFlag   = flag.Uint64("seed", 0, "Random seed (0 = time based)")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 终端被查看器占用，只允许写日志文件
	logConfig := utils.LogConfig{Level: "error", File: os.DevNull}
	if *logFlag != "" {
		logConfig = utils.LogConfig{Level: "debug", File: *logFlag}
	}
	logger, err := utils.NewLogger(logConfig)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	catalog, err := particle.LoadCatalog(*dirFlag)
	if err != nil {
		return err
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	ps := systems.NewParticleSystem(logger, systems.NewRand(seed))
	selector := systems.NewEffectSelector(catalog, ps, *effectFlag)

	sound, err := newConfettiSound(*soundFlag, utils.Clamp01(*volumeFlag), logger)
	if err != nil {
		return err
	}
	if err := sound.init(); err != nil {
		// 无音频设备时静音运行
		logger.Warnw("audio initialization failed", "error", err)
	}
	defer sound.close()
	ps.AddSpawnListener(sound)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))

	viewer := NewViewer(screen, ps, selector, sound, logger)
	viewer.spawn()
	viewer.run()
	return nil
}
