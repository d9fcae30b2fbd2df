package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/grid-shooter/audio"
	"github.com/lixenwraith/grid-shooter/constants"
	"github.com/lixenwraith/grid-shooter/core"
	"github.com/lixenwraith/grid-shooter/engine"
	"github.com/lixenwraith/grid-shooter/input"
	"github.com/lixenwraith/grid-shooter/status"
	"github.com/lixenwraith/grid-shooter/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	if logFile := setupLogging(cfg.Debug, cfg.LogDir); logFile != nil {
		defer logFile.Close()
	}

	term, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer term.Fini()

	// Engine goroutines and the event pump share this reset path on panic
	core.SetResetHook(func() {
		term.Fini()
		terminal.EmergencyReset(os.Stdout)
	})
	term.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term.PrintLine(0, constants.InstructionShoot)
	term.PrintLine(1, constants.InstructionStart)
	if _, err := term.WaitKey(ctx); err != nil {
		return 0
	}

	metrics := status.NewRegistry()
	gameCfg := engine.DefaultConfig()
	gameCfg.Metrics = metrics

	if !cfg.Mute {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			// Audio is optional
			log.Printf("audio disabled: %v", err)
		} else {
			defer sound.Cleanup()
			gameCfg.Sound = sound
			metrics.Bools.Get("audio.enabled").Store(true)
		}
	}

	game, err := engine.NewGame(gameCfg, term)
	if err != nil {
		term.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		return 1
	}

	err = game.Run(ctx, input.NewKeyboardSource(term, nil))
	for _, line := range metrics.Lines() {
		log.Print(line)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		term.Fini()
		fmt.Fprintf(os.Stderr, "Game stopped: %v\n", err)
		return 1
	}
	return 0
}
