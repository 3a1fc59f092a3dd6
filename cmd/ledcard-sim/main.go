/*
 * LED Matrix Business Card
 * Go version
 *
 * @authors     chrismars91
 * @copyright   2024, Chris
 * @licence     MIT
 *
 */

// Command ledcard-sim plays the card in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/chrismars91/kicad-led-business-card/buzzer"
	"github.com/chrismars91/kicad-led-business-card/config"
	"github.com/chrismars91/kicad-led-business-card/game"
	"github.com/chrismars91/kicad-led-business-card/log"
	"github.com/chrismars91/kicad-led-business-card/matrix"
	"github.com/chrismars91/kicad-led-business-card/scheduler"
	"github.com/chrismars91/kicad-led-business-card/sim"
	"github.com/gdamore/tcell/v2"
)

const (
	logDir      = "logs"
	logFileName = "ledcard.log"
)

func main() {
	cfg := config.Default()
	debug := flag.Bool("debug", false, "write logs to "+filepath.Join(logDir, logFileName))
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logFile := setupLogging(*debug)
	if logFile != nil {
		defer logFile.Close()
	}
	level, _ := log.ParseLogLevel(cfg.LogLevel)
	log.SetLevel(level)

	if err := run(cfg); err != nil {
		log.Error("%v", err)
		fmt.Fprintf(os.Stderr, "ledcard-sim: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends logs to a file when debug is set and discards them
// otherwise; the terminal belongs to tcell.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		stdlog.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	stdlog.SetOutput(f)
	return f
}

func run(cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	keyboard := sim.NewKeyboard(sim.DefaultHold, cancel)
	go keyboard.Listen(ctx, screen)

	var sound buzzer.Player = buzzer.Silent{}
	if cfg.Sound {
		speaker, err := sim.NewSpeaker()
		if err != nil {
			// Non-fatal, the card plays fine without sound
			log.Warn("sound disabled: %v", err)
		} else {
			defer speaker.Close()
			sound = speaker
		}
	}

	clock := scheduler.SystemClock{}
	canvas := matrix.New(sim.NewPanel(screen))
	env := game.Env{
		Canvas: canvas,
		Rand:   game.NewRand(cfg.Seed),
		Sleep:  clock.Sleep,
		Sound:  sound,
		Log:    log.Default(),
	}

	card := scheduler.New(cfg, canvas, keyboard, clock, sound, log.Default(), game.All(env, cfg)...)
	err = card.Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info("quit")
		return nil
	}
	return err
}
