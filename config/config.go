/*
 * LED Matrix Business Card
 * Go version
 *
 * @authors     chrismars91
 * @copyright   2024, Chris
 * @licence     MIT
 *
 */

// Package config holds the runtime settings shared by every target. The
// firmware uses Default() as is; the host binaries bind the fields to flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/chrismars91/kicad-led-business-card/log"
)

const (
	ModeFlappy = "flappy"
	ModeSnake  = "snake"
)

type Config struct {
	// Scheduler periods
	UpdateInterval time.Duration
	InputInterval  time.Duration

	// LoopIdle is slept after every loop pass so hosts do not spin a core
	LoopIdle time.Duration

	// Intro marquee, replayed on every mode switch
	IntroText       string
	IntroFrames     int
	IntroFrameDelay time.Duration
	SwitchPause     time.Duration

	// Snake game over screen
	GameOverPause time.Duration

	// Display
	Brightness uint8
	SwapColors bool

	StartMode string
	Seed      uint64
	LogLevel  string
	Sound     bool
}

// Default returns the settings of the business card build.
func Default() Config {
	return Config{
		UpdateInterval:  200 * time.Millisecond,
		InputInterval:   50 * time.Millisecond,
		LoopIdle:        time.Millisecond,
		IntroText:       "Games by Chris",
		IntroFrames:     59,
		IntroFrameDelay: 100 * time.Millisecond,
		SwitchPause:     500 * time.Millisecond,
		GameOverPause:   2 * time.Second,
		Brightness:      5,
		SwapColors:      false,
		StartMode:       ModeFlappy,
		Seed:            0, // 0 means seed from the clock
		LogLevel:        "info",
		Sound:           false,
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.UpdateInterval <= 0 {
		errs = append(errs, fmt.Errorf("update interval must be positive, got %s", c.UpdateInterval))
	}
	if c.InputInterval <= 0 {
		errs = append(errs, fmt.Errorf("input interval must be positive, got %s", c.InputInterval))
	}
	if c.IntroFrames < 0 {
		errs = append(errs, fmt.Errorf("intro frames must not be negative, got %d", c.IntroFrames))
	}
	if c.LoopIdle < 0 || c.IntroFrameDelay < 0 || c.SwitchPause < 0 || c.GameOverPause < 0 {
		errs = append(errs, errors.New("pauses must not be negative"))
	}
	if c.Brightness > 15 {
		errs = append(errs, fmt.Errorf("brightness must be 0-15, got %d", c.Brightness))
	}
	if c.StartMode != ModeFlappy && c.StartMode != ModeSnake {
		errs = append(errs, fmt.Errorf("unknown start mode %q", c.StartMode))
	}
	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// RegisterFlags binds the fields to fs, using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.DurationVar(&c.UpdateInterval, "update", c.UpdateInterval, "game update and render period")
	fs.DurationVar(&c.InputInterval, "input", c.InputInterval, "button polling period")
	fs.DurationVar(&c.LoopIdle, "idle", c.LoopIdle, "sleep after every loop pass")
	fs.StringVar(&c.IntroText, "intro", c.IntroText, "text scrolled by the intro marquee")
	fs.IntVar(&c.IntroFrames, "intro-frames", c.IntroFrames, "number of intro marquee frames")
	fs.DurationVar(&c.IntroFrameDelay, "intro-delay", c.IntroFrameDelay, "delay between intro frames")
	fs.DurationVar(&c.SwitchPause, "switch-pause", c.SwitchPause, "pause after a mode switch")
	fs.DurationVar(&c.GameOverPause, "game-over-pause", c.GameOverPause, "how long the snake score is shown")
	fs.Func("brightness", fmt.Sprintf("display brightness 0-15 (default %d)", c.Brightness), func(s string) error {
		var v uint
		if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
			return err
		}
		if v > 15 {
			return fmt.Errorf("brightness %d out of range", v)
		}
		c.Brightness = uint8(v)
		return nil
	})
	fs.BoolVar(&c.SwapColors, "swap-colors", c.SwapColors, "exchange red and green for reversed matrix wiring")
	fs.StringVar(&c.StartMode, "mode", c.StartMode, "game shown at power on: flappy or snake")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 seeds from the clock")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "error, warn, info, debug or trace")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play sound cues")
}
