/*
 * LED Matrix Business Card
 * Go version
 *
 * @authors     chrismars91
 * @copyright   2024, Chris
 * @licence     MIT
 *
 */

// Package scheduler runs the card: one cooperative loop that polls the clock
// and fires input handling and game ticks on fixed intervals, with the mode
// button checked on every pass.
package scheduler

import (
	"context"
	"time"

	"github.com/chrismars91/kicad-led-business-card/buzzer"
	"github.com/chrismars91/kicad-led-business-card/config"
	"github.com/chrismars91/kicad-led-business-card/game"
	"github.com/chrismars91/kicad-led-business-card/input"
	"github.com/chrismars91/kicad-led-business-card/log"
	"github.com/chrismars91/kicad-led-business-card/matrix"
)

type Scheduler struct {
	cfg    config.Config
	canvas matrix.Canvas
	src    input.Source
	clock  Clock
	sound  buzzer.Player
	log    *log.Logger

	games  []game.Game
	active int

	lastInput  time.Time
	lastUpdate time.Time
}

// New wires the loop. games are cycled by the mode button in the given order;
// cfg.StartMode selects the first by name. New panics without any game.
func New(cfg config.Config, canvas matrix.Canvas, src input.Source, clock Clock, sound buzzer.Player, logger *log.Logger, games ...game.Game) *Scheduler {
	if len(games) == 0 {
		panic("scheduler: no games to run")
	}
	if sound == nil {
		sound = buzzer.Silent{}
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Scheduler{
		cfg:    cfg,
		canvas: canvas,
		src:    src,
		clock:  clock,
		sound:  sound,
		log:    logger,
		games:  games,
	}
	for i, g := range games {
		if g.Name() == cfg.StartMode {
			s.active = i
		}
	}

	// Both timers count from power on
	now := clock.Now()
	s.lastInput = now
	s.lastUpdate = now
	return s
}

// Active returns the game receiving input and ticks.
func (s *Scheduler) Active() game.Game {
	return s.games[s.active]
}

// Start plays the intro marquee once, as at power on.
func (s *Scheduler) Start() {
	s.log.Info("starting with %s", s.Active().Name())
	s.intro()
}

// Run starts the card and loops until ctx is cancelled. The firmware never
// cancels it.
func (s *Scheduler) Run(ctx context.Context) error {
	s.Start()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		s.Step()
		if s.cfg.LoopIdle > 0 {
			s.clock.Sleep(s.cfg.LoopIdle)
		}
	}
}

// Step is one pass of the loop: mode button, then input, then the game
// tick. The timestamp is sampled once at the top, so time spent in the
// mode switch is only noticed on the next pass.
func (s *Scheduler) Step() {
	now := s.clock.Now()

	if s.src.Pressed(input.Mode) {
		s.switchGame()
	}

	if now.Sub(s.lastInput) >= s.cfg.InputInterval {
		s.lastInput = now
		s.Active().HandleInput(s.src)
	}

	if now.Sub(s.lastUpdate) >= s.cfg.UpdateInterval {
		s.lastUpdate = now
		s.Active().Run()
	}
}

func (s *Scheduler) switchGame() {
	if len(s.games) > 1 {
		s.active = (s.active + 1) % len(s.games)
	}
	s.log.Info("switched to %s", s.Active().Name())
	s.sound.Play(buzzer.CueSwitch)
	s.intro()
	s.clock.Sleep(s.cfg.SwitchPause)
}

func (s *Scheduler) intro() {
	err := matrix.Marquee(s.canvas, s.cfg.IntroText, s.cfg.IntroFrames, s.cfg.IntroFrameDelay, s.clock.Sleep)
	if err != nil {
		s.log.Warn("intro: %v", err)
	}
}
