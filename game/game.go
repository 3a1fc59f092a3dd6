/*
 * LED Matrix Business Card
 * Go version
 *
 * @authors     chrismars91
 * @copyright   2024, Chris
 * @licence     MIT
 *
 */

// Package game holds the two games shown on the card. Each game owns its
// state and draws itself on a matrix.Canvas; the scheduler decides when.
package game

import (
	"time"

	"github.com/chrismars91/kicad-led-business-card/buzzer"
	"github.com/chrismars91/kicad-led-business-card/config"
	"github.com/chrismars91/kicad-led-business-card/input"
	"github.com/chrismars91/kicad-led-business-card/log"
	"github.com/chrismars91/kicad-led-business-card/matrix"
	"golang.org/x/exp/rand"
)

// GridSize is the side of the playfield, one cell per LED.
const GridSize = matrix.Size

// Game is what the scheduler drives: input on the fast tick, Run (update
// then render) on the slow tick.
type Game interface {
	Name() string
	HandleInput(src input.Source)
	Run()
}

// Env carries the collaborators every game needs.
type Env struct {
	Canvas matrix.Canvas
	Rand   *rand.Rand
	// Sleep blocks the whole card, used for the game over screen.
	Sleep func(time.Duration)
	Sound buzzer.Player
	Log   *log.Logger
}

func (e Env) withDefaults() Env {
	if e.Canvas == nil {
		e.Canvas = matrix.New(matrix.Discard)
	}
	if e.Rand == nil {
		e.Rand = NewRand(0)
	}
	if e.Sleep == nil {
		e.Sleep = time.Sleep
	}
	if e.Sound == nil {
		e.Sound = buzzer.Silent{}
	}
	if e.Log == nil {
		e.Log = log.Default()
	}
	return e
}

// NewRand seeds the game RNG. A zero seed takes the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// All builds the card's games in mode button order.
func All(env Env, cfg config.Config) []Game {
	return []Game{
		NewFlappy(env),
		NewSnake(env, cfg.GameOverPause),
	}
}

// showScore shows n centred and logs a failed flush; play goes on either way.
func showScore(env Env, n int) {
	if err := matrix.CenterNumber(env.Canvas, n); err != nil {
		env.Log.Warn("show score: %v", err)
	}
}

func present(env Env) {
	if err := env.Canvas.WriteDisplay(); err != nil {
		env.Log.Warn("write display: %v", err)
	}
}
