/*
 * LED Matrix Business Card
 * Go version
 *
 * @authors     chrismars91
 * @copyright   2024, Chris
 * @licence     MIT
 *
 */
package game

import (
	"github.com/chrismars91/kicad-led-business-card/buzzer"
	"github.com/chrismars91/kicad-led-business-card/input"
	"github.com/chrismars91/kicad-led-business-card/matrix"
)

const (
	BirdX        = 1
	Gravity      = 1
	JumpStrength = -2
	GapSize      = 3

	// Gap starts are drawn from [GapMin, GapMax]
	GapMin = 1
	GapMax = 5

	birdStartY = 3
	pipeStartX = GridSize - 1
)

// FlappyState is a snapshot of the falling-obstacle game.
type FlappyState struct {
	BirdY    int
	Velocity int
	PipeX    int
	GapY     int
	Score    int
	Over     bool
}

// Flappy is a one-lane side scroller: the bird sits in column BirdX and
// falls under gravity while a pipe with a GapSize hole moves towards it.
type Flappy struct {
	env Env

	birdY    int
	velocity int
	pipeX    int
	gapY     int
	score    int
	over     bool
}

func NewFlappy(env Env) *Flappy {
	f := &Flappy{env: env.withDefaults()}
	f.Reset()
	return f
}

func (f *Flappy) Name() string {
	return "flappy"
}

func (f *Flappy) Reset() {
	f.birdY = birdStartY
	f.velocity = 0
	f.pipeX = pipeStartX
	f.gapY = f.newGap()
	f.score = 0
	f.over = false
	f.env.Canvas.SetTextColor(matrix.Yellow)
}

// Jump restarts a finished round, otherwise it replaces the velocity with
// the jump impulse.
func (f *Flappy) Jump() {
	if f.over {
		f.env.Log.Debug("flappy: restart")
		f.Reset()
		return
	}
	f.velocity = JumpStrength
	f.env.Sound.Play(buzzer.CueJump)
}

func (f *Flappy) HandleInput(src input.Source) {
	if src.Pressed(input.Up) {
		f.Jump()
	}
}

func (f *Flappy) Run() {
	f.Update()
	f.Render()
}

func (f *Flappy) Update() {
	if f.over {
		return
	}

	// Gravity has no cap; only leaving the panel stops the fall
	f.velocity += Gravity
	f.birdY += f.velocity
	if f.birdY < 0 || f.birdY > GridSize-1 {
		f.end("left the panel")
		return
	}

	f.pipeX--
	if f.pipeX < 0 {
		f.pipeX = pipeStartX
		f.gapY = f.newGap()
		f.score++
		f.env.Sound.Play(buzzer.CueScore)
	}

	if f.pipeX == BirdX && !f.inGap(f.birdY) {
		f.end("hit the pipe")
	}
}

func (f *Flappy) Render() {
	c := f.env.Canvas
	c.Clear()

	if f.over {
		showScore(f.env, f.score)
		return
	}

	c.DrawPixel(BirdX, f.birdY, matrix.Green)
	for y := 0; y < GridSize; y++ {
		if !f.inGap(y) {
			c.DrawPixel(f.pipeX, y, matrix.Red)
		}
	}
	present(f.env)
}

func (f *Flappy) State() FlappyState {
	return FlappyState{
		BirdY:    f.birdY,
		Velocity: f.velocity,
		PipeX:    f.pipeX,
		GapY:     f.gapY,
		Score:    f.score,
		Over:     f.over,
	}
}

func (f *Flappy) inGap(y int) bool {
	return y >= f.gapY && y <= f.gapY+GapSize-1
}

func (f *Flappy) newGap() int {
	return GapMin + f.env.Rand.Intn(GapMax-GapMin+1)
}

func (f *Flappy) end(reason string) {
	f.over = true
	f.env.Sound.Play(buzzer.CueGameOver)
	f.env.Log.Debug("flappy: %s, score %d", reason, f.score)
}
