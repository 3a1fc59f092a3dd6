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
	"time"

	"github.com/chrismars91/kicad-led-business-card/buzzer"
	"github.com/chrismars91/kicad-led-business-card/input"
	"github.com/chrismars91/kicad-led-business-card/matrix"
)

type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	}
	return Left
}

type Point struct {
	X, Y int
}

// Step moves one cell in d, wrapping around the panel edges.
func (p Point) Step(d Direction) Point {
	switch d {
	case Up:
		p.Y--
	case Down:
		p.Y++
	case Left:
		p.X--
	case Right:
		p.X++
	}
	p.X = (p.X + GridSize) % GridSize
	p.Y = (p.Y + GridSize) % GridSize
	return p
}

const (
	InitialLength = 3
	// MaxLength is every cell of the panel. Reaching it ends the round.
	MaxLength = GridSize * GridSize
)

// SnakeState is a snapshot of the snake game. Body[0] is the head.
type SnakeState struct {
	Body    []Point
	Heading Direction
	Food    Point
}

func (s SnakeState) Length() int {
	return len(s.Body)
}

// Snake is the classic game on a borderless 8x8 grid. Segments live in a
// fixed arena; only the first length entries are part of the snake.
type Snake struct {
	env   Env
	pause time.Duration

	body    [MaxLength]Point
	length  int
	heading Direction
	food    Point
}

// NewSnake creates the game. pause is how long the final score stays up
// before a new round.
func NewSnake(env Env, pause time.Duration) *Snake {
	s := &Snake{env: env.withDefaults(), pause: pause}
	s.Reset()
	return s
}

func (s *Snake) Name() string {
	return "snake"
}

func (s *Snake) Reset() {
	s.length = InitialLength
	s.heading = Right
	for i := 0; i < s.length; i++ {
		s.body[i] = Point{X: GridSize/2 - i, Y: GridSize / 2}
	}
	s.spawnFood()
	s.env.Canvas.SetTextColor(matrix.Yellow)
}

// ChangeDirection turns the snake unless d would reverse it onto itself.
func (s *Snake) ChangeDirection(d Direction) {
	if d == s.heading.Opposite() {
		return
	}
	s.heading = d
}

// HandleInput applies every held direction in a fixed order; with several
// buttons down the last one that passes the reversal check wins.
func (s *Snake) HandleInput(src input.Source) {
	if src.Pressed(input.Up) {
		s.ChangeDirection(Up)
	}
	if src.Pressed(input.Down) {
		s.ChangeDirection(Down)
	}
	if src.Pressed(input.Left) {
		s.ChangeDirection(Left)
	}
	if src.Pressed(input.Right) {
		s.ChangeDirection(Right)
	}
}

func (s *Snake) Run() {
	s.Update()
	s.Render()
}

func (s *Snake) Update() {
	head := s.body[0].Step(s.heading)

	for i := 0; i < s.length; i++ {
		if s.body[i] == head {
			s.end("bit itself")
			return
		}
	}

	// length < MaxLength here, so the old tail fits one slot further on
	copy(s.body[1:s.length+1], s.body[:s.length])
	s.body[0] = head

	if head == s.food {
		s.length++
		s.env.Sound.Play(buzzer.CueEat)
		if s.length == MaxLength {
			s.end("filled the panel")
			return
		}
		s.spawnFood()
	}
}

func (s *Snake) Render() {
	c := s.env.Canvas
	c.Clear()

	for i := 0; i < s.length; i++ {
		c.DrawPixel(s.body[i].X, s.body[i].Y, matrix.Green)
	}
	c.DrawPixel(s.food.X, s.food.Y, matrix.Red)
	present(s.env)
}

func (s *Snake) Score() int {
	return s.length - InitialLength
}

func (s *Snake) State() SnakeState {
	body := make([]Point, s.length)
	copy(body, s.body[:s.length])
	return SnakeState{Body: body, Heading: s.heading, Food: s.food}
}

// end shows the score, holds it for the pause and starts a new round.
func (s *Snake) end(reason string) {
	s.env.Log.Debug("snake: %s, score %d", reason, s.Score())
	s.env.Sound.Play(buzzer.CueGameOver)
	showScore(s.env, s.Score())
	s.env.Sleep(s.pause)
	s.Reset()
}

// spawnFood picks any cell, including ones under the snake.
func (s *Snake) spawnFood() {
	s.food = Point{X: s.env.Rand.Intn(GridSize), Y: s.env.Rand.Intn(GridSize)}
}
