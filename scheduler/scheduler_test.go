package scheduler

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/chrismars91/kicad-led-business-card/buzzer"
	"github.com/chrismars91/kicad-led-business-card/config"
	"github.com/chrismars91/kicad-led-business-card/game"
	"github.com/chrismars91/kicad-led-business-card/input"
	"github.com/chrismars91/kicad-led-business-card/log"
	"github.com/chrismars91/kicad-led-business-card/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPanel struct {
	frames int
}

func (p *recordingPanel) Show(*matrix.Frame) error {
	p.frames++
	return nil
}

type fakeGame struct {
	name   string
	events *[]string
}

func (g *fakeGame) Name() string { return g.name }

func (g *fakeGame) HandleInput(input.Source) {
	*g.events = append(*g.events, "input:"+g.name)
}

func (g *fakeGame) Run() {
	*g.events = append(*g.events, "run:"+g.name)
}

type cueRecorder struct {
	cues []buzzer.Cue
}

func (r *cueRecorder) Play(c buzzer.Cue) { r.cues = append(r.cues, c) }

type rig struct {
	clock  *ManualClock
	panel  *recordingPanel
	src    *input.Fixed
	sound  *cueRecorder
	events []string
	sched  *Scheduler
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newRig(t *testing.T, mutate func(c *config.Config)) *rig {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	require.NoError(t, cfg.Validate())

	r := &rig{
		clock: NewManualClock(epoch),
		panel: &recordingPanel{},
		src:   &input.Fixed{},
		sound: &cueRecorder{},
	}
	games := []game.Game{
		&fakeGame{name: config.ModeFlappy, events: &r.events},
		&fakeGame{name: config.ModeSnake, events: &r.events},
	}
	logger := log.New(io.Discard, "", 0, log.LogLevelError)
	r.sched = New(cfg, matrix.New(r.panel), r.src, r.clock, r.sound, logger, games...)
	return r
}

func countEvents(events []string, want string) int {
	n := 0
	for _, e := range events {
		if e == want {
			n++
		}
	}
	return n
}

func TestNew_StartMode(t *testing.T) {
	r := newRig(t, nil)
	assert.Equal(t, config.ModeFlappy, r.sched.Active().Name())

	r = newRig(t, func(c *config.Config) { c.StartMode = config.ModeSnake })
	assert.Equal(t, config.ModeSnake, r.sched.Active().Name())
}

func TestNew_PanicsWithoutGames(t *testing.T) {
	logger := log.New(io.Discard, "", 0, log.LogLevelError)
	assert.PanicsWithValue(t, "scheduler: no games to run", func() {
		New(config.Default(), matrix.New(matrix.Discard), &input.Fixed{}, NewManualClock(epoch), nil, logger)
	})
}

func TestStart_PlaysIntro(t *testing.T) {
	r := newRig(t, nil)
	r.sched.Start()

	assert.Equal(t, 59, r.panel.frames)
	assert.Equal(t, epoch.Add(5900*time.Millisecond), r.clock.Now())
	assert.Empty(t, r.events)
}

func TestStep_Cadence(t *testing.T) {
	r := newRig(t, nil)
	r.sched.Start()

	for k := 0; k <= 100; k++ {
		r.sched.Step()
		r.clock.Advance(10 * time.Millisecond)
	}

	// One second of loop passes every 10ms
	assert.Equal(t, 21, countEvents(r.events, "input:flappy"))
	assert.Equal(t, 6, countEvents(r.events, "run:flappy"))
	assert.Zero(t, countEvents(r.events, "run:snake"))
}

func TestStep_InputBeforeUpdate(t *testing.T) {
	r := newRig(t, nil)
	r.sched.Start()
	r.sched.Step()
	assert.Equal(t, []string{"input:flappy", "run:flappy"}, r.events)
}

func TestStep_NotRateCorrecting(t *testing.T) {
	r := newRig(t, nil)
	r.sched.Start()
	r.sched.Step()
	r.events = nil

	// A late pass resets the timer to its own time
	r.clock.Advance(70 * time.Millisecond)
	r.sched.Step()
	r.clock.Advance(30 * time.Millisecond)
	r.sched.Step()
	r.clock.Advance(20 * time.Millisecond)
	r.sched.Step()

	assert.Equal(t, []string{"input:flappy", "input:flappy"}, r.events)
}

func TestStep_ModeSwitch(t *testing.T) {
	r := newRig(t, nil)
	r.sched.Start()
	r.sched.Step()
	r.events = nil
	framesBefore := r.panel.frames

	r.clock.Advance(200 * time.Millisecond)
	before := r.clock.Now()
	r.src.Set(input.Mode, true)
	r.sched.Step()
	r.src.Set(input.Mode, false)

	assert.Equal(t, config.ModeSnake, r.sched.Active().Name())
	assert.Equal(t, before.Add(59*100*time.Millisecond+500*time.Millisecond), r.clock.Now())
	assert.Equal(t, framesBefore+59, r.panel.frames)
	assert.Equal(t, []buzzer.Cue{buzzer.CueSwitch}, r.sound.cues)

	// The switch comes first, so the new game gets this pass's ticks
	assert.Equal(t, []string{"input:snake", "run:snake"}, r.events)

	// Timers were stamped with the pre-switch time, so both fire again
	r.events = nil
	r.sched.Step()
	assert.Equal(t, []string{"input:snake", "run:snake"}, r.events)
}

func TestStep_HeldModeButtonTogglesEveryPass(t *testing.T) {
	r := newRig(t, nil)
	r.sched.Start()
	r.src.Set(input.Mode, true)

	r.sched.Step()
	assert.Equal(t, config.ModeSnake, r.sched.Active().Name())
	r.sched.Step()
	assert.Equal(t, config.ModeFlappy, r.sched.Active().Name())
}

func TestRun_StopsOnCancel(t *testing.T) {
	r := newRig(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.sched.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 59, r.panel.frames, "the intro still plays")
}
