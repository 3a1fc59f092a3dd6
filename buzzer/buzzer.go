/*
 * LED Matrix Business Card
 * Go version
 *
 * @authors     chrismars91
 * @copyright   2024, Chris
 * @licence     MIT
 *
 */

// Package buzzer plays short sound cues for game events on a piezo speaker,
// or on whatever audio device a host target wires in.
package buzzer

import "time"

type Cue uint8

const (
	CueJump Cue = iota
	CueScore
	CueEat
	CueGameOver
	CueSwitch
)

// Note is one tone of a cue. A zero frequency is a rest.
type Note struct {
	Frequency uint
	Duration  time.Duration
}

var cues = map[Cue][]Note{
	CueJump:     {{Frequency: 880, Duration: 15 * time.Millisecond}},
	CueScore:    {{Frequency: 1320, Duration: 20 * time.Millisecond}},
	CueEat:      {{Frequency: 660, Duration: 15 * time.Millisecond}, {Frequency: 990, Duration: 15 * time.Millisecond}},
	CueGameOver: {{Frequency: 400, Duration: 80 * time.Millisecond}, {Frequency: 300, Duration: 80 * time.Millisecond}, {Frequency: 200, Duration: 120 * time.Millisecond}},
	CueSwitch:   {{Frequency: 523, Duration: 30 * time.Millisecond}, {Frequency: 784, Duration: 30 * time.Millisecond}},
}

// Notes returns the melody of a cue.
func Notes(c Cue) []Note {
	return cues[c]
}

type Player interface {
	Play(c Cue)
}

// Silent discards every cue.
type Silent struct{}

func (Silent) Play(Cue) {}

// Pin is a digital output, such as machine.Pin.
type Pin interface {
	High()
	Low()
}

// Tone bit-bangs a square wave on a pin. It blocks for the length of the cue.
type Tone struct {
	pin   Pin
	now   func() time.Time
	sleep func(time.Duration)
}

func NewTone(pin Pin) *Tone {
	return &Tone{pin: pin, now: time.Now, sleep: time.Sleep}
}

func (t *Tone) Play(c Cue) {
	for _, n := range Notes(c) {
		t.tone(n.Frequency, n.Duration)
	}
}

func (t *Tone) tone(frequency uint, duration time.Duration) {

	if frequency == 0 {
		t.sleep(duration)
		return
	}

	// Half the cycle period
	// NOTE Input is in Hz
	half := time.Second / time.Duration(frequency) / 2

	// Loop until the duration has elapsed
	start := t.now()
	for t.now().Sub(start) < duration {
		t.pin.High()
		t.sleep(half)
		t.pin.Low()
		t.sleep(half)
	}
}
