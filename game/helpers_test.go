package game

import (
	"io"
	"time"

	"github.com/chrismars91/kicad-led-business-card/buzzer"
	"github.com/chrismars91/kicad-led-business-card/log"
	"github.com/chrismars91/kicad-led-business-card/matrix"
	"golang.org/x/exp/rand"
)

type recordingPanel struct {
	frames []matrix.Frame
}

func (p *recordingPanel) Show(f *matrix.Frame) error {
	p.frames = append(p.frames, *f)
	return nil
}

func (p *recordingPanel) last() matrix.Frame {
	return p.frames[len(p.frames)-1]
}

type cueRecorder struct {
	cues []buzzer.Cue
}

func (r *cueRecorder) Play(c buzzer.Cue) {
	r.cues = append(r.cues, c)
}

type testRig struct {
	panel *recordingPanel
	sound *cueRecorder
	slept []time.Duration
	env   Env
}

func newRig(seed uint64) *testRig {
	r := &testRig{panel: &recordingPanel{}, sound: &cueRecorder{}}
	r.env = Env{
		Canvas: matrix.New(r.panel),
		Rand:   rand.New(rand.NewSource(seed)),
		Sleep:  func(d time.Duration) { r.slept = append(r.slept, d) },
		Sound:  r.sound,
		Log:    log.New(io.Discard, "", 0, log.LogLevelError),
	}
	return r
}

func count(f matrix.Frame, c matrix.Color) int {
	n := 0
	for y := 0; y < matrix.Size; y++ {
		for x := 0; x < matrix.Size; x++ {
			if f[y][x] == c {
				n++
			}
		}
	}
	return n
}
