/*
 * LED Matrix Business Card
 * Go version
 *
 * @authors     chrismars91
 * @copyright   2024, Chris
 * @licence     MIT
 *
 */
package sim

import (
	"fmt"
	"time"

	"github.com/chrismars91/kicad-led-business-card/buzzer"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Speaker plays cues on the host sound card. Play queues the cue and
// returns at once, unlike the pin driven buzzer.
type Speaker struct {
	cues map[buzzer.Cue]*beep.Buffer
}

func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	s := &Speaker{cues: make(map[buzzer.Cue]*beep.Buffer)}
	for _, c := range []buzzer.Cue{buzzer.CueJump, buzzer.CueScore, buzzer.CueEat, buzzer.CueGameOver, buzzer.CueSwitch} {
		buf, err := render(buzzer.Notes(c))
		if err != nil {
			speaker.Close()
			return nil, err
		}
		s.cues[c] = buf
	}
	return s, nil
}

// render pre-mixes a cue so Play does no synthesis.
func render(notes []buzzer.Note) (*beep.Buffer, error) {
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	for _, n := range notes {
		samples := sampleRate.N(n.Duration)
		if n.Frequency == 0 {
			buf.Append(generators.Silence(samples))
			continue
		}
		sine, err := generators.SineTone(sampleRate, float64(n.Frequency))
		if err != nil {
			return nil, fmt.Errorf("tone %dHz: %w", n.Frequency, err)
		}
		buf.Append(beep.Take(samples, sine))
	}
	return buf, nil
}

func (s *Speaker) Play(c buzzer.Cue) {
	buf, ok := s.cues[c]
	if !ok {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

func (s *Speaker) Close() {
	speaker.Close()
}
