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
	"context"
	"sync"
	"time"

	"github.com/chrismars91/kicad-led-business-card/input"
	"github.com/gdamore/tcell/v2"
)

// DefaultHold is how long a key press counts as a held button. Terminals
// report presses (and auto repeat) but never releases.
const DefaultHold = 150 * time.Millisecond

// Keyboard turns tcell key events into button levels.
type Keyboard struct {
	hold time.Duration
	now  func() time.Time

	mu    sync.Mutex
	until [input.NumButtons]time.Time
	quit  func()
}

// NewKeyboard creates the source. quit is called for q, Esc and Ctrl-C.
func NewKeyboard(hold time.Duration, quit func()) *Keyboard {
	return &Keyboard{hold: hold, now: time.Now, quit: quit}
}

// Pressed implements input.Source.
func (k *Keyboard) Pressed(b input.Button) bool {
	if int(b) >= len(k.until) {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.now().Before(k.until[b])
}

// Listen feeds screen events into the keyboard until ctx is done. The
// scheduler loop stays single threaded; only the button levels are shared.
func (k *Keyboard) Listen(ctx context.Context, screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return
		}
		k.HandleEvent(ev)
	}
}

func (k *Keyboard) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit()
		return
	case tcell.KeyUp:
		k.press(input.Up)
	case tcell.KeyDown:
		k.press(input.Down)
	case tcell.KeyLeft:
		k.press(input.Left)
	case tcell.KeyRight:
		k.press(input.Right)
	case tcell.KeyTab:
		k.press(input.Mode)
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q', 'Q':
			k.quit()
		case 'w', 'W', ' ':
			k.press(input.Up)
		case 's', 'S':
			k.press(input.Down)
		case 'a', 'A':
			k.press(input.Left)
		case 'd', 'D':
			k.press(input.Right)
		case 'm', 'M':
			k.press(input.Mode)
		}
	}
}

func (k *Keyboard) press(b input.Button) {
	k.mu.Lock()
	k.until[b] = k.now().Add(k.hold)
	k.mu.Unlock()
}
