//go:build linux

/*
 * LED Matrix Business Card
 * Go version
 *
 * @authors     chrismars91
 * @copyright   2024, Chris
 * @licence     MIT
 *
 */

package rpi

import (
	"errors"
	"fmt"

	"github.com/chrismars91/kicad-led-business-card/input"
	"github.com/warthog618/go-gpiocdev"
)

const consumer = "ledcard"

// Offsets holds the GPIO line offset of each button, indexed by input.Button.
type Offsets [input.NumButtons]int

// DefaultOffsets is the wiring used on a Pi header (BCM numbering).
var DefaultOffsets = Offsets{
	input.Mode:  17,
	input.Up:    5,
	input.Right: 6,
	input.Left:  13,
	input.Down:  19,
}

// line adapts a requested GPIO line to input.Line. A failed read reports a
// high level, which an active-low button treats as released.
type line struct {
	l *gpiocdev.Line
}

func (l line) Get() bool {
	v, err := l.l.Value()
	if err != nil {
		return true
	}
	return v != 0
}

// Buttons requests every button line as an input with the internal pull-up
// enabled, so an open switch reads high.
type Buttons struct {
	input.Lines
	requested []*gpiocdev.Line
}

func OpenButtons(chip string, offsets Offsets) (*Buttons, error) {
	b := &Buttons{}
	for i, offset := range offsets {
		l, err := gpiocdev.RequestLine(chip, offset,
			gpiocdev.AsInput,
			gpiocdev.WithPullUp,
			gpiocdev.WithConsumer(consumer))
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("request %s line %d for %s: %w", chip, offset, input.Button(i), err)
		}
		b.requested = append(b.requested, l)
		b.Lines[i] = line{l: l}
	}
	return b, nil
}

func (b *Buttons) Close() error {
	var errs []error
	for _, l := range b.requested {
		errs = append(errs, l.Close())
	}
	b.requested = nil
	b.Lines = input.Lines{}
	return errors.Join(errs...)
}
