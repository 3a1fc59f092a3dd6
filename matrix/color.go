/*
 * LED Matrix Business Card
 * Go version
 *
 * @authors     chrismars91
 * @copyright   2024, Chris
 * @licence     MIT
 *
 */
package matrix

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Color is one bicolor LED cell. Yellow lights both the green and red die.
type Color uint8

const (
	Off Color = iota
	Green
	Red
	Yellow
)

func (c Color) String() string {
	switch c {
	case Off:
		return "off"
	case Green:
		return "green"
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	}
	return "unknown"
}

// RGBA returns the colour used when a font or a simulator needs true colour.
func (c Color) RGBA() color.RGBA {
	switch c {
	case Green:
		return colornames.Lime
	case Red:
		return colornames.Red
	case Yellow:
		return colornames.Yellow
	}
	return colornames.Black
}

// FromRGBA maps an arbitrary colour onto the two LED dies by thresholding
// the red and green channels.
func FromRGBA(c color.RGBA) Color {
	r := c.R >= 0x80
	g := c.G >= 0x80
	switch {
	case r && g:
		return Yellow
	case g:
		return Green
	case r:
		return Red
	}
	return Off
}

// HasGreen reports whether the green die is lit.
func (c Color) HasGreen() bool {
	return c == Green || c == Yellow
}

// HasRed reports whether the red die is lit.
func (c Color) HasRed() bool {
	return c == Red || c == Yellow
}
