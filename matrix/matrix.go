/*
 * LED Matrix Business Card
 * Go version
 *
 * @authors     chrismars91
 * @copyright   2024, Chris
 * @licence     MIT
 *
 */

// Package matrix is the display adapter between the games and an 8x8 bicolor
// LED panel. Drawing happens in a local frame; WriteDisplay hands the frame to
// the Panel that owns the hardware (or the terminal, in the simulator).
package matrix

import (
	"image/color"
	"math"
	"strings"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var _ drivers.Displayer = (*Matrix)(nil)

const Size = 8

// Frame holds one picture, indexed [y][x].
type Frame [Size][Size]Color

func (f *Frame) At(x, y int) Color {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return Off
	}
	return f[y][x]
}

// String renders the frame one row per line: '.' off, 'G', 'R', 'Y'.
func (f *Frame) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			switch f[y][x] {
			case Green:
				sb.WriteByte('G')
			case Red:
				sb.WriteByte('R')
			case Yellow:
				sb.WriteByte('Y')
			default:
				sb.WriteByte('.')
			}
		}
		if y < Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Panel presents a finished frame.
type Panel interface {
	Show(f *Frame) error
}

// Discard is a Panel that drops every frame.
var Discard Panel = discard{}

type discard struct{}

func (discard) Show(*Frame) error { return nil }

// Canvas is the drawing surface the games and the scheduler use.
type Canvas interface {
	Clear()
	DrawPixel(x, y int, c Color)
	SetCursor(x, y int)
	SetTextColor(c Color)
	Print(text string)
	TextBounds(text string) (w, h int)
	Width() int
	WriteDisplay() error
}

// Matrix implements Canvas on top of a Panel. It also satisfies
// drivers.Displayer so tinyfont can write glyphs straight into the frame.
type Matrix struct {
	panel     Panel
	frame     Frame
	font      tinyfont.Fonter
	cursorX   int
	cursorY   int
	textColor Color
}

func New(panel Panel) *Matrix {
	return &Matrix{
		panel:     panel,
		font:      &tinyfont.TomThumb,
		textColor: Yellow,
	}
}

func (m *Matrix) Clear() {
	m.frame = Frame{}
}

func (m *Matrix) DrawPixel(x, y int, c Color) {
	// Clip rather than fail: text and marquees run off the edges
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return
	}
	m.frame[y][x] = c
}

func (m *Matrix) SetCursor(x, y int) {
	m.cursorX = x
	m.cursorY = y
}

func (m *Matrix) Cursor() (x, y int) {
	return m.cursorX, m.cursorY
}

func (m *Matrix) SetTextColor(c Color) {
	m.textColor = c
}

func (m *Matrix) TextColor() Color {
	return m.textColor
}

// Print draws text with its baseline at the cursor and moves the cursor past
// it. There is no wrapping.
func (m *Matrix) Print(text string) {
	if text == "" {
		return
	}
	tinyfont.WriteLine(m, m.font, int16(m.cursorX), int16(m.cursorY), text, m.textColor.RGBA())
	for _, r := range text {
		m.cursorX += int(m.font.GetGlyph(r).Info().XAdvance)
	}
}

// TextBounds returns the size of the box covering the lit pixels of text,
// as Adafruit GFX measures it. TomThumb pads every glyph to an 8 bit wide
// bitmap, so the glyph Width is no use here; the text is drawn into a
// scratch display and the set pixels are measured instead.
func (m *Matrix) TextBounds(text string) (w, h int) {
	if text == "" {
		return 0, 0
	}
	var b litBounds
	tinyfont.WriteLine(&b, m.font, 0, 0, text, Yellow.RGBA())
	if !b.seen {
		return 0, 0
	}
	return b.maxX - b.minX + 1, b.maxY - b.minY + 1
}

// litBounds is a drivers.Displayer that only tracks where pixels land.
type litBounds struct {
	minX, maxX, minY, maxY int
	seen                   bool
}

func (b *litBounds) Size() (x, y int16) {
	return math.MaxInt16, math.MaxInt16
}

func (b *litBounds) SetPixel(x, y int16, _ color.RGBA) {
	px, py := int(x), int(y)
	if !b.seen {
		b.minX, b.maxX, b.minY, b.maxY = px, px, py, py
		b.seen = true
		return
	}
	b.minX = min(b.minX, px)
	b.maxX = max(b.maxX, px)
	b.minY = min(b.minY, py)
	b.maxY = max(b.maxY, py)
}

func (b *litBounds) Display() error {
	return nil
}

func (m *Matrix) Width() int {
	return Size
}

// Frame returns the picture drawn so far.
func (m *Matrix) Frame() Frame {
	return m.frame
}

func (m *Matrix) WriteDisplay() error {
	return m.panel.Show(&m.frame)
}

// Size implements drivers.Displayer.
func (m *Matrix) Size() (x, y int16) {
	return Size, Size
}

// SetPixel implements drivers.Displayer.
func (m *Matrix) SetPixel(x, y int16, c color.RGBA) {
	m.DrawPixel(int(x), int(y), FromRGBA(c))
}

// Display implements drivers.Displayer.
func (m *Matrix) Display() error {
	return m.WriteDisplay()
}
