/*
 * LED Matrix Business Card
 * Go version
 *
 * @authors     chrismars91
 * @copyright   2024, Chris
 * @licence     MIT
 *
 */

// Package sim runs the card in a terminal: the matrix is drawn with tcell,
// the keyboard stands in for the five buttons and beep plays the cues.
package sim

import (
	"github.com/chrismars91/kicad-led-business-card/matrix"
	"github.com/gdamore/tcell/v2"
)

const (
	ledRune  = '●'
	darkRune = '·'

	// Top-left corner of the panel on screen
	originX = 2
	originY = 1
)

const helpText = "arrows/wasd move  space jump  tab switch  q quit"

// Panel draws frames on a tcell screen, two columns per LED so the panel
// looks square.
type Panel struct {
	screen tcell.Screen
	dark   tcell.Style
	lit    [4]tcell.Style
}

func NewPanel(screen tcell.Screen) *Panel {
	p := &Panel{
		screen: screen,
		dark:   tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
	}
	for _, c := range []matrix.Color{matrix.Green, matrix.Red, matrix.Yellow} {
		rgba := c.RGBA()
		p.lit[c] = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B)))
	}
	return p
}

// Cell returns the screen position of LED (x, y).
func Cell(x, y int) (col, row int) {
	return originX + 2*x, originY + y
}

// Show implements matrix.Panel.
func (p *Panel) Show(f *matrix.Frame) error {
	for y := 0; y < matrix.Size; y++ {
		for x := 0; x < matrix.Size; x++ {
			col, row := Cell(x, y)
			c := f[y][x]
			if c == matrix.Off {
				p.screen.SetContent(col, row, darkRune, nil, p.dark)
			} else {
				p.screen.SetContent(col, row, ledRune, nil, p.lit[c])
			}
			p.screen.SetContent(col+1, row, ' ', nil, tcell.StyleDefault)
		}
	}

	_, row := Cell(0, matrix.Size+1)
	for i, r := range helpText {
		p.screen.SetContent(originX+i, row, r, nil, p.dark)
	}

	p.screen.Show()
	return nil
}
