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
	"strconv"
	"time"
)

// MaxShownNumber is the largest value two TomThumb digits can show on 8 columns.
const MaxShownNumber = 99

// MarqueeBaseline is the cursor row used for the intro text.
const MarqueeBaseline = 5

// CenterNumber clears the canvas and shows n centred, in the current text
// colour. Values outside 0..99 are clamped.
func CenterNumber(c Canvas, n int) error {

	// Two digits already fill the panel
	if n < 0 {
		n = 0
	} else if n > MaxShownNumber {
		n = MaxShownNumber
	}

	text := strconv.Itoa(n)
	w, h := c.TextBounds(text)
	x := (c.Width() - w) / 2
	y := (c.Width() + h) / 2

	c.Clear()
	c.SetCursor(x, y)
	c.Print(text)
	return c.WriteDisplay()
}

// Marquee scrolls text right to left in green, one column per frame, then
// restores the yellow text colour the games use. It blocks for
// frames*delay through sleep.
func Marquee(c Canvas, text string, frames int, delay time.Duration, sleep func(time.Duration)) error {

	x := c.Width()
	c.SetTextColor(Green)
	defer c.SetTextColor(Yellow)

	for t := 0; t < frames; t++ {
		c.Clear()
		c.SetCursor(x, MarqueeBaseline)
		c.Print(text)

		x--
		if x < -100 {
			x = c.Width()
		}

		if err := c.WriteDisplay(); err != nil {
			return err
		}
		sleep(delay)
	}
	return nil
}
