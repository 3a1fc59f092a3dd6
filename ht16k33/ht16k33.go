/*
 * LED Matrix Business Card
 * Go version
 *
 * @version     0.1.0
 * @authors     chrismars91
 * @copyright   2024, Chris
 * @licence     MIT
 *
 */
package ht16k33

import (
	"fmt"

	"github.com/chrismars91/kicad-led-business-card/matrix"
	"tinygo.org/x/drivers"
)

// HT16K33 LED Matrix Commands
const (
	HT16K33_GENERIC_DISPLAY_ON      uint8 = 0x81
	HT16K33_GENERIC_DISPLAY_OFF     uint8 = 0x80
	HT16K33_GENERIC_SYSTEM_ON       uint8 = 0x21
	HT16K33_GENERIC_SYSTEM_OFF      uint8 = 0x20
	HT16K33_GENERIC_DISPLAY_ADDRESS uint8 = 0x00
	HT16K33_GENERIC_CMD_BRIGHTNESS  uint8 = 0xE0
	HT16K33_GENERIC_CMD_BLINK       uint8 = 0x81
	HT16K33_ADDRESS                 uint8 = 0x70
)

// Blink rates, OR-ed into the display setup command
const (
	BLINK_OFF    uint8 = 0x00
	BLINK_2HZ    uint8 = 0x02
	BLINK_1HZ    uint8 = 0x04
	BLINK_HALFHZ uint8 = 0x06
)

const MAX_BRIGHTNESS uint8 = 15

// HT16K33 drives an Adafruit style 8x8 bicolor backpack. Each matrix row
// takes two bytes of display RAM: green anodes first, then red.
type HT16K33 struct {
	// Host I2C bus
	bus drivers.I2C
	// Internal data: address, brightness level, colour wiring, buffer
	address    uint8
	brightness uint8
	swapColors bool
	buffer     [16]byte
}

func New(bus drivers.I2C) HT16K33 {

	return HT16K33{bus: bus, address: HT16K33_ADDRESS, brightness: MAX_BRIGHTNESS}
}

// SetAddress selects a backpack with its address jumpers set.
func (p *HT16K33) SetAddress(address uint8) {

	p.address = address
}

// SwapColors exchanges the green and red dies for boards wired the other
// way round.
func (p *HT16K33) SwapColors(swap bool) {

	p.swapColors = swap
}

func (p *HT16K33) Init(brightness uint8) error {

	if err := p.Power(true); err != nil {
		return fmt.Errorf("ht16k33: power on: %w", err)
	}
	if err := p.SetBrightness(brightness); err != nil {
		return fmt.Errorf("ht16k33: brightness: %w", err)
	}
	p.Clear()
	if err := p.Draw(); err != nil {
		return fmt.Errorf("ht16k33: clear: %w", err)
	}
	return nil
}

func (p *HT16K33) Power(isOn bool) error {

	if isOn {
		if err := p.i2cWriteByte(HT16K33_GENERIC_SYSTEM_ON); err != nil {
			return err
		}
		return p.i2cWriteByte(HT16K33_GENERIC_DISPLAY_ON)
	}

	if err := p.i2cWriteByte(HT16K33_GENERIC_DISPLAY_OFF); err != nil {
		return err
	}
	return p.i2cWriteByte(HT16K33_GENERIC_SYSTEM_OFF)
}

func (p *HT16K33) SetBrightness(brightness uint8) error {

	if brightness > MAX_BRIGHTNESS {
		brightness = MAX_BRIGHTNESS
	}

	p.brightness = brightness
	return p.i2cWriteByte(HT16K33_GENERIC_CMD_BRIGHTNESS | brightness)
}

func (p *HT16K33) Brightness() uint8 {

	return p.brightness
}

func (p *HT16K33) SetBlink(rate uint8) error {

	return p.i2cWriteByte(HT16K33_GENERIC_CMD_BLINK | (rate & 0x06))
}

func (p *HT16K33) Plot(x uint, y uint, colour matrix.Color) {

	// Set or unset both dies of the specified pixel
	if x > 7 || y > 7 {
		return
	}

	green, red := colour.HasGreen(), colour.HasRed()
	if p.swapColors {
		green, red = red, green
	}

	bit := byte(1 << x)
	if green {
		p.buffer[y*2] |= bit
	} else {
		p.buffer[y*2] &^= bit
	}

	if red {
		p.buffer[y*2+1] |= bit
	} else {
		p.buffer[y*2+1] &^= bit
	}
}

func (p *HT16K33) Clear() {

	// Clear the display buffer
	p.buffer = [16]byte{}
}

// Buffer returns a copy of the display RAM image.
func (p *HT16K33) Buffer() [16]byte {

	return p.buffer
}

func (p *HT16K33) Draw() error {

	// Prefix the RAM image with the start address
	output_buffer := [17]byte{HT16K33_GENERIC_DISPLAY_ADDRESS}
	copy(output_buffer[1:], p.buffer[:])

	// Write out the transmit buffer
	return p.i2cWriteBlock(output_buffer[:])
}

// Show implements matrix.Panel.
func (p *HT16K33) Show(f *matrix.Frame) error {

	for y := 0; y < matrix.Size; y++ {
		for x := 0; x < matrix.Size; x++ {
			p.Plot(uint(x), uint(y), f[y][x])
		}
	}
	return p.Draw()
}

func (p *HT16K33) i2cWriteByte(value byte) error {

	// Convenience function to write a single byte to the matrix
	data := [1]byte{value}
	return p.bus.Tx(uint16(p.address), data[:], nil)
}

func (p *HT16K33) i2cWriteBlock(data []byte) error {

	// Convenience function to write a block of bytes to the matrix
	return p.bus.Tx(uint16(p.address), data, nil)
}
