//go:build tinygo

/*
 * LED Matrix Business Card
 * Go version
 *
 * @authors     chrismars91
 * @copyright   2024, Chris
 * @licence     MIT
 *
 */
package main

import (
	"machine"
)

/*
 * CONSTANTS
 */
const (
	// GPIO pins
	PIN_SDA     machine.Pin = machine.GP8
	PIN_SCL     machine.Pin = machine.GP9
	PIN_SPEAKER machine.Pin = machine.GP16

	// Buttons, all wired to ground
	PIN_SWITCH machine.Pin = machine.GP6
	PIN_UP     machine.Pin = machine.GP2
	PIN_RIGHT  machine.Pin = machine.GP3
	PIN_LEFT   machine.Pin = machine.GP4
	PIN_DOWN   machine.Pin = machine.GP5

	I2C_FREQUENCY uint32 = 400 * machine.KHz

	// My matrix came with LED_GREEN and LED_RED switched
	SWAP_COLORS bool = false

	// Enable to drive a piezo on PIN_SPEAKER
	SOUND bool = false

	LOG_LEVEL string = "info"
)
