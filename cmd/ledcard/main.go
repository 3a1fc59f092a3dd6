//go:build tinygo

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
package main

import (
	"context"
	"machine"
	"time"

	"github.com/chrismars91/kicad-led-business-card/buzzer"
	"github.com/chrismars91/kicad-led-business-card/config"
	"github.com/chrismars91/kicad-led-business-card/game"
	"github.com/chrismars91/kicad-led-business-card/ht16k33"
	"github.com/chrismars91/kicad-led-business-card/input"
	"github.com/chrismars91/kicad-led-business-card/log"
	"github.com/chrismars91/kicad-led-business-card/matrix"
	"github.com/chrismars91/kicad-led-business-card/scheduler"
)

// hardware is everything setup() brings up
type hardware struct {
	display ht16k33.HT16K33
	buttons input.Lines
	sound   buzzer.Player
}

func main() {

	cfg := config.Default()
	cfg.SwapColors = SWAP_COLORS
	cfg.Sound = SOUND
	cfg.LogLevel = LOG_LEVEL

	log.SetOutput(machine.Serial)
	if level, err := log.ParseLogLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// Set up the hardware or fail
	hw, err := setup(cfg)
	if err != nil {
		log.Error("setup: %v", err)
		failLoop()
	}

	// Seed from the hardware RNG where the chip has one
	if seed, err := machine.GetRNG(); err == nil {
		cfg.Seed = uint64(seed)<<32 | uint64(time.Now().UnixNano()&0xFFFFFFFF)
	}

	clock := scheduler.SystemClock{}
	canvas := matrix.New(&hw.display)
	env := game.Env{
		Canvas: canvas,
		Rand:   game.NewRand(cfg.Seed),
		Sleep:  clock.Sleep,
		Sound:  hw.sound,
		Log:    log.Default(),
	}

	// Play forever
	card := scheduler.New(cfg, canvas, &hw.buttons, clock, hw.sound, log.Default(), game.All(env, cfg)...)
	card.Run(context.Background())
}

/*
 *  Initialisation Functions
 */
func setup(cfg config.Config) (*hardware, error) {

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Set up the I2C bus
	i2c := machine.I2C0
	err := i2c.Configure(machine.I2CConfig{SCL: PIN_SCL, SDA: PIN_SDA, Frequency: I2C_FREQUENCY})
	if err != nil {
		// Couldn't configure I2C
		return nil, err
	}

	// Set up the LED matrix
	hw := &hardware{display: ht16k33.New(i2c)}
	hw.display.SwapColors(cfg.SwapColors)
	if err := hw.display.Init(cfg.Brightness); err != nil {
		return nil, err
	}

	// Set up the buttons: pressed pulls the pin low
	pins := input.Lines{
		input.Mode:  PIN_SWITCH,
		input.Up:    PIN_UP,
		input.Right: PIN_RIGHT,
		input.Left:  PIN_LEFT,
		input.Down:  PIN_DOWN,
	}
	for _, line := range pins {
		line.(machine.Pin).Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	hw.buttons = pins

	// Set up the speaker
	hw.sound = buzzer.Silent{}
	if cfg.Sound {
		PIN_SPEAKER.Configure(machine.PinConfig{Mode: machine.PinOutput})
		PIN_SPEAKER.Low()
		hw.sound = buzzer.NewTone(PIN_SPEAKER)
	}

	return hw, nil
}

/*
 *  Misc Functions
 */
func failLoop() {

	// Signal hardware failure on the Pico LED
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.Low()
		time.Sleep(time.Millisecond * 100)
		led.High()
		time.Sleep(time.Millisecond * 100)
	}
}
