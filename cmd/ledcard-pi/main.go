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

// Command ledcard-pi drives an HT16K33 bicolor matrix and five buttons
// from a Raspberry Pi.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chrismars91/kicad-led-business-card/buzzer"
	"github.com/chrismars91/kicad-led-business-card/config"
	"github.com/chrismars91/kicad-led-business-card/game"
	"github.com/chrismars91/kicad-led-business-card/ht16k33"
	"github.com/chrismars91/kicad-led-business-card/log"
	"github.com/chrismars91/kicad-led-business-card/matrix"
	"github.com/chrismars91/kicad-led-business-card/rpi"
	"github.com/chrismars91/kicad-led-business-card/scheduler"
)

func main() {
	cfg := config.Default()
	busNum := flag.Int("i2c", 1, "i2c bus number (/dev/i2c-N)")
	address := flag.Uint("address", uint(ht16k33.HT16K33_ADDRESS), "HT16K33 i2c address")
	chip := flag.String("gpiochip", "gpiochip0", "GPIO chip holding the button lines")
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}
	log.SetOutput(os.Stderr)
	if level, err := log.ParseLogLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	if err := run(cfg, *busNum, uint8(*address), *chip); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, busNum int, address uint8, chip string) error {
	bus, err := rpi.OpenBus(busNum)
	if err != nil {
		return err
	}
	defer bus.Close()

	display := ht16k33.New(bus)
	display.SetAddress(address)
	display.SwapColors(cfg.SwapColors)
	if err := display.Init(cfg.Brightness); err != nil {
		return err
	}
	defer func() {
		display.Clear()
		if err := display.Draw(); err != nil {
			log.Warn("clear display: %v", err)
		}
		if err := display.Power(false); err != nil {
			log.Warn("power off display: %v", err)
		}
	}()

	buttons, err := rpi.OpenButtons(chip, rpi.DefaultOffsets)
	if err != nil {
		return err
	}
	defer buttons.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// No speaker on the Pi build
	var sound buzzer.Player = buzzer.Silent{}
	clock := scheduler.SystemClock{}
	canvas := matrix.New(&display)
	env := game.Env{
		Canvas: canvas,
		Rand:   game.NewRand(cfg.Seed),
		Sleep:  clock.Sleep,
		Sound:  sound,
		Log:    log.Default(),
	}

	log.Info("display on %s at 0x%02x, buttons on %s", fmt.Sprintf("/dev/i2c-%d", busNum), address, chip)
	card := scheduler.New(cfg, canvas, buttons, clock, sound, log.Default(), game.All(env, cfg)...)
	if err := card.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
