//go:build linux

package rpi

import (
	"testing"

	"github.com/chrismars91/kicad-led-business-card/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tinygo.org/x/drivers"
)

var _ drivers.I2C = (*Bus)(nil)

func TestDefaultOffsets_Distinct(t *testing.T) {
	seen := map[int]input.Button{}
	for i, offset := range DefaultOffsets {
		b := input.Button(i)
		prev, dup := seen[offset]
		assert.False(t, dup, "%s and %s share line %d", prev, b, offset)
		seen[offset] = b
	}
	assert.Len(t, seen, input.NumButtons)
}

func TestOpenBus_Missing(t *testing.T) {
	_, err := OpenBus(9999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/dev/i2c-9999")
}

func TestOpenButtons_MissingChip(t *testing.T) {
	_, err := OpenButtons("gpiochip-missing", DefaultOffsets)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gpiochip-missing")
}

func TestButtons_CloseEmpty(t *testing.T) {
	b := &Buttons{}
	assert.NoError(t, b.Close())
	assert.False(t, b.Pressed(input.Up), "unwired lines read released")
}
