package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type level bool

func (l level) Get() bool { return bool(l) }

func TestLines_ActiveLow(t *testing.T) {
	lines := Lines{
		Mode:  level(true),
		Up:    level(false),
		Right: level(true),
		Left:  nil,
		Down:  level(false),
	}

	assert.False(t, lines.Pressed(Mode))
	assert.True(t, lines.Pressed(Up))
	assert.False(t, lines.Pressed(Right))
	assert.False(t, lines.Pressed(Left), "unwired button reads released")
	assert.True(t, lines.Pressed(Down))
	assert.False(t, lines.Pressed(Button(9)))
}

func TestFixed(t *testing.T) {
	var f Fixed
	f.Set(Left, true)
	assert.True(t, f.Pressed(Left))
	assert.False(t, f.Pressed(Right))

	f.Release()
	assert.False(t, f.Pressed(Left))
}

func TestButtonString(t *testing.T) {
	assert.Equal(t, "mode", Mode.String())
	assert.Equal(t, "down", Down.String())
	assert.Equal(t, "unknown", Button(7).String())
}
