package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 200*time.Millisecond, cfg.UpdateInterval)
	assert.Equal(t, 50*time.Millisecond, cfg.InputInterval)
	assert.Equal(t, 59, cfg.IntroFrames)
	assert.Equal(t, 2*time.Second, cfg.GameOverPause)
	assert.Equal(t, ModeFlappy, cfg.StartMode)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "zero update interval", mutate: func(c *Config) { c.UpdateInterval = 0 }},
		{name: "negative input interval", mutate: func(c *Config) { c.InputInterval = -time.Millisecond }},
		{name: "negative intro frames", mutate: func(c *Config) { c.IntroFrames = -1 }},
		{name: "negative pause", mutate: func(c *Config) { c.GameOverPause = -time.Second }},
		{name: "brightness too high", mutate: func(c *Config) { c.Brightness = 16 }},
		{name: "unknown mode", mutate: func(c *Config) { c.StartMode = "tetris" }},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "verbose" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestRegisterFlags(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)

	err := fs.Parse([]string{"-mode", "snake", "-brightness", "12", "-update", "100ms", "-swap-colors", "-seed", "42"})
	require.NoError(t, err)

	assert.Equal(t, ModeSnake, cfg.StartMode)
	assert.Equal(t, uint8(12), cfg.Brightness)
	assert.Equal(t, 100*time.Millisecond, cfg.UpdateInterval)
	assert.True(t, cfg.SwapColors)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.NoError(t, cfg.Validate())
}

func TestRegisterFlags_RejectsBrightness(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(nopWriter{})
	cfg.RegisterFlags(fs)

	assert.Error(t, fs.Parse([]string{"-brightness", "20"}))
	assert.Equal(t, uint8(5), cfg.Brightness)
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
