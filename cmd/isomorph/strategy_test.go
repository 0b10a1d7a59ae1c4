package main

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscretePalette(t *testing.T) {
	p, err := NewDiscretePalette(0)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Size())

	assert.Equal(t, "\x1b[31m", p.Color(0).Prefix())
	assert.Equal(t, "\x1b[37m", p.Color(6).Prefix())
	assert.Equal(t, "\x1b[31m", p.Color(7).Prefix(), "keys wrap around the table")

	bright, err := NewDiscretePalette(15)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[90m", bright.Color(7).Prefix())
	assert.Equal(t, "\x1b[97m", bright.Color(14).Prefix())

	_, err = NewDiscretePalette(16)
	assert.ErrorIs(t, err, ErrPaletteSize)
}

func TestSpreadPalette(t *testing.T) {
	p, err := NewSpreadPalette(0)
	require.NoError(t, err)

	// Hue 0 at saturation 0.9, lightness 0.6
	assert.Equal(t, "\x1b[38;2;245;61;61m", p.Color(0).Prefix())

	seen := make(map[string]bool)
	for k := ColorKey(0); k < 10; k++ {
		prefix := p.Color(k).Prefix()
		assert.False(t, seen[prefix], "key %d repeats an earlier colour", k)
		seen[prefix] = true
	}

	capped, err := NewSpreadPalette(3)
	require.NoError(t, err)
	assert.Equal(t, capped.Color(0).Prefix(), capped.Color(3).Prefix())
	assert.Equal(t, p.Color(1).Prefix(), capped.Color(4).Prefix())
}

func TestSpreadColorIsPure(t *testing.T) {
	assert.Equal(t, SpreadColor(42), SpreadColor(42))
	h, s, l := SpreadColor(1).Hsl()
	assert.InDelta(t, goldenAngle, h, 0.5)
	assert.InDelta(t, spreadSaturation, s, 0.01)
	assert.InDelta(t, spreadLightness, l, 0.01)
}

func TestRandomPalette(t *testing.T) {
	a, err := NewRandomPalette(0, 99)
	require.NoError(t, err)
	b, err := NewRandomPalette(0, 99)
	require.NoError(t, err)

	for k := ColorKey(0); k < 5; k++ {
		assert.Equal(t, a.Color(k).Prefix(), b.Color(k).Prefix())
		assert.Regexp(t, `^\x1b\[38;2;\d+;\d+;\d+m$`, a.Color(k).Prefix())
	}

	fresh, err := NewRandomPalette(0, 0)
	require.NoError(t, err)
	assert.NotZero(t, fresh.Seed())
}

func TestNewPalette(t *testing.T) {
	assert.Equal(t, []string{"discrete", "random", "spread"}, PaletteNames())

	for _, name := range PaletteNames() {
		p, err := NewPalette(name, 0, 1)
		require.NoError(t, err, name)
		assert.Equal(t, name, p.Name())
	}

	_, err := NewPalette("neon", 0, 0)
	assert.ErrorIs(t, err, ErrUnknownPalette)

	_, err = NewPalette("spread", -1, 0)
	assert.ErrorIs(t, err, ErrPaletteSize)
}

func TestDegrade(t *testing.T) {
	rgb := rgbColor{SpreadColor(0)}
	ansi := ansiColor(1)

	assert.Equal(t, rgb, degrade(rgb, termenv.TrueColor))
	assert.Regexp(t, `^\x1b\[38;5;\d+m$`, degrade(rgb, termenv.ANSI256).Prefix())
	assert.Regexp(t, `^\x1b\[[39][0-7]m$`, degrade(rgb, termenv.ANSI).Prefix())
	assert.Equal(t, "\x1b[31m", degrade(ansi, termenv.ANSI256).Prefix())
	assert.Equal(t, "\x1b[0m", Reset)
}
