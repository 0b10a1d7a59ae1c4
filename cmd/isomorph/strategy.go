package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Reset is written after every coloured word
var Reset = termenv.CSI + termenv.ResetSeq + "m"

// Color is a renderable palette entry
type Color interface {
	// Prefix is the escape sequence written before a coloured word
	Prefix() string
}

// Palette maps colour keys onto concrete colours
type Palette interface {
	Name() string
	Color(key ColorKey) Color
}

var (
	ErrUnknownPalette = errors.New("unknown palette")
	ErrPaletteSize    = errors.New("invalid palette size")
)

// palettes maps palette names to their constructors. size 0 selects the palette default.
var palettes = map[string]func(size int, seed uint64) (Palette, error){
	"discrete": func(size int, _ uint64) (Palette, error) { return NewDiscretePalette(size) },
	"spread":   func(size int, _ uint64) (Palette, error) { return NewSpreadPalette(size) },
	"random":   func(size int, seed uint64) (Palette, error) { return NewRandomPalette(size, seed) },
}

// PaletteNames lists the registered palettes, sorted
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewPalette builds the named palette
func NewPalette(name string, size int, seed uint64) (Palette, error) {
	ctor, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownPalette, name, strings.Join(PaletteNames(), ", "))
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: %d is negative", ErrPaletteSize, size)
	}
	return ctor(size, seed)
}

// ansiColor is one of the 16 standard terminal foreground colours
type ansiColor termenv.ANSIColor

func (c ansiColor) Prefix() string { return sequence(termenv.ANSIColor(c)) }

// rgbColor is a 24-bit colour
type rgbColor struct {
	colorful.Color
}

func (c rgbColor) Prefix() string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("%s%s;2;%d;%d;%dm", termenv.CSI, termenv.Foreground, r, g, b)
}

// profileColor is a colour converted down to what a terminal profile supports
type profileColor struct {
	termenv.Color
}

func (c profileColor) Prefix() string { return sequence(c.Color) }

func sequence(c termenv.Color) string {
	return termenv.CSI + c.Sequence(false) + "m"
}

// degrade converts c to the closest colour the profile can show. Profiles
// without colour support are handled by the renderer, not here.
func degrade(c Color, p termenv.Profile) Color {
	if p == termenv.TrueColor {
		return c
	}
	if rgb, ok := c.(rgbColor); ok {
		return profileColor{p.Convert(termenv.RGBColor(rgb.Clamped().Hex()))}
	}
	return c
}
