package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/muesli/termenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output formats
const (
	FormatLine   = "line"
	FormatJSON   = "json"
	FormatReport = "report"
)

// Color modes
const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

var (
	ErrUnknownFormat    = errors.New("unknown output format")
	ErrUnknownColorMode = errors.New("unknown color mode")
)

// Config holds everything the command line can set
type Config struct {
	Palette      string `validate:"oneof=discrete spread random"`
	PaletteSize  int    `validate:"gte=0"`
	Seed         uint64 // random palette only; 0 picks one per run
	ColorMode    string `validate:"oneof=always auto never"`
	Format       string `validate:"oneof=line json report"`
	KeepNewlines bool
	Stats        bool
	Verbose      bool
}

// DefaultConfig is what the command runs with when no flags are given
var DefaultConfig = Config{
	Palette:   "discrete",
	ColorMode: ColorAlways,
	Format:    FormatLine,
}

var validate = validator.New()

// Validate checks the flag values. Palette-specific size limits are left
// to the palette constructors.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fe := fieldErrs[0]
	switch fe.Field() {
	case "Palette":
		return fmt.Errorf("%w %q (want one of: %s)", ErrUnknownPalette, c.Palette, fe.Param())
	case "PaletteSize":
		return fmt.Errorf("%w: %d is negative", ErrPaletteSize, c.PaletteSize)
	case "ColorMode":
		return fmt.Errorf("%w %q (want one of: %s)", ErrUnknownColorMode, c.ColorMode, fe.Param())
	case "Format":
		return fmt.Errorf("%w %q (want one of: %s)", ErrUnknownFormat, c.Format, fe.Param())
	}
	return fmt.Errorf("invalid %s: %s", fe.Field(), fe.Tag())
}

// NewPalette builds the configured palette
func (c Config) NewPalette() (Palette, error) {
	return NewPalette(c.Palette, c.PaletteSize, c.Seed)
}

// Profile resolves the colour mode to a terminal profile for w
func (c Config) Profile(w io.Writer) termenv.Profile {
	switch c.ColorMode {
	case ColorNever:
		return termenv.Ascii
	case ColorAuto:
		return termenv.NewOutput(w).EnvColorProfile()
	default:
		return termenv.TrueColor
	}
}

// newLogger returns a development logger on w when verbose, a no-op logger otherwise
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	return zap.New(core, zap.Development())
}
