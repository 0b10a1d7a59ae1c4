package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := DefaultConfig

	fs := flag.NewFlagSet("isomorph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Palette, "palette", cfg.Palette, "Color palette: "+strings.Join(PaletteNames(), ", "))
	fs.IntVar(&cfg.PaletteSize, "palette-size", cfg.PaletteSize, "Number of colors to cycle through (0 = palette default: 7 for discrete, unbounded otherwise)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the random palette (0 = new seed every run)")
	fs.StringVar(&cfg.ColorMode, "color", cfg.ColorMode, "When to emit colors: always, auto, never")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format: line, json, report")
	fs.BoolVar(&cfg.KeepNewlines, "keep-newlines", cfg.KeepNewlines, "Keep newlines inside words instead of stripping them")
	fs.BoolVar(&cfg.Stats, "stats", cfg.Stats, "Print a classification summary to stderr")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	palette, err := cfg.NewPalette()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	logger := newLogger(stderr, cfg.Verbose)
	defer logger.Sync()

	profile := cfg.Profile(stdout)
	logger.Debug("configured",
		zap.String("palette", palette.Name()),
		zap.Int("palette_size", cfg.PaletteSize),
		zap.String("color", cfg.ColorMode),
		zap.String("profile", profileName(profile)),
		zap.String("format", cfg.Format))
	if rp, ok := palette.(*RandomPalette); ok {
		logger.Debug("random palette", zap.Uint64("seed", rp.Seed()))
	}

	content, err := readInput(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	words := splitWords(preparse(content, cfg.KeepNewlines))
	logger.Debug("read input", zap.Int("bytes", len(content)), zap.Int("words", len(words)))

	start := time.Now()
	result := ClassifyWords(words)
	elapsed := time.Since(start)
	logger.Debug("classified",
		zap.Int("classes", result.Stats.Classes),
		zap.Int("colored_classes", result.Stats.ColoredClasses),
		zap.Int("colored_words", result.Stats.ColoredWords),
		zap.Duration("elapsed", elapsed))

	renderer := Renderer{Palette: palette, Profile: profile}
	if err := writeResult(stdout, cfg.Format, renderer, result, logger); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.Stats {
		PrintStats(stderr, result.Stats, palette.Name(), elapsed)
	}
	return 0
}

func writeResult(w io.Writer, format string, r Renderer, result Result[string], logger *zap.Logger) error {
	switch format {
	case FormatJSON:
		return r.WriteJSON(w, result)
	case FormatReport:
		markdown := BuildReport(result, r.Palette.Name())
		out, err := renderMarkdown(markdown, r.Profile == termenv.Ascii)
		if err != nil {
			// Fall back to the raw markdown
			logger.Warn("markdown rendering failed", zap.Error(err))
			out = markdown
		}
		if _, err := io.WriteString(w, out); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		return nil
	default:
		if _, err := fmt.Fprintln(w, r.RenderLine(result.Items)); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}
