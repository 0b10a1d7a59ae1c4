package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the color scheme for console diagnostics
type Theme struct {
	Key     lipgloss.Style
	Hash    lipgloss.Style
	Summary lipgloss.Style
	Dim     lipgloss.Style
}

// DefaultTheme is the default color scheme
var DefaultTheme = Theme{
	Key:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	Hash:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Summary: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
	Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var theme = DefaultTheme

// Renderer turns classified words into terminal text
type Renderer struct {
	Palette Palette
	Profile termenv.Profile // termenv.Ascii disables colour entirely
}

// prefix returns the escape for key, or false when colour is disabled
func (r Renderer) prefix(key ColorKey) (string, bool) {
	if r.Profile == termenv.Ascii {
		return "", false
	}
	return degrade(r.Palette.Color(key), r.Profile).Prefix(), true
}

// Paint wraps one word in its colour and a reset, or returns it unchanged
func (r Renderer) Paint(item Colored[string]) string {
	key, ok := item.Color()
	if !ok {
		return item.Value
	}
	prefix, ok := r.prefix(key)
	if !ok {
		return item.Value
	}
	return prefix + item.Value + Reset
}

// RenderLine joins the painted words, each followed by one separator
func (r Renderer) RenderLine(items []Colored[string]) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(r.Paint(item))
		sb.WriteString(separator)
	}
	return sb.String()
}

// BuildJSON converts a run into its JSON shape
func (r Renderer) BuildJSON(result Result[string]) JSONOutput {
	out := JSONOutput{
		Palette:        r.Palette.Name(),
		TotalWords:     result.Stats.Words,
		TotalClasses:   result.Stats.Classes,
		ColoredClasses: result.Stats.ColoredClasses,
		Words:          make([]JSONWord, len(result.Items)),
		Classes:        make([]JSONClass, len(result.Classes)),
	}

	for i, item := range result.Items {
		out.Words[i] = JSONWord{Word: item.Value}
		if key, ok := item.Color(); ok {
			out.Words[i].Key = &key
		}
	}

	for i, c := range result.Classes {
		members := make([]string, len(c.Members))
		for j, idx := range c.Members {
			members[j] = result.Items[idx].Value
		}
		jc := JSONClass{
			Hash:      fmt.Sprintf("%016x", c.Hash),
			Signature: []int(c.Signature),
			Good:      c.Good,
			Members:   members,
		}
		if c.Colored {
			key := c.Key
			jc.Key = &key
			jc.Color, _ = r.prefix(key)
		}
		out.Classes[i] = jc
	}
	return out
}

// WriteJSON writes the run as indented JSON
func (r Renderer) WriteJSON(w io.Writer, result Result[string]) error {
	data, err := json.MarshalIndent(r.BuildJSON(result), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}

// BuildReport describes every class as markdown, in first-seen order
func BuildReport(result Result[string], palette string) string {
	var sb strings.Builder
	s := result.Stats

	sb.WriteString("# Isomorph classes\n\n")
	sb.WriteString(fmt.Sprintf("**Words:** %d  **Classes:** %d  **Colored:** %d  **Palette:** %s\n\n",
		s.Words, s.Classes, s.ColoredClasses, palette))

	for i, c := range result.Classes {
		status := "unique"
		switch {
		case c.Colored:
			status = fmt.Sprintf("color key %d", c.Key)
		case len(c.Members) >= minMembers:
			status = "shared, no repetition"
		}

		sb.WriteString(fmt.Sprintf("## Class %d `%s`\n\n", i+1, c.Signature))
		sb.WriteString(fmt.Sprintf("**Hash:** `%016x`  **Members:** %d  **Status:** %s\n\n",
			c.Hash, len(c.Members), status))
		for _, idx := range c.Members {
			word := result.Items[idx].Value
			if word == "" {
				word = "(empty)"
			}
			sb.WriteString(fmt.Sprintf("- `%s`\n", word))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderMarkdown renders markdown for the terminal. plain selects the
// style without colours.
func renderMarkdown(markdown string, plain bool) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(0)}
	if plain {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := tr.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

// PrintStats prints the one-line run summary
func PrintStats(w io.Writer, s Stats, palette string, elapsed time.Duration) {
	fmt.Fprintf(w, "Classified %s words into %s classes: %s colored (%s words), %s unique, %s without repetition %s in %s\n",
		theme.Summary.Render(fmt.Sprintf("%d", s.Words)),
		theme.Summary.Render(fmt.Sprintf("%d", s.Classes)),
		theme.Key.Render(fmt.Sprintf("%d", s.ColoredClasses)),
		theme.Key.Render(fmt.Sprintf("%d", s.ColoredWords)),
		theme.Dim.Render(fmt.Sprintf("%d", s.SkippedUnique)),
		theme.Dim.Render(fmt.Sprintf("%d", s.SkippedNotGood)),
		theme.Hash.Render("["+palette+"]"),
		theme.Summary.Render(elapsed.Round(time.Microsecond).String()))
}
