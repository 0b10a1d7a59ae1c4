package main

import "fmt"

const (
	defaultDiscreteSize = 7
	maxDiscreteSize     = 15
)

// DiscretePalette cycles through the standard terminal foreground colours,
// starting at red (ANSI 1) so black is never used on a dark background.
type DiscretePalette struct {
	table []ansiColor
}

func NewDiscretePalette(size int) (*DiscretePalette, error) {
	if size == 0 {
		size = defaultDiscreteSize
	}
	if size < 1 || size > maxDiscreteSize {
		return nil, fmt.Errorf("%w: discrete palette holds 1 to %d colours, got %d", ErrPaletteSize, maxDiscreteSize, size)
	}
	table := make([]ansiColor, size)
	for i := range table {
		table[i] = ansiColor(i + 1)
	}
	return &DiscretePalette{table: table}, nil
}

func (p *DiscretePalette) Name() string { return "discrete" }

func (p *DiscretePalette) Size() int { return len(p.table) }

func (p *DiscretePalette) Color(key ColorKey) Color {
	return p.table[key.Reify(len(p.table))]
}
