// Package palette holds the labeled colors that subsets are drawn from.
package palette

import (
	"fmt"

	"github.com/nikolasavic/hexblend/internal/color"
)

// Entry is one labeled color.
type Entry struct {
	Label int
	Color color.Color
}

// Palette maps labels 1..N to colors. The zero value is empty; build one
// with New or Default. A Palette is not modified after construction.
type Palette struct {
	entries []Entry
}

// New builds a palette from colors; colors[i] gets label i+1.
func New(colors ...color.Input) (*Palette, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("palette: no colors")
	}
	p := &Palette{entries: make([]Entry, len(colors))}
	for i, in := range colors {
		c, err := color.Normalize(in)
		if err != nil {
			return nil, fmt.Errorf("palette: label %d: %w", i+1, err)
		}
		p.entries[i] = Entry{Label: i + 1, Color: c}
	}
	return p, nil
}

// Default returns the seven fixed colors, labels 1 through 7.
func Default() *Palette {
	p, err := New(
		color.MustParseHex("#FF0000"),
		color.MustParseHex("#FF9500"),
		color.MustParseHex("#FFD60A"),
		color.MustParseHex("#39E555"),
		color.MustParseHex("#00B0FF"),
		color.MustParseHex("#8000FF"),
		color.MustParseHex("#FF2EBF"),
	)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of labels.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Color returns the color for label, or false if label is not in 1..Len().
func (p *Palette) Color(label int) (color.Color, bool) {
	if label < 1 || label > len(p.entries) {
		return color.Color{}, false
	}
	return p.entries[label-1].Color, true
}

// Entries returns a copy of the entries in ascending label order.
func (p *Palette) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}
