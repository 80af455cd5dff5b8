// Package layout places equal-sized rectangles on a fixed-width canvas
// without overlap.
package layout

import (
	"errors"
	"fmt"
)

// Defaults for the subset chart.
const (
	DefaultRectWidth   = 100
	DefaultRectHeight  = 100
	DefaultSpacing     = 20
	DefaultCanvasWidth = 800
	DefaultPadding     = 50
)

// ErrCanvasTooNarrow is returned when not even one rectangle fits a row.
var ErrCanvasTooNarrow = errors.New("canvas narrower than one rectangle")

// Options configures a Grid.
type Options struct {
	RectWidth   int
	RectHeight  int
	Spacing     int
	CanvasWidth int
	Padding     int
}

// DefaultOptions returns the 100x100 / 20 / 800 / 50 layout.
func DefaultOptions() Options {
	return Options{
		RectWidth:   DefaultRectWidth,
		RectHeight:  DefaultRectHeight,
		Spacing:     DefaultSpacing,
		CanvasWidth: DefaultCanvasWidth,
		Padding:     DefaultPadding,
	}
}

// Point is the top-left corner of a placed rectangle.
type Point struct {
	X, Y int
}

type cell struct {
	col, row int
}

// Grid tracks occupied cells. Every rectangle sits on a cell of pitch
// RectWidth+Spacing by RectHeight+Spacing, so two footprints intersect
// exactly when they share a cell.
type Grid struct {
	opts     Options
	cols     int
	occupied map[cell]bool

	// maxBottom is the largest y+RectHeight placed so far.
	maxBottom int
}

// NewGrid validates opts and returns an empty grid.
func NewGrid(opts Options) (*Grid, error) {
	if opts.RectWidth <= 0 || opts.RectHeight <= 0 {
		return nil, fmt.Errorf("layout: rectangle size %dx%d must be positive", opts.RectWidth, opts.RectHeight)
	}
	if opts.Spacing < 0 || opts.Padding < 0 {
		return nil, fmt.Errorf("layout: spacing %d and padding %d must not be negative", opts.Spacing, opts.Padding)
	}
	if opts.RectWidth > opts.CanvasWidth {
		return nil, fmt.Errorf("%w: width %d < %d", ErrCanvasTooNarrow, opts.CanvasWidth, opts.RectWidth)
	}

	return &Grid{
		opts:     opts,
		cols:     (opts.CanvasWidth-opts.RectWidth)/(opts.RectWidth+opts.Spacing) + 1,
		occupied: make(map[cell]bool),
	}, nil
}

// Options returns the options the grid was built with.
func (g *Grid) Options() Options {
	return g.opts
}

// Columns returns how many rectangles fit on one row.
func (g *Grid) Columns() int {
	return g.cols
}

// Place finds the first free position scanning left to right, top to
// bottom from the origin, marks it occupied and returns it. A row wraps
// once the next x would push the rectangle past the canvas width.
func (g *Grid) Place() Point {
	c := cell{}
	for g.occupied[c] {
		c.col++
		if c.col >= g.cols {
			c.col = 0
			c.row++
		}
	}
	g.occupied[c] = true

	p := g.point(c)
	g.maxBottom = max(g.maxBottom, p.Y+g.opts.RectHeight)
	return p
}

// occupy marks the cell at p taken without scanning. p must be a position
// Place could return.
func (g *Grid) occupy(p Point) error {
	xs, ys := g.opts.RectWidth+g.opts.Spacing, g.opts.RectHeight+g.opts.Spacing
	if p.X < 0 || p.Y < 0 || p.X%xs != 0 || p.Y%ys != 0 || p.X/xs >= g.cols {
		return fmt.Errorf("layout: %v is not on the grid", p)
	}
	c := cell{col: p.X / xs, row: p.Y / ys}
	if g.occupied[c] {
		return fmt.Errorf("layout: %v already occupied", p)
	}
	g.occupied[c] = true
	g.maxBottom = max(g.maxBottom, p.Y+g.opts.RectHeight)
	return nil
}

// Len returns the number of placed rectangles.
func (g *Grid) Len() int {
	return len(g.occupied)
}

// Height is the canvas height: the lowest bottom edge plus one more
// rectangle height plus padding.
func (g *Grid) Height() int {
	return g.maxBottom + g.opts.RectHeight + g.opts.Padding
}

func (g *Grid) point(c cell) Point {
	return Point{
		X: c.col * (g.opts.RectWidth + g.opts.Spacing),
		Y: c.row * (g.opts.RectHeight + g.opts.Spacing),
	}
}
