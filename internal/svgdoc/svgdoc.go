// Package svgdoc lays out blended subsets and serializes them as SVG.
package svgdoc

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/nikolasavic/hexblend/internal/color"
	"github.com/nikolasavic/hexblend/internal/layout"
	"github.com/nikolasavic/hexblend/internal/palette"
	"github.com/nikolasavic/hexblend/internal/subset"
)

const (
	header = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n"
	footer = `</svg>`
)

// Cell is one labeled rectangle.
type Cell struct {
	Pos   layout.Point
	Fill  color.Color
	Label string
}

// Document is a laid-out chart ready to serialize.
type Document struct {
	Width      int
	Height     int
	RectWidth  int
	RectHeight int
	Cells      []Cell
}

// Options configures Generate and Build.
type Options struct {
	Layout layout.Options
	// Logger receives debug output. Nil discards it.
	Logger logrus.FieldLogger
}

// DefaultOptions uses the default layout and no logging.
func DefaultOptions() Options {
	return Options{Layout: layout.DefaultOptions()}
}

// Generate folds every subset of p at ratio and lays them out.
func Generate(p *palette.Palette, ratio float64, opts Options) (*Document, error) {
	log := logger(opts)
	for _, e := range p.Entries() {
		log.WithFields(logrus.Fields{
			"label": e.Label,
			"color": e.Color.Hex(),
		}).Debug("palette entry")
	}

	blends, err := subset.Blends(p, ratio)
	if err != nil {
		return nil, err
	}
	return Build(blends, opts)
}

// Build places blends in order on a fresh grid.
func Build(blends []subset.Blended, opts Options) (*Document, error) {
	log := logger(opts)

	grid, err := layout.NewGrid(opts.Layout)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Width:      opts.Layout.CanvasWidth,
		RectWidth:  opts.Layout.RectWidth,
		RectHeight: opts.Layout.RectHeight,
		Cells:      make([]Cell, 0, len(blends)),
	}
	for _, b := range blends {
		pos := grid.Place()
		doc.Cells = append(doc.Cells, Cell{Pos: pos, Fill: b.Color, Label: b.Subset.Label()})
		log.WithFields(logrus.Fields{
			"subset": b.Subset.Label(),
			"fill":   b.Color.Hex(),
			"x":      pos.X,
			"y":      pos.Y,
		}).Debug("placed subset")
	}
	doc.Height = grid.Height()

	log.WithFields(logrus.Fields{
		"cells":   grid.Len(),
		"columns": grid.Columns(),
		"width":   doc.Width,
		"height":  doc.Height,
	}).Debug("layout complete")
	return doc, nil
}

func logger(opts Options) logrus.FieldLogger {
	if opts.Logger != nil {
		return opts.Logger
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return discard
}

// WriteTo serializes d as SVG.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d">`+"\n", d.Width, d.Height)

	for _, c := range d.Cells {
		fmt.Fprintf(&buf, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" />`+"\n",
			c.Pos.X, c.Pos.Y, d.RectWidth, d.RectHeight, c.Fill.Hex())
		fmt.Fprintf(&buf, `<text x="%d" y="%d" text-anchor="middle" dominant-baseline="middle" fill="black" font-size="12">`,
			c.Pos.X+d.RectWidth/2, c.Pos.Y+d.RectHeight/2)
		_ = xml.EscapeText(&buf, []byte(c.Label)) // bytes.Buffer writes never fail
		buf.WriteString("</text>\n")
	}
	buf.WriteString(footer)

	return buf.WriteTo(w)
}

// Bytes returns the serialized document.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = d.WriteTo(&buf)
	return buf.Bytes()
}
