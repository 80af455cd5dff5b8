package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Input is a color in any accepted representation: Hex, Triple or Color.
type Input interface {
	normalize() (Color, error)
}

// Hex is a "#rrggbb" color string.
type Hex string

func (h Hex) normalize() (Color, error) {
	return ParseHex(string(h))
}

// Triple is an RGB component list. Valid triples have exactly three
// components, each in [0,255].
type Triple []int

func (t Triple) normalize() (Color, error) {
	if len(t) != 3 {
		return Color{}, fmt.Errorf("%w: want 3 components, got %d", ErrInvalidColor, len(t))
	}
	for i, v := range t {
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("%w: component %d = %d out of range [0,255]", ErrInvalidColor, i, v)
		}
	}
	return Color{R: uint8(t[0]), G: uint8(t[1]), B: uint8(t[2])}, nil
}

func (c Color) normalize() (Color, error) {
	return c, nil
}

// Normalize converts any Input to a Color. A nil Input is ErrInvalidColor.
func Normalize(in Input) (Color, error) {
	if in == nil {
		return Color{}, fmt.Errorf("%w: missing color", ErrInvalidColor)
	}
	return in.normalize()
}

// ParseInput interprets command-line text as a color. Text with commas is a
// triple ("255,149,0"); anything else is a hex string.
func ParseInput(text string) (Input, error) {
	text = strings.TrimSpace(text)
	if !strings.Contains(text, ",") {
		return Hex(text), nil
	}

	fields := strings.Split(text, ",")
	t := make(Triple, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: component %q is not an integer", ErrInvalidColor, f)
		}
		t = append(t, v)
	}
	return t, nil
}
