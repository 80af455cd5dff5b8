// Package color converts between hex and component colors and blends them
// by linear interpolation in RGB.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a hex string is not six hex digits.
var ErrInvalidFormat = errors.New("invalid hex color format")

// ErrInvalidColor is returned when a color input is not a 3-component triple
// with every component in [0,255].
var ErrInvalidColor = errors.New("invalid color")

// ErrInvalidRatio is returned when a blend ratio falls outside [0.0, 1.0].
var ErrInvalidRatio = errors.New("invalid ratio")

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// White is the identity seed of a subset fold.
var White = Color{255, 255, 255}

// ParseHex parses "#rrggbb" or "rrggbb" (either case).
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return Color{}, fmt.Errorf("%w: %q must be 6 hex digits", ErrInvalidFormat, s)
	}

	var c [3]uint8
	for i := range c {
		v, err := strconv.ParseUint(digits[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q contains non-hex characters", ErrInvalidFormat, s)
		}
		c[i] = uint8(v)
	}
	return Color{R: c[0], G: c[1], B: c[2]}, nil
}

// MustParseHex is like ParseHex but panics on error. For constants only.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as lowercase "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ValidateRatio checks 0 <= r <= 1. NaN is rejected.
func ValidateRatio(r float64) error {
	if !(r >= 0 && r <= 1) {
		return fmt.Errorf("%w: %v must be between 0.0 and 1.0", ErrInvalidRatio, r)
	}
	return nil
}

// ParseRatio parses and validates a textual ratio such as "0.5".
func ParseRatio(text string) (float64, error) {
	text = strings.TrimSpace(text)
	r, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidRatio, text)
	}
	if err := ValidateRatio(r); err != nil {
		return 0, err
	}
	return r, nil
}

// Mix interpolates from a towards b by ratio, truncating each channel.
// The ratio is not validated; use Blend for untrusted input.
func Mix(a, b Color, ratio float64) Color {
	inv := 1 - ratio
	return Color{
		R: mixChannel(a.R, b.R, ratio, inv),
		G: mixChannel(a.G, b.G, ratio, inv),
		B: mixChannel(a.B, b.B, ratio, inv),
	}
}

func mixChannel(a, b uint8, ratio, inv float64) uint8 {
	return uint8(math.Trunc(float64(a)*inv + float64(b)*ratio))
}

// Blend normalizes a and b and mixes them by ratio.
//
// Errors are checked in order: color a, color b, ratio.
func Blend(a, b Input, ratio float64) (Color, error) {
	ca, err := Normalize(a)
	if err != nil {
		return Color{}, fmt.Errorf("first color: %w", err)
	}
	cb, err := Normalize(b)
	if err != nil {
		return Color{}, fmt.Errorf("second color: %w", err)
	}
	if err := ValidateRatio(ratio); err != nil {
		return Color{}, err
	}
	return Mix(ca, cb, ratio), nil
}
