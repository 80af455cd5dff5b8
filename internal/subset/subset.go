// Package subset enumerates the non-empty subsets of a palette and folds
// the blend over each one.
package subset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nikolasavic/hexblend/internal/color"
	"github.com/nikolasavic/hexblend/internal/palette"
)

// Subset is a set of palette labels in ascending order.
type Subset []int

// Label renders s as "(1, 5)".
func (s Subset) Label() string {
	parts := make([]string, len(s))
	for i, l := range s {
		parts[i] = strconv.Itoa(l)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Combinations returns every k-element subset of {1..n} in lexicographic
// order. It returns nil when k is outside 1..n.
func Combinations(n, k int) []Subset {
	if k < 1 || k > n {
		return nil
	}

	var out []Subset
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i + 1
	}
	for {
		s := make(Subset, k)
		copy(s, idx)
		out = append(out, s)

		// Advance the rightmost index that still has room.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i+1 {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// All returns the 2^n - 1 non-empty subsets of {1..n}, grouped by size
// ascending, each group in lexicographic order.
func All(n int) []Subset {
	var out []Subset
	for k := 1; k <= n; k++ {
		out = append(out, Combinations(n, k)...)
	}
	return out
}

// Fold blends the colors of s in label order. The first member is taken as
// is; each following member is mixed into the running color at ratio.
// An empty subset folds to the white seed.
func Fold(p *palette.Palette, s Subset, ratio float64) (color.Color, error) {
	if err := color.ValidateRatio(ratio); err != nil {
		return color.Color{}, err
	}
	return fold(p, s, ratio)
}

func fold(p *palette.Palette, s Subset, ratio float64) (color.Color, error) {
	acc := color.White
	for i, label := range s {
		c, ok := p.Color(label)
		if !ok {
			return color.Color{}, fmt.Errorf("subset %s: label %d not in palette", s.Label(), label)
		}
		if i == 0 {
			acc = c
			continue
		}
		acc = color.Mix(acc, c, ratio)
	}
	return acc, nil
}

// Blended is a subset with its folded color.
type Blended struct {
	Subset Subset
	Color  color.Color
}

// Blends folds every non-empty subset of p, in All order.
func Blends(p *palette.Palette, ratio float64) ([]Blended, error) {
	if err := color.ValidateRatio(ratio); err != nil {
		return nil, err
	}

	subsets := All(p.Len())
	out := make([]Blended, 0, len(subsets))
	for _, s := range subsets {
		c, err := fold(p, s, ratio)
		if err != nil {
			return nil, err
		}
		out = append(out, Blended{Subset: s, Color: c})
	}
	return out, nil
}
