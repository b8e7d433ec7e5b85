package ramp

import (
	"fmt"
	"iter"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
)

// Step is one colour in a ramp.
type Step struct {
	// Index is 1-based and follows emission order.
	Index int `json:"step"`
	// Hex is "#rrggbb", or "#rrggbbaa" for translucent alpha-ramp steps.
	Hex string `json:"hex"`
	// OKLCH is the gamut-clamped solid colour the step represents. For
	// alpha-ramp steps it is the colour seen over the ramp's background.
	OKLCH colour.OKLCH `json:"oklch"`
	// Alpha is 1 for solid steps.
	Alpha float64 `json:"alpha"`
}

// Palette is a named, ordered ramp. Step order is lightness order and
// must not be re-sorted.
type Palette struct {
	Name  string       `json:"name"`
	Seed  colour.OKLCH `json:"seed"`
	Steps []Step       `json:"steps"`
}

// Len returns the number of steps.
func (p Palette) Len() int {
	return len(p.Steps)
}

// Step returns the step with the given 1-based index.
func (p Palette) Step(index int) (Step, error) {
	if index < 1 || index > len(p.Steps) {
		return Step{}, fmt.Errorf("step out of bounds: %d (palette %q has %d steps)", index, p.Name, len(p.Steps))
	}
	return p.Steps[index-1], nil
}

// Hexes returns every step's hex string in order.
func (p Palette) Hexes() []string {
	out := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		out[i] = s.Hex
	}
	return out
}

// Lightness returns every step's OKLCH lightness in order.
func (p Palette) Lightness() []float64 {
	out := make([]float64, len(p.Steps))
	for i, s := range p.Steps {
		out[i] = s.OKLCH.L
	}
	return out
}

// All iterates over the steps in order.
func (p Palette) All() iter.Seq2[int, Step] {
	return func(yield func(int, Step) bool) {
		for _, s := range p.Steps {
			if !yield(s.Index, s) {
				return
			}
		}
	}
}

// String returns a human-readable listing of the palette.
func (p Palette) String() string {
	if len(p.Steps) == 0 {
		return fmt.Sprintf("Palette %q: empty", p.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Palette %q with %d steps:\n", p.Name, len(p.Steps))
	for _, s := range p.Steps {
		fmt.Fprintf(&b, "  %2d: %s (%s)\n", s.Index, s.Hex, s.OKLCH)
	}
	return b.String()
}
