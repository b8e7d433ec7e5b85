package ramp

import (
	"fmt"
	"math"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
)

// DefaultSteps is the conventional ramp length.
const DefaultSteps = 12

// Direction is the lightness order of emitted steps.
type Direction int

const (
	// LightToDark puts the near-white step first.
	LightToDark Direction = iota
	// DarkToLight puts the near-black step first.
	DarkToLight
)

// String returns the kebab-case direction name.
func (d Direction) String() string {
	switch d {
	case LightToDark:
		return "light-to-dark"
	case DarkToLight:
		return "dark-to-light"
	default:
		return "unknown"
	}
}

// ParseDirection accepts "light-to-dark" or "dark-to-light", or the short
// forms "light" and "dark". Empty means light-to-dark.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "light-to-dark", "lighttodark", "light":
		return LightToDark, nil
	case "dark-to-light", "darktolight", "dark":
		return DarkToLight, nil
	}
	return 0, fmt.Errorf("unknown ramp direction %q (want light-to-dark or dark-to-light)", s)
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name.
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Range is an inclusive OKLCH lightness interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Options control ramp generation.
type Options struct {
	// Steps is the number of colours in the ramp.
	Steps int `json:"steps"`

	// Lightness is the span covered when Stops is empty.
	Lightness Range `json:"lightness"`

	// Easing is the exponent applied to the step position when spreading
	// lightness over the range. Values above 1 spend more steps near white.
	Easing float64 `json:"easing"`

	// Stops optionally fixes the lightness of every step, lightest first.
	// When set it must have exactly Steps entries.
	Stops []float64 `json:"stops,omitempty"`

	// Chroma shapes colourfulness across the ramp.
	Chroma ChromaCurve `json:"chroma"`

	// HueDrift rotates hue linearly from the lightest to the darkest step,
	// in degrees.
	HueDrift float64 `json:"hueDrift"`

	Direction Direction `json:"direction"`
}

// DefaultOptions returns the 12-step ramp configuration.
func DefaultOptions() Options {
	return Options{
		Steps:     DefaultSteps,
		Lightness: Range{Min: 0.22, Max: 0.985},
		Easing:    1.35,
		Chroma:    DefaultChromaCurve(),
		Direction: LightToDark,
	}
}

// Validate reports every invalid option.
func (o Options) Validate() error {
	var errs colour.ValidationErrors
	add := func(field string, value float64, want string) {
		errs = append(errs, &colour.RangeError{Field: field, Value: value, Want: want})
	}

	if o.Steps < 2 {
		add("steps", float64(o.Steps), ">= 2")
	}

	if len(o.Stops) > 0 {
		if len(o.Stops) != o.Steps {
			errs = append(errs, fmt.Errorf("stops: got %d entries for %d steps", len(o.Stops), o.Steps))
		}
		for i, l := range o.Stops {
			if !finite(l) || l < 0 || l > 1 {
				add(fmt.Sprintf("stops[%d]", i), l, "[0, 1]")
				continue
			}
			if i > 0 && l >= o.Stops[i-1] {
				errs = append(errs, fmt.Errorf("stops: must be strictly decreasing, stops[%d]=%v follows %v", i, l, o.Stops[i-1]))
			}
		}
	} else {
		if !finite(o.Lightness.Min) || o.Lightness.Min < 0 || o.Lightness.Min > 1 {
			add("lightness.min", o.Lightness.Min, "[0, 1]")
		}
		if !finite(o.Lightness.Max) || o.Lightness.Max < 0 || o.Lightness.Max > 1 {
			add("lightness.max", o.Lightness.Max, "[0, 1]")
		}
		if o.Lightness.Min >= o.Lightness.Max {
			errs = append(errs, fmt.Errorf("lightness: min %v must be below max %v", o.Lightness.Min, o.Lightness.Max))
		}
		if !finite(o.Easing) || o.Easing <= 0 {
			add("easing", o.Easing, "> 0")
		}
		if len(errs) == 0 {
			for i := 1; i < o.Steps; i++ {
				if l, prev := o.lightnessAt(i), o.lightnessAt(i-1); l >= prev {
					add(fmt.Sprintf("lightness[%d]", i), l, fmt.Sprintf("< %v (range too narrow for %d steps)", prev, o.Steps))
					break
				}
			}
		}
	}

	if err := o.Chroma.Validate(); err != nil {
		errs = append(errs, err)
	}
	if !finite(o.HueDrift) {
		add("hueDrift", o.HueDrift, "a finite angle")
	}
	if o.Direction != LightToDark && o.Direction != DarkToLight {
		errs = append(errs, fmt.Errorf("direction: unknown value %d", o.Direction))
	}

	return errs.Err()
}

// lightnessAt returns the target lightness for position i of n in
// light-to-dark order.
func (o Options) lightnessAt(i int) float64 {
	if len(o.Stops) > 0 {
		return o.Stops[i]
	}
	t := position(i, o.Steps)
	return o.Lightness.Max - (o.Lightness.Max-o.Lightness.Min)*math.Pow(t, o.Easing)
}

// position maps a step to [0, 1].
func position(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
