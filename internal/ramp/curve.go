package ramp

import (
	"fmt"
	"math"

	"github.com/jmylchreest/tonal/internal/colour"
)

// ChromaCurve describes how chroma rises and falls across a ramp.
//
// Perceived colourfulness collapses near white and near black, so chroma
// follows a bell over the ramp position t (0 = lightest, 1 = darkest):
//
//	c(t) = Peak * (Floor + (1-Floor) * sin(pi * w(t))^Shape)
//
// w is a piecewise-linear warp with w(PeakAt) = 0.5, which moves the
// maximum to PeakAt without changing the curve's ends. The result is
// later reduced further by gamut clamping wherever sRGB cannot hold it.
type ChromaCurve struct {
	// Peak is the maximum chroma. Zero means "use the seed's chroma".
	Peak float64 `json:"peak"`
	// PeakAt is the ramp position of the maximum, in (0, 1).
	PeakAt float64 `json:"peakAt"`
	// Floor is the fraction of Peak kept at both ends, in [0, 1].
	Floor float64 `json:"floor"`
	// Shape sharpens (>1) or flattens (<1) the bell.
	Shape float64 `json:"shape"`
}

// DefaultChromaCurve peaks around the ninth of twelve steps, where solid
// brand colours conventionally sit.
func DefaultChromaCurve() ChromaCurve {
	return ChromaCurve{
		Peak:   0,
		PeakAt: 0.72,
		Floor:  0.12,
		Shape:  1.0,
	}
}

// Validate reports every out-of-range parameter.
func (c ChromaCurve) Validate() error {
	var errs colour.ValidationErrors
	if !finite(c.Peak) || c.Peak < 0 {
		errs = append(errs, &colour.RangeError{Field: "chroma.peak", Value: c.Peak, Want: ">= 0"})
	}
	if !finite(c.PeakAt) || c.PeakAt <= 0 || c.PeakAt >= 1 {
		errs = append(errs, &colour.RangeError{Field: "chroma.peakAt", Value: c.PeakAt, Want: "(0, 1)"})
	}
	if !finite(c.Floor) || c.Floor < 0 || c.Floor > 1 {
		errs = append(errs, &colour.RangeError{Field: "chroma.floor", Value: c.Floor, Want: "[0, 1]"})
	}
	if !finite(c.Shape) || c.Shape <= 0 {
		errs = append(errs, &colour.RangeError{Field: "chroma.shape", Value: c.Shape, Want: "> 0"})
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("chroma curve: %w", errs)
}

// At returns the chroma for ramp position t. seedChroma is used when Peak
// is zero.
func (c ChromaCurve) At(t, seedChroma float64) float64 {
	peak := c.Peak
	if peak == 0 {
		peak = seedChroma
	}
	bell := math.Pow(math.Sin(math.Pi*c.warp(t)), c.Shape)
	return peak * (c.Floor + (1-c.Floor)*bell)
}

func (c ChromaCurve) warp(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	if t <= c.PeakAt {
		return 0.5 * t / c.PeakAt
	}
	return 0.5 + 0.5*(t-c.PeakAt)/(1-c.PeakAt)
}
