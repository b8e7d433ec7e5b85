// Package ramp generates perceptually even lightness ramps from a seed colour.
//
// A ramp is built in OKLCH: lightness comes from a fixed stop table (or an
// eased range), chroma from a rise-and-fall curve, and hue from the seed
// plus optional drift. Every step is then clamped into sRGB with hue held
// constant. Generation is pure; identical inputs give identical hex output.
package ramp

import (
	"fmt"
	"slices"

	"github.com/jmylchreest/tonal/internal/colour"
)

// GenerateRamp builds a solid ramp from seed.
func GenerateRamp(name string, seed colour.OKLCH, opts Options) (Palette, error) {
	targets, seed, err := solidTargets(seed, opts)
	if err != nil {
		return Palette{}, err
	}

	steps := make([]Step, len(targets))
	for i, c := range targets {
		steps[i] = Step{
			Index: i + 1,
			Hex:   colour.RGBToHex(colour.OKLCHToRGB(c)),
			OKLCH: c,
			Alpha: 1,
		}
	}

	return Palette{Name: name, Seed: seed, Steps: steps}, nil
}

// GenerateRampFromHex parses seed as a hex colour or colour name and builds
// a solid ramp from it.
func GenerateRampFromHex(name, seed string, opts Options) (Palette, error) {
	c, err := SeedFromString(seed)
	if err != nil {
		return Palette{}, err
	}
	return GenerateRamp(name, c, opts)
}

// SeedFromString parses a hex colour or colour name into OKLCH.
func SeedFromString(s string) (colour.OKLCH, error) {
	rgb, err := colour.ParseColour(s)
	if err != nil {
		return colour.OKLCH{}, err
	}
	return rgb.OKLCH(), nil
}

// solidTargets computes the gamut-clamped colour of every step in emission
// order. It also returns the normalised seed.
func solidTargets(seed colour.OKLCH, opts Options) ([]colour.OKLCH, colour.OKLCH, error) {
	if err := seed.Validate(); err != nil {
		return nil, colour.OKLCH{}, fmt.Errorf("invalid seed: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, colour.OKLCH{}, fmt.Errorf("invalid ramp options: %w", err)
	}
	seed.H = colour.NormalizeHue(seed.H)

	// Built lightest first; the chroma curve and hue drift are defined on
	// that order regardless of emission direction.
	targets := make([]colour.OKLCH, opts.Steps)
	for i := range targets {
		t := position(i, opts.Steps)
		c := colour.OKLCH{
			L: opts.lightnessAt(i),
			C: opts.Chroma.At(t, seed.C),
			H: colour.NormalizeHue(seed.H + opts.HueDrift*t),
		}
		targets[i] = colour.ClampToGamut(c)
	}

	if opts.Direction == DarkToLight {
		slices.Reverse(targets)
	}
	return targets, seed, nil
}
