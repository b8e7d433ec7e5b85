package ramp

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tonal/internal/colour"
)

func mustSeed(t *testing.T, s string) colour.OKLCH {
	t.Helper()
	c, err := SeedFromString(s)
	require.NoError(t, err)
	return c
}

func assertMonotonic(t *testing.T, p Palette, dir Direction) {
	t.Helper()
	l := p.Lightness()
	for i := 1; i < len(l); i++ {
		if dir == LightToDark {
			require.Less(t, l[i], l[i-1], "step %d of %q is not darker than step %d", i+1, p.Name, i)
		} else {
			require.Greater(t, l[i], l[i-1], "step %d of %q is not lighter than step %d", i+1, p.Name, i)
		}
	}
}

func TestGenerateRampDefault(t *testing.T) {
	seed := mustSeed(t, "#3b82f6")

	p, err := GenerateRamp("blue", seed, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "blue", p.Name)
	require.Equal(t, DefaultSteps, p.Len())
	assertMonotonic(t, p, LightToDark)

	for i, s := range p.Steps {
		assert.Equal(t, i+1, s.Index, "steps are emitted in ascending index order")
		assert.Equal(t, 1.0, s.Alpha)
		assert.True(t, colour.IsInGamut(s.OKLCH))
		assert.InDelta(t, seed.H, s.OKLCH.H, 1e-9, "hue is held without drift")

		_, err := colour.ParseHex(s.Hex)
		assert.NoError(t, err)
		assert.Len(t, s.Hex, 7)
	}

	first, last := p.Steps[0].OKLCH, p.Steps[len(p.Steps)-1].OKLCH
	assert.Greater(t, first.L, 0.95, "first step should be near white")
	assert.Less(t, last.L, 0.3, "last step should be near black")
}

func TestGenerateRampDeterministic(t *testing.T) {
	seed := mustSeed(t, "tomato")
	opts := DefaultOptions()
	opts.HueDrift = 25

	a, err := GenerateRamp("accent", seed, opts)
	require.NoError(t, err)
	b, err := GenerateRamp("accent", seed, opts)
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("identical inputs produced different palettes (-first +second):\n%s", diff)
	}
}

func TestGenerateRampMonotonicProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(12, 34))

	for i := 0; i < 300; i++ {
		seed := colour.OKLCH{L: rng.Float64(), C: rng.Float64() * 0.37, H: rng.Float64() * 360}
		lo := rng.Float64() * 0.5
		opts := Options{
			Steps:     2 + rng.IntN(40),
			Lightness: Range{Min: lo, Max: lo + 0.05 + rng.Float64()*(0.95-lo)},
			Easing:    0.5 + rng.Float64()*2,
			Chroma: ChromaCurve{
				Peak:   rng.Float64() * 0.4,
				PeakAt: 0.1 + rng.Float64()*0.8,
				Floor:  rng.Float64(),
				Shape:  0.5 + rng.Float64()*2,
			},
			HueDrift:  rng.Float64()*120 - 60,
			Direction: Direction(rng.IntN(2)),
		}

		p, err := GenerateRamp("prop", seed, opts)
		require.NoError(t, err, "options %+v", opts)
		require.Equal(t, opts.Steps, p.Len())
		assertMonotonic(t, p, opts.Direction)
	}
}

func TestGenerateRampDirection(t *testing.T) {
	seed := mustSeed(t, "#14b8a6")

	down := DefaultOptions()
	up := DefaultOptions()
	up.Direction = DarkToLight

	light, err := GenerateRamp("teal", seed, down)
	require.NoError(t, err)
	dark, err := GenerateRamp("teal", seed, up)
	require.NoError(t, err)

	reversed := light.Hexes()
	slices.Reverse(reversed)
	assert.Equal(t, reversed, dark.Hexes())
	assertMonotonic(t, dark, DarkToLight)
	assert.Equal(t, 1, dark.Steps[0].Index)
}

func TestGenerateRampHueDrift(t *testing.T) {
	seed := colour.OKLCH{L: 0.6, C: 0.15, H: 350}
	opts := DefaultOptions()
	opts.HueDrift = 40

	p, err := GenerateRamp("drift", seed, opts)
	require.NoError(t, err)

	assert.InDelta(t, 350.0, p.Steps[0].OKLCH.H, 1e-9)
	assert.InDelta(t, 30.0, p.Steps[p.Len()-1].OKLCH.H, 1e-9, "drift wraps past 360")
}

func TestGenerateRampAchromaticSeed(t *testing.T) {
	p, err := GenerateRampFromHex("grey", "#808080", DefaultOptions())
	require.NoError(t, err)

	for _, s := range p.Steps {
		assert.Less(t, s.OKLCH.C, 1e-6)
		rgb, err := colour.HexToRGB(s.Hex)
		require.NoError(t, err)
		assert.InDelta(t, rgb.R, rgb.G, 1.0/255)
		assert.InDelta(t, rgb.G, rgb.B, 1.0/255)
	}
}

func TestGenerateRampClampsOutOfGamutChroma(t *testing.T) {
	opts := DefaultOptions()
	opts.Chroma.Peak = 0.5

	p, err := GenerateRamp("loud", colour.OKLCH{L: 0.6, C: 0.1, H: 145}, opts)
	require.NoError(t, err)
	for _, s := range p.Steps {
		assert.True(t, colour.IsInGamut(s.OKLCH))
		assert.LessOrEqual(t, s.OKLCH.C, 0.5)
	}
}

func TestGenerateRampValidation(t *testing.T) {
	good := mustSeed(t, "#3b82f6")

	tests := []struct {
		name   string
		seed   colour.OKLCH
		mutate func(*Options)
	}{
		{name: "too few steps", seed: good, mutate: func(o *Options) { o.Steps = 1 }},
		{name: "inverted range", seed: good, mutate: func(o *Options) { o.Lightness = Range{Min: 0.9, Max: 0.1} }},
		{name: "stops length", seed: good, mutate: func(o *Options) { o.Stops = []float64{0.9, 0.5} }},
		{name: "stops order", seed: good, mutate: func(o *Options) {
			o.Steps = 3
			o.Stops = []float64{0.5, 0.9, 0.1}
		}},
		{name: "range narrower than float precision", seed: good, mutate: func(o *Options) {
			o.Lightness = Range{Min: 0.5, Max: 0.5 + 1e-15}
		}},
		{name: "nan drift", seed: good, mutate: func(o *Options) { o.HueDrift = math.NaN() }},
		{name: "peak position", seed: good, mutate: func(o *Options) { o.Chroma.PeakAt = 1 }},
		{name: "bad seed", seed: colour.OKLCH{L: math.Inf(1), C: 0.1}, mutate: func(*Options) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			_, err := GenerateRamp("x", tt.seed, opts)
			require.Error(t, err)
		})
	}
}

func TestOptionsValidateRejectsCollapsedSteps(t *testing.T) {
	opts := DefaultOptions()
	opts.Lightness = Range{Min: 0.5, Max: 0.5 + 1e-15}

	var rangeErr *colour.RangeError
	require.ErrorAs(t, opts.Validate(), &rangeErr)
	assert.Contains(t, rangeErr.Field, "lightness[")

	opts.Lightness = Range{Min: 0.5, Max: 0.5 + 1e-9}
	assert.NoError(t, opts.Validate(), "a narrow but representable range still works")
}

func TestOptionsValidateReportsEverything(t *testing.T) {
	opts := Options{Steps: 0, Lightness: Range{Min: 2, Max: -1}, Easing: 0}
	err := opts.Validate()

	var verrs colour.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	// steps, min, max, min>=max, easing, chroma curve.
	assert.Len(t, verrs, 6)

	var rangeErr *colour.RangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestChromaCurve(t *testing.T) {
	c := ChromaCurve{Peak: 0.2, PeakAt: 0.7, Floor: 0.1, Shape: 1}
	require.NoError(t, c.Validate())

	assert.InDelta(t, 0.2, c.At(0.7, 0), 1e-12, "maximum sits at PeakAt")
	assert.InDelta(t, 0.02, c.At(0, 0), 1e-12)
	assert.InDelta(t, 0.02, c.At(1, 0), 1e-12)
	assert.Less(t, c.At(0.3, 0), c.At(0.6, 0), "rises before the peak")
	assert.Greater(t, c.At(0.8, 0), c.At(0.95, 0), "falls after the peak")

	c.Peak = 0
	assert.InDelta(t, 0.15, c.At(0.7, 0.15), 1e-12, "zero peak follows the seed chroma")
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("Dark-To-Light")
	require.NoError(t, err)
	assert.Equal(t, DarkToLight, d)

	d, err = ParseDirection("")
	require.NoError(t, err)
	assert.Equal(t, LightToDark, d)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}

func TestPaletteAccessors(t *testing.T) {
	p, err := GenerateRampFromHex("brand", "#7c3aed", DefaultOptions())
	require.NoError(t, err)

	s, err := p.Step(9)
	require.NoError(t, err)
	assert.Equal(t, 9, s.Index)

	_, err = p.Step(0)
	assert.Error(t, err)
	_, err = p.Step(13)
	assert.Error(t, err)

	count := 0
	for idx, step := range p.All() {
		count++
		assert.Equal(t, idx, step.Index)
	}
	assert.Equal(t, 12, count)
	assert.Contains(t, p.String(), "brand")
}
