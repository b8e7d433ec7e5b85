package harmony

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/ramp"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		hue  float64
		typ  Type
		want []float64
	}{
		{name: "complementary at zero", hue: 0, typ: Complementary, want: []float64{0, 180}},
		{name: "triadic wraps", hue: 200, typ: Triadic, want: []float64{200, 320, 80}},
		{name: "analogous seed first", hue: 10, typ: Analogous, want: []float64{10, 340, 40}},
		{name: "tetradic", hue: 45, typ: Tetradic, want: []float64{45, 135, 225, 315}},
		{name: "split complementary", hue: 90, typ: SplitComplementary, want: []float64{90, 240, 300}},
		{name: "monochromatic", hue: 300, typ: Monochromatic, want: []float64{300}},
		{name: "seed hue normalised", hue: -60, typ: Complementary, want: []float64{300, 120}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.hue, tt.typ)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, got, 1e-9)
		})
	}
}

func TestGenerateHuesInRange(t *testing.T) {
	for _, typ := range Types() {
		for h := -720.0; h <= 720; h += 17.5 {
			hues, err := Generate(h, typ)
			require.NoError(t, err)
			for _, v := range hues {
				assert.GreaterOrEqual(t, v, 0.0)
				assert.Less(t, v, 360.0)
			}
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate(0, Type("pentadic"))
	var unsupported *UnsupportedHarmonyError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "pentadic", unsupported.Type)

	_, err = Generate(math.NaN(), Triadic)
	var rangeErr *colour.RangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{in: "complementary", want: Complementary},
		{in: "Triadic", want: Triadic},
		{in: "splitComplementary", want: SplitComplementary},
		{in: "split-complementary", want: SplitComplementary},
		{in: "SPLITCOMPLEMENTARY", want: SplitComplementary},
		{in: " analogous ", want: Analogous},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseType("square")
	var unsupported *UnsupportedHarmonyError
	require.ErrorAs(t, err, &unsupported)
	assert.Contains(t, err.Error(), "splitComplementary")
}

func TestTypes(t *testing.T) {
	types := Types()
	assert.Equal(t, []Type{Complementary, Analogous, Triadic, Tetradic, SplitComplementary, Monochromatic}, types)

	types[0] = "mutated"
	assert.Equal(t, Complementary, Types()[0])

	for _, typ := range types[1:] {
		offsets, err := Offsets(typ)
		require.NoError(t, err)
		names, err := MemberNames(typ)
		require.NoError(t, err)
		assert.Len(t, names, len(offsets))
		assert.Zero(t, offsets[0], "seed comes first")
	}
}

func TestGeneratePalettes(t *testing.T) {
	seed, err := ramp.SeedFromString("#3b82f6")
	require.NoError(t, err)

	palettes, err := GeneratePalettes("brand", seed, Triadic, ramp.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, palettes, 3)

	names := []string{palettes[0].Name, palettes[1].Name, palettes[2].Name}
	assert.Equal(t, []string{"brand", "brand-triad-1", "brand-triad-2"}, names)

	hues, err := Generate(seed.H, Triadic)
	require.NoError(t, err)
	for i, p := range palettes {
		assert.Equal(t, ramp.DefaultSteps, p.Len())
		assert.InDelta(t, hues[i], p.Seed.H, 1e-9)
		for _, s := range p.Steps {
			assert.InDelta(t, hues[i], s.OKLCH.H, 1e-9, "palette %s keeps its member hue", p.Name)
		}
	}

	base, err := ramp.GenerateRamp("brand", seed, ramp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, base.Hexes(), palettes[0].Hexes(), "the base member is the seed's own ramp")
}

func TestGeneratePalettesErrors(t *testing.T) {
	seed := colour.OKLCH{L: 0.5, C: 0.1, H: 20}

	_, err := GeneratePalettes("x", seed, Type("nope"), ramp.DefaultOptions())
	var unsupported *UnsupportedHarmonyError
	assert.ErrorAs(t, err, &unsupported)

	opts := ramp.DefaultOptions()
	opts.Steps = 1
	_, err = GeneratePalettes("x", seed, Complementary, opts)
	assert.Error(t, err)
}
