package colour

import (
	"image/color"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBToOKLCHKnownColours(t *testing.T) {
	tests := []struct {
		name       string
		rgb        RGB
		wantL      float64
		wantC      float64
		wantH      float64
		achromatic bool
	}{
		{name: "black", rgb: Black, wantL: 0, wantC: 0, achromatic: true},
		{name: "white", rgb: White, wantL: 1, wantC: 0, achromatic: true},
		{name: "red", rgb: RGB{R: 1}, wantL: 0.6279, wantC: 0.2577, wantH: 29.23},
		{name: "green", rgb: RGB{G: 128.0 / 255}, wantL: 0.5196, wantC: 0.1766, wantH: 142.50},
		{name: "blue", rgb: RGB{B: 1}, wantL: 0.4520, wantC: 0.3132, wantH: 264.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToOKLCH(tt.rgb)
			assert.InDelta(t, tt.wantL, got.L, 0.001, "lightness")
			assert.InDelta(t, tt.wantC, got.C, 0.001, "chroma")
			if tt.achromatic {
				assert.Zero(t, got.H, "achromatic hue should be reported as 0")
				return
			}
			assert.InDelta(t, tt.wantH, got.H, 0.1, "hue")
		})
	}
}

func TestRGBOKLabRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	for i := 0; i < 10000; i++ {
		in := RGB{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
		out := OKLabToRGB(RGBToOKLab(in))
		require.InDelta(t, in.R, out.R, 1e-4, "red channel for %v", in)
		require.InDelta(t, in.G, out.G, 1e-4, "green channel for %v", in)
		require.InDelta(t, in.B, out.B, 1e-4, "blue channel for %v", in)
	}
}

func TestOKLCHOKLabRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 11))
	for i := 0; i < 10000; i++ {
		lab := OKLab{L: rng.Float64(), A: rng.Float64()*0.8 - 0.4, B: rng.Float64()*0.8 - 0.4}
		back := OKLCHToOKLab(OKLabToOKLCH(lab))
		require.InDelta(t, lab.L, back.L, 1e-9)
		require.InDelta(t, lab.A, back.A, 1e-9)
		require.InDelta(t, lab.B, back.B, 1e-9)

		lch := OKLCH{L: rng.Float64(), C: 0.01 + rng.Float64()*0.3, H: rng.Float64() * 360}
		again := OKLabToOKLCH(OKLCHToOKLab(lch))
		require.InDelta(t, lch.L, again.L, 1e-9)
		require.InDelta(t, lch.C, again.C, 1e-9)
		require.Less(t, HueDistance(lch.H, again.H), 1e-6)
	}
}

func TestOKLabToOKLCHHueRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	for i := 0; i < 1000; i++ {
		lch := OKLabToOKLCH(OKLab{L: 0.5, A: rng.NormFloat64(), B: rng.NormFloat64()})
		require.GreaterOrEqual(t, lch.H, 0.0)
		require.Less(t, lch.H, 360.0)
	}
}

func TestNormalizeHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{-30, 330},
		{720 + 45, 45},
		{-720, 0},
		{359.5, 359.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeHue(tt.in), 1e-9, "NormalizeHue(%v)", tt.in)
	}
}

func TestHueDistance(t *testing.T) {
	assert.InDelta(t, 20.0, HueDistance(350, 10), 1e-9)
	assert.InDelta(t, 180.0, HueDistance(0, 180), 1e-9)
	assert.InDelta(t, 0.0, HueDistance(-360, 0), 1e-9)
}

func TestNewOKLCH(t *testing.T) {
	c, err := NewOKLCH(0.5, 0.1, -90)
	require.NoError(t, err)
	assert.InDelta(t, 270.0, c.H, 1e-9)

	_, err = NewOKLCH(math.NaN(), -1, math.Inf(1))
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3, "every bad component should be reported")

	var rangeErr *RangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestRGBImplementsColor(t *testing.T) {
	var c color.Color = RGB{R: 1, G: 0.5, B: 0}
	got := FromColor(c)
	assert.Equal(t, "#ff8000", got.Hex())

	overlay := RGBA{R: 0, G: 0, B: 0, A: 0.5}
	assert.Equal(t, "#808080", overlay.Over(White).Hex())
}

func TestSRGBTransferInverse(t *testing.T) {
	for v := -0.5; v <= 1.5; v += 0.01 {
		assert.InDelta(t, v, LinearToSRGB(SRGBToLinear(v)), 1e-9)
	}
}
