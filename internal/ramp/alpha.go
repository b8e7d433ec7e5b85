package ramp

import (
	"math"

	"github.com/jmylchreest/tonal/internal/colour"
)

// GenerateAlphaRamp builds a translucent twin of the solid ramp: each step
// is the least-opaque colour that, composited over background, reproduces
// the solid step. Such overlays stay correct on any background close to the
// one they were solved for.
func GenerateAlphaRamp(name string, seed colour.OKLCH, opts Options, background colour.RGB) (Palette, error) {
	targets, seed, err := solidTargets(seed, opts)
	if err != nil {
		return Palette{}, err
	}
	bg := background.Clip()

	steps := make([]Step, len(targets))
	for i, c := range targets {
		overlay := solveOverlay(colour.OKLCHToRGB(c).Clip(), bg)
		steps[i] = Step{
			Index: i + 1,
			Hex:   colour.RGBAToHex(overlay),
			OKLCH: colour.RGBToOKLCH(overlay.Over(bg)),
			Alpha: overlay.A,
		}
	}

	return Palette{Name: name, Seed: seed, Steps: steps}, nil
}

// solveOverlay finds the smallest 8-bit alpha a and a colour o with
// o*a + bg*(1-a) = target and o inside the sRGB cube.
func solveOverlay(target, bg colour.RGB) colour.RGBA {
	a := 0.0
	for _, ch := range [][2]float64{{target.R, bg.R}, {target.G, bg.G}, {target.B, bg.B}} {
		t, b := ch[0], ch[1]
		var need float64
		switch {
		case t > b:
			need = (t - b) / (1 - b)
		case t < b:
			need = (b - t) / b
		}
		a = math.Max(a, need)
	}

	// Round alpha up to the next representable byte so the overlay channels
	// stay inside [0, 1] after quantisation.
	a = math.Min(1, math.Ceil(a*255-1e-9)/255)
	if a == 0 {
		return target.WithAlpha(0)
	}

	solve := func(t, b float64) float64 {
		return math.Max(0, math.Min(1, b+(t-b)/a))
	}
	return colour.RGBA{
		R: solve(target.R, bg.R),
		G: solve(target.G, bg.G),
		B: solve(target.B, bg.B),
		A: a,
	}
}
