package colour

// Gamut search tuning.
const (
	gamutTolerance   = 1e-6
	gamutMaxIter     = 40
	gamutChromaDelta = 1e-6
)

// IsInGamut reports whether the colour maps into the sRGB cube. The test is
// made on linear channels so it matches ClampToGamut's stopping condition.
// The tolerance covers the float32-derived precision of the OKLab matrices,
// so every 8-bit sRGB colour converts back inside the cube.
func IsInGamut(c OKLCH) bool {
	r, g, b := oklabToLinear(OKLCHToOKLab(c))
	return linearInRange(r) && linearInRange(g) && linearInRange(b)
}

// ClampToGamut maps an OKLCH colour into sRGB by reducing chroma along
// constant hue and lightness. In-gamut colours are returned unchanged.
//
// Lightness outside [0, 1] is clamped first since no chroma can fix it.
// Hue is never altered and chroma only ever shrinks. The result always
// satisfies IsInGamut, which makes the operation idempotent.
func ClampToGamut(c OKLCH) OKLCH {
	if c.C < 0 {
		c.C = 0
	}
	if IsInGamut(c) {
		return c
	}

	c.L = clamp01(c.L)
	if IsInGamut(c) {
		return c
	}

	// Bisect on chroma keeping lo in gamut. lo = 0 is always in gamut for
	// L in [0, 1] since greys are.
	lo, hi := 0.0, c.C
	for i := 0; i < gamutMaxIter && hi-lo > gamutChromaDelta; i++ {
		mid := (lo + hi) / 2
		if IsInGamut(OKLCH{L: c.L, C: mid, H: c.H}) {
			lo = mid
		} else {
			hi = mid
		}
	}

	return OKLCH{L: c.L, C: lo, H: c.H}
}

// ClipToGamut converts to sRGB and clips each channel. Unlike ClampToGamut
// this can shift hue; it exists for comparisons and for callers that only
// need a displayable approximation.
func ClipToGamut(c OKLCH) RGB {
	return OKLCHToRGB(c).Clip()
}

func linearInRange(v float64) bool {
	return v >= -gamutTolerance && v <= 1+gamutTolerance
}
