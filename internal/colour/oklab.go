package colour

import "math"

// achromaticChroma is the chroma below which hue is reported as 0.
const achromaticChroma = 1e-6

// SRGBToLinear removes the sRGB transfer function (IEC 61966-2-1).
func SRGBToLinear(v float64) float64 {
	if math.Abs(v) <= 0.04045 {
		return v / 12.92
	}
	// Odd extension keeps out-of-range values invertible.
	return math.Copysign(math.Pow((math.Abs(v)+0.055)/1.055, 2.4), v)
}

// LinearToSRGB applies the sRGB transfer function.
func LinearToSRGB(v float64) float64 {
	if math.Abs(v) <= 0.0031308 {
		return v * 12.92
	}
	return math.Copysign(1.055*math.Pow(math.Abs(v), 1/2.4)-0.055, v)
}

// RGBToOKLab converts gamma-encoded sRGB to OKLab.
func RGBToOKLab(c RGB) OKLab {
	return linearToOKLab(SRGBToLinear(c.R), SRGBToLinear(c.G), SRGBToLinear(c.B))
}

// OKLabToRGB converts OKLab to gamma-encoded sRGB. The result is not clipped.
func OKLabToRGB(c OKLab) RGB {
	r, g, b := oklabToLinear(c)
	return RGB{R: LinearToSRGB(r), G: LinearToSRGB(g), B: LinearToSRGB(b)}
}

// RGBToOKLCH converts gamma-encoded sRGB to OKLCH.
func RGBToOKLCH(c RGB) OKLCH {
	return OKLabToOKLCH(RGBToOKLab(c))
}

// OKLCHToRGB converts OKLCH to gamma-encoded sRGB. The result is not clipped;
// use ClampToGamut first when a displayable colour is needed.
func OKLCHToRGB(c OKLCH) RGB {
	return OKLabToRGB(OKLCHToOKLab(c))
}

// OKLabToOKLCH converts Cartesian OKLab to polar form.
func OKLabToOKLCH(c OKLab) OKLCH {
	chroma := math.Hypot(c.A, c.B)
	if chroma < achromaticChroma {
		return OKLCH{L: c.L, C: chroma, H: 0}
	}
	hue := math.Atan2(c.B, c.A) * 180 / math.Pi
	return OKLCH{L: c.L, C: chroma, H: NormalizeHue(hue)}
}

// OKLCHToOKLab converts polar OKLCH to Cartesian form.
func OKLCHToOKLab(c OKLCH) OKLab {
	rad := c.H * math.Pi / 180
	return OKLab{L: c.L, A: c.C * math.Cos(rad), B: c.C * math.Sin(rad)}
}

// linearToOKLab applies M1, the LMS cube root, then M2.
func linearToOKLab(r, g, b float64) OKLab {
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	return OKLab{
		L: 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp,
		A: 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp,
		B: 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp,
	}
}

// oklabToLinear is the exact inverse of linearToOKLab.
func oklabToLinear(c OKLab) (r, g, b float64) {
	lp := c.L + 0.3963377774*c.A + 0.2158037573*c.B
	mp := c.L - 0.1055613458*c.A - 0.0638541728*c.B
	sp := c.L - 0.0894841775*c.A - 1.2914855480*c.B

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	r = 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g = -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b = -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return r, g, b
}
