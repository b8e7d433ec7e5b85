package colour

import "math"

// APCABodyText is the minimum |Lc| commonly recommended for body text.
const APCABodyText = 60.0

// APCARevision names the APCA-W3 constant set below.
const APCARevision = "0.0.98G-4g"

// APCA-W3 constants, pinned to revision 0.0.98G-4g. Later revisions tweak
// these values, which would shift every Lc fixture.
const (
	apcaMainTRC = 2.4

	apcaRco = 0.2126729
	apcaGco = 0.7151522
	apcaBco = 0.0721750

	apcaNormBG  = 0.56
	apcaNormTXT = 0.57
	apcaRevTXT  = 0.62
	apcaRevBG   = 0.65

	apcaBlkThrs = 0.022
	apcaBlkClmp = 1.414

	apcaScaleBoW    = 1.14
	apcaScaleWoB    = 1.14
	apcaLoBoWOffset = 0.027
	apcaLoWoBOffset = 0.027
	apcaDeltaYMin   = 0.0005
	apcaLoClip      = 0.1
)

// APCAContrast returns the APCA lightness contrast of text on background.
// Positive values are dark text on a light background, negative values
// light text on a dark background. Black on white is about 106, white on
// black about -108.
func APCAContrast(text, bg RGB) float64 {
	txtY := apcaSoftClamp(apcaLuminance(text.Clip()))
	bgY := apcaSoftClamp(apcaLuminance(bg.Clip()))

	if math.Abs(bgY-txtY) < apcaDeltaYMin {
		return 0
	}

	var out float64
	if bgY > txtY {
		sapc := (math.Pow(bgY, apcaNormBG) - math.Pow(txtY, apcaNormTXT)) * apcaScaleBoW
		if sapc < apcaLoClip {
			return 0
		}
		out = sapc - apcaLoBoWOffset
	} else {
		sapc := (math.Pow(bgY, apcaRevBG) - math.Pow(txtY, apcaRevTXT)) * apcaScaleWoB
		if sapc > -apcaLoClip {
			return 0
		}
		out = sapc + apcaLoWoBOffset
	}

	return out * 100
}

// APCARating passes when |lc| reaches minLc.
func APCARating(lc, minLc float64) Rating {
	if math.Abs(lc) >= minLc {
		return RatingPass
	}
	return RatingFail
}

// apcaLuminance is APCA's screen luminance estimate; it uses a plain 2.4
// power curve rather than the piecewise sRGB function.
func apcaLuminance(c RGB) float64 {
	return apcaRco*math.Pow(c.R, apcaMainTRC) +
		apcaGco*math.Pow(c.G, apcaMainTRC) +
		apcaBco*math.Pow(c.B, apcaMainTRC)
}

func apcaSoftClamp(y float64) float64 {
	if y > apcaBlkThrs {
		return y
	}
	return y + math.Pow(apcaBlkThrs-y, apcaBlkClmp)
}
