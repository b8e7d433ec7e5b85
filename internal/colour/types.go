// Package colour provides colour-space conversion, gamut mapping and
// contrast scoring for ramp generation.
//
// Three representations are supported and every pair converts explicitly:
// gamma-encoded sRGB (RGB/RGBA), OKLab, and its polar form OKLCH. Hex strings
// are only a boundary format; nothing in the engine computes on them.
package colour

import (
	"fmt"
	"image/color"
	"math"
)

// RGB is a gamma-encoded sRGB colour with channels nominally in [0, 1].
// Values produced by OKLabToRGB may fall outside that range when the source
// colour is out of gamut.
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// RGBA is an sRGB colour with straight (non-premultiplied) alpha in [0, 1].
type RGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// OKLab is a colour in Björn Ottosson's perceptual Lab space.
// L is 0 for black and 1 for reference white.
type OKLab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// OKLCH is the polar form of OKLab. C is chroma (>= 0) and H is hue in
// degrees, [0, 360). H carries no meaning when C is ~0.
type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// Common reference colours.
var (
	White = RGB{R: 1, G: 1, B: 1}
	Black = RGB{R: 0, G: 0, B: 0}
)

// String returns the colour as "rgb(r, g, b)" using 8-bit channels.
func (c RGB) String() string {
	r, g, b := c.bytes()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// Hex returns the colour as a canonical "#rrggbb" string.
func (c RGB) Hex() string {
	return RGBToHex(c)
}

// OKLab converts the colour to OKLab.
func (c RGB) OKLab() OKLab {
	return RGBToOKLab(c)
}

// OKLCH converts the colour to OKLCH.
func (c RGB) OKLCH() OKLCH {
	return RGBToOKLCH(c)
}

// InGamut reports whether all channels lie within [0, 1].
func (c RGB) InGamut() bool {
	return c.R >= 0 && c.R <= 1 && c.G >= 0 && c.G <= 1 && c.B >= 0 && c.B <= 1
}

// Clip clamps every channel into [0, 1].
func (c RGB) Clip() RGB {
	return RGB{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// RGBA implements color.Color so engine colours can be handed to image code.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: channelByte(c.R), G: channelByte(c.G), B: channelByte(c.B), A: 255}.RGBA()
}

func (c RGB) bytes() (r, g, b uint8) {
	return channelByte(c.R), channelByte(c.G), channelByte(c.B)
}

// WithAlpha attaches an alpha channel.
func (c RGB) WithAlpha(a float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Opaque drops the alpha channel.
func (c RGBA) Opaque() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// Hex returns "#rrggbb" for opaque colours and "#rrggbbaa" otherwise.
func (c RGBA) Hex() string {
	return RGBAToHex(c)
}

// Over composites the colour onto an opaque background.
func (c RGBA) Over(bg RGB) RGB {
	a := clamp01(c.A)
	return RGB{
		R: c.R*a + bg.R*(1-a),
		G: c.G*a + bg.G*(1-a),
		B: c.B*a + bg.B*(1-a),
	}
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: channelByte(c.R), G: channelByte(c.G), B: channelByte(c.B), A: channelByte(c.A)}.RGBA()
}

// FromColor converts any color.Color into an opaque RGB, un-premultiplying
// alpha where necessary.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
}

// RGB converts the colour to sRGB without gamut mapping.
func (c OKLab) RGB() RGB {
	return OKLabToRGB(c)
}

// OKLCH converts the colour to polar form.
func (c OKLab) OKLCH() OKLCH {
	return OKLabToOKLCH(c)
}

// OKLab converts the colour to Cartesian form.
func (c OKLCH) OKLab() OKLab {
	return OKLCHToOKLab(c)
}

// RGB converts the colour to sRGB without gamut mapping.
func (c OKLCH) RGB() RGB {
	return OKLCHToRGB(c)
}

// Hex returns the gamut-clamped colour as "#rrggbb".
func (c OKLCH) Hex() string {
	return OKLCHToHex(c)
}

// String returns the colour in CSS oklch() notation.
func (c OKLCH) String() string {
	return fmt.Sprintf("oklch(%.4f %.4f %.2f)", c.L, c.C, c.H)
}

// NewOKLCH validates the components and normalises the hue.
func NewOKLCH(l, c, h float64) (OKLCH, error) {
	v := OKLCH{L: l, C: c, H: h}
	if err := v.Validate(); err != nil {
		return OKLCH{}, err
	}
	v.H = NormalizeHue(h)
	return v, nil
}

// Validate reports every component outside its domain. Hue may be any
// finite angle; it is normalised on use.
func (c OKLCH) Validate() error {
	var errs ValidationErrors
	if !isFinite(c.L) || c.L < 0 || c.L > 1 {
		errs = append(errs, &RangeError{Field: "lightness", Value: c.L, Want: "[0, 1]"})
	}
	if !isFinite(c.C) || c.C < 0 {
		errs = append(errs, &RangeError{Field: "chroma", Value: c.C, Want: ">= 0"})
	}
	if !isFinite(c.H) {
		errs = append(errs, &RangeError{Field: "hue", Value: c.H, Want: "a finite angle"})
	}
	return errs.Err()
}

// NormalizeHue wraps any finite angle into [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// HueDistance returns the shortest angular distance between two hues, 0-180.
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(NormalizeHue(h1) - NormalizeHue(h2))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func channelByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
