package colour

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseHex parses #rgb, #rgba, #rrggbb or #rrggbbaa (the '#' is optional).
// Colours without an alpha component are fully opaque.
func ParseHex(s string) (RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3, 4:
		expanded := make([]byte, 0, len(hex)*2)
		for i := 0; i < len(hex); i++ {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
	case 6, 8:
	default:
		return RGBA{}, &ParseError{Input: s, Reason: fmt.Sprintf("expected 3, 4, 6 or 8 hex digits, got %d", len(hex))}
	}

	var channels [4]uint8
	channels[3] = 0xff
	for i := 0; i < len(hex)/2; i++ {
		hi, ok1 := hexNibble(hex[2*i])
		lo, ok2 := hexNibble(hex[2*i+1])
		if !ok1 || !ok2 {
			return RGBA{}, &ParseError{Input: s, Reason: fmt.Sprintf("invalid hex digit in %q", hex[2*i:2*i+2])}
		}
		channels[i] = hi<<4 | lo
	}

	return RGBA{
		R: float64(channels[0]) / 255,
		G: float64(channels[1]) / 255,
		B: float64(channels[2]) / 255,
		A: float64(channels[3]) / 255,
	}, nil
}

// HexToRGB parses a hex colour and discards any alpha component.
func HexToRGB(s string) (RGB, error) {
	c, err := ParseHex(s)
	if err != nil {
		return RGB{}, err
	}
	return c.Opaque(), nil
}

// RGBToHex formats a colour as "#rrggbb", clipping channels into [0, 1].
func RGBToHex(c RGB) string {
	r, g, b := c.bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGBAToHex formats a colour as "#rrggbbaa", or "#rrggbb" when the alpha
// rounds to fully opaque.
func RGBAToHex(c RGBA) string {
	a := channelByte(c.A)
	if a == 0xff {
		return RGBToHex(c.Opaque())
	}
	return fmt.Sprintf("%s%02x", RGBToHex(c.Opaque()), a)
}

// NormalizeHex returns the canonical form of a hex colour: lowercase,
// '#'-prefixed, shorthand expanded, opaque alpha dropped.
func NormalizeHex(s string) (string, error) {
	c, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return RGBAToHex(c), nil
}

// HexToOKLCH parses a hex colour into OKLCH, ignoring alpha.
func HexToOKLCH(s string) (OKLCH, error) {
	c, err := HexToRGB(s)
	if err != nil {
		return OKLCH{}, err
	}
	return RGBToOKLCH(c), nil
}

// OKLCHToHex clamps the colour into the sRGB gamut and formats it as "#rrggbb".
func OKLCHToHex(c OKLCH) string {
	return RGBToHex(OKLCHToRGB(ClampToGamut(c)))
}

// ParseColour accepts a hex colour or an SVG 1.1 named colour such as
// "tomato". A leading '#' forces hex parsing.
func ParseColour(s string) (RGB, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return RGB{}, &ParseError{Input: s, Reason: "empty colour"}
	}
	if !strings.HasPrefix(trimmed, "#") {
		if named, ok := colornames.Map[strings.ToLower(trimmed)]; ok {
			return FromColor(named), nil
		}
	}
	c, err := HexToRGB(trimmed)
	if err != nil {
		return RGB{}, &ParseError{Input: s, Reason: "not a hex colour or known colour name"}
	}
	return c, nil
}

// NormalizeColour is ParseColour for callers that want the canonical hex
// string back. Hex input keeps its alpha channel.
func NormalizeColour(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "#") {
		if named, ok := colornames.Map[strings.ToLower(trimmed)]; ok {
			return FromColor(named).Hex(), nil
		}
	}
	hex, err := NormalizeHex(trimmed)
	if err != nil {
		return "", &ParseError{Input: s, Reason: "not a hex colour or known colour name"}
	}
	return hex, nil
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
