package colour

import (
	"fmt"
	"math"
	"strings"
)

// WCAG 2.x contrast thresholds.
const (
	ContrastAA       = 4.5
	ContrastAAA      = 7.0
	ContrastLargeAA  = 3.0
	ContrastLargeAAA = 4.5
)

// Algorithm selects the contrast model.
type Algorithm int

const (
	// AlgorithmWCAG uses the WCAG 2.x luminance ratio.
	AlgorithmWCAG Algorithm = iota
	// AlgorithmAPCA uses APCA lightness contrast (Lc).
	AlgorithmAPCA
)

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmWCAG:
		return "wcag"
	case AlgorithmAPCA:
		return "apca"
	default:
		return "unknown"
	}
}

// ParseAlgorithm accepts "wcag" or "apca" in any case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wcag", "wcag2", "":
		return AlgorithmWCAG, nil
	case "apca":
		return AlgorithmAPCA, nil
	}
	return 0, fmt.Errorf("unknown contrast algorithm %q (want wcag or apca)", s)
}

// MarshalText encodes the algorithm by name.
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes an algorithm name.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// TextSize is the WCAG text-size context a rating applies to.
type TextSize int

const (
	// TextNormal is body text.
	TextNormal TextSize = iota
	// TextLarge is at least 18pt, or 14pt bold.
	TextLarge
)

// String returns "normal" or "large".
func (t TextSize) String() string {
	if t == TextLarge {
		return "large"
	}
	return "normal"
}

// ParseTextSize accepts "normal" or "large". Empty means normal.
func ParseTextSize(s string) (TextSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal", "body":
		return TextNormal, nil
	case "large":
		return TextLarge, nil
	}
	return 0, fmt.Errorf("unknown text size %q (want normal or large)", s)
}

// MarshalText encodes the text size by name.
func (t TextSize) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a text size name.
func (t *TextSize) UnmarshalText(b []byte) error {
	v, err := ParseTextSize(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseLevel accepts "AA" or "AAA" in any case. Empty means AA.
func ParseLevel(s string) (Rating, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "AA":
		return RatingAA, nil
	case "AAA":
		return RatingAAA, nil
	}
	return "", fmt.Errorf("unknown contrast level %q (want AA or AAA)", s)
}

// Rating is the outcome of a contrast check.
type Rating string

const (
	RatingFail Rating = "fail"
	RatingAA   Rating = "AA"
	RatingAAA  Rating = "AAA"
	RatingPass Rating = "pass"
)

// ContrastContext describes what a contrast check is for.
type ContrastContext struct {
	Algorithm Algorithm `json:"algorithm"`
	TextSize  TextSize  `json:"textSize"`
	// Level is the minimum WCAG rating that counts as a pass (AA or AAA).
	Level Rating `json:"level"`
	// MinLc is the minimum |Lc| that counts as an APCA pass.
	MinLc float64 `json:"minLc"`
}

// DefaultContrastContext returns WCAG AA for normal body text.
func DefaultContrastContext() ContrastContext {
	return ContrastContext{
		Algorithm: AlgorithmWCAG,
		TextSize:  TextNormal,
		Level:     RatingAA,
		MinLc:     APCABodyText,
	}
}

// Validate checks the level and threshold.
func (c ContrastContext) Validate() error {
	var errs ValidationErrors
	if c.Algorithm != AlgorithmWCAG && c.Algorithm != AlgorithmAPCA {
		errs = append(errs, fmt.Errorf("unknown contrast algorithm %d", c.Algorithm))
	}
	if c.Level != RatingAA && c.Level != RatingAAA {
		errs = append(errs, fmt.Errorf("contrast level must be AA or AAA, got %q", c.Level))
	}
	if !isFinite(c.MinLc) || c.MinLc < 0 || c.MinLc > 110 {
		errs = append(errs, &RangeError{Field: "minLc", Value: c.MinLc, Want: "[0, 110]"})
	}
	return errs.Err()
}

// ContrastResult is a single contrast measurement with its rating.
type ContrastResult struct {
	Algorithm Algorithm `json:"algorithm"`
	// Ratio is the WCAG ratio; always populated.
	Ratio float64 `json:"ratio"`
	// Lc is the APCA score; always populated.
	Lc     float64 `json:"lc"`
	Rating Rating  `json:"rating"`
	Pass   bool    `json:"pass"`
}

// RelativeLuminance calculates the WCAG 2.x relative luminance of a colour.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
func RelativeLuminance(c RGB) float64 {
	c = c.Clip()
	return 0.2126*wcagLinear(c.R) + 0.7152*wcagLinear(c.G) + 0.0722*wcagLinear(c.B)
}

// wcagLinear uses the 0.03928 threshold from the WCAG 2.x text.
func wcagLinear(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// WCAGContrast calculates the contrast ratio between two colours.
// Returns a value between 1 and 21, where 21 is black against white.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef
func WCAGContrast(c1, c2 RGB) float64 {
	l1 := RelativeLuminance(c1)
	l2 := RelativeLuminance(c2)

	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// WCAGRating rates a contrast ratio for the given text size.
func WCAGRating(ratio float64, size TextSize) Rating {
	aa, aaa := ContrastAA, ContrastAAA
	if size == TextLarge {
		aa, aaa = ContrastLargeAA, ContrastLargeAAA
	}
	switch {
	case ratio >= aaa:
		return RatingAAA
	case ratio >= aa:
		return RatingAA
	default:
		return RatingFail
	}
}

// CheckContrast measures foreground against background and rates it
// according to ctx.
func CheckContrast(fg, bg RGB, ctx ContrastContext) ContrastResult {
	res := ContrastResult{
		Algorithm: ctx.Algorithm,
		Ratio:     WCAGContrast(fg, bg),
		Lc:        APCAContrast(fg, bg),
	}

	if ctx.Algorithm == AlgorithmAPCA {
		res.Rating = APCARating(res.Lc, ctx.MinLc)
		res.Pass = res.Rating == RatingPass
		return res
	}

	res.Rating = WCAGRating(res.Ratio, ctx.TextSize)
	switch ctx.Level {
	case RatingAAA:
		res.Pass = res.Rating == RatingAAA
	default:
		res.Pass = res.Rating != RatingFail
	}
	return res
}

// BestTextColor returns the candidate with the highest contrast against bg,
// scored by WCAG ratio or APCA |Lc|. The first candidate wins ties.
func BestTextColor(bg RGB, candidates []RGB, algo Algorithm) (RGB, error) {
	if len(candidates) == 0 {
		return RGB{}, ErrNoCandidates
	}

	best := 0
	bestScore := math.Inf(-1)
	for i, c := range candidates {
		var score float64
		if algo == AlgorithmAPCA {
			score = math.Abs(APCAContrast(c, bg))
		} else {
			score = WCAGContrast(c, bg)
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return candidates[best], nil
}
