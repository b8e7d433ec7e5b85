// Package harmony derives related hues from a seed using classic colour
// wheel relationships and builds a ramp for each of them.
package harmony

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/ramp"
)

// Type is a colour wheel relationship.
type Type string

// Supported harmony types.
const (
	Complementary      Type = "complementary"
	Analogous          Type = "analogous"
	Triadic            Type = "triadic"
	Tetradic           Type = "tetradic"
	SplitComplementary Type = "splitComplementary"
	Monochromatic      Type = "monochromatic"
)

// member is one hue of a harmony: its offset from the seed and the suffix
// used to name its palette.
type member struct {
	offset float64
	name   string
}

// harmonies maps each type to its members, seed first. Read-only.
var harmonies = map[Type][]member{
	Complementary: {{0, "base"}, {180, "complement"}},
	Analogous:     {{0, "base"}, {-30, "left"}, {30, "right"}},
	Triadic:       {{0, "base"}, {120, "triad-1"}, {240, "triad-2"}},
	Tetradic:      {{0, "base"}, {90, "tetrad-1"}, {180, "tetrad-2"}, {270, "tetrad-3"}},
	SplitComplementary: {
		{0, "base"}, {150, "split-1"}, {210, "split-2"},
	},
	Monochromatic: {{0, "base"}},
}

var order = []Type{Complementary, Analogous, Triadic, Tetradic, SplitComplementary, Monochromatic}

// UnsupportedHarmonyError is returned for an unknown harmony type.
type UnsupportedHarmonyError struct {
	Type string
}

func (e *UnsupportedHarmonyError) Error() string {
	return fmt.Sprintf("unsupported harmony type %q (supported: %s)", e.Type, strings.Join(lo.Map(order, func(t Type, _ int) string {
		return string(t)
	}), ", "))
}

// Types returns every harmony type in declaration order.
func Types() []Type {
	out := make([]Type, len(order))
	copy(out, order)
	return out
}

// String returns the canonical camelCase name.
func (t Type) String() string {
	return string(t)
}

// ParseType accepts the canonical name in any case, and the kebab-case
// spelling ("split-complementary").
func ParseType(s string) (Type, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	t, ok := lo.Find(order, func(t Type) bool {
		return strings.ToLower(string(t)) == key
	})
	if !ok {
		return "", &UnsupportedHarmonyError{Type: s}
	}
	return t, nil
}

// Offsets returns the hue offsets of a harmony type, seed first.
func Offsets(t Type) ([]float64, error) {
	members, ok := harmonies[t]
	if !ok {
		return nil, &UnsupportedHarmonyError{Type: string(t)}
	}
	return lo.Map(members, func(m member, _ int) float64 { return m.offset }), nil
}

// Generate returns the hues of the harmony built on seedHue, seed first,
// each normalised to [0, 360).
func Generate(seedHue float64, t Type) ([]float64, error) {
	members, ok := harmonies[t]
	if !ok {
		return nil, &UnsupportedHarmonyError{Type: string(t)}
	}
	if err := (colour.OKLCH{H: seedHue}).Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed hue: %w", err)
	}
	return lo.Map(members, func(m member, _ int) float64 {
		return colour.NormalizeHue(seedHue + m.offset)
	}), nil
}

// GeneratePalettes builds one ramp per harmony member. Members share the
// seed's lightness and chroma and differ only in hue. The seed's own palette
// keeps name; the others are named "<name>-<member>", e.g. "brand-complement".
func GeneratePalettes(name string, seed colour.OKLCH, t Type, opts ramp.Options) ([]ramp.Palette, error) {
	hues, err := Generate(seed.H, t)
	if err != nil {
		return nil, err
	}
	members := harmonies[t]

	palettes := make([]ramp.Palette, 0, len(hues))
	for i, h := range hues {
		paletteName := name
		if i > 0 {
			paletteName = name + "-" + members[i].name
		}
		p, err := ramp.GenerateRamp(paletteName, colour.OKLCH{L: seed.L, C: seed.C, H: h}, opts)
		if err != nil {
			return nil, fmt.Errorf("harmony member %s: %w", members[i].name, err)
		}
		palettes = append(palettes, p)
	}
	return palettes, nil
}

// MemberNames returns the palette suffixes of a harmony type, seed first.
func MemberNames(t Type) ([]string, error) {
	members, ok := harmonies[t]
	if !ok {
		return nil, &UnsupportedHarmonyError{Type: string(t)}
	}
	return lo.Map(members, func(m member, _ int) string { return m.name }), nil
}
