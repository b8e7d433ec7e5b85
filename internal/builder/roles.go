package builder

import (
	"fmt"
	"maps"
	"math"
	"strings"

	"github.com/samber/lo"
)

// Mode selects the light or dark semantic mapping.
type Mode string

// Supported modes.
const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Modes lists every mode in resolution order.
func Modes() []Mode {
	return []Mode{Light, Dark}
}

// ParseMode accepts "light" or "dark" in any case.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if m != Light && m != Dark {
		return "", fmt.Errorf("unknown mode %q (want light or dark)", s)
	}
	return m, nil
}

// statusHues holds the OKLCH hue of each status palette. The hues are the
// conventional red, orange, green, blue and purple signal colours placed on
// the OKLCH wheel. Read-only.
var statusHues = map[string]float64{
	"danger":       25,
	"warning":      70,
	"success":      145,
	"info":         250,
	"notification": 305,
}

// Status palette seed lightness and chroma, chosen so the solid step sits in
// the middle of each ramp at comfortable saturation.
const (
	statusLightness = 0.62
	statusChroma    = 0.19
)

var statusOrder = []string{"danger", "warning", "success", "info", "notification"}

// StatusNames returns the status palette names in build order.
func StatusNames() []string {
	return append([]string(nil), statusOrder...)
}

// StatusHues returns a copy of the status palette hues keyed by name.
func StatusHues() map[string]float64 {
	return maps.Clone(statusHues)
}

// paletteKind says which palette a role reads from.
type paletteKind int

const (
	kindNeutral paletteKind = iota
	kindBrand
	kindStatus
)

// roleDef places a role on a 12-step light-to-dark palette for each mode.
// Text roles name the background role they are read on.
type roleDef struct {
	name   string
	kind   paletteKind
	status string
	light  int
	dark   int
	on     string
	// pick resolves the role by choosing the best-contrast step among these
	// candidates against on, instead of using light/dark.
	pick []int
}

// roleBasis is the step count the role table is written for.
const roleBasis = 12

var baseRoles = []roleDef{
	{name: "background.canvas", kind: kindNeutral, light: 1, dark: 12},
	{name: "background.surface", kind: kindNeutral, light: 2, dark: 11},
	{name: "background.subtle", kind: kindNeutral, light: 3, dark: 10},
	{name: "border.default", kind: kindNeutral, light: 6, dark: 8},
	{name: "border.strong", kind: kindNeutral, light: 8, dark: 6},
	{name: "text.primary", kind: kindNeutral, light: 12, dark: 1, on: "background.canvas"},
	{name: "text.muted", kind: kindNeutral, light: 11, dark: 3, on: "background.surface"},
	{name: "accent.solid", kind: kindBrand, light: 9, dark: 9},
	{name: "accent.hover", kind: kindBrand, light: 10, dark: 8},
	{name: "accent.subtle", kind: kindBrand, light: 3, dark: 10},
	{name: "accent.text", kind: kindBrand, light: 11, dark: 3, on: "background.canvas"},
	{name: "accent.on-solid", kind: kindNeutral, on: "accent.solid", pick: []int{1, 12}},
}

// statusRoles returns the roles of one status palette.
func statusRoles(status string) []roleDef {
	prefix := "status." + status
	return []roleDef{
		{name: prefix + ".solid", kind: kindStatus, status: status, light: 9, dark: 9},
		{name: prefix + ".subtle", kind: kindStatus, status: status, light: 3, dark: 10},
		{name: prefix + ".text", kind: kindStatus, status: status, light: 11, dark: 3, on: "background.canvas"},
	}
}

// roleTable returns every role for a build, base roles first.
func roleTable(withStatus bool) []roleDef {
	roles := append([]roleDef(nil), baseRoles...)
	if withStatus {
		roles = append(roles, lo.FlatMap(statusOrder, func(s string, _ int) []roleDef {
			return statusRoles(s)
		})...)
	}
	return roles
}

// RoleNames lists the roles a build produces, in table order.
func RoleNames(withStatus bool) []string {
	return lo.Map(roleTable(withStatus), func(r roleDef, _ int) string { return r.name })
}

func (r roleDef) step(m Mode) int {
	if m == Dark {
		return r.dark
	}
	return r.light
}

// rescale maps a step on the 12-step basis onto an n-step palette, keeping
// both ends fixed.
func rescale(step, n int) int {
	if n == roleBasis {
		return step
	}
	s := int(math.Round(1 + float64(step-1)*float64(n-1)/float64(roleBasis-1)))
	return max(1, min(n, s))
}
