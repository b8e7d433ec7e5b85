package ramp

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
)

// PresetTemplate is a named, fixed set of ramp options.
type PresetTemplate struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Options     Options `json:"options"`
}

// UnknownPresetError is returned when a template name is not registered.
type UnknownPresetError struct {
	Name      string
	Available []string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown preset template %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// presets is read-only after package initialisation.
var presets = map[string]PresetTemplate{
	"default": {
		Name:        "default",
		Description: "12 eased steps, chroma following the seed",
		Options:     DefaultOptions(),
	},
	"radix": {
		Name:        "radix",
		Description: "12 steps tuned for app backgrounds, borders, solids and text",
		Options: Options{
			Steps:  12,
			Stops:  []float64{0.993, 0.982, 0.955, 0.930, 0.905, 0.875, 0.835, 0.775, 0.640, 0.600, 0.500, 0.270},
			Easing: 1,
			Chroma: ChromaCurve{PeakAt: 0.73, Floor: 0.08, Shape: 1.2},
		},
	},
	"tailwind": {
		Name:        "tailwind",
		Description: "11 steps matching the 50-950 scale",
		Options: Options{
			Steps:  11,
			Stops:  []float64{0.971, 0.936, 0.885, 0.808, 0.704, 0.637, 0.577, 0.505, 0.444, 0.396, 0.258},
			Easing: 1,
			Chroma: ChromaCurve{PeakAt: 0.5, Floor: 0.1, Shape: 0.9},
		},
	},
	"material": {
		Name:        "material",
		Description: "13 tonal steps from white to black",
		Options: Options{
			Steps:  13,
			Stops:  []float64{1.0, 0.99, 0.96, 0.91, 0.82, 0.73, 0.64, 0.55, 0.46, 0.37, 0.28, 0.19, 0.0},
			Easing: 1,
			Chroma: ChromaCurve{PeakAt: 0.5, Floor: 0.05, Shape: 1.0},
		},
	},
	"neutral": {
		Name:        "neutral",
		Description: "12 near-grey steps tinted with the seed hue",
		Options: Options{
			Steps:     12,
			Lightness: Range{Min: 0.2, Max: 0.99},
			Easing:    1.35,
			Chroma:    ChromaCurve{Peak: 0.02, PeakAt: 0.5, Floor: 0.6, Shape: 1.0},
		},
	},
	"vivid": {
		Name:        "vivid",
		Description: "12 steps pushed to the edge of the sRGB gamut",
		Options: Options{
			Steps:     12,
			Lightness: Range{Min: 0.25, Max: 0.975},
			Easing:    1.2,
			Chroma:    ChromaCurve{Peak: 0.32, PeakAt: 0.6, Floor: 0.25, Shape: 0.7},
		},
	},
}

// Preset returns a copy of the named template.
func Preset(name string) (PresetTemplate, error) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return PresetTemplate{}, &UnknownPresetError{Name: name, Available: Presets()}
	}
	p.Options.Stops = slices.Clone(p.Options.Stops)
	return p, nil
}

// Presets lists the registered template names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GeneratePresetRamp builds a ramp from seed using the named template. The
// palette takes the template's name.
func GeneratePresetRamp(template string, seed colour.OKLCH) (Palette, error) {
	p, err := Preset(template)
	if err != nil {
		return Palette{}, err
	}
	return GenerateRamp(p.Name, seed, p.Options)
}
