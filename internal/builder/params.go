package builder

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/harmony"
	"github.com/jmylchreest/tonal/internal/ramp"
)

// Palette names reserved by the pipeline.
const (
	BrandPalette   = "brand"
	NeutralPalette = "neutral"
)

// neutralChroma is the chroma given to a neutral derived from the brand hue.
const neutralChroma = 0.02

// Seed is a designer-chosen colour with the palette name it seeds.
type Seed struct {
	Name   string `json:"name" mapstructure:"name"`
	Colour string `json:"colour" mapstructure:"colour"`
}

// Seeds are the inputs of one build. Brand is required. Neutral is derived
// from the brand hue when its colour is empty.
type Seeds struct {
	Brand   Seed   `json:"brand" mapstructure:"brand"`
	Neutral Seed   `json:"neutral" mapstructure:"neutral"`
	Accents []Seed `json:"accents,omitempty" mapstructure:"accents"`
}

// Validate reports every problem with the seeds.
func (s Seeds) Validate() error {
	var errs colour.ValidationErrors

	if strings.TrimSpace(s.Brand.Colour) == "" {
		errs = append(errs, &colour.FieldError{Field: "brand.colour", Err: errors.New("required")})
	} else if _, err := colour.ParseColour(s.Brand.Colour); err != nil {
		errs = append(errs, &colour.FieldError{Field: "brand.colour", Err: err})
	}

	if s.Neutral.Colour != "" {
		if _, err := colour.ParseColour(s.Neutral.Colour); err != nil {
			errs = append(errs, &colour.FieldError{Field: "neutral.colour", Err: err})
		}
	}

	reserved := append([]string{BrandPalette, NeutralPalette, s.brandName(), s.neutralName()}, StatusNames()...)
	seen := map[string]bool{}
	for i, a := range s.Accents {
		field := fmt.Sprintf("accents[%d]", i)
		name := strings.TrimSpace(a.Name)
		switch {
		case name == "":
			errs = append(errs, &colour.FieldError{Field: field + ".name", Err: errors.New("required")})
		case lo.Contains(reserved, name):
			errs = append(errs, &colour.FieldError{Field: field + ".name", Err: fmt.Errorf("%q is reserved", name)})
		case seen[name]:
			errs = append(errs, &colour.FieldError{Field: field + ".name", Err: fmt.Errorf("duplicate accent %q", name)})
		}
		seen[name] = true

		if _, err := colour.ParseColour(a.Colour); err != nil {
			errs = append(errs, &colour.FieldError{Field: field + ".colour", Err: err})
		}
	}

	return errs.Err()
}

func (s Seeds) brandName() string {
	return lo.CoalesceOrEmpty(strings.TrimSpace(s.Brand.Name), BrandPalette)
}

func (s Seeds) neutralName() string {
	return lo.CoalesceOrEmpty(strings.TrimSpace(s.Neutral.Name), NeutralPalette)
}

// neutralSeed returns the neutral seed colour, deriving a low-chroma tint of
// the brand hue when none was given.
func (s Seeds) neutralSeed(brand colour.OKLCH) (colour.OKLCH, error) {
	if s.Neutral.Colour == "" {
		return colour.OKLCH{L: brand.L, C: neutralChroma, H: brand.H}, nil
	}
	return ramp.SeedFromString(s.Neutral.Colour)
}

// GenerationParams are the global knobs applied to every palette of a build.
type GenerationParams struct {
	// Steps overrides the preset's step count. Zero keeps the preset's own.
	Steps int `json:"steps" mapstructure:"steps"`
	// Preset names the ramp template every palette is generated with.
	Preset    string         `json:"preset" mapstructure:"preset"`
	Direction ramp.Direction `json:"direction" mapstructure:"direction"`
	// Harmony lists the relationships derived from every chromatic seed.
	Harmony  []harmony.Type `json:"harmony,omitempty" mapstructure:"harmony"`
	HueDrift float64        `json:"hueDrift" mapstructure:"hue-drift"`
	// Contrast is the target every text role is verified against.
	Contrast colour.ContrastContext `json:"contrast" mapstructure:"contrast"`
	// Status adds the danger, warning, success, info and notification
	// palettes.
	Status bool `json:"status" mapstructure:"status"`
}

// DefaultGenerationParams returns a light-to-dark build with the default
// 12-step preset, verified at WCAG AA, with status palettes.
func DefaultGenerationParams() GenerationParams {
	return GenerationParams{
		Preset:    "default",
		Direction: ramp.LightToDark,
		Contrast:  colour.DefaultContrastContext(),
		Status:    true,
	}
}

// Validate reports every problem with the parameters, including options the
// chosen preset cannot satisfy.
func (p GenerationParams) Validate() error {
	var errs colour.ValidationErrors

	if p.Steps != 0 && p.Steps < 2 {
		errs = append(errs, &colour.RangeError{Field: "steps", Value: float64(p.Steps), Want: "0 or >= 2"})
	}

	if _, err := ramp.Preset(p.Preset); err != nil {
		errs = append(errs, &colour.FieldError{Field: "preset", Err: err})
	} else if _, err := p.RampOptions(); err != nil {
		errs = append(errs, &colour.FieldError{Field: "preset", Err: err})
	}

	for i, t := range p.Harmony {
		if _, err := harmony.Offsets(t); err != nil {
			errs = append(errs, &colour.FieldError{Field: fmt.Sprintf("harmony[%d]", i), Err: err})
		}
	}
	for _, dup := range lo.FindDuplicates(p.Harmony) {
		errs = append(errs, &colour.FieldError{Field: "harmony", Err: fmt.Errorf("%s listed more than once", dup)})
	}

	if math.IsNaN(p.HueDrift) || math.IsInf(p.HueDrift, 0) {
		errs = append(errs, &colour.RangeError{Field: "hueDrift", Value: p.HueDrift, Want: "a finite angle"})
	}
	if err := p.Contrast.Validate(); err != nil {
		errs = append(errs, &colour.FieldError{Field: "contrast", Err: err})
	}

	return errs.Err()
}

// RampOptions resolves the preset and applies the parameter overrides to it.
func (p GenerationParams) RampOptions() (ramp.Options, error) {
	tmpl, err := ramp.Preset(p.Preset)
	if err != nil {
		return ramp.Options{}, err
	}
	opts := tmpl.Options

	if p.Steps != 0 && p.Steps != opts.Steps {
		if len(opts.Stops) > 0 {
			return ramp.Options{}, fmt.Errorf("preset %q has fixed %d-step stops, cannot generate %d steps", tmpl.Name, opts.Steps, p.Steps)
		}
		opts.Steps = p.Steps
	}
	opts.Direction = p.Direction
	opts.HueDrift = p.HueDrift

	if err := opts.Validate(); err != nil {
		return ramp.Options{}, err
	}
	return opts, nil
}
