// Package builder turns seeds and generation parameters into a complete set
// of palettes and the light and dark semantic role mappings that point into
// them.
//
// A build is a pure function of its inputs. The Builder only carries a
// logger and overrides; it holds no state between calls.
package builder

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/samber/lo"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/harmony"
	"github.com/jmylchreest/tonal/internal/ramp"
)

// Result is the output of one build.
type Result struct {
	// Palettes in build order: brand and its harmony members, each accent
	// and its members, neutral, then status palettes.
	Palettes []ramp.Palette `json:"palettes"`
	// Semantic holds the generated role mapping per mode, before overrides.
	Semantic map[Mode]SemanticMap `json:"semantic"`
	// Resolved holds the final colours with overrides applied.
	Resolved Resolved `json:"resolved"`
	// Contrast is the verification report for every text role.
	Contrast []ContrastCheck `json:"contrast"`
}

// Palette returns the named palette.
func (r *Result) Palette(name string) (ramp.Palette, bool) {
	return lo.Find(r.Palettes, func(p ramp.Palette) bool { return p.Name == name })
}

// Failures returns the contrast checks that did not pass.
func (r *Result) Failures() []ContrastCheck {
	return lo.Filter(r.Contrast, func(c ContrastCheck, _ int) bool { return !c.Result.Pass })
}

// Builder provides a fluent interface for configuring builds.
type Builder struct {
	logger    hclog.Logger
	overrides []Override
}

// NewBuilder creates a Builder that logs nothing and applies no overrides.
func NewBuilder() *Builder {
	return &Builder{
		logger: hclog.NewNullLogger(),
	}
}

// WithLogger sets the logger used to report build progress.
func (b *Builder) WithLogger(logger hclog.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// WithOverrides appends overrides applied after generation.
func (b *Builder) WithOverrides(overrides ...Override) *Builder {
	b.overrides = append(b.overrides, overrides...)
	return b
}

// Build generates palettes with the default Builder.
func Build(seeds Seeds, params GenerationParams) (*Result, error) {
	return NewBuilder().Build(seeds, params)
}

// Build validates the inputs, generates every palette, resolves both modes
// and verifies contrast. Overrides are applied last.
func (b *Builder) Build(seeds Seeds, params GenerationParams) (*Result, error) {
	if err := seeds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seeds: %w", err)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation params: %w", err)
	}
	opts, err := params.RampOptions()
	if err != nil {
		return nil, err
	}

	palettes, err := b.generatePalettes(seeds, params, opts)
	if err != nil {
		return nil, err
	}
	if dups := lo.FindDuplicates(lo.Map(palettes, func(p ramp.Palette, _ int) string { return p.Name })); len(dups) > 0 {
		return nil, fmt.Errorf("palette names collide: %v", dups)
	}

	r := &resolver{
		logger:   b.logger,
		palettes: lo.KeyBy(palettes, func(p ramp.Palette) string { return p.Name }),
		brand:    seeds.brandName(),
		neutral:  seeds.neutralName(),
		steps:    opts.Steps,
		dir:      opts.Direction,
		ctx:      params.Contrast,
		roles:    roleTable(params.Status),
	}

	semantic := make(map[Mode]SemanticMap, 2)
	generated := make(Resolved, 2)
	adjusted := map[Mode]map[string]bool{}
	for _, mode := range Modes() {
		m, hexes, moved, err := r.resolve(mode)
		if err != nil {
			return nil, err
		}
		semantic[mode] = m
		generated[mode] = hexes
		adjusted[mode] = moved
	}

	resolved, err := ApplyOverrides(generated, b.overrides)
	if err != nil {
		return nil, err
	}
	if len(b.overrides) > 0 {
		b.logger.Debug("applied overrides", "count", len(b.overrides))
	}

	report, err := Verify(resolved, params.Contrast, params.Status)
	if err != nil {
		return nil, err
	}
	for i := range report {
		report[i].Adjusted = adjusted[report[i].Mode][report[i].Role]
		if ref, ok := semantic[report[i].Mode][report[i].Role]; ok {
			report[i].Ref = ref
		}
		if !report[i].Result.Pass {
			b.logger.Warn("role fails contrast target",
				"role", report[i].Role, "mode", report[i].Mode,
				"foreground", report[i].Foreground, "background", report[i].Background)
		}
	}

	return &Result{
		Palettes: palettes,
		Semantic: semantic,
		Resolved: resolved,
		Contrast: report,
	}, nil
}

// generatePalettes builds every palette in result order.
func (b *Builder) generatePalettes(seeds Seeds, params GenerationParams, opts ramp.Options) ([]ramp.Palette, error) {
	var palettes []ramp.Palette

	brand, err := ramp.SeedFromString(seeds.Brand.Colour)
	if err != nil {
		return nil, err
	}
	brandPalettes, err := chromaticPalettes(seeds.brandName(), brand, params.Harmony, opts)
	if err != nil {
		return nil, err
	}
	palettes = append(palettes, brandPalettes...)

	for _, a := range seeds.Accents {
		seed, err := ramp.SeedFromString(a.Colour)
		if err != nil {
			return nil, err
		}
		accentPalettes, err := chromaticPalettes(a.Name, seed, params.Harmony, opts)
		if err != nil {
			return nil, err
		}
		palettes = append(palettes, accentPalettes...)
	}

	neutralSeed, err := seeds.neutralSeed(brand)
	if err != nil {
		return nil, err
	}
	// Neutrals follow their seed's chroma whatever the preset peak is.
	neutralOpts := opts
	neutralOpts.Chroma.Peak = 0
	neutral, err := ramp.GenerateRamp(seeds.neutralName(), neutralSeed, neutralOpts)
	if err != nil {
		return nil, fmt.Errorf("neutral palette: %w", err)
	}
	palettes = append(palettes, neutral)

	if params.Status {
		for _, name := range statusOrder {
			seed := colour.OKLCH{L: statusLightness, C: statusChroma, H: statusHues[name]}
			p, err := ramp.GenerateRamp(name, seed, opts)
			if err != nil {
				return nil, fmt.Errorf("%s palette: %w", name, err)
			}
			palettes = append(palettes, p)
		}
	}

	for _, p := range palettes {
		b.logger.Debug("generated palette", "name", p.Name, "steps", p.Len(), "seed", p.Seed.String())
	}
	return palettes, nil
}

// chromaticPalettes builds the seed's own palette followed by the members
// of each requested harmony.
func chromaticPalettes(name string, seed colour.OKLCH, types []harmony.Type, opts ramp.Options) ([]ramp.Palette, error) {
	base, err := ramp.GenerateRamp(name, seed, opts)
	if err != nil {
		return nil, fmt.Errorf("palette %s: %w", name, err)
	}
	out := []ramp.Palette{base}
	for _, t := range types {
		members, err := harmony.GeneratePalettes(name, seed, t, opts)
		if err != nil {
			return nil, fmt.Errorf("palette %s %s harmony: %w", name, t, err)
		}
		out = append(out, members[1:]...)
	}
	return out, nil
}
