package ramp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetsValidate(t *testing.T) {
	names := Presets()
	assert.Equal(t, []string{"default", "material", "neutral", "radix", "tailwind", "vivid"}, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			p, err := Preset(name)
			require.NoError(t, err)
			assert.Equal(t, name, p.Name)
			assert.NotEmpty(t, p.Description)
			assert.NoError(t, p.Options.Validate())
		})
	}
}

func TestGeneratePresetRamp(t *testing.T) {
	seed := mustSeed(t, "#3b82f6")

	tests := []struct {
		template string
		steps    int
	}{
		{template: "default", steps: 12},
		{template: "radix", steps: 12},
		{template: "tailwind", steps: 11},
		{template: "material", steps: 13},
		{template: "neutral", steps: 12},
		{template: "vivid", steps: 12},
		{template: "  Radix ", steps: 12},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			p, err := GeneratePresetRamp(tt.template, seed)
			require.NoError(t, err)
			assert.Equal(t, tt.steps, p.Len())
			assertMonotonic(t, p, LightToDark)
		})
	}
}

func TestGeneratePresetRampStops(t *testing.T) {
	p, err := GeneratePresetRamp("material", mustSeed(t, "#6750a4"))
	require.NoError(t, err)

	assert.Equal(t, "material", p.Name)
	assert.Equal(t, "#ffffff", p.Steps[0].Hex, "tone 100 is white")
	assert.Equal(t, "#000000", p.Steps[p.Len()-1].Hex, "tone 0 is black")
}

func TestGeneratePresetRampNeutralChroma(t *testing.T) {
	p, err := GeneratePresetRamp("neutral", mustSeed(t, "#ff0000"))
	require.NoError(t, err)

	for _, s := range p.Steps {
		assert.LessOrEqual(t, s.OKLCH.C, 0.02+1e-12)
	}
}

func TestGeneratePresetRampUnknown(t *testing.T) {
	_, err := GeneratePresetRamp("unknown-template", mustSeed(t, "#3b82f6"))
	require.Error(t, err)

	var unknown *UnknownPresetError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "unknown-template", unknown.Name)
	assert.Contains(t, unknown.Available, "radix")
	assert.Contains(t, err.Error(), "tailwind")
}

func TestPresetReturnsCopy(t *testing.T) {
	a, err := Preset("radix")
	require.NoError(t, err)
	a.Options.Stops[0] = 0

	b, err := Preset("radix")
	require.NoError(t, err)
	assert.InDelta(t, 0.993, b.Options.Stops[0], 1e-12)
}
