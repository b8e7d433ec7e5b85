package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tonal/internal/builder"
	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/harmony"
	"github.com/jmylchreest/tonal/internal/ramp"
)

const yamlBuild = `
seeds:
  brand:
    name: acme
    colour: "#7c3aed"
  accents:
    - name: teal
      colour: teal
params:
  steps: 16
  preset: default
  direction: dark-to-light
  harmony: [complementary, split-complementary]
  hue-drift: 12.5
  status: false
  contrast:
    algorithm: apca
    min-lc: 75
overrides:
  - role: background.surface
    mode: light
    value: "#F0F0F0"
`

const jsonBuild = `{
  "seeds": {"brand": {"colour": "tomato"}},
  "params": {"preset": "radix", "contrast": {"level": "AAA", "text-size": "large"}}
}`

const tomlBuild = `
[seeds.brand]
colour = "#0090ff"

[params]
preset = "tailwind"
harmony = ["triadic"]
`

func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func TestLoadYAML(t *testing.T) {
	fs := memFs(t, map[string]string{"/work/build.yaml": yamlBuild})

	b, err := NewLoader(fs).Load("/work/build.yaml")
	require.NoError(t, err)

	assert.Equal(t, builder.Seeds{
		Brand:   builder.Seed{Name: "acme", Colour: "#7c3aed"},
		Accents: []builder.Seed{{Name: "teal", Colour: "teal"}},
	}, b.Seeds)

	assert.Equal(t, builder.GenerationParams{
		Steps:     16,
		Preset:    "default",
		Direction: ramp.DarkToLight,
		Harmony:   []harmony.Type{harmony.Complementary, harmony.SplitComplementary},
		HueDrift:  12.5,
		Contrast: colour.ContrastContext{
			Algorithm: colour.AlgorithmAPCA,
			TextSize:  colour.TextNormal,
			Level:     colour.RatingAA,
			MinLc:     75,
		},
		Status: false,
	}, b.Params)

	assert.Equal(t, []builder.Override{
		{Role: "background.surface", Mode: builder.Light, Value: "#f0f0f0"},
	}, b.Overrides)
}

func TestLoadFormats(t *testing.T) {
	fs := memFs(t, map[string]string{
		"/work/build.json": jsonBuild,
		"/work/build.toml": tomlBuild,
	})
	loader := NewLoader(fs)

	t.Run("json", func(t *testing.T) {
		b, err := loader.Load("/work/build.json")
		require.NoError(t, err)
		assert.Equal(t, "tomato", b.Seeds.Brand.Colour)
		assert.Equal(t, "radix", b.Params.Preset)
		assert.Equal(t, colour.RatingAAA, b.Params.Contrast.Level)
		assert.Equal(t, colour.TextLarge, b.Params.Contrast.TextSize)
		assert.True(t, b.Params.Status, "defaults fill keys the file leaves out")
	})

	t.Run("toml", func(t *testing.T) {
		b, err := loader.Load("/work/build.toml")
		require.NoError(t, err)
		assert.Equal(t, "#0090ff", b.Seeds.Brand.Colour)
		assert.Equal(t, "tailwind", b.Params.Preset)
		assert.Equal(t, []harmony.Type{harmony.Triadic}, b.Params.Harmony)
	})
}

func TestLoadDefaults(t *testing.T) {
	b, err := NewLoader(afero.NewMemMapFs()).Load("")
	require.NoError(t, err, "a missing default file is not an error")

	assert.Equal(t, builder.DefaultGenerationParams(), b.Params)
	assert.Empty(t, b.Seeds.Brand.Colour)
	assert.Empty(t, b.Overrides)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("TONAL_PARAMS_PRESET", "vivid")
	t.Setenv("TONAL_PARAMS_HUE_DRIFT", "-20")
	t.Setenv("TONAL_SEEDS_BRAND_COLOUR", "#e5484d")

	fs := memFs(t, map[string]string{"/work/build.yaml": yamlBuild})
	b, err := NewLoader(fs).Load("/work/build.yaml")
	require.NoError(t, err)

	assert.Equal(t, "vivid", b.Params.Preset)
	assert.InDelta(t, -20.0, b.Params.HueDrift, 1e-12)
	assert.Equal(t, "#e5484d", b.Seeds.Brand.Colour)
	assert.Equal(t, "acme", b.Seeds.Brand.Name, "unset variables leave file values alone")
}

func TestLoadFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("brand", "", "")
	flags.String("preset", "radix", "")
	require.NoError(t, flags.Parse([]string{"--brand", "royalblue"}))

	fs := memFs(t, map[string]string{"/work/build.yaml": yamlBuild})
	b, err := NewLoader(fs).
		BindFlag(KeyBrand, flags.Lookup("brand")).
		BindFlag(KeyPreset, flags.Lookup("preset")).
		Load("/work/build.yaml")
	require.NoError(t, err)

	assert.Equal(t, "royalblue", b.Seeds.Brand.Colour, "set flags win")
	assert.Equal(t, "default", b.Params.Preset, "unset flags do not mask the file")
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := NewLoader(afero.NewMemMapFs()).Load("/nowhere/build.yaml")
		assert.Error(t, err)
	})

	t.Run("bad values", func(t *testing.T) {
		fs := memFs(t, map[string]string{"/work/bad.yaml": `
seeds:
  brand:
    colour: "#000"
params:
  direction: sideways
  harmony: [triadic, pentadic]
  contrast:
    algorithm: delta-e
    level: A
overrides:
  - role: text.primary
    mode: dusk
    value: "#fff"
`})
		_, err := NewLoader(fs).Load("/work/bad.yaml")

		var verrs colour.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		// direction, pentadic, algorithm, level, override.
		assert.Len(t, verrs, 5)

		var unsupported *harmony.UnsupportedHarmonyError
		assert.ErrorAs(t, err, &unsupported)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		fs := memFs(t, map[string]string{"/work/broken.yaml": "seeds: [unterminated"})
		_, err := NewLoader(fs).Load("/work/broken.yaml")
		assert.Error(t, err)
	})
}

func TestLoadedBuildRuns(t *testing.T) {
	fs := memFs(t, map[string]string{"/work/build.yaml": yamlBuild})
	b, err := NewLoader(fs).Load("/work/build.yaml")
	require.NoError(t, err)

	res, err := builder.NewBuilder().WithOverrides(b.Overrides...).Build(b.Seeds, b.Params)
	require.NoError(t, err)
	assert.Equal(t, "#f0f0f0", res.Resolved[builder.Light]["background.surface"])
	assert.Equal(t, 16, res.Palettes[0].Len())
}

func TestEnvKeyReplacer(t *testing.T) {
	assert.Equal(t, "params_contrast_min_lc", EnvKeyReplacer.Replace(KeyMinLc))
}
