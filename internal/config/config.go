// Package config loads build files into builder inputs.
//
// A build file is YAML, JSON or TOML (chosen by extension) with three
// sections: seeds, params and overrides. Every params key and the seed
// colours can be overridden from the environment with a TONAL_ prefix, for
// example TONAL_PARAMS_PRESET=radix or TONAL_SEEDS_BRAND_COLOUR=#0090ff.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jmylchreest/tonal/internal/builder"
	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/harmony"
	"github.com/jmylchreest/tonal/internal/ramp"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TONAL"

// DefaultName is the file searched for when no path is given.
const DefaultName = "tonal"

// EnvKeyReplacer maps config keys onto environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// Config keys.
const (
	KeyBrand       = "seeds.brand.colour"
	KeyBrandName   = "seeds.brand.name"
	KeyNeutral     = "seeds.neutral.colour"
	KeyNeutralName = "seeds.neutral.name"
	KeySteps       = "params.steps"
	KeyPreset      = "params.preset"
	KeyDirection   = "params.direction"
	KeyHarmony     = "params.harmony"
	KeyHueDrift    = "params.hue-drift"
	KeyStatus      = "params.status"
	KeyAlgorithm   = "params.contrast.algorithm"
	KeyTextSize    = "params.contrast.text-size"
	KeyLevel       = "params.contrast.level"
	KeyMinLc       = "params.contrast.min-lc"
)

// Build holds the decoded inputs of one build. Seeds and params are checked
// again by the builder.
type Build struct {
	Seeds     builder.Seeds
	Params    builder.GenerationParams
	Overrides []builder.Override
}

// file is the on-disk layout. Enumerations stay strings until conversion so
// every bad value can be reported at once.
type file struct {
	Seeds     builder.Seeds  `mapstructure:"seeds"`
	Params    paramsFile     `mapstructure:"params"`
	Overrides []overrideFile `mapstructure:"overrides"`
}

type paramsFile struct {
	Steps     int          `mapstructure:"steps"`
	Preset    string       `mapstructure:"preset"`
	Direction string       `mapstructure:"direction"`
	Harmony   []string     `mapstructure:"harmony"`
	HueDrift  float64      `mapstructure:"hue-drift"`
	Status    bool         `mapstructure:"status"`
	Contrast  contrastFile `mapstructure:"contrast"`
}

type contrastFile struct {
	Algorithm string  `mapstructure:"algorithm"`
	TextSize  string  `mapstructure:"text-size"`
	Level     string  `mapstructure:"level"`
	MinLc     float64 `mapstructure:"min-lc"`
}

type overrideFile struct {
	Role  string `mapstructure:"role"`
	Mode  string `mapstructure:"mode"`
	Value string `mapstructure:"value"`
}

// Loader reads build files from a filesystem.
type Loader struct {
	fs    afero.Fs
	flags map[string]*pflag.Flag
}

// NewLoader creates a Loader over fs. A nil fs means the OS filesystem.
func NewLoader(fs afero.Fs) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{fs: fs, flags: map[string]*pflag.Flag{}}
}

// BindFlag ties a command-line flag to a config key. A flag that was set on
// the command line wins over the file and the environment.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) *Loader {
	if flag != nil {
		l.flags[key] = flag
	}
	return l
}

// Load reads path, or ./tonal.{yaml,json,toml} when path is empty, and
// converts it into builder inputs. A missing default file is not an error;
// the result then comes from defaults, environment and flags alone.
func (l *Loader) Load(path string) (*Build, error) {
	v := viper.New()
	v.SetFs(l.fs)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultName)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	v.AutomaticEnv()
	setDefaults(v)
	for _, key := range []string{KeyBrand, KeyBrandName, KeyNeutral, KeyNeutralName} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	for key, flag := range l.flags {
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var f file
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return f.build()
}

func setDefaults(v *viper.Viper) {
	d := builder.DefaultGenerationParams()
	v.SetDefault(KeySteps, d.Steps)
	v.SetDefault(KeyPreset, d.Preset)
	v.SetDefault(KeyDirection, d.Direction.String())
	v.SetDefault(KeyHarmony, []string{})
	v.SetDefault(KeyHueDrift, d.HueDrift)
	v.SetDefault(KeyStatus, d.Status)
	v.SetDefault(KeyAlgorithm, d.Contrast.Algorithm.String())
	v.SetDefault(KeyTextSize, d.Contrast.TextSize.String())
	v.SetDefault(KeyLevel, string(d.Contrast.Level))
	v.SetDefault(KeyMinLc, d.Contrast.MinLc)
}

// build converts the decoded file, reporting every bad value.
func (f file) build() (*Build, error) {
	var errs colour.ValidationErrors
	fail := func(field string, err error) {
		errs = append(errs, &colour.FieldError{Field: field, Err: err})
	}

	p := builder.GenerationParams{
		Steps:    f.Params.Steps,
		Preset:   f.Params.Preset,
		HueDrift: f.Params.HueDrift,
		Status:   f.Params.Status,
		Contrast: colour.ContrastContext{MinLc: f.Params.Contrast.MinLc},
	}

	var err error
	if p.Direction, err = ramp.ParseDirection(f.Params.Direction); err != nil {
		fail(KeyDirection, err)
	}
	for i, name := range f.Params.Harmony {
		t, err := harmony.ParseType(name)
		if err != nil {
			fail(fmt.Sprintf("%s[%d]", KeyHarmony, i), err)
			continue
		}
		p.Harmony = append(p.Harmony, t)
	}
	if p.Contrast.Algorithm, err = colour.ParseAlgorithm(f.Params.Contrast.Algorithm); err != nil {
		fail(KeyAlgorithm, err)
	}
	if p.Contrast.TextSize, err = colour.ParseTextSize(f.Params.Contrast.TextSize); err != nil {
		fail(KeyTextSize, err)
	}
	if p.Contrast.Level, err = colour.ParseLevel(f.Params.Contrast.Level); err != nil {
		fail(KeyLevel, err)
	}

	overrides := make([]builder.Override, 0, len(f.Overrides))
	for i, o := range f.Overrides {
		ov, err := builder.NewOverride(o.Role, o.Mode, o.Value)
		if err != nil {
			fail(fmt.Sprintf("overrides[%d]", i), err)
			continue
		}
		overrides = append(overrides, ov)
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}
	return &Build{Seeds: f.Seeds, Params: p, Overrides: overrides}, nil
}
