package cli

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/harmony"
	"github.com/jmylchreest/tonal/internal/ramp"
)

// Flag values that parse enumerations at flag time, so bad input is
// reported by cobra with the flag name attached.

type directionValue struct{ d *ramp.Direction }

var _ pflag.Value = directionValue{}

func (v directionValue) String() string {
	if v.d == nil {
		return ramp.LightToDark.String()
	}
	return v.d.String()
}

func (v directionValue) Set(s string) error {
	d, err := ramp.ParseDirection(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

func (directionValue) Type() string { return "direction" }

type algorithmValue struct{ a *colour.Algorithm }

var _ pflag.Value = algorithmValue{}

func (v algorithmValue) String() string {
	if v.a == nil {
		return colour.AlgorithmWCAG.String()
	}
	return v.a.String()
}

func (v algorithmValue) Set(s string) error {
	a, err := colour.ParseAlgorithm(s)
	if err != nil {
		return err
	}
	*v.a = a
	return nil
}

func (algorithmValue) Type() string { return "algorithm" }

type levelValue struct{ r *colour.Rating }

var _ pflag.Value = levelValue{}

func (v levelValue) String() string {
	if v.r == nil {
		return string(colour.RatingAA)
	}
	return string(*v.r)
}

func (v levelValue) Set(s string) error {
	r, err := colour.ParseLevel(s)
	if err != nil {
		return err
	}
	*v.r = r
	return nil
}

func (levelValue) Type() string { return "level" }

// harmonyValue collects one or more harmony types, comma separated or
// repeated. It reports itself as a string slice so viper reads it back as a
// list when the flag is bound to a config key.
type harmonyValue struct{ types *[]harmony.Type }

var _ pflag.SliceValue = harmonyValue{}

func (v harmonyValue) String() string {
	if v.types == nil {
		return ""
	}
	return strings.Join(v.GetSlice(), ",")
}

func (v harmonyValue) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		t, err := harmony.ParseType(part)
		if err != nil {
			return err
		}
		*v.types = append(*v.types, t)
	}
	return nil
}

func (harmonyValue) Type() string { return "stringSlice" }

func (v harmonyValue) Append(s string) error { return v.Set(s) }

func (v harmonyValue) Replace(vals []string) error {
	*v.types = nil
	for _, s := range vals {
		if err := v.Set(s); err != nil {
			return err
		}
	}
	return nil
}

func (v harmonyValue) GetSlice() []string {
	out := make([]string, len(*v.types))
	for i, t := range *v.types {
		out[i] = t.String()
	}
	return out
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// harmonyTypeValue holds a single harmony type.
type harmonyTypeValue struct{ t *harmony.Type }

var _ pflag.Value = harmonyTypeValue{}

func (v harmonyTypeValue) String() string {
	if v.t == nil {
		return harmony.Complementary.String()
	}
	return v.t.String()
}

func (v harmonyTypeValue) Set(s string) error {
	t, err := harmony.ParseType(s)
	if err != nil {
		return err
	}
	*v.t = t
	return nil
}

func (harmonyTypeValue) Type() string { return "type" }
