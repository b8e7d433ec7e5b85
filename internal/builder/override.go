package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
)

// Override replaces the resolved colour of one role in one mode.
type Override struct {
	Role  string `json:"role" mapstructure:"role"`
	Mode  Mode   `json:"mode" mapstructure:"mode"`
	Value string `json:"value" mapstructure:"value"`
}

// NewOverride validates an override and normalises its mode and colour.
// Whether the role exists is only known once a build has run, so that is
// checked by ApplyOverrides.
func NewOverride(role, mode, value string) (Override, error) {
	var errs colour.ValidationErrors

	role = strings.TrimSpace(role)
	if role == "" {
		errs = append(errs, &colour.FieldError{Field: "role", Err: errors.New("required")})
	}
	m, err := ParseMode(mode)
	if err != nil {
		errs = append(errs, &colour.FieldError{Field: "mode", Err: err})
	}
	hex, err := colour.NormalizeColour(value)
	if err != nil {
		errs = append(errs, &colour.FieldError{Field: "value", Err: err})
	}

	if err := errs.Err(); err != nil {
		return Override{}, err
	}
	return Override{Role: role, Mode: m, Value: hex}, nil
}

// ApplyOverrides returns a copy of resolved with the overrides applied in
// order; later overrides of the same role win. resolved is not modified.
func ApplyOverrides(resolved Resolved, overrides []Override) (Resolved, error) {
	out := resolved.Clone()
	for i, o := range overrides {
		roles, ok := out[o.Mode]
		if !ok {
			return nil, &UnknownRoleError{Role: o.Role, Mode: o.Mode}
		}
		if _, ok := roles[o.Role]; !ok {
			return nil, &UnknownRoleError{Role: o.Role, Mode: o.Mode}
		}
		hex, err := colour.NormalizeColour(o.Value)
		if err != nil {
			return nil, fmt.Errorf("override %d (%s/%s): %w", i, o.Role, o.Mode, err)
		}
		roles[o.Role] = hex
	}
	return out, nil
}
