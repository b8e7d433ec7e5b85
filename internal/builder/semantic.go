package builder

import (
	"fmt"
	"maps"
	"slices"
)

// Ref points at one step of a palette.
type Ref struct {
	Palette string `json:"palette"`
	Step    int    `json:"step"`
}

// String returns "palette.step", e.g. "neutral.12".
func (r Ref) String() string {
	return fmt.Sprintf("%s.%d", r.Palette, r.Step)
}

// SemanticMap maps role names to palette steps for one mode.
type SemanticMap map[string]Ref

// Roles returns the role names in sorted order.
func (m SemanticMap) Roles() []string {
	return slices.Sorted(maps.Keys(m))
}

// Resolved holds the final hex colour of every role in every mode.
type Resolved map[Mode]map[string]string

// Get returns the colour of role in mode.
func (r Resolved) Get(role string, mode Mode) (string, error) {
	roles, ok := r[mode]
	if !ok {
		return "", &UnknownRoleError{Role: role, Mode: mode}
	}
	hex, ok := roles[role]
	if !ok {
		return "", &UnknownRoleError{Role: role, Mode: mode}
	}
	return hex, nil
}

// Clone returns a deep copy.
func (r Resolved) Clone() Resolved {
	out := make(Resolved, len(r))
	for mode, roles := range r {
		out[mode] = maps.Clone(roles)
	}
	return out
}

// UnknownRoleError is returned when a role or mode is not part of a build.
type UnknownRoleError struct {
	Role string
	Mode Mode
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("unknown role %q in mode %q", e.Role, e.Mode)
}
