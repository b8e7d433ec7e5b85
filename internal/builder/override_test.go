package builder

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tonal/internal/colour"
)

func sampleResolved() Resolved {
	return Resolved{
		Light: {
			"background.surface": "#ffffff",
			"text.primary":       "#111111",
		},
		Dark: {
			"background.surface": "#111111",
			"text.primary":       "#eeeeee",
		},
	}
}

func TestApplyOverrides(t *testing.T) {
	base := sampleResolved()

	got, err := ApplyOverrides(base, []Override{
		{Role: "background.surface", Mode: Light, Value: "#f0f0f0"},
	})
	require.NoError(t, err)

	assert.Equal(t, "#f0f0f0", got[Light]["background.surface"])

	want := sampleResolved()
	want[Light]["background.surface"] = "#f0f0f0"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("only the overridden role should change (-want +got):\n%s", diff)
	}
	assert.Equal(t, "#ffffff", base[Light]["background.surface"], "input is not modified")
}

func TestApplyOverridesOrder(t *testing.T) {
	got, err := ApplyOverrides(sampleResolved(), []Override{
		{Role: "text.primary", Mode: Dark, Value: "#FFF"},
		{Role: "text.primary", Mode: Dark, Value: "tomato"},
	})
	require.NoError(t, err)
	assert.Equal(t, "#ff6347", got[Dark]["text.primary"], "later overrides win")

	got, err = ApplyOverrides(sampleResolved(), []Override{
		{Role: "background.surface", Mode: Light, Value: "#00000080"},
	})
	require.NoError(t, err)
	assert.Equal(t, "#00000080", got[Light]["background.surface"], "translucent overrides keep alpha")
}

func TestApplyOverridesErrors(t *testing.T) {
	tests := []struct {
		name     string
		override Override
	}{
		{name: "unknown role", override: Override{Role: "background.sky", Mode: Light, Value: "#fff"}},
		{name: "unknown mode", override: Override{Role: "text.primary", Mode: "dusk", Value: "#fff"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ApplyOverrides(sampleResolved(), []Override{tt.override})
			var unknown *UnknownRoleError
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, tt.override.Role, unknown.Role)
			assert.Equal(t, tt.override.Mode, unknown.Mode)
		})
	}

	_, err := ApplyOverrides(sampleResolved(), []Override{{Role: "text.primary", Mode: Light, Value: "#12"}})
	var perr *colour.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestNewOverride(t *testing.T) {
	o, err := NewOverride(" background.surface ", "Light", "#F0F0F0")
	require.NoError(t, err)
	assert.Equal(t, Override{Role: "background.surface", Mode: Light, Value: "#f0f0f0"}, o)

	_, err = NewOverride("", "dusk", "#zzzzzz")
	var verrs colour.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)

	var perr *colour.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestResolvedGet(t *testing.T) {
	r := sampleResolved()

	hex, err := r.Get("text.primary", Dark)
	require.NoError(t, err)
	assert.Equal(t, "#eeeeee", hex)

	_, err = r.Get("text.primary", "dusk")
	var unknown *UnknownRoleError
	assert.ErrorAs(t, err, &unknown)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" DARK ")
	require.NoError(t, err)
	assert.Equal(t, Dark, m)

	_, err = ParseMode("dusk")
	assert.Error(t, err)
}
