package builder

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/samber/lo"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/ramp"
)

// ContrastCheck is the verification of one text role against the
// background it is read on.
type ContrastCheck struct {
	Role       string                `json:"role"`
	Mode       Mode                  `json:"mode"`
	On         string                `json:"on"`
	Foreground string                `json:"foreground"`
	Background string                `json:"background"`
	Result     colour.ContrastResult `json:"result"`
	// Ref is the generated step, when the role came from a build.
	Ref Ref `json:"ref"`
	// Adjusted is set when generation moved the role off its table step to
	// reach the target.
	Adjusted bool `json:"adjusted"`
}

// Verify checks every text role of resolved against its background role.
// It works on final colours, so it also covers overridden roles.
func Verify(resolved Resolved, ctx colour.ContrastContext, withStatus bool) ([]ContrastCheck, error) {
	var checks []ContrastCheck
	textRoles := lo.Filter(roleTable(withStatus), func(r roleDef, _ int) bool { return r.on != "" })

	for _, mode := range Modes() {
		for _, role := range textRoles {
			fgHex, err := resolved.Get(role.name, mode)
			if err != nil {
				return nil, err
			}
			bgHex, err := resolved.Get(role.on, mode)
			if err != nil {
				return nil, err
			}
			fg, err := colour.HexToRGB(fgHex)
			if err != nil {
				return nil, fmt.Errorf("role %s: %w", role.name, err)
			}
			bg, err := colour.HexToRGB(bgHex)
			if err != nil {
				return nil, fmt.Errorf("role %s: %w", role.on, err)
			}

			checks = append(checks, ContrastCheck{
				Role:       role.name,
				Mode:       mode,
				On:         role.on,
				Foreground: fgHex,
				Background: bgHex,
				Result:     colour.CheckContrast(fg, bg, ctx),
			})
		}
	}
	return checks, nil
}

// resolver maps roles onto the palettes of one build.
type resolver struct {
	logger   hclog.Logger
	palettes map[string]ramp.Palette
	brand    string
	neutral  string
	steps    int
	dir      ramp.Direction
	ctx      colour.ContrastContext
	roles    []roleDef
}

// resolve builds the semantic map of one mode. Roles without a background
// are placed first so text roles can be checked against them. It also
// reports which roles were moved to meet the contrast target.
func (r *resolver) resolve(mode Mode) (SemanticMap, map[string]string, map[string]bool, error) {
	m := SemanticMap{}
	hexes := map[string]string{}
	adjusted := map[string]bool{}

	set := func(role string, ref Ref) error {
		step, err := r.step(ref)
		if err != nil {
			return fmt.Errorf("role %s: %w", role, err)
		}
		m[role] = ref
		hexes[role] = step.Hex
		return nil
	}

	for _, role := range r.roles {
		if role.on != "" {
			continue
		}
		if err := set(role.name, r.tableRef(role, mode)); err != nil {
			return nil, nil, nil, err
		}
	}

	for _, role := range r.roles {
		if role.on == "" {
			continue
		}
		bgRef, ok := m[role.on]
		if !ok {
			return nil, nil, nil, fmt.Errorf("role %s is read on %s, which is not a background role", role.name, role.on)
		}
		bg, err := r.step(bgRef)
		if err != nil {
			return nil, nil, nil, err
		}

		var ref Ref
		if len(role.pick) > 0 {
			ref, err = r.pickRef(role, bg)
		} else {
			var moved bool
			ref, moved, err = r.walkRef(r.tableRef(role, mode), bg)
			if moved {
				adjusted[role.name] = true
				r.logger.Info("adjusted role for contrast", "role", role.name, "mode", mode,
					"from", r.tableRef(role, mode).String(), "to", ref.String())
			}
		}
		if err != nil {
			return nil, nil, nil, fmt.Errorf("role %s: %w", role.name, err)
		}
		if err := set(role.name, ref); err != nil {
			return nil, nil, nil, err
		}
	}

	return m, hexes, adjusted, nil
}

// tableRef places a role on its palette using the role table, rescaled to
// the build's step count and mirrored for dark-to-light palettes.
func (r *resolver) tableRef(role roleDef, mode Mode) Ref {
	return Ref{Palette: r.paletteFor(role), Step: r.emitted(role.step(mode))}
}

func (r *resolver) emitted(basisStep int) int {
	s := rescale(basisStep, r.steps)
	if r.dir == ramp.DarkToLight {
		s = r.steps + 1 - s
	}
	return s
}

func (r *resolver) paletteFor(role roleDef) string {
	switch role.kind {
	case kindBrand:
		return r.brand
	case kindStatus:
		return role.status
	default:
		return r.neutral
	}
}

func (r *resolver) step(ref Ref) (ramp.Step, error) {
	p, ok := r.palettes[ref.Palette]
	if !ok {
		return ramp.Step{}, fmt.Errorf("no palette named %q", ref.Palette)
	}
	return p.Step(ref.Step)
}

// pickRef chooses the candidate step with the best contrast against bg.
func (r *resolver) pickRef(role roleDef, bg ramp.Step) (Ref, error) {
	palette := r.paletteFor(role)
	refs := lo.Map(role.pick, func(s int, _ int) Ref { return Ref{Palette: palette, Step: r.emitted(s)} })

	candidates := make([]colour.RGB, len(refs))
	for i, ref := range refs {
		s, err := r.step(ref)
		if err != nil {
			return Ref{}, err
		}
		candidates[i] = stepRGB(s)
	}

	best, err := colour.BestTextColor(stepRGB(bg), candidates, r.ctx.Algorithm)
	if err != nil {
		return Ref{}, err
	}
	return refs[lo.IndexOf(candidates, best)], nil
}

// walkRef moves ref away from the background's lightness, one step at a
// time, until it meets the contrast target or the palette ends. The last
// step tried is returned even when it still fails.
func (r *resolver) walkRef(ref Ref, bg ramp.Step) (Ref, bool, error) {
	p, ok := r.palettes[ref.Palette]
	if !ok {
		return Ref{}, false, fmt.Errorf("no palette named %q", ref.Palette)
	}
	fg, err := p.Step(ref.Step)
	if err != nil {
		return Ref{}, false, err
	}

	// Emission order runs light to dark unless reversed.
	darker := 1
	if r.dir == ramp.DarkToLight {
		darker = -1
	}
	delta := darker
	if fg.OKLCH.L >= bg.OKLCH.L {
		delta = -darker
	}

	bgRGB := stepRGB(bg)
	start := ref.Step
	for {
		if colour.CheckContrast(stepRGB(fg), bgRGB, r.ctx).Pass {
			return ref, ref.Step != start, nil
		}
		next := ref.Step + delta
		if next < 1 || next > p.Len() {
			return ref, ref.Step != start, nil
		}
		ref.Step = next
		fg, _ = p.Step(next)
	}
}

// stepRGB returns the colour a step is emitted as, so checks here agree
// with Verify, which only sees hex.
func stepRGB(s ramp.Step) colour.RGB {
	rgb, err := colour.HexToRGB(s.Hex)
	if err != nil {
		return s.OKLCH.RGB()
	}
	return rgb
}
