package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/builder"
	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/harmony"
)

func newBuildCmd() *cobra.Command {
	var (
		configPath   string
		harmonies    []harmony.Type
		overrideArgs []string
		showPalettes bool
		asJSON       bool
		noSwatch     bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a themed palette set with light and dark roles",
		Long: `Build every palette for a theme and map them onto light and dark semantic
roles, checking each text role against its background.

Inputs come from a build file (YAML, JSON or TOML; ./tonal.yaml by default),
TONAL_* environment variables and flags, in increasing order of precedence.

Overrides replace a resolved role colour after generation and take the form
mode:role=colour, for example light:background.canvas=#fdfdfd.`,
		Example: `  tonal build --brand "#0090ff"
  tonal build -c theme.yaml --json
  tonal build --brand tomato --harmony complementary --palettes
  TONAL_PARAMS_PRESET=radix tonal build --brand "#7c3aed"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd)
			status := progress(cmd)

			loader := config.NewLoader(afero.NewOsFs())
			for key, name := range map[string]string{
				config.KeyBrand:     "brand",
				config.KeyBrandName: "brand-name",
				config.KeyNeutral:   "neutral",
				config.KeySteps:     "steps",
				config.KeyPreset:    "preset",
				config.KeyDirection: "direction",
				config.KeyHarmony:   "harmony",
				config.KeyHueDrift:  "hue-drift",
				config.KeyStatus:    "status",
				config.KeyAlgorithm: "algorithm",
				config.KeyTextSize:  "text-size",
				config.KeyLevel:     "level",
				config.KeyMinLc:     "min-lc",
			} {
				loader.BindFlag(key, cmd.Flags().Lookup(name))
			}

			b, err := loader.Load(configPath)
			if err != nil {
				return err
			}
			for _, arg := range overrideArgs {
				o, err := parseOverride(arg)
				if err != nil {
					return err
				}
				b.Overrides = append(b.Overrides, o)
			}

			fmt.Fprintf(status, "✓ Inputs: brand %s, preset %s\n", b.Seeds.Brand.Colour, b.Params.Preset)
			if configPath != "" {
				fmt.Fprintf(status, "  └─ Config: %s\n", configPath)
			}
			if len(b.Params.Harmony) > 0 {
				fmt.Fprintf(status, "  └─ Harmony: %s\n", strings.Join(lo.Map(b.Params.Harmony, func(t harmony.Type, _ int) string {
					return t.String()
				}), ", "))
			}

			res, err := builder.NewBuilder().
				WithLogger(logger).
				WithOverrides(b.Overrides...).
				Build(b.Seeds, b.Params)
			if err != nil {
				return err
			}

			fmt.Fprintf(status, "✓ Generated %d palettes (%d steps each)\n", len(res.Palettes), res.Palettes[0].Len())
			if len(b.Overrides) > 0 {
				fmt.Fprintf(status, "  └─ Applied %d override(s)\n", len(b.Overrides))
			}
			if failures := res.Failures(); len(failures) > 0 {
				fmt.Fprintf(status, "⚠ %d of %d contrast checks failed\n", len(failures), len(res.Contrast))
				for _, f := range failures {
					fmt.Fprintf(status, "  └─ %s %s on %s: %.2f:1, Lc %.1f\n", f.Mode, f.Role, f.On, f.Result.Ratio, f.Result.Lc)
				}
			} else {
				fmt.Fprintf(status, "✓ All %d contrast checks passed\n", len(res.Contrast))
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return writeBuildTables(cmd, res, showPalettes, noSwatch)
		},
	}

	def := builder.DefaultGenerationParams()
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "build file (default ./tonal.{yaml,json,toml})")
	cmd.Flags().String("brand", "", "brand seed colour")
	cmd.Flags().String("brand-name", "", "brand palette name")
	cmd.Flags().String("neutral", "", "neutral seed colour (derived from brand when unset)")
	cmd.Flags().IntP("steps", "s", def.Steps, "steps per palette (0 uses the preset's)")
	cmd.Flags().StringP("preset", "p", def.Preset, "ramp preset (see 'tonal presets')")
	cmd.Flags().String("direction", def.Direction.String(), "step order (light-to-dark, dark-to-light)")
	cmd.Flags().Var(harmonyValue{&harmonies}, "harmony", "harmony palettes to derive from each chromatic seed")
	cmd.Flags().Float64("hue-drift", def.HueDrift, "hue rotation across each ramp, in degrees")
	cmd.Flags().Bool("status", def.Status, "include danger, warning, success, info and notification palettes")
	cmd.Flags().String("algorithm", def.Contrast.Algorithm.String(), "contrast algorithm (wcag, apca)")
	cmd.Flags().String("text-size", def.Contrast.TextSize.String(), "text size the WCAG level applies to (normal, large)")
	cmd.Flags().String("level", string(def.Contrast.Level), "WCAG level text roles must meet (AA, AAA)")
	cmd.Flags().Float64("min-lc", def.Contrast.MinLc, "minimum APCA |Lc| for text roles")
	cmd.Flags().StringArrayVar(&overrideArgs, "override", nil, "override a role colour (mode:role=colour)")
	cmd.Flags().BoolVar(&showPalettes, "palettes", false, "also print every palette")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output the full build as JSON")
	cmd.Flags().BoolVar(&noSwatch, "no-swatch", false, "disable colour swatches")

	return cmd
}

// parseOverride parses "mode:role=colour".
func parseOverride(s string) (builder.Override, error) {
	target, value, ok := strings.Cut(s, "=")
	if !ok {
		return builder.Override{}, fmt.Errorf("invalid override %q (want mode:role=colour)", s)
	}
	mode, role, ok := strings.Cut(target, ":")
	if !ok {
		return builder.Override{}, fmt.Errorf("invalid override %q (want mode:role=colour)", s)
	}
	o, err := builder.NewOverride(role, mode, value)
	if err != nil {
		return builder.Override{}, fmt.Errorf("invalid override %q: %w", s, err)
	}
	return o, nil
}

func writeBuildTables(cmd *cobra.Command, res *builder.Result, showPalettes, noSwatch bool) error {
	out := cmd.OutOrStdout()
	sw := newSwatcher(out, noSwatch)

	if showPalettes {
		for _, p := range res.Palettes {
			table := sw.table([]string{p.Name, ""})
			for i, step := range p.All() {
				table.AddRow([]string{fmt.Sprintf("%2d", i), strings.TrimSpace(sw.swatch(step.Hex) + " " + step.Hex)})
			}
			fmt.Fprintln(out, table.Render())
		}
	}

	light, dark := res.Semantic[builder.Light], res.Semantic[builder.Dark]
	table := sw.table([]string{"Role", "Light", "", "Dark", ""})
	for _, role := range light.Roles() {
		lightHex, _ := res.Resolved.Get(role, builder.Light)
		darkHex, _ := res.Resolved.Get(role, builder.Dark)
		table.AddRow([]string{
			role,
			strings.TrimSpace(sw.swatch(lightHex) + " " + lightHex),
			light[role].String(),
			strings.TrimSpace(sw.swatch(darkHex) + " " + darkHex),
			dark[role].String(),
		})
	}
	_, err := fmt.Fprint(out, table.Render())
	return err
}
