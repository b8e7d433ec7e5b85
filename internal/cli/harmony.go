package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/builder"
	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/harmony"
	"github.com/jmylchreest/tonal/internal/ramp"
)

// harmonyMember is one colour of a harmony as printed by the command.
type harmonyMember struct {
	Name string       `json:"name"`
	Hue  float64      `json:"hue"`
	Hex  string       `json:"hex"`
	Ramp []string     `json:"ramp,omitempty"`
	Seed colour.OKLCH `json:"seed"`
}

func newHarmonyCmd() *cobra.Command {
	var (
		harmonyType = harmony.Complementary
		preset      string
		withRamps   bool
		asJSON      bool
		noSwatch    bool
	)

	typeNames := lo.Map(harmony.Types(), func(t harmony.Type, _ int) string { return t.String() })

	cmd := &cobra.Command{
		Use:   "harmony <seed>",
		Short: "Derive harmonious hues from a seed colour",
		Long: `Derive a colour harmony from a seed colour by rotating its OKLCH hue.

Members keep the seed's lightness and chroma, clamped into sRGB. The seed is
always listed first.

Supported types: ` + strings.Join(typeNames, ", "),
		Example: `  tonal harmony "#0090ff" --type triadic
  tonal harmony tomato --type split-complementary --ramps`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := ramp.SeedFromString(args[0])
			if err != nil {
				return err
			}
			hues, err := harmony.Generate(seed.H, harmonyType)
			if err != nil {
				return err
			}
			names, err := harmony.MemberNames(harmonyType)
			if err != nil {
				return err
			}

			members := make([]harmonyMember, len(hues))
			for i, h := range hues {
				c := colour.OKLCH{L: seed.L, C: seed.C, H: h}
				members[i] = harmonyMember{Name: names[i], Hue: h, Hex: colour.OKLCHToHex(c), Seed: c}
			}

			if withRamps {
				opts, err := builder.GenerationParams{Preset: preset}.RampOptions()
				if err != nil {
					return err
				}
				palettes, err := harmony.GeneratePalettes("harmony", seed, harmonyType, opts)
				if err != nil {
					return err
				}
				for i := range members {
					members[i].Ramp = palettes[i].Hexes()
				}
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), members)
			}

			sw := newSwatcher(cmd.OutOrStdout(), noSwatch)
			headers := []string{"Member", "Hue", "Hex"}
			if withRamps {
				headers = append(headers, "Ramp")
			}
			table := sw.table(sw.headers(headers...))
			for _, m := range members {
				cells := []string{m.Name, strconv.FormatFloat(m.Hue, 'f', 1, 64), m.Hex}
				if withRamps {
					cells = append(cells, strings.Join(m.Ramp, " "))
				}
				table.AddRow(sw.row(m.Hex, cells...))
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return err
		},
	}

	cmd.Flags().VarP(harmonyTypeValue{&harmonyType}, "type", "t", "harmony type ("+strings.Join(typeNames, ", ")+")")
	cmd.Flags().StringVarP(&preset, "preset", "p", "default", "ramp preset used with --ramps")
	cmd.Flags().BoolVar(&withRamps, "ramps", false, "generate a full ramp for every member")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&noSwatch, "no-swatch", false, "disable colour swatches")

	return cmd
}
