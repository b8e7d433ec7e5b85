package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/builder"
	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/ramp"
)

type rampFlags struct {
	name       string
	preset     string
	steps      int
	direction  ramp.Direction
	hueDrift   float64
	alpha      bool
	background string
	asJSON     bool
	noSwatch   bool
}

func newRampCmd() *cobra.Command {
	f := rampFlags{direction: ramp.LightToDark}

	cmd := &cobra.Command{
		Use:   "ramp <seed>",
		Short: "Generate a colour ramp from a seed colour",
		Long: `Generate a perceptually even ramp from a seed colour.

The seed is a hex colour (#rgb, #rrggbb, with optional alpha) or a CSS colour
name. Steps are numbered from 1 and run from lightest to darkest unless
--direction dark-to-light is given.

With --alpha the ramp is emitted as translucent overlays that reproduce each
solid step when composited over --background.`,
		Example: `  tonal ramp "#0090ff"
  tonal ramp tomato --preset tailwind
  tonal ramp "#7c3aed" --steps 16 --hue-drift 20 --json
  tonal ramp teal --alpha --background "#111111"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRamp(cmd, args[0], f)
		},
	}

	cmd.Flags().StringVarP(&f.name, "name", "n", "ramp", "palette name")
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "default", "ramp preset (see 'tonal presets')")
	cmd.Flags().IntVarP(&f.steps, "steps", "s", 0, "number of steps (0 uses the preset's)")
	cmd.Flags().Var(directionValue{&f.direction}, "direction", "step order (light-to-dark, dark-to-light)")
	cmd.Flags().Float64Var(&f.hueDrift, "hue-drift", 0, "hue rotation from lightest to darkest step, in degrees")
	cmd.Flags().BoolVar(&f.alpha, "alpha", false, "emit translucent overlay steps")
	cmd.Flags().StringVar(&f.background, "background", "#ffffff", "background the alpha ramp is solved against")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&f.noSwatch, "no-swatch", false, "disable colour swatches")

	return cmd
}

func runRamp(cmd *cobra.Command, seedArg string, f rampFlags) error {
	logger := newLogger(cmd)

	seed, err := ramp.SeedFromString(seedArg)
	if err != nil {
		return err
	}

	params := builder.GenerationParams{
		Steps:     f.steps,
		Preset:    f.preset,
		Direction: f.direction,
		HueDrift:  f.hueDrift,
	}
	opts, err := params.RampOptions()
	if err != nil {
		return err
	}
	logger.Debug("generating ramp", "seed", seed.String(), "preset", f.preset, "steps", opts.Steps, "direction", opts.Direction)

	var palette ramp.Palette
	if f.alpha {
		bg, err := colour.ParseColour(f.background)
		if err != nil {
			return fmt.Errorf("invalid background: %w", err)
		}
		palette, err = ramp.GenerateAlphaRamp(f.name, seed, opts, bg)
		if err != nil {
			return err
		}
	} else {
		palette, err = ramp.GenerateRamp(f.name, seed, opts)
		if err != nil {
			return err
		}
	}

	if f.asJSON {
		return writeJSON(cmd.OutOrStdout(), palette)
	}
	return writePaletteTable(cmd, palette, f.alpha, f.noSwatch)
}

func writePaletteTable(cmd *cobra.Command, p ramp.Palette, withAlpha, noSwatch bool) error {
	sw := newSwatcher(cmd.OutOrStdout(), noSwatch)

	headers := []string{"Step", "Hex", "L", "C", "H"}
	if withAlpha {
		headers = append(headers, "Alpha")
	}
	table := sw.table(sw.headers(headers...))

	for i, step := range p.All() {
		cells := []string{
			strconv.Itoa(i),
			step.Hex,
			strconv.FormatFloat(step.OKLCH.L, 'f', 3, 64),
			strconv.FormatFloat(step.OKLCH.C, 'f', 3, 64),
			strconv.FormatFloat(step.OKLCH.H, 'f', 1, 64),
		}
		if withAlpha {
			cells = append(cells, strconv.FormatFloat(step.Alpha, 'f', 3, 64))
		}
		table.AddRow(sw.row(step.Hex, cells...))
	}

	_, err := fmt.Fprint(cmd.OutOrStdout(), table.Render())
	return err
}
