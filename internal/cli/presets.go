package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/ramp"
)

func newPresetsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List ramp presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			templates := make([]ramp.PresetTemplate, 0, len(ramp.Presets()))
			for _, name := range ramp.Presets() {
				p, err := ramp.Preset(name)
				if err != nil {
					return err
				}
				templates = append(templates, p)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), templates)
			}

			table := NewTable([]string{"Name", "Steps", "Lightness", "Description"})
			table.SetColumnMaxWidth(3, 60)
			for _, p := range templates {
				lightness := fmt.Sprintf("%.3f-%.3f", p.Options.Lightness.Min, p.Options.Lightness.Max)
				if len(p.Options.Stops) > 0 {
					lightness = "fixed stops"
				}
				table.AddRow([]string{p.Name, strconv.Itoa(p.Options.Steps), lightness, p.Description})
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}
