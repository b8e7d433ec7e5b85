package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tonal/internal/colour"
)

// contrastReport is the JSON form of a contrast check.
type contrastReport struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	colour.ContrastResult
	TextSize string        `json:"textSize"`
	Level    colour.Rating `json:"level"`
	MinLc    float64       `json:"minLc"`
	APCA     string        `json:"apcaRevision"`
}

func newContrastCmd() *cobra.Command {
	var (
		ctx      = colour.DefaultContrastContext()
		large    bool
		asJSON   bool
		noSwatch bool
	)

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Measure the contrast between two colours",
		Long: `Measure WCAG 2.x contrast ratio and APCA lightness contrast (Lc) between a
text colour and a background, and rate it against the chosen target.

Both measurements are always reported; --algorithm selects which one decides
pass or fail.`,
		Example: `  tonal contrast "#ffffff" "#0090ff"
  tonal contrast black gold --level AAA --large
  tonal contrast "#666" white --algorithm apca --min-lc 75`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := colour.ParseColour(args[0])
			if err != nil {
				return fmt.Errorf("invalid foreground: %w", err)
			}
			bg, err := colour.ParseColour(args[1])
			if err != nil {
				return fmt.Errorf("invalid background: %w", err)
			}
			if large {
				ctx.TextSize = colour.TextLarge
			}
			if err := ctx.Validate(); err != nil {
				return err
			}

			res := colour.CheckContrast(fg, bg, ctx)
			newLogger(cmd).Debug("checked contrast", "fg", fg.Hex(), "bg", bg.Hex(), "ratio", res.Ratio, "lc", res.Lc)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), contrastReport{
					Foreground:     fg.Hex(),
					Background:     bg.Hex(),
					ContrastResult: res,
					TextSize:       ctx.TextSize.String(),
					Level:          ctx.Level,
					MinLc:          ctx.MinLc,
					APCA:           colour.APCARevision,
				})
			}

			sw := newSwatcher(cmd.OutOrStdout(), noSwatch)
			out := cmd.OutOrStdout()
			verdict := "fail"
			if res.Pass {
				verdict = "pass"
			}
			target := fmt.Sprintf("WCAG %s, %s text", ctx.Level, ctx.TextSize)
			if ctx.Algorithm == colour.AlgorithmAPCA {
				target = fmt.Sprintf("APCA |Lc| >= %.0f", ctx.MinLc)
			}

			if sw.enabled {
				fmt.Fprintf(out, "%s\n", sw.sample("Sample text", fg.Hex(), bg.Hex()))
			}
			fmt.Fprintf(out, "Foreground:  %s\n", fg.Hex())
			fmt.Fprintf(out, "Background:  %s\n", bg.Hex())
			fmt.Fprintf(out, "WCAG ratio:  %.2f:1 (%s)\n", res.Ratio, colour.WCAGRating(res.Ratio, ctx.TextSize))
			fmt.Fprintf(out, "APCA Lc:     %.1f\n", res.Lc)
			_, err = fmt.Fprintf(out, "Result:      %s (%s)\n", verdict, target)
			return err
		},
	}

	cmd.Flags().Var(algorithmValue{&ctx.Algorithm}, "algorithm", "algorithm deciding pass or fail (wcag, apca)")
	cmd.Flags().Var(levelValue{&ctx.Level}, "level", "WCAG level to meet (AA, AAA)")
	cmd.Flags().BoolVar(&large, "large", false, "rate for large text (18pt, or 14pt bold)")
	cmd.Flags().Float64Var(&ctx.MinLc, "min-lc", colour.APCABodyText, "minimum APCA |Lc| to pass")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&noSwatch, "no-swatch", false, "disable colour swatches")

	return cmd
}

// bestTextReport is the JSON form of a best-text choice.
type bestTextReport struct {
	Background string              `json:"background"`
	Best       string              `json:"best"`
	Candidates []candidateContrast `json:"candidates"`
}

type candidateContrast struct {
	Hex   string  `json:"hex"`
	Ratio float64 `json:"ratio"`
	Lc    float64 `json:"lc"`
}

func newBestTextCmd() *cobra.Command {
	var (
		algo   = colour.AlgorithmWCAG
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "best-text <background> [candidates...]",
		Short: "Pick the most legible text colour for a background",
		Long: `Pick the candidate with the highest contrast against a background. Without
candidates, black and white are compared. The first candidate wins ties.`,
		Example: `  tonal best-text "#0090ff"
  tonal best-text gold "#1c2024" "#fcfcfd" navy --algorithm apca`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bg, err := colour.ParseColour(args[0])
			if err != nil {
				return fmt.Errorf("invalid background: %w", err)
			}

			candidates := []colour.RGB{colour.Black, colour.White}
			if len(args) > 1 {
				candidates = make([]colour.RGB, 0, len(args)-1)
				for _, arg := range args[1:] {
					c, err := colour.ParseColour(arg)
					if err != nil {
						return fmt.Errorf("invalid candidate: %w", err)
					}
					candidates = append(candidates, c)
				}
			}

			best, err := colour.BestTextColor(bg, candidates, algo)
			if err != nil {
				return err
			}

			if !asJSON {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), best.Hex())
				return err
			}

			report := bestTextReport{Background: bg.Hex(), Best: best.Hex()}
			for _, c := range candidates {
				report.Candidates = append(report.Candidates, candidateContrast{
					Hex:   c.Hex(),
					Ratio: colour.WCAGContrast(c, bg),
					Lc:    colour.APCAContrast(c, bg),
				})
			}
			return writeJSON(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().Var(algorithmValue{&algo}, "algorithm", "scoring algorithm (wcag, apca)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}
