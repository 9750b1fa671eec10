package cmd

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/saltydk/fplot/config"
	"github.com/saltydk/fplot/figure"
	"github.com/saltydk/fplot/render"
)

var (
	flagExpressions []string
	flagOutput      string
	flagXMin        float64
	flagXMax        float64
	flagStep        float64
	flagTitle       string
	flagNoLegend    bool
	flagSkipInvalid bool
)

var renderCmd = &cobra.Command{
	Use:   "render [SESSION]",
	Short: "Render a session and/or expressions to a PNG or SVG file",
	Example: `  fplot render session.json -o plot.png
  fplot render -e "sin(x)" -e "x/4" -o plot.svg`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := loadRows(args)
		if err != nil {
			return err
		}
		rows = append(rows, flagExpressions...)

		r := renderer(cmd)
		res, err := r.Render(rows)
		if err != nil {
			log.WithError(err).Error("Failed rendering")
			return err
		}

		if res.Blank > 0 {
			log.Warn("Blank expressions were skipped")
		}

		if err := figure.WriteFile(flagOutput, res, figure.FromConfig(config.Config)); err != nil {
			log.WithError(err).Errorf("Failed writing %s", flagOutput)
			return err
		}

		log.Infof("Plotted %d series (%s points each) to %s",
			len(res.Series), humanize.Comma(int64(len(res.X))), flagOutput)
		return nil
	},
}

// renderer applies render flags given on the command line over the config.
func renderer(cmd *cobra.Command) *render.Renderer {
	r := render.FromConfig(config.Config)

	flags := cmd.Flags()
	if flags.Changed("x-min") {
		r.Domain.XMin = flagXMin
	}
	if flags.Changed("x-max") {
		r.Domain.XMax = flagXMax
	}
	if flags.Changed("step") {
		r.Domain.Step = flagStep
	}
	if flags.Changed("title") {
		r.Title = flagTitle
	}
	if flagNoLegend {
		r.Legend = false
	}
	if flagSkipInvalid {
		r.SkipInvalid = true
	}

	return r
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&flagXMin, "x-min", -20, "Start of the x range")
	cmd.Flags().Float64Var(&flagXMax, "x-max", 20, "End of the x range (exclusive)")
	cmd.Flags().Float64Var(&flagStep, "step", 0.01, "Sampling step")
	cmd.Flags().StringVar(&flagTitle, "title", "", "Figure title")
	cmd.Flags().BoolVar(&flagNoLegend, "no-legend", false, "Hide the legend")
	cmd.Flags().BoolVar(&flagSkipInvalid, "skip-invalid", false, "Skip expressions that fail instead of aborting")
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringArrayVarP(&flagExpressions, "expr", "e", nil, "Expression to plot (repeatable)")
	renderCmd.Flags().StringVarP(&flagOutput, "output", "o", "plot.png", "Output file (.png or .svg)")
	addRenderFlags(renderCmd)
}
