package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/saltydk/fplot/config"
	"github.com/saltydk/fplot/controller"
	"github.com/saltydk/fplot/figure"
	"github.com/saltydk/fplot/session"
	"github.com/saltydk/fplot/ui/terminal"
)

var flagFigure string

var shellCmd = &cobra.Command{
	Use:   "shell [SESSION]",
	Short: "Edit and plot expressions from an interactive prompt",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := loadRows(args)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			rows = []string{""}
		}

		term := terminal.New(os.Stdin, os.Stdout, flagFigure, figure.FromConfig(config.Config))
		ctrl := controller.New(session.NewExpressionSet(rows...), renderer(cmd), term)

		term.Rows(ctrl.Rows())
		return term.Run(ctrl)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)

	shellCmd.Flags().StringVarP(&flagFigure, "figure", "f", "plot.png", "Where plots are written (.png or .svg)")
	addRenderFlags(shellCmd)
}
