package cmd

import (
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/saltydk/fplot/config"
	"github.com/saltydk/fplot/controller"
	"github.com/saltydk/fplot/figure"
	"github.com/saltydk/fplot/session"
	"github.com/saltydk/fplot/ui/desktop"
)

var guiCmd = &cobra.Command{
	Use:   "gui [SESSION]",
	Short: "Open the plotting window",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := loadRows(args)
		if err != nil {
			return err
		}
		loaded := len(rows) > 0
		if !loaded {
			rows = []string{""}
		}

		d := desktop.New(app.NewWithID("io.github.saltydk.fplot"), figure.FromConfig(config.Config))
		ctrl := controller.New(session.NewExpressionSet(rows...), renderer(cmd), d)
		d.Bind(ctrl)

		if loaded {
			ctrl.Render()
		}

		d.ShowAndRun()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guiCmd)
	addRenderFlags(guiCmd)
}
