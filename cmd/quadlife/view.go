package main

import (
	"github.com/spf13/cobra"

	"quadlife/internal/app"
)

var viewCfg = app.NewConfig()

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive viewer (requires the ebiten build tag)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunGUI(viewCfg, newLogger(viewCfg.Verbose))
	},
}

func init() {
	viewCfg.Bind(viewCmd.Flags())
	viewCmd.Flags().IntVar(&viewCfg.ViewWidth, "width", viewCfg.ViewWidth, "viewport width in cells")
	viewCmd.Flags().IntVar(&viewCfg.ViewHeight, "height", viewCfg.ViewHeight, "viewport height in cells")
	viewCmd.Flags().IntVar(&viewCfg.Scale, "scale", viewCfg.Scale, "pixel scale multiplier")
	viewCmd.Flags().IntVar(&viewCfg.TPS, "tps", viewCfg.TPS, "generations per second")
	rootCmd.AddCommand(viewCmd)
}
