package main

import (
	"os"

	"github.com/spf13/cobra"

	"quadlife/internal/app"
)

var (
	runCfg        = app.NewConfig()
	runConfigPath string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a pattern headless for a number of generations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if runConfigPath != "" {
			if err := runCfg.LoadFile(runConfigPath); err != nil {
				return err
			}
		}
		return app.Run(runCfg, os.Stdout, newLogger(runCfg.Verbose))
	},
}

func init() {
	runCfg.Bind(runCmd.Flags())
	runCmd.Flags().IntVarP(&runCfg.Generations, "generations", "g", runCfg.Generations, "number of generations to step")
	runCmd.Flags().IntVar(&runCfg.PrintEvery, "print-every", runCfg.PrintEvery, "draw the board every N generations (0 draws only the final board)")
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "YAML config file (values override flags)")
	rootCmd.AddCommand(runCmd)
}
