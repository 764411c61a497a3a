package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quadlife/internal/pattern"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the built-in patterns",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range pattern.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}
