package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivlev/keytween/internal/easing"
)

var easingsCmd = &cobra.Command{
	Use:   "easings",
	Short: "List the easing names a tween accepts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range easing.Types() {
			fmt.Fprintln(cmd.OutOrStdout(), t)
		}
	},
}
