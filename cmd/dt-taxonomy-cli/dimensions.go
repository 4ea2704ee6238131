package cmd

import (
	"github.com/spf13/cobra"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/ui"
)

var dimensionsCmd = &cobra.Command{
	Use:   "dimensions",
	Short: "List the taxonomy dimensions and their allowed values",
	Long:  "Print every dimension key with its allowed value keys and labels. Either form is accepted by --set and in taxonomy documents.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ui.PrintDimensions(cmd.OutOrStdout())
	},
}
