package cmd

import (
	"runtime"

	"github.com/sense-social/sense/cli/pkg/output"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show CLI version",
	RunE: func(cmd *cobra.Command, args []string) error {
		if output.IsStructured() {
			return output.Print(map[string]string{"version": Version, "go": runtime.Version()})
		}
		output.Println("Sense CLI v" + Version)
		return nil
	},
}
