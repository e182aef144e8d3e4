package cmd

import (
	"fmt"
	"runtime"

	"github.com/lugassawan/lintset/internal/output"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the lintset version",
	Annotations: map[string]string{annotationSkipConfig: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if output.IsJSON(cmd) {
			return output.WriteJSON(cmd.OutOrStdout(), version, "version", map[string]string{
				"version": version,
				"go":      runtime.Version(),
			})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "lintset %s (%s)\n", version, runtime.Version())
		return nil
	},
}
