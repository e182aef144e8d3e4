package cmd

import (
	"fmt"

	"github.com/lugassawan/lintset/internal/output"
	"github.com/lugassawan/lintset/internal/termcolor"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	addComposeFlags(checkCmd)
	checkCmd.Flags().StringP(flagOutput, "o", "", "path of the configuration to check")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the written configuration matches the installed packages",
	Long:  "Composes the configuration and compares it with the one on disk. Exits with status 1 when the file is missing or stale, so CI can catch upgrades that were not followed by generate.",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openProject(cmd)
		if err != nil {
			return err
		}
		format, path, err := p.target(cmd)
		if err != nil {
			return err
		}
		f, _ := p.compose()

		upToDate, missing, err := compareOnDisk(path, f, format)
		if err != nil {
			return err
		}

		if output.IsJSON(cmd) {
			if err := output.WriteJSON(cmd.OutOrStdout(), version, "check", output.CheckData{
				Path:     path,
				Format:   string(format),
				UpToDate: upToDate,
				Missing:  missing,
			}); err != nil {
				return err
			}
		} else {
			pt := painter(cmd)
			rel := displayPath(p.Dir, path)
			switch {
			case upToDate:
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", pt.Paint("ok", termcolor.Green), rel)
			case missing:
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s does not exist; run lintset generate\n", pt.Paint("missing", termcolor.Red), rel)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s differs from the installed packages; run lintset generate\n", pt.Paint("stale", termcolor.Red), rel)
			}
		}

		if !upToDate {
			return &output.SilentError{ExitCode: 1}
		}
		return nil
	},
}
