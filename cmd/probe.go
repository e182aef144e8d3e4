package cmd

import (
	"fmt"

	"github.com/lugassawan/lintset/internal/composer"
	"github.com/lugassawan/lintset/internal/output"
	"github.com/lugassawan/lintset/internal/termcolor"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(probeCmd)
	probeCmd.Flags().StringP(flagMode, "m", "", "lint mode: development, testing, production")
	probeCmd.Flags().StringArray(flagAssume, nil, "pin a package version instead of probing node_modules (pkg=version)")
}

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Show the detected version and status of each lint package",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openProject(cmd)
		if err != nil {
			return err
		}
		_, report := p.compose()

		if output.IsJSON(cmd) {
			return output.WriteJSON(cmd.OutOrStdout(), version, "probe", output.ProbeData{
				Dir:     p.Dir,
				Mode:    string(p.Mode),
				Enabled: report.Enabled(),
				Report:  report,
			})
		}

		renderReport(cmd, report)
		return nil
	},
}

func renderReport(cmd *cobra.Command, report composer.Report) {
	pt := painter(cmd)
	w := cmd.OutOrStdout()

	tbl := termcolor.NewTable(2)
	tbl.SetHeader(
		pt.Paint("NAME", termcolor.Bold),
		pt.Paint("PACKAGE", termcolor.Bold),
		pt.Paint("RANGE", termcolor.Bold),
		pt.Paint("VERSION", termcolor.Bold),
		pt.Paint("STATUS", termcolor.Bold),
	)
	for _, d := range report.Decisions {
		name := d.Name
		if d.Primary {
			name += "*"
		}
		v := d.Version
		if v == "" {
			v = "-"
		}
		tbl.AddRow(name, d.Package, d.Range, v, pt.Paint(string(d.Status), statusColor(d.Status)))
	}
	tbl.Render(w)

	if !report.Enabled() {
		fmt.Fprintln(w, pt.Paint("\n* eslint is required; no configuration will be produced", termcolor.Yellow))
	}
}
