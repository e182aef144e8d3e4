package cmd

import (
	"github.com/lugassawan/lintset/internal/emit"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(printCmd)
	addComposeFlags(printCmd)
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the composed ESLint configuration to stdout",
	Long:  "Composes the configuration exactly as generate would and prints it in the selected format without touching any file. The package-json format prints the eslintConfig value.",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openProject(cmd)
		if err != nil {
			return err
		}
		format, _, err := p.target(cmd)
		if err != nil {
			return err
		}
		f, _ := p.compose()
		return emit.Encode(cmd.OutOrStdout(), f, format)
	},
}
