package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lugassawan/lintset/internal/explain"
	"github.com/lugassawan/lintset/internal/output"
	"github.com/lugassawan/lintset/internal/ruleset"
	"github.com/lugassawan/lintset/internal/termcolor"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(explainCmd)
	explainCmd.Flags().StringP(flagMode, "m", "", "lint mode: development, testing, production")
	explainCmd.Flags().StringArray(flagAssume, nil, "pin a package version instead of probing node_modules (pkg=version)")
}

var explainCmd = &cobra.Command{
	Use:   "explain <file>",
	Short: "Show the rules that apply to a file",
	Long:  "Composes the configuration and resolves the effective rules for a file: the top-level rules with every matching override applied in order.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openProject(cmd)
		if err != nil {
			return err
		}
		f, _ := p.compose()

		file := args[0]
		if filepath.IsAbs(file) {
			rel, err := filepath.Rel(p.Dir, file)
			if err != nil || strings.HasPrefix(rel, "..") {
				return fmt.Errorf("%s is outside %s", file, p.Dir)
			}
			file = rel
		}
		res := explain.Resolve(f, file)

		if output.IsJSON(cmd) {
			return output.WriteJSON(cmd.OutOrStdout(), version, "explain", res)
		}
		renderExplain(cmd, res)
		return nil
	},
}

func renderExplain(cmd *cobra.Command, res explain.Result) {
	pt := painter(cmd)
	w := cmd.OutOrStdout()

	if len(res.Rules) == 0 {
		fmt.Fprintf(w, "No rules apply to %s\n", res.File)
		return
	}

	matched := "none"
	if len(res.Overrides) > 0 {
		idx := make([]string, len(res.Overrides))
		for i, o := range res.Overrides {
			idx[i] = strconv.Itoa(o)
		}
		matched = strings.Join(idx, ", ")
	}
	fmt.Fprintf(w, "%s: %d rules, overrides matched: %s\n\n", pt.Paint(res.File, termcolor.Bold), len(res.Rules), matched)

	tbl := termcolor.NewTable(2)
	tbl.SetHeader(
		pt.Paint("RULE", termcolor.Bold),
		pt.Paint("SEVERITY", termcolor.Bold),
		pt.Paint("SOURCE", termcolor.Bold),
		pt.Paint("OPTIONS", termcolor.Bold),
	)
	for _, name := range res.Names() {
		entry := res.Rules[name]
		sev := ruleset.SeverityOf(entry)
		tbl.AddRow(name, pt.Paint(string(sev), severityColor(sev)), res.Sources[name], ruleOptions(entry))
	}
	tbl.Render(w)
}

// ruleOptions renders the options of a rule entry as compact JSON.
func ruleOptions(entry any) string {
	list, ok := entry.([]any)
	if !ok || len(list) < 2 {
		return ""
	}
	data, err := json.Marshal(list[1:])
	if err != nil {
		return ""
	}
	return string(data)
}
