package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/lugassawan/lintset/internal/emit"
	"github.com/lugassawan/lintset/internal/hint"
	"github.com/lugassawan/lintset/internal/output"
	"github.com/lugassawan/lintset/internal/ruleset"
	"github.com/lugassawan/lintset/internal/schema"
	"github.com/lugassawan/lintset/internal/termcolor"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(generateCmd)
	addComposeFlags(generateCmd)
	generateCmd.Flags().StringP(flagOutput, "o", "", "output path (default depends on --format)")
	generateCmd.Flags().Bool(flagDryRun, false, "print the configuration instead of writing it")
}

// addComposeFlags registers the flags shared by every composing command.
func addComposeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagFormat, "f", "", "output format: json, yaml, package-json")
	cmd.Flags().StringP(flagMode, "m", "", "lint mode: development, testing, production (default: config, then NODE_ENV)")
	cmd.Flags().StringArray(flagAssume, nil, "pin a package version instead of probing node_modules (pkg=version)")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Compose and write the ESLint configuration",
	Long:  "Probes the installed lint packages, composes the rules their versions support, validates the result and writes it. The file is left untouched when it is already up to date.",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openProject(cmd)
		if err != nil {
			return err
		}
		format, path, err := p.target(cmd)
		if err != nil {
			return err
		}

		f, report := p.compose()
		if err := schema.Validate(f); err != nil {
			return err
		}

		dryRun, _ := cmd.Flags().GetBool(flagDryRun)
		data := output.GenerateData{
			Path:     path,
			Format:   string(format),
			Mode:     string(p.Mode),
			DryRun:   dryRun,
			Enabled:  report.Enabled(),
			Rules:    len(f.Rules()),
			Included: report.Included(),
			Report:   report,
		}

		if dryRun {
			if output.IsJSON(cmd) {
				doc, err := f.Normalize()
				if err != nil {
					return err
				}
				data.Config = doc
				return output.WriteJSON(cmd.OutOrStdout(), version, "generate", data)
			}
			return emit.Encode(cmd.OutOrStdout(), f, format)
		}

		changed, err := writeIfChanged(path, f, format)
		if err != nil {
			return err
		}
		data.Changed = changed

		if output.IsJSON(cmd) {
			return output.WriteJSON(cmd.OutOrStdout(), version, "generate", data)
		}

		printGenerateSummary(cmd, p.Dir, data)
		hint.New(cmd, painter(cmd)).
			Add(flagDryRun, "Print the configuration without writing").
			Add(flagMode, "Override the lint mode").
			Add(flagAssume, "Pin a package version (pkg=version)").
			Show()
		return nil
	},
}

// writeIfChanged writes f at path unless the file already holds the same
// configuration. Skipping identical writes keeps watch mode from retriggering
// on its own output.
func writeIfChanged(path string, f ruleset.Fragment, format emit.Format) (bool, error) {
	upToDate, _, err := compareOnDisk(path, f, format)
	if err != nil {
		return false, err
	}
	if upToDate {
		logger.Debug("configuration up to date", zap.String("path", path))
		return false, nil
	}
	if err := emit.Write(path, f, format); err != nil {
		return false, err
	}
	logger.Debug("configuration written", zap.String("path", path), zap.Int("rules", len(f.Rules())))
	return true, nil
}

// compareOnDisk reports whether the configuration stored at path equals f.
// missing is true when the file does not exist.
func compareOnDisk(path string, f ruleset.Fragment, format emit.Format) (upToDate, missing bool, err error) {
	want, err := f.Normalize()
	if err != nil {
		return false, false, fmt.Errorf("normalize configuration: %w", err)
	}
	got, err := emit.Read(path, format)
	if errors.Is(err, fs.ErrNotExist) {
		return false, true, nil
	}
	if err != nil {
		return false, false, err
	}
	return reflect.DeepEqual(got, want), false, nil
}

func printGenerateSummary(cmd *cobra.Command, dir string, data output.GenerateData) {
	p := painter(cmd)
	w := cmd.OutOrStdout()
	rel := displayPath(dir, data.Path)

	if data.Changed {
		fmt.Fprintf(w, "Wrote %s (%s mode)\n", p.Paint(rel, termcolor.Bold), data.Mode)
	} else {
		fmt.Fprintf(w, "%s is up to date (%s mode)\n", p.Paint(rel, termcolor.Bold), data.Mode)
	}
	if !data.Enabled {
		fmt.Fprintln(w, p.Paint("  eslint is missing or unsupported; the configuration is empty", termcolor.Yellow))
		return
	}
	fmt.Fprintf(w, "  Plugins: %s\n", strings.Join(data.Included, ", "))
	fmt.Fprintf(w, "  Rules:   %d\n", data.Rules)
}

// displayPath shows path relative to dir when it lies inside it.
func displayPath(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
