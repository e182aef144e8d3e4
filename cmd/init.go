package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lugassawan/lintset/internal/config"
	"github.com/lugassawan/lintset/internal/emit"
	"github.com/lugassawan/lintset/internal/rules"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP(flagFormat, "f", string(emit.FormatJSON), "output format: json, yaml, package-json")
	initCmd.Flags().StringP(flagMode, "m", "", "pin a lint mode instead of following NODE_ENV")
}

var initCmd = &cobra.Command{
	Use:         "init",
	Short:       "Create a .lintset.toml in the project directory",
	Long:        "Writes a default .lintset.toml. An existing config is left untouched.",
	Annotations: map[string]string{annotationSkipConfig: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := projectDir(cmd)
		if err != nil {
			return err
		}

		configPath := filepath.Join(dir, config.FileName)
		if _, err := os.Stat(configPath); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Config %s already exists, skipping config creation\n", configPath)
			return nil
		}

		cfg := config.DefaultConfig()
		if f, _ := cmd.Flags().GetString(flagFormat); f != "" {
			cfg.Format = f
		}
		if m, _ := cmd.Flags().GetString(flagMode); m != "" {
			mode, err := rules.ParseMode(m)
			if err != nil {
				return err
			}
			cfg.Mode = string(mode)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		if err := config.Save(configPath, cfg); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized lintset in %s\n", dir)
		fmt.Fprintf(cmd.OutOrStdout(), "  Config: %s\n", configPath)
		fmt.Fprintf(cmd.OutOrStdout(), "  Output: %s (%s)\n", cfg.OutputPath(), cfg.Format)
		return nil
	},
}
