package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lugassawan/lintset/internal/config"
	"github.com/lugassawan/lintset/internal/schema"
	"github.com/lugassawan/lintset/internal/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const flagDebounce = "debounce"

func init() {
	rootCmd.AddCommand(watchCmd)
	addComposeFlags(watchCmd)
	watchCmd.Flags().StringP(flagOutput, "o", "", "output path (default depends on --format)")
	watchCmd.Flags().Duration(flagDebounce, watch.DefaultDebounce, "quiet period before regenerating")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the configuration when lint packages change",
	Long:  "Generates the configuration, then watches package.json, .lintset.toml and the manifests of every probed package, regenerating after installs, upgrades and removals. Stops on interrupt.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := projectDir(cmd)
		if err != nil {
			return err
		}
		configPath := filepath.Join(dir, config.FileName)

		regenerate := func() error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			p, err := newProject(cmd, dir, cfg)
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
			changed, err := writeIfChanged(path, f, format)
			if err != nil {
				return err
			}
			if changed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s regenerated %s (%d rules)\n",
					time.Now().Format(time.TimeOnly), displayPath(dir, path), len(f.Rules()))
			}
			logger.Debug("regenerated", zap.Bool("changed", changed), zap.Strings("included", report.Included()))
			return nil
		}
		if err := regenerate(); err != nil {
			return err
		}

		p, err := openProject(cmd)
		if err != nil {
			return err
		}
		paths := append(p.Modules.Manifests(p.Composer.Packages()...), configPath)
		debounce, _ := cmd.Flags().GetDuration(flagDebounce)

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(cmd.OutOrStdout(), "Watching %d files in %s\n", len(paths), dir)
		w := &watch.Watcher{
			Paths:    paths,
			Debounce: debounce,
			OnChange: func() error {
				err := regenerate()
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				}
				return err
			},
			Logger: logger,
		}
		return w.Run(ctx)
	},
}
