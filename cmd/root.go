package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lugassawan/lintset/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time with -ldflags.
var version = "dev"

const (
	flagDir     = "dir"
	flagNoColor = "no-color"
	flagVerbose = "verbose"
	flagJSON    = "json"

	annotationSkipConfig = "skipConfig"
)

// logger is replaced in PersistentPreRunE; commands log probe decisions to it.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:           "lintset",
	Short:         "Version-aware ESLint configuration generator",
	Long:          "Lintset detects the installed versions of eslint, eslint-plugin-jest, eslint-plugin-jest-formatting and eslint-plugin-vue, and composes an ESLint configuration containing only the rules those versions support.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool(flagVerbose)
		logger = newLogger(verbose, cmd.ErrOrStderr())

		// Skip config for Cobra internals (completion, __complete)
		if cmd.Name() == "completion" || cmd.Name() == "__complete" {
			return nil
		}

		// Skip config if any command in the chain is annotated
		for c := cmd; c != nil; c = c.Parent() {
			if c.Annotations != nil && c.Annotations[annotationSkipConfig] == "true" {
				return nil
			}
		}

		dir, err := projectDir(cmd)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, config.FileName)
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		logger.Debug("config loaded", zap.String("path", path), zap.String("format", cfg.Format))

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(config.WithConfig(ctx, cfg))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().String(flagDir, "", "project directory (default: current directory)")
	rootCmd.PersistentFlags().Bool(flagNoColor, false, "disable colored output")
	rootCmd.PersistentFlags().BoolP(flagVerbose, "v", false, "log probe decisions to stderr")
	rootCmd.PersistentFlags().Bool(flagJSON, false, "output in JSON format")
}

// newLogger returns a no-op logger unless verbose is set, in which case
// debug-level console output goes to w.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}

func Execute() error {
	return rootCmd.Execute()
}

// Version returns the build version.
func Version() string {
	return version
}

// IsJSONMode reports whether --json was passed on the command line.
func IsJSONMode() bool {
	for _, arg := range os.Args[1:] {
		if arg == "--"+flagJSON || arg == "--"+flagJSON+"=true" {
			return true
		}
	}
	return false
}

// CommandName returns the name of the subcommand being executed, or the
// root command name when none matches.
func CommandName() string {
	c, _, err := rootCmd.Find(os.Args[1:])
	if err != nil || c == nil {
		return rootCmd.Name()
	}
	return strings.TrimSpace(c.Name())
}
