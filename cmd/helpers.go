package cmd

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/lugassawan/lintset/internal/composer"
	"github.com/lugassawan/lintset/internal/config"
	"github.com/lugassawan/lintset/internal/emit"
	"github.com/lugassawan/lintset/internal/probe"
	"github.com/lugassawan/lintset/internal/rules"
	"github.com/lugassawan/lintset/internal/ruleset"
	"github.com/lugassawan/lintset/internal/termcolor"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	flagFormat = "format"
	flagOutput = "output"
	flagMode   = "mode"
	flagAssume = "assume"
	flagDryRun = "dry-run"

	envNodeEnv = "NODE_ENV"
)

// project bundles everything a command needs to compose a configuration.
type project struct {
	Dir      string
	Config   *config.Config
	Mode     rules.Mode
	Modules  probe.NodeModules
	Composer *composer.Composer
}

// projectDir resolves --dir, defaulting to the working directory.
func projectDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString(flagDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	return abs, nil
}

// configFor returns the config placed in the command context by the root
// command, loading it from dir when the context carries none.
func configFor(cmd *cobra.Command, dir string) (*config.Config, error) {
	if ctx := cmd.Context(); ctx != nil {
		if cfg := config.FromContext(ctx); cfg != nil {
			return cfg, nil
		}
	}
	return config.Load(filepath.Join(dir, config.FileName))
}

// openProject loads the config for the command's project directory and
// builds a composer for it.
func openProject(cmd *cobra.Command) (*project, error) {
	dir, err := projectDir(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := configFor(cmd, dir)
	if err != nil {
		return nil, err
	}
	return newProject(cmd, dir, cfg)
}

func newProject(cmd *cobra.Command, dir string, cfg *config.Config) (*project, error) {
	mode, err := resolveMode(cmd, cfg)
	if err != nil {
		return nil, err
	}
	assumed, err := assumptions(cmd, cfg)
	if err != nil {
		return nil, err
	}

	modules := probe.NodeModules{Dir: dir}
	var prober probe.Prober = modules
	if len(assumed) > 0 {
		prober = probe.Chain{assumed, modules}
	}

	c, err := composer.New(composer.DefaultRegistry(), prober, rules.Env{Mode: mode},
		composer.WithBase(composer.Preamble(cfg.Root, cfg.Env)),
		composer.WithDisabled(cfg.Disable...),
	)
	if err != nil {
		return nil, err
	}
	return &project{Dir: dir, Config: cfg, Mode: mode, Modules: modules, Composer: c}, nil
}

// resolveMode applies --mode, then the config mode, then NODE_ENV.
func resolveMode(cmd *cobra.Command, cfg *config.Config) (rules.Mode, error) {
	if m, _ := cmd.Flags().GetString(flagMode); m != "" {
		return rules.ParseMode(m)
	}
	if cfg.Mode != "" {
		return rules.ParseMode(cfg.Mode)
	}
	return rules.ModeFromNodeEnv(os.Getenv(envNodeEnv)), nil
}

// assumptions merges config pins with --assume pairs; flags win.
func assumptions(cmd *cobra.Command, cfg *config.Config) (probe.Static, error) {
	out := probe.Static{}
	maps.Copy(out, cfg.Assume)

	pairs, _ := cmd.Flags().GetStringArray(flagAssume)
	flagged, invalid := probe.ParseAssumptions(pairs)
	if len(invalid) > 0 {
		return nil, fmt.Errorf("invalid --%s %s: want pkg=version", flagAssume, strings.Join(invalid, ", "))
	}
	maps.Copy(out, flagged)
	return out, nil
}

// compose runs the composer and logs every probe decision.
func (p *project) compose() (ruleset.Fragment, composer.Report) {
	f, report := p.Composer.Compose()
	for _, d := range report.Decisions {
		logger.Debug("probe",
			zap.String("candidate", d.Name),
			zap.String("package", d.Package),
			zap.String("version", d.Version),
			zap.String("range", d.Range),
			zap.String("status", string(d.Status)),
		)
	}
	if !report.Enabled() {
		logger.Debug("eslint unavailable, configuration is empty", zap.String("dir", p.Dir))
	}
	return f, report
}

// target overlays --format and --output on the config and returns the
// format and absolute output path.
func (p *project) target(cmd *cobra.Command) (emit.Format, string, error) {
	settings := *p.Config
	if f, _ := cmd.Flags().GetString(flagFormat); f != "" {
		settings.Format = f
	}
	if o, _ := cmd.Flags().GetString(flagOutput); o != "" {
		settings.Output = o
	}

	format := emit.Format(settings.Format)
	if !format.Valid() {
		return "", "", fmt.Errorf("unknown format %q (want one of %s)", settings.Format, formatList())
	}
	path := settings.OutputPath()
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.Dir, path)
	}
	return format, path, nil
}

func formatList() string {
	names := make([]string, 0, len(emit.Formats()))
	for _, f := range emit.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func painter(cmd *cobra.Command) *termcolor.Painter {
	noColor, _ := cmd.Flags().GetBool(flagNoColor)
	return termcolor.NewPainter(noColor)
}
