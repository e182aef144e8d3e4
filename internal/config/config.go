package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/lugassawan/lintset/internal/composer"
	"github.com/lugassawan/lintset/internal/emit"
	"github.com/lugassawan/lintset/internal/rules"
	toml "github.com/pelletier/go-toml/v2"
)

// FileName is the config file name used by lintset.
const FileName = ".lintset.toml"

type Config struct {
	Mode   string `toml:"mode,omitempty"`
	Format string `toml:"format"`
	Output string `toml:"output,omitempty"`

	Root    bool     `toml:"root"`
	Env     []string `toml:"env,omitempty"`
	Disable []string `toml:"disable,omitempty"`

	// Assume pins package versions, bypassing node_modules lookups.
	Assume map[string]string `toml:"assume,omitempty"`
}

// OutputPath returns the configured output path, or the default file name
// for the configured format.
func (c *Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return emit.DefaultPath(emit.Format(c.Format))
}

// Validation error messages for config fields.
const (
	ErrMsgUnknownFormat    = "format must be one of json, yaml, package-json"
	ErrMsgDisablePrimary   = "disable must not contain the eslint engine"
	ErrMsgUnknownCandidate = "disable contains unknown plugin"
	ErrMsgEmptyAssumption  = "assume entries must have a package name and a version"
)

// Validate checks field values, joining every problem found.
func (c *Config) Validate() error {
	var errs []error
	if _, err := rules.ParseMode(c.Mode); err != nil {
		errs = append(errs, err)
	}
	if !emit.Format(c.Format).Valid() {
		errs = append(errs, fmt.Errorf("%s, got %q", ErrMsgUnknownFormat, c.Format))
	}

	known := composer.Names(composer.DefaultRegistry())
	for _, name := range c.Disable {
		switch {
		case name == composer.NameESLint:
			errs = append(errs, errors.New(ErrMsgDisablePrimary))
		case !slices.Contains(known, name):
			errs = append(errs, fmt.Errorf("%s %q", ErrMsgUnknownCandidate, name))
		}
	}
	for pkg, v := range c.Assume {
		if pkg == "" || v == "" {
			errs = append(errs, fmt.Errorf("%s (%q = %q)", ErrMsgEmptyAssumption, pkg, v))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

type ctxKey struct{}

func DefaultConfig() *Config {
	return &Config{
		Format: string(emit.FormatJSON),
		Root:   true,
		Env:    []string{"browser", "node", "es6"},
	}
}

// Load reads the config at path. A missing file yields DefaultConfig so
// generation works in projects that never ran init.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

func FromContext(ctx context.Context) *Config {
	cfg, _ := ctx.Value(ctxKey{}).(*Config)
	return cfg
}
