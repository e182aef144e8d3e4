package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lugassawan/lintset/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestPersistentPreRunESkipsCompletion(t *testing.T) {
	preRunE := rootCmd.PersistentPreRunE

	for _, name := range []string{"completion", "__complete"} {
		t.Run(name, func(t *testing.T) {
			cmd := &cobra.Command{Use: name}
			if err := preRunE(cmd, nil); err != nil {
				t.Fatalf("expected nil error for %q command, got %v", name, err)
			}
		})
	}
}

func TestPersistentPreRunESkipsAnnotatedParent(t *testing.T) {
	preRunE := rootCmd.PersistentPreRunE

	parent := &cobra.Command{
		Use:         "parent",
		Annotations: map[string]string{annotationSkipConfig: "true"},
	}
	child := &cobra.Command{Use: "child"}
	parent.AddCommand(child)

	if err := preRunE(child, nil); err != nil {
		t.Fatalf("expected nil for child of annotated parent, got %v", err)
	}
	if child.Context() != nil && config.FromContext(child.Context()) != nil {
		t.Error("annotated command should not load config")
	}
}

func TestPersistentPreRunELoadsConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "mode = \"production\"\nformat = \"yaml\"\nroot = false\n")

	cmd, _ := newTestCmd(dir)
	if err := rootCmd.PersistentPreRunE(cmd, nil); err != nil {
		t.Fatalf("PersistentPreRunE: %v", err)
	}

	cfg := config.FromContext(cmd.Context())
	if cfg == nil {
		t.Fatal("config not stored in context")
	}
	if cfg.Mode != "production" || cfg.Format != "yaml" || cfg.Root {
		t.Errorf("loaded config = %+v", cfg)
	}
}

func TestPersistentPreRunEInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "format = \"xml\"\n")

	cmd, _ := newTestCmd(dir)
	err := rootCmd.PersistentPreRunE(cmd, nil)
	if err == nil || !strings.Contains(err.Error(), "format") {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestPersistentPreRunEVerboseLogsConfig(t *testing.T) {
	t.Cleanup(func() { logger = zap.NewNop() })

	cmd, buf := newTestCmd(t.TempDir())
	_ = cmd.Flags().Set(flagVerbose, "true")
	if err := rootCmd.PersistentPreRunE(cmd, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "config loaded") {
		t.Errorf("expected debug log, got %q", buf.String())
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	quiet := newLogger(false, &buf)
	if quiet.Core().Enabled(zapcore.DebugLevel) {
		t.Error("non-verbose logger should discard debug output")
	}

	l := newLogger(true, &buf)
	l.Debug("probe", zap.String("status", "included"))
	out := buf.String()
	if !strings.Contains(out, "probe") || !strings.Contains(out, "included") {
		t.Errorf("verbose output = %q", out)
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"generate", "print", "probe", "explain", "check", "watch", "init", "version"}
	for _, name := range want {
		c, _, err := rootCmd.Find([]string{name})
		if err != nil || c.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}
}
