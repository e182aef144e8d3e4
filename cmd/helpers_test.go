package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lugassawan/lintset/internal/config"
	"github.com/lugassawan/lintset/internal/emit"
	"github.com/lugassawan/lintset/internal/probe"
	"github.com/lugassawan/lintset/internal/rules"
	"github.com/spf13/cobra"
)

// newTestCmd returns a command carrying every flag the RunE funcs read,
// pointed at dir, with output captured in the returned buffer.
func newTestCmd(dir string) (*cobra.Command, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String(flagDir, dir, "")
	cmd.Flags().Bool(flagNoColor, true, "")
	cmd.Flags().Bool(flagJSON, false, "")
	cmd.Flags().Bool(flagVerbose, false, "")
	cmd.Flags().String(flagFormat, "", "")
	cmd.Flags().String(flagOutput, "", "")
	cmd.Flags().String(flagMode, "", "")
	cmd.Flags().StringArray(flagAssume, nil, "")
	cmd.Flags().Bool(flagDryRun, false, "")
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd, buf
}

// writeManifest installs a fake package under dir/node_modules.
func writeManifest(t *testing.T, dir, pkg, version string) {
	t.Helper()
	path := filepath.Join(dir, probe.DirNodeModules, filepath.FromSlash(pkg), probe.ManifestFile)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatal(err)
	}
	data := `{"name": "` + pkg + `", "version": "` + version + `"}`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func decodeEnvelope(t *testing.T, buf *bytes.Buffer, data any) {
	t.Helper()
	env := struct {
		Command string `json:"command"`
		Data    any    `json:"data"`
	}{Data: data}
	if err := json.Unmarshal(buf.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v\n%s", err, buf.String())
	}
}

func TestResolveModePrecedence(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		cfgMode string
		nodeEnv string
		want    rules.Mode
	}{
		{"flag wins", "testing", "production", "production", rules.Testing},
		{"config over NODE_ENV", "", "production", "testing", rules.Production},
		{"NODE_ENV fallback", "", "", "production", rules.Production},
		{"NODE_ENV test is development", "", "", "test", rules.Development},
		{"nothing set", "", "", "", rules.Development},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(envNodeEnv, tt.nodeEnv)
			cmd, _ := newTestCmd(t.TempDir())
			if tt.flag != "" {
				_ = cmd.Flags().Set(flagMode, tt.flag)
			}
			cfg := config.DefaultConfig()
			cfg.Mode = tt.cfgMode

			got, err := resolveMode(cmd, cfg)
			if err != nil {
				t.Fatalf("resolveMode: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveMode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveModeInvalidFlag(t *testing.T) {
	cmd, _ := newTestCmd(t.TempDir())
	_ = cmd.Flags().Set(flagMode, "staging")
	if _, err := resolveMode(cmd, config.DefaultConfig()); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestAssumptionsFlagsOverrideConfig(t *testing.T) {
	cmd, _ := newTestCmd(t.TempDir())
	_ = cmd.Flags().Set(flagAssume, "eslint=6.8.0")
	_ = cmd.Flags().Set(flagAssume, "@vue/cli=4.0.0")

	cfg := config.DefaultConfig()
	cfg.Assume = map[string]string{"eslint": "5.0.0", "jest": "25.1.0"}

	got, err := assumptions(cmd, cfg)
	if err != nil {
		t.Fatalf("assumptions: %v", err)
	}
	want := map[string]string{"eslint": "6.8.0", "jest": "25.1.0", "@vue/cli": "4.0.0"}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("assumption %s = %q, want %q", k, got[k], v)
		}
	}
}

func TestAssumptionsInvalid(t *testing.T) {
	cmd, _ := newTestCmd(t.TempDir())
	_ = cmd.Flags().Set(flagAssume, "eslint")

	_, err := assumptions(cmd, config.DefaultConfig())
	if err == nil || !strings.Contains(err.Error(), "eslint") {
		t.Fatalf("expected error naming the bad pair, got %v", err)
	}
}

func TestTargetOverlaysFlags(t *testing.T) {
	dir := t.TempDir()
	cmd, _ := newTestCmd(dir)
	p, err := openProject(cmd)
	if err != nil {
		t.Fatal(err)
	}

	format, path, err := p.target(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if format != emit.FormatJSON || path != filepath.Join(dir, ".eslintrc.json") {
		t.Errorf("default target = %s %s", format, path)
	}

	_ = cmd.Flags().Set(flagFormat, "yaml")
	format, path, err = p.target(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if format != emit.FormatYAML || path != filepath.Join(dir, ".eslintrc.yaml") {
		t.Errorf("yaml target = %s %s", format, path)
	}

	_ = cmd.Flags().Set(flagOutput, "lint/config.yaml")
	_, path, _ = p.target(cmd)
	if path != filepath.Join(dir, "lint", "config.yaml") {
		t.Errorf("output target = %s", path)
	}

	_ = cmd.Flags().Set(flagFormat, "toml")
	if _, _, err := p.target(cmd); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestOpenProjectUsesAssumptions(t *testing.T) {
	t.Setenv(envNodeEnv, "")
	dir := t.TempDir()
	writeManifest(t, dir, "eslint", "5.2.0")

	cmd, _ := newTestCmd(dir)
	_ = cmd.Flags().Set(flagAssume, "eslint=6.8.0")

	p, err := openProject(cmd)
	if err != nil {
		t.Fatal(err)
	}
	_, report := p.compose()
	if got := report.Decisions[0].Version; got != "6.8.0" {
		t.Errorf("eslint version = %q, want the assumed 6.8.0", got)
	}
	if !report.Enabled() {
		t.Error("expected the assumed version to enable composition")
	}
}

func TestDisplayPath(t *testing.T) {
	dir := filepath.Join(string(filepath.Separator), "app")
	tests := []struct {
		path string
		want string
	}{
		{filepath.Join(dir, ".eslintrc.json"), ".eslintrc.json"},
		{filepath.Join(dir, "lint", "a.json"), filepath.Join("lint", "a.json")},
		{filepath.Join(string(filepath.Separator), "other", "a.json"), filepath.Join(string(filepath.Separator), "other", "a.json")},
	}
	for _, tt := range tests {
		if got := displayPath(dir, tt.path); got != tt.want {
			t.Errorf("displayPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
