package probe

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, root, pkg, content string) string {
	t.Helper()
	dir := filepath.Join(root, DirNodeModules, filepath.FromSlash(pkg))
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNodeModulesVersion(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "eslint", `{"name":"eslint","version":"6.8.0"}`)
	writeManifest(t, root, "@vue/cli", `{"name":"@vue/cli","version":"4.5.1"}`)
	writeManifest(t, root, "broken", `{"name":`)
	writeManifest(t, root, "noversion", `{"name":"noversion"}`)
	writeManifest(t, root, "numeric", `{"version":6}`)

	p := NodeModules{Dir: root}

	tests := []struct {
		pkg    string
		want   string
		wantOK bool
	}{
		{"eslint", "6.8.0", true},
		{"@vue/cli", "4.5.1", true},
		{"missing", "", false},
		{"broken", "", false},
		{"noversion", "", false},
		{"numeric", "", false},
		{"../eslint", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.pkg, func(t *testing.T) {
			got, ok := p.Version(tt.pkg)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Version(%q) = (%q, %v), want (%q, %v)", tt.pkg, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNodeModulesWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "eslint", `{"version":"5.16.0"}`)

	nested := filepath.Join(root, "packages", "web")
	if err := os.MkdirAll(nested, 0750); err != nil {
		t.Fatal(err)
	}

	got, ok := NodeModules{Dir: nested}.Version("eslint")
	if !ok || got != "5.16.0" {
		t.Errorf("Version() = (%q, %v), want (%q, true)", got, ok, "5.16.0")
	}
}

func TestNodeModulesNearestWins(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "eslint", `{"version":"5.16.0"}`)
	nested := filepath.Join(root, "app")
	writeManifest(t, nested, "eslint", `{"version":"6.1.0"}`)

	got, _ := NodeModules{Dir: nested}.Version("eslint")
	if got != "6.1.0" {
		t.Errorf("Version() = %q, want nearest %q", got, "6.1.0")
	}
}

func TestManifests(t *testing.T) {
	root := t.TempDir()
	installed := writeManifest(t, root, "eslint", `{"version":"6.0.0"}`)

	got := NodeModules{Dir: root}.Manifests("eslint", "eslint-plugin-vue")
	want := []string{
		filepath.Join(root, ManifestFile),
		installed,
		filepath.Join(root, DirNodeModules, "eslint-plugin-vue", ManifestFile),
	}
	if len(got) != len(want) {
		t.Fatalf("Manifests() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Manifests()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStaticAndChain(t *testing.T) {
	assumed := Static{"eslint": "6.2.0", "empty": ""}
	fallback := Static{"eslint": "5.0.0", "eslint-plugin-jest": "23.8.0"}
	c := Chain{nil, assumed, fallback}

	if v, _ := c.Version("eslint"); v != "6.2.0" {
		t.Errorf("chain eslint = %q, want first prober's version", v)
	}
	if v, _ := c.Version("eslint-plugin-jest"); v != "23.8.0" {
		t.Errorf("chain jest = %q, want fallback version", v)
	}
	if _, ok := c.Version("empty"); ok {
		t.Error("empty static version should be absent")
	}
}

func TestParseAssumptions(t *testing.T) {
	got, invalid := ParseAssumptions([]string{"eslint=6.8.0", "@scope/pkg=1.0.0", "bad", "=1.0", "x="})

	if got["eslint"] != "6.8.0" || got["@scope/pkg"] != "1.0.0" {
		t.Errorf("parsed = %v", got)
	}
	if len(invalid) != 3 {
		t.Errorf("invalid = %v, want 3 entries", invalid)
	}
}
