package probe

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	// DirNodeModules is the directory Node resolves packages from.
	DirNodeModules = "node_modules"
	// ManifestFile is the npm package manifest name.
	ManifestFile = "package.json"
)

// Prober looks up the installed version of an npm package. A false result
// means the package is unavailable; it is never an error.
type Prober interface {
	Version(pkg string) (string, bool)
}

// NodeModules resolves packages the way Node does: node_modules in Dir,
// then in each parent directory up to the filesystem root.
type NodeModules struct {
	Dir string
}

// Version reads the version field of pkg's package.json.
func (n NodeModules) Version(pkg string) (string, bool) {
	path, ok := n.Manifest(pkg)
	if !ok {
		return "", false
	}
	return readVersion(path)
}

// Manifest returns the path of the package.json Node would load for pkg.
func (n NodeModules) Manifest(pkg string) (string, bool) {
	if !validName(pkg) {
		return "", false
	}
	for _, dir := range n.searchDirs() {
		path := filepath.Join(dir, DirNodeModules, filepath.FromSlash(pkg), ManifestFile)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Manifests returns the manifest paths consulted for the given packages plus
// the project's own package.json, whether or not they exist yet.
func (n NodeModules) Manifests(pkgs ...string) []string {
	root, err := filepath.Abs(n.dir())
	if err != nil {
		root = n.dir()
	}
	paths := []string{filepath.Join(root, ManifestFile)}
	for _, pkg := range pkgs {
		if path, ok := n.Manifest(pkg); ok {
			paths = append(paths, path)
			continue
		}
		if validName(pkg) {
			paths = append(paths, filepath.Join(root, DirNodeModules, filepath.FromSlash(pkg), ManifestFile))
		}
	}
	return paths
}

func (n NodeModules) dir() string {
	if n.Dir == "" {
		return "."
	}
	return n.Dir
}

func (n NodeModules) searchDirs() []string {
	dir, err := filepath.Abs(n.dir())
	if err != nil {
		return nil
	}
	var dirs []string
	for {
		dirs = append(dirs, dir)
		parent := filepath.Dir(dir)
		if parent == dir {
			return dirs
		}
		dir = parent
	}
}

func readVersion(path string) (string, bool) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil || !gjson.ValidBytes(data) {
		return "", false
	}
	v := gjson.GetBytes(data, "version")
	if v.Type != gjson.String || strings.TrimSpace(v.Str) == "" {
		return "", false
	}
	return strings.TrimSpace(v.Str), true
}

// validName rejects names that would escape node_modules. Scoped names
// (@scope/name) are the only form allowed to contain a slash.
func validName(pkg string) bool {
	if pkg == "" || strings.Contains(pkg, "\\") || strings.Contains(pkg, "..") {
		return false
	}
	parts := strings.Split(pkg, "/")
	switch len(parts) {
	case 1:
		return !strings.HasPrefix(pkg, "@")
	case 2:
		return strings.HasPrefix(parts[0], "@") && len(parts[0]) > 1 && parts[1] != ""
	default:
		return false
	}
}

// Static serves fixed versions keyed by package name.
type Static map[string]string

// Version returns the fixed version for pkg, if any.
func (s Static) Version(pkg string) (string, bool) {
	v, ok := s[pkg]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Chain consults probers in order; the first hit wins.
type Chain []Prober

// Version returns the first resolved version across the chain.
func (c Chain) Version(pkg string) (string, bool) {
	for _, p := range c {
		if p == nil {
			continue
		}
		if v, ok := p.Version(pkg); ok {
			return v, true
		}
	}
	return "", false
}

// ParseAssumptions parses pkg=version pairs given on the command line.
// Scoped packages keep their leading @.
func ParseAssumptions(pairs []string) (Static, []string) {
	out := Static{}
	var invalid []string
	for _, pair := range pairs {
		i := strings.LastIndex(pair, "=")
		if i <= 0 || i == len(pair)-1 {
			invalid = append(invalid, pair)
			continue
		}
		out[strings.TrimSpace(pair[:i])] = strings.TrimSpace(pair[i+1:])
	}
	return out, invalid
}
