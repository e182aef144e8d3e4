package output

import "github.com/lugassawan/lintset/internal/composer"

// GenerateData is the JSON output of the generate command.
type GenerateData struct {
	Path     string          `json:"path"`
	Format   string          `json:"format"`
	Mode     string          `json:"mode"`
	DryRun   bool            `json:"dry_run"`
	Changed  bool            `json:"changed"`
	Enabled  bool            `json:"enabled"`
	Rules    int             `json:"rules"`
	Included []string        `json:"included"`
	Report   composer.Report `json:"report"`
	// Config is set only for dry runs.
	Config map[string]any `json:"config,omitempty"`
}

// ProbeData is the JSON output of the probe command.
type ProbeData struct {
	Dir     string          `json:"dir"`
	Mode    string          `json:"mode"`
	Enabled bool            `json:"enabled"`
	Report  composer.Report `json:"report"`
}

// CheckData is the JSON output of the check command.
type CheckData struct {
	Path     string `json:"path"`
	Format   string `json:"format"`
	UpToDate bool   `json:"up_to_date"`
	Missing  bool   `json:"missing"`
}
