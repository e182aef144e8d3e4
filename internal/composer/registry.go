package composer

import "github.com/lugassawan/lintset/internal/rules"

// Candidate names in the default registry.
const (
	NameESLint         = "eslint"
	NameJest           = "jest"
	NameJestFormatting = "jest-formatting"
	NameVue            = "vue"
)

// Candidate is a plugin the composer may include.
type Candidate struct {
	Name    string
	Package string
	// Range is the semver constraint the installed version must satisfy.
	Range string
	// Primary marks the linting engine itself. When a primary candidate is
	// not usable the whole configuration is empty.
	Primary bool
	Build   rules.Builder
}

// DefaultRegistry returns the supported plugins in merge order.
func DefaultRegistry() []Candidate {
	return []Candidate{
		{
			Name:    NameESLint,
			Package: rules.ESLintPackage,
			Range:   ">=5.3.0 <7.0.0",
			Primary: true,
			Build:   rules.ESLint,
		},
		{
			Name:    NameJest,
			Package: rules.JestPluginPackage,
			Range:   ">=23.0.0 <24.0.0",
			Build:   rules.Jest,
		},
		{
			Name:    NameJestFormatting,
			Package: rules.JestFormattingPackage,
			Range:   ">=1.0.0 <2.0.0",
			Build:   rules.JestFormatting,
		},
		{
			Name:    NameVue,
			Package: rules.VuePackage,
			Range:   ">=5.0.0 <7.0.0",
			Build:   rules.Vue,
		},
	}
}

// Names returns the candidate names of registry in order.
func Names(registry []Candidate) []string {
	out := make([]string, len(registry))
	for i, c := range registry {
		out[i] = c.Name
	}
	return out
}
