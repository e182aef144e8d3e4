package rules

import (
	"github.com/Masterminds/semver/v3"
	"github.com/lugassawan/lintset/internal/ruleset"
)

const (
	// JestPluginPackage is the npm name of the Jest lint plugin.
	JestPluginPackage = "eslint-plugin-jest"
	// JestPackage is the test runner whose major version feeds plugin settings.
	JestPackage = "jest"

	defaultJestMajor = 23
)

// JestTable returns the eslint-plugin-jest rule tables.
func JestTable() Table {
	return Table{
		Base: ruleset.Rules{
			"jest/consistent-test-it":         opt(sevError, obj{"fn": "it"}),
			"jest/no-duplicate-hooks":         sevError,
			"jest/no-if":                      sevWarn,
			"jest/no-truthy-falsy":            sevError,
			"jest/prefer-called-with":         sevError,
			"jest/prefer-hooks-on-top":        sevError,
			"jest/prefer-spy-on":              sevError,
			"jest/prefer-strict-equal":        sevError,
			"jest/prefer-to-be-null":          sevError,
			"jest/prefer-to-be-undefined":     sevError,
			"jest/prefer-to-contain":          sevError,
			"jest/prefer-to-have-length":      sevError,
			"jest/prefer-todo":                sevError,
			"jest/require-top-level-describe": sevError,
			"jest/require-to-throw-message":   sevWarn,
			"jest/valid-title":                sevWarn,
		},
		Increments: []Increment{
			{Since: "23.9.0", Rules: ruleset.Rules{
				"jest/no-deprecated-functions": sevError,
			}},
			{Since: "23.11.0", Rules: ruleset.Rules{
				// no-truthy-falsy is deprecated in favour of no-restricted-matchers.
				"jest/no-truthy-falsy": sevOff,
				"jest/no-restricted-matchers": opt(sevError, obj{
					"toBeFalsy":  nil,
					"toBeTruthy": nil,
				}),
			}},
		},
	}
}

// Jest builds the eslint-plugin-jest fragment. The jest settings version is
// the major version of the installed jest runner, or 23 when it is missing.
func Jest(v *semver.Version, env Env) ruleset.Fragment {
	return ruleset.Fragment{
		ruleset.KeyPlugins: ruleset.List("jest"),
		ruleset.KeyExtends: ruleset.List("plugin:jest/recommended"),
		ruleset.KeyRules:   JestTable().Build(v),
		ruleset.KeySettings: map[string]any{
			"jest": map[string]any{"version": jestMajor(env)},
		},
	}
}

func jestMajor(env Env) int {
	raw, ok := env.version(JestPackage)
	if !ok {
		return defaultJestMajor
	}
	v, err := semver.StrictNewVersion(raw)
	if err != nil {
		return defaultJestMajor
	}
	return int(v.Major())
}

// JestFormattingPackage is the npm name of the Jest formatting plugin.
const JestFormattingPackage = "eslint-plugin-jest-formatting"

// JestFormatting builds the eslint-plugin-jest-formatting fragment. The strict
// preset already enables padding-around-all, so no rules are added.
func JestFormatting(_ *semver.Version, _ Env) ruleset.Fragment {
	return ruleset.Fragment{
		ruleset.KeyPlugins: ruleset.List("jest-formatting"),
		ruleset.KeyExtends: ruleset.List("plugin:jest-formatting/strict"),
		ruleset.KeyRules:   ruleset.Rules{},
	}
}
