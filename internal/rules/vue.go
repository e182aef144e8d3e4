package rules

import (
	"github.com/Masterminds/semver/v3"
	"github.com/lugassawan/lintset/internal/ruleset"
)

// VuePackage is the npm name of the Vue lint plugin.
const VuePackage = "eslint-plugin-vue"

// vueFiles is the override pattern for single-file components.
const vueFiles = "*.vue"

// attributesOrder is the order enforced by vue/attributes-order.
var attributesOrder = []any{
	"DEFINITION",
	"GLOBAL",
	"OTHER_ATTR",
	"UNIQUE",
	"LIST_RENDERING",
	"CONDITIONALS",
	"RENDER_MODIFIERS",
	"OTHER_DIRECTIVES",
	"TWO_WAY_BINDING",
	"EVENTS",
	"CONTENT",
}

var componentsOrder = []any{
	"name",
	"functional",
	"el",
	"parent",
	"extends",
	"mixins",
	[]any{"props", "propsData"},
	[]any{"components", "directives", "filters"},
	"inheritAttrs",
	"model",
	"data",
	"computed",
	"methods",
	"watch",
	"LIFECYCLE_HOOKS",
	[]any{"delimiters", "comments"},
	[]any{"template", "render"},
	"renderError",
}

// VueTable returns the eslint-plugin-vue rule tables for top-level rules.
func VueTable(env Env) Table {
	requireDefaultProp := sevOff
	if env.testing() {
		requireDefaultProp = sevWarn
	}

	return Table{
		Base: ruleset.Rules{
			// Strongly recommended
			"vue/html-indent": opt(sevError, 4),
			"vue/max-attributes-per-line": opt(sevError, obj{
				"singleline": 2,
				"multiline":  obj{"max": 1, "allowFirstLine": true},
			}),
			"vue/require-default-prop": requireDefaultProp,

			// Recommended
			"vue/attributes-order":    opt(sevError, obj{"order": attributesOrder}),
			"vue/order-in-components": opt(sevError, obj{"order": componentsOrder}),

			// Uncategorized
			"vue/component-name-in-template-casing": sevWarn,
			"vue/script-indent": opt(sevError, 4, obj{
				"baseIndent": 1,
				"switchCase": 1,
			}),
		},
		Increments: []Increment{
			{Since: "5.2.0", Rules: ruleset.Rules{
				"vue/array-bracket-spacing": opt(sevError, "never"),
				"vue/arrow-spacing":         opt(sevError, obj{"before": true, "after": true}),
				"vue/block-spacing":         opt(sevError, "always"),
				"vue/brace-style":           opt(sevError, "1tbs"),
				"vue/camelcase":             sevError,
				"vue/comma-dangle": opt(sevError, obj{
					"arrays":    "always-multiline",
					"objects":   "always-multiline",
					"imports":   "always-multiline",
					"exports":   "always-multiline",
					"functions": "never",
				}),
				"vue/component-name-in-template-casing": opt(sevError, "kebab-case", obj{
					"registeredComponentsOnly": true,
				}),
				"vue/eqeqeq":                sevError,
				"vue/key-spacing":           opt(sevError, obj{"beforeColon": false, "afterColon": true}),
				"vue/object-curly-spacing":  opt(sevError, "never"),
				"vue/require-direct-export": sevError,
				"vue/space-infix-ops":       sevError,
				"vue/space-unary-ops":       opt(sevError, obj{"words": true, "nonwords": false}),
				"vue/v-on-function-call":    sevError,
			}},
			{Since: "6.0.0", Rules: ruleset.Rules{
				"vue/dot-location":                  opt(sevError, "property"),
				"vue/keyword-spacing":               opt(sevError, obj{"before": true, "after": true}),
				"vue/no-deprecated-scope-attribute": sevError,
				"vue/no-empty-pattern":              sevError,
				"vue/v-slot-style":                  sevError,
				"vue/valid-v-slot":                  sevError,
			}},
			{Since: "6.1.0", Rules: ruleset.Rules{
				"vue/component-definition-name-casing": sevError,
				"vue/component-tags-order": opt(sevError, obj{
					"order": []any{"template", "script", "style"},
				}),
				"vue/no-deprecated-slot-attribute":       sevError,
				"vue/no-deprecated-slot-scope-attribute": sevError,
				"vue/no-irregular-whitespace":            opt(sevError, obj{"skipStrings": false}),
				"vue/no-reserved-component-names":        sevError,
				"vue/no-static-inline-styles":            sevError,
				"vue/require-name-property":              sevError,
				"vue/valid-v-bind-sync":                  sevError,
			}},
			{Since: "6.2.0", Rules: ruleset.Rules{
				"vue/attributes-order": opt(sevError, obj{
					"order":        attributesOrder,
					"alphabetical": true,
				}),
				"vue/padding-line-between-blocks": sevError,
			}},
		},
	}
}

// VueOverrideTable returns the rules scoped to .vue files. The core indent
// rule is replaced by vue/script-indent there.
func VueOverrideTable() Table {
	return Table{
		Base: ruleset.Rules{
			"indent": sevOff,
		},
		Increments: []Increment{
			{Since: "6.1.0", Rules: ruleset.Rules{
				"vue/max-len": opt(sevError, obj{
					"code":          120,
					"template":      120,
					"comments":      120,
					"ignoreUrls":    true,
					"ignoreStrings": true,
				}),
			}},
		},
	}
}

// Vue builds the eslint-plugin-vue fragment.
func Vue(v *semver.Version, env Env) ruleset.Fragment {
	return ruleset.Fragment{
		ruleset.KeyPlugins: ruleset.List("vue"),
		ruleset.KeyExtends: ruleset.List("plugin:vue/recommended"),
		ruleset.KeyRules:   VueTable(env).Build(v),
		ruleset.KeyOverrides: []any{
			ruleset.Override([]string{vueFiles}, VueOverrideTable().Build(v)),
		},
	}
}
