package rules

import (
	"github.com/Masterminds/semver/v3"
	"github.com/lugassawan/lintset/internal/ruleset"
)

// ESLintPackage is the npm name of the linting engine.
const ESLintPackage = "eslint"

// ESLintTable returns the core rule tables. Severities of no-console and
// no-debugger depend on the mode.
func ESLintTable(env Env) Table {
	return Table{
		Base: eslint5_0(env),
		Increments: []Increment{
			{Since: "5.3.0", Rules: ruleset.Rules{
				"no-async-promise-executor":     sevError,
				"no-misleading-character-class": sevError,
			}},
			{Since: "5.11.0", Rules: ruleset.Rules{
				"no-useless-catch": sevError,
			}},
			{Since: "6.2.0", Rules: ruleset.Rules{
				"function-call-argument-newline": opt(sevError, "consistent"),
			}},
			{Since: "6.4.0", Rules: ruleset.Rules{
				"no-import-assign":   sevError,
				"default-param-last": sevError,
				"computed-property-spacing": opt(sevError, "never", obj{
					"enforceForClassMembers": true,
				}),
			}},
			{Since: "6.7.0", Rules: ruleset.Rules{
				"no-dupe-else-if":                sevError,
				"no-setter-return":               sevError,
				"grouped-accessor-pairs":         opt(sevError, "getBeforeSet"),
				"no-constructor-return":          sevError,
				"prefer-exponentiation-operator": sevError,
			}},
		},
	}
}

// ESLint builds the core engine fragment.
func ESLint(v *semver.Version, env Env) ruleset.Fragment {
	return ruleset.Fragment{
		ruleset.KeyExtends: ruleset.List("eslint:recommended"),
		ruleset.KeyRules:   ESLintTable(env).Build(v),
	}
}

func eslint5_0(env Env) ruleset.Rules {
	consoleLevel := sevWarn
	if env.production() {
		consoleLevel = sevError
	}

	return ruleset.Rules{
		// Possible errors
		"no-await-in-loop":            sevError,
		"no-console":                  consoleLevel,
		"no-debugger":                 consoleLevel,
		"no-empty":                    opt(sevError, obj{"allowEmptyCatch": true}),
		"no-invalid-regexp":           opt(sevError, obj{"allowConstructorFlags": []any{"u", "y"}}),
		"no-prototype-builtins":       sevError,
		"no-template-curly-in-string": sevWarn,

		// Best practices
		"array-callback-return": sevError,
		"block-scoped-var":      sevError,
		"complexity":            opt(sevWarn, 10),
		"consistent-return":     sevWarn,
		"curly":                 opt(sevError, "all"),
		"dot-location":          opt(sevError, "property"),
		"dot-notation":          sevError,
		"eqeqeq":                opt(sevError, "always"),
		"no-alert":              sevError,
		"no-caller":             sevError,
		"no-div-regex":          sevError,
		"no-else-return":        sevError,
		"no-eq-null":            sevError,
		"no-eval":               sevError,
		"no-extend-native":      sevError,
		"no-extra-bind":         sevError,
		"no-extra-label":        sevError,
		"no-floating-decimal":   sevError,
		"no-implicit-coercion":  sevError,
		"no-implied-eval":       sevError,
		"no-iterator":           sevError,
		"no-labels":             sevError,
		"no-lone-blocks":        sevError,
		"no-loop-func":          sevError,
		"no-multi-spaces":       opt(sevError, obj{"ignoreEOLComments": true}),
		"no-multi-str":          sevError,
		"no-new":                sevError,
		"no-new-func":           sevError,
		"no-new-wrappers":       sevError,
		"no-octal-escape":       sevError,
		"no-param-reassign":     sevWarn,
		"no-proto":              sevWarn,
		"no-return-assign":      sevError,
		"no-return-await":       sevError,
		"no-script-url":         sevError,
		"no-self-compare":       sevError,
		"no-sequences":          sevError,
		"no-throw-literal":      sevError,
		"no-unused-expressions": opt(sevError, obj{
			"allowTaggedTemplates": true,
			"allowTernary":         true,
		}),
		"no-useless-call":   sevError,
		"no-useless-concat": sevError,
		"no-useless-return": sevError,
		"no-void":           sevError,
		"no-with":           sevError,
		"radix":             opt(sevError, "as-needed"),
		"require-await":     sevError,
		"wrap-iife":         opt(sevError, "any"),
		"yoda":              sevError,

		// Strict mode
		"strict": opt(sevError, "safe"),

		// Variables
		"no-label-var":               sevError,
		"no-shadow-restricted-names": sevError,
		"no-undef-init":              sevError,
		"no-use-before-define":       opt(sevError, obj{"functions": false}),

		// Node.js and CommonJS
		"handle-callback-err":   sevError,
		"no-buffer-constructor": sevError,
		"no-mixed-requires":     opt(sevError, obj{"allowCall": true}),
		"no-new-require":        sevError,

		// Stylistic issues
		"array-bracket-spacing": opt(sevError, "never"),
		"array-element-newline": opt(sevError, "consistent"),
		"block-spacing":         opt(sevError, "always"),
		"brace-style":           opt(sevError, "1tbs"),
		"camelcase":             sevError,
		"comma-dangle": opt(sevError, obj{
			"arrays":    "always-multiline",
			"objects":   "always-multiline",
			"imports":   "always-multiline",
			"exports":   "always-multiline",
			"functions": "never",
		}),
		"comma-spacing":                 opt(sevError, obj{"before": false, "after": true}),
		"comma-style":                   opt(sevError, "last"),
		"computed-property-spacing":     opt(sevError, "never"),
		"consistent-this":               opt(sevError, "that"),
		"eol-last":                      opt(sevError, "always"),
		"func-call-spacing":             opt(sevError, "never"),
		"func-names":                    opt(sevError, "as-needed"),
		"function-paren-newline":        opt(sevError, "multiline"),
		"implicit-arrow-linebreak":      opt(sevError, "beside"),
		"indent":                        opt(sevError, 4, obj{"SwitchCase": 1}),
		"jsx-quotes":                    opt(sevError, "prefer-double"),
		"key-spacing":                   opt(sevError, obj{"beforeColon": false, "afterColon": true}),
		"keyword-spacing":               opt(sevError, obj{"before": true, "after": true}),
		"linebreak-style":               opt(sevError, "unix"),
		"lines-between-class-members":   opt(sevError, "always"),
		"max-len":                       opt(sevError, obj{"code": 120, "ignoreStrings": true}),
		"multiline-ternary":             opt(sevError, "always-multiline"),
		"new-cap":                       opt(sevWarn, obj{"newIsCap": true, "capIsNew": false}),
		"new-parens":                    sevError,
		"no-array-constructor":          sevError,
		"no-lonely-if":                  sevWarn,
		"no-multiple-empty-lines":       opt(sevError, obj{"max": 2, "maxEOF": 1}),
		"no-nested-ternary":             sevError,
		"no-new-object":                 sevError,
		"no-tabs":                       sevError,
		"no-trailing-spaces":            opt(sevError, obj{"ignoreComments": true, "skipBlankLines": true}),
		"no-unneeded-ternary":           sevError,
		"no-whitespace-before-property": sevError,
		"object-curly-spacing":          opt(sevError, "never"),
		"one-var":                       opt(sevError, "never"),
		"one-var-declaration-per-line":  opt(sevError, "initializations"),
		"operator-assignment":           opt(sevError, "always"),
		"operator-linebreak": opt(sevError, "before", obj{
			"overrides": obj{"||": "after", "&&": "after"},
		}),
		"padded-blocks":       opt(sevError, obj{"classes": "never", "switches": "never"}),
		"quote-props":         opt(sevError, "as-needed"),
		"quotes":              opt(sevError, "single", obj{"allowTemplateLiterals": true}),
		"semi":                opt(sevError, "always"),
		"semi-spacing":        opt(sevError, obj{"before": false, "after": true}),
		"semi-style":          opt(sevError, "last"),
		"space-before-blocks": opt(sevError, "always"),
		"space-before-function-paren": opt(sevError, obj{
			"anonymous":  "never",
			"named":      "never",
			"asyncArrow": "always",
		}),
		"space-in-parens":      opt(sevError, "never"),
		"space-infix-ops":      sevError,
		"space-unary-ops":      opt(sevError, obj{"words": true, "nonwords": false}),
		"spaced-comment":       opt(sevError, "always"),
		"switch-colon-spacing": opt(sevError, obj{"before": false, "after": true}),
		"template-tag-spacing": opt(sevError, "never"),
		"unicode-bom":          opt(sevError, "never"),

		// ECMAScript 6
		"arrow-spacing":           opt(sevError, obj{"before": true, "after": true}),
		"generator-star-spacing":  opt(sevError, obj{"before": false, "after": true}),
		"no-confusing-arrow":      sevError,
		"no-duplicate-imports":    sevError,
		"no-useless-computed-key": sevError,
		"no-useless-constructor":  sevError,
		"no-useless-rename":       sevError,
		"no-var":                  sevError,
		"object-shorthand":        opt(sevError, "properties"),
		"prefer-const":            sevError,
		"prefer-numeric-literals": sevError,
		"prefer-rest-params":      sevError,
		"prefer-spread":           sevError,
		"prefer-template":         sevError,
		"rest-spread-spacing":     opt(sevError, "never"),
		"symbol-description":      sevError,
		"template-curly-spacing":  opt(sevError, "never"),
		"yield-star-spacing":      opt(sevError, "after"),
	}
}
