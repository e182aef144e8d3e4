package schema

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/lugassawan/lintset/internal/ruleset"
	jsValidator "github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const schemaURL = "https://lintset.dev/schema/eslintrc.json"

//go:embed eslintrc.json
var eslintrcJSON []byte

var printer = message.NewPrinter(language.English)

var (
	compileOnce sync.Once
	compiled    *jsValidator.Schema
	compileErr  error
)

func validator() (*jsValidator.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsValidator.UnmarshalJSON(bytes.NewReader(eslintrcJSON))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsValidator.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Violation is one schema failure at an instance location.
type Violation struct {
	Path    string
	Message string
}

func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

// Error lists every violation found in a configuration.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "invalid eslint configuration: " + strings.Join(parts, "; ")
}

// Validate checks f against the embedded eslintrc schema. Schema failures
// are returned as *Error.
func Validate(f ruleset.Fragment) error {
	sch, err := validator()
	if err != nil {
		return err
	}
	doc, err := f.Normalize()
	if err != nil {
		return fmt.Errorf("normalize configuration: %w", err)
	}

	err = sch.Validate(map[string]any(doc))
	if err == nil {
		return nil
	}
	var verr *jsValidator.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	return &Error{Violations: leaves(verr)}
}

func leaves(err *jsValidator.ValidationError) []Violation {
	if len(err.Causes) == 0 {
		path := ""
		if len(err.InstanceLocation) > 0 {
			path = "/" + strings.Join(err.InstanceLocation, "/")
		}
		return []Violation{{
			Path:    path,
			Message: err.ErrorKind.LocalizedString(printer),
		}}
	}
	var out []Violation
	for _, cause := range err.Causes {
		out = append(out, leaves(cause)...)
	}
	return out
}
