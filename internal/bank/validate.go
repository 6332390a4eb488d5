package bank

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

//go:embed data/bank.schema.json
var schemaJSON []byte

const schemaURL = "schema://bank.schema.json"

// SupportedMajor is the bank format major version this build understands.
const SupportedMajor = "v1"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal(schemaJSON, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// validateSchema checks a decoded YAML document against the bank schema.
func validateSchema(doc any) error {
	compiled, err := compiledSchema()
	if err != nil {
		return err
	}

	// YAML decoding yields Go ints and nested interface maps; the schema
	// library wants plain JSON values.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("re-encode document: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("re-decode document: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// checkVersion accepts any valid semver with the supported major version.
func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("%w: %s (want %s.x.x)", ErrUnsupportedVersion, v, SupportedMajor)
	}
	return nil
}

// validateSemantics enforces the rules the schema cannot express.
func validateSemantics(b *Bank) error {
	var errs []error
	for _, id := range ModuleOrder {
		if _, ok := b.Modules[id]; !ok {
			errs = append(errs, fmt.Errorf("missing module %q", id))
		}
	}

	seen := make(map[string]ModuleID)
	for id, m := range b.Modules {
		declared := make(map[string]bool, len(m.Categories))
		for _, c := range m.Categories {
			declared[c.ID] = true
		}

		for i, q := range m.Questions {
			where := fmt.Sprintf("%s.questions[%d] (%s)", id, i, q.ID)

			if prev, dup := seen[q.ID]; dup {
				errs = append(errs, fmt.Errorf("%s: duplicate id, already used in %s", where, prev))
			}
			seen[q.ID] = id

			if len(m.Categories) > 0 && !declared[q.Category] {
				errs = append(errs, fmt.Errorf("%s: undeclared category %q", where, q.Category))
			}

			if q.Type != TypeChoice && len(q.Options) > 0 {
				errs = append(errs, fmt.Errorf("%s: options are only allowed on choice questions", where))
			}

			if c, ok := q.CorrectIndex(); ok {
				if q.Type == TypeSlider {
					errs = append(errs, fmt.Errorf("%s: slider questions cannot be scored", where))
				} else if _, hi := q.Range(); c > hi {
					errs = append(errs, fmt.Errorf("%s: correct index %d out of range 0..%d", where, c, hi))
				}
			} else if id == ModuleTechnical {
				errs = append(errs, fmt.Errorf("%s: technical questions need a correct index", where))
			}
		}
	}
	return errors.Join(errs...)
}
