package bank

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/default.yaml
var defaultBank []byte

var (
	// ErrUnknownModule is returned when a module id is not in the bank.
	ErrUnknownModule = errors.New("unknown module")

	// ErrUnsupportedVersion is returned when the bank version is not a
	// semver string with a supported major version.
	ErrUnsupportedVersion = errors.New("unsupported bank version")
)

// ValidationError reports a bank document that failed schema or semantic checks.
type ValidationError struct {
	Source string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid question bank %s: %v", e.Source, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

var loadDefault = sync.OnceValues(func() (*Bank, error) {
	return Parse("<embedded>", defaultBank)
})

// Default returns the embedded question bank. It is parsed once and shared;
// callers must treat it as read-only.
func Default() (*Bank, error) {
	return loadDefault()
}

// Load reads and validates a bank from a YAML file.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}
	return Parse(path, data)
}

// LoadOrDefault loads the bank at path, or the embedded bank when path is empty.
func LoadOrDefault(path string) (*Bank, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Parse decodes and validates a YAML bank document. source names the
// document in error messages.
func Parse(source string, data []byte) (*Bank, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ValidationError{Source: source, Err: fmt.Errorf("decode yaml: %w", err)}
	}
	if err := validateSchema(doc); err != nil {
		return nil, &ValidationError{Source: source, Err: err}
	}

	var b Bank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, &ValidationError{Source: source, Err: fmt.Errorf("decode bank: %w", err)}
	}
	for id, m := range b.Modules {
		m.ID = id
	}

	if err := checkVersion(b.Version); err != nil {
		return nil, &ValidationError{Source: source, Err: err}
	}
	if err := validateSemantics(&b); err != nil {
		return nil, &ValidationError{Source: source, Err: err}
	}
	return &b, nil
}

// Module returns the module with the given id.
func (b *Bank) Module(id ModuleID) (*Module, error) {
	m, ok := b.Modules[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModule, id)
	}
	return m, nil
}

// OrderedModules returns the bank's modules in presentation order. Modules
// outside ModuleOrder are skipped.
func (b *Bank) OrderedModules() []*Module {
	var out []*Module
	for _, id := range ModuleOrder {
		if m, ok := b.Modules[id]; ok {
			out = append(out, m)
		}
	}
	return out
}
