package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"construct-generator/internal/gen"
)

// DefaultFilename is looked up in the working directory when no --config
// flag is given.
const DefaultFilename = "construct.yaml"

// File represents the root of a YAML project configuration file.
type File struct {
	// Version of the configuration schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Patterns are the package patterns to scan, in go/packages syntax.
	Patterns []string `yaml:"patterns,omitempty"`

	// Output controls how generated files are named and decorated.
	Output Output `yaml:"output,omitempty"`
}

// Output holds the generation options of a configuration file.
type Output struct {
	// Suffix is appended to the snake-cased record name to form the output
	// filename. Must end in ".go".
	Suffix string `yaml:"suffix,omitempty"`

	// RuntimePackage overrides the import path of the completion-marker
	// runtime, for projects that vendor it.
	RuntimePackage string `yaml:"runtime_package,omitempty"`

	// Header is an extra comment line placed under the generated-code marker.
	Header string `yaml:"header,omitempty"`

	// Comments toggles doc comments on generated declarations. Unset means
	// enabled.
	Comments *bool `yaml:"comments,omitempty"`
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File, applying defaults.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Default returns the configuration used when no file exists.
func Default() *File {
	f := &File{}
	applyDefaults(f)

	return f
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if len(f.Patterns) == 0 {
		f.Patterns = []string{"./..."}
	}

	def := gen.DefaultGeneratorConfig()

	if f.Output.Suffix == "" {
		f.Output.Suffix = def.Suffix
	}

	if f.Output.RuntimePackage == "" {
		f.Output.RuntimePackage = def.RuntimePackage
	}
}

// Validate checks constraints that YAML decoding cannot express.
func (f *File) Validate() error {
	var errs []error

	if !strings.HasSuffix(f.Output.Suffix, ".go") {
		errs = append(errs, fmt.Errorf("output.suffix %q must end in .go", f.Output.Suffix))
	}

	if strings.HasSuffix(f.Output.Suffix, "_test.go") {
		errs = append(errs, fmt.Errorf("output.suffix %q would be compiled as a test file", f.Output.Suffix))
	}

	for _, p := range f.Patterns {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, errors.New("patterns must not contain empty entries"))
			break
		}
	}

	return errors.Join(errs...)
}

// GeneratorConfig converts the file into the generator's options.
func (f *File) GeneratorConfig() gen.GeneratorConfig {
	cfg := gen.GeneratorConfig{
		Suffix:           f.Output.Suffix,
		RuntimePackage:   f.Output.RuntimePackage,
		Header:           f.Output.Header,
		GenerateComments: true,
	}

	if f.Output.Comments != nil {
		cfg.GenerateComments = *f.Output.Comments
	}

	return cfg
}
