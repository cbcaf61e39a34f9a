// Package manifest provides project descriptor loading for ngforge.
//
// Overview:
//   - Responsibility: Parse ngforge.yaml, validate schema, fill defaults,
//     and detect the target framework version from package.json
//   - Key Types: Config struct, validation diagnostics, Detected version
//   - Concurrency Model: Immutable configuration after loading
//   - Error Semantics: Structured validation diagnostics with suggestions
//   - Performance Notes: Single-pass parsing
//
// Usage:
//
//	config, diags := manifest.Load("ngforge.yaml")
//	if diags.HasErrors() {
//	    return diags
//	}
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ngforge/ngforge/internal/variant"
)

// DefaultFileName is the project configuration file ngforge looks for in
// the target directory.
const DefaultFileName = "ngforge.yaml"

// Config represents the complete ngforge project configuration.
//
// Parameters:
//   - ConfigVersion: Schema version for compatibility
//   - Variant: Optional style-variant override (legacy, modern, hybrid)
//   - Prefix: Selector prefix applied to components and directives
//   - Style: Stylesheet extension for component styles (css, scss, sass, less)
//   - Flat: Whether artifacts are generated without a per-artifact directory
//   - SkipTests: Whether spec files are omitted by default
//
// Returns:
//   - None (data structure)
//
// Concurrency:
//   - Immutable after loading
//
// Performance:
//   - Single allocation
type Config struct {
	ConfigVersion string `yaml:"config_version"`
	Variant       string `yaml:"variant"`
	Prefix        string `yaml:"prefix"`
	Style         string `yaml:"style"`
	Flat          bool   `yaml:"flat"`
	SkipTests     bool   `yaml:"skip_tests"`
}

// Diagnostic represents a validation issue.
type Diagnostic struct {
	Severity   DiagnosticSeverity `json:"severity"`
	Message    string             `json:"message"`
	Path       string             `json:"path,omitempty"`
	Suggestion string             `json:"suggestion,omitempty"`
}

// DiagnosticSeverity represents the severity of a diagnostic.
type DiagnosticSeverity string

const (
	SeverityError   DiagnosticSeverity = "error"
	SeverityWarning DiagnosticSeverity = "warning"
)

// Diagnostics represents a collection of validation issues.
type Diagnostics struct {
	items []Diagnostic
}

// NewDiagnostics creates a new diagnostics collection.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{items: make([]Diagnostic, 0)}
}

// AddError adds an error diagnostic.
//
// Parameters:
//   - message: Error message
//   - path: Configuration path the issue applies to
//   - suggestion: Optional fix suggestion
//
// Returns:
//   - None
//
// Concurrency:
//   - Not safe for concurrent mutation
//
// Performance:
//   - O(1) append operation
func (d *Diagnostics) AddError(message, path, suggestion string) {
	d.items = append(d.items, Diagnostic{Severity: SeverityError, Message: message, Path: path, Suggestion: suggestion})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(message, path, suggestion string) {
	d.items = append(d.items, Diagnostic{Severity: SeverityWarning, Message: message, Path: path, Suggestion: suggestion})
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.items {
		if item.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Items returns all recorded diagnostics.
func (d *Diagnostics) Items() []Diagnostic {
	return d.items
}

// Load loads and validates the ngforge project configuration.
//
// A missing file is not an error: every project works without a
// configuration file, so Load returns a defaulted Config and records no
// diagnostics. A present but unreadable or invalid file produces error
// diagnostics and a nil Config.
//
// Parameters:
//   - path: Path to the configuration file
//
// Returns:
//   - *Config: Loaded configuration with defaults applied, nil on failure
//   - *Diagnostics: Validation diagnostics
//
// Concurrency:
//   - Single-threaded
//
// Performance:
//   - Single file read and parse
func Load(path string) (*Config, *Diagnostics) {
	diags := NewDiagnostics()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			config := &Config{}
			applyDefaults(config)
			return config, diags
		}
		diags.AddError(fmt.Sprintf("failed to read %s: %v", path, err), path, "")
		return nil, diags
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		diags.AddError(fmt.Sprintf("failed to parse %s: %v", path, err), path, "check the YAML syntax")
		return nil, diags
	}

	applyDefaults(config)
	validateConfig(config, diags)
	if diags.HasErrors() {
		return nil, diags
	}

	return config, diags
}

// applyDefaults fills unset configuration fields with their defaults.
//
// Parameters:
//   - config: Configuration to mutate
//
// Returns:
//   - None
//
// Concurrency:
//   - Single-threaded
//
// Performance:
//   - O(1)
func applyDefaults(config *Config) {
	if config.ConfigVersion == "" {
		config.ConfigVersion = "1"
	}
	if config.Prefix == "" {
		config.Prefix = "app"
	}
	if config.Style == "" {
		config.Style = "css"
	}
}

// validateConfig checks configuration fields and records diagnostics.
//
// Parameters:
//   - config: Configuration to validate
//   - diags: Diagnostics collection to append to
//
// Returns:
//   - None
//
// Concurrency:
//   - Single-threaded
//
// Performance:
//   - O(1) field checks
func validateConfig(config *Config, diags *Diagnostics) {
	if _, err := variant.Parse(config.Variant); err != nil {
		diags.AddError(fmt.Sprintf("invalid variant %q", config.Variant), "variant", "use legacy, modern, or hybrid")
	}

	switch config.Style {
	case "css", "scss", "sass", "less":
	default:
		diags.AddError(fmt.Sprintf("invalid style extension %q", config.Style), "style", "use css, scss, sass, or less")
	}

	for _, r := range config.Prefix {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			diags.AddError(fmt.Sprintf("invalid selector prefix %q", config.Prefix), "prefix", "use lowercase letters, digits, and dashes")
			break
		}
	}
}
