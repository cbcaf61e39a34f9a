package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ngforge/ngforge/internal/errs"
	"github.com/ngforge/ngforge/internal/variant"
)

// packageJSON mirrors the subset of package.json ngforge reads.
type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// angularCorePackage is the dependency whose version declares the target
// framework version.
const angularCorePackage = "@angular/core"

// DetectAngular reads the framework version from the project's package.json.
//
// The detection is deliberately thin: it produces an optional version or
// nothing. A missing package.json, a missing @angular/core entry, or a
// version range that carries no concrete number all yield nil without an
// error; the variant resolver decides how to surface the absence.
//
// Parameters:
//   - rootDir: Project root containing package.json
//
// Returns:
//   - *variant.Detected: Detected major/minor version, nil when unavailable
//   - error: FS_ACCESS when package.json exists but cannot be read or parsed
//
// Concurrency:
//   - Single-threaded
//
// Performance:
//   - Single file read and parse
func DetectAngular(rootDir string) (*variant.Detected, error) {
	path := filepath.Join(rootDir, "package.json")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errs.Wrap(errs.CodeFSAccess, "manifest.detect", err)
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, errs.Wrapf(errs.CodeFSAccess, "manifest.detect", err, "malformed %s", path)
	}

	spec, ok := pkg.Dependencies[angularCorePackage]
	if !ok {
		spec, ok = pkg.DevDependencies[angularCorePackage]
	}
	if !ok {
		return nil, nil
	}

	return parseVersionSpec(spec), nil
}

// parseVersionSpec extracts major and minor numbers from a dependency
// version specifier such as "^17.1.0", "~16.2", ">=15", or "18.0.0-rc.1".
//
// Parameters:
//   - spec: Dependency version specifier
//
// Returns:
//   - *variant.Detected: Parsed version, nil when no leading number exists
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - O(n) over the specifier
func parseVersionSpec(spec string) *variant.Detected {
	s := strings.TrimSpace(spec)
	s = strings.TrimLeft(s, "^~=<>v ")

	// Ranges like ">=16 <18" resolve from their first concrete number.
	if i := strings.IndexAny(s, " |"); i >= 0 {
		s = s[:i]
	}

	parts := strings.SplitN(s, ".", 3)
	major, err := strconv.Atoi(numericPrefix(parts[0]))
	if err != nil {
		return nil
	}

	detected := &variant.Detected{Major: major}
	if len(parts) > 1 {
		if minor, err := strconv.Atoi(numericPrefix(parts[1])); err == nil {
			detected.Minor = minor
		}
	}

	return detected
}

// numericPrefix returns the leading digit run of s.
func numericPrefix(s string) string {
	for i, r := range s {
		if r < '0' || r > '9' {
			return s[:i]
		}
	}
	return s
}
