// Package projectfs provides file-system operations confined to a target root.
//
// Overview:
//   - Responsibility: Resolve, read, write, and remove files under one root
//   - Key Types: ProjectFS rooted file-system handle
//   - Concurrency Model: Sequential file operations
//   - Error Semantics: Coded FS_ACCESS errors, including traversal outside the root
//   - Performance Notes: Thin wrappers over the os package
//
// Usage:
//
//	fs := projectfs.New("./src/app")
//	err := fs.WriteFile("user-profile/user-profile.component.ts", content, 0644)
package projectfs

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ngforge/ngforge/internal/errs"
	"github.com/ngforge/ngforge/internal/ui"
)

// ProjectFS provides file-system operations rooted at a target directory.
// Every relative path is resolved inside the root; escaping it is an
// FS_ACCESS error, never a write somewhere else.
//
// Parameters:
//   - rootDir: Root directory for all operations
//   - verbose: Whether to log file operations
//
// Returns:
//   - None (data structure)
//
// Concurrency:
//   - Safe for concurrent reads; writes are sequential per batch
//
// Performance:
//   - No caching, direct os calls
type ProjectFS struct {
	rootDir string
	verbose bool
}

// New creates a new project file system rooted at rootDir.
//
// Parameters:
//   - rootDir: Root directory for operations
//
// Returns:
//   - *ProjectFS: Rooted file-system handle
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - Minimal initialization overhead
func New(rootDir string) *ProjectFS {
	return &ProjectFS{rootDir: rootDir}
}

// SetVerbose enables or disables operation logging.
func (p *ProjectFS) SetVerbose(enabled bool) {
	p.verbose = enabled
}

// RootDir returns the root directory.
func (p *ProjectFS) RootDir() string {
	return p.rootDir
}

// Resolve maps a relative path to its absolute location under the root.
//
// Parameters:
//   - relPath: Slash-separated path relative to the root
//
// Returns:
//   - string: Absolute path under the root
//   - error: FS_ACCESS when the path is absolute or escapes the root
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - O(n) path cleaning
func (p *ProjectFS) Resolve(relPath string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))
	if filepath.IsAbs(cleaned) {
		return "", errs.Newf(errs.CodeFSAccess, "path %s is absolute; only paths inside the target root are allowed", relPath)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", errs.Newf(errs.CodeFSAccess, "path %s escapes the target root", relPath)
	}
	return filepath.Join(p.rootDir, cleaned), nil
}

// WriteFile writes content to a file, creating parent directories.
//
// Parameters:
//   - relPath: File path relative to the root
//   - content: File content
//   - mode: File permissions
//
// Returns:
//   - error: FS_ACCESS on any file-system failure
//
// Concurrency:
//   - Single-threaded per file
//
// Performance:
//   - One directory creation and one write
func (p *ProjectFS) WriteFile(relPath, content string, mode fs.FileMode) error {
	fullPath, err := p.Resolve(relPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return errs.Wrapf(errs.CodeFSAccess, "projectfs.write", err, "create parent directory for %s", relPath)
	}

	if err := os.WriteFile(fullPath, []byte(content), mode); err != nil {
		return errs.Wrapf(errs.CodeFSAccess, "projectfs.write", err, "write file %s", relPath)
	}

	if p.verbose {
		ui.Debug("Written file: %s", relPath)
	}

	return nil
}

// WriteFileIfNotExists writes a file only if it doesn't exist.
//
// Parameters:
//   - relPath: File path relative to the root
//   - content: File content
//   - mode: File permissions
//
// Returns:
//   - bool: True if the file was written, false if it already existed
//   - error: FS_ACCESS on any file-system failure
//
// Concurrency:
//   - Single-threaded per file
//
// Performance:
//   - Existence check plus at most one write
func (p *ProjectFS) WriteFileIfNotExists(relPath, content string, mode fs.FileMode) (bool, error) {
	exists, err := p.FileExists(relPath)
	if err != nil {
		return false, err
	}

	if exists {
		if p.verbose {
			ui.Debug("File already exists, skipping: %s", relPath)
		}
		return false, nil
	}

	if err := p.WriteFile(relPath, content, mode); err != nil {
		return false, err
	}

	return true, nil
}

// ReadFile reads content from a file.
//
// Parameters:
//   - relPath: File path relative to the root
//
// Returns:
//   - string: File content
//   - error: FS_ACCESS on any file-system failure
//
// Concurrency:
//   - Single-threaded per file
//
// Performance:
//   - Whole file loaded into memory
func (p *ProjectFS) ReadFile(relPath string) (string, error) {
	fullPath, err := p.Resolve(relPath)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		return "", errs.Wrapf(errs.CodeFSAccess, "projectfs.read", err, "read file %s", relPath)
	}
	return string(content), nil
}

// FileExists checks if a file exists.
//
// Parameters:
//   - relPath: File path relative to the root
//
// Returns:
//   - bool: True if the file exists
//   - error: FS_ACCESS on any file-system failure other than absence
//
// Concurrency:
//   - Single-threaded per file
//
// Performance:
//   - Fast stat call
func (p *ProjectFS) FileExists(relPath string) (bool, error) {
	fullPath, err := p.Resolve(relPath)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(fullPath)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errs.Wrapf(errs.CodeFSAccess, "projectfs.stat", err, "stat %s", relPath)
}

// RemoveFile removes a file. A missing file is not an error.
//
// Parameters:
//   - relPath: File path relative to the root
//
// Returns:
//   - error: FS_ACCESS on any file-system failure
//
// Concurrency:
//   - Single-threaded per file
//
// Performance:
//   - Fast removal
func (p *ProjectFS) RemoveFile(relPath string) error {
	fullPath, err := p.Resolve(relPath)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errs.Wrapf(errs.CodeFSAccess, "projectfs.remove", err, "remove file %s", relPath)
	}

	if p.verbose {
		ui.Debug("Removed file: %s", relPath)
	}

	return nil
}
