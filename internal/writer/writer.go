// Package writer persists rendered files as atomic-feeling batches.
//
// Overview:
//   - Responsibility: Conflict detection, marker stamping, batch writes, rollback
//   - Key Types: Writer batch persister
//   - Concurrency Model: One batch at a time, sequential writes
//   - Error Semantics: WRITE_CONFLICT for unmarked existing files, FS_ACCESS for
//     file-system failures; a failed batch removes every file it already wrote
//   - Performance Notes: Two passes over the batch, conflict scan then write
//
// Usage:
//
//	w := writer.New(fs, false)
//	written, err := w.WriteBatch(rendered)
package writer

import (
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/ngforge/ngforge/internal/errs"
	"github.com/ngforge/ngforge/internal/projectfs"
	"github.com/ngforge/ngforge/internal/renderer"
	"github.com/ngforge/ngforge/internal/ui"
)

// markerToken is the sentinel identifying a file as ngforge output. It is
// deliberately constant: regeneration must be byte-identical, so the marker
// carries no timestamp, user, or batch identity.
const markerToken = "Code generated by ngforge. DO NOT EDIT MANUALLY."

// Writer persists rendered batches into a rooted project file system.
// Existing files without the generation marker are treated as hand-written
// and refuse to be overwritten unless force is set.
type Writer struct {
	fs    *projectfs.ProjectFS
	force bool
}

// New creates a batch writer over the given project file system.
//
// Parameters:
//   - fs: Rooted file system receiving the batch
//   - force: Overwrite unmarked existing files
//
// Returns:
//   - *Writer: Configured batch writer
//
// Concurrency:
//   - One batch at a time
//
// Performance:
//   - Minimal initialization overhead
func New(fs *projectfs.ProjectFS, force bool) *Writer {
	return &Writer{fs: fs, force: force}
}

// WriteBatch persists every rendered file of one generation batch.
//
// The batch is scanned for conflicts before anything touches disk: an
// existing file without the generation marker fails the whole batch with
// WRITE_CONFLICT unless force is set. Marked files are ngforge's own
// output and are overwritten freely. If any write fails mid-batch, every
// file already written by this batch is removed again, so a failed run
// leaves no partial artifact behind.
//
// Parameters:
//   - files: Rendered files in plan order
//
// Returns:
//   - []string: Relative paths written, in write order
//   - error: WRITE_CONFLICT or FS_ACCESS; nil means the full batch is on disk
//
// Concurrency:
//   - One batch at a time
//
// Performance:
//   - O(n) conflict scan plus O(n) writes
func (w *Writer) WriteBatch(files []renderer.RenderedFile) ([]string, error) {
	batchID := uuid.New().String()
	ui.Debug("Write batch %s: %d files under %s", batchID, len(files), w.fs.RootDir())

	for _, file := range files {
		if err := w.checkConflict(file.RelPath); err != nil {
			return nil, err
		}
	}

	written := make([]string, 0, len(files))
	for _, file := range files {
		if err := w.fs.WriteFile(file.RelPath, Stamp(file.RelPath, file.Content), 0644); err != nil {
			w.rollback(batchID, written)
			return nil, err
		}
		written = append(written, file.RelPath)
	}

	ui.Debug("Write batch %s: complete", batchID)
	return written, nil
}

// checkConflict rejects existing files that ngforge did not generate.
func (w *Writer) checkConflict(relPath string) error {
	exists, err := w.fs.FileExists(relPath)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	content, err := w.fs.ReadFile(relPath)
	if err != nil {
		return err
	}
	if HasMarker(content) {
		return nil
	}
	if w.force {
		ui.Warning("Overwriting unmarked file: %s", relPath)
		return nil
	}

	return errs.Newf(errs.CodeWriteConflict, "file %s exists and carries no generation marker; use --force to overwrite", relPath)
}

// rollback removes every file the failed batch already wrote.
func (w *Writer) rollback(batchID string, written []string) {
	ui.Warning("Write batch %s failed, rolling back %d written files", batchID, len(written))
	for _, relPath := range written {
		if err := w.fs.RemoveFile(relPath); err != nil {
			ui.Error("Rollback of %s left %s behind: %v", batchID, relPath, err)
		}
	}
}

// Stamp prepends the generation marker in the comment syntax matching the
// file's extension. Equal inputs always produce equal output.
//
// Parameters:
//   - relPath: Target path, used only for its extension
//   - content: Rendered file content
//
// Returns:
//   - string: Content with the marker as its first line
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - Single string concatenation
func Stamp(relPath, content string) string {
	var line string
	switch strings.ToLower(path.Ext(relPath)) {
	case ".html", ".htm":
		line = "<!-- " + markerToken + " -->"
	case ".css", ".scss", ".sass", ".less":
		line = "/* " + markerToken + " */"
	default:
		line = "// " + markerToken
	}
	return line + "\n" + content
}

// HasMarker reports whether content starts with the generation marker.
// Only the first line is inspected; a marker buried deeper in a file does
// not make it overwritable.
//
// Parameters:
//   - content: File content read from disk
//
// Returns:
//   - bool: True when the first line carries the marker
//
// Concurrency:
//   - Safe for concurrent use
//
// Performance:
//   - Scans at most one line
func HasMarker(content string) bool {
	firstLine, _, _ := strings.Cut(content, "\n")
	return strings.Contains(firstLine, markerToken)
}
