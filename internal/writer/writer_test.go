package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ngforge/ngforge/internal/errs"
	"github.com/ngforge/ngforge/internal/projectfs"
	"github.com/ngforge/ngforge/internal/renderer"
)

func batch() []renderer.RenderedFile {
	return []renderer.RenderedFile{
		{RelPath: "auth/auth.service.ts", Content: "export class AuthService {}\n"},
		{RelPath: "auth/auth.service.spec.ts", Content: "describe('AuthService', () => {});\n"},
	}
}

func TestWriteBatch(t *testing.T) {
	fs := projectfs.New(t.TempDir())

	written, err := New(fs, false).WriteBatch(batch())
	if err != nil {
		t.Fatalf("WriteBatch returned error: %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("WriteBatch wrote %d files, want 2", len(written))
	}

	content, err := fs.ReadFile("auth/auth.service.ts")
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if !HasMarker(content) {
		t.Errorf("Written file is missing the generation marker:\n%s", content)
	}
	if !strings.Contains(content, "export class AuthService {}") {
		t.Errorf("Written file is missing its rendered content:\n%s", content)
	}
}

func TestWriteBatchIdempotent(t *testing.T) {
	fs := projectfs.New(t.TempDir())
	w := New(fs, false)

	if _, err := w.WriteBatch(batch()); err != nil {
		t.Fatalf("First WriteBatch returned error: %v", err)
	}
	first, err := fs.ReadFile("auth/auth.service.ts")
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}

	// A rerun overwrites its own marked output without --force and must
	// be byte-identical.
	if _, err := w.WriteBatch(batch()); err != nil {
		t.Fatalf("Second WriteBatch returned error: %v", err)
	}
	second, err := fs.ReadFile("auth/auth.service.ts")
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}

	if first != second {
		t.Errorf("Rerun output differs:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestWriteBatchConflict(t *testing.T) {
	fs := projectfs.New(t.TempDir())
	if err := fs.WriteFile("auth/auth.service.ts", "export class AuthService { /* hand-written */ }\n", 0644); err != nil {
		t.Fatalf("Seeding file returned error: %v", err)
	}

	written, err := New(fs, false).WriteBatch(batch())
	if err == nil {
		t.Fatal("WriteBatch should fail on an unmarked existing file")
	}
	if !errs.IsCode(err, errs.CodeWriteConflict) {
		t.Errorf("Expected code %s, got %s", errs.CodeWriteConflict, errs.CodeOf(err))
	}
	if written != nil {
		t.Errorf("Conflicting batch should write nothing, wrote %v", written)
	}

	// The conflict scan runs before any write, so the second file must not
	// exist either.
	exists, err := fs.FileExists("auth/auth.service.spec.ts")
	if err != nil {
		t.Fatalf("FileExists returned error: %v", err)
	}
	if exists {
		t.Error("Conflicting batch must not write any file")
	}
}

func TestWriteBatchForce(t *testing.T) {
	fs := projectfs.New(t.TempDir())
	if err := fs.WriteFile("auth/auth.service.ts", "hand-written\n", 0644); err != nil {
		t.Fatalf("Seeding file returned error: %v", err)
	}

	if _, err := New(fs, true).WriteBatch(batch()); err != nil {
		t.Fatalf("Forced WriteBatch returned error: %v", err)
	}

	content, err := fs.ReadFile("auth/auth.service.ts")
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if strings.Contains(content, "hand-written") {
		t.Errorf("Forced write should replace the file:\n%s", content)
	}
}

func TestWriteBatchRollback(t *testing.T) {
	root := t.TempDir()
	fs := projectfs.New(root)

	files := []renderer.RenderedFile{
		{RelPath: "admin/admin.guard.ts", Content: "a\n"},
		{RelPath: "admin/admin.guard.spec.ts", Content: "b\n"},
		{RelPath: "admin/admin.guard.providers.ts", Content: "c\n"},
	}

	// A directory squatting on the third path makes its write fail after
	// the first two succeeded.
	if err := os.MkdirAll(filepath.Join(root, "admin/admin.guard.providers.ts"), 0755); err != nil {
		t.Fatalf("MkdirAll returned error: %v", err)
	}

	_, err := New(fs, false).WriteBatch(files)
	if err == nil {
		t.Fatal("WriteBatch should fail when a write cannot complete")
	}
	if !errs.IsCode(err, errs.CodeFSAccess) {
		t.Errorf("Expected code %s, got %s", errs.CodeFSAccess, errs.CodeOf(err))
	}

	for _, relPath := range []string{"admin/admin.guard.ts", "admin/admin.guard.spec.ts"} {
		exists, err := fs.FileExists(relPath)
		if err != nil {
			t.Fatalf("FileExists returned error: %v", err)
		}
		if exists {
			t.Errorf("Failed batch left %s behind", relPath)
		}
	}
}

func TestWriteBatchRejectsEscapingPath(t *testing.T) {
	fs := projectfs.New(t.TempDir())

	_, err := New(fs, false).WriteBatch([]renderer.RenderedFile{
		{RelPath: "../outside.ts", Content: "x\n"},
	})
	if err == nil {
		t.Fatal("WriteBatch should reject paths escaping the target root")
	}
	if !errs.IsCode(err, errs.CodeFSAccess) {
		t.Errorf("Expected code %s, got %s", errs.CodeFSAccess, errs.CodeOf(err))
	}
	if errs.ExitCode(err) != 2 {
		t.Errorf("FS_ACCESS should map to exit code 2, got %d", errs.ExitCode(err))
	}
}

func TestStamp(t *testing.T) {
	tests := []struct {
		relPath string
		want    string
	}{
		{"user-profile/user-profile.component.ts", "// " + markerToken},
		{"user-profile/user-profile.component.html", "<!-- " + markerToken + " -->"},
		{"user-profile/user-profile.component.css", "/* " + markerToken + " */"},
		{"user-profile/user-profile.component.scss", "/* " + markerToken + " */"},
	}

	for _, tt := range tests {
		stamped := Stamp(tt.relPath, "body\n")
		firstLine, _, _ := strings.Cut(stamped, "\n")
		if firstLine != tt.want {
			t.Errorf("Stamp(%s) first line = %q, want %q", tt.relPath, firstLine, tt.want)
		}
		if !HasMarker(stamped) {
			t.Errorf("Stamp(%s) output not recognized by HasMarker", tt.relPath)
		}
	}
}

func TestHasMarkerOnlyFirstLine(t *testing.T) {
	if HasMarker("const x = 1;\n// " + markerToken + "\n") {
		t.Error("A marker past the first line must not make a file overwritable")
	}
}
