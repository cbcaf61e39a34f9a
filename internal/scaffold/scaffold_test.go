package scaffold

import (
	"testing"

	"github.com/ngforge/ngforge/internal/errs"
	"github.com/ngforge/ngforge/internal/planner"
	"github.com/ngforge/ngforge/internal/projectfs"
	"github.com/ngforge/ngforge/internal/registry"
	"github.com/ngforge/ngforge/internal/variant"
)

func mustRequest(t *testing.T, kind registry.Kind, name string, v variant.Variant, opts registry.Options) planner.Request {
	t.Helper()
	req, err := planner.NewRequest(kind, name, v, opts, "app", "css")
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}
	return req
}

func TestGenerateModernComponent(t *testing.T) {
	fs := projectfs.New(t.TempDir())
	req := mustRequest(t, registry.KindComponent, "user-profile", variant.Modern, registry.Options{})

	result, err := NewGenerator(fs).Generate(req, false)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	want := []string{
		"user-profile/user-profile.component.ts",
		"user-profile/user-profile.component.html",
		"user-profile/user-profile.component.css",
		"user-profile/user-profile.component.spec.ts",
	}
	if len(result.Written) != len(want) {
		t.Fatalf("Generate wrote %d files, want %d: %v", len(result.Written), len(want), result.Written)
	}
	for i, relPath := range want {
		if result.Written[i] != relPath {
			t.Errorf("Written[%d] = %s, want %s", i, result.Written[i], relPath)
		}
		exists, err := fs.FileExists(relPath)
		if err != nil {
			t.Fatalf("FileExists returned error: %v", err)
		}
		if !exists {
			t.Errorf("Generated file %s is missing", relPath)
		}
	}
}

func TestGenerateIdempotent(t *testing.T) {
	fs := projectfs.New(t.TempDir())
	req := mustRequest(t, registry.KindService, "auth", variant.Legacy, registry.Options{})
	gen := NewGenerator(fs)

	if _, err := gen.Generate(req, false); err != nil {
		t.Fatalf("First Generate returned error: %v", err)
	}
	first, err := fs.ReadFile("auth/auth.service.ts")
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}

	// Rerunning the identical request must succeed without --force and
	// leave byte-identical output.
	if _, err := gen.Generate(req, false); err != nil {
		t.Fatalf("Second Generate returned error: %v", err)
	}
	second, err := fs.ReadFile("auth/auth.service.ts")
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}

	if first != second {
		t.Errorf("Rerun output differs:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestGenerateDryRun(t *testing.T) {
	fs := projectfs.New(t.TempDir())
	req := mustRequest(t, registry.KindGuard, "admin", variant.Modern, registry.Options{})

	result, err := NewGenerator(fs).Generate(req, true)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if !result.DryRun {
		t.Error("Result should be flagged as a dry run")
	}
	if len(result.Planned) == 0 {
		t.Error("Dry run should still report the planned file set")
	}
	if len(result.Written) != 0 {
		t.Errorf("Dry run must write nothing, wrote %v", result.Written)
	}
	exists, err := fs.FileExists("admin/admin.guard.ts")
	if err != nil {
		t.Fatalf("FileExists returned error: %v", err)
	}
	if exists {
		t.Error("Dry run must not touch disk")
	}
}

func TestGenerateConflict(t *testing.T) {
	fs := projectfs.New(t.TempDir())
	if err := fs.WriteFile("auth/auth.service.ts", "hand-written\n", 0644); err != nil {
		t.Fatalf("Seeding file returned error: %v", err)
	}

	req := mustRequest(t, registry.KindService, "auth", variant.Modern, registry.Options{})
	_, err := NewGenerator(fs).Generate(req, false)
	if err == nil {
		t.Fatal("Generate should fail on an unmarked existing file")
	}
	if !errs.IsCode(err, errs.CodeWriteConflict) {
		t.Errorf("Expected code %s, got %s", errs.CodeWriteConflict, errs.CodeOf(err))
	}
}
