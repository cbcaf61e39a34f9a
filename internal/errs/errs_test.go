package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodePlanCollision, "duplicate output path")
	if err == nil {
		t.Fatal("New should return non-nil error")
	}

	var e *E
	if !errors.As(err, &e) {
		t.Fatal("Error should be of type *E")
	}

	if e.Code != CodePlanCollision {
		t.Errorf("Expected code %s, got %s", CodePlanCollision, e.Code)
	}

	if e.Msg != "duplicate output path" {
		t.Errorf("Expected message %q, got %q", "duplicate output path", e.Msg)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(CodeFSAccess, "writer.commit", cause)

	if !errors.Is(err, cause) {
		t.Error("Wrapped error should unwrap to the original cause")
	}

	var e *E
	if !errors.As(err, &e) {
		t.Fatal("Wrapped error should be of type *E")
	}

	if e.Op != "writer.commit" {
		t.Errorf("Expected operation %q, got %q", "writer.commit", e.Op)
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{
			name: "direct coded error",
			err:  New(CodeUnknownTemplate, "no entry for pipe/legacy"),
			want: CodeUnknownTemplate,
		},
		{
			name: "coded error behind fmt wrapping",
			err:  fmt.Errorf("generate: %w", New(CodeWriteConflict, "hand-edited file")),
			want: CodeWriteConflict,
		},
		{
			name: "plain error",
			err:  errors.New("plain"),
			want: "",
		},
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: 0},
		{name: "fs access failure", err: New(CodeFSAccess, "read-only target"), want: 2},
		{name: "write conflict", err: New(CodeWriteConflict, "hand-edited file"), want: 1},
		{name: "indeterminate variant", err: New(CodeIndeterminateVariant, "no version"), want: 1},
		{name: "uncoded error", err: errors.New("plain"), want: 1},
		{name: "wrapped fs access", err: fmt.Errorf("outer: %w", New(CodeFSAccess, "mkdir")), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	err := Wrapf(CodeUnresolvedPlaceholder, "renderer.render", errors.New("map has no entry"), "placeholder %q", "Selector")
	msg := err.Error()
	if msg == "" {
		t.Fatal("Error message should not be empty")
	}
	if got := CodeOf(err); got != CodeUnresolvedPlaceholder {
		t.Errorf("Expected code %s, got %s", CodeUnresolvedPlaceholder, got)
	}
}
