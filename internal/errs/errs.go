// Package errs provides coded structured errors for the ngforge CLI.
//
// Overview:
//   - Responsibility: Classify generation failures with stable codes
//   - Key Types: Code for error classification, E for structured errors
//   - Concurrency Model: All functions are safe for concurrent use
//   - Error Semantics: Compatible with standard library error wrapping
//   - Performance Notes: Minimal allocations on the error path
//
// Usage:
//
//	err := errs.New(errs.CodePlanCollision, "duplicate output path")
//	if errs.IsCode(err, errs.CodePlanCollision) { ... }
//	os.Exit(errs.ExitCode(err))
package errs

import (
	"errors"
	"fmt"
)

// Code classifies a generation failure. Every fail-fast condition in the
// pipeline carries exactly one code; callers dispatch on the code rather
// than on message text.
type Code string

const (
	// CodeUnknownTemplate marks a registry lookup for a kind/variant pair
	// with no registered template set. Authoring defect, never retried.
	CodeUnknownTemplate Code = "UNKNOWN_TEMPLATE"

	// CodeUnknownVariantTag marks a template body referencing a variant
	// tag outside the registered set. Authoring defect, never retried.
	CodeUnknownVariantTag Code = "UNKNOWN_VARIANT_TAG"

	// CodeIndeterminateVariant marks a resolution attempt with neither an
	// explicit override nor a detected framework version.
	CodeIndeterminateVariant Code = "INDETERMINATE_VARIANT"

	// CodeInvalidName marks a raw artifact name that does not normalize
	// to a non-empty identifier-safe form.
	CodeInvalidName Code = "INVALID_NAME"

	// CodePlanCollision marks two descriptors in one plan resolving to
	// the same relative path.
	CodePlanCollision Code = "PLAN_COLLISION"

	// CodeUnresolvedPlaceholder marks a template placeholder with no
	// corresponding value. Partial output is never returned.
	CodeUnresolvedPlaceholder Code = "UNRESOLVED_PLACEHOLDER"

	// CodeWriteConflict marks an existing target file that was not
	// produced by a prior ngforge run.
	CodeWriteConflict Code = "WRITE_CONFLICT"

	// CodeFSAccess marks a file-system failure unrelated to ngforge's own
	// conflict detection (permissions, traversal outside the target root).
	CodeFSAccess Code = "FS_ACCESS"
)

// E represents a structured error with code, operation, and message.
type E struct {
	Code Code   // Error classification code
	Op   string // Operation that failed
	Err  error  // Underlying error (may be nil)
	Msg  string // Human-readable message
}

// Error implements the error interface.
func (e *E) Error() string {
	switch {
	case e.Err != nil && e.Msg != "":
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
}

// Unwrap returns the underlying error for error unwrapping.
func (e *E) Unwrap() error {
	return e.Err
}

// New creates a new structured error with the given code and message.
func New(code Code, msg string) error {
	return &E{Code: code, Msg: msg}
}

// Newf creates a new structured error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &E{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates a new structured error wrapping an existing error.
// The operation name identifies where the failure occurred.
func Wrap(code Code, op string, err error) error {
	return &E{Code: code, Op: op, Err: err}
}

// Wrapf creates a new structured error wrapping an existing error with a
// formatted message.
func Wrapf(code Code, op string, err error, format string, args ...any) error {
	return &E{Code: code, Op: op, Err: err, Msg: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the error code from an error.
// Returns empty string if the error does not carry a code.
func CodeOf(err error) Code {
	var e *E
	if err != nil && errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether an error carries a specific code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// ExitCode maps an error to the CLI process exit code: 0 for nil, 2 for
// file-system access failures, 1 for every other fail-fast condition.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if CodeOf(err) == CodeFSAccess {
		return 2
	}
	return 1
}
