package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Kind classifies a pipeline failure. Reports and the run history store the
// kind alongside the message so callers can tell a broken upstream artifact
// from a failing external tool or API.
type Kind string

const (
	// KindMissingInput means a folder has no raw recording to start from.
	KindMissingInput Kind = "missing_input"
	// KindMissingDependency means a step's upstream artifact is absent or empty.
	KindMissingDependency Kind = "missing_dependency"
	// KindToolError means an external binary (ffmpeg, ffprobe) failed.
	KindToolError Kind = "tool_error"
	// KindAPIError means a remote model call failed.
	KindAPIError Kind = "api_error"
	// KindEmptyResult means a step produced no usable output.
	KindEmptyResult Kind = "empty_result"
	// KindTimeout means a step exceeded its configured deadline.
	KindTimeout Kind = "timeout"
	// KindMissingCredential means a required API key is not configured.
	// This one is fatal for the whole run, not scoped to a folder.
	KindMissingCredential Kind = "missing_credential"
	// KindConflict means another invocation holds the folder's lock.
	KindConflict Kind = "conflict"
)

// Error is the standardized error type. A zero Kind marks a plain wrapped
// error; kinded errors additionally carry an HTTP status for API failures.
type Error struct {
	kind    Kind
	message string
	cause   error
	status  int
}

// New creates a new error without a kind.
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error without a kind.
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{message: message, cause: err}
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{message: fmt.Sprintf(format, args...), cause: err}
}

// MissingInput reports a folder whose raw recording is absent or empty.
func MissingInput(path string) *Error {
	return &Error{kind: KindMissingInput, message: fmt.Sprintf("raw input missing or empty: %s", path)}
}

// MissingDependency reports a step whose upstream artifact is absent or empty.
func MissingDependency(step string, path string) *Error {
	return &Error{kind: KindMissingDependency, message: fmt.Sprintf("%s needs %s, which is missing or empty", step, path)}
}

// ToolError reports an external binary failure.
func ToolError(tool string, cause error) *Error {
	return &Error{kind: KindToolError, message: fmt.Sprintf("%s failed", tool), cause: cause}
}

// APIError reports a remote model failure. status is the HTTP status when
// known, 0 otherwise.
func APIError(status int, cause error) *Error {
	msg := "api call failed"
	if status > 0 {
		msg = fmt.Sprintf("api call failed with status %d", status)
	}
	return &Error{kind: KindAPIError, message: msg, cause: cause, status: status}
}

// EmptyResult reports a step that returned no usable content.
func EmptyResult(what string) *Error {
	return &Error{kind: KindEmptyResult, message: fmt.Sprintf("%s came back empty", what)}
}

// Timeout reports a step that ran past its deadline.
func Timeout(operation string, limit time.Duration) *Error {
	return &Error{kind: KindTimeout, message: fmt.Sprintf("%s timed out after %s", operation, limit)}
}

// MissingCredential reports an unset API key environment variable.
func MissingCredential(envVar string) *Error {
	return &Error{kind: KindMissingCredential, message: fmt.Sprintf("%s is not set", envVar)}
}

// Conflict reports a folder already being processed by another invocation.
func Conflict(folder string) *Error {
	return &Error{kind: KindConflict, message: fmt.Sprintf("folder %s is locked by another run", folder)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target by kind and message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind && e.message == t.message
}

// Kind returns the error's classification.
func (e *Error) Kind() Kind {
	return e.kind
}

// Status returns the HTTP status of an API failure, 0 when unknown.
func (e *Error) Status() int {
	return e.status
}

// KindOf walks the error chain and returns the first classification found.
// Unclassified errors return the empty Kind.
func KindOf(err error) Kind {
	var e *Error
	for stderrors.As(err, &e) {
		if e.kind != "" {
			return e.kind
		}
		if e.cause == nil {
			break
		}
		err = e.cause
	}
	return ""
}

// IsKind reports whether err carries the given classification anywhere in
// its chain.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// StatusOf walks the error chain and returns the first HTTP status found,
// 0 when none is recorded.
func StatusOf(err error) int {
	var e *Error
	for stderrors.As(err, &e) {
		if e.status != 0 {
			return e.status
		}
		if e.cause == nil {
			break
		}
		err = e.cause
	}
	return 0
}
