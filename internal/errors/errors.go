// Package errors provides structured error types and exit codes for benchcmp.
package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/AndreyAkinshin/benchcmp/pkg/benchcmp"
)

// Exit codes, mirrored from pkg/benchcmp for internal callers.
const (
	ExitSuccess          = benchcmp.ExitSuccess
	ExitRuntimeError     = benchcmp.ExitFailure
	ExitConfigError      = benchcmp.ExitConfigError
	ExitEnvironmentError = benchcmp.ExitEnvError
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
	KindMissingSource
	KindMalformedLine
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindNotFound:
		return "not found"
	case KindValidation:
		return "validation"
	case KindMissingSource:
		return "missing source"
	case KindMalformedLine:
		return "malformed line"
	default:
		return "runtime"
	}
}

// BenchcmpError is the base error type for benchcmp.
type BenchcmpError struct {
	Kind    ErrorKind
	Message string
	Path    string // Source path if applicable
	Line    int    // 1-based line number within the source, 0 if unknown
	Cause   error  // Underlying error
}

func (e *BenchcmpError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

func (e *BenchcmpError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *BenchcmpError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindMissingSource:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *BenchcmpError {
	return &BenchcmpError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *BenchcmpError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *BenchcmpError {
	return &BenchcmpError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *BenchcmpError {
	return Config(fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *BenchcmpError {
	return &BenchcmpError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *BenchcmpError {
	return &BenchcmpError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// MissingSource reports that the text to extract data from does not exist.
func MissingSource(path string) *BenchcmpError {
	return &BenchcmpError{
		Kind:    KindMissingSource,
		Message: fmt.Sprintf("cannot extract data: file %s does not exist", path),
	}
}

// MalformedLine reports a line that cannot be turned into data.
func MalformedLine(line int, format string, args ...interface{}) *BenchcmpError {
	return &BenchcmpError{
		Kind:    KindMalformedLine,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
	}
}

// IsKind reports whether any error in err's chain is a BenchcmpError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var be *BenchcmpError
	if stderrors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var be *BenchcmpError
	if stderrors.As(err, &be) {
		return be.ExitCode()
	}
	return ExitRuntimeError
}
