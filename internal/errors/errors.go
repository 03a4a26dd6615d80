// Package errors provides structured error types and exit codes for edfdur.
package errors

import (
	"fmt"
)

// Exit codes returned by the edfdur command.
const (
	ExitSuccess       = 0  // Success
	ExitRuntimeError  = 1  // Runtime error (unexpected failure)
	ExitConfigError   = 2  // Configuration error (bad flag, config file, env file)
	ExitSoftwareError = 70 // Input error that stops the batch (sysexits EX_SOFTWARE)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindList
	KindCorrupt
)

// EdfdurError is the base error type for edfdur.
type EdfdurError struct {
	Kind    ErrorKind
	Message string
	Path    string // Input path as given by the user, if applicable
	List    string // List file that named Path, if any
	Cause   error  // Underlying error
}

func (e *EdfdurError) Error() string {
	switch {
	case e.List != "":
		return fmt.Sprintf("%s (%s) listed in (%s)", e.Message, e.Path, e.List)
	case e.Path != "":
		return fmt.Sprintf("%s (%s)", e.Message, e.Path)
	}
	return e.Message
}

func (e *EdfdurError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *EdfdurError) ExitCode() int {
	switch e.Kind {
	case KindConfig:
		return ExitConfigError
	case KindNotFound, KindList:
		return ExitSoftwareError
	default:
		return ExitRuntimeError
	}
}

// Fatal reports whether the error stops the whole batch.
// Corrupted headers are skipped; missing inputs and unreadable lists are not.
func (e *EdfdurError) Fatal() bool {
	return e.Kind != KindCorrupt
}

// Config creates a new configuration error.
func Config(message string) *EdfdurError {
	return &EdfdurError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *EdfdurError {
	return Config(fmt.Sprintf(format, args...))
}

// NotFound creates an error for an input path that does not exist.
func NotFound(path string, cause error) *EdfdurError {
	return &EdfdurError{
		Kind:    KindNotFound,
		Message: "file does not exist",
		Path:    path,
		Cause:   cause,
	}
}

// NotFoundInList creates an error for a list entry that does not exist.
func NotFoundInList(path, list string, cause error) *EdfdurError {
	e := NotFound(path, cause)
	e.List = list
	return e
}

// ListOpen creates an error for a list file that could not be read.
func ListOpen(path string, cause error) *EdfdurError {
	return &EdfdurError{
		Kind:    KindList,
		Message: "error opening",
		Path:    path,
		Cause:   cause,
	}
}

// Corrupt creates an error for an EDF file whose header could not be decoded.
func Corrupt(path string, cause error) *EdfdurError {
	return &EdfdurError{
		Kind:    KindCorrupt,
		Message: "header corrupted",
		Path:    path,
		Cause:   cause,
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if ee, ok := err.(*EdfdurError); ok {
		return ee.ExitCode()
	}
	return ExitRuntimeError
}
