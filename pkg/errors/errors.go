// Package errors provides the structured error taxonomy for the importer.
//
// Errors carry a category, a specific code, optional context and a
// user-facing suggestion, so the CLI layer can map failures to exit codes
// and actionable messages. Row-level validation findings are deliberately
// NOT represented here: they are a domain outcome of a successful run, not
// a process failure.
package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCategory represents different categories of errors
type ErrorCategory string

const (
	CategoryFile          ErrorCategory = "file"
	CategoryParse         ErrorCategory = "parse"
	CategoryConfiguration ErrorCategory = "configuration"
	CategoryPipeline      ErrorCategory = "pipeline"
	CategoryInternal      ErrorCategory = "internal"
)

// ErrorCode represents specific error codes within categories
type ErrorCode string

const (
	// File errors
	CodeFileNotFound   ErrorCode = "file_not_found"
	CodeFilePermission ErrorCode = "file_permission"
	CodeFileEmpty      ErrorCode = "file_empty"
	CodeDirectoryError ErrorCode = "directory_error"

	// Parse errors
	CodeInvalidFormat ErrorCode = "invalid_format"
	CodeMissingHeader ErrorCode = "missing_header"
	CodeEncodingError ErrorCode = "encoding_error"

	// Configuration errors
	CodeInvalidConfig ErrorCode = "invalid_config"
	CodeMissingConfig ErrorCode = "missing_config"

	// Pipeline errors
	CodeProcessingError ErrorCode = "processing_error"

	// Internal errors
	CodeUnexpectedError ErrorCode = "unexpected_error"
)

// ImportError is the base error type for all application errors
type ImportError struct {
	Category   ErrorCategory     `json:"category"`
	Code       ErrorCode         `json:"code"`
	Message    string            `json:"message"`
	Suggestion string            `json:"suggestion,omitempty"`
	Context    Context           `json:"context,omitempty"`
	Cause      error             `json:"-"`
	StackTrace errors.StackTrace `json:"-"`
}

// Context provides additional information about the error
type Context map[string]interface{}

// Error implements the error interface
func (e *ImportError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s (suggestion: %s)", e.Message, e.Suggestion)
	}
	return e.Message
}

// Unwrap returns the underlying cause error
func (e *ImportError) Unwrap() error {
	return e.Cause
}

// GetExitCode returns an appropriate exit code for the error
func (e *ImportError) GetExitCode() int {
	switch e.Category {
	case CategoryFile:
		return 2
	case CategoryParse:
		return 3
	case CategoryConfiguration:
		return 4
	case CategoryPipeline, CategoryInternal:
		return 5
	default:
		return 1
	}
}

// WithContext adds context information to the error
func (e *ImportError) WithContext(key string, value interface{}) *ImportError {
	if e.Context == nil {
		e.Context = make(Context)
	}
	e.Context[key] = value
	return e
}

// WithSuggestion adds a suggestion for fixing the error
func (e *ImportError) WithSuggestion(suggestion string) *ImportError {
	e.Suggestion = suggestion
	return e
}

// New creates a new ImportError
func New(category ErrorCategory, code ErrorCode, message string) *ImportError {
	return &ImportError{
		Category:   category,
		Code:       code,
		Message:    message,
		StackTrace: errors.New("").(stackTracer).StackTrace(),
	}
}

// Wrap wraps an existing error with ImportError context
func Wrap(err error, category ErrorCategory, code ErrorCode, message string) *ImportError {
	if err == nil {
		return nil
	}

	return &ImportError{
		Category:   category,
		Code:       code,
		Message:    message,
		Cause:      err,
		StackTrace: errors.WithStack(err).(stackTracer).StackTrace(),
	}
}

// stackTracer interface for extracting stack traces
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Specific error constructors

// FileError creates a file-related error
func FileError(code ErrorCode, path string, err error) *ImportError {
	var message string
	var suggestion string

	switch code {
	case CodeFileNotFound:
		message = fmt.Sprintf("file not found: %s", path)
		suggestion = "check if the file path is correct and the file exists"
	case CodeFilePermission:
		message = fmt.Sprintf("permission denied accessing file: %s", path)
		suggestion = "check file permissions and ensure you have read access"
	case CodeFileEmpty:
		message = fmt.Sprintf("uploaded file is empty: %s", path)
		suggestion = "export the spreadsheet again and make sure it contains data"
	case CodeDirectoryError:
		message = fmt.Sprintf("directory error: %s", path)
		suggestion = "ensure the directory exists and is accessible"
	default:
		message = fmt.Sprintf("file error: %s", path)
		suggestion = "check the file and try again"
	}

	var result *ImportError
	if err != nil {
		result = Wrap(err, CategoryFile, code, message)
	} else {
		result = New(CategoryFile, code, message)
	}

	return result.
		WithSuggestion(suggestion).
		WithContext("file_path", path)
}

// ParseError creates a parsing-related error
func ParseError(code ErrorCode, file string, err error) *ImportError {
	var message string
	var suggestion string

	switch code {
	case CodeInvalidFormat:
		message = fmt.Sprintf("could not parse file: %s", file)
		suggestion = "check that the file is a valid CSV or Excel export"
	case CodeMissingHeader:
		message = fmt.Sprintf("no header row found in file: %s", file)
		suggestion = "ensure the first row contains the column names"
	case CodeEncodingError:
		message = fmt.Sprintf("could not decode file under any supported encoding: %s", file)
		suggestion = "save the file as UTF-8 CSV and try again"
	default:
		message = fmt.Sprintf("parse error in file: %s", file)
		suggestion = "check the file format and data integrity"
	}

	var result *ImportError
	if err != nil {
		result = Wrap(err, CategoryParse, code, message)
	} else {
		result = New(CategoryParse, code, message)
	}

	return result.
		WithSuggestion(suggestion).
		WithContext("file", file)
}

// ConfigError creates a configuration-related error
func ConfigError(code ErrorCode, setting string, err error) *ImportError {
	var message string
	var suggestion string

	switch code {
	case CodeInvalidConfig:
		message = fmt.Sprintf("invalid schema configuration: %s", setting)
		suggestion = "check the schema JSON document for valid values"
	case CodeMissingConfig:
		message = fmt.Sprintf("missing required configuration: %s", setting)
		suggestion = "provide this configuration setting or rely on the built-in defaults"
	default:
		message = fmt.Sprintf("configuration error: %s", setting)
		suggestion = "check your configuration and try again"
	}

	var result *ImportError
	if err != nil {
		result = Wrap(err, CategoryConfiguration, code, message)
	} else {
		result = New(CategoryConfiguration, code, message)
	}

	return result.
		WithSuggestion(suggestion).
		WithContext("setting", setting)
}

// PipelineError creates an error for a failed cleaning run
func PipelineError(code ErrorCode, operation string, err error) *ImportError {
	message := fmt.Sprintf("processing error during %s", operation)
	suggestion := "review the input file and schema configuration"

	var result *ImportError
	if err != nil {
		result = Wrap(err, CategoryPipeline, code, message)
	} else {
		result = New(CategoryPipeline, code, message)
	}

	return result.
		WithSuggestion(suggestion).
		WithContext("operation", operation)
}

// InternalError creates an internal error
func InternalError(code ErrorCode, operation string, err error) *ImportError {
	message := fmt.Sprintf("unexpected error during %s", operation)
	suggestion := "this is likely a bug - please report it with the error details"

	var result *ImportError
	if err != nil {
		result = Wrap(err, CategoryInternal, code, message)
	} else {
		result = New(CategoryInternal, code, message)
	}

	return result.
		WithSuggestion(suggestion).
		WithContext("operation", operation)
}

// Utility functions

// IsImportError checks if an error is an ImportError
func IsImportError(err error) bool {
	_, ok := err.(*ImportError)
	return ok
}

// AsImportError extracts an ImportError from an error chain
func AsImportError(err error) (*ImportError, bool) {
	var importErr *ImportError
	if errors.As(err, &importErr) {
		return importErr, true
	}
	return nil, false
}

// WrapIfNeeded wraps an error if it's not already an ImportError
func WrapIfNeeded(err error, category ErrorCategory, code ErrorCode, message string) *ImportError {
	if err == nil {
		return nil
	}

	if importErr, ok := AsImportError(err); ok {
		return importErr
	}

	return Wrap(err, category, code, message)
}
