package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestImportError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ImportError
		expected string
	}{
		{
			name: "Message only",
			err: &ImportError{
				Category: CategoryFile,
				Code:     CodeFileNotFound,
				Message:  "file not found: input.csv",
			},
			expected: "file not found: input.csv",
		},
		{
			name: "Message with suggestion",
			err: &ImportError{
				Category:   CategoryParse,
				Code:       CodeEncodingError,
				Message:    "could not decode file",
				Suggestion: "save the file as UTF-8 CSV",
			},
			expected: "could not decode file (suggestion: save the file as UTF-8 CSV)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestImportError_GetExitCode(t *testing.T) {
	tests := []struct {
		category ErrorCategory
		want     int
	}{
		{CategoryFile, 2},
		{CategoryParse, 3},
		{CategoryConfiguration, 4},
		{CategoryPipeline, 5},
		{CategoryInternal, 5},
		{ErrorCategory("unknown"), 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			err := New(tt.category, CodeUnexpectedError, "test")
			if got := err.GetExitCode(); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := Wrap(cause, CategoryParse, CodeInvalidFormat, "could not parse file")

	if err.Cause != cause {
		t.Error("Expected cause to be preserved")
	}
	if err.Unwrap() != cause {
		t.Error("Expected Unwrap to return the cause")
	}

	if Wrap(nil, CategoryParse, CodeInvalidFormat, "ignored") != nil {
		t.Error("Expected Wrap(nil) to return nil")
	}
}

func TestFileError(t *testing.T) {
	err := FileError(CodeFileEmpty, "upload.csv", nil)

	if err.Category != CategoryFile {
		t.Errorf("Expected category %s, got %s", CategoryFile, err.Category)
	}
	if err.Code != CodeFileEmpty {
		t.Errorf("Expected code %s, got %s", CodeFileEmpty, err.Code)
	}
	if !strings.Contains(err.Message, "upload.csv") {
		t.Errorf("Expected message to name the file, got %q", err.Message)
	}
	if err.Suggestion == "" {
		t.Error("Expected a suggestion to be set")
	}
	if err.Context["file_path"] != "upload.csv" {
		t.Errorf("Expected file_path context, got %v", err.Context["file_path"])
	}
}

func TestWithContext(t *testing.T) {
	err := New(CategoryPipeline, CodeProcessingError, "test").
		WithContext("run_id", "abc").
		WithContext("rows", 12)

	if err.Context["run_id"] != "abc" {
		t.Errorf("Expected run_id context, got %v", err.Context["run_id"])
	}
	if err.Context["rows"] != 12 {
		t.Errorf("Expected rows context, got %v", err.Context["rows"])
	}
}

func TestAsImportError(t *testing.T) {
	importErr := ParseError(CodeMissingHeader, "input.csv", nil)
	wrapped := fmt.Errorf("outer: %w", importErr)

	got, ok := AsImportError(wrapped)
	if !ok {
		t.Fatal("Expected to extract ImportError from wrapped chain")
	}
	if got.Code != CodeMissingHeader {
		t.Errorf("Expected code %s, got %s", CodeMissingHeader, got.Code)
	}

	if _, ok := AsImportError(fmt.Errorf("plain")); ok {
		t.Error("Expected plain error not to convert")
	}
}

func TestWrapIfNeeded(t *testing.T) {
	original := ConfigError(CodeInvalidConfig, "template_columns", nil)
	if got := WrapIfNeeded(original, CategoryInternal, CodeUnexpectedError, "ignored"); got != original {
		t.Error("Expected existing ImportError to pass through unchanged")
	}

	plain := fmt.Errorf("plain failure")
	got := WrapIfNeeded(plain, CategoryInternal, CodeUnexpectedError, "wrapped")
	if got.Category != CategoryInternal || got.Cause != plain {
		t.Error("Expected plain error to be wrapped")
	}

	if WrapIfNeeded(nil, CategoryInternal, CodeUnexpectedError, "ignored") != nil {
		t.Error("Expected nil to stay nil")
	}
}
