package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an analysis failure
type Code string

const (
	CodeMissingFile        Code = "MISSING_FILE"
	CodeMissingColumn      Code = "MISSING_COLUMN"
	CodeEmptyGroup         Code = "EMPTY_GROUP"
	CodeInsufficientGroups Code = "INSUFFICIENT_GROUPS"
	CodeOutputDirMissing   Code = "OUTPUT_DIR_MISSING"
	CodeInvalidRecord      Code = "INVALID_RECORD"
	CodeInvalidConfig      Code = "INVALID_CONFIG"
	CodeRender             Code = "RENDER_FAILED"
	CodeNotFound           Code = "NOT_FOUND"
)

// AnalysisError represents a failure while loading, analyzing or rendering data
type AnalysisError struct {
	Code    Code
	Message string
	Err     error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap allows errors.Is and errors.As to see the cause
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// Is matches any AnalysisError with the same code, so sentinels work with errors.Is
func (e *AnalysisError) Is(target error) bool {
	var t *AnalysisError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code && t.Message == ""
}

// WithContext adds context to the error
func (e *AnalysisError) WithContext(key string, value interface{}) *AnalysisError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// StatusCode maps the code to an HTTP status for the report server
func (e *AnalysisError) StatusCode() int {
	switch e.Code {
	case CodeMissingFile, CodeNotFound:
		return http.StatusNotFound
	case CodeMissingColumn, CodeInvalidRecord, CodeEmptyGroup, CodeInsufficientGroups:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// New creates a new analysis error
func New(code Code, message string, cause error) *AnalysisError {
	return &AnalysisError{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// Sentinels for errors.Is; they match any error carrying the same code.
var (
	ErrMissingFile        = &AnalysisError{Code: CodeMissingFile}
	ErrMissingColumn      = &AnalysisError{Code: CodeMissingColumn}
	ErrEmptyGroup         = &AnalysisError{Code: CodeEmptyGroup}
	ErrInsufficientGroups = &AnalysisError{Code: CodeInsufficientGroups}
	ErrOutputDirMissing   = &AnalysisError{Code: CodeOutputDirMissing}
	ErrInvalidRecord      = &AnalysisError{Code: CodeInvalidRecord}
	ErrInvalidConfig      = &AnalysisError{Code: CodeInvalidConfig}
	ErrNotFound           = &AnalysisError{Code: CodeNotFound}
)

// MissingFile reports an input file that could not be opened
func MissingFile(path string, cause error) *AnalysisError {
	return New(CodeMissingFile, fmt.Sprintf("dataset %s not found", path), cause).WithContext("path", path)
}

// MissingColumn reports a column the table does not have
func MissingColumn(column string, available []string) *AnalysisError {
	return New(CodeMissingColumn, fmt.Sprintf("column %q not found", column), nil).
		WithContext("column", column).
		WithContext("available", available)
}

// EmptyGroup reports a group too small for the requested computation
func EmptyGroup(group string, size, need int) *AnalysisError {
	return New(CodeEmptyGroup, fmt.Sprintf("group %q has %d observations, need at least %d", group, size, need), nil).
		WithContext("group", group)
}

// InsufficientGroups reports a test given too few groups
func InsufficientGroups(have, need int) *AnalysisError {
	return New(CodeInsufficientGroups, fmt.Sprintf("got %d groups, need at least %d", have, need), nil)
}

// OutputDirMissing reports a chart whose target directory does not exist
func OutputDirMissing(dir string, cause error) *AnalysisError {
	return New(CodeOutputDirMissing, fmt.Sprintf("output directory %s does not exist", dir), cause).WithContext("dir", dir)
}

// InvalidRecord reports a row that failed validation
func InvalidRecord(row int, cause error) *AnalysisError {
	return New(CodeInvalidRecord, fmt.Sprintf("row %d is invalid", row), cause).WithContext("row", row)
}

// CodeOf returns the code of the first AnalysisError in err's chain, or "" if none
func CodeOf(err error) Code {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}
