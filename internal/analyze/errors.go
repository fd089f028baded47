// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies an analysis failure so callers can branch on it without
// string matching.
type Code string

const (
	// CodeNotFound means the results file path did not resolve.
	CodeNotFound Code = "not_found"

	// CodeEmptyResult means the file was readable but produced zero
	// valid records (distinct from not-found).
	CodeEmptyResult Code = "empty_result"

	// CodeParseFailure means the file exists but could not be decoded
	// (e.g. malformed JSON or an unreadable stream), distinct from a
	// well-formed file that simply holds no records.
	CodeParseFailure Code = "parse_failure"

	// CodeInvalidParameter means a caller-supplied parameter was rejected
	// before any aggregation work began.
	CodeInvalidParameter Code = "invalid_parameter"
)

// Error is the structured failure value returned across the engine's
// public entry points. Every failure path terminates in one of these;
// nothing escapes the engine untyped.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`

	// Path is the attempted file path for not-found errors.
	Path string `json:"path,omitempty"`

	// Available lists alternative result files for not-found errors,
	// when the results directory is listable.
	Available []string `json:"available_files,omitempty"`
}

func (e *Error) Error() string {
	if e.Code == CodeNotFound && len(e.Available) > 0 {
		return fmt.Sprintf("%s (available: %s)", e.Message, strings.Join(e.Available, ", "))
	}
	return e.Message
}

// IsCode reports whether err is an *Error with the given code.
func IsCode(err error, code Code) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == code
}

func notFoundErr(path string, available []string) *Error {
	return &Error{
		Code:      CodeNotFound,
		Message:   fmt.Sprintf("results file not found: %s", path),
		Path:      path,
		Available: available,
	}
}

func parseFailureErr(path string, err error) *Error {
	return &Error{
		Code:    CodeParseFailure,
		Message: fmt.Sprintf("could not parse %s: %v", path, err),
		Path:    path,
	}
}

func emptyResultErr(path string) *Error {
	return &Error{
		Code:    CodeEmptyResult,
		Message: fmt.Sprintf("no articles found in %s", path),
		Path:    path,
	}
}

func invalidParamErr(format string, args ...any) *Error {
	return &Error{
		Code:    CodeInvalidParameter,
		Message: fmt.Sprintf(format, args...),
	}
}
