package chronofield

import (
	"fmt"

	"github.com/pkg/errors"
)

// BuildError reports an illegal DSL construction: incompatible capability
// mixing, invalid padding, duplicate or empty names, minLength > maxLength,
// an unknown Unicode directive letter, a locale-dependent directive, or an
// unsupported pattern length (§7).
type BuildError struct {
	Msg string
}

func (e *BuildError) Error() string { return "chronofield: build: " + e.Msg }

func newBuildError(format string, args ...interface{}) *BuildError {
	return &BuildError{Msg: fmt.Sprintf(format, args...)}
}

// ParseError reports that no branch of the format tree accepted the input,
// or that the input was not fully consumed by a full-match parse (§7).
type ParseError struct {
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("chronofield: parsing %q: %s", e.Input, e.Msg)
}

// FieldValueError reports an out-of-range value, either assigned to a
// strict field during finalisation or caught by per-directive parse-time
// range checking (§7).
type FieldValueError struct {
	Field    string
	Value    int64
	Min, Max int64
}

func (e *FieldValueError) Error() string {
	return fmt.Sprintf("chronofield: field %q value %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// MissingFieldError reports that a field required for formatting or
// finalisation was unset (§7).
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("chronofield: missing field %q", e.Field)
}

// InconsistentFieldsError reports that a cross-field check failed: a
// day-of-week mismatch, an AM/PM vs 24-hour mismatch, or a day-of-year vs
// month/day mismatch (§7).
type InconsistentFieldsError struct {
	Description string
}

func (e *InconsistentFieldsError) Error() string {
	return "chronofield: inconsistent fields: " + e.Description
}

// OverflowError reports that an instant computation exceeded the
// representable range (§4.7, §7).
type OverflowError struct {
	Msg string
}

func (e *OverflowError) Error() string { return "chronofield: overflow: " + e.Msg }

// wrapParseContext attaches position context to an error - Parser.Parse
// uses it once, on the error for input that no branch matched - without
// discarding the original error's type (callers type-switch past the wrap
// via errors.As). Grounded on the retrieval pack's pervasive use of
// github.com/pkg/errors for exactly this kind of call-site-context
// accumulation (see DESIGN.md).
func wrapParseContext(err error, context string) error {
	if err == nil {
		return nil
	}
	return errors.WithMessage(err, context)
}

// isSilentlyRejectable reports whether err is one of the kinds that
// ParseOrNull swallows rather than propagates (§7).
func isSilentlyRejectable(err error) bool {
	var (
		parseErr  *ParseError
		fieldErr  *FieldValueError
		inconErr  *InconsistentFieldsError
		missinErr *MissingFieldError
	)
	switch {
	case errors.As(err, &parseErr):
		return true
	case errors.As(err, &fieldErr):
		return true
	case errors.As(err, &inconErr):
		return true
	case errors.As(err, &missinErr):
		return true
	default:
		return false
	}
}
