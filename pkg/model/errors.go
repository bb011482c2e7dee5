package model

import (
	"errors"
	"fmt"
)

// Validation errors. A *ValidationError wraps exactly one of these.
var (
	ErrValueType        = errors.New("invalid value type for parameter")
	ErrOutOfRange       = errors.New("value out of range")
	ErrTooShort         = errors.New("value too short")
	ErrTooLong          = errors.New("value too long")
	ErrPatternMismatch  = errors.New("value does not match pattern")
	ErrNotEnumerated    = errors.New("value not in enumeration")
	ErrInvalidFormat    = errors.New("value has invalid format")
	ErrTooManyItems     = errors.New("too many list items")
	ErrDuplicateKey     = errors.New("duplicate unique key")
	ErrTableFull        = errors.New("table is full")
	ErrNotWritable      = errors.New("parameter is not writable")
	ErrUnknownParameter = errors.New("unknown parameter")
)

// Record errors.
var (
	ErrNotList          = errors.New("parameter is not list-valued")
	ErrUnknownChild     = errors.New("unknown child object")
	ErrNotTable         = errors.New("child object is not a table")
	ErrWrongDefinition  = errors.New("row does not belong to this table")
	ErrDuplicateRow     = errors.New("duplicate instance number")
	ErrRowAttached      = errors.New("row already belongs to a table")
	ErrNoSuchObject     = errors.New("no such object")
	ErrMalformedValue   = errors.New("malformed value")
	ErrNotObjectPath    = errors.New("path does not address an object")
	ErrNotParameterPath = errors.New("path does not address a parameter")
)

// ValidationError reports a value that violates a declared constraint.
type ValidationError struct {
	// Object is the path of the object holding the parameter.
	Object string

	// Parameter is the CWMP name of the offending parameter. For unique
	// key violations it is the comma-separated key.
	Parameter string

	// Value is the rejected value.
	Value any

	// Rule describes the violated constraint, e.g. "min -1" or "maxLength 64".
	Rule string

	// Err is the sentinel error for the kind of violation.
	Err error
}

// Error implements error.
func (e *ValidationError) Error() string {
	name := e.Object + e.Parameter
	if e.Rule == "" {
		return fmt.Sprintf("%s: value %s: %v", name, formatAny(e.Value), e.Err)
	}
	return fmt.Sprintf("%s: value %s violates %s: %v", name, formatAny(e.Value), e.Rule, e.Err)
}

// Unwrap returns the sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func formatAny(v any) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	case []byte:
		return fmt.Sprintf("%x", x)
	case nil:
		return "<nil>"
	}
	return fmt.Sprintf("%v", v)
}
