package wire

import (
	"errors"
	"fmt"
	"strings"
)

// Codec errors.
var (
	// ErrUnexpectedElement reports a document whose root element is not the
	// record's element.
	ErrUnexpectedElement = errors.New("unexpected element")

	// ErrInvalidRecord reports a record that failed validation before encoding.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrUnknownFormat reports an unsupported serialization format.
	ErrUnknownFormat = errors.New("unknown format")
)

// DecodeError locates a decoding failure in the input document.
type DecodeError struct {
	// Path is the concrete path of the object being decoded.
	Path string

	// Element is the element or key being decoded, if any.
	Element string

	// Line is the 1-based input line. Zero for formats without lines.
	Line int

	// Err is the underlying error: model.ErrMalformedValue,
	// ErrUnexpectedElement, or a *model.ValidationError.
	Err error
}

// Error implements error.
func (e *DecodeError) Error() string {
	var sb strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&sb, "line %d: ", e.Line)
	}
	switch {
	case e.Path != "" && e.Element != "":
		sb.WriteString(e.Path + e.Element + ": ")
	case e.Path != "":
		sb.WriteString(e.Path + ": ")
	case e.Element != "":
		sb.WriteString("<" + e.Element + ">: ")
	}
	sb.WriteString(e.Err.Error())
	return sb.String()
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
