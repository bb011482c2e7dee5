package log

import (
	"time"

	"github.com/google/uuid"
)

// Event represents one observation made while encoding or decoding a
// data-model document. CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// DocumentID groups the events of one Marshal or Unmarshal call (UUID).
	DocumentID string `cbor:"2,keyasint"`

	// Direction indicates whether the document was being read or written.
	Direction Direction `cbor:"3,keyasint"`

	// Format is the serialization format ("xml", "yaml", "cbor", ...).
	Format string `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// Model is the data model of the document ("Device:2.12").
	Model string `cbor:"6,keyasint,omitempty"`

	// Source names the file or stream, when known.
	Source string `cbor:"7,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Document *DocumentEvent  `cbor:"10,keyasint,omitempty"`
	Skipped  *SkippedEvent   `cbor:"11,keyasint,omitempty"`
	Error    *ErrorEventData `cbor:"14,keyasint,omitempty"`
}

// NewDocumentID returns a fresh document identifier.
func NewDocumentID() string {
	return uuid.NewString()
}

// Direction indicates the direction of a codec call.
type Direction uint8

const (
	// DirectionDecode indicates a document being read into records.
	DirectionDecode Direction = 0
	// DirectionEncode indicates records being written as a document.
	DirectionEncode Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionDecode:
		return "DECODE"
	case DirectionEncode:
		return "ENCODE"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryDocument summarizes a completed document.
	CategoryDocument Category = 0
	// CategorySkipped records an element or parameter left out of the result.
	CategorySkipped Category = 1
	// CategoryError records a failed document.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryDocument:
		return "DOCUMENT"
	case CategorySkipped:
		return "SKIPPED"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// DocumentEvent summarizes a document once it has been fully read or written.
type DocumentEvent struct {
	// Root is the path of the top-level record ("Device.").
	Root string `cbor:"1,keyasint"`

	// Objects counts the records in the document, root included.
	Objects int `cbor:"2,keyasint"`

	// Parameters counts the parameter values carried.
	Parameters int `cbor:"3,keyasint"`

	// Size is the document size in bytes, when known.
	Size int `cbor:"4,keyasint,omitempty"`

	// Duration is the time spent in the codec. Stored as nanoseconds.
	Duration time.Duration `cbor:"5,keyasint,omitempty"`
}

// SkippedEvent records input ignored by a decoder or output withheld by an
// encoder.
type SkippedEvent struct {
	// Path of the enclosing object ("Device.DeviceInfo.").
	Path string `cbor:"1,keyasint"`

	// Element is the skipped element or parameter name.
	Element string `cbor:"2,keyasint"`

	// Line is the input line of the element (decode only).
	Line int `cbor:"3,keyasint,omitempty"`

	// Reason explains why it was skipped.
	Reason SkipReason `cbor:"4,keyasint"`
}

// SkipReason explains a SkippedEvent.
type SkipReason uint8

const (
	// SkipUnknownElement marks an element the schema does not define,
	// typically a vendor extension.
	SkipUnknownElement SkipReason = 0
	// SkipNewerVersion marks a definition introduced after the target
	// data-model version.
	SkipNewerVersion SkipReason = 1
)

// String returns the reason name.
func (r SkipReason) String() string {
	switch r {
	case SkipUnknownElement:
		return "UNKNOWN_ELEMENT"
	case SkipNewerVersion:
		return "NEWER_VERSION"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures a codec failure.
type ErrorEventData struct {
	// Path of the object being processed, if known.
	Path string `cbor:"1,keyasint,omitempty"`

	// Element being processed, if known.
	Element string `cbor:"2,keyasint,omitempty"`

	// Line is the input line (decode only).
	Line int `cbor:"3,keyasint,omitempty"`

	// Message is the error message.
	Message string `cbor:"4,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"5,keyasint,omitempty"`
}
