package model

import "fmt"

// Access flags for parameters and objects.
type Access uint8

const (
	// AccessRead allows reading the parameter.
	AccessRead Access = 1 << iota

	// AccessWrite allows a management client to write the parameter, or to
	// add and delete rows of a table object.
	AccessWrite

	// AccessReadOnly is read access only.
	AccessReadOnly = AccessRead

	// AccessReadWrite is read and write access.
	AccessReadWrite = AccessRead | AccessWrite
)

// CanRead returns true if reading is allowed.
func (a Access) CanRead() bool { return a&AccessRead != 0 }

// CanWrite returns true if writing is allowed.
func (a Access) CanWrite() bool { return a&AccessWrite != 0 }

// String returns the access flags as a string.
func (a Access) String() string {
	var s string
	if a.CanRead() {
		s += "R"
	}
	if a.CanWrite() {
		s += "W"
	}
	if s == "" {
		return "-"
	}
	return s
}

// ParseAccess parses the schema spelling of an access mode.
// An empty string means read-only.
func ParseAccess(s string) (Access, error) {
	switch s {
	case "", "readOnly":
		return AccessReadOnly, nil
	case "readWrite":
		return AccessReadWrite, nil
	}
	return 0, fmt.Errorf("unknown access %q", s)
}

// DataType represents the CWMP type of a parameter value.
type DataType uint8

const (
	DataTypeUnknown DataType = iota
	DataTypeBoolean
	DataTypeInt
	DataTypeUnsignedInt
	DataTypeLong
	DataTypeUnsignedLong
	DataTypeString
	DataTypeDateTime
	DataTypeBase64
	DataTypeHexBinary
)

var dataTypeNames = []string{
	"unknown", "boolean", "int", "unsignedInt", "long", "unsignedLong",
	"string", "dateTime", "base64", "hexBinary",
}

// String returns the CWMP type name.
func (d DataType) String() string {
	if int(d) < len(dataTypeNames) {
		return dataTypeNames[d]
	}
	return "unknown"
}

// ParseDataType parses a CWMP type name.
func ParseDataType(s string) (DataType, error) {
	for i, name := range dataTypeNames {
		if i > 0 && name == s {
			return DataType(i), nil
		}
	}
	return DataTypeUnknown, fmt.Errorf("unknown data type %q", s)
}

// IsInteger reports whether d is one of the integer types.
func (d DataType) IsInteger() bool {
	switch d {
	case DataTypeInt, DataTypeUnsignedInt, DataTypeLong, DataTypeUnsignedLong:
		return true
	}
	return false
}

// IsBinary reports whether d holds raw bytes.
func (d DataType) IsBinary() bool {
	return d == DataTypeBase64 || d == DataTypeHexBinary
}

// Bounds returns the representable range of an integer type.
// For DataTypeUnsignedLong, max is reported as the int64 maximum; callers
// that need the full range check unsigned values separately.
func (d DataType) Bounds() (min int64, max int64) {
	switch d {
	case DataTypeInt:
		return -1 << 31, 1<<31 - 1
	case DataTypeUnsignedInt:
		return 0, 1<<32 - 1
	case DataTypeLong:
		return -1 << 63, 1<<63 - 1
	case DataTypeUnsignedLong:
		return 0, 1<<63 - 1
	}
	return 0, 0
}
