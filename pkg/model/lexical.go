package model

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// localDateTime is the CWMP dateTime form without a zone designator.
const localDateTime = "2006-01-02T15:04:05.999999999"

// FormatValue returns the lexical wire form of a canonical value.
func FormatValue(t DataType, v any) string {
	switch x := v.(type) {
	case bool:
		return strconv.FormatBool(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case string:
		return x
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case []byte:
		if t == DataTypeHexBinary {
			return hex.EncodeToString(x)
		}
		return base64.StdEncoding.EncodeToString(x)
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}

// ParseValue parses the lexical form of a value of type t. Booleans accept
// "true", "false", "1" and "0". A dateTime without zone is read as UTC.
// Failures wrap ErrMalformedValue.
func ParseValue(t DataType, s string) (any, error) {
	bad := func(err error) error {
		return fmt.Errorf("%w: %q is not a valid %s: %v", ErrMalformedValue, s, t, err)
	}

	switch t {
	case DataTypeBoolean:
		switch s {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
		return nil, bad(strconv.ErrSyntax)

	case DataTypeInt:
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, bad(err)
		}
		return int32(n), nil

	case DataTypeLong:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, bad(err)
		}
		return n, nil

	case DataTypeUnsignedInt:
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, bad(err)
		}
		return uint32(n), nil

	case DataTypeUnsignedLong:
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, bad(err)
		}
		return n, nil

	case DataTypeString:
		return s, nil

	case DataTypeDateTime:
		if tm, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return tm, nil
		}
		tm, err := time.ParseInLocation(localDateTime, s, time.UTC)
		if err != nil {
			return nil, bad(err)
		}
		return tm, nil

	case DataTypeBase64:
		b, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(s), ""))
		if err != nil {
			return nil, bad(err)
		}
		return b, nil

	case DataTypeHexBinary:
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, bad(err)
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w: unknown type %s", ErrMalformedValue, t)
}

// TypeName returns the xsd type used in CWMP ParameterValueStruct values.
func (d DataType) TypeName() string {
	return "xsd:" + d.String()
}
