package model

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/tr069-model/tr069-go/pkg/version"
)

// Range is an inclusive integer range. A nil bound is open.
type Range struct {
	Min *int64
	Max *int64
}

// Bound returns a pointer to v, for use in Range literals.
func Bound(v int64) *int64 { return &v }

// String returns the range as a rule description.
func (r Range) String() string {
	switch {
	case r.Min != nil && r.Max != nil:
		return fmt.Sprintf("range [%d, %d]", *r.Min, *r.Max)
	case r.Min != nil:
		return fmt.Sprintf("min %d", *r.Min)
	case r.Max != nil:
		return fmt.Sprintf("max %d", *r.Max)
	}
	return "range"
}

// Sentinel is a special value that is accepted even when it lies outside
// every declared range, such as -1 for an infinite lease.
type Sentinel struct {
	Value   int64
	Meaning string
}

// ParameterDef describes a parameter of an object.
type ParameterDef struct {
	// Name is the CWMP parameter name, also used as the wire tag.
	Name string

	// Field is the Go identifier used by generated accessors. Empty means Name.
	Field string

	// Type is the CWMP data type.
	Type DataType

	// Named is an optional named data type (MACAddress, IPAddress, UUID, ...)
	// that adds a format check.
	Named string

	// Access defines whether a management client may write the parameter.
	Access Access

	// Default is the value read when the parameter is absent. Nil means the
	// parameter reads as absent.
	Default any

	// Ranges lists the allowed integer ranges; a value must fall in one.
	Ranges []Range

	// Sentinels lists special integer values accepted outside Ranges.
	Sentinels []Sentinel

	// MinLength and MaxLength bound strings (in characters) and binary
	// values (in bytes). Zero MaxLength means unbounded.
	MinLength int
	MaxLength int

	// Patterns are regular expressions; a string must fully match one.
	Patterns []string

	// Enumeration lists the allowed string values.
	Enumeration []string

	// List marks a list-valued parameter. Constraints apply per item.
	List bool

	// Wrapper is the element that encloses list items on the wire. Empty
	// means the items are written as repeated elements named Name.
	Wrapper string

	// ItemTag is the element name of each item inside Wrapper.
	ItemTag string

	// MaxItems bounds the number of list items. Zero means unbounded.
	MaxItems int

	// Since is the data-model version that introduced the parameter.
	Since version.SpecVersion

	// Unit is the unit of measurement (e.g., "seconds", "bytes").
	Unit string

	// Description is a human-readable description.
	Description string

	once  sync.Once
	re    []*regexp.Regexp
	reErr error
}

// FieldName returns the Go identifier for the parameter.
func (p *ParameterDef) FieldName() string {
	if p.Field != "" {
		return p.Field
	}
	return p.Name
}

// ItemName returns the element name of list items inside the wrapper.
func (p *ParameterDef) ItemName() string {
	if p.ItemTag != "" {
		return p.ItemTag
	}
	return "string"
}

// SentinelMeaning returns the meaning of v if it is a declared sentinel.
func (p *ParameterDef) SentinelMeaning(v any) (string, bool) {
	n, ok := toIntValue(v)
	if !ok {
		return "", false
	}
	for _, s := range p.Sentinels {
		if n.cmp(s.Value) == 0 {
			return s.Meaning, true
		}
	}
	return "", false
}

// Compile checks the definition itself: known named type, compilable
// patterns, and a default that satisfies the constraints. It normalizes
// Default to the canonical Go type.
func (p *ParameterDef) Compile() error {
	if p.Type == DataTypeUnknown {
		return fmt.Errorf("parameter %s: missing type", p.Name)
	}
	if p.Access == 0 {
		p.Access = AccessReadOnly
	}
	if p.Named != "" {
		if _, ok := namedTypes[p.Named]; !ok {
			return fmt.Errorf("parameter %s: unknown named type %q", p.Name, p.Named)
		}
	}
	if err := p.compilePatterns(); err != nil {
		return fmt.Errorf("parameter %s: %w", p.Name, err)
	}
	if p.Default != nil && !p.List {
		v, err := p.Normalize(p.Default)
		if err != nil {
			return fmt.Errorf("parameter %s: default: %w", p.Name, err)
		}
		p.Default = v
	}
	return nil
}

func (p *ParameterDef) compilePatterns() error {
	p.once.Do(func() {
		for _, pat := range p.Patterns {
			re, err := regexp.Compile(`^(?:` + pat + `)$`)
			if err != nil {
				p.reErr = fmt.Errorf("bad pattern %q: %w", pat, err)
				return
			}
			p.re = append(p.re, re)
		}
	})
	return p.reErr
}

// Normalize coerces v to the canonical Go type and validates it.
func (p *ParameterDef) Normalize(v any) (any, error) {
	c, err := p.Coerce(v)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Coerce converts v to the canonical Go type of the parameter: bool, int32,
// uint32, int64, uint64, string, time.Time or []byte. Any integer kind and
// integral floats are accepted for integer parameters when they fit.
// Byte slices are copied.
func (p *ParameterDef) Coerce(v any) (any, error) {
	typeErr := func() error {
		return &ValidationError{Parameter: p.Name, Value: v, Rule: "type " + p.Type.String(), Err: ErrValueType}
	}

	switch p.Type {
	case DataTypeBoolean:
		if b, ok := v.(bool); ok {
			return b, nil
		}
		return nil, typeErr()

	case DataTypeInt, DataTypeUnsignedInt, DataTypeLong, DataTypeUnsignedLong:
		n, ok := toIntValue(v)
		if !ok {
			return nil, typeErr()
		}
		out, ok := n.convert(p.Type)
		if !ok {
			return nil, &ValidationError{Parameter: p.Name, Value: v, Rule: "type " + p.Type.String(), Err: ErrOutOfRange}
		}
		return out, nil

	case DataTypeString:
		if s, ok := v.(string); ok {
			return s, nil
		}
		return nil, typeErr()

	case DataTypeDateTime:
		switch t := v.(type) {
		case time.Time:
			return t, nil
		case *time.Time:
			if t != nil {
				return *t, nil
			}
		}
		return nil, typeErr()

	case DataTypeBase64, DataTypeHexBinary:
		if b, ok := v.([]byte); ok {
			return append([]byte{}, b...), nil
		}
		return nil, typeErr()
	}
	return nil, typeErr()
}

// Validate checks a canonical value against the declared constraints.
func (p *ParameterDef) Validate(v any) error {
	fail := func(rule string, err error) error {
		return &ValidationError{Parameter: p.Name, Value: v, Rule: rule, Err: err}
	}

	switch p.Type {
	case DataTypeInt, DataTypeUnsignedInt, DataTypeLong, DataTypeUnsignedLong:
		n, ok := toIntValue(v)
		if !ok {
			return fail("type "+p.Type.String(), ErrValueType)
		}
		if _, isSentinel := p.SentinelMeaning(v); isSentinel || len(p.Ranges) == 0 {
			return nil
		}
		for _, r := range p.Ranges {
			if n.in(r) {
				return nil
			}
		}
		return fail(p.rangeRule(), ErrOutOfRange)

	case DataTypeString:
		s, ok := v.(string)
		if !ok {
			return fail("type string", ErrValueType)
		}
		return p.validateString(s, fail)

	case DataTypeBase64, DataTypeHexBinary:
		b, ok := v.([]byte)
		if !ok {
			return fail("type "+p.Type.String(), ErrValueType)
		}
		if len(b) < p.MinLength {
			return fail("minLength "+strconv.Itoa(p.MinLength), ErrTooShort)
		}
		if p.MaxLength > 0 && len(b) > p.MaxLength {
			return fail("maxLength "+strconv.Itoa(p.MaxLength), ErrTooLong)
		}

	case DataTypeBoolean:
		if _, ok := v.(bool); !ok {
			return fail("type boolean", ErrValueType)
		}

	case DataTypeDateTime:
		if _, ok := v.(time.Time); !ok {
			return fail("type dateTime", ErrValueType)
		}
	}
	return nil
}

func (p *ParameterDef) validateString(s string, fail func(string, error) error) error {
	if !isXMLText(s) {
		return fail("xml characters", ErrInvalidFormat)
	}
	n := utf8.RuneCountInString(s)
	if n < p.MinLength {
		return fail("minLength "+strconv.Itoa(p.MinLength), ErrTooShort)
	}
	if p.MaxLength > 0 && n > p.MaxLength {
		return fail("maxLength "+strconv.Itoa(p.MaxLength), ErrTooLong)
	}

	if len(p.Enumeration) > 0 {
		found := false
		for _, e := range p.Enumeration {
			if e == s {
				found = true
				break
			}
		}
		if !found {
			return fail("enumeration ["+strings.Join(p.Enumeration, ", ")+"]", ErrNotEnumerated)
		}
	}

	if len(p.Patterns) > 0 {
		if err := p.compilePatterns(); err != nil {
			return fail("pattern", err)
		}
		matched := false
		for _, re := range p.re {
			if re.MatchString(s) {
				matched = true
				break
			}
		}
		if !matched {
			return fail("pattern "+strings.Join(p.Patterns, " | "), ErrPatternMismatch)
		}
	}

	if p.Named != "" && s != "" {
		if check, ok := namedTypes[p.Named]; ok && !check(s) {
			return fail("format "+p.Named, ErrInvalidFormat)
		}
	}
	return nil
}

func (p *ParameterDef) rangeRule() string {
	parts := make([]string, len(p.Ranges))
	for i, r := range p.Ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, " or ")
}

// intValue holds an integer of any Go kind without loss of precision.
type intValue struct {
	mag uint64 // magnitude
	neg bool   // true only for values below zero
}

func toIntValue(v any) (intValue, bool) {
	switch n := v.(type) {
	case int:
		return fromInt64(int64(n)), true
	case int8:
		return fromInt64(int64(n)), true
	case int16:
		return fromInt64(int64(n)), true
	case int32:
		return fromInt64(int64(n)), true
	case int64:
		return fromInt64(n), true
	case uint:
		return intValue{mag: uint64(n)}, true
	case uint8:
		return intValue{mag: uint64(n)}, true
	case uint16:
		return intValue{mag: uint64(n)}, true
	case uint32:
		return intValue{mag: uint64(n)}, true
	case uint64:
		return intValue{mag: n}, true
	case float32:
		return fromFloat(float64(n))
	case float64:
		return fromFloat(n)
	}
	return intValue{}, false
}

func fromInt64(n int64) intValue {
	if n < 0 {
		return intValue{mag: uint64(-(n + 1)) + 1, neg: true}
	}
	return intValue{mag: uint64(n)}
}

func fromFloat(f float64) (intValue, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return intValue{}, false
	}
	if f < 0 {
		if f < -(1 << 63) {
			return intValue{}, false
		}
		return fromInt64(int64(f)), true
	}
	if f >= 1<<64 {
		return intValue{}, false
	}
	return intValue{mag: uint64(f)}, true
}

// cmp compares n with b and returns -1, 0 or +1.
func (n intValue) cmp(b int64) int {
	bv := fromInt64(b)
	switch {
	case n.neg && !bv.neg:
		return -1
	case !n.neg && bv.neg:
		return 1
	case n.mag == bv.mag:
		return 0
	case (n.mag < bv.mag) != n.neg:
		return -1
	}
	return 1
}

func (n intValue) in(r Range) bool {
	if r.Min != nil && n.cmp(*r.Min) < 0 {
		return false
	}
	if r.Max != nil && n.cmp(*r.Max) > 0 {
		return false
	}
	return true
}

func (n intValue) convert(t DataType) (any, bool) {
	if t == DataTypeUnsignedLong {
		if n.neg {
			return nil, false
		}
		return n.mag, true
	}
	lo, hi := t.Bounds()
	if n.cmp(lo) < 0 || n.cmp(hi) > 0 {
		return nil, false
	}
	var v int64
	if n.neg {
		v = -int64(n.mag-1) - 1
	} else {
		v = int64(n.mag)
	}
	switch t {
	case DataTypeInt:
		return int32(v), true
	case DataTypeUnsignedInt:
		return uint32(v), true
	}
	return v, true
}

// isXMLText reports whether s is valid UTF-8 made only of characters of the
// XML Char production.
func isXMLText(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= 0x10FFFF:
		default:
			return false
		}
	}
	return true
}
