// Package path parses and formats CWMP parameter and object paths.
//
// A path is a dotted sequence of names and instance numbers:
//
//	InternetGatewayDevice.LANDevice.1.Hosts.Host.2.MACAddress
//
// A path ending in "." addresses an object; otherwise the last name is a
// parameter. Templates use the placeholder "{i}" in place of instance
// numbers and describe every row of a multi-instance table:
//
//	InternetGatewayDevice.LANDevice.{i}.Hosts.Host.{i}.
package path

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Placeholder marks a table instance position in a path template.
const Placeholder = "{i}"

// Path errors.
var (
	ErrEmptyPath     = errors.New("empty path")
	ErrInvalidPath   = errors.New("invalid path format")
	ErrInvalidNumber = errors.New("invalid instance number in path")
	ErrInstances     = errors.New("instance count does not match placeholders")
)

// Path is a parsed CWMP path.
type Path struct {
	// Segments holds the object part of the path: names, instance numbers
	// and placeholders, without the trailing parameter name.
	Segments []string

	// Parameter is the trailing parameter name. Empty for object paths.
	Parameter string
}

// Parse parses a concrete path or a path template.
//
// Instance numbers must be positive decimal integers without sign or
// leading zeros. The first segment must be a name.
func Parse(input string) (*Path, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyPath
	}
	if strings.HasPrefix(input, ".") || strings.Contains(input, "..") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, input)
	}

	isObject := strings.HasSuffix(input, ".")
	parts := strings.Split(strings.TrimSuffix(input, "."), ".")

	p := &Path{}
	if !isObject {
		p.Parameter = parts[len(parts)-1]
		parts = parts[:len(parts)-1]
		if !isName(p.Parameter) {
			return nil, fmt.Errorf("%w: bad parameter name %q", ErrInvalidPath, p.Parameter)
		}
	}

	for i, seg := range parts {
		switch {
		case seg == Placeholder:
			if i == 0 {
				return nil, fmt.Errorf("%w: %q starts with a placeholder", ErrInvalidPath, input)
			}
		case isDigit(seg[0]):
			if i == 0 {
				return nil, fmt.Errorf("%w: %q starts with an instance number", ErrInvalidPath, input)
			}
			if _, err := parseInstance(seg); err != nil {
				return nil, err
			}
		case !isName(seg):
			return nil, fmt.Errorf("%w: bad segment %q", ErrInvalidPath, seg)
		}
	}
	p.Segments = parts
	return p, nil
}

// MustParse is like Parse but panics on error. Intended for static templates.
func MustParse(input string) *Path {
	p, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the path in dotted form.
func (p *Path) String() string {
	var sb strings.Builder
	for _, seg := range p.Segments {
		sb.WriteString(seg)
		sb.WriteByte('.')
	}
	sb.WriteString(p.Parameter)
	return sb.String()
}

// IsObject reports whether the path addresses an object.
func (p *Path) IsObject() bool {
	return p.Parameter == ""
}

// IsTemplate reports whether the path contains placeholders.
func (p *Path) IsTemplate() bool {
	for _, seg := range p.Segments {
		if seg == Placeholder {
			return true
		}
	}
	return false
}

// Placeholders returns the number of "{i}" segments.
func (p *Path) Placeholders() int {
	n := 0
	for _, seg := range p.Segments {
		if seg == Placeholder {
			n++
		}
	}
	return n
}

// Object returns the object part of a parameter path.
func (p *Path) Object() *Path {
	return &Path{Segments: append([]string(nil), p.Segments...)}
}

// Template returns a copy with every instance number replaced by "{i}".
func (p *Path) Template() *Path {
	t := &Path{Segments: make([]string, len(p.Segments)), Parameter: p.Parameter}
	for i, seg := range p.Segments {
		if isDigit(seg[0]) {
			t.Segments[i] = Placeholder
		} else {
			t.Segments[i] = seg
		}
	}
	return t
}

// Instances returns the instance numbers in order of appearance.
func (p *Path) Instances() []uint32 {
	var out []uint32
	for _, seg := range p.Segments {
		if isDigit(seg[0]) {
			n, _ := parseInstance(seg)
			out = append(out, n)
		}
	}
	return out
}

// Instantiate replaces placeholders with the given instance numbers, in order.
// The number of instances must equal the number of placeholders.
func (p *Path) Instantiate(instances ...uint32) (*Path, error) {
	if len(instances) != p.Placeholders() {
		return nil, fmt.Errorf("%w: %d placeholders, %d instances", ErrInstances, p.Placeholders(), len(instances))
	}
	out := &Path{Segments: make([]string, len(p.Segments)), Parameter: p.Parameter}
	next := 0
	for i, seg := range p.Segments {
		if seg != Placeholder {
			out.Segments[i] = seg
			continue
		}
		if instances[next] == 0 {
			return nil, fmt.Errorf("%w: instance 0", ErrInvalidNumber)
		}
		out.Segments[i] = strconv.FormatUint(uint64(instances[next]), 10)
		next++
	}
	return out, nil
}

// FillRight replaces the last len(instances) placeholders, leaving earlier
// ones untouched. instances[0] fills the leftmost of the replaced
// placeholders. Zero instances are left as placeholders.
func (p *Path) FillRight(instances ...uint32) *Path {
	out := &Path{Segments: append([]string(nil), p.Segments...), Parameter: p.Parameter}
	k := len(instances) - 1
	for i := len(out.Segments) - 1; i >= 0 && k >= 0; i-- {
		if out.Segments[i] != Placeholder {
			continue
		}
		if instances[k] != 0 {
			out.Segments[i] = strconv.FormatUint(uint64(instances[k]), 10)
		}
		k--
	}
	return out
}

// Match reports whether the concrete path p is an instance of template tmpl
// and returns the instance numbers bound to its placeholders.
func (p *Path) Match(tmpl *Path) ([]uint32, bool) {
	if len(p.Segments) != len(tmpl.Segments) || p.Parameter != tmpl.Parameter {
		return nil, false
	}
	var out []uint32
	for i, seg := range tmpl.Segments {
		if seg == Placeholder {
			n, err := parseInstance(p.Segments[i])
			if err != nil {
				return nil, false
			}
			out = append(out, n)
			continue
		}
		if p.Segments[i] != seg {
			return nil, false
		}
	}
	return out, true
}

// HasPrefix reports whether the object path prefix is a leading part of p.
func (p *Path) HasPrefix(prefix *Path) bool {
	if len(prefix.Segments) > len(p.Segments) {
		return false
	}
	for i, seg := range prefix.Segments {
		if p.Segments[i] != seg {
			return false
		}
	}
	return true
}

// Parent returns the path of the enclosing object. For a table row the
// parent is the object holding the table, so both the instance number and
// the table name are removed. Returns nil for a root object.
func (p *Path) Parent() *Path {
	if !p.IsObject() {
		return p.Object()
	}
	segs := p.Segments
	if n := len(segs); n > 0 && (segs[n-1] == Placeholder || isDigit(segs[n-1][0])) {
		segs = segs[:n-1]
	}
	if len(segs) <= 1 {
		return nil
	}
	return &Path{Segments: append([]string(nil), segs[:len(segs)-1]...)}
}

// Name returns the last name segment of an object path, or the parameter
// name of a parameter path.
func (p *Path) Name() string {
	if p.Parameter != "" {
		return p.Parameter
	}
	for i := len(p.Segments) - 1; i >= 0; i-- {
		if seg := p.Segments[i]; seg != Placeholder && !isDigit(seg[0]) {
			return seg
		}
	}
	return ""
}

// IsInstance reports whether s is a valid instance number segment.
func IsInstance(s string) bool {
	_, err := parseInstance(s)
	return err == nil
}

func parseInstance(s string) (uint32, error) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return uint32(v), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// isName accepts CWMP names: a letter or underscore followed by letters,
// digits, '_' or '-' (vendor prefixes such as X_ACME-COM_Foo).
func isName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c == '_':
		case i > 0 && (isDigit(c) || c == '-'):
		default:
			return false
		}
	}
	return true
}
