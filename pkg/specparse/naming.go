package specparse

import (
	"strings"
	"unicode"

	"github.com/tr069-model/tr069-go/pkg/path"
)

// TypeName derives a Go type name from an object path template by joining
// the name segments below the root: "Device.DHCPv4.Client.{i}.ReqOption.{i}."
// becomes "DHCPv4ClientReqOption". The root object keeps its own name.
func TypeName(p *path.Path) string {
	var names []string
	for _, seg := range p.Segments {
		if seg != path.Placeholder && !path.IsInstance(seg) {
			names = append(names, seg)
		}
	}
	if len(names) <= 1 {
		return Identifier(strings.Join(names, ""))
	}
	return Identifier(strings.Join(names[1:], ""))
}

// Identifier turns a CWMP name into an exported Go identifier. Vendor
// prefixes lose their separators: "X_ACME-COM_Color" becomes "XACMECOMColor".
func Identifier(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if r == '_' || r == '-' {
			continue
		}
		sb.WriteRune(r)
	}
	s := sb.String()
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// FileBase converts "DeviceInfo" to "device_info" and "DHCPv4" to "dhcpv4".
// A separator is inserted only where a lower-case letter or digit is
// followed by an upper-case letter.
func FileBase(name string) string {
	var result strings.Builder
	var prev rune
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			result.WriteByte('_')
		}
		result.WriteRune(r)
		prev = r
	}
	return strings.ToLower(result.String())
}
