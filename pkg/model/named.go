package model

import (
	"net"
	"net/netip"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// namedTypes maps BBF named data types to their format check. The empty
// string is accepted before the check is reached.
var namedTypes = map[string]func(string) bool{
	"MACAddress":  isMACAddress,
	"IPAddress":   func(s string) bool { return parseAddr(s, true, true) },
	"IPv4Address": func(s string) bool { return parseAddr(s, true, false) },
	"IPv6Address": func(s string) bool { return parseAddr(s, false, true) },
	"UUID":        isUUID,
	"Alias":       isAlias,
}

// NamedTypes returns the supported named data types.
func NamedTypes() []string {
	return []string{"Alias", "IPAddress", "IPv4Address", "IPv6Address", "MACAddress", "UUID"}
}

// canonicalNamed returns the canonical spelling of s for the named type:
// lower-case MAC and UUID hex digits, compressed IPv6. Values that do not
// parse are returned unchanged.
func canonicalNamed(named, s string) string {
	switch named {
	case "MACAddress":
		if hw, err := net.ParseMAC(s); err == nil {
			return hw.String()
		}
	case "IPAddress", "IPv4Address", "IPv6Address":
		if addr, err := netip.ParseAddr(s); err == nil {
			return addr.String()
		}
	case "UUID":
		if id, err := uuid.Parse(s); err == nil {
			return id.String()
		}
	}
	return s
}

// isMACAddress accepts the colon-separated 48-bit form, e.g. 00:11:22:33:44:55.
func isMACAddress(s string) bool {
	if len(s) != 17 || s[2] != ':' {
		return false
	}
	hw, err := net.ParseMAC(s)
	return err == nil && len(hw) == 6
}

func parseAddr(s string, v4, v6 bool) bool {
	addr, err := netip.ParseAddr(s)
	if err != nil || addr.Zone() != "" {
		return false
	}
	if addr.Is4() {
		return v4
	}
	return v6
}

// isUUID accepts the 36-character hyphenated form only.
func isUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// isAlias checks the TR-181 Alias form: at most 64 characters, starting
// with a letter.
func isAlias(s string) bool {
	if len(s) > 64 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r)
}
