// Package version parses and compares Broadband Forum data-model versions.
//
// Data-model versions are "major.minor" pairs ("2.12"). A model version
// prefixes the root object name, as reported in Device.RootDataModelVersion
// and in the supported-data-model lists ("Device:2.12",
// "InternetGatewayDevice:1.14").
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// SpecVersion represents a parsed "major.minor" data-model version.
// The zero value means "unversioned" and sorts before every real version.
type SpecVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (SpecVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return SpecVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return SpecVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return SpecVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return SpecVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) SpecVersion {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the version as "major.minor".
func (v SpecVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// IsZero reports whether v is the unversioned zero value.
func (v SpecVersion) IsZero() bool {
	return v.Major == 0 && v.Minor == 0
}

// Compare returns -1, 0 or +1 as v is older than, equal to or newer than other.
func (v SpecVersion) Compare(other SpecVersion) int {
	switch {
	case v.Major < other.Major:
		return -1
	case v.Major > other.Major:
		return 1
	case v.Minor < other.Minor:
		return -1
	case v.Minor > other.Minor:
		return 1
	}
	return 0
}

// AtLeast reports whether v is equal to or newer than other.
func (v SpecVersion) AtLeast(other SpecVersion) bool {
	return v.Compare(other) >= 0
}

// Compatible returns true if the other version has the same major version.
// Minor revisions of a data model only add objects and parameters.
func (v SpecVersion) Compatible(other SpecVersion) bool {
	return v.Major == other.Major
}

// ModelVersion is a root object name with its data-model version.
type ModelVersion struct {
	Root    string
	Version SpecVersion
}

// ParseModel parses a "Root:major.minor" string.
func ParseModel(s string) (ModelVersion, error) {
	root, ver, ok := strings.Cut(s, ":")
	if !ok || root == "" {
		return ModelVersion{}, fmt.Errorf("invalid model version %q: expected Root:major.minor", s)
	}
	v, err := Parse(ver)
	if err != nil {
		return ModelVersion{}, fmt.Errorf("invalid model version %q: %w", s, err)
	}
	return ModelVersion{Root: root, Version: v}, nil
}

// String returns the model version as "Root:major.minor".
func (m ModelVersion) String() string {
	return m.Root + ":" + m.Version.String()
}
