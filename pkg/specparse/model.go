// Package specparse provides the YAML schema format for CWMP data models.
// Both tr069-gen and tr069-model import this package: the generator to emit
// typed Go records, the CLI to load schemas that have no generated code.
package specparse

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// RawModel represents a data-model schema file.
type RawModel struct {
	Model       string         `yaml:"model"`   // root object name: "Device", "InternetGatewayDevice"
	Version     string         `yaml:"version"` // "2.12"
	Spec        string         `yaml:"spec"`    // e.g. "TR-181 Issue 2 Amendment 12"
	Description string         `yaml:"description"`
	Objects     []RawObjectDef `yaml:"objects"`

	// Source is the base name of the file the model was loaded from.
	Source string `yaml:"-"`
}

// RawObjectDef represents an object definition.
type RawObjectDef struct {
	Path        string            `yaml:"path"`       // "Device.DHCPv4.Client.{i}."
	Type        string            `yaml:"type"`       // Go type name; derived from the path when empty
	Field       string            `yaml:"field"`      // accessor name on the parent
	Access      string            `yaml:"access"`     // "readOnly", "readWrite"
	UniqueKeys  [][]string        `yaml:"uniqueKeys"` // tables only
	MaxEntries  int               `yaml:"maxEntries"`
	Wrapper     string            `yaml:"wrapper"` // element enclosing all rows of a table
	Since       string            `yaml:"since"`
	Description string            `yaml:"description"`
	Parameters  []RawParameterDef `yaml:"parameters"`
}

// RawParameterDef represents a parameter definition.
type RawParameterDef struct {
	Name        string        `yaml:"name"`
	Field       string        `yaml:"field"`    // Go identifier when Name is not usable
	Type        string        `yaml:"type"`     // "boolean", "int", "unsignedInt", "long", "unsignedLong", "string", "dateTime", "base64", "hexBinary"
	DataType    string        `yaml:"dataType"` // named type: "MACAddress", "IPv4Address", "UUID", ...
	Access      string        `yaml:"access"`
	Default     any           `yaml:"default"`
	Ranges      []RawRange    `yaml:"ranges"`
	Min         *int64        `yaml:"min"` // shorthand for a single range
	Max         *int64        `yaml:"max"`
	Sentinels   []RawSentinel `yaml:"sentinels"`
	MinLength   int           `yaml:"minLength"`
	MaxLength   int           `yaml:"maxLength"`
	Patterns    []string      `yaml:"patterns"`
	Enumeration []string      `yaml:"enumeration"`
	List        bool          `yaml:"list"`
	Wrapper     string        `yaml:"wrapper"`
	ItemTag     string        `yaml:"itemTag"`
	MaxItems    int           `yaml:"maxItems"`
	Since       string        `yaml:"since"`
	Unit        string        `yaml:"unit"`
	Description string        `yaml:"description"`
}

// RawRange is an inclusive integer range; either bound may be omitted.
type RawRange struct {
	Min *int64 `yaml:"min"`
	Max *int64 `yaml:"max"`
}

// RawSentinel is a special integer value with a documented meaning.
type RawSentinel struct {
	Value   int64  `yaml:"value"`
	Meaning string `yaml:"meaning"`
}

// ParseModel parses a schema from YAML bytes.
func ParseModel(data []byte) (*RawModel, error) {
	var m RawModel
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing model: %w", err)
	}
	if m.Model == "" {
		return nil, fmt.Errorf("model definition missing model name")
	}
	if m.Version == "" {
		return nil, fmt.Errorf("model %s: missing version", m.Model)
	}
	return &m, nil
}

// LoadModel loads and parses a schema from a file.
func LoadModel(file string) (*RawModel, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	m, err := ParseModel(data)
	if err != nil {
		return nil, err
	}
	m.Source = filepath.Base(file)
	return m, nil
}

// LoadModelFS loads and parses a schema from a file system.
func LoadModelFS(fsys fs.FS, name string) (*RawModel, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	m, err := ParseModel(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	m.Source = path.Base(name)
	return m, nil
}

// LoadModels loads every *.yaml schema in fsys, sorted by model name.
func LoadModels(fsys fs.FS) ([]*RawModel, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, err
	}
	var models []*RawModel
	for _, name := range names {
		m, err := LoadModelFS(fsys, name)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	sort.Slice(models, func(i, j int) bool { return models[i].Model < models[j].Model })
	return models, nil
}
