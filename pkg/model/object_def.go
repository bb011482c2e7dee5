package model

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tr069-model/tr069-go/pkg/path"
	"github.com/tr069-model/tr069-go/pkg/version"
)

// ObjectDef describes one node of the data-model tree.
type ObjectDef struct {
	// Path is the path template, e.g. "Device.DHCPv4.Client.{i}.".
	Path string

	// Name is the wire tag, the last name segment of Path.
	Name string

	// TypeName is the Go type name of the generated wrapper.
	TypeName string

	// Table marks a multi-instance row template (Path ends in "{i}.").
	Table bool

	// Access defines whether a management client may add and delete rows.
	Access Access

	// UniqueKeys lists the unique keys of a table. Each key is a list of
	// parameter names that together must not repeat across rows.
	UniqueKeys [][]string

	// MaxEntries bounds the number of rows. Zero means unbounded.
	MaxEntries int

	Parameters []*ParameterDef
	Children   []*ChildDef

	// Since is the data-model version that introduced the object.
	Since version.SpecVersion

	Description string

	once     sync.Once
	err      error
	params   map[string]*ParameterDef
	children map[string]*ChildDef
}

// ChildDef links an object to a nested singleton or table.
type ChildDef struct {
	// Name is the wire tag of the child. It equals Object.Name.
	Name string

	// Field is the Go identifier used by generated accessors. Empty means Name.
	Field string

	Object *ObjectDef

	// Wrapper is an optional element enclosing all rows of a table on the wire.
	Wrapper string
}

// FieldName returns the Go identifier for the child.
func (c *ChildDef) FieldName() string {
	if c.Field != "" {
		return c.Field
	}
	return c.Name
}

// IsTable reports whether the child is a multi-instance table.
func (c *ChildDef) IsTable() bool {
	return c.Object.Table
}

// Compile checks the definition tree rooted at d and builds its lookup
// indexes. It is safe to call more than once.
func (d *ObjectDef) Compile() error {
	d.once.Do(func() { d.err = d.compile() })
	return d.err
}

func (d *ObjectDef) compile() error {
	p, err := path.Parse(d.Path)
	if err != nil {
		return fmt.Errorf("object %q: %w", d.Path, err)
	}
	if !p.IsObject() {
		return fmt.Errorf("object %q: %w", d.Path, ErrNotObjectPath)
	}
	if name := p.Name(); d.Name != name {
		return fmt.Errorf("object %q: name %q does not match path", d.Path, d.Name)
	}
	last := p.Segments[len(p.Segments)-1]
	if d.Table != (last == path.Placeholder) {
		return fmt.Errorf("object %q: table flag does not match path", d.Path)
	}

	if d.Access == 0 {
		d.Access = AccessReadOnly
	}

	d.params = make(map[string]*ParameterDef, len(d.Parameters))
	for _, pd := range d.Parameters {
		if _, dup := d.params[pd.Name]; dup {
			return fmt.Errorf("object %q: duplicate parameter %s", d.Path, pd.Name)
		}
		if err := pd.Compile(); err != nil {
			return fmt.Errorf("object %q: %w", d.Path, err)
		}
		d.params[pd.Name] = pd
	}

	for _, key := range d.UniqueKeys {
		if !d.Table {
			return fmt.Errorf("object %q: unique key on a singleton", d.Path)
		}
		for _, name := range key {
			if pd, ok := d.params[name]; !ok || pd.List {
				return fmt.Errorf("object %q: unique key parameter %q is not a scalar parameter", d.Path, name)
			}
		}
	}

	d.children = make(map[string]*ChildDef, len(d.Children))
	for _, c := range d.Children {
		if c.Object == nil {
			return fmt.Errorf("object %q: child %s has no definition", d.Path, c.Name)
		}
		if _, dup := d.children[c.Name]; dup {
			return fmt.Errorf("object %q: duplicate child %s", d.Path, c.Name)
		}
		if _, clash := d.params[c.Name]; clash {
			return fmt.Errorf("object %q: child %s clashes with a parameter", d.Path, c.Name)
		}
		want := d.Path + c.Name + "."
		if c.Object.Table {
			want += path.Placeholder + "."
		}
		if c.Object.Path != want {
			return fmt.Errorf("object %q: child %s has path %q, want %q", d.Path, c.Name, c.Object.Path, want)
		}
		if err := c.Object.Compile(); err != nil {
			return err
		}
		d.children[c.Name] = c
	}
	return nil
}

// Parameter returns the parameter definition by CWMP name, or nil.
func (d *ObjectDef) Parameter(name string) *ParameterDef {
	d.index()
	return d.params[name]
}

// Child returns the child definition by CWMP name, or nil.
func (d *ObjectDef) Child(name string) *ChildDef {
	d.index()
	return d.children[name]
}

// index makes lookups work on definitions that were never compiled.
func (d *ObjectDef) index() {
	_ = d.Compile()
}

// Schema is a compiled data model: a root object tree indexed by path template.
type Schema struct {
	model   version.ModelVersion
	root    *ObjectDef
	objects map[string]*ObjectDef
	order   []*ObjectDef
}

// NewSchema compiles root and indexes every object in the tree.
func NewSchema(model string, v version.SpecVersion, root *ObjectDef) (*Schema, error) {
	if root == nil {
		return nil, fmt.Errorf("schema %s: no root object", model)
	}
	if root.Path != model+"." {
		return nil, fmt.Errorf("schema %s: root path %q does not match the model", model, root.Path)
	}
	if err := root.Compile(); err != nil {
		return nil, fmt.Errorf("schema %s: %w", model, err)
	}

	s := &Schema{
		model:   version.ModelVersion{Root: model, Version: v},
		root:    root,
		objects: make(map[string]*ObjectDef),
	}
	var walk func(d *ObjectDef)
	walk = func(d *ObjectDef) {
		s.objects[d.Path] = d
		s.order = append(s.order, d)
		for _, c := range d.Children {
			walk(c.Object)
		}
	}
	walk(root)
	return s, nil
}

// MustSchema is like NewSchema but panics on error. Intended for generated
// package-level schemas.
func MustSchema(model string, v version.SpecVersion, root *ObjectDef) *Schema {
	s, err := NewSchema(model, v, root)
	if err != nil {
		panic(err)
	}
	return s
}

// Model returns the root object name, e.g. "Device".
func (s *Schema) Model() string { return s.model.Root }

// Version returns the data-model version.
func (s *Schema) Version() version.SpecVersion { return s.model.Version }

// ModelVersion returns the model name and version, e.g. "Device:2.12".
func (s *Schema) ModelVersion() version.ModelVersion { return s.model }

// Root returns the root object definition.
func (s *Schema) Root() *ObjectDef { return s.root }

// New returns an empty root record.
func (s *Schema) New() *Object { return NewObject(s.root) }

// Object returns the definition for a path template, or nil.
func (s *Schema) Object(template string) *ObjectDef {
	return s.objects[template]
}

// Objects returns every object definition in depth-first order.
func (s *Schema) Objects() []*ObjectDef {
	return append([]*ObjectDef(nil), s.order...)
}

// Templates returns every path template, sorted.
func (s *Schema) Templates() []string {
	out := make([]string, 0, len(s.objects))
	for t := range s.objects {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Lookup resolves a concrete or template path to the object definition and,
// for parameter paths, the parameter definition.
func (s *Schema) Lookup(p string) (*ObjectDef, *ParameterDef, error) {
	parsed, err := path.Parse(p)
	if err != nil {
		return nil, nil, err
	}
	tmpl := parsed.Template()
	obj := tmpl.Object()
	d := s.objects[obj.String()]
	if d == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrNoSuchObject, obj)
	}
	if parsed.IsObject() {
		return d, nil, nil
	}
	pd := d.Parameter(parsed.Parameter)
	if pd == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownParameter, p)
	}
	return d, pd, nil
}

// String returns a short description of the definition.
func (d *ObjectDef) String() string {
	var sb strings.Builder
	sb.WriteString(d.Path)
	if d.Table {
		sb.WriteString(" (table)")
	}
	return sb.String()
}
