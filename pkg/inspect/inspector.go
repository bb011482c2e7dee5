package inspect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tr069-model/tr069-go/pkg/model"
	"github.com/tr069-model/tr069-go/pkg/path"
)

// Inspector errors.
var (
	ErrNotObject    = errors.New("path does not address an object")
	ErrNotParameter = errors.New("path does not address a parameter")
	ErrNotRow       = errors.New("path does not address a table row")
	ErrRowNotFound  = errors.New("row not found")
)

// Inspector provides inspection and mutation of one record tree.
type Inspector struct {
	root *model.Object
}

// NewInspector creates a new Inspector for the given root record.
func NewInspector(root *model.Object) *Inspector {
	return &Inspector{root: root}
}

// Root returns the underlying record.
func (i *Inspector) Root() *model.Object {
	return i.root
}

// RootName returns the first path segment of the root, e.g. "Device".
func (i *Inspector) RootName() string {
	name, _, _ := strings.Cut(i.root.Path(), ".")
	return name
}

// ObjectInfo represents one object for display.
type ObjectInfo struct {
	Path       string
	Name       string
	Instance   uint32
	Parameters []ParameterInfo
	Children   []ChildInfo
}

// ParameterInfo represents a parameter for display.
type ParameterInfo struct {
	Path string
	Def  *model.ParameterDef

	// Value is the canonical value, the declared default when the parameter
	// is absent, or nil. List values are []any.
	Value any

	// Set reports whether the value was set explicitly.
	Set bool
}

// ChildInfo represents a child object or table for display.
type ChildInfo struct {
	Name  string
	Table bool
	Rows  []uint32
	Empty bool
}

// InspectObject returns the parameters and children of the object at p.
func (i *Inspector) InspectObject(p string) (*ObjectInfo, error) {
	obj, pd, err := i.root.Resolve(p)
	if err != nil {
		return nil, err
	}
	if pd != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotObject, p)
	}
	return inspectObject(obj), nil
}

func inspectObject(obj *model.Object) *ObjectInfo {
	def := obj.Def()
	info := &ObjectInfo{
		Path:     obj.Path(),
		Name:     def.Name,
		Instance: obj.Instance(),
	}
	for _, pd := range def.Parameters {
		info.Parameters = append(info.Parameters, parameterInfo(obj, pd))
	}
	for _, cd := range def.Children {
		ci := ChildInfo{Name: cd.Name, Table: cd.IsTable()}
		if ci.Table {
			if t, ok := obj.LookupTable(cd.Name); ok {
				for _, row := range t.Rows() {
					ci.Rows = append(ci.Rows, row.Instance())
				}
			}
			ci.Empty = len(ci.Rows) == 0
		} else {
			child, ok := obj.LookupChild(cd.Name)
			ci.Empty = !ok || child.IsEmpty()
		}
		info.Children = append(info.Children, ci)
	}
	return info
}

func parameterInfo(obj *model.Object, pd *model.ParameterDef) ParameterInfo {
	info := ParameterInfo{Path: obj.Path() + pd.Name, Def: pd, Set: obj.IsSet(pd.Name)}
	if pd.List {
		if info.Set {
			info.Value = obj.List(pd.Name).Items()
		}
		return info
	}
	info.Value = obj.Get(pd.Name)
	return info
}

// ReadParameter reads a parameter using a path.
func (i *Inspector) ReadParameter(p string) (*ParameterInfo, error) {
	obj, pd, err := i.root.Resolve(p)
	if err != nil {
		return nil, err
	}
	if pd == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotParameter, p)
	}
	info := parameterInfo(obj, pd)
	return &info, nil
}

// WriteParameter writes the lexical value to a parameter using a path.
// Read-only parameters are rejected with model.ErrNotWritable.
func (i *Inspector) WriteParameter(p, value string) error {
	return i.root.SetParameterValue(p, value)
}

// writableTable resolves the table at p and rejects tables whose rows a
// management client may not add or delete. With create set an absent table
// is attached to the tree.
func (i *Inspector) writableTable(p string, create bool) (*model.Table, error) {
	resolve := i.root.ResolveTable
	if create {
		resolve = i.root.EnsureTable
	}
	t, err := resolve(p)
	if err != nil {
		return nil, err
	}
	if access := t.Def().Object.Access; !access.CanWrite() {
		return nil, fmt.Errorf("%w: %s (access %s)", model.ErrNotWritable, p, access)
	}
	return t, nil
}

// AddRow appends an empty row to the table at p, e.g.
// "Device.DHCPv4.Client.", and returns it. Read-only tables are rejected
// with model.ErrNotWritable.
func (i *Inspector) AddRow(p string) (*model.Object, error) {
	t, err := i.writableTable(p, true)
	if err != nil {
		return nil, err
	}
	return t.Add()
}

// DeleteRow removes the row addressed by p, e.g. "Device.DHCPv4.Client.2.".
// Read-only tables are rejected with model.ErrNotWritable.
func (i *Inspector) DeleteRow(p string) error {
	parsed, err := path.Parse(p)
	if err != nil {
		return err
	}
	n := len(parsed.Segments)
	if !parsed.IsObject() || n < 2 || !path.IsInstance(parsed.Segments[n-1]) {
		return fmt.Errorf("%w: %s", ErrNotRow, p)
	}
	table := &path.Path{Segments: parsed.Segments[:n-1]}
	t, err := i.writableTable(table.String(), false)
	if err != nil {
		return err
	}
	inst, _ := strconv.ParseUint(parsed.Segments[n-1], 10, 32)
	if !t.Remove(uint32(inst)) {
		return fmt.Errorf("%w: %s", ErrRowNotFound, p)
	}
	return nil
}

// FormatObject formats an object for display: its parameters, then its
// children with their row instance numbers.
func (i *Inspector) FormatObject(info *ObjectInfo, formatter *Formatter) string {
	if formatter == nil {
		formatter = NewFormatter()
	}
	var sb strings.Builder
	sb.WriteString(info.Path + "\n")
	for _, p := range info.Parameters {
		if !p.Set && p.Value == nil && !formatter.ShowUnset {
			continue
		}
		sb.WriteString(formatter.Indent(1, formatter.formatParameter(p)) + "\n")
	}
	for _, c := range info.Children {
		switch {
		case c.Table:
			rows := make([]string, len(c.Rows))
			for n, r := range c.Rows {
				rows[n] = strconv.FormatUint(uint64(r), 10)
			}
			sb.WriteString(formatter.Indent(1, fmt.Sprintf("%s.{i}. [%s]", c.Name, strings.Join(rows, " "))) + "\n")
		case c.Empty:
			sb.WriteString(formatter.Indent(1, c.Name+". (empty)") + "\n")
		default:
			sb.WriteString(formatter.Indent(1, c.Name+".") + "\n")
		}
	}
	return sb.String()
}

// FormatTree formats the record and everything below it. Empty children
// are left out.
func (i *Inspector) FormatTree(obj *model.Object, formatter *Formatter) string {
	if formatter == nil {
		formatter = NewFormatter()
	}
	var sb strings.Builder
	i.formatTree(&sb, obj, formatter, 0)
	return sb.String()
}

func (i *Inspector) formatTree(sb *strings.Builder, obj *model.Object, f *Formatter, depth int) {
	def := obj.Def()
	header := def.Name + "."
	if def.Table {
		header = fmt.Sprintf("%s.%d.", def.Name, obj.Instance())
	}
	sb.WriteString(f.Indent(depth, header) + "\n")

	for _, pd := range def.Parameters {
		p := parameterInfo(obj, pd)
		if !p.Set && (p.Value == nil || !f.ShowUnset) {
			continue
		}
		sb.WriteString(f.Indent(depth+1, f.formatParameter(p)) + "\n")
	}
	for _, cd := range def.Children {
		if cd.IsTable() {
			if t, ok := obj.LookupTable(cd.Name); ok {
				for _, row := range t.Rows() {
					i.formatTree(sb, row, f, depth+1)
				}
			}
			continue
		}
		if child, ok := obj.LookupChild(cd.Name); ok && !child.IsEmpty() {
			i.formatTree(sb, child, f, depth+1)
		}
	}
}
