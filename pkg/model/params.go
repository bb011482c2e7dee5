package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tr069-model/tr069-go/pkg/path"
)

// ParameterValue is one entry of a CWMP ParameterValueStruct list.
type ParameterValue struct {
	Name  string // full concrete parameter path
	Value string // lexical form
	Type  string // xsd type, e.g. "xsd:unsignedInt"
}

// ParameterValues flattens the record into parameter values, depth first in
// definition order. Absent parameters with a default are reported with the
// default. List values are comma-separated.
func (o *Object) ParameterValues() []ParameterValue {
	var out []ParameterValue
	o.collect(&out)
	return out
}

func (o *Object) collect(out *[]ParameterValue) {
	prefix := o.Path()
	for _, p := range o.def.Parameters {
		if p.List {
			l, ok := o.lists[p.Name]
			if !ok || l.Len() == 0 {
				continue
			}
			*out = append(*out, ParameterValue{
				Name:  prefix + p.Name,
				Value: strings.Join(l.Strings(), ","),
				Type:  DataTypeString.TypeName(),
			})
			continue
		}
		v := o.Get(p.Name)
		if v == nil {
			continue
		}
		*out = append(*out, ParameterValue{
			Name:  prefix + p.Name,
			Value: FormatValue(p.Type, v),
			Type:  p.Type.TypeName(),
		})
	}
	for _, c := range o.def.Children {
		if c.IsTable() {
			if t, ok := o.tables[c.Name]; ok {
				for _, r := range t.rows {
					r.collect(out)
				}
			}
			continue
		}
		if child, ok := o.singles[c.Name]; ok {
			child.collect(out)
		}
	}
}

// Resolve locates the record and parameter addressed by a concrete path
// below o. The path must start with o's own path. Resolve does not modify
// the tree: an absent singleton child on the way is returned as a detached
// view that reports defaults. Missing table rows are an error. For object
// paths the returned parameter definition is nil.
func (o *Object) Resolve(p string) (*Object, *ParameterDef, error) {
	return o.resolve(p, false)
}

func (o *Object) resolve(p string, create bool) (*Object, *ParameterDef, error) {
	parsed, err := path.Parse(p)
	if err != nil {
		return nil, nil, err
	}
	obj, rest, err := o.walk(parsed.Segments, create)
	if err != nil {
		return nil, nil, err
	}
	if len(rest) > 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrNoSuchObject, p)
	}
	if parsed.IsObject() {
		return obj, nil, nil
	}
	pd := obj.def.Parameter(parsed.Parameter)
	if pd == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownParameter, p)
	}
	return obj, pd, nil
}

// ResolveTable locates the table addressed by a path such as
// "Device.DHCPv4.Client." below o without modifying the tree. A table that
// does not exist yet is returned as an empty detached view; use EnsureTable
// to add rows.
func (o *Object) ResolveTable(p string) (*Table, error) {
	return o.resolveTable(p, false)
}

// EnsureTable is ResolveTable for writers: absent singleton children on the
// way and the table itself are created and attached.
func (o *Object) EnsureTable(p string) (*Table, error) {
	return o.resolveTable(p, true)
}

func (o *Object) resolveTable(p string, create bool) (*Table, error) {
	parsed, err := path.Parse(p)
	if err != nil {
		return nil, err
	}
	if !parsed.IsObject() {
		return nil, fmt.Errorf("%w: %s", ErrNotObjectPath, p)
	}
	obj, rest, err := o.walk(parsed.Segments, create)
	if err != nil {
		return nil, err
	}
	if len(rest) != 1 {
		return nil, fmt.Errorf("%w: %s", ErrNotTable, p)
	}
	cd := obj.def.Child(rest[0])
	if cd == nil || !cd.IsTable() {
		return nil, fmt.Errorf("%w: %s", ErrNotTable, p)
	}
	if t, ok := obj.LookupTable(rest[0]); ok {
		return t, nil
	}
	if create {
		return obj.Table(rest[0]), nil
	}
	return obj.view().Table(rest[0]), nil
}

// walk follows segments from o. It stops early, returning the remaining
// segments, when a table name is not followed by an instance number.
// Absent singleton children are created when create is set and viewed
// detached otherwise.
func (o *Object) walk(segs []string, create bool) (*Object, []string, error) {
	own, err := path.Parse(o.Path())
	if err != nil {
		return nil, nil, err
	}
	if len(segs) < len(own.Segments) {
		return nil, nil, fmt.Errorf("%w: %s is outside %s", ErrNoSuchObject, strings.Join(segs, "."), o.Path())
	}
	for i, seg := range own.Segments {
		if segs[i] != seg {
			return nil, nil, fmt.Errorf("%w: %s is outside %s", ErrNoSuchObject, strings.Join(segs, "."), o.Path())
		}
	}

	cur := o
	rest := segs[len(own.Segments):]
	for len(rest) > 0 {
		cd := cur.def.Child(rest[0])
		if cd == nil {
			return nil, nil, fmt.Errorf("%w: %s%s.", ErrNoSuchObject, cur.Path(), rest[0])
		}
		if !cd.IsTable() {
			if _, ok := cur.LookupChild(rest[0]); ok || create {
				cur = cur.Child(rest[0])
			} else {
				cur = cur.detachedChild(cd)
			}
			rest = rest[1:]
			continue
		}
		if len(rest) == 1 {
			return cur, rest, nil
		}
		n, err := strconv.ParseUint(rest[1], 10, 32)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s%s.%s.", ErrNoSuchObject, cur.Path(), rest[0], rest[1])
		}
		var row *Object
		if t, ok := cur.LookupTable(rest[0]); ok {
			row = t.Instance(uint32(n))
		}
		if row == nil {
			return nil, nil, fmt.Errorf("%w: %s%s.%d.", ErrNoSuchObject, cur.Path(), rest[0], n)
		}
		cur = row
		rest = rest[2:]
	}
	return cur, nil, nil
}

// GetParameterValue returns the value of the parameter addressed by a
// concrete path below o. It does not modify the tree.
func (o *Object) GetParameterValue(p string) (ParameterValue, error) {
	obj, pd, err := o.Resolve(p)
	if err != nil {
		return ParameterValue{}, err
	}
	if pd == nil {
		return ParameterValue{}, fmt.Errorf("%w: %s", ErrNotParameterPath, p)
	}
	pv := ParameterValue{Name: obj.Path() + pd.Name, Type: pd.Type.TypeName()}
	if pd.List {
		pv.Type = DataTypeString.TypeName()
		if l, ok := obj.lists[pd.Name]; ok {
			pv.Value = strings.Join(l.Strings(), ",")
		}
		return pv, nil
	}
	pv.Value = FormatValue(pd.Type, obj.Get(pd.Name))
	return pv, nil
}

// SetParameterValue parses a lexical value and writes it, as a management
// client would, to the parameter addressed by a concrete path below o.
// List values are comma-separated; an empty string clears the list.
func (o *Object) SetParameterValue(p, value string) error {
	obj, pd, err := o.resolve(p, true)
	if err != nil {
		return err
	}
	if pd == nil {
		return fmt.Errorf("%w: %s", ErrNotParameterPath, p)
	}
	if !pd.List {
		v, err := ParseValue(pd.Type, value)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		return obj.Write(pd.Name, v)
	}

	var items []any
	if value != "" {
		for _, s := range strings.Split(value, ",") {
			v, err := ParseValue(pd.Type, strings.TrimSpace(s))
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			items = append(items, v)
		}
	}
	if !pd.Access.CanWrite() {
		return obj.annotate(&ValidationError{Parameter: pd.Name, Value: value, Rule: "access " + pd.Access.String(), Err: ErrNotWritable})
	}
	return obj.List(pd.Name).Replace(items...)
}

// detachedChild returns an empty singleton child that knows its place
// below o but is not attached to it.
func (o *Object) detachedChild(cd *ChildDef) *Object {
	c := NewObject(cd.Object)
	c.parent = o
	return c
}

// view returns an empty detached object at o's position in the tree.
func (o *Object) view() *Object {
	v := NewObject(o.def)
	v.parent = o.parent
	v.instance = o.instance
	return v
}
