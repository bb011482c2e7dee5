package model

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/tr069-model/tr069-go/pkg/path"
)

// Object is one instance of an ObjectDef: a singleton object or a table row.
type Object struct {
	def      *ObjectDef
	values   map[string]any
	lists    map[string]*List
	singles  map[string]*Object
	tables   map[string]*Table
	parent   *Object
	instance uint32
	err      error
}

// NewObject creates an empty record for def.
func NewObject(def *ObjectDef) *Object {
	def.index()
	return &Object{
		def:    def,
		values: make(map[string]any),
	}
}

// Def returns the object definition.
func (o *Object) Def() *ObjectDef { return o.def }

// Parent returns the enclosing record, or nil for a detached record.
// The parent of a table row is the object holding the table.
func (o *Object) Parent() *Object { return o.parent }

// Instance returns the instance number of a table row, or 0.
func (o *Object) Instance() uint32 { return o.instance }

// SetInstance sets the instance number of a row before it is added to a
// table. It fails once the row is attached.
func (o *Object) SetInstance(n uint32) error {
	if o.parent != nil {
		return ErrRowAttached
	}
	if !o.def.Table {
		return ErrNotTable
	}
	o.instance = n
	return nil
}

// Path returns the concrete path of the record. Instance numbers come from
// the chain of enclosing rows; placeholders remain for detached rows.
func (o *Object) Path() string {
	var instances []uint32
	for obj := o; obj != nil; obj = obj.parent {
		if obj.def.Table {
			instances = append([]uint32{obj.instance}, instances...)
		}
	}
	p, err := path.Parse(o.def.Path)
	if err != nil {
		return o.def.Path
	}
	return p.FillRight(instances...).String()
}

// Get returns the value of a parameter, or its declared default when it is
// absent. It returns nil for absent parameters without default and for
// unknown names. List-valued parameters are returned as []any.
func (o *Object) Get(name string) any {
	if v, ok := o.values[name]; ok {
		return v
	}
	if l, ok := o.lists[name]; ok && l.Len() > 0 {
		return l.Items()
	}
	if p := o.def.Parameter(name); p != nil {
		return p.Default
	}
	return nil
}

// Lookup returns the value of a parameter that is present.
func (o *Object) Lookup(name string) (any, bool) {
	v, ok := o.values[name]
	return v, ok
}

// IsSet reports whether a scalar parameter is present or a list parameter
// has items.
func (o *Object) IsSet(name string) bool {
	if _, ok := o.values[name]; ok {
		return true
	}
	l, ok := o.lists[name]
	return ok && l.Len() > 0
}

// Set coerces v to the parameter's Go type, validates it and stores it.
// On failure the previous value is kept. A nil v clears the parameter.
// List-valued parameters take a slice and replace all items.
func (o *Object) Set(name string, v any) error {
	p := o.def.Parameter(name)
	if p == nil {
		return o.annotate(&ValidationError{Parameter: name, Value: v, Err: ErrUnknownParameter})
	}
	if v == nil {
		o.Clear(name)
		return nil
	}
	if p.List {
		items, err := sliceItems(v)
		if err != nil {
			return o.annotate(&ValidationError{Parameter: name, Value: v, Rule: "list of " + p.Type.String(), Err: ErrValueType})
		}
		return o.List(name).Replace(items...)
	}

	c, err := p.Normalize(v)
	if err != nil {
		return o.annotate(err)
	}
	o.values[name] = c
	return nil
}

// Write is Set as performed by a management client: read-only parameters
// are rejected with ErrNotWritable.
func (o *Object) Write(name string, v any) error {
	p := o.def.Parameter(name)
	if p != nil && !p.Access.CanWrite() {
		return o.annotate(&ValidationError{Parameter: name, Value: v, Rule: "access " + p.Access.String(), Err: ErrNotWritable})
	}
	return o.Set(name, v)
}

// Clear makes a parameter absent.
func (o *Object) Clear(name string) {
	delete(o.values, name)
	if l, ok := o.lists[name]; ok {
		l.Clear()
	}
}

// With is the chaining form of Set. The first failure is kept and reported
// by Err and Validate.
func (o *Object) With(name string, v any) *Object {
	if err := o.Set(name, v); err != nil && o.err == nil {
		o.err = err
	}
	return o
}

// Err returns the first error recorded by With.
func (o *Object) Err() error { return o.err }

// List returns the live list of a list-valued parameter, creating it on
// first access. It panics if name is not a list parameter of the definition.
func (o *Object) List(name string) *List {
	if l, ok := o.lists[name]; ok {
		return l
	}
	p := o.def.Parameter(name)
	if p == nil || !p.List {
		panic(fmt.Sprintf("model: %s%s: %v", o.def.Path, name, ErrNotList))
	}
	if o.lists == nil {
		o.lists = make(map[string]*List)
	}
	l := &List{def: p, owner: o}
	o.lists[name] = l
	return l
}

// LookupList returns a list that has already been created.
func (o *Object) LookupList(name string) (*List, bool) {
	l, ok := o.lists[name]
	return l, ok
}

// Child returns the singleton child object, creating it on first access.
// It panics if name is not a singleton child of the definition.
func (o *Object) Child(name string) *Object {
	if c, ok := o.singles[name]; ok {
		return c
	}
	cd := o.def.Child(name)
	if cd == nil || cd.IsTable() {
		panic(fmt.Sprintf("model: %s%s.: %v", o.def.Path, name, ErrUnknownChild))
	}
	if o.singles == nil {
		o.singles = make(map[string]*Object)
	}
	c := NewObject(cd.Object)
	c.parent = o
	o.singles[name] = c
	return c
}

// LookupChild returns a singleton child that has already been created.
func (o *Object) LookupChild(name string) (*Object, bool) {
	c, ok := o.singles[name]
	return c, ok
}

// Table returns the live table of a multi-instance child, creating it on
// first access. It panics if name is not a table child of the definition.
func (o *Object) Table(name string) *Table {
	if t, ok := o.tables[name]; ok {
		return t
	}
	cd := o.def.Child(name)
	if cd == nil || !cd.IsTable() {
		panic(fmt.Sprintf("model: %s%s.: %v", o.def.Path, name, ErrNotTable))
	}
	if o.tables == nil {
		o.tables = make(map[string]*Table)
	}
	t := &Table{def: cd, owner: o}
	o.tables[name] = t
	return t
}

// LookupTable returns a table that has already been created.
func (o *Object) LookupTable(name string) (*Table, bool) {
	t, ok := o.tables[name]
	return t, ok
}

// Validate checks every value, list, child and table of the record,
// including unique keys, and returns all failures joined. A builder error
// recorded by With is reported first.
func (o *Object) Validate() error {
	var errs []error
	if o.err != nil {
		errs = append(errs, o.err)
	}
	for _, p := range o.def.Parameters {
		if p.List {
			if l, ok := o.lists[p.Name]; ok {
				if err := l.Validate(); err != nil {
					errs = append(errs, err)
				}
			}
			continue
		}
		v, ok := o.values[p.Name]
		if !ok {
			continue
		}
		if err := p.Validate(v); err != nil {
			errs = append(errs, o.annotate(err))
		}
	}
	for _, c := range o.def.Children {
		if c.IsTable() {
			if t, ok := o.tables[c.Name]; ok {
				if err := t.Validate(); err != nil {
					errs = append(errs, err)
				}
			}
			continue
		}
		if child, ok := o.singles[c.Name]; ok {
			if err := child.Validate(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// IsEmpty reports whether the record holds no values, no list items and
// only empty children and tables.
func (o *Object) IsEmpty() bool {
	if len(o.values) > 0 {
		return false
	}
	for _, l := range o.lists {
		if l.Len() > 0 {
			return false
		}
	}
	for _, c := range o.singles {
		if !c.IsEmpty() {
			return false
		}
	}
	for _, t := range o.tables {
		if t.Len() > 0 {
			return false
		}
	}
	return true
}

// Equal reports whether two records hold the same values. Absent and empty
// lists, children and tables compare equal.
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	if o.def != other.def || o.instance != other.instance {
		return false
	}
	for _, p := range o.def.Parameters {
		if p.List {
			if !equalItems(o.listItems(p.Name), other.listItems(p.Name)) {
				return false
			}
			continue
		}
		a, aok := o.values[p.Name]
		b, bok := other.values[p.Name]
		if aok != bok || (aok && !valueEqual(a, b)) {
			return false
		}
	}
	for _, c := range o.def.Children {
		if c.IsTable() {
			if !o.tableRows(c.Name).equal(other.tableRows(c.Name)) {
				return false
			}
			continue
		}
		a, aok := o.singles[c.Name]
		b, bok := other.singles[c.Name]
		switch {
		case aok && bok:
			if !a.Equal(b) {
				return false
			}
		case aok:
			if !a.IsEmpty() {
				return false
			}
		case bok:
			if !b.IsEmpty() {
				return false
			}
		}
	}
	return true
}

func (o *Object) listItems(name string) []any {
	if l, ok := o.lists[name]; ok {
		return l.items
	}
	return nil
}

func (o *Object) tableRows(name string) rowSet {
	if t, ok := o.tables[name]; ok {
		return t.rows
	}
	return nil
}

// annotate fills in the object path of a validation error.
func (o *Object) annotate(err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) && ve.Object == "" {
		ve.Object = o.Path()
	}
	return err
}

func valueEqual(a, b any) bool {
	switch x := a.(type) {
	case []byte:
		y, ok := b.([]byte)
		return ok && bytes.Equal(x, y)
	case time.Time:
		y, ok := b.(time.Time)
		return ok && x.Equal(y)
	}
	return a == b
}

func equalItems(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !valueEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// sliceItems unpacks any slice into its elements.
func sliceItems(v any) ([]any, error) {
	switch s := v.(type) {
	case []any:
		return s, nil
	case []string:
		out := make([]any, len(s))
		for i := range s {
			out[i] = s[i]
		}
		return out, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, ErrValueType
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}
