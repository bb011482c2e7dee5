package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// List is the live, order-preserving item list of a list-valued parameter.
type List struct {
	def   *ParameterDef
	owner *Object
	items []any
}

// Def returns the parameter definition.
func (l *List) Def() *ParameterDef { return l.def }

// Len returns the number of items.
func (l *List) Len() int { return len(l.items) }

// At returns the item at index i.
func (l *List) At(i int) any { return l.items[i] }

// Items returns a copy of the items.
func (l *List) Items() []any {
	return append([]any(nil), l.items...)
}

// Strings returns the lexical form of every item.
func (l *List) Strings() []string {
	out := make([]string, len(l.items))
	for i, v := range l.items {
		out[i] = FormatValue(l.def.Type, v)
	}
	return out
}

// Append validates and appends items. Either all items are appended or none.
func (l *List) Append(items ...any) error {
	if l.def.MaxItems > 0 && len(l.items)+len(items) > l.def.MaxItems {
		return l.fail(len(l.items)+len(items), "maxItems "+strconv.Itoa(l.def.MaxItems), ErrTooManyItems)
	}
	norm, err := l.normalize(items)
	if err != nil {
		return err
	}
	l.items = append(l.items, norm...)
	return nil
}

// Replace validates items and replaces the list contents with them.
func (l *List) Replace(items ...any) error {
	if l.def.MaxItems > 0 && len(items) > l.def.MaxItems {
		return l.fail(len(items), "maxItems "+strconv.Itoa(l.def.MaxItems), ErrTooManyItems)
	}
	norm, err := l.normalize(items)
	if err != nil {
		return err
	}
	l.items = norm
	return nil
}

// Set validates v and stores it at index i.
func (l *List) Set(i int, v any) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("list %s: index %d out of range", l.def.Name, i)
	}
	norm, err := l.normalize([]any{v})
	if err != nil {
		return err
	}
	l.items[i] = norm[0]
	return nil
}

// Remove deletes the item at index i.
func (l *List) Remove(i int) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("list %s: index %d out of range", l.def.Name, i)
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// Clear removes all items. The list stays attached to its record.
func (l *List) Clear() {
	l.items = nil
}

// Validate re-checks every item and the item count.
func (l *List) Validate() error {
	if l.def.MaxItems > 0 && len(l.items) > l.def.MaxItems {
		return l.fail(len(l.items), "maxItems "+strconv.Itoa(l.def.MaxItems), ErrTooManyItems)
	}
	var errs []error
	for _, v := range l.items {
		if err := l.def.Validate(v); err != nil {
			errs = append(errs, l.owner.annotate(err))
		}
	}
	return errors.Join(errs...)
}

func (l *List) normalize(items []any) ([]any, error) {
	out := make([]any, len(items))
	for i, v := range items {
		c, err := l.def.Normalize(v)
		if err != nil {
			return nil, l.owner.annotate(err)
		}
		out[i] = c
	}
	return out, nil
}

func (l *List) fail(n int, rule string, err error) error {
	return l.owner.annotate(&ValidationError{Parameter: l.def.Name, Value: n, Rule: rule, Err: err})
}

// rowSet is an ordered set of table rows.
type rowSet []*Object

func (a rowSet) equal(b rowSet) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Table is the live row collection of a multi-instance child object.
// Rows keep their insertion order and carry unique instance numbers.
type Table struct {
	def   *ChildDef
	owner *Object
	rows  rowSet
	last  uint32
}

// Def returns the child definition of the table.
func (t *Table) Def() *ChildDef { return t.def }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns the row at position i.
func (t *Table) Row(i int) *Object { return t.rows[i] }

// Rows returns the rows in order.
func (t *Table) Rows() []*Object {
	return append([]*Object(nil), t.rows...)
}

// Instance returns the row with instance number n, or nil.
func (t *Table) Instance(n uint32) *Object {
	for _, r := range t.rows {
		if r.instance == n {
			return r
		}
	}
	return nil
}

// Add appends a new empty row and returns it.
func (t *Table) Add() (*Object, error) {
	row := NewObject(t.def.Object)
	if err := t.Append(row); err != nil {
		return nil, err
	}
	return row, nil
}

// Append adds a detached row. A row without an instance number gets the
// next free one. The row must not collide with an existing row on a unique
// key or instance number, and the table must not be full.
func (t *Table) Append(row *Object) error {
	if row.def != t.def.Object {
		return fmt.Errorf("%w: %s into %s", ErrWrongDefinition, row.def.Path, t.def.Object.Path)
	}
	if row.parent != nil {
		return ErrRowAttached
	}
	if limit := t.def.Object.MaxEntries; limit > 0 && len(t.rows) >= limit {
		return &ValidationError{Object: t.path(), Parameter: t.def.Name, Value: len(t.rows) + 1, Rule: "maxEntries " + strconv.Itoa(limit), Err: ErrTableFull}
	}
	if row.instance != 0 && t.Instance(row.instance) != nil {
		return fmt.Errorf("%w: %s%d", ErrDuplicateRow, t.path(), row.instance)
	}
	for _, key := range t.def.Object.UniqueKeys {
		k, ok := uniqueKey(row, key)
		if !ok {
			continue
		}
		for _, other := range t.rows {
			if ok := sameKey(other, key, k); ok {
				return t.duplicate(key, k)
			}
		}
	}

	if row.instance == 0 {
		row.instance = t.last + 1
	}
	if row.instance > t.last {
		t.last = row.instance
	}
	row.parent = t.owner
	t.rows = append(t.rows, row)
	return nil
}

// Remove deletes the row with instance number n. Instance numbers are not
// reused.
func (t *Table) Remove(n uint32) bool {
	for i, r := range t.rows {
		if r.instance == n {
			r.parent = nil
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every row.
func (t *Table) Clear() {
	for _, r := range t.rows {
		r.parent = nil
	}
	t.rows = nil
}

// Validate checks every row, the row count and the unique keys across rows.
func (t *Table) Validate() error {
	var errs []error
	if limit := t.def.Object.MaxEntries; limit > 0 && len(t.rows) > limit {
		errs = append(errs, &ValidationError{Object: t.path(), Parameter: t.def.Name, Value: len(t.rows), Rule: "maxEntries " + strconv.Itoa(limit), Err: ErrTableFull})
	}
	for _, key := range t.def.Object.UniqueKeys {
		seen := make(map[string]bool, len(t.rows))
		for _, r := range t.rows {
			k, ok := uniqueKey(r, key)
			if !ok {
				continue
			}
			if seen[k] {
				errs = append(errs, t.duplicate(key, k))
				continue
			}
			seen[k] = true
		}
	}
	for _, r := range t.rows {
		if err := r.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t *Table) path() string {
	return t.owner.Path() + t.def.Name + "."
}

func (t *Table) duplicate(key []string, k string) error {
	return &ValidationError{
		Object:    t.path(),
		Parameter: strings.Join(key, ","),
		Value:     strings.ReplaceAll(k, keySep, ","),
		Rule:      "unique key",
		Err:       ErrDuplicateKey,
	}
}

const keySep = "\x00"

// uniqueKey returns the lexical key of row over names, with named-type
// values in canonical spelling. It reports false when a key parameter is
// absent.
func uniqueKey(row *Object, names []string) (string, bool) {
	parts := make([]string, len(names))
	for i, name := range names {
		v, ok := row.values[name]
		if !ok {
			return "", false
		}
		def := row.def.Parameter(name)
		parts[i] = FormatValue(def.Type, v)
		if def.Named != "" {
			parts[i] = canonicalNamed(def.Named, parts[i])
		}
	}
	return strings.Join(parts, keySep), true
}

func sameKey(row *Object, names []string, k string) bool {
	other, ok := uniqueKey(row, names)
	return ok && other == k
}
