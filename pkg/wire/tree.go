package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/tr069-model/tr069-go/pkg/log"
	"github.com/tr069-model/tr069-go/pkg/model"
	"github.com/tr069-model/tr069-go/pkg/path"
	"github.com/tr069-model/tr069-go/pkg/version"
)

// InstanceKey is the tree key carrying the instance number of a table row.
const InstanceKey = "@instance"

// ToTree returns the nested-map form of a record: one key per present
// parameter or non-empty child, named by its wire tag. Booleans and
// integers keep their Go types; dateTime and binary values use their
// lexical form. Lists become []any and tables []any of row maps carrying
// InstanceKey. Wrappers are not represented. The record is validated first.
func ToTree(o *model.Object, opts EncodeOptions) (map[string]any, error) {
	l := newDocLog(opts.Logger, log.DirectionEncode, treeFormat, o, opts.Version, opts.Source)
	tree, err := toTree(o, opts.Version, l)
	if err != nil {
		return nil, err
	}
	l.done(o.Path(), 0)
	return tree, nil
}

// treeFormat names in-memory trees in events.
const treeFormat = "tree"

func toTree(o *model.Object, v version.SpecVersion, l *docLog) (map[string]any, error) {
	if err := o.Validate(); err != nil {
		return nil, l.fail(fmt.Errorf("%w: %w", ErrInvalidRecord, err), "validating record")
	}
	t := &treeWriter{version: v, log: l}
	return t.object(o), nil
}

type treeWriter struct {
	version version.SpecVersion
	log     *docLog
}

func (t *treeWriter) object(o *model.Object) map[string]any {
	def := o.Def()
	out := make(map[string]any)
	t.log.objects++
	if def.Table && o.Instance() != 0 {
		out[InstanceKey] = o.Instance()
	}
	for _, p := range def.Parameters {
		if !o.IsSet(p.Name) {
			continue
		}
		if !included(p.Since, t.version) {
			t.log.skipped(o.Path(), p.Name, 0, log.SkipNewerVersion)
			continue
		}
		if p.List {
			items := o.List(p.Name).Items()
			vals := make([]any, len(items))
			for i, v := range items {
				vals[i] = treeValue(p.Type, v)
			}
			out[p.Name] = vals
			t.log.parameters += len(vals)
			continue
		}
		v, _ := o.Lookup(p.Name)
		out[p.Name] = treeValue(p.Type, v)
		t.log.parameters++
	}
	for _, c := range def.Children {
		if !included(c.Object.Since, t.version) {
			if !childEmpty(o, c) {
				t.log.skipped(o.Path(), c.Name, 0, log.SkipNewerVersion)
			}
			continue
		}
		if c.IsTable() {
			tbl, ok := o.LookupTable(c.Name)
			if !ok || tbl.Len() == 0 {
				continue
			}
			rows := make([]any, 0, tbl.Len())
			for _, row := range tbl.Rows() {
				rows = append(rows, t.object(row))
			}
			out[c.Name] = rows
			continue
		}
		if child, ok := o.LookupChild(c.Name); ok && !child.IsEmpty() {
			out[c.Name] = t.object(child)
		}
	}
	return out
}

func childEmpty(o *model.Object, c *model.ChildDef) bool {
	if c.IsTable() {
		tbl, ok := o.LookupTable(c.Name)
		return !ok || tbl.Len() == 0
	}
	child, ok := o.LookupChild(c.Name)
	return !ok || child.IsEmpty()
}

func treeValue(t model.DataType, v any) any {
	switch v.(type) {
	case time.Time, []byte:
		return model.FormatValue(t, v)
	}
	return v
}

// FromTree fills o from its nested-map form. Scalars may be native values
// or lexical strings. Unknown keys are skipped and reported to opts.Logger.
func FromTree(tree map[string]any, o *model.Object, opts DecodeOptions) error {
	l := newDocLog(opts.Logger, log.DirectionDecode, treeFormat, o, version.SpecVersion{}, opts.Source)
	if err := fromTree(tree, o, l); err != nil {
		return err
	}
	l.done(o.Path(), 0)
	return nil
}

func fromTree(tree map[string]any, o *model.Object, l *docLog) error {
	r := &treeReader{log: l}
	if err := r.object(tree, o, o.Path()); err != nil {
		return l.fail(err, "reading tree")
	}
	return nil
}

type treeReader struct {
	log *docLog
}

func (r *treeReader) object(tree map[string]any, o *model.Object, where string) error {
	def := o.Def()
	r.log.objects++

	for _, p := range def.Parameters {
		if raw, ok := tree[p.Name]; ok {
			if err := r.parameter(o, where, p, raw); err != nil {
				return err
			}
		}
	}
	for _, c := range def.Children {
		if raw, ok := tree[c.Name]; ok {
			if err := r.child(o, where, c, raw); err != nil {
				return err
			}
		}
	}
	for _, key := range unknownKeys(def, tree) {
		r.log.skipped(where, key, 0, log.SkipUnknownElement)
	}
	return nil
}

func (r *treeReader) parameter(o *model.Object, where string, p *model.ParameterDef, raw any) error {
	fail := func(err error) error {
		if errors.Is(err, model.ErrValueType) {
			err = fmt.Errorf("%w: %w", model.ErrMalformedValue, err)
		}
		return &DecodeError{Path: where, Element: p.Name, Err: err}
	}
	if !p.List {
		v, err := scalarValue(p, raw)
		if err == nil {
			err = o.Set(p.Name, v)
		}
		if err != nil {
			return fail(err)
		}
		r.log.parameters++
		return nil
	}

	items, ok := raw.([]any)
	if !ok {
		// A single item may be written without the sequence.
		items = []any{raw}
	}
	vals := make([]any, len(items))
	for i, it := range items {
		v, err := scalarValue(p, it)
		if err != nil {
			return fail(err)
		}
		vals[i] = v
	}
	if err := o.List(p.Name).Replace(vals...); err != nil {
		return fail(err)
	}
	r.log.parameters += len(vals)
	return nil
}

func (r *treeReader) child(o *model.Object, where string, c *model.ChildDef, raw any) error {
	if !c.IsTable() {
		m, ok := raw.(map[string]any)
		if !ok {
			return &DecodeError{Path: where, Element: c.Name, Err: fmt.Errorf("%w: %s is not a map", model.ErrMalformedValue, c.Name)}
		}
		return r.object(m, o.Child(c.Name), where+c.Name+".")
	}

	rows, ok := raw.([]any)
	if !ok {
		return &DecodeError{Path: where, Element: c.Name, Err: fmt.Errorf("%w: %s is not a list of rows", model.ErrMalformedValue, c.Name)}
	}
	prefix := where + c.Name + "."
	for _, rawRow := range rows {
		m, ok := rawRow.(map[string]any)
		if !ok {
			return &DecodeError{Path: prefix, Err: fmt.Errorf("%w: row is not a map", model.ErrMalformedValue)}
		}
		row := model.NewObject(c.Object)
		rowPath := prefix + path.Placeholder + "."
		if rawN, ok := m[InstanceKey]; ok {
			n, err := instanceValue(rawN)
			if err == nil {
				err = row.SetInstance(n)
			}
			if err != nil {
				return &DecodeError{Path: prefix, Element: InstanceKey, Err: err}
			}
			rowPath = prefix + strconv.FormatUint(uint64(n), 10) + "."
		}
		if err := r.object(m, row, rowPath); err != nil {
			return err
		}
		if err := o.Table(c.Name).Append(row); err != nil {
			return &DecodeError{Path: where, Element: c.Name, Err: err}
		}
	}
	return nil
}

// scalarValue converts a tree value to something Set accepts. Strings are
// parsed as the lexical form of non-string types.
func scalarValue(p *model.ParameterDef, raw any) (any, error) {
	switch x := raw.(type) {
	case string:
		if p.Type == model.DataTypeString {
			return x, nil
		}
		return parseText(p, x)
	case json.Number:
		return parseText(p, x.String())
	case time.Time:
		if p.Type != model.DataTypeDateTime {
			return nil, fmt.Errorf("%w: timestamp for %s parameter", model.ErrMalformedValue, p.Type)
		}
		return x, nil
	case nil:
		return nil, fmt.Errorf("%w: null value", model.ErrMalformedValue)
	}
	return raw, nil
}

func instanceValue(raw any) (uint32, error) {
	var n uint64
	switch x := raw.(type) {
	case uint32:
		n = uint64(x)
	case uint64:
		n = x
	case int:
		if x < 0 {
			return 0, fmt.Errorf("%w: instance %d", model.ErrMalformedValue, x)
		}
		n = uint64(x)
	case int32:
		if x < 0 {
			return 0, fmt.Errorf("%w: instance %d", model.ErrMalformedValue, x)
		}
		n = uint64(x)
	case int64:
		if x < 0 {
			return 0, fmt.Errorf("%w: instance %d", model.ErrMalformedValue, x)
		}
		n = uint64(x)
	case float64:
		if x < 0 || x != math.Trunc(x) {
			return 0, fmt.Errorf("%w: instance %v", model.ErrMalformedValue, x)
		}
		n = uint64(x)
	case json.Number:
		v, err := strconv.ParseUint(x.String(), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: instance %s", model.ErrMalformedValue, x)
		}
		n = v
	case string:
		v, err := strconv.ParseUint(x, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: instance %q", model.ErrMalformedValue, x)
		}
		n = v
	default:
		return 0, fmt.Errorf("%w: instance %v", model.ErrMalformedValue, raw)
	}
	if n == 0 || n > math.MaxUint32 {
		return 0, fmt.Errorf("%w: instance %d", model.ErrMalformedValue, n)
	}
	return uint32(n), nil
}

// unknownKeys returns the sorted keys of tree that def does not define.
func unknownKeys(def *model.ObjectDef, tree map[string]any) []string {
	var keys []string
	for k := range tree {
		if k == InstanceKey || def.Parameter(k) != nil || def.Child(k) != nil {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
