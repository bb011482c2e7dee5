package main

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/tr069-model/tr069-go/pkg/model"
	"github.com/tr069-model/tr069-go/pkg/specparse"
	"github.com/tr069-model/tr069-go/pkg/version"
)

const (
	modelImport   = "github.com/tr069-model/tr069-go/pkg/model"
	versionImport = "github.com/tr069-model/tr069-go/pkg/version"
)

// source is a compiled schema together with the file it was loaded from.
type source struct {
	Raw    *specparse.RawModel
	Schema *model.Schema
}

// prefix returns the file name prefix for the generated files of s.
func (s *source) prefix() string {
	if s.Raw.Source != "" {
		return strings.TrimSuffix(s.Raw.Source, ".yaml")
	}
	return specparse.FileBase(s.Raw.Model)
}

// schemaVar returns the name of the package-level schema variable.
func (s *source) schemaVar() string {
	return specparse.Identifier(s.Raw.Model) + "Schema"
}

// compileSources compiles every raw model and rejects Go names that would
// clash in the shared output package.
func compileSources(raws []*specparse.RawModel) ([]*source, error) {
	var srcs []*source
	names := make(map[string]string)
	for _, raw := range raws {
		s, err := specparse.Compile(raw)
		if err != nil {
			return nil, err
		}
		for _, def := range s.Objects() {
			if other, dup := names[def.TypeName]; dup {
				return nil, fmt.Errorf("%w: %s used by %s and %s", specparse.ErrDuplicateType, def.TypeName, other, def.Path)
			}
			names[def.TypeName] = def.Path
			if err := checkMethods(def); err != nil {
				return nil, err
			}
		}
		srcs = append(srcs, &source{Raw: raw, Schema: s})
	}
	return srcs, nil
}

// reservedMethods are the methods promoted from the embedded *model.Object.
var reservedMethods = func() map[string]bool {
	m := make(map[string]bool)
	t := reflect.TypeOf(&model.Object{})
	for i := 0; i < t.NumMethod(); i++ {
		m[t.Method(i).Name] = true
	}
	return m
}()

// checkMethods rejects accessors that would shadow a record method or each other.
func checkMethods(def *model.ObjectDef) error {
	seen := make(map[string]string)
	claim := func(method, owner string) error {
		if reservedMethods[method] {
			return fmt.Errorf("object %s: accessor %s for %s shadows a record method", def.Path, method, owner)
		}
		if other, dup := seen[method]; dup {
			return fmt.Errorf("object %s: accessor %s used by %s and %s", def.Path, method, other, owner)
		}
		seen[method] = owner
		return nil
	}
	for _, p := range def.Parameters {
		f := p.FieldName()
		methods := []string{f}
		if !p.List {
			methods = append(methods, "Set"+f, "With"+f)
		}
		for _, m := range methods {
			if err := claim(m, p.Name); err != nil {
				return err
			}
		}
	}
	for _, c := range def.Children {
		f := c.FieldName()
		methods := []string{f}
		if c.IsTable() {
			methods = []string{f + "Table", "Add" + f, f + "Rows"}
		}
		for _, m := range methods {
			if err := claim(m, c.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

// GenerateRoot renders the root object of a model and its schema variable.
func GenerateRoot(s *source, pkg string) (string, error) {
	root := s.Schema.Root()
	obj, err := objectFor(root)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	renderTemplate(&b, "header", headerFor(pkg, s.Raw.Source, []*model.ObjectDef{root}, true))
	renderTemplate(&b, "object", obj)
	v := s.Schema.Version()
	renderTemplate(&b, "schema", schemaData{
		Var:     s.schemaVar(),
		Model:   s.Raw.Model,
		Version: v.String(),
		Major:   v.Major,
		Minor:   v.Minor,
		Spec:    s.Raw.Spec,
		Root:    root.TypeName,
	})
	return b.String(), nil
}

// GenerateGroup renders the subtree below one child of the root object.
func GenerateGroup(s *source, group *model.ChildDef, pkg string) (string, error) {
	var defs []*model.ObjectDef
	var walk func(d *model.ObjectDef)
	walk = func(d *model.ObjectDef) {
		defs = append(defs, d)
		for _, c := range d.Children {
			walk(c.Object)
		}
	}
	walk(group.Object)

	var b strings.Builder
	renderTemplate(&b, "header", headerFor(pkg, s.Raw.Source, defs, false))
	for _, d := range defs {
		obj, err := objectFor(d)
		if err != nil {
			return "", err
		}
		renderTemplate(&b, "object", obj)
	}
	return b.String(), nil
}

// GenerateRegistry renders the Schemas function listing every model.
func GenerateRegistry(srcs []*source, pkg string) string {
	data := registryData{Package: pkg}
	for _, s := range srcs {
		data.Vars = append(data.Vars, s.schemaVar())
	}
	sort.Strings(data.Vars)

	var b strings.Builder
	renderTemplate(&b, "registry", data)
	return b.String()
}

func headerFor(pkg, src string, defs []*model.ObjectDef, schema bool) headerData {
	h := headerData{Package: pkg, Source: src}
	needTime, needVersion := false, schema
	for _, d := range defs {
		if !d.Since.IsZero() {
			needVersion = true
		}
		for _, p := range d.Parameters {
			if !p.Since.IsZero() {
				needVersion = true
			}
			if p.Type == model.DataTypeDateTime && !p.List {
				needTime = true
			}
		}
	}
	if needTime {
		h.Std = append(h.Std, "time")
	}
	h.Local = append(h.Local, modelImport)
	if needVersion {
		h.Local = append(h.Local, versionImport)
	}
	return h
}

func objectFor(def *model.ObjectDef) (objectData, error) {
	t := def.TypeName
	obj := objectData{
		TypeName:    t,
		Recv:        recv(t),
		Path:        def.Path,
		Table:       def.Table,
		Description: oneLine(def.Description),
		DefFields:   defFields(def),
	}

	for _, p := range def.Parameters {
		goType, zero, err := goTypeOf(p.Type)
		if err != nil {
			return objectData{}, fmt.Errorf("object %s: parameter %s: %w", def.Path, p.Name, err)
		}
		lit, err := paramLiteral(p)
		if err != nil {
			return objectData{}, fmt.Errorf("object %s: parameter %s: %w", def.Path, p.Name, err)
		}
		pd := paramData{
			Name:       p.Name,
			Const:      t + "Param" + p.FieldName(),
			Field:      p.FieldName(),
			GoType:     goType,
			Zero:       zero,
			HasDefault: p.Default != nil && !p.List,
			List:       p.List,
			Literal:    lit,
		}
		if pd.HasDefault {
			pd.DefaultText = defaultText(p.Type, p.Default)
		}
		obj.Params = append(obj.Params, pd)

		if len(p.Enumeration) > 0 {
			e := enumData{Param: p.Name}
			for _, v := range p.Enumeration {
				e.Values = append(e.Values, enumValue{
					Const: t + p.FieldName() + enumSuffix(v),
					Value: v,
				})
			}
			obj.Enums = append(obj.Enums, e)
		}
	}

	for _, c := range def.Children {
		lit := fmt.Sprintf("Name: %q", c.Name)
		if c.Field != "" {
			lit += fmt.Sprintf(", Field: %q", c.Field)
		}
		lit += ", Object: " + c.Object.TypeName + "Def"
		if c.Wrapper != "" {
			lit += fmt.Sprintf(", Wrapper: %q", c.Wrapper)
		}
		obj.Children = append(obj.Children, childData{
			Name:     c.Name,
			Field:    c.FieldName(),
			TypeName: c.Object.TypeName,
			Table:    c.IsTable(),
			Literal:  "{" + lit + "}",
		})
	}
	return obj, nil
}

// defFields returns the scalar key-value pairs of an ObjectDef literal.
func defFields(def *model.ObjectDef) []string {
	fields := []string{
		fmt.Sprintf("Path: %q", def.Path),
		fmt.Sprintf("Name: %q", def.Name),
		fmt.Sprintf("TypeName: %q", def.TypeName),
	}
	if def.Table {
		fields = append(fields, "Table: true")
	}
	fields = append(fields, "Access: "+accessConst(def.Access))
	if len(def.UniqueKeys) > 0 {
		keys := make([]string, len(def.UniqueKeys))
		for i, k := range def.UniqueKeys {
			keys[i] = "{" + quoteList(k) + "}"
		}
		fields = append(fields, "UniqueKeys: [][]string{"+strings.Join(keys, ", ")+"}")
	}
	if def.MaxEntries > 0 {
		fields = append(fields, fmt.Sprintf("MaxEntries: %d", def.MaxEntries))
	}
	if !def.Since.IsZero() {
		fields = append(fields, "Since: "+sinceLiteral(def.Since))
	}
	if d := oneLine(def.Description); d != "" {
		fields = append(fields, fmt.Sprintf("Description: %q", d))
	}
	return fields
}

// paramLiteral renders a ParameterDef as a one-line composite literal.
func paramLiteral(p *model.ParameterDef) (string, error) {
	fields := []string{fmt.Sprintf("Name: %q", p.Name)}
	if p.Field != "" {
		fields = append(fields, fmt.Sprintf("Field: %q", p.Field))
	}
	fields = append(fields, "Type: "+dataTypeConst(p.Type))
	if p.Named != "" {
		fields = append(fields, fmt.Sprintf("Named: %q", p.Named))
	}
	fields = append(fields, "Access: "+accessConst(p.Access))
	if p.Default != nil {
		lit, err := valueLiteral(p.Default)
		if err != nil {
			return "", err
		}
		fields = append(fields, "Default: "+lit)
	}
	if len(p.Ranges) > 0 {
		rs := make([]string, len(p.Ranges))
		for i, r := range p.Ranges {
			var parts []string
			if r.Min != nil {
				parts = append(parts, fmt.Sprintf("Min: model.Bound(%d)", *r.Min))
			}
			if r.Max != nil {
				parts = append(parts, fmt.Sprintf("Max: model.Bound(%d)", *r.Max))
			}
			rs[i] = "{" + strings.Join(parts, ", ") + "}"
		}
		fields = append(fields, "Ranges: []model.Range{"+strings.Join(rs, ", ")+"}")
	}
	if len(p.Sentinels) > 0 {
		ss := make([]string, len(p.Sentinels))
		for i, s := range p.Sentinels {
			ss[i] = fmt.Sprintf("{Value: %d, Meaning: %q}", s.Value, s.Meaning)
		}
		fields = append(fields, "Sentinels: []model.Sentinel{"+strings.Join(ss, ", ")+"}")
	}
	if p.MinLength > 0 {
		fields = append(fields, fmt.Sprintf("MinLength: %d", p.MinLength))
	}
	if p.MaxLength > 0 {
		fields = append(fields, fmt.Sprintf("MaxLength: %d", p.MaxLength))
	}
	if len(p.Patterns) > 0 {
		fields = append(fields, "Patterns: []string{"+quoteList(p.Patterns)+"}")
	}
	if len(p.Enumeration) > 0 {
		fields = append(fields, "Enumeration: []string{"+quoteList(p.Enumeration)+"}")
	}
	if p.List {
		fields = append(fields, "List: true")
	}
	if p.Wrapper != "" {
		fields = append(fields, fmt.Sprintf("Wrapper: %q", p.Wrapper))
	}
	if p.ItemTag != "" {
		fields = append(fields, fmt.Sprintf("ItemTag: %q", p.ItemTag))
	}
	if p.MaxItems > 0 {
		fields = append(fields, fmt.Sprintf("MaxItems: %d", p.MaxItems))
	}
	if !p.Since.IsZero() {
		fields = append(fields, "Since: "+sinceLiteral(p.Since))
	}
	if p.Unit != "" {
		fields = append(fields, fmt.Sprintf("Unit: %q", p.Unit))
	}
	if d := oneLine(p.Description); d != "" {
		fields = append(fields, fmt.Sprintf("Description: %q", d))
	}
	return "{" + strings.Join(fields, ", ") + "}", nil
}

// valueLiteral renders a canonical parameter value as a Go expression.
func valueLiteral(v any) (string, error) {
	switch x := v.(type) {
	case bool:
		return fmt.Sprintf("%t", x), nil
	case int32:
		return fmt.Sprintf("int32(%d)", x), nil
	case uint32:
		return fmt.Sprintf("uint32(%d)", x), nil
	case int64:
		return fmt.Sprintf("int64(%d)", x), nil
	case uint64:
		return fmt.Sprintf("uint64(%d)", x), nil
	case string:
		return fmt.Sprintf("%q", x), nil
	case time.Time:
		u := x.UTC()
		return fmt.Sprintf("time.Date(%d, %d, %d, %d, %d, %d, %d, time.UTC)",
			u.Year(), u.Month(), u.Day(), u.Hour(), u.Minute(), u.Second(), u.Nanosecond()), nil
	case []byte:
		parts := make([]string, len(x))
		for i, c := range x {
			parts[i] = fmt.Sprintf("0x%02x", c)
		}
		return "[]byte{" + strings.Join(parts, ", ") + "}", nil
	}
	return "", fmt.Errorf("unsupported default %T", v)
}

// defaultText renders a default for doc comments.
func defaultText(t model.DataType, v any) string {
	if t == model.DataTypeString {
		return fmt.Sprintf("%q", v)
	}
	return model.FormatValue(t, v)
}

func goTypeOf(t model.DataType) (goType, zero string, err error) {
	switch t {
	case model.DataTypeBoolean:
		return "bool", "false", nil
	case model.DataTypeInt:
		return "int32", "0", nil
	case model.DataTypeUnsignedInt:
		return "uint32", "0", nil
	case model.DataTypeLong:
		return "int64", "0", nil
	case model.DataTypeUnsignedLong:
		return "uint64", "0", nil
	case model.DataTypeString:
		return "string", `""`, nil
	case model.DataTypeDateTime:
		return "time.Time", "time.Time{}", nil
	case model.DataTypeBase64, model.DataTypeHexBinary:
		return "[]byte", "nil", nil
	}
	return "", "", fmt.Errorf("no Go type for %s", t)
}

func dataTypeConst(t model.DataType) string {
	name := t.String()
	return "model.DataType" + strings.ToUpper(name[:1]) + name[1:]
}

func accessConst(a model.Access) string {
	switch a {
	case model.AccessReadOnly:
		return "model.AccessReadOnly"
	case model.AccessReadWrite:
		return "model.AccessReadWrite"
	}
	return fmt.Sprintf("model.Access(%d)", a)
}

func sinceLiteral(v version.SpecVersion) string {
	return fmt.Sprintf("version.SpecVersion{Major: %d, Minor: %d}", v.Major, v.Minor)
}

func quoteList(ss []string) string {
	q := make([]string, len(ss))
	for i, s := range ss {
		q[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(q, ", ")
}

// enumSuffix turns an enumeration value into an identifier suffix:
// "Error_Misconfigured" becomes "ErrorMisconfigured", "802.11" becomes "80211".
func enumSuffix(v string) string {
	var b strings.Builder
	for _, r := range v {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" {
		return "Empty"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func recv(name string) string {
	return strings.ToLower(name[:1])
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
