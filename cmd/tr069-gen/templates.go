package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"concat": func(a, b string) string { return a + b },
	"quote":  func(s string) string { return fmt.Sprintf("%q", s) },
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	headerTmpl +
		objectTmpl +
		paramAccessorsTmpl +
		childAccessorsTmpl +
		schemaTmpl +
		registryTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// --- Template data types ---

type headerData struct {
	Package string
	Source  string
	Std     []string
	Local   []string
}

// objectData holds pre-computed data for one object definition.
type objectData struct {
	TypeName    string
	Recv        string
	Path        string
	Table       bool
	Description string
	DefFields   []string
	Params      []paramData
	Enums       []enumData
	Children    []childData
}

type paramData struct {
	Name        string
	Const       string
	Field       string
	GoType      string
	Zero        string
	HasDefault  bool
	DefaultText string
	List        bool
	Literal     string
}

type enumData struct {
	Param  string
	Values []enumValue
}

type enumValue struct {
	Const string
	Value string
}

type childData struct {
	Name     string
	Field    string
	TypeName string
	Table    bool
	Literal  string
}

type schemaData struct {
	Var     string
	Model   string
	Version string
	Major   uint16
	Minor   uint16
	Spec    string
	Root    string
}

type registryData struct {
	Package string
	Vars    []string
}

// --- Template definitions ---

const headerTmpl = `{{define "header" -}}
// Code generated by tr069-gen. DO NOT EDIT.
{{- if .Source}}
// Source: {{.Source}}
{{- end}}

package {{.Package}}

import (
{{- range .Std}}
{{quote .}}
{{- end}}
{{- if .Std}}
{{end}}
{{- range .Local}}
{{quote .}}
{{- end}}
)
{{end}}`

const objectTmpl = `{{define "object"}}
{{- $t := .TypeName}}
// {{$t}} wraps {{if .Table}}a row of the {{.Path}} table{{else}}the {{.Path}} object{{end}}.
{{- if .Description}}
//
// {{.Description}}
{{- end}}
type {{$t}} struct {
*model.Object
}
{{- if .Params}}

// {{$t}} parameter names.
const (
{{- range .Params}}
{{.Const}} = {{quote .Name}}
{{- end}}
)
{{- end}}
{{- range .Enums}}

// {{$t}} {{.Param}} values.
const (
{{- range .Values}}
{{.Const}} = {{quote .Value}}
{{- end}}
)
{{- end}}

// {{$t}}Def defines {{.Path}}
var {{$t}}Def = &model.ObjectDef{
{{- range .DefFields}}
{{.}},
{{- end}}
{{- if .Params}}
Parameters: []*model.ParameterDef{
{{- range .Params}}
{{.Literal}},
{{- end}}
},
{{- end}}
{{- if .Children}}
Children: []*model.ChildDef{
{{- range .Children}}
{{.Literal}},
{{- end}}
},
{{- end}}
}

// New{{$t}} creates an empty {{$t}}{{if .Table}} row{{end}}.
func New{{$t}}() *{{$t}} {
return &{{$t}}{Object: model.NewObject({{$t}}Def)}
}

// As{{$t}} wraps o, or returns nil if o is not defined by {{$t}}Def.
func As{{$t}}(o *model.Object) *{{$t}} {
if o == nil || o.Def() != {{$t}}Def {
return nil
}
return &{{$t}}{Object: o}
}
{{template "paramAccessors" .}}
{{- template "childAccessors" .}}
{{- end}}`

const paramAccessorsTmpl = `{{define "paramAccessors"}}
{{- $t := .TypeName}}
{{- $r := .Recv}}
{{- range .Params}}
{{- if .List}}

// {{.Field}} returns the {{.Name}} list.
func ({{$r}} *{{$t}}) {{.Field}}() *model.List {
return {{$r}}.List({{.Const}})
}
{{- else}}
{{- if .HasDefault}}

// {{.Field}} returns the {{.Name}} parameter, or its default {{.DefaultText}}.
func ({{$r}} *{{$t}}) {{.Field}}() {{.GoType}} {
return {{$r}}.Get({{.Const}}).({{.GoType}})
}
{{- else}}

// {{.Field}} returns the {{.Name}} parameter and whether it is set.
func ({{$r}} *{{$t}}) {{.Field}}() ({{.GoType}}, bool) {
v, ok := {{$r}}.Lookup({{.Const}})
if !ok {
return {{.Zero}}, false
}
return v.({{.GoType}}), true
}
{{- end}}

// Set{{.Field}} sets the {{.Name}} parameter.
func ({{$r}} *{{$t}}) Set{{.Field}}(v {{.GoType}}) error {
return {{$r}}.Set({{.Const}}, v)
}

// With{{.Field}} sets the {{.Name}} parameter and returns {{$r}} for chaining.
func ({{$r}} *{{$t}}) With{{.Field}}(v {{.GoType}}) *{{$t}} {
{{$r}}.With({{.Const}}, v)
return {{$r}}
}
{{- end}}
{{- end}}
{{- end}}`

const childAccessorsTmpl = `{{define "childAccessors"}}
{{- $t := .TypeName}}
{{- $r := .Recv}}
{{- range .Children}}
{{- if .Table}}

// {{.Field}}Table returns the {{.Name}} table.
func ({{$r}} *{{$t}}) {{.Field}}Table() *model.Table {
return {{$r}}.Table({{quote .Name}})
}

// Add{{.Field}} appends row to the {{.Name}} table.
func ({{$r}} *{{$t}}) Add{{.Field}}(row *{{.TypeName}}) error {
return {{$r}}.Table({{quote .Name}}).Append(row.Object)
}

// {{.Field}}Rows returns the rows of the {{.Name}} table.
func ({{$r}} *{{$t}}) {{.Field}}Rows() []*{{.TypeName}} {
rows := {{$r}}.Table({{quote .Name}}).Rows()
out := make([]*{{.TypeName}}, len(rows))
for k, row := range rows {
out[k] = &{{.TypeName}}{Object: row}
}
return out
}
{{- else}}

// {{.Field}} returns the {{.Name}} object, creating it on first access.
func ({{$r}} *{{$t}}) {{.Field}}() *{{.TypeName}} {
return &{{.TypeName}}{Object: {{$r}}.Child({{quote .Name}})}
}
{{- end}}
{{- end}}
{{end}}`

const schemaTmpl = `{{define "schema"}}
// {{.Var}} is the {{.Model}}:{{.Version}} data model{{if .Spec}}, {{.Spec}}{{end}}.
var {{.Var}} = model.MustSchema({{quote .Model}}, version.SpecVersion{Major: {{.Major}}, Minor: {{.Minor}}}, {{.Root}}Def)
{{end}}`

const registryTmpl = `{{define "registry" -}}
// Code generated by tr069-gen. DO NOT EDIT.

package {{.Package}}

import "github.com/tr069-model/tr069-go/pkg/model"

// Schemas returns every generated data model, sorted by schema variable.
func Schemas() []*model.Schema {
return []*model.Schema{
{{- range .Vars}}
{{.}},
{{- end}}
}
}
{{end}}`
