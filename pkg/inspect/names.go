package inspect

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tr069-model/tr069-go/pkg/model"
)

// ResolveName resolves a parameter or child name of def case-insensitively
// and returns its canonical spelling.
func ResolveName(def *model.ObjectDef, name string) (string, bool) {
	lname := strings.ToLower(name)
	for _, pd := range def.Parameters {
		if strings.ToLower(pd.Name) == lname {
			return pd.Name, true
		}
	}
	for _, cd := range def.Children {
		if strings.ToLower(cd.Name) == lname {
			return cd.Name, true
		}
	}
	return "", false
}

// Names returns the parameter names of def followed by its child names, each
// child suffixed with "." and each table with ".{i}.".
func Names(def *model.ObjectDef) []string {
	names := make([]string, 0, len(def.Parameters)+len(def.Children))
	for _, pd := range def.Parameters {
		names = append(names, pd.Name)
	}
	for _, cd := range def.Children {
		if cd.IsTable() {
			names = append(names, cd.Name+".{i}.")
		} else {
			names = append(names, cd.Name+".")
		}
	}
	return names
}

// Complete returns the completions of prefix below the object at objPath:
// parameter names, singleton children as "Name." and existing rows of
// tables as "Name.N.". Matching is case-insensitive; results are sorted.
func (i *Inspector) Complete(objPath, prefix string) []string {
	obj, pd, err := i.root.Resolve(objPath)
	if err != nil || pd != nil {
		return nil
	}

	var out []string
	add := func(s string) {
		if strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix)) {
			out = append(out, s)
		}
	}

	def := obj.Def()
	for _, pd := range def.Parameters {
		add(pd.Name)
	}
	for _, cd := range def.Children {
		if !cd.IsTable() {
			add(cd.Name + ".")
			continue
		}
		add(cd.Name + ".")
		if t, ok := obj.LookupTable(cd.Name); ok {
			for _, row := range t.Rows() {
				add(cd.Name + "." + strconv.FormatUint(uint64(row.Instance()), 10) + ".")
			}
		}
	}
	sort.Strings(out)
	return out
}
