package specparse

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tr069-model/tr069-go/pkg/model"
	"github.com/tr069-model/tr069-go/pkg/path"
	"github.com/tr069-model/tr069-go/pkg/version"
)

// Compile errors.
var (
	ErrNoRoot          = errors.New("model has no root object")
	ErrDuplicateObject = errors.New("duplicate object path")
	ErrMissingParent   = errors.New("parent object not defined")
	ErrDuplicateType   = errors.New("duplicate Go type name")
)

// Compile turns a raw model into a schema. The object hierarchy is derived
// from the path templates; every object except the root needs its parent
// defined in the same model. Children keep the order of the file.
func Compile(raw *RawModel) (*model.Schema, error) {
	v, err := version.Parse(raw.Version)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", raw.Model, err)
	}

	type entry struct {
		raw   *RawObjectDef
		path  *path.Path
		depth int
	}
	entries := make([]entry, 0, len(raw.Objects))
	for i := range raw.Objects {
		ro := &raw.Objects[i]
		p, err := path.Parse(ro.Path)
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", raw.Model, err)
		}
		if !p.IsObject() {
			return nil, fmt.Errorf("model %s: %q: %w", raw.Model, ro.Path, model.ErrNotObjectPath)
		}
		entries = append(entries, entry{raw: ro, path: p, depth: len(p.Segments)})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].depth < entries[j].depth })

	defs := make(map[string]*model.ObjectDef, len(entries))
	types := make(map[string]string, len(entries))
	var root *model.ObjectDef

	for _, e := range entries {
		if _, dup := defs[e.raw.Path]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateObject, e.raw.Path)
		}
		def, err := compileObject(e.raw, e.path)
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", raw.Model, err)
		}
		if other, dup := types[def.TypeName]; dup {
			return nil, fmt.Errorf("%w: %s used by %s and %s", ErrDuplicateType, def.TypeName, other, def.Path)
		}
		types[def.TypeName] = def.Path
		defs[def.Path] = def

		parent := e.path.Parent()
		if parent == nil {
			if root != nil {
				return nil, fmt.Errorf("model %s: second root %s", raw.Model, def.Path)
			}
			root = def
			continue
		}
		pd, ok := defs[parent.String()]
		if !ok {
			return nil, fmt.Errorf("%w: %s (for %s)", ErrMissingParent, parent, def.Path)
		}
		pd.Children = append(pd.Children, &model.ChildDef{
			Name:    def.Name,
			Field:   e.raw.Field,
			Object:  def,
			Wrapper: e.raw.Wrapper,
		})
	}
	if root == nil {
		return nil, fmt.Errorf("model %s: %w", raw.Model, ErrNoRoot)
	}
	return model.NewSchema(raw.Model, v, root)
}

func compileObject(ro *RawObjectDef, p *path.Path) (*model.ObjectDef, error) {
	access, err := model.ParseAccess(ro.Access)
	if err != nil {
		return nil, fmt.Errorf("object %s: %w", ro.Path, err)
	}
	since, err := parseSince(ro.Since)
	if err != nil {
		return nil, fmt.Errorf("object %s: %w", ro.Path, err)
	}

	def := &model.ObjectDef{
		Path:        ro.Path,
		Name:        p.Name(),
		TypeName:    ro.Type,
		Table:       p.Segments[len(p.Segments)-1] == path.Placeholder,
		Access:      access,
		UniqueKeys:  ro.UniqueKeys,
		MaxEntries:  ro.MaxEntries,
		Since:       since,
		Description: ro.Description,
	}
	if def.TypeName == "" {
		def.TypeName = TypeName(p)
	}

	for i := range ro.Parameters {
		pd, err := compileParameter(&ro.Parameters[i])
		if err != nil {
			return nil, fmt.Errorf("object %s: %w", ro.Path, err)
		}
		def.Parameters = append(def.Parameters, pd)
	}
	return def, nil
}

func compileParameter(rp *RawParameterDef) (*model.ParameterDef, error) {
	typ, err := model.ParseDataType(rp.Type)
	if err != nil {
		return nil, fmt.Errorf("parameter %s: %w", rp.Name, err)
	}
	access, err := model.ParseAccess(rp.Access)
	if err != nil {
		return nil, fmt.Errorf("parameter %s: %w", rp.Name, err)
	}
	since, err := parseSince(rp.Since)
	if err != nil {
		return nil, fmt.Errorf("parameter %s: %w", rp.Name, err)
	}

	pd := &model.ParameterDef{
		Name:        rp.Name,
		Field:       rp.Field,
		Type:        typ,
		Named:       rp.DataType,
		Access:      access,
		MinLength:   rp.MinLength,
		MaxLength:   rp.MaxLength,
		Patterns:    rp.Patterns,
		Enumeration: rp.Enumeration,
		List:        rp.List,
		Wrapper:     rp.Wrapper,
		ItemTag:     rp.ItemTag,
		MaxItems:    rp.MaxItems,
		Since:       since,
		Unit:        rp.Unit,
		Description: rp.Description,
	}
	if pd.Field == "" && Identifier(rp.Name) != rp.Name {
		pd.Field = Identifier(rp.Name)
	}

	if rp.Min != nil || rp.Max != nil {
		pd.Ranges = append(pd.Ranges, model.Range{Min: rp.Min, Max: rp.Max})
	}
	for _, r := range rp.Ranges {
		pd.Ranges = append(pd.Ranges, model.Range{Min: r.Min, Max: r.Max})
	}
	for _, s := range rp.Sentinels {
		pd.Sentinels = append(pd.Sentinels, model.Sentinel{Value: s.Value, Meaning: s.Meaning})
	}

	if rp.Default != nil {
		def := rp.Default
		if s, ok := def.(string); ok && typ != model.DataTypeString {
			def, err = model.ParseValue(typ, s)
			if err != nil {
				return nil, fmt.Errorf("parameter %s: default: %w", rp.Name, err)
			}
		}
		pd.Default = def
	}
	return pd, nil
}

func parseSince(s string) (version.SpecVersion, error) {
	if s == "" {
		return version.SpecVersion{}, nil
	}
	return version.Parse(s)
}
