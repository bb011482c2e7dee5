package commands

import (
	"fmt"
	"strings"

	"github.com/tr069-model/tr069-go/pkg/inspect"
	"github.com/tr069-model/tr069-go/pkg/wire"
)

// ShowOptions configures the show command.
type ShowOptions struct {
	// View is "tree", "params" or a format name.
	View string

	// Format of the input file; empty derives it from the extension.
	Format string

	// Path limits the output to the object at this path.
	Path string

	// Unset includes absent parameters and their defaults.
	Unset bool

	// Version gates format views to a data-model version.
	Version string
}

// RunShow prints a document in a human-readable view or another format.
func RunShow(env *Env, path string, opts ShowOptions) int {
	doc, err := env.Load(path, opts.Format)
	if err != nil {
		return env.Fail(err)
	}

	insp := inspect.NewInspector(doc.Root)
	obj := doc.Root
	if opts.Path != "" {
		p, err := inspect.Join(insp.RootName(), doc.Root.Path(), opts.Path)
		if err != nil {
			return env.Fail(err)
		}
		resolved, pd, err := doc.Root.Resolve(p)
		if err != nil {
			return env.Fail(err)
		}
		if pd != nil {
			return env.Fail(fmt.Errorf("%w: %s", inspect.ErrNotObject, p))
		}
		obj = resolved
	}

	formatter := inspect.NewFormatter()
	formatter.ShowUnset = opts.Unset

	switch strings.ToLower(opts.View) {
	case "", "tree":
		formatter.ShowMetadata = false
		fmt.Fprint(env.Stdout, insp.FormatTree(obj, formatter))
	case "params":
		var rows []inspect.ParameterRow
		for _, row := range inspect.ParameterRows(doc.Root.ParameterValues()) {
			if strings.HasPrefix(row.Name, obj.Path()) {
				rows = append(rows, row)
			}
		}
		fmt.Fprintln(env.Stdout, strings.TrimRight(formatter.FormatParameterTable(rows), "\n"))
	default:
		f, err := wire.ParseFormat(opts.View)
		if err != nil {
			return env.Fail(fmt.Errorf("invalid view %q (must be tree, params or a format name): %w", opts.View, err))
		}
		if obj != doc.Root {
			return env.Fail(fmt.Errorf("-path is only supported by the tree and params views"))
		}
		if err := env.Write(doc, "", f, opts.Version); err != nil {
			return env.Fail(err)
		}
	}
	return ExitOK
}
