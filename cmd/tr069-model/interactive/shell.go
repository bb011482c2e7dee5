// Package interactive provides the interactive document browser of
// tr069-model.
package interactive

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/tr069-model/tr069-go/cmd/tr069-model/commands"
	"github.com/tr069-model/tr069-go/pkg/inspect"
	"github.com/tr069-model/tr069-go/pkg/path"
)

// Shell handles interactive browsing and editing of one document.
type Shell struct {
	env       *commands.Env
	doc       *commands.Document
	inspector *inspect.Inspector
	formatter *inspect.Formatter
	rl        *readline.Instance
	out       io.Writer

	cwd      string
	modified bool
}

// New creates a shell for doc with line editing, completion and history.
func New(env *commands.Env, doc *commands.Document) (*Shell, error) {
	s := newShell(env, doc, nil)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.prompt(),
		HistoryFile:     env.Config.History,
		AutoComplete:    &completer{shell: s},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	s.rl = rl
	s.out = rl.Stdout()
	return s, nil
}

func newShell(env *commands.Env, doc *commands.Document, out io.Writer) *Shell {
	s := &Shell{
		env:       env,
		doc:       doc,
		inspector: inspect.NewInspector(doc.Root),
		formatter: inspect.NewFormatter(),
		out:       out,
	}
	s.cwd = doc.Root.Path()
	return s
}

// Close releases the terminal.
func (s *Shell) Close() error {
	if s.rl == nil {
		return nil
	}
	return s.rl.Close()
}

// Run reads and executes commands until quit or end of input.
func (s *Shell) Run() {
	s.printHelp()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			s.exit()
			return
		}
		if s.Exec(line) {
			s.exit()
			return
		}
		s.rl.SetPrompt(s.prompt())
	}
}

func (s *Shell) exit() {
	if s.modified {
		fmt.Fprintln(s.out, "Unsaved changes discarded.")
	}
	fmt.Fprintln(s.out, "Exiting...")
}

func (s *Shell) prompt() string {
	return s.cwd + "> "
}

// Exec executes one command line and reports whether the shell should exit.
func (s *Shell) Exec(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "pwd":
		fmt.Fprintln(s.out, s.cwd)
	case "ls", "l":
		s.cmdList(args)
	case "cd":
		s.cmdCd(args)
	case "tree", "t":
		s.cmdTree(args)
	case "params", "p":
		s.cmdParams(args)
	case "get", "g":
		s.cmdGet(args)
	case "set", "s":
		s.cmdSet(args)
	case "add":
		s.cmdAdd(args)
	case "del", "rm":
		s.cmdDel(args)
	case "validate", "v":
		s.cmdValidate()
	case "save":
		s.cmdSave(args)
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintf(s.out, `
%s Commands:
  Navigation:
    ls [path]            - List parameters and children of an object
    cd <path>            - Change the current object (.. for the parent, / for the root)
    pwd                  - Print the current object
    tree [path]          - Print everything below an object
    params [path]        - Print parameter values as CWMP reports them

  Editing:
    get <path>           - Read a parameter
    set <path> <value>   - Write a parameter (lists are comma-separated)
    add <table>          - Add a row to a table, e.g. add Client.
    del <row>            - Delete a row, e.g. del Client.2.
    validate             - Check the record against its data model
    save [file]          - Write the document (format from the extension)

  General:
    help                 - Show this help
    quit                 - Exit

  Paths are relative to the current object unless they start with %s.
`, s.doc.Schema.ModelVersion(), s.inspector.RootName())
}

func (s *Shell) errorf(err error) {
	fmt.Fprintf(s.out, "Error: %v\n", err)
}

// resolve joins an argument onto the current object. No argument means the
// current object.
func (s *Shell) resolve(args []string) (string, error) {
	if len(args) == 0 {
		return s.cwd, nil
	}
	return inspect.Join(s.inspector.RootName(), s.cwd, args[0])
}

// resolveObject is like resolve but reads a bare name as an object, so
// "cd DHCPv4" works like "cd DHCPv4.".
func (s *Shell) resolveObject(args []string) (string, error) {
	if len(args) == 0 {
		return s.cwd, nil
	}
	arg := args[0]
	if arg != "/" && !strings.HasSuffix(arg, ".") {
		arg += "."
	}
	return inspect.Join(s.inspector.RootName(), s.cwd, arg)
}

func (s *Shell) cmdList(args []string) {
	p, err := s.resolveObject(args)
	if err != nil {
		s.errorf(err)
		return
	}
	if t, err := s.doc.Root.ResolveTable(p); err == nil {
		fmt.Fprintf(s.out, "%s{i}. (%d rows)\n", p, t.Len())
		for _, row := range t.Rows() {
			fmt.Fprintf(s.out, "  %d.\n", row.Instance())
		}
		return
	}
	info, err := s.inspector.InspectObject(p)
	if err != nil {
		s.errorf(err)
		return
	}
	fmt.Fprint(s.out, s.inspector.FormatObject(info, s.formatter))
}

func (s *Shell) cmdCd(args []string) {
	if len(args) == 0 {
		args = []string{"/"}
	}
	p, err := s.resolveObject(args)
	if err != nil {
		s.errorf(err)
		return
	}
	if _, err := s.inspector.InspectObject(p); err != nil {
		s.errorf(err)
		return
	}
	s.cwd = p
}

func (s *Shell) cmdTree(args []string) {
	p, err := s.resolveObject(args)
	if err != nil {
		s.errorf(err)
		return
	}
	obj, pd, err := s.doc.Root.Resolve(p)
	if err != nil {
		s.errorf(err)
		return
	}
	if pd != nil {
		s.errorf(fmt.Errorf("%w: %s", inspect.ErrNotObject, p))
		return
	}
	f := *s.formatter
	f.ShowMetadata = false
	fmt.Fprint(s.out, s.inspector.FormatTree(obj, &f))
}

func (s *Shell) cmdParams(args []string) {
	p, err := s.resolve(args)
	if err != nil {
		s.errorf(err)
		return
	}
	var rows []inspect.ParameterRow
	for _, row := range inspect.ParameterRows(s.doc.Root.ParameterValues()) {
		if strings.HasPrefix(row.Name, p) {
			rows = append(rows, row)
		}
	}
	fmt.Fprintln(s.out, strings.TrimRight(s.formatter.FormatParameterTable(rows), "\n"))
}

func (s *Shell) cmdGet(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: get <path>")
		return
	}
	p, err := s.resolve(args)
	if err != nil {
		s.errorf(err)
		return
	}
	info, err := s.inspector.ReadParameter(p)
	if err != nil {
		s.errorf(err)
		return
	}
	fmt.Fprintf(s.out, "%s = %s\n", info.Path, s.formatter.FormatValue(info.Def, info.Value))
}

func (s *Shell) cmdSet(args []string) {
	if len(args) == 1 {
		if name, value, ok := strings.Cut(args[0], "="); ok {
			args = []string{name, value}
		}
	}
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: set <path> <value>")
		return
	}
	p, err := s.resolve(args[:1])
	if err != nil {
		s.errorf(err)
		return
	}
	if err := s.inspector.WriteParameter(p, strings.Join(args[1:], " ")); err != nil {
		s.errorf(err)
		return
	}
	s.modified = true
	fmt.Fprintln(s.out, "OK")
}

func (s *Shell) cmdAdd(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: add <table>")
		return
	}
	p, err := s.resolveObject(args)
	if err != nil {
		s.errorf(err)
		return
	}
	row, err := s.inspector.AddRow(p)
	if err != nil {
		s.errorf(err)
		return
	}
	s.modified = true
	fmt.Fprintf(s.out, "Added %s\n", row.Path())
}

func (s *Shell) cmdDel(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: del <row>")
		return
	}
	p, err := s.resolveObject(args)
	if err != nil {
		s.errorf(err)
		return
	}
	if err := s.inspector.DeleteRow(p); err != nil {
		s.errorf(err)
		return
	}
	s.modified = true

	// Leave a deleted subtree.
	cwd, _ := path.Parse(s.cwd)
	del, _ := path.Parse(p)
	if cwd != nil && del != nil && cwd.HasPrefix(del) {
		s.cwd = del.Parent().String()
	}
	fmt.Fprintf(s.out, "Deleted %s\n", p)
}

func (s *Shell) cmdValidate() {
	err := s.doc.Root.Validate()
	if err == nil {
		fmt.Fprintln(s.out, "OK")
		return
	}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			fmt.Fprintf(s.out, "  %v\n", e)
		}
		return
	}
	fmt.Fprintf(s.out, "  %v\n", err)
}

func (s *Shell) cmdSave(args []string) {
	target := s.doc.Path
	if len(args) > 0 {
		target = args[0]
	}
	if target == "" || target == "-" {
		fmt.Fprintln(s.out, "Usage: save <file>")
		return
	}
	f, err := s.env.Format("", target)
	if err != nil {
		s.errorf(err)
		return
	}
	if err := s.env.Write(s.doc, target, f, ""); err != nil {
		s.errorf(err)
		return
	}
	s.doc.Path = target
	s.doc.Format = f
	s.modified = false
	fmt.Fprintf(s.out, "Saved %s (%s)\n", target, f)
}
