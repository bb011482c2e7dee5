package interactive

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tr069-model/tr069-go/pkg/inspect"
)

var commandNames = []string{
	"add", "cd", "del", "exit", "get", "help", "ls", "params",
	"pwd", "quit", "save", "set", "tree", "validate",
}

// completer completes command names and paths relative to the shell's
// current object.
type completer struct {
	shell *Shell
}

// Do implements readline.AutoCompleter.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	fields := strings.Fields(text)
	word := ""
	if len(fields) > 0 && !strings.HasSuffix(text, " ") {
		word = fields[len(fields)-1]
	}

	var candidates []string
	if len(fields) == 0 || (len(fields) == 1 && word != "") {
		candidates = commandNames
	} else {
		candidates = c.shell.completePath(word)
	}

	var out [][]rune
	for _, cand := range candidates {
		if strings.HasPrefix(cand, word) {
			out = append(out, []rune(cand[len(word):]))
		}
	}
	return out, len([]rune(word))
}

// completePath returns the full words that can follow a partial path.
func (s *Shell) completePath(word string) []string {
	dir, prefix := "", word
	if i := strings.LastIndex(word, "."); i >= 0 {
		dir, prefix = word[:i+1], word[i+1:]
	}

	base := s.cwd
	if dir != "" {
		p, err := inspect.Join(s.inspector.RootName(), s.cwd, dir)
		if err != nil {
			return nil
		}
		base = p
	}

	var names []string
	if t, err := s.doc.Root.ResolveTable(base); err == nil {
		for _, row := range t.Rows() {
			n := strconv.FormatUint(uint64(row.Instance()), 10) + "."
			if strings.HasPrefix(n, prefix) {
				names = append(names, n)
			}
		}
		sort.Strings(names)
	} else {
		names = s.inspector.Complete(base, prefix)
	}

	out := make([]string, len(names))
	for i, n := range names {
		out[i] = dir + n
	}
	return out
}
