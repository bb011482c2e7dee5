package commands

import (
	"errors"
	"fmt"
)

// RunValidate decodes each file and checks every constraint of its record.
// All files are checked; the worst exit code wins.
func RunValidate(env *Env, paths []string, format string) int {
	code := ExitOK
	for _, path := range paths {
		doc, err := env.Load(path, format)
		if err != nil {
			fmt.Fprintf(env.Stdout, "%s: FAIL\n  %v\n", path, err)
			code = max(code, exitCode(err))
			continue
		}
		if err := doc.Root.Validate(); err != nil {
			fmt.Fprintf(env.Stdout, "%s: FAIL\n", path)
			for _, e := range unjoin(err) {
				fmt.Fprintf(env.Stdout, "  %v\n", e)
			}
			code = max(code, ExitInvalid)
			continue
		}
		fmt.Fprintf(env.Stdout, "%s: OK (%s, %s, %d parameters)\n",
			path, doc.Schema.ModelVersion(), doc.Format, len(doc.Root.ParameterValues()))
	}
	return code
}

// unjoin flattens errors combined with errors.Join.
func unjoin(err error) []error {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return []error{err}
	}
	var out []error
	for _, e := range joined.Unwrap() {
		out = append(out, unjoin(e)...)
	}
	return out
}
