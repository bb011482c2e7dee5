package commands

import (
	"fmt"

	"go.uber.org/zap"
)

// ConvertOptions configures the convert command.
type ConvertOptions struct {
	// From is the input format; empty derives it from the input extension.
	From string

	// To is the output format; empty derives it from the output extension.
	To string

	// Output is the output file; empty writes to stdout.
	Output string

	// Version gates the output to a data-model version, e.g. "2.7".
	Version string
}

// RunConvert rewrites a document in another format.
func RunConvert(env *Env, path string, opts ConvertOptions) int {
	doc, err := env.Load(path, opts.From)
	if err != nil {
		return env.Fail(err)
	}

	to := opts.To
	if to == "" && opts.Output == "" {
		return env.Fail(fmt.Errorf("output format (-to) required when writing to stdout"))
	}
	f, err := env.Format(to, opts.Output)
	if err != nil {
		return env.Fail(err)
	}

	if err := env.Write(doc, opts.Output, f, opts.Version); err != nil {
		return env.Fail(err)
	}
	env.Logger.Info("converted document",
		zap.String("input", path),
		zap.String("from", doc.Format.String()),
		zap.String("to", f.String()),
		zap.String("output", opts.Output))
	return ExitOK
}
