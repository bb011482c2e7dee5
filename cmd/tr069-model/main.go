// Command tr069-model validates, inspects, edits and converts CWMP
// data-model documents, and analyzes the codec event logs they produce.
//
// Usage:
//
//	tr069-model <command> [flags] <args>
//
// Commands:
//
//	validate  Check documents against their data model
//	show      Print a document as a tree, a parameter list or another format
//	convert   Rewrite a document in another format
//	get       Print parameter values
//	set       Write parameter values and save the document
//	shell     Browse and edit a document interactively
//	events    View, filter, export and summarize codec event logs
//
// Examples:
//
//	# Validate a dump taken from a CPE
//	tr069-model validate cpe-42.xml
//
//	# Show the DHCP clients
//	tr069-model show -path Device.DHCPv4. cpe-42.xml
//
//	# Convert to YAML for a 2.7 ACS
//	tr069-model convert -to yaml -version 2.7 cpe-42.xml
//
//	# Change the inform interval in place
//	tr069-model set cpe-42.xml Device.ManagementServer.PeriodicInformInterval=600
//
//	# Summarize the codec events of a session
//	tr069-model events stats events.cbor
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tr069-model/tr069-go/cmd/tr069-model/commands"
	"github.com/tr069-model/tr069-go/cmd/tr069-model/interactive"
	"github.com/tr069-model/tr069-go/internal/config"
	"github.com/tr069-model/tr069-go/internal/logging"
)

const usage = `tr069-model - CWMP data-model document tool

Usage:
  tr069-model <command> [flags] <args>

Commands:
  validate  Check documents against their data model
  show      Print a document as a tree, a parameter list or another format
  convert   Rewrite a document in another format
  get       Print parameter values
  set       Write parameter values and save the document
  shell     Browse and edit a document interactively
  events    View, filter, export and summarize codec event logs

Exit status is 0 on success, 1 on errors and 2 when a document violates
its data model.

Use "tr069-model <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(commands.ExitError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "validate":
		os.Exit(runValidate(args))
	case "show":
		os.Exit(runShow(args))
	case "convert":
		os.Exit(runConvert(args))
	case "get":
		os.Exit(runGet(args))
	case "set":
		os.Exit(runSet(args))
	case "shell":
		os.Exit(runShell(args))
	case "events":
		os.Exit(runEvents(args))
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(commands.ExitError)
	}
}

// envFlags are the flags shared by the document commands.
type envFlags struct {
	config   string
	schema   string
	eventLog string
	verbose  bool
}

func addEnvFlags(fs *flag.FlagSet) *envFlags {
	f := &envFlags{}
	fs.StringVar(&f.config, "config", config.DefaultPath(), "Configuration file (INI)")
	fs.StringVar(&f.schema, "schema", "", "YAML schema file replacing the built-in data model")
	fs.StringVar(&f.eventLog, "eventlog", "", "Append codec events to this CBOR file")
	fs.BoolVar(&f.verbose, "v", false, "Verbose logging")
	return f
}

// setup loads the configuration, applies the flags on top of it and builds
// the loggers. The returned function flushes and closes them.
func (f *envFlags) setup() (*commands.Env, func(), error) {
	cfg, err := config.New(f.config)
	if err != nil {
		return nil, nil, err
	}
	if f.schema != "" {
		cfg.Schema = f.schema
	}
	if f.eventLog != "" {
		cfg.EventLog = f.eventLog
	}
	if f.verbose {
		cfg.Verbose = true
	}

	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		return nil, nil, err
	}
	events, closeEvents, err := logging.Events(logger, cfg.EventLog)
	if err != nil {
		return nil, nil, err
	}

	env := commands.NewEnv(cfg)
	env.Logger = logger
	env.Events = events
	return env, func() { _ = closeEvents() }, nil
}

func newFlagSet(name, synopsis, usageLine string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "tr069-model %s - %s\n\nUsage:\n  tr069-model %s\n\nFlags:\n", name, synopsis, usageLine)
		fs.PrintDefaults()
	}
	return fs
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return commands.ExitError
}

func runValidate(args []string) int {
	fs := newFlagSet("validate", "Check documents against their data model", "validate [flags] <file>...")
	ef := addEnvFlags(fs)
	format := fs.String("format", "", "Input format (xml, yaml, json, cbor, bson); default from extension")

	if err := fs.Parse(args); err != nil {
		return commands.ExitError
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: document path required")
		fs.Usage()
		return commands.ExitError
	}

	env, done, err := ef.setup()
	if err != nil {
		return fail(err)
	}
	defer done()
	return commands.RunValidate(env, fs.Args(), *format)
}

func runShow(args []string) int {
	fs := newFlagSet("show", "Print a document", "show [flags] <file>")
	ef := addEnvFlags(fs)
	var opts commands.ShowOptions
	fs.StringVar(&opts.View, "view", "tree", "View: tree, params, or a format name (xml, yaml, json)")
	fs.StringVar(&opts.Format, "format", "", "Input format; default from extension")
	fs.StringVar(&opts.Path, "path", "", "Show only the object at this path")
	fs.BoolVar(&opts.Unset, "unset", false, "Include absent parameters and their defaults")
	fs.StringVar(&opts.Version, "version", "", "Data-model version for format views, e.g. 2.7")

	if err := fs.Parse(args); err != nil {
		return commands.ExitError
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one document path required")
		fs.Usage()
		return commands.ExitError
	}

	env, done, err := ef.setup()
	if err != nil {
		return fail(err)
	}
	defer done()
	return commands.RunShow(env, fs.Arg(0), opts)
}

func runConvert(args []string) int {
	fs := newFlagSet("convert", "Rewrite a document in another format", "convert [flags] <file>")
	ef := addEnvFlags(fs)
	var opts commands.ConvertOptions
	fs.StringVar(&opts.From, "from", "", "Input format; default from extension")
	fs.StringVar(&opts.To, "to", "", "Output format; default from the -o extension")
	fs.StringVar(&opts.Output, "o", "", "Output file (default: stdout)")
	fs.StringVar(&opts.Version, "version", "", "Leave out definitions newer than this data-model version")

	if err := fs.Parse(args); err != nil {
		return commands.ExitError
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one document path required")
		fs.Usage()
		return commands.ExitError
	}

	env, done, err := ef.setup()
	if err != nil {
		return fail(err)
	}
	defer done()
	return commands.RunConvert(env, fs.Arg(0), opts)
}

func runGet(args []string) int {
	fs := newFlagSet("get", "Print parameter values", "get [flags] <file> <path>...")
	ef := addEnvFlags(fs)
	format := fs.String("format", "", "Input format; default from extension")

	if err := fs.Parse(args); err != nil {
		return commands.ExitError
	}
	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: document path and at least one parameter path required")
		fs.Usage()
		return commands.ExitError
	}

	env, done, err := ef.setup()
	if err != nil {
		return fail(err)
	}
	defer done()
	return commands.RunGet(env, fs.Arg(0), *format, fs.Args()[1:])
}

func runSet(args []string) int {
	fs := newFlagSet("set", "Write parameter values and save the document", "set [flags] <file> <Path=value>...")
	ef := addEnvFlags(fs)
	var opts commands.SetOptions
	fs.StringVar(&opts.Format, "format", "", "Input format; default from extension")
	fs.StringVar(&opts.Output, "o", "", "Output file (default: rewrite the input)")

	if err := fs.Parse(args); err != nil {
		return commands.ExitError
	}
	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: document path and at least one assignment required")
		fs.Usage()
		return commands.ExitError
	}

	env, done, err := ef.setup()
	if err != nil {
		return fail(err)
	}
	defer done()
	return commands.RunSet(env, fs.Arg(0), fs.Args()[1:], opts)
}

func runShell(args []string) int {
	fs := newFlagSet("shell", "Browse and edit a document interactively", "shell [flags] [file]")
	ef := addEnvFlags(fs)
	format := fs.String("format", "", "Input format; default from extension")

	if err := fs.Parse(args); err != nil {
		return commands.ExitError
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: at most one document path allowed")
		fs.Usage()
		return commands.ExitError
	}

	env, done, err := ef.setup()
	if err != nil {
		return fail(err)
	}
	defer done()

	var doc *commands.Document
	if fs.NArg() == 1 {
		doc, err = env.Open(fs.Arg(0), *format)
	} else {
		doc, err = env.New("")
	}
	if err != nil {
		return env.Fail(err)
	}

	sh, err := interactive.New(env, doc)
	if err != nil {
		return fail(err)
	}
	defer sh.Close()
	sh.Run()
	return commands.ExitOK
}
