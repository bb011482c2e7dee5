package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tr069-model/tr069-go/cmd/tr069-model/commands"
)

const eventsUsage = `tr069-model events - Analyze codec event logs

Usage:
  tr069-model events <command> [flags] <file.cbor>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSON or CSV format
  filter   Filter log file and write to new file
  stats    Show statistics about the log file
`

func runEvents(args []string) int {
	if len(args) < 1 {
		fmt.Fprint(os.Stderr, eventsUsage)
		return commands.ExitError
	}

	switch args[0] {
	case "view":
		return runEventsView(args[1:])
	case "export":
		return runEventsExport(args[1:])
	case "filter":
		return runEventsFilter(args[1:])
	case "stats":
		return runEventsStats(args[1:])
	case "-h", "-help", "--help", "help":
		fmt.Print(eventsUsage)
		return commands.ExitOK
	default:
		fmt.Fprintf(os.Stderr, "Unknown events command: %s\n", args[0])
		fmt.Fprint(os.Stderr, eventsUsage)
		return commands.ExitError
	}
}

func addFilterFlags(fs *flag.FlagSet) *commands.EventFilterOptions {
	o := &commands.EventFilterOptions{}
	fs.StringVar(&o.DocumentID, "doc-id", "", "Filter by document ID")
	fs.StringVar(&o.Format, "format", "", "Filter by document format (xml, yaml, json, cbor, bson)")
	fs.StringVar(&o.Model, "model", "", "Filter by data model, e.g. Device or Device:2.12")
	fs.StringVar(&o.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&o.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	fs.StringVar(&o.Direction, "direction", "", "Filter by direction (decode, encode)")
	fs.StringVar(&o.Category, "category", "", "Filter by category (document, skipped, error)")
	return o
}

func runEventsView(args []string) int {
	fs := newFlagSet("events view", "View log file in human-readable format", "events view [flags] <file.cbor>")
	opts := addFilterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return commands.ExitError
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		return commands.ExitError
	}

	filter, err := opts.Filter()
	if err != nil {
		return fail(err)
	}
	if err := commands.RunView(fs.Arg(0), filter, os.Stdout); err != nil {
		return fail(err)
	}
	return commands.ExitOK
}

func runEventsExport(args []string) int {
	fs := newFlagSet("events export", "Export log file to JSON or CSV format", "events export [flags] <file.cbor>")
	opts := addFilterFlags(fs)
	output := fs.String("o", "", "Output file (default: stdout)")
	as := fs.String("as", "jsonl", "Output format (jsonl, csv)")

	if err := fs.Parse(args); err != nil {
		return commands.ExitError
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		return commands.ExitError
	}

	filter, err := opts.Filter()
	if err != nil {
		return fail(err)
	}
	if err := commands.RunExport(fs.Arg(0), *as, *output, filter); err != nil {
		return fail(err)
	}
	return commands.ExitOK
}

func runEventsFilter(args []string) int {
	fs := newFlagSet("events filter", "Filter log file and write to new file", "events filter [flags] -o <out.cbor> <file.cbor>")
	opts := addFilterFlags(fs)
	output := fs.String("o", "", "Output file (required)")

	if err := fs.Parse(args); err != nil {
		return commands.ExitError
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		return commands.ExitError
	}
	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		return commands.ExitError
	}

	filter, err := opts.Filter()
	if err != nil {
		return fail(err)
	}
	n, err := commands.RunFilter(fs.Arg(0), *output, filter)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Filtered %d events to %s\n", n, *output)
	return commands.ExitOK
}

func runEventsStats(args []string) int {
	fs := newFlagSet("events stats", "Show statistics about the log file", "events stats <file.cbor>")

	if err := fs.Parse(args); err != nil {
		return commands.ExitError
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		return commands.ExitError
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		return fail(err)
	}
	return commands.ExitOK
}
