// Command lwm2m-log is a tool for viewing and analyzing LwM2M client trace files.
//
// Trace files are written by lwm2m-client when it runs with the -protocol-log flag.
//
// Usage:
//
//	lwm2m-log <command> [flags] <file.mlog>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSON or CSV format
//	filter   Filter trace file and write to new file
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all events
//	lwm2m-log view client.mlog
//
//	# View failed registry operations only
//	lwm2m-log view -category registry -errors client.mlog
//
//	# Export to CSV
//	lwm2m-log export -format csv -o client.csv client.mlog
//
//	# Keep events of server 101 and save to a new file
//	lwm2m-log filter -server 101 -o server101.mlog client.mlog
//
//	# Show statistics
//	lwm2m-log stats client.mlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mash-protocol/lwm2m-go/cmd/lwm2m-log/commands"
)

const usage = `lwm2m-log - LwM2M Client Trace Analyzer

Usage:
  lwm2m-log <command> [flags] <file.mlog>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSON or CSV format
  filter   Filter trace file and write to new file
  stats    Show statistics about the trace file

Use "lwm2m-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// pathArg returns the trace file argument or exits with the command usage.
func pathArg(fs *flag.FlagSet) string {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func newFlagSet(name, summary, synopsis string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "lwm2m-log %s - %s\n\nUsage:\n  lwm2m-log %s\n\nFlags:\n", name, summary, synopsis)
		fs.PrintDefaults()
	}
	return fs
}

func runView(args []string) {
	fs := newFlagSet("view", "View trace file in human-readable format", "view [flags] <file.mlog>")
	category := fs.String("category", "", "Filter by category (registry, object, event, schedule, guard)")
	operation := fs.String("op", "", "Filter by operation name")
	errorsOnly := fs.Bool("errors", false, "Show only failed operations")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := pathArg(fs)

	filter := commands.ViewFilter{
		Operation:  *operation,
		ErrorsOnly: *errorsOnly,
	}
	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fail(err)
		}
		filter.Category = &c
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := newFlagSet("export", "Export trace file to JSON or CSV format", "export [flags] <file.mlog>")
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := pathArg(fs)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := newFlagSet("filter", "Filter trace file and write to new file", "filter [flags] <file.mlog>")
	output := fs.String("o", "", "Output file (required)")
	clientID := fs.String("client-id", "", "Filter by client ID")
	category := fs.String("category", "", "Filter by category (registry, object, event, schedule, guard)")
	operation := fs.String("op", "", "Filter by operation name")
	serverID := fs.String("server", "", "Filter by server short ID")
	objectID := fs.String("object", "", "Filter by object ID")
	errorsOnly := fs.Bool("errors", false, "Keep only failed operations")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := pathArg(fs)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.FilterOptions{
		Output:     *output,
		ClientID:   *clientID,
		Category:   *category,
		Operation:  *operation,
		ServerID:   *serverID,
		ObjectID:   *objectID,
		ErrorsOnly: *errorsOnly,
		TimeStart:  *timeStart,
		TimeEnd:    *timeEnd,
	}

	count, err := commands.RunFilter(path, opts)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Filtered %d events to %s\n", count, opts.Output)
}

func runStats(args []string) {
	fs := newFlagSet("stats", "Show statistics about the trace file", "stats <file.mlog>")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := pathArg(fs)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}
