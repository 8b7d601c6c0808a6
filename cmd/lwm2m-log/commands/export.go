package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mash-protocol/lwm2m-go/pkg/log"
)

var csvHeader = []string{"timestamp", "client_id", "category", "operation", "server", "object", "status", "type", "error"}

// RunExport writes every event of the trace at path to output (stdout when
// empty) as JSON lines or CSV.
func RunExport(path, format, output string) error {
	var write func(io.Writer) error
	switch format {
	case "jsonl":
		write = func(w io.Writer) error { return exportJSONL(path, w) }
	case "csv":
		write = func(w io.Writer) error { return exportCSV(path, w) }
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	if output == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func exportJSONL(path string, w io.Writer) error {
	enc := json.NewEncoder(w)
	return eachEvent(path, log.Filter{}, func(event log.Event) error {
		if err := enc.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
		return nil
	})
}

func exportCSV(path string, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	err := eachEvent(path, log.Filter{}, func(event log.Event) error {
		return cw.Write(csvRow(event))
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// csvRow flattens an event into the csvHeader columns.
func csvRow(event log.Event) []string {
	row := []string{
		event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
		event.ClientID,
		event.Category.String(),
		event.Operation,
		optionalID(event.ServerShortID),
		optionalID(event.ObjectID),
		"",
		typeLabel(event),
		"",
	}
	if event.Status != nil {
		row[6] = event.Status.String()
	}
	if event.Dispatch != nil {
		row[7] = event.Dispatch.Type
	}
	if event.Error != nil {
		row[8] = event.Error.Message
	}
	return row
}

func optionalID(id *uint16) string {
	if id == nil {
		return ""
	}
	return strconv.Itoa(int(*id))
}
