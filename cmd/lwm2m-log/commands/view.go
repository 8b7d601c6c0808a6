// Package commands implements the lwm2m-log CLI commands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mash-protocol/lwm2m-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Category   *log.Category
	Operation  string
	ErrorsOnly bool
}

func (f ViewFilter) logFilter() log.Filter {
	return log.Filter{
		Category:   f.Category,
		Operation:  f.Operation,
		ErrorsOnly: f.ErrorsOnly,
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [client:id] CATEGORY Operation
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	op := event.Operation
	if op == "" {
		op = typeLabel(event)
	}
	fmt.Fprintf(w, "%s [client:%s] %-8s %s\n", ts, shortenClientID(event.ClientID), event.Category.String(), op)

	if event.ServerShortID != nil {
		fmt.Fprintf(w, "  Server: %d\n", *event.ServerShortID)
	}
	if event.ObjectID != nil {
		fmt.Fprintf(w, "  Object: %d\n", *event.ObjectID)
	}
	if event.Status != nil {
		fmt.Fprintf(w, "  Status: %s\n", event.Status.Error())
	}

	switch {
	case event.Dispatch != nil:
		formatDispatchDetails(w, event.Dispatch)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Schedule != nil:
		formatScheduleDetails(w, event.Schedule)
	}
	if event.Error != nil {
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// typeLabel names the payload carried by the event.
func typeLabel(event log.Event) string {
	switch {
	case event.Dispatch != nil:
		return "Dispatch"
	case event.StateChange != nil:
		return "State"
	case event.Schedule != nil:
		return "Schedule"
	case event.Error != nil:
		return "Error"
	default:
		return "Unknown"
	}
}

// shortenClientID returns the first 8 characters of the client ID.
func shortenClientID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatDispatchDetails(w io.Writer, d *log.DispatchEvent) {
	fmt.Fprintf(w, "  Event: %s", d.Type)
	if d.Suppressed {
		fmt.Fprint(w, " (suppressed)")
	}
	fmt.Fprintln(w)
	if d.SettingID != nil {
		fmt.Fprintf(w, "  Setting: %d\n", *d.SettingID)
	}
	if d.Value != nil {
		if data, err := json.Marshal(d.Value); err == nil {
			fmt.Fprintf(w, "  Value: %s\n", data)
		}
	}
	if d.Lifetime != nil {
		fmt.Fprintf(w, "  Lifetime: %d\n", *d.Lifetime)
	}
	if d.InternalError || d.ErrorCode != 0 {
		fmt.Fprintf(w, "  Failure: internal=%t code=%d.%02d\n", d.InternalError, d.ErrorCode>>5, d.ErrorCode&0x1F)
	}
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.RefreshAt != 0 {
		fmt.Fprintf(w, "  RefreshAt: %d\n", sc.RefreshAt)
	}
}

func formatScheduleDetails(w io.Writer, s *log.ScheduleEvent) {
	fmt.Fprintf(w, "  Delay: %s\n", formatDelay(s.Delay))
	fmt.Fprintf(w, "  Now: %d  Servers: %d\n", s.Now, s.Servers)
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// formatDelay renders a wake delay in seconds; the max value means nothing is scheduled.
func formatDelay(d uint32) string {
	if d == ^uint32(0) {
		return "none"
	}
	return (time.Duration(d) * time.Second).String()
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	c, ok := log.ParseCategory(strings.ToUpper(s))
	if !ok {
		return 0, fmt.Errorf("invalid category: %s (must be registry, object, event, schedule, or guard)", s)
	}
	return c, nil
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	return eachEvent(path, filter.logFilter(), func(event log.Event) error {
		formatEvent(output, event)
		return nil
	})
}
