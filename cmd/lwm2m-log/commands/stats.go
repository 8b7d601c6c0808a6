package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/mash-protocol/lwm2m-go/pkg/log"
	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents       int
	EventsByCategory  map[log.Category]int
	EventsByOperation map[string]int
	EventsByStatus    map[wire.Status]int
	DispatchesByType  map[string]int
	Suppressed        int
	Servers           map[uint16]*ServerStats
	Clients           map[string]int
	Errors            int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// ServerStats holds statistics for a single server short id.
type ServerStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Errors    int
	LastState string
}

func newStats() *Stats {
	return &Stats{
		EventsByCategory:  make(map[log.Category]int),
		EventsByOperation: make(map[string]int),
		EventsByStatus:    make(map[wire.Status]int),
		DispatchesByType:  make(map[string]int),
		Servers:           make(map[uint16]*ServerStats),
		Clients:           make(map[string]int),
	}
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByCategory[event.Category]++
	if event.Operation != "" {
		s.EventsByOperation[event.Operation]++
	}
	if event.Status != nil {
		s.EventsByStatus[*event.Status]++
	}
	if event.ClientID != "" {
		s.Clients[event.ClientID]++
	}

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	if event.Dispatch != nil {
		s.DispatchesByType[event.Dispatch.Type]++
		if event.Dispatch.Suppressed {
			s.Suppressed++
		}
	}

	failed := event.Error != nil || (event.Status != nil && event.Status.IsError())
	if failed {
		s.Errors++
	}

	if event.ServerShortID == nil {
		return
	}
	srv, ok := s.Servers[*event.ServerShortID]
	if !ok {
		srv = &ServerStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
		s.Servers[*event.ServerShortID] = srv
	}
	srv.Events++
	if event.Timestamp.After(srv.LastSeen) {
		srv.LastSeen = event.Timestamp
	}
	if failed {
		srv.Errors++
	}
	if event.StateChange != nil {
		srv.LastState = event.StateChange.NewState
	}
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats := newStats()
	err := eachEvent(path, log.Filter{}, func(event log.Event) error {
		stats.add(event)
		return nil
	})
	if err != nil {
		return err
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== LwM2M Client Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Clients:      %d\n", len(stats.Clients))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryRegistry, log.CategoryObject, log.CategoryEvent, log.CategorySchedule, log.CategoryGuard} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.EventsByOperation) > 0 {
		fmt.Fprintln(w, "Events by Operation:")
		for _, op := range sortedKeys(stats.EventsByOperation) {
			fmt.Fprintf(w, "  %-28s %d\n", op+":", stats.EventsByOperation[op])
		}
		fmt.Fprintln(w)
	}

	if len(stats.EventsByStatus) > 0 {
		fmt.Fprintln(w, "Events by Status:")
		statuses := make([]wire.Status, 0, len(stats.EventsByStatus))
		for s := range stats.EventsByStatus {
			statuses = append(statuses, s)
		}
		sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
		for _, s := range statuses {
			fmt.Fprintf(w, "  %-28s %d\n", s.Error()+":", stats.EventsByStatus[s])
		}
		fmt.Fprintln(w)
	}

	if len(stats.DispatchesByType) > 0 {
		fmt.Fprintln(w, "Dispatched Events:")
		for _, typ := range sortedKeys(stats.DispatchesByType) {
			fmt.Fprintf(w, "  %-28s %d\n", typ+":", stats.DispatchesByType[typ])
		}
		if stats.Suppressed > 0 {
			fmt.Fprintf(w, "  Suppressed: %d\n", stats.Suppressed)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Servers: %d\n", len(stats.Servers))
	if len(stats.Servers) > 0 {
		ids := make([]uint16, 0, len(stats.Servers))
		for id := range stats.Servers {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		fmt.Fprintln(w)
		for _, id := range ids {
			srv := stats.Servers[id]
			duration := srv.LastSeen.Sub(srv.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%d] %d events, duration %s\n", id, srv.Events, duration)
			if srv.LastState != "" {
				fmt.Fprintf(w, "       State: %s\n", srv.LastState)
			}
			if srv.Errors > 0 {
				fmt.Fprintf(w, "       Errors: %d\n", srv.Errors)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
