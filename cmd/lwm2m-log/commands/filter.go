package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mash-protocol/lwm2m-go/pkg/log"
)

// FilterOptions specifies filtering criteria for the filter command.
type FilterOptions struct {
	Output     string
	ClientID   string
	Category   string
	Operation  string
	ServerID   string
	ObjectID   string
	ErrorsOnly bool
	TimeStart  string
	TimeEnd    string
}

// buildFilter converts the command-line options into a log.Filter.
func buildFilter(opts FilterOptions) (log.Filter, error) {
	filter := log.Filter{
		ClientID:   opts.ClientID,
		Operation:  opts.Operation,
		ErrorsOnly: opts.ErrorsOnly,
	}

	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	if opts.Category != "" {
		c, err := ParseCategoryFlag(opts.Category)
		if err != nil {
			return filter, err
		}
		filter.Category = &c
	}

	if opts.ServerID != "" {
		id, err := parseID("server", opts.ServerID)
		if err != nil {
			return filter, err
		}
		filter.ServerShortID = &id
	}

	if opts.ObjectID != "" {
		id, err := parseID("object", opts.ObjectID)
		if err != nil {
			return filter, err
		}
		filter.ObjectID = &id
	}

	return filter, nil
}

func parseID(kind, s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id: %s", kind, s)
	}
	return uint16(v), nil
}

// RunFilter filters the log file and writes matching events to a new file.
// It returns the number of events written.
func RunFilter(path string, opts FilterOptions) (int, error) {
	filter, err := buildFilter(opts)
	if err != nil {
		return 0, err
	}

	logger, err := log.NewFileLogger(opts.Output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output logger: %w", err)
	}
	defer logger.Close()

	count := 0
	err = eachEvent(path, filter, func(event log.Event) error {
		logger.Log(event)
		count++
		return nil
	})
	return count, err
}
