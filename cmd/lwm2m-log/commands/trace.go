package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/mash-protocol/lwm2m-go/pkg/log"
)

// eachEvent opens the trace at path and calls fn for every event matching
// filter, stopping at the first error fn returns.
func eachEvent(path string, filter log.Filter, fn func(log.Event) error) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := fn(event); err != nil {
			return err
		}
	}
}
