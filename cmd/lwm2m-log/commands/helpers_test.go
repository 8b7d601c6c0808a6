package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mash-protocol/lwm2m-go/pkg/log"
	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.mlog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func u16(v uint16) *uint16 { return &v }

func status(s wire.Status) *wire.Status { return &s }

// sampleEvents covers every payload kind the client emits.
func sampleEvents() []log.Event {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)
	lifetime := int32(300)
	return []log.Event{
		{
			Timestamp:     ts,
			ClientID:      "abc12345-6789-0123-4567-890abcdef012",
			Category:      log.CategoryRegistry,
			Operation:     "AddServer",
			ServerShortID: u16(101),
			Status:        status(wire.StatusNoError),
		},
		{
			Timestamp:     ts.Add(time.Second),
			ClientID:      "abc12345-6789-0123-4567-890abcdef012",
			Category:      log.CategoryRegistry,
			Operation:     "AddServer",
			ServerShortID: u16(101),
			Status:        status(wire.StatusForbidden),
			Error:         &log.ErrorEventData{Message: "short id 101 already in use"},
		},
		{
			Timestamp:     ts.Add(2 * time.Second),
			ClientID:      "abc12345-6789-0123-4567-890abcdef012",
			Category:      log.CategoryRegistry,
			Operation:     "SetServerState",
			ServerShortID: u16(101),
			StateChange:   &log.StateChangeEvent{OldState: "REGISTERING", NewState: "REGISTERED", RefreshAt: 1300},
		},
		{
			Timestamp:     ts.Add(3 * time.Second),
			ClientID:      "abc12345-6789-0123-4567-890abcdef012",
			Category:      log.CategoryEvent,
			Operation:     "Dispatch",
			ServerShortID: u16(101),
			Dispatch:      &log.DispatchEvent{Type: "REGISTRATION", Lifetime: &lifetime},
		},
		{
			Timestamp: ts.Add(4 * time.Second),
			ClientID:  "abc12345-6789-0123-4567-890abcdef012",
			Category:  log.CategoryObject,
			Operation: "AddCustomObject",
			ObjectID:  u16(3303),
			Status:    status(wire.StatusNoError),
		},
		{
			Timestamp: ts.Add(5 * time.Second),
			ClientID:  "abc12345-6789-0123-4567-890abcdef012",
			Category:  log.CategorySchedule,
			Operation: "NextWakeDelay",
			Schedule:  &log.ScheduleEvent{Delay: 290, Now: 1010, Servers: 1},
		},
	}
}
