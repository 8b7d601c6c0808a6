package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.mlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()
	return path
}

func u16(v uint16) *uint16 { return &v }

func st(s wire.Status) *wire.Status { return &s }

func TestReaderIteratesEvents(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	path := createTestLogFile(t, []Event{
		{Timestamp: base, ClientID: "c1", Category: CategoryRegistry, Operation: "AddServer"},
		{Timestamp: base.Add(time.Second), ClientID: "c1", Category: CategoryObject},
		{Timestamp: base.Add(2 * time.Second), ClientID: "c1", Category: CategorySchedule},
	})

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	var read []Event
	for {
		ev, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, ev)
	}

	if len(read) != 3 {
		t.Fatalf("got %d events, want 3", len(read))
	}
	if read[0].Operation != "AddServer" || read[2].Category != CategorySchedule {
		t.Errorf("events out of order: %+v", read)
	}
}

func TestFilterMatches(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ev := Event{
		Timestamp:     base,
		ClientID:      "c1",
		Category:      CategoryRegistry,
		Operation:     "RemoveServer",
		ServerShortID: u16(7),
		Status:        st(wire.StatusNotFound),
	}

	registry := CategoryRegistry
	object := CategoryObject
	later := base.Add(time.Minute)

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"empty", Filter{}, true},
		{"client", Filter{ClientID: "c1"}, true},
		{"other client", Filter{ClientID: "c2"}, false},
		{"category", Filter{Category: &registry}, true},
		{"other category", Filter{Category: &object}, false},
		{"operation", Filter{Operation: "AddServer"}, false},
		{"short id", Filter{ServerShortID: u16(7)}, true},
		{"other short id", Filter{ServerShortID: u16(8)}, false},
		{"object id unset", Filter{ObjectID: u16(1)}, false},
		{"errors only", Filter{ErrorsOnly: true}, true},
		{"time start", Filter{TimeStart: &later}, false},
		{"time end", Filter{TimeEnd: &later}, true},
		{"time end exclusive", Filter{TimeEnd: &base}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(ev); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}

	ok := Event{Status: st(wire.StatusNoError)}
	f := Filter{ErrorsOnly: true}
	if f.Matches(ok) {
		t.Error("success event should not match ErrorsOnly")
	}
}

func TestReadAllFiltered(t *testing.T) {
	path := createTestLogFile(t, []Event{
		{ClientID: "c1", Category: CategoryRegistry, ServerShortID: u16(1)},
		{ClientID: "c1", Category: CategoryRegistry, ServerShortID: u16(2)},
		{ClientID: "c1", Category: CategoryEvent, ServerShortID: u16(1)},
	})

	events, err := ReadAll(path, Filter{ServerShortID: u16(1)})
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("got %d events, want 2", len(events))
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.mlog")); err == nil {
		t.Error("expected error for missing file")
	}
}
