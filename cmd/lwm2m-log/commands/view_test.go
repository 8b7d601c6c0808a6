package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mash-protocol/lwm2m-go/pkg/log"
)

func TestFormatRegistryEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[0])
	output := buf.String()

	if !strings.Contains(output, "2026-01-28T10:15:32.123456Z") {
		t.Errorf("expected microsecond timestamp, got: %s", output)
	}
	if !strings.Contains(output, "[client:abc12345]") {
		t.Errorf("expected shortened client ID, got: %s", output)
	}
	if !strings.Contains(output, "REGISTRY") {
		t.Errorf("expected REGISTRY category, got: %s", output)
	}
	if !strings.Contains(output, "AddServer") {
		t.Errorf("expected operation name, got: %s", output)
	}
	if !strings.Contains(output, "Server: 101") {
		t.Errorf("expected server short id, got: %s", output)
	}
	if !strings.Contains(output, "Status: 0.00 NO_ERROR") {
		t.Errorf("expected status, got: %s", output)
	}
}

func TestFormatErrorEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[1])
	output := buf.String()

	if !strings.Contains(output, "4.03 FORBIDDEN") {
		t.Errorf("expected forbidden status, got: %s", output)
	}
	if !strings.Contains(output, "Message: short id 101 already in use") {
		t.Errorf("expected error message, got: %s", output)
	}
}

func TestFormatStateChangeEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[2])
	output := buf.String()

	if !strings.Contains(output, "REGISTERING -> REGISTERED") {
		t.Errorf("expected state transition, got: %s", output)
	}
	if !strings.Contains(output, "RefreshAt: 1300") {
		t.Errorf("expected refresh time, got: %s", output)
	}
}

func TestFormatDispatchEvent(t *testing.T) {
	code := uint8(0x84)
	setting := uint8(2)
	event := log.Event{
		Timestamp: time.Now(),
		Category:  log.CategoryEvent,
		Dispatch: &log.DispatchEvent{
			Type:       "SETTING_CHANGED",
			SettingID:  &setting,
			Value:      uint64(600),
			Suppressed: true,
			ErrorCode:  code,
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	// No operation, so the header falls back to the payload label.
	if !strings.Contains(output, "EVENT    Dispatch") {
		t.Errorf("expected payload label in header, got: %s", output)
	}
	if !strings.Contains(output, "Event: SETTING_CHANGED (suppressed)") {
		t.Errorf("expected suppressed dispatch, got: %s", output)
	}
	if !strings.Contains(output, "Setting: 2") || !strings.Contains(output, "Value: 600") {
		t.Errorf("expected setting details, got: %s", output)
	}
	if !strings.Contains(output, "code=4.04") {
		t.Errorf("expected failure code, got: %s", output)
	}
}

func TestFormatScheduleEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[5])
	if !strings.Contains(buf.String(), "Delay: 4m50s") {
		t.Errorf("expected wake delay, got: %s", buf.String())
	}

	buf.Reset()
	formatEvent(&buf, log.Event{Schedule: &log.ScheduleEvent{Delay: ^uint32(0)}})
	if !strings.Contains(buf.String(), "Delay: none") {
		t.Errorf("expected no deadline, got: %s", buf.String())
	}
}

func TestParseCategoryFlag(t *testing.T) {
	tests := []struct {
		in   string
		want log.Category
	}{
		{"registry", log.CategoryRegistry},
		{"OBJECT", log.CategoryObject},
		{"Event", log.CategoryEvent},
		{"schedule", log.CategorySchedule},
		{"guard", log.CategoryGuard},
	}
	for _, tt := range tests {
		got, err := ParseCategoryFlag(tt.in)
		if err != nil {
			t.Fatalf("ParseCategoryFlag(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseCategoryFlag(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseCategoryFlag("message"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestRunViewFiltersByCategory(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	cat := log.CategoryObject

	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{Category: &cat}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "AddCustomObject") {
		t.Errorf("expected object event, got: %s", output)
	}
	if strings.Contains(output, "AddServer") {
		t.Errorf("registry events should be filtered out, got: %s", output)
	}
}

func TestRunViewErrorsOnly(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{ErrorsOnly: true}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()

	if got := strings.Count(output, "[client:"); got != 1 {
		t.Errorf("expected 1 event, got %d: %s", got, output)
	}
	if !strings.Contains(output, "FORBIDDEN") {
		t.Errorf("expected the failed event, got: %s", output)
	}
}

func TestRunViewMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := RunView("/nonexistent/trace.mlog", ViewFilter{}, &buf); err == nil {
		t.Error("expected error for missing file")
	}
}
