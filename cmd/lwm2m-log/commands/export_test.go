package commands

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportToJSONL(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	outPath := filepath.Join(t.TempDir(), "out.jsonl")

	if err := RunExport(path, "jsonl", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != len(sampleEvents()) {
		t.Fatalf("expected %d lines, got %d", len(sampleEvents()), len(lines))
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("invalid JSON line: %v", err)
	}
	if first["ClientID"] != "abc12345-6789-0123-4567-890abcdef012" {
		t.Errorf("unexpected ClientID: %v", first["ClientID"])
	}
	if first["Operation"] != "AddServer" {
		t.Errorf("unexpected Operation: %v", first["Operation"])
	}
}

func TestExportToCSV(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	outPath := filepath.Join(t.TempDir(), "out.csv")

	if err := RunExport(path, "csv", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records) != len(sampleEvents())+1 {
		t.Fatalf("expected header plus %d rows, got %d", len(sampleEvents()), len(records))
	}
	if records[0][0] != "timestamp" || records[0][8] != "error" {
		t.Errorf("unexpected header: %v", records[0])
	}

	failed := records[2]
	if failed[3] != "AddServer" || failed[4] != "101" || failed[6] != "FORBIDDEN" {
		t.Errorf("unexpected failed row: %v", failed)
	}
	if failed[8] != "short id 101 already in use" {
		t.Errorf("unexpected error column: %q", failed[8])
	}

	dispatch := records[4]
	if dispatch[7] != "REGISTRATION" {
		t.Errorf("expected dispatch type in type column, got %q", dispatch[7])
	}
	object := records[5]
	if object[4] != "" || object[5] != "3303" {
		t.Errorf("unexpected id columns: %v", object)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	if err := RunExport(path, "xml", filepath.Join(t.TempDir(), "out.xml")); err == nil {
		t.Error("expected error for unknown format")
	}
}
