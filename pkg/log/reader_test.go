package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.tlog")

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

func readAllFiltered(t *testing.T, path string, filter Filter) []Event {
	t.Helper()
	reader, err := NewFilteredReader(path, filter)
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	events, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	return events
}

func TestReaderIteratesEvents(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), DocumentID: "doc-1", Direction: DirectionDecode, Format: "xml", Category: CategorySkipped},
		{Timestamp: time.Now(), DocumentID: "doc-1", Direction: DirectionDecode, Format: "xml", Category: CategoryDocument},
		{Timestamp: time.Now(), DocumentID: "doc-2", Direction: DirectionEncode, Format: "yaml", Category: CategoryDocument},
	}

	path := createTestLogFile(t, events)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	var read []Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, event)
	}

	if len(read) != 3 {
		t.Fatalf("got %d events, want 3", len(read))
	}
	if read[0].Category != CategorySkipped {
		t.Errorf("first event Category = %v, want %v", read[0].Category, CategorySkipped)
	}
	if read[2].DocumentID != "doc-2" {
		t.Errorf("last event DocumentID = %q, want %q", read[2].DocumentID, "doc-2")
	}
}

func TestReaderHandlesEmptyFile(t *testing.T) {
	path := createTestLogFile(t, nil)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	event, err := reader.Next()
	if err != io.EOF {
		t.Errorf("expected io.EOF, got err=%v, event=%+v", err, event)
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "none.tlog")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReaderFilters(t *testing.T) {
	base := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []Event{
		{Timestamp: base.Add(-time.Hour), DocumentID: "doc-A", Direction: DirectionDecode, Format: "xml", Category: CategorySkipped, Model: "Device:2.12"},
		{Timestamp: base, DocumentID: "doc-A", Direction: DirectionDecode, Format: "xml", Category: CategoryDocument, Model: "Device:2.12"},
		{Timestamp: base.Add(30 * time.Minute), DocumentID: "doc-B", Direction: DirectionEncode, Format: "yaml", Category: CategoryDocument, Model: "InternetGatewayDevice:1.14"},
		{Timestamp: base.Add(2 * time.Hour), DocumentID: "doc-C", Direction: DirectionDecode, Format: "cbor", Category: CategoryError},
	}
	path := createTestLogFile(t, events)

	encode := DirectionEncode
	document := CategoryDocument
	start := base.Add(-5 * time.Minute)
	end := base.Add(time.Hour)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"none", Filter{}, []string{"doc-A", "doc-A", "doc-B", "doc-C"}},
		{"document id", Filter{DocumentID: "doc-A"}, []string{"doc-A", "doc-A"}},
		{"direction", Filter{Direction: &encode}, []string{"doc-B"}},
		{"category", Filter{Category: &document}, []string{"doc-A", "doc-B"}},
		{"format", Filter{Format: "cbor"}, []string{"doc-C"}},
		{"model name", Filter{Model: "Device"}, []string{"doc-A", "doc-A"}},
		{"model version", Filter{Model: "InternetGatewayDevice:1.14"}, []string{"doc-B"}},
		{"time range", Filter{TimeStart: &start, TimeEnd: &end}, []string{"doc-A", "doc-B"}},
		{"combined", Filter{DocumentID: "doc-A", Category: &document}, []string{"doc-A"}},
		{"no match", Filter{Format: "bson"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			read := readAllFiltered(t, path, tt.filter)
			var got []string
			for _, e := range read {
				got = append(got, e.DocumentID)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d: DocumentID = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
