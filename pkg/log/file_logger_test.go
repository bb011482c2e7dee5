package log

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestFileLoggerCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.tlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("log file was not created")
	}
	if logger.Path() != path {
		t.Errorf("Path() = %q, want %q", logger.Path(), path)
	}
}

func TestFileLoggerWritesCBOR(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.tlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	event := Event{
		Timestamp:  time.Now(),
		DocumentID: "doc-123",
		Direction:  DirectionDecode,
		Format:     "xml",
		Category:   CategorySkipped,
		Skipped: &SkippedEvent{
			Path:    "Device.DeviceInfo.",
			Element: "X_OTHER-COM_Uptime",
			Line:    4,
		},
	}

	logger.Log(event)
	if logger.Written() != 1 {
		t.Errorf("Written() = %d, want 1", logger.Written())
	}
	logger.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("log file is empty")
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("failed to decode event: %v", err)
	}

	if decoded.DocumentID != event.DocumentID {
		t.Errorf("DocumentID: got %q, want %q", decoded.DocumentID, event.DocumentID)
	}
	if decoded.Skipped == nil {
		t.Error("Skipped is nil")
	} else if decoded.Skipped.Line != 4 {
		t.Errorf("Skipped.Line: got %d, want %d", decoded.Skipped.Line, 4)
	}
}

func TestFileLoggerAppends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.tlog")

	logger1, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger1.Log(Event{Timestamp: time.Now(), DocumentID: "doc-1", Format: "xml"})
	logger1.Close()

	info1, _ := os.Stat(path)
	size1 := info1.Size()

	logger2, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger second open failed: %v", err)
	}
	logger2.Log(Event{Timestamp: time.Now(), DocumentID: "doc-2", Format: "yaml", Direction: DirectionEncode})
	logger2.Close()

	info2, _ := os.Stat(path)
	if size2 := info2.Size(); size2 <= size1 {
		t.Errorf("file did not grow: size before=%d, size after=%d", size1, size2)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	decoder := NewDecoder(bytes.NewReader(data))
	var events []Event
	for {
		var event Event
		if err := decoder.Decode(&event); err != nil {
			break
		}
		events = append(events, event)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].DocumentID != "doc-1" {
		t.Errorf("first event DocumentID: got %q, want %q", events[0].DocumentID, "doc-1")
	}
	if events[1].DocumentID != "doc-2" {
		t.Errorf("second event DocumentID: got %q, want %q", events[1].DocumentID, "doc-2")
	}
}

func TestFileLoggerThreadSafe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.tlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	const numGoroutines = 10
	const eventsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < eventsPerGoroutine; j++ {
				logger.Log(Event{
					Timestamp:  time.Now(),
					DocumentID: "doc-" + string(rune('A'+id)),
					Format:     "xml",
					Category:   CategoryDocument,
				})
			}
		}(i)
	}

	wg.Wait()
	if got := logger.Written(); got != numGoroutines*eventsPerGoroutine {
		t.Errorf("Written() = %d, want %d", got, numGoroutines*eventsPerGoroutine)
	}
	logger.Close()

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	events, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != numGoroutines*eventsPerGoroutine {
		t.Errorf("event count: got %d, want %d", len(events), numGoroutines*eventsPerGoroutine)
	}
}

func TestFileLoggerClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.tlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	logger.Log(Event{Timestamp: time.Now(), DocumentID: "doc-123"})

	if err := logger.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	// Logging after close is ignored.
	logger.Log(Event{Timestamp: time.Now(), DocumentID: "doc-456"})
	if logger.Written() != 1 {
		t.Errorf("Written() after close = %d, want 1", logger.Written())
	}
}

func TestFileLoggerOpenFails(t *testing.T) {
	_, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "test.tlog"))
	if err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestFileLoggerInterfaceSatisfaction(t *testing.T) {
	var _ Logger = (*FileLogger)(nil)
}
