package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tr069-model/tr069-go/pkg/log"
)

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [doc:id] DIRECTION FORMAT Category
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	docID := shortenDocID(event.DocumentID)

	fmt.Fprintf(w, "%s [doc:%s] %-6s %-4s %s\n", ts, docID, event.Direction, strings.ToUpper(event.Format), event.Category)
	if event.Model != "" {
		fmt.Fprintf(w, "  Model: %s\n", event.Model)
	}
	if event.Source != "" {
		fmt.Fprintf(w, "  Source: %s\n", event.Source)
	}

	// Type-specific details
	switch {
	case event.Document != nil:
		formatDocumentDetails(w, event.Document)
	case event.Skipped != nil:
		formatSkippedDetails(w, event.Skipped)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenDocID returns the first 8 characters of the document ID.
func shortenDocID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatDocumentDetails(w io.Writer, doc *log.DocumentEvent) {
	fmt.Fprintf(w, "  Root: %s\n", doc.Root)
	fmt.Fprintf(w, "  Objects: %d  Parameters: %d\n", doc.Objects, doc.Parameters)
	if doc.Size > 0 {
		fmt.Fprintf(w, "  Size: %d bytes\n", doc.Size)
	}
	if doc.Duration > 0 {
		fmt.Fprintf(w, "  Duration: %s\n", formatDuration(doc.Duration))
	}
}

func formatSkippedDetails(w io.Writer, s *log.SkippedEvent) {
	fmt.Fprintf(w, "  Element: %s%s\n", s.Path, s.Element)
	fmt.Fprintf(w, "  Reason: %s\n", s.Reason)
	if s.Line > 0 {
		fmt.Fprintf(w, "  Line: %d\n", s.Line)
	}
}

// formatErrorDetails writes error details.
func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Path != "" || err.Element != "" {
		fmt.Fprintf(w, "  Element: %s%s\n", err.Path, err.Element)
	}
	if err.Line > 0 {
		fmt.Fprintf(w, "  Line: %d\n", err.Line)
	}
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseDirectionFlag parses a direction string from command-line flag (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "decode", "in":
		return log.DirectionDecode, nil
	case "encode", "out":
		return log.DirectionEncode, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be decode or encode)", s)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "document":
		return log.CategoryDocument, nil
	case "skipped":
		return log.CategorySkipped, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be document, skipped, or error)", s)
	}
}

// EventFilterOptions are the filter flags shared by the events commands.
type EventFilterOptions struct {
	DocumentID string
	Format     string
	Model      string
	TimeStart  string
	TimeEnd    string
	Direction  string
	Category   string
}

// Filter converts the flag values to a log filter.
func (o EventFilterOptions) Filter() (log.Filter, error) {
	filter := log.Filter{
		DocumentID: o.DocumentID,
		Format:     strings.ToLower(o.Format),
		Model:      o.Model,
	}

	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	if o.Direction != "" {
		d, err := ParseDirectionFlag(o.Direction)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Direction = &d
	}
	if o.Category != "" {
		c, err := ParseCategoryFlag(o.Category)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Category = &c
	}
	return filter, nil
}

// RunView prints the matching events of a log file.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
