package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/tr069-model/tr069-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents       int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	EventsByFormat    map[string]int
	Models            map[string]int
	Documents         map[string]*DocumentStats
	SkippedElements   map[string]int
	Errors            int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// DocumentStats holds statistics for a single document.
type DocumentStats struct {
	FirstSeen  time.Time
	Direction  log.Direction
	Format     string
	Source     string
	Events     int
	Skipped    int
	Parameters int
	Size       int
	Failed     bool
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := newStats()
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func newStats() *Stats {
	return &Stats{
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		EventsByFormat:    make(map[string]int),
		Models:            make(map[string]int),
		Documents:         make(map[string]*DocumentStats),
		SkippedElements:   make(map[string]int),
	}
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByCategory[event.Category]++
	s.EventsByDirection[event.Direction]++
	s.EventsByFormat[event.Format]++

	// Track time range
	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	doc, ok := s.Documents[event.DocumentID]
	if !ok {
		doc = &DocumentStats{
			FirstSeen: event.Timestamp,
			Direction: event.Direction,
			Format:    event.Format,
			Source:    event.Source,
		}
		s.Documents[event.DocumentID] = doc
		if event.Model != "" {
			s.Models[event.Model]++
		}
	}
	doc.Events++

	switch {
	case event.Document != nil:
		doc.Parameters = event.Document.Parameters
		doc.Size = event.Document.Size
	case event.Skipped != nil:
		doc.Skipped++
		s.SkippedElements[event.Skipped.Element]++
	case event.Error != nil:
		doc.Failed = true
		s.Errors++
	}
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Codec Event Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryDocument, log.CategorySkipped, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, dir := range []log.Direction{log.DirectionDecode, log.DirectionEncode} {
		if count := stats.EventsByDirection[dir]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", dir.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Format:")
	for _, name := range sortedKeys(stats.EventsByFormat) {
		fmt.Fprintf(w, "  %-12s %d\n", name+":", stats.EventsByFormat[name])
	}
	fmt.Fprintln(w)

	if len(stats.Models) > 0 {
		fmt.Fprintln(w, "Models:")
		for _, m := range sortedKeys(stats.Models) {
			fmt.Fprintf(w, "  %-20s %d documents\n", m, stats.Models[m])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Documents: %d\n", len(stats.Documents))
	if len(stats.Documents) > 0 {
		type docInfo struct {
			id    string
			stats *DocumentStats
		}
		docs := make([]docInfo, 0, len(stats.Documents))
		for id, ds := range stats.Documents {
			docs = append(docs, docInfo{id, ds})
		}
		sort.Slice(docs, func(i, j int) bool {
			return docs[i].stats.FirstSeen.Before(docs[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, d := range docs {
			status := "ok"
			if d.stats.Failed {
				status = "FAILED"
			}
			fmt.Fprintf(w, "  [%s] %s %s, %d parameters, %s\n",
				shortenDocID(d.id), d.stats.Direction, d.stats.Format, d.stats.Parameters, status)
			if d.stats.Source != "" {
				fmt.Fprintf(w, "           Source: %s\n", d.stats.Source)
			}
			if d.stats.Skipped > 0 {
				fmt.Fprintf(w, "           Skipped: %d\n", d.stats.Skipped)
			}
		}
	}

	if len(stats.SkippedElements) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Skipped Elements:")
		for _, name := range sortedKeys(stats.SkippedElements) {
			fmt.Fprintf(w, "  %-30s %d\n", name, stats.SkippedElements[name])
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
