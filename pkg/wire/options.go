package wire

import (
	"errors"
	"strings"
	"time"

	"github.com/tr069-model/tr069-go/pkg/log"
	"github.com/tr069-model/tr069-go/pkg/model"
	"github.com/tr069-model/tr069-go/pkg/version"
)

// EncodeOptions configures encoders.
type EncodeOptions struct {
	// Indent is the per-level indentation. Empty writes a compact document.
	Indent string

	// Header writes the XML declaration before the root element.
	Header bool

	// Version omits parameters and objects introduced after this data-model
	// version. The zero value writes everything.
	Version version.SpecVersion

	// Logger receives document, skipped-element and error events.
	Logger log.Logger

	// Source names the output in events.
	Source string
}

// DecodeOptions configures decoders.
type DecodeOptions struct {
	// Logger receives document, skipped-element and error events. Unknown
	// elements are always skipped; they are only reported here.
	Logger log.Logger

	// Source names the input in events.
	Source string
}

// included reports whether a definition introduced in since is written for
// the target version.
func included(since, target version.SpecVersion) bool {
	return target.IsZero() || target.AtLeast(since)
}

// docLog reports the events of one codec call.
type docLog struct {
	logger log.Logger
	base   log.Event
	start  time.Time

	objects    int
	parameters int
}

func newDocLog(logger log.Logger, dir log.Direction, format string, root *model.Object, v version.SpecVersion, source string) *docLog {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	m := modelOf(root.Def())
	if !v.IsZero() {
		m = version.ModelVersion{Root: m, Version: v}.String()
	}
	return &docLog{
		logger: logger,
		base: log.Event{
			DocumentID: log.NewDocumentID(),
			Direction:  dir,
			Format:     format,
			Model:      m,
			Source:     source,
		},
		start: time.Now(),
	}
}

func (l *docLog) event(c log.Category) log.Event {
	e := l.base
	e.Timestamp = time.Now()
	e.Category = c
	return e
}

func (l *docLog) skipped(p, element string, line int, reason log.SkipReason) {
	e := l.event(log.CategorySkipped)
	e.Skipped = &log.SkippedEvent{Path: p, Element: element, Line: line, Reason: reason}
	l.logger.Log(e)
}

func (l *docLog) done(root string, size int) {
	e := l.event(log.CategoryDocument)
	e.Document = &log.DocumentEvent{
		Root:       root,
		Objects:    l.objects,
		Parameters: l.parameters,
		Size:       size,
		Duration:   time.Since(l.start),
	}
	l.logger.Log(e)
}

func (l *docLog) fail(err error, context string) error {
	e := l.event(log.CategoryError)
	e.Error = &log.ErrorEventData{Message: err.Error(), Context: context}
	var de *DecodeError
	if errors.As(err, &de) {
		e.Error.Path = de.Path
		e.Error.Element = de.Element
		e.Error.Line = de.Line
	}
	l.logger.Log(e)
	return err
}

// modelOf returns the model name of a definition: the first path segment.
func modelOf(d *model.ObjectDef) string {
	name, _, _ := strings.Cut(d.Path, ".")
	return name
}
