package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapAdapter writes codec events to a zap.Logger.
// Useful for development when you want to see codec events in console.
type ZapAdapter struct {
	logger *zap.Logger
}

// NewZapAdapter creates a new ZapAdapter that writes to the given logger.
func NewZapAdapter(logger *zap.Logger) *ZapAdapter {
	return &ZapAdapter{logger: logger}
}

// Log writes the event at Debug level, or at Warn level for errors.
func (a *ZapAdapter) Log(event Event) {
	fields := []zap.Field{
		zap.String("doc_id", event.DocumentID),
		zap.String("direction", event.Direction.String()),
		zap.String("format", event.Format),
		zap.String("category", event.Category.String()),
	}
	if event.Model != "" {
		fields = append(fields, zap.String("model", event.Model))
	}
	if event.Source != "" {
		fields = append(fields, zap.String("source", event.Source))
	}

	level := zapcore.DebugLevel
	switch {
	case event.Document != nil:
		fields = append(fields,
			zap.String("root", event.Document.Root),
			zap.Int("objects", event.Document.Objects),
			zap.Int("parameters", event.Document.Parameters),
		)
		if event.Document.Size > 0 {
			fields = append(fields, zap.Int("size", event.Document.Size))
		}
		if event.Document.Duration > 0 {
			fields = append(fields, zap.Duration("duration", event.Document.Duration))
		}
	case event.Skipped != nil:
		fields = append(fields,
			zap.String("path", event.Skipped.Path),
			zap.String("element", event.Skipped.Element),
			zap.String("reason", event.Skipped.Reason.String()),
		)
		if event.Skipped.Line > 0 {
			fields = append(fields, zap.Int("line", event.Skipped.Line))
		}
	case event.Error != nil:
		level = zapcore.WarnLevel
		fields = append(fields, zap.String("error_msg", event.Error.Message))
		if event.Error.Path != "" {
			fields = append(fields, zap.String("path", event.Error.Path))
		}
		if event.Error.Element != "" {
			fields = append(fields, zap.String("element", event.Error.Element))
		}
		if event.Error.Line > 0 {
			fields = append(fields, zap.Int("line", event.Error.Line))
		}
		if event.Error.Context != "" {
			fields = append(fields, zap.String("error_context", event.Error.Context))
		}
	}

	if ce := a.logger.Check(level, "codec"); ce != nil {
		ce.Write(fields...)
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*ZapAdapter)(nil)
