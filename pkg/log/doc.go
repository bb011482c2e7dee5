// Package log provides structured event capture for the data-model codecs.
//
// Every Marshal and Unmarshal call in pkg/wire can report what it did to a
// Logger: a summary of each completed document, each element it skipped
// (vendor extensions on input, parameters newer than the target version on
// output) and each failure. Events of one call share a DocumentID. This is
// separate from operational logging (zap); codec capture provides a
// machine-readable trace for auditing what a document actually contained.
//
// # Basic Usage
//
//	// For development: log to console via zap
//	opts.Logger = log.NewZapAdapter(zapLogger)
//
//	// For auditing: write to a binary file
//	opts.Logger, _ = log.NewFileLogger("/var/log/tr069/codec.tlog")
//
//	// Both: use MultiLogger
//	opts.Logger = log.NewMultiLogger(log.NewZapAdapter(zapLogger), fileLogger)
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with integer keys,
// conventionally named *.tlog. The "tr069-model events" command lists and
// filters them.
package log
