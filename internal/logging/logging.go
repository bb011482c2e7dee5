// Package logging builds the loggers used by the command-line tools.
package logging

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tr069-model/tr069-go/pkg/log"
)

// New builds the tool logger. Verbose selects the development
// configuration with debug output; otherwise the production configuration
// is used. Both write to stderr so that documents on stdout stay clean.
func New(verbose bool) (*zap.Logger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Events routes codec events to the tool logger and, when eventLog is not
// empty, appends them to that CBOR file. The returned close function
// flushes the logger and closes the file.
func Events(logger *zap.Logger, eventLog string) (log.Logger, func() error, error) {
	loggers := []log.Logger{log.NewZapAdapter(logger)}

	var file *log.FileLogger
	if eventLog != "" {
		var err error
		file, err = log.NewFileLogger(eventLog)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open event log: %w", err)
		}
		loggers = append(loggers, file)
	}

	closeFn := func() error {
		_ = logger.Sync()
		if file != nil {
			return file.Close()
		}
		return nil
	}
	return log.NewMultiLogger(loggers...), closeFn, nil
}
