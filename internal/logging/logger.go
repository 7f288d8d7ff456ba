// Package logging builds the zap logger shared by the commands and the TUI.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	// Level is one of debug, info, warn or error. Empty means info.
	Level   string
	Verbose bool
	Quiet   bool
	// File receives log output. Empty means stderr.
	File string
}

func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if s := strings.TrimSpace(opts.Level); s != "" {
		parsed, err := zapcore.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = parsed
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	if opts.Quiet {
		level = zapcore.ErrorLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	output := "stderr"
	if opts.File != "" {
		output = opts.File
	} else {
		config.Encoding = "console"
	}
	config.OutputPaths = []string{output}
	config.ErrorOutputPaths = []string{output}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
