// Package logging builds the logr.Logger used by the command-line tool.
// The backend is zap; solvers only see the logr interface.
package logging

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels understood by the solvers.
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// New returns a zap-backed logger for level "info", "debug", "trace" or
// "off". debug enables solve summaries (V(1)), trace also enables
// incumbent updates (V(2)).
func New(level string) (logr.Logger, error) {
	var v int
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		v = INFO
	case "debug":
		v = DEBUG
	case "trace":
		v = TRACE
	case "off", "none":
		return logr.Discard(), nil
	default:
		return logr.Discard(), fmt.Errorf("logging: unknown level %q", level)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = ""
	// zap levels are negated logr verbosities.
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-v))
	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("logging: %w", err)
	}

	return zapr.NewLogger(zl), nil
}
