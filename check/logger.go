package check

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the logger a Checker falls back to when Options.Logger is
// nil. It is a no-op logger unless SetLogger was called.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger replaces the fallback logger. Checkers created earlier keep the
// logger they were created with.
func SetLogger(l *zap.Logger) {
	logger = l
}
