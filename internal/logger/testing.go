package logger

import (
	"context"

	zap "go.uber.org/zap"
	observer "go.uber.org/zap/zaptest/observer"
)

// TestContext returns a context carrying an observed logger so tests can
// assert on the entries a run produced
func TestContext() (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return ContextWithLogger(context.Background(), zap.New(core)), logs
}

// NopContext returns a context carrying a no-op logger
func NopContext() context.Context {
	return ContextWithLogger(context.Background(), zap.NewNop())
}
