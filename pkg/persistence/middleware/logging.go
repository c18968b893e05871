package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/spindle/pkg/machine"
	"github.com/aretw0/spindle/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.OutcomeStore
	logger *slog.Logger
}

// NewLoggingMiddleware creates a middleware that logs store operations with
// their duration. Cache misses log at debug level; failures at warn.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.OutcomeStore) ports.OutcomeStore {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) Save(ctx context.Context, key string, outcome *machine.Outcome) error {
	start := time.Now()
	err := m.next.Save(ctx, key, outcome)
	m.log("save", key, start, err)
	return err
}

func (m *loggingMiddleware) Load(ctx context.Context, key string) (*machine.Outcome, error) {
	start := time.Now()
	outcome, err := m.next.Load(ctx, key)
	m.log("load", key, start, err)
	return outcome, err
}

func (m *loggingMiddleware) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := m.next.Delete(ctx, key)
	m.log("delete", key, start, err)
	return err
}

func (m *loggingMiddleware) List(ctx context.Context) ([]string, error) {
	start := time.Now()
	keys, err := m.next.List(ctx)
	m.log("list", "", start, err)
	return keys, err
}

func (m *loggingMiddleware) log(op, key string, start time.Time, err error) {
	attrs := []any{"op", op, "duration", time.Since(start)}
	if key != "" {
		attrs = append(attrs, "key", key)
	}
	switch {
	case err == nil:
		m.logger.Debug("outcome store", attrs...)
	case err == ports.ErrOutcomeNotFound:
		m.logger.Debug("outcome store miss", attrs...)
	default:
		m.logger.Warn("outcome store failed", append(attrs, "error", err)...)
	}
}
