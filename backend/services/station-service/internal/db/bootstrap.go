package db

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Bootstrap defaults: five attempts, five seconds apart.
const (
	DefaultSchemaAttempts = 5
	DefaultSchemaInterval = 5 * time.Second
)

// EnsureSchema runs the schema creation function until it succeeds or all
// attempts are used up, sleeping interval between tries. It returns the
// last error after exhaustion; callers decide whether that is fatal (the
// station service deliberately keeps serving, see DESIGN.md).
func EnsureSchema(ctx context.Context, create func(context.Context) error, attempts int, interval time.Duration, logger *zap.Logger) error {
	if attempts <= 0 {
		attempts = DefaultSchemaAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = create(ctx)
		if lastErr == nil {
			logger.Info("schema ready", zap.Int("attempt", attempt))
			return nil
		}

		logger.Warn("schema creation failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
			zap.Error(lastErr),
		)

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
	return lastErr
}
