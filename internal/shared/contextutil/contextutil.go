package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// Logger returns the global logger enriched with the request id, when the
// context carries one.
func Logger(ctx context.Context) *zap.Logger {
	logger := zap.L()
	if rid := RequestIDFrom(ctx); rid != "" {
		logger = logger.With(zap.String("request_id", rid))
	}
	return logger
}
