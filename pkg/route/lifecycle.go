package route

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/wordchain/pkg/logger"
)

// Bootstrap calls Up on every node in pre-order. The first failure stops the
// traversal and is returned; nodes already brought up stay up.
func Bootstrap(ctx context.Context, root Node) error {
	return Walk(root, func(pattern string, n Node) error {
		if err := n.Up(ctx); err != nil {
			return errors.Join(ErrHookFailed, fmt.Errorf("up %s: %w", pattern, err))
		}
		return nil
	})
}

// Shutdown calls Down on every node in pre-order. The first failure stops
// the traversal and is logged, not returned.
func Shutdown(ctx context.Context, root Node, log *slog.Logger) {
	if log == nil {
		log = logger.Discard()
	}

	start := time.Now()
	err := Walk(root, func(pattern string, n Node) error {
		if err := n.Down(ctx); err != nil {
			log.ErrorContext(ctx, "route teardown failed",
				logger.Component("route"),
				logger.Route(pattern),
				logger.Error(err),
			)
			return err
		}
		return nil
	})
	if err == nil {
		log.DebugContext(ctx, "route teardown complete",
			logger.Component("route"),
			logger.Duration(time.Since(start)),
		)
	}
}
