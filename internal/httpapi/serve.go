package httpapi

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/goliatone/go-relnotes/internal/logging"
)

// ShutdownTimeout bounds graceful shutdown once ctx is done.
const ShutdownTimeout = 5 * time.Second

// Serve runs app on addr until ctx is done or the listener fails. A listener
// failure (for example a port already in use) is returned immediately.
func Serve(ctx context.Context, app *fiber.App, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Info("Server listening", "addr", addr)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("httpapi: listen %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Warn("Shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("httpapi: shutdown: %w", err)
	}
	logging.Info("Server stopped cleanly")
	return nil
}
