package middleware

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"
)

// RunE is the signature of a cobra command's RunE
type RunE func(cmd *cobra.Command, args []string) error

// Middleware wraps a RunE
type Middleware func(next RunE) RunE

// Chain applies middlewares so the first listed is the outermost
func Chain(next RunE, middlewares ...Middleware) RunE {
	for i := len(middlewares) - 1; i >= 0; i-- {
		next = middlewares[i](next)
	}
	return next
}

// Logging creates logging middleware that logs each command run
func Logging(logger *slog.Logger) Middleware {
	return func(next RunE) RunE {
		return func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			err := next(cmd, args)

			attrs := []any{
				slog.String("command", cmd.CommandPath()),
				slog.Int("args", len(args)),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				logger.WarnContext(cmd.Context(), "command failed", append(attrs, slog.String("error", err.Error()))...)
				return err
			}
			logger.InfoContext(cmd.Context(), "command completed", attrs...)
			return nil
		}
	}
}
