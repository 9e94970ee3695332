package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Recovery creates panic recovery middleware that turns a panic into an error
func Recovery(logger *slog.Logger) Middleware {
	return func(next RunE) RunE {
		return func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.ErrorContext(cmd.Context(), "panic recovered",
						slog.Any("error", r),
						slog.String("stack", string(debug.Stack())),
						slog.String("command", cmd.CommandPath()),
					)
					err = fmt.Errorf("internal error: %v", r)
				}
			}()

			return next(cmd, args)
		}
	}
}
