package middlewarex

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"bargain/pkg/contextx"
	"bargain/pkg/errcodes"
	"bargain/pkg/httpx/reply"
	"bargain/pkg/logx"
	"bargain/pkg/rest"
)

// Recovery answers a panicking request with the usual JSON error body, so the
// client still gets a supportId to report.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				logger(ctx).Error(
					"panic in handler",
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				traceID, _ := contextx.TraceIDFromContext(ctx) //nolint:errcheck

				reply.JSON(ctx, w, http.StatusInternalServerError, rest.Error{
					Code:      rest.ErrorCode(errcodes.InternalServerError),
					Message:   "internal error",
					SupportID: traceID.String(),
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
