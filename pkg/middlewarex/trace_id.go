package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"bargain/pkg/contextx"
)

const (
	headerNameTraceID = "X-Trace-Id"

	// Upstream ids longer than this, or with non-printable bytes, are replaced.
	maxTraceIDLen = 64
)

// TraceID propagates the caller's X-Trace-Id or generates a new one. The id is
// echoed in the response and returned to clients as supportId on errors.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(headerNameTraceID)

		if !validTraceID(traceID) {
			traceID = xid.New().String()
		}

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		w.Header().Set(headerNameTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func validTraceID(traceID string) bool {
	if traceID == "" || len(traceID) > maxTraceIDLen {
		return false
	}

	for i := range len(traceID) {
		if traceID[i] <= ' ' || traceID[i] > '~' {
			return false
		}
	}

	return true
}
