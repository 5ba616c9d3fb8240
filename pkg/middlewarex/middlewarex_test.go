package middlewarex_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"bargain/pkg/contextx"
	"bargain/pkg/logx"
	"bargain/pkg/middlewarex"
)

func TestTraceID(t *testing.T) {
	rq := require.New(t)

	var gotTraceID contextx.TraceID

	handler := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		traceID, err := contextx.TraceIDFromContext(r.Context())
		rq.NoError(err)

		gotTraceID = traceID
	}))

	t.Run("Generated", func(*testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

		const xidLen = 20

		rq.Len(gotTraceID.String(), xidLen)
		rq.Equal(gotTraceID.String(), w.Header().Get("X-Trace-Id"))
	})

	t.Run("Propagated", func(*testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		r.Header.Set("X-Trace-Id", "upstream-trace")

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		rq.Equal(contextx.TraceID("upstream-trace"), gotTraceID)
		rq.Equal("upstream-trace", w.Header().Get("X-Trace-Id"))
	})

	t.Run("Rejected upstream", func(*testing.T) {
		for _, upstream := range []string{strings.Repeat("a", 65), "with space", "line\nbreak"} {
			r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			r.Header.Set("X-Trace-Id", upstream)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			const xidLen = 20

			rq.Len(gotTraceID.String(), xidLen)
			rq.NotEqual(upstream, w.Header().Get("X-Trace-Id"))
		}
	})
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	ctx := contextx.WithLogger(t.Context(), slog.New(slog.NewJSONHandler(&buf, nil)))

	handler := middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("unexpected")
	}))

	w := httptest.NewRecorder()
	ctx = contextx.WithTraceID(ctx, "trace-1")
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody).WithContext(ctx))

	rq.Equal(http.StatusInternalServerError, w.Code)
	rq.JSONEq(`{"code":"InternalServerError","message":"internal error","supportId":"trace-1"}`, w.Body.String())
	rq.Contains(buf.String(), "panic in handler")
	rq.Contains(buf.String(), logx.FieldStack)
}

func TestRequestLoggingPrice(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		target string
		price  string
	}{
		{name: "Query price", target: "/v1/bargain?price=12.50", price: `"price":"12.50"`},
		{name: "Truncated", target: "/v1/bargain?price=" + strings.Repeat("9", 100), price: `"price":"` + strings.Repeat("9", 64) + `"`},
		{name: "No price", target: "/v1/bargain/config"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var buf bytes.Buffer

			ctx := contextx.WithLogger(t.Context(), slog.New(slog.NewJSONHandler(&buf, nil)))

			handler := middlewarex.RequestLogging(logx.NewNopSensitiveDataMasker(), 64)(
				http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}),
			)
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tc.target, http.NoBody).WithContext(ctx))

			rq.Contains(buf.String(), logx.FieldHTTPRequest)

			if tc.price == "" {
				rq.NotContains(buf.String(), `"price"`)
				return
			}

			rq.Contains(buf.String(), tc.price)
		})
	}
}

func TestResponseLogging(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	ctx := contextx.WithLogger(t.Context(), slog.New(slog.NewJSONHandler(&buf, nil)))

	handler := middlewarex.ResponseLogging(logx.NewNopSensitiveDataMasker(), 1024)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"state":"ready"}`)) //nolint:errcheck
		}),
	)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/bargain", http.NoBody).WithContext(ctx))

	rq.Equal(`{"state":"ready"}`, w.Body.String())
	rq.Contains(buf.String(), logx.FieldHTTPResponse)
	rq.Contains(buf.String(), `"response-status":200`)
	rq.Contains(buf.String(), `{\"state\":\"ready\"}`)
}
