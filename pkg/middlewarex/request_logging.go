package middlewarex

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"

	"bargain/pkg/logx"
)

const queryParamPrice = "price"

func RequestLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			dumpBody := true

			if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
				dumpBody = false
			}

			dump, err := httputil.DumpRequest(r, dumpBody)

			if len(dump) > logFieldMaxLen {
				dump = dump[:logFieldMaxLen]
			}

			attrs := []any{
				slog.String(logx.FieldRequestBody, string(sensitiveDataMasker.Mask(dump))),
				logx.Error(err),
			}

			// GET /v1/bargain?price=... carries the asking price in the query.
			if price := r.URL.Query().Get(queryParamPrice); price != "" {
				attrs = append(attrs, slog.String(logx.FieldPrice, truncate(price, logFieldMaxLen)))
			}

			logger(ctx).Info(logx.FieldHTTPRequest, attrs...)

			next.ServeHTTP(w, r)
		})
	}
}

func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen]
	}

	return s
}
