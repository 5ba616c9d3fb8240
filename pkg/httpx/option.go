package httpx

import "log/slog"

type Option func(*LoggingRoundTripper)

func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

func WithSensitiveDataMasker(sensitiveDataMasker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}

// WithLogLevel sets the level of request and response records. Errors are
// always logged at error level.
func WithLogLevel(level slog.Level) Option {
	return func(rt *LoggingRoundTripper) {
		rt.level = level
	}
}
