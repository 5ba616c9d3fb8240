package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	// Bot API token in request line and URLs.
	regexp.MustCompile(`(/bot)\d+:[A-Za-z0-9_-]+(/)`),
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
	// Telegram user fields.
	regexp.MustCompile(`(?s)("first_name":\s?").+?(")`),
	regexp.MustCompile(`(?s)("last_name":\s?").+?(")`),
	regexp.MustCompile(`(?s)("username":\s?").+?(")`),
	regexp.MustCompile(`(?s)("phone_number":\s?").+?(")`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
