package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bargain/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Bot token in request line",
			input:  []byte("POST /bot123456789:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsaw/getUpdates HTTP/1.1\r\n"),
			output: []byte("POST /bot[MASKED]/getUpdates HTTP/1.1\r\n"),
		},
		{
			name:   "Bearer token",
			input:  []byte("GET / HTTP/1.1\r\nAuthorization: Bearer abc.def\r\n"),
			output: []byte("GET / HTTP/1.1\r\nAuthorization: Bearer [MASKED]\r\n"),
		},
		{
			name:   "Telegram user",
			input:  []byte(`{"from":{"id":42,"is_bot":false,"first_name":"John","last_name":"Doe","username":"jdoe"},"text":"100"}`),
			output: []byte(`{"from":{"id":42,"is_bot":false,"first_name":"[MASKED]","last_name":"[MASKED]","username":"[MASKED]"},"text":"100"}`),
		},
		{
			name:   "Nothing to mask",
			input:  []byte(`{"price":"100"}`),
			output: []byte(`{"price":"100"}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
