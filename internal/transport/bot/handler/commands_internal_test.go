package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"bargain/internal/domain/entity"
	service "bargain/internal/domain/service/bargain"
	"bargain/internal/transport/bot/view"
)

type recorderStub struct {
	channels []string
	tables   []entity.Table
}

func (r *recorderStub) ObserveTable(channel string, table entity.Table) {
	r.channels = append(r.channels, channel)
	r.tables = append(r.tables, table)
}

func TestAnswer(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	recorder := &recorderStub{}
	h := New(service.NewCalculator(), recorder)

	testCases := []struct {
		name     string
		input    string
		expected string
		contains string
	}{
		{name: "Price", input: "100", contains: "$93.14"},
		{name: "Price with spaces", input: "  42.5 ", contains: "<b>$42.50</b>"},
		{name: "Zero", input: "0", expected: view.InvalidPrice},
		{name: "Text", input: "hello", expected: view.InvalidPrice},
		{name: "Blank", input: " ", expected: view.BargainMissingArgument},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			text := h.answer(ctx, tc.input)

			if tc.expected != "" {
				rq.Equal(tc.expected, text)
			}

			if tc.contains != "" {
				rq.Contains(text, tc.contains)
			}
		})
	}

	rq.Len(recorder.tables, len(testCases))
	rq.Equal("bot", recorder.channels[0])
	rq.Len(recorder.tables[0].Rows, 9)
	rq.Empty(recorder.tables[2].Rows)
}
