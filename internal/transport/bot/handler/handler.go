package handler

import (
	"bargain/internal/domain/entity"
	"bargain/internal/domain/value"
	"bargain/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type tableService interface {
	Table(input string) entity.Table
	Thresholds() value.Thresholds
	FeeRate() float64
}

type tableRecorder interface {
	ObserveTable(channel string, table entity.Table)
}

type Handler struct {
	calculator tableService
	recorder   tableRecorder
}

func New(calculator tableService, recorder tableRecorder) *Handler {
	return &Handler{
		calculator: calculator,
		recorder:   recorder,
	}
}
