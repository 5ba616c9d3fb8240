package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"bargain/internal/domain/entity"
	"bargain/internal/domain/value"
	"bargain/internal/infrastructure/metrics"
	"bargain/pkg/httpx/reply"
	"bargain/pkg/httpx/req"
	"bargain/pkg/logx"
	"bargain/pkg/rest"
)

type bargainService interface {
	Table(input string) entity.Table
	FeeRate() float64
	TargetProfits() []float64
	Thresholds() value.Thresholds
}

type tableRecorder interface {
	ObserveTable(channel string, table entity.Table)
}

type BargainServer struct {
	bargainService bargainService
	recorder       tableRecorder
}

func NewBargainServer(bargainService bargainService, recorder tableRecorder) BargainServer {
	return BargainServer{
		bargainService: bargainService,
		recorder:       recorder,
	}
}

func (s BargainServer) getV1Bargain(w http.ResponseWriter, r *http.Request) error {
	s.replyTable(r.Context(), w, r.URL.Query().Get("price"))

	return nil
}

func (s BargainServer) postV1Bargain(w http.ResponseWriter, r *http.Request) error {
	var request rest.BargainRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	s.replyTable(r.Context(), w, request.Price)

	return nil
}

func (s BargainServer) getV1BargainConfig(w http.ResponseWriter, r *http.Request) error {
	thresholds := s.bargainService.Thresholds()

	reply.JSON(r.Context(), w, http.StatusOK, rest.CalculatorConfig{
		FeeRate:         s.bargainService.FeeRate(),
		TargetProfits:   s.bargainService.TargetProfits(),
		HighThreshold:   thresholds.High,
		MediumThreshold: thresholds.Medium,
	})

	return nil
}

func (s BargainServer) replyTable(ctx context.Context, w http.ResponseWriter, input string) {
	table := s.bargainService.Table(input)
	s.recorder.ObserveTable(metrics.ChannelHTTP, table)

	logger(ctx).Debug(
		"table computed",
		slog.String(logx.FieldInputState, table.State.String()),
		slog.Int(logx.FieldRows, len(table.Rows)),
	)

	reply.JSON(ctx, w, http.StatusOK, newRESTBargainResponse(table))
}
