package server

import (
	"bargain/internal/domain/entity"
	"bargain/internal/domain/value"
	"bargain/pkg/lox"
	"bargain/pkg/rest"
)

func newRESTBargainResponse(table entity.Table) rest.BargainResponse {
	return rest.BargainResponse{
		Price:           table.Price,
		FeeRate:         table.FeeRate,
		FeePercent:      table.FeePercent(),
		State:           rest.InputState(table.State),
		Recommendations: lox.Map(table.Rows, newRESTRecommendation),
	}
}

func newRESTRecommendation(row entity.Row) rest.Recommendation {
	return rest.Recommendation{
		TargetProfit:          row.TargetProfit,
		MaxOfferPrice:         row.MaxOfferPrice,
		MaxOfferPriceText:     value.FormatMoney(row.MaxOfferPrice),
		PercentOfOriginal:     row.PercentOfOriginal,
		PercentOfOriginalText: value.FormatPercent(row.PercentOfOriginal),
		AcceptanceChance:      rest.AcceptanceChance(row.Chance),
		Band:                  rest.Band(row.Band()),
	}
}
