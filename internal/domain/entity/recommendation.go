package entity

// Recommendation is one row of the offer table for a single target profit.
type Recommendation struct {
	TargetProfit      float64 `json:"target_profit"`
	MaxOfferPrice     float64 `json:"max_offer_price"`
	PercentOfOriginal float64 `json:"percent_of_original"`
}
