package service

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"bargain/internal/domain"
	"bargain/internal/domain/entity"
	"bargain/internal/domain/value"
	"bargain/pkg/errcodes"
)

// DefaultFeeRate is the marketplace sale fee charged on resale.
const DefaultFeeRate = 0.02

func DefaultTargetProfits() []float64 {
	return []float64{5, 10, 15, 20, 25, 30, 50, 75, 100}
}

// Compute returns, for every target profit in order, the highest offer that
// still yields that profit after the fee is paid on resale at currentPrice.
// A price that is not a positive finite number yields an empty result.
// Offers and percentages below zero are clamped to zero.
func Compute(currentPrice, feeRate float64, targetProfits []float64) []entity.Recommendation {
	if !(currentPrice > 0) || math.IsInf(currentPrice, 1) {
		return []entity.Recommendation{}
	}

	result := make([]entity.Recommendation, 0, len(targetProfits))

	for _, profit := range targetProfits {
		maxOffer := max((currentPrice-profit)/(1+feeRate), 0)
		percent := max(maxOffer/currentPrice*100, 0) //nolint:mnd

		result = append(result, entity.Recommendation{
			TargetProfit:      profit,
			MaxOfferPrice:     maxOffer,
			PercentOfOriginal: percent,
		})
	}

	return result
}

// Calculator binds Compute to a fee rate, target profits and acceptance
// thresholds. It is immutable once validated and safe for concurrent use.
type Calculator struct {
	feeRate       float64
	targetProfits []float64
	thresholds    value.Thresholds
}

func NewCalculator() *Calculator {
	return &Calculator{
		feeRate:       DefaultFeeRate,
		targetProfits: DefaultTargetProfits(),
		thresholds:    value.DefaultThresholds(),
	}
}

func (c *Calculator) WithFeeRate(feeRate float64) *Calculator {
	c.feeRate = feeRate
	return c
}

func (c *Calculator) WithTargetProfits(profits ...float64) *Calculator {
	c.targetProfits = slices.Clone(profits)
	return c
}

func (c *Calculator) WithThresholds(thresholds value.Thresholds) *Calculator {
	c.thresholds = thresholds
	return c
}

func (c *Calculator) Validate() error {
	var errs []error

	if math.IsNaN(c.feeRate) || math.IsInf(c.feeRate, 0) || c.feeRate < 0 {
		errs = append(errs, domain.NewError(errcodes.InvalidFeeRate,
			fmt.Sprintf("fee rate must be a finite non-negative fraction, got %v", c.feeRate)))
	}

	if len(c.targetProfits) == 0 {
		errs = append(errs, domain.NewError(errcodes.InvalidTargetProfits, "target profits must not be empty"))
	}

	for i, profit := range c.targetProfits {
		if math.IsNaN(profit) || math.IsInf(profit, 0) || profit <= 0 {
			errs = append(errs, domain.NewError(errcodes.InvalidTargetProfits,
				fmt.Sprintf("target profit #%d must be a positive number, got %v", i+1, profit)))
		}
	}

	for _, threshold := range []float64{c.thresholds.High, c.thresholds.Medium} {
		if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
			errs = append(errs, domain.NewError(errcodes.InvalidThresholds,
				fmt.Sprintf("thresholds must be finite percentages, got %v", threshold)))
		}
	}

	if c.thresholds.Medium > c.thresholds.High {
		errs = append(errs, domain.NewError(errcodes.InvalidThresholds,
			fmt.Sprintf("medium threshold %v is above high threshold %v", c.thresholds.Medium, c.thresholds.High)))
	}

	return errors.Join(errs...)
}

func (c *Calculator) FeeRate() float64 {
	return c.feeRate
}

func (c *Calculator) TargetProfits() []float64 {
	return slices.Clone(c.targetProfits)
}

func (c *Calculator) Thresholds() value.Thresholds {
	return c.thresholds
}

func (c *Calculator) Recommend(price float64) []entity.Recommendation {
	return Compute(price, c.feeRate, c.targetProfits)
}

func (c *Calculator) Classify(percentOfOriginal float64) value.AcceptanceChance {
	return c.thresholds.Classify(percentOfOriginal)
}

// Table parses raw user input and builds the classified offer table.
func (c *Calculator) Table(input string) entity.Table {
	price, state := value.ParsePrice(input)

	recommendations := c.Recommend(price)
	rows := make([]entity.Row, 0, len(recommendations))

	for _, r := range recommendations {
		rows = append(rows, entity.Row{
			Recommendation: r,
			Chance:         c.Classify(r.PercentOfOriginal),
		})
	}

	return entity.Table{
		Price:   price,
		FeeRate: c.feeRate,
		State:   state,
		Rows:    rows,
	}
}
