package view

import (
	"fmt"
	"strings"

	"bargain/internal/domain/entity"
	"bargain/internal/domain/value"
)

const StartMessage = `👋 <b>Bargain calculator</b>

Send me the current asking price of a skin, for example <code>100</code> or <code>/bargain 12.50</code>, and I will show the highest offer you can make for each target profit.

Calculations include the %s%% selling fee.`

const (
	BargainMissingArgument = "❌ Usage: /bargain <code>PRICE</code>"
	InvalidPrice           = "⚠️ Please enter a valid skin price to see bargain recommendations."
)

const tableFooter = `🟢 %s%%+ has the highest chance of acceptance, 🟡 %s%%+ is a fair try, 🔴 below that is likely rejected.
Lower offers give higher profit but are rejected more often.`

func Start(feePercent float64) string {
	return fmt.Sprintf(StartMessage, value.FormatPercent(feePercent))
}

// Table renders rows as a monospace block for Telegram HTML mode.
func Table(table entity.Table, thresholds value.Thresholds) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "💰 <b>Bargain recommendations</b> for <b>$%s</b>\n", value.FormatMoney(table.Price))
	fmt.Fprintf(&sb, "Fee: %s%%\n\n", value.FormatPercent(table.FeePercent()))

	sb.WriteString("<pre>")
	fmt.Fprintf(&sb, "%-8s %-10s %-7s %s\n", "Profit", "Max offer", "%", "Chance")

	for _, row := range table.Rows {
		fmt.Fprintf(&sb, "%-8s %-10s %-7s %s %s\n",
			"$"+value.FormatMoney(row.TargetProfit),
			"$"+value.FormatMoney(row.MaxOfferPrice),
			value.FormatPercent(row.PercentOfOriginal)+"%",
			bandMark(row.Band()),
			row.Chance,
		)
	}

	sb.WriteString("</pre>\n\n")
	fmt.Fprintf(&sb, tableFooter, value.FormatPercent(thresholds.High), value.FormatPercent(thresholds.Medium))

	return sb.String()
}

func bandMark(band value.Band) string {
	switch band {
	case value.BandGreen:
		return "🟢"
	case value.BandYellow:
		return "🟡"
	default:
		return "🔴"
	}
}
