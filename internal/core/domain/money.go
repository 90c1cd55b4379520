package domain

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// inr supplies the display metadata (grapheme, fraction) for the one
// currency this ATM deals in.
var inr = money.GetCurrency(money.INR)

// FormatINR renders an amount the way the ATM displays money: currency
// symbol plus a fixed two-decimal value. No digit grouping, so the raw
// figure stays greppable in outcome messages and the audit trail.
func FormatINR(d decimal.Decimal) string {
	return inr.Grapheme + d.StringFixed(int32(inr.Fraction))
}
