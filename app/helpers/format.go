package helpers

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var inr = accounting.Accounting{Symbol: "₹", Precision: 2}

// FormatINR renders a price for customer-facing text.
func FormatINR(amount decimal.Decimal) string {
	return inr.FormatMoneyDecimal(amount)
}
