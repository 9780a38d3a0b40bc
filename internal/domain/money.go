package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PercentOf returns percent% of amount, unrounded.
func PercentOf(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(hundred)
}

// BundlePrice is the amount charged for a bundle. The bundle's own
// TicketValue is display-only; the unit price is global.
func BundlePrice(bundle SemBundle, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(bundle.BundleSize)))
}

var DefaultDraws = []Draw{
	{ID: "1 PM", Hour: 13},
	{ID: "6 PM", Hour: 18},
	{ID: "8 PM", Hour: 20},
}

var BundleSizes = []int{5, 10, 25, 50, 100, 200}

// Next returns the first occurrence of the draw strictly after now, in now's location.
func (d Draw) Next(now time.Time) time.Time {
	at := time.Date(now.Year(), now.Month(), now.Day(), d.Hour, d.Minute, 0, 0, now.Location())
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at
}

func FindDraw(id string) (Draw, bool) {
	for _, d := range DefaultDraws {
		if d.ID == id {
			return d, true
		}
	}
	return Draw{}, false
}
