package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// elapsedHours returns the duration between in and out expressed in hours,
// rounded half-up to 2 decimal places. A checkout at or before the check-in
// yields zero, never a negative amount.
func elapsedHours(in, out time.Time) decimal.Decimal {
	d := out.Sub(in)
	if d <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(d.Hours()).Round(2)
}
