package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultProjectionMonths is the horizon used when the caller does not
// specify one.
const DefaultProjectionMonths = 6

// Point is one data point of a balance projection, suitable for
// charting.
type Point struct {
	Date    time.Time        `json:"date" example:"2024-02-05T00:00:00Z"`
	Balance decimal.Decimal  `json:"balance" example:"785"` // Running balance, rounded to whole units for display
	Label   string           `json:"label,omitempty" example:"Netflix"`
	Amount  *decimal.Decimal `json:"amount,omitempty" example:"-15"` // The event amount, full precision
}

// Project walks the reconciled timeline forward from today and
// accumulates a running balance.
//
// The first point is always (today, balance), so a chart starts at the
// current state regardless of the horizon. Every following point is one
// event, with the running balance rounded to whole units for display
// while the accumulation itself keeps full precision.
//
// today is pinned by the caller and not re-evaluated during iteration,
// so identical inputs always produce identical output.
func (s Snapshot) Project(balance decimal.Decimal, today time.Time, months int) []Point {
	if months <= 0 {
		months = DefaultProjectionMonths
	}

	today = day(today)
	events := s.Events(today, today.AddDate(0, months, 0))

	points := make([]Point, 0, len(events)+1)
	points = append(points, Point{Date: today, Balance: balance})

	running := balance
	for _, event := range events {
		running = running.Add(event.Amount)

		amount := event.Amount
		points = append(points, Point{
			Date:    event.Date,
			Balance: running.Round(0),
			Label:   event.Label,
			Amount:  &amount,
		})
	}

	return points
}
