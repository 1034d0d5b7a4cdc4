// Package ledger implements the event-projection engine.
//
// It reconciles three overlapping sources of financial truth - real
// transactions, one-off planned items and recurring rules - into a single
// deduplicated timeline and derives running-balance projections and
// monthly reports from it.
//
// Everything in this package is a pure computation over a Snapshot that
// was read from the database once. Given the same snapshot, window and
// reference date, every function returns the same result.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventStatus describes how an event entered the timeline.
type EventStatus string

const (
	// EventConfirmed is a real transaction that has happened.
	EventConfirmed EventStatus = "confirmed"

	// EventPlanned is a planned transaction or a one-off planned item.
	EventPlanned EventStatus = "planned"

	// EventRecurring is a ghost: a generated occurrence of a recurring
	// rule that no transaction has claimed yet.
	EventRecurring EventStatus = "recurring"
)

// Event is the unified projection unit. It is derived in memory for
// reporting and projection and never persisted.
type Event struct {
	ID          uuid.UUID       `json:"id"`          // ID of the originating record; for ghosts, the recurring rule
	RecurringID *uuid.UUID      `json:"recurringId"` // The recurring rule this event belongs to, if any
	Label       string          `json:"label"`
	Amount      decimal.Decimal `json:"amount"` // Signed
	Date        time.Time       `json:"date"`
	Status      EventStatus     `json:"status"`
	CategoryID  *uuid.UUID      `json:"categoryId"`
}

// day truncates a time instant to its UTC calendar day. All window
// comparisons in this package work on days; the time of day never
// influences whether an event is inside a window.
func day(t time.Time) time.Time {
	year, month, d := t.In(time.UTC).Date()
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// inWindow reports whether a day lies in the half-open window
// [from, until). This is the single boundary convention used by the
// whole package: the start day is included, the end day is not.
func inWindow(t, from, until time.Time) bool {
	t = day(t)
	return !t.Before(from) && t.Before(until)
}
