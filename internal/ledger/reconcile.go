package ledger

import (
	"sort"
	"time"

	"github.com/budgetflow/backend/internal/models"
	"github.com/budgetflow/backend/internal/types"
)

// Events reconciles the snapshot into a single chronological timeline
// for the half-open window [from, until).
//
// The timeline merges three sources:
//  1. one-off planned items dated in the window,
//  2. transactions with status "planned" dated in the window,
//  3. generated occurrences of every recurring rule (see Occurrences),
//     except occurrences whose month is already claimed by a transaction
//     referencing the rule.
//
// Rule 3 is the core business rule: a recurring bill acts as a ghost
// future event until a real transaction - confirmed, rescheduled-planned
// or explicitly skipped - claims that month. Then the ghost disappears
// and the real record takes over.
//
// The result is sorted ascending by date; events on the same day keep
// their input order.
func (s Snapshot) Events(from, until time.Time) []Event {
	from, until = day(from), day(until)

	events := make([]Event, 0)

	for _, p := range s.Planned {
		if !inWindow(p.Date, from, until) {
			continue
		}

		events = append(events, Event{
			ID:         p.ID,
			Label:      p.Label,
			Amount:     p.Amount,
			Date:       day(p.Date),
			Status:     EventPlanned,
			CategoryID: p.CategoryID,
		})
	}

	for _, t := range s.Transactions {
		if t.Status != models.TransactionPlanned || !inWindow(t.Date, from, until) {
			continue
		}

		events = append(events, Event{
			ID:          t.ID,
			RecurringID: t.RecurringID,
			Label:       t.Label,
			Amount:      t.Amount,
			Date:        day(t.Date),
			Status:      EventPlanned,
			CategoryID:  t.CategoryID,
		})
	}

	for _, item := range s.Recurring {
		for _, occurrence := range Occurrences(item, from, until) {
			if s.monthClaimed(item.ID, types.MonthOf(occurrence.Date)) {
				continue
			}

			events = append(events, occurrence)
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	return events
}
