package ledger

import (
	"sort"

	"github.com/budgetflow/backend/internal/models"
	"github.com/budgetflow/backend/internal/types"
)

// MonthlyReport returns the merged activity list for one calendar month:
// every real transaction dated in the month plus the ghost occurrences
// of recurring rules that no transaction has claimed for that month.
//
// Skip tombstones never appear in the output. They are dedup signals
// only - their presence suppresses the rule's ghost for the month, but
// they do not represent money movement worth displaying.
//
// The month window is [first day, first day of next month), so the 1st
// and the last day of the month are each included exactly once and days
// of the neighboring months never leak in.
func (s Snapshot) MonthlyReport(month types.Month) []Event {
	from := month.First()
	until := month.AddDate(0, 1).First()

	events := make([]Event, 0)

	for _, t := range s.Transactions {
		if t.Status == models.TransactionSkipped || !inWindow(t.Date, from, until) {
			continue
		}

		status := EventConfirmed
		if t.Status == models.TransactionPlanned {
			status = EventPlanned
		}

		events = append(events, Event{
			ID:          t.ID,
			RecurringID: t.RecurringID,
			Label:       t.Label,
			Amount:      t.Amount,
			Date:        day(t.Date),
			Status:      status,
			CategoryID:  t.CategoryID,
		})
	}

	for _, item := range s.Recurring {
		if s.monthClaimed(item.ID, month) {
			continue
		}

		events = append(events, Occurrences(item, from, until)...)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	return events
}
