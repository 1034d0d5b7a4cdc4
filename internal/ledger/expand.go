package ledger

import (
	"time"

	"github.com/budgetflow/backend/internal/models"
	"github.com/budgetflow/backend/internal/types"
)

// Occurrences expands a recurring rule into the calendar dates it fires
// on within [from, until).
//
// The expansion walks month by month from the month containing the window
// start. For every month the rule is active in (see RecurringItem.FiresIn),
// the occurrence day is the rule's dayOfMonth clamped to the length of the
// month, so a day-31 rule fires on Feb 28 in a non-leap year and on Feb 29
// in a leap year. The candidate is emitted only when its day lies inside
// the window.
func Occurrences(item models.RecurringItem, from, until time.Time) []Event {
	from, until = day(from), day(until)

	events := make([]Event, 0)

	for month := types.MonthOf(from); month.First().Before(until); month = month.AddDate(0, 1) {
		if !item.FiresIn(month) {
			continue
		}

		date := month.Day(item.DayOfMonth)
		if !inWindow(date, from, until) {
			continue
		}

		id := item.ID
		events = append(events, Event{
			ID:          item.ID,
			RecurringID: &id,
			Label:       item.Label,
			Amount:      item.SignedAmount(),
			Date:        date,
			Status:      EventRecurring,
			CategoryID:  item.CategoryID,
		})
	}

	return events
}
