package ledger

import (
	"github.com/budgetflow/backend/internal/models"
	"github.com/budgetflow/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Snapshot is an in-memory copy of the ledger state, read once per
// request. All reconciliation math runs against it without further I/O.
type Snapshot struct {
	Transactions []models.Transaction
	Recurring    []models.RecurringItem
	Planned      []models.PlannedItem
}

// LoadSnapshot reads the full ledger state from the database.
func LoadSnapshot(db *gorm.DB) (Snapshot, error) {
	var snapshot Snapshot

	err := db.Find(&snapshot.Transactions).Error
	if err != nil {
		return Snapshot{}, err
	}

	err = db.Find(&snapshot.Recurring).Error
	if err != nil {
		return Snapshot{}, err
	}

	err = db.Find(&snapshot.Planned).Error
	if err != nil {
		return Snapshot{}, err
	}

	return snapshot, nil
}

// monthClaimed reports whether any transaction references the recurring
// rule in the given calendar month.
//
// The match granularity is deliberately the month, not the day: a bill
// paid on the 3rd instead of the 5th still claims that month's
// occurrence. Status does not matter either - confirmed, planned and
// skipped transactions all claim the month.
func (s Snapshot) monthClaimed(ruleID uuid.UUID, month types.Month) bool {
	for _, t := range s.Transactions {
		if t.RecurringID != nil && *t.RecurringID == ruleID && month.Contains(t.Date) {
			return true
		}
	}

	return false
}
