package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/budgetflow/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecurringItem is a rule for a periodic cash-flow event, e.g. rent on
// the 1st or a salary on the 28th.
//
// The rule itself never carries a paid state. Whether a month is paid or
// skipped lives on the Transaction records referencing it via RecurringID.
type RecurringItem struct {
	DefaultModel
	Label  string          `json:"label" example:"Netflix"`
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"15.99"` // Unsigned magnitude, the sign is applied from the type at occurrence generation
	Type   ItemType        `json:"type" example:"expense"`

	CategoryID *uuid.UUID `json:"categoryId"`
	Category   *Category  `json:"-" gorm:"constraint:OnDelete:SET NULL"`

	DayOfMonth int `json:"dayOfMonth" example:"5"` // 1-31, clamped to the length of short months

	// Optional active window: the rule only fires for months in
	// [StartDate's month, StartDate + DurationMonths months).
	StartDate      *time.Time `json:"startDate"`
	DurationMonths *int       `json:"durationMonths"`

	// Legacy upper bound, kept for restored backups. When set, the rule
	// does not fire for months after it.
	EndDate *time.Time `json:"endDate"`
}

// BeforeSave validates the rule. Out-of-range fields are rejected here,
// at the store boundary, so the expansion code can rely on well-formed
// rules.
func (r *RecurringItem) BeforeSave(_ *gorm.DB) error {
	r.Label = strings.TrimSpace(r.Label)

	if !r.Type.Valid() {
		return ErrItemTypeInvalid
	}

	if r.DayOfMonth < 1 || r.DayOfMonth > 31 {
		return ErrDayOfMonthOutOfRange
	}

	if r.Amount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// SignedAmount returns the amount with the sign the type implies.
func (r RecurringItem) SignedAmount() decimal.Decimal {
	if r.Type == TypeExpense {
		return r.Amount.Abs().Neg()
	}

	return r.Amount.Abs()
}

// FiresIn reports whether the rule is active in the given month.
//
// A rule without a window fires in every month. With StartDate and
// DurationMonths set, it fires for exactly DurationMonths months starting
// with the month of StartDate; a zero or negative duration never fires.
func (r RecurringItem) FiresIn(month types.Month) bool {
	if r.StartDate != nil && r.DurationMonths != nil {
		if *r.DurationMonths <= 0 {
			return false
		}

		start := types.MonthOf(*r.StartDate)
		if month.Before(start) || !month.Before(start.AddDate(0, *r.DurationMonths)) {
			return false
		}
	}

	if r.EndDate != nil && month.After(types.MonthOf(*r.EndDate)) {
		return false
	}

	return true
}

// Export returns all recurring items on this instance.
func (RecurringItem) Export() (json.RawMessage, error) {
	var items []RecurringItem
	err := DB.Unscoped().Where(&RecurringItem{}).Find(&items).Error
	if err != nil {
		return nil, err
	}

	return json.Marshal(&items)
}
