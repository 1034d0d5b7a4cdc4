package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingsGoal is an amount the user wants to put aside. It is independent
// of the transaction ledger.
type SavingsGoal struct {
	DefaultModel
	Label         string          `json:"label" example:"Emergency fund"`
	TargetAmount  decimal.Decimal `json:"targetAmount" gorm:"type:DECIMAL(20,8)" example:"5000"`
	CurrentAmount decimal.Decimal `json:"currentAmount" gorm:"type:DECIMAL(20,8)" example:"1250"`
	Deadline      *time.Time      `json:"deadline"`
}

func (g *SavingsGoal) BeforeSave(_ *gorm.DB) error {
	g.Label = strings.TrimSpace(g.Label)

	if !g.TargetAmount.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	if g.CurrentAmount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// Progress returns CurrentAmount/TargetAmount clamped to [0, 1].
func (g SavingsGoal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}

	progress := g.CurrentAmount.Div(g.TargetAmount)
	if progress.IsNegative() {
		return decimal.Zero
	}

	one := decimal.NewFromInt(1)
	if progress.GreaterThan(one) {
		return one
	}

	return progress
}

// Export returns all savings goals on this instance.
func (SavingsGoal) Export() (json.RawMessage, error) {
	var goals []SavingsGoal
	err := DB.Unscoped().Where(&SavingsGoal{}).Find(&goals).Error
	if err != nil {
		return nil, err
	}

	return json.Marshal(&goals)
}
