package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PlannedItem is a one-off future-dated event that is not tied to any
// recurring rule. It is the older sibling of a planned-status Transaction
// and is kept so restored backups keep their meaning.
type PlannedItem struct {
	DefaultModel
	Label      string          `json:"label" example:"Car inspection"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"-120"`
	Date       time.Time       `json:"date" example:"2024-03-14T00:00:00Z"`
	Type       ItemType        `json:"type" example:"expense"`
	CategoryID *uuid.UUID      `json:"categoryId"`
	Category   *Category       `json:"-" gorm:"constraint:OnDelete:SET NULL"`
}

// BeforeSave validates the item and normalizes the amount sign from the
// type, like Transaction.BeforeSave does.
func (p *PlannedItem) BeforeSave(_ *gorm.DB) error {
	p.Label = strings.TrimSpace(p.Label)

	if !p.Type.Valid() {
		return ErrItemTypeInvalid
	}

	if p.Type == TypeExpense {
		p.Amount = p.Amount.Abs().Neg()
	} else {
		p.Amount = p.Amount.Abs()
	}

	p.Date = p.Date.In(time.UTC)
	return nil
}

// AfterFind normalizes the date to UTC, see DefaultModel.AfterFind.
func (p *PlannedItem) AfterFind(tx *gorm.DB) error {
	p.Date = p.Date.In(time.UTC)
	return p.DefaultModel.AfterFind(tx)
}

// Export returns all planned items on this instance.
func (PlannedItem) Export() (json.RawMessage, error) {
	var items []PlannedItem
	err := DB.Unscoped().Where(&PlannedItem{}).Find(&items).Error
	if err != nil {
		return nil, err
	}

	return json.Marshal(&items)
}
