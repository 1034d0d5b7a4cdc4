package models

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// Category is a display label for grouping transactions and recurring
// items. Deleting a category nulls the reference on its dependents, it
// never cascades.
type Category struct {
	DefaultModel
	Label string   `json:"label" gorm:"uniqueIndex" example:"Groceries"`
	Type  ItemType `json:"type" example:"expense"`
	Color string   `json:"color" example:"#f59e0b"`
	Icon  string   `json:"icon" example:"ShoppingCart"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Label = strings.TrimSpace(c.Label)

	if !c.Type.Valid() {
		return ErrItemTypeInvalid
	}

	if c.Color == "" {
		c.Color = "#6366f1"
	}

	if c.Icon == "" {
		c.Icon = "Circle"
	}

	return nil
}

// Export returns all categories on this instance.
func (Category) Export() (json.RawMessage, error) {
	var categories []Category
	err := DB.Unscoped().Where(&Category{}).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return json.Marshal(&categories)
}
