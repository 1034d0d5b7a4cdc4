package models

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Setting keys the backend itself reads and writes.
const (
	SettingInitialBalance = "initialBalance" // The base the current balance is computed from
	SettingCurrency       = "currency"       // ISO 4217 code used by clients for display
	SettingLastBackup     = "lastBackup"     // RFC3339 timestamp of the last successful backup
)

// Setting is a scalar key/value pair.
type Setting struct {
	Timestamps
	Key   string `json:"key" gorm:"primaryKey" example:"initialBalance"`
	Value string `json:"value" example:"1000"`
}

func (s *Setting) BeforeSave(_ *gorm.DB) error {
	if s.Key == "" {
		return ErrSettingKeyEmpty
	}

	if s.Key == SettingCurrency {
		if _, err := currency.ParseISO(s.Value); err != nil {
			return ErrCurrencyInvalid
		}
	}

	return nil
}

// GetSetting returns the setting for a key.
func GetSetting(key string) (Setting, error) {
	var setting Setting
	err := DB.First(&setting, "key = ?", key).Error
	return setting, err
}

// SetSetting creates or updates the setting for a key.
func SetSetting(key, value string) error {
	setting := Setting{Key: key, Value: value}

	return DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

// InitialBalance returns the configured initial balance. A missing
// setting means the user never set one and is treated as zero.
func InitialBalance() (decimal.Decimal, error) {
	setting, err := GetSetting(SettingInitialBalance)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return decimal.Zero, nil
		}

		return decimal.Zero, err
	}

	return decimal.NewFromString(setting.Value)
}

// SetInitialBalance persists the base for the balance computation.
func SetInitialBalance(amount decimal.Decimal) error {
	return SetSetting(SettingInitialBalance, amount.String())
}

// Export returns all settings on this instance.
func (Setting) Export() (json.RawMessage, error) {
	var settings []Setting
	err := DB.Find(&settings).Error
	if err != nil {
		return nil, err
	}

	return json.Marshal(&settings)
}
