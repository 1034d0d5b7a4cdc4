package backup

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/budgetflow/backend/internal/models"
	"gorm.io/gorm"
)

// Archive is the decrypted content of a backup.
type Archive struct {
	Version      string                     `json:"version"`      // The version of the backend the backup was made with
	Data         map[string]json.RawMessage `json:"data"`         // The exported resources, keyed by model name
	CreationTime time.Time                  `json:"creationTime"` // Time the backup was created
}

// Create exports every registered model and seals the result.
func Create(version, secret string) ([]byte, error) {
	data := make(map[string]json.RawMessage)

	for _, model := range models.Registry {
		b, err := model.Export()
		if err != nil {
			return nil, err
		}

		data[reflect.TypeOf(model).Name()] = b
	}

	payload, err := json.Marshal(Archive{
		Version:      version,
		Data:         data,
		CreationTime: time.Now().In(time.UTC),
	})
	if err != nil {
		return nil, err
	}

	return Encode(payload, secret)
}

// Restore replaces the full instance state with the archive in the blob.
//
// The replacement is transactional: either every table ends up holding
// exactly the backed up records, or the database is left untouched. The
// blob is decrypted and parsed before the transaction starts, so a wrong
// secret or corrupted data can never wipe anything.
func Restore(db *gorm.DB, blob []byte, secret string) error {
	payload, err := Decode(blob, secret)
	if err != nil {
		return err
	}

	var archive Archive
	if err := json.Unmarshal(payload, &archive); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// Foreign keys are checked during the wipe, delete referencing
		// models before the models they reference.
		wipe := []any{
			models.Transaction{},
			models.PlannedItem{},
			models.RecurringItem{},
			models.SavingsGoal{},
			models.Setting{},
			models.Category{},
		}

		for _, model := range wipe {
			if err := tx.Unscoped().Where("true").Delete(&model).Error; err != nil {
				return err
			}
		}

		// Insertion order is the reverse: referenced models first.
		if err := restoreResource[models.Category](tx, archive); err != nil {
			return err
		}
		if err := restoreResource[models.Setting](tx, archive); err != nil {
			return err
		}
		if err := restoreResource[models.SavingsGoal](tx, archive); err != nil {
			return err
		}
		if err := restoreResource[models.RecurringItem](tx, archive); err != nil {
			return err
		}
		if err := restoreResource[models.PlannedItem](tx, archive); err != nil {
			return err
		}

		return restoreResource[models.Transaction](tx, archive)
	})
}

// restoreResource inserts the archived records for one model. A missing
// key is fine, older backups do not know about newer models.
func restoreResource[T any](tx *gorm.DB, archive Archive) error {
	var model T
	raw, ok := archive.Data[reflect.TypeOf(model).Name()]
	if !ok {
		return nil
	}

	var resources []T
	if err := json.Unmarshal(raw, &resources); err != nil {
		return err
	}

	if len(resources) == 0 {
		return nil
	}

	return tx.Create(&resources).Error
}
