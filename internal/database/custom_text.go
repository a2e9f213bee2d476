package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetCustomText looks up an override row. The localized fallback chain lives
// in the texts package; this only answers "is there an override".
func (d *DBInstance) GetCustomText(key string) (string, bool, error) {
	tx, cancel := d.session()
	defer cancel()
	var ct CustomText
	err := tx.First(&ct, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return ct.Text, true, nil
}

func (d *DBInstance) SetCustomText(key, text string) error {
	tx, cancel := d.session()
	defer cancel()
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]any{"text": text}),
	}).Create(&CustomText{Key: key, Text: text}).Error
}
