package database

import (
	"gorm.io/gorm/clause"
)

func (d *DBInstance) IsAdmin(userID int64) (bool, error) {
	tx, cancel := d.session()
	defer cancel()
	var n int64
	err := tx.Model(&Admin{}).Where("user_id = ?", userID).Count(&n).Error
	return n > 0, err
}

// AddAdmin is idempotent: adding an existing admin is a no-op.
func (d *DBInstance) AddAdmin(userID int64) error {
	tx, cancel := d.session()
	defer cancel()
	return tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Admin{UserID: userID}).Error
}

func (d *DBInstance) RemoveAdmin(userID int64) error {
	tx, cancel := d.session()
	defer cancel()
	return tx.Delete(&Admin{UserID: userID}).Error
}

func (d *DBInstance) GetAllAdmins() ([]int64, error) {
	tx, cancel := d.session()
	defer cancel()
	var ids []int64
	err := tx.Model(&Admin{}).Pluck("user_id", &ids).Error
	return ids, err
}

func (d *DBInstance) CountAdmins() (int64, error) {
	tx, cancel := d.session()
	defer cancel()
	var n int64
	err := tx.Model(&Admin{}).Count(&n).Error
	return n, err
}
