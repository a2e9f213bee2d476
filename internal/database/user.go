package database

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AddUser registers a user on first contact and refreshes last_active on
// every later call.
func (d *DBInstance) AddUser(userID int64) error {
	tx, cancel := d.session()
	defer cancel()
	now := time.Now()
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{"last_active": now}),
	}).Create(&User{UserID: userID, LastActive: now, JoinDate: now}).Error
}

func (d *DBInstance) UpdateUserActivity(userID int64) error {
	tx, cancel := d.session()
	defer cancel()
	return tx.Model(&User{}).Where("user_id = ?", userID).
		Update("last_active", time.Now()).Error
}

func (d *DBInstance) SetUserLanguage(userID int64, langCode string) error {
	tx, cancel := d.session()
	defer cancel()
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{"language": langCode}),
	}).Create(&User{UserID: userID, Language: langCode}).Error
}

// GetUserLanguage returns the stored preference, or DefaultLanguage for an
// unknown user without creating a row.
func (d *DBInstance) GetUserLanguage(userID int64) (string, error) {
	tx, cancel := d.session()
	defer cancel()
	var user User
	err := tx.Select("language").First(&user, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultLanguage, nil
	}
	if err != nil {
		return "", err
	}
	return user.Language, nil
}

// IsUserBanned returns false for unknown users.
func (d *DBInstance) IsUserBanned(userID int64) (bool, error) {
	tx, cancel := d.session()
	defer cancel()
	var user User
	err := tx.Select("banned").First(&user, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Banned, nil
}

func (d *DBInstance) BanUser(userID int64) error {
	return d.setBanned(userID, true)
}

func (d *DBInstance) UnbanUser(userID int64) error {
	return d.setBanned(userID, false)
}

func (d *DBInstance) setBanned(userID int64, banned bool) error {
	tx, cancel := d.session()
	defer cancel()
	return tx.Model(&User{}).Where("user_id = ?", userID).
		Update("banned", banned).Error
}

func (d *DBInstance) GetAllUserIDs() ([]int64, error) {
	tx, cancel := d.session()
	defer cancel()
	var ids []int64
	err := tx.Model(&User{}).Pluck("user_id", &ids).Error
	return ids, err
}

func (d *DBInstance) CountUsers() (int64, error) {
	tx, cancel := d.session()
	defer cancel()
	var n int64
	err := tx.Model(&User{}).Count(&n).Error
	return n, err
}

// CountActiveUsersToday counts users whose last_active falls on the current
// calendar date.
func (d *DBInstance) CountActiveUsersToday() (int64, error) {
	tx, cancel := d.session()
	defer cancel()
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var n int64
	err := tx.Model(&User{}).Where("last_active >= ?", start).Count(&n).Error
	return n, err
}

// CountNewUsers counts users who joined within the past days.
func (d *DBInstance) CountNewUsers(days int) (int64, error) {
	tx, cancel := d.session()
	defer cancel()
	since := time.Now().AddDate(0, 0, -days)
	var n int64
	err := tx.Model(&User{}).Where("join_date >= ?", since).Count(&n).Error
	return n, err
}
