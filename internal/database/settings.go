package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// SettingField names one settable column of the settings table. UpdateSetting
// only accepts the constants below; arbitrary strings never reach a statement.
type SettingField string

const (
	SettingForwardLock              SettingField = "forward_lock"
	SettingAutoDeleteTime           SettingField = "auto_delete_time"
	SettingAllowUploads             SettingField = "allow_uploads"
	SettingForceViewReactionEnabled SettingField = "force_view_reaction_enabled"
	SettingViewReactionLink         SettingField = "view_reaction_link"
	SettingViewReactionChannelID    SettingField = "view_reaction_channel_id"
	SettingWelcomeMessage           SettingField = "welcome_message"
	SettingForceJoinEnabled         SettingField = "force_join_enabled"
	SettingForceJoinLink            SettingField = "force_join_link"
	SettingForceJoinChannelID       SettingField = "force_join_channel_id"
)

var settableFields = map[SettingField]struct{}{
	SettingForwardLock:              {},
	SettingAutoDeleteTime:           {},
	SettingAllowUploads:             {},
	SettingForceViewReactionEnabled: {},
	SettingViewReactionLink:         {},
	SettingViewReactionChannelID:    {},
	SettingWelcomeMessage:           {},
	SettingForceJoinEnabled:         {},
	SettingForceJoinLink:            {},
	SettingForceJoinChannelID:       {},
}

func (f SettingField) valid() bool {
	_, ok := settableFields[f]
	return ok
}

// GetSettings returns the row for the chat, or nil when no row exists yet.
func (d *DBInstance) GetSettings(chatID int64) (*Settings, error) {
	tx, cancel := d.session()
	defer cancel()
	var settings Settings
	err := tx.First(&settings, "chat_id = ?", chatID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetOrCreateSettings lazily inserts a default row for the chat, then re-reads
// it so column defaults are materialized.
func (d *DBInstance) GetOrCreateSettings(chatID int64) (*Settings, error) {
	tx, cancel := d.session()
	defer cancel()
	var settings Settings
	result := tx.First(&settings, "chat_id = ?", chatID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			row := Settings{ChatID: chatID, ForceJoinEnabled: true}
			if err := tx.Create(&row).Error; err != nil {
				return nil, err
			}
			if err := tx.First(&settings, "chat_id = ?", chatID).Error; err != nil {
				return nil, err
			}
			return &settings, nil
		}
		return nil, result.Error
	}
	return &settings, nil
}

// UpdateSetting sets a single column for the chat.
func (d *DBInstance) UpdateSetting(chatID int64, field SettingField, value any) error {
	if !field.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSettingField, string(field))
	}
	tx, cancel := d.session()
	defer cancel()
	return tx.Model(&Settings{}).Where("chat_id = ?", chatID).
		Update(string(field), value).Error
}
