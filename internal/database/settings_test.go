//go:build !integration

package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSettings_AbsentChat(t *testing.T) {
	db := setupTestDB(t)

	settings, err := db.GetSettings(100)
	require.NoError(t, err)
	require.Nil(t, settings)
}

func TestGetOrCreateSettings_Defaults(t *testing.T) {
	db := setupTestDB(t)
	chatID := int64(101)

	settings, err := db.GetOrCreateSettings(chatID)
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, chatID, settings.ChatID)
	assert.True(t, settings.ForwardLock)
	assert.Equal(t, 30, settings.AutoDeleteTime)
	assert.False(t, settings.AllowUploads)
	assert.True(t, settings.ForceJoinEnabled)
	assert.False(t, settings.ForceViewReactionEnabled)
}

func TestGetOrCreateSettings_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	chatID := int64(102)

	first, err := db.GetOrCreateSettings(chatID)
	require.NoError(t, err)

	second, err := db.GetOrCreateSettings(chatID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Still exactly one row
	var n int64
	require.NoError(t, db.db.Model(&Settings{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestUpdateSetting(t *testing.T) {
	db := setupTestDB(t)
	chatID := int64(103)

	_, err := db.GetOrCreateSettings(chatID)
	require.NoError(t, err)

	require.NoError(t, db.UpdateSetting(chatID, SettingAllowUploads, true))
	require.NoError(t, db.UpdateSetting(chatID, SettingAutoDeleteTime, 60))
	require.NoError(t, db.UpdateSetting(chatID, SettingForceJoinChannelID, "@mychannel"))

	settings, err := db.GetSettings(chatID)
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.True(t, settings.AllowUploads)
	assert.Equal(t, 60, settings.AutoDeleteTime)
	assert.Equal(t, "@mychannel", settings.ForceJoinChannelID)
}

func TestUpdateSetting_RejectsUnknownField(t *testing.T) {
	db := setupTestDB(t)
	chatID := int64(104)

	_, err := db.GetOrCreateSettings(chatID)
	require.NoError(t, err)

	err = db.UpdateSetting(chatID, SettingField("chat_id; DROP TABLE settings"), 1)
	require.ErrorIs(t, err, ErrUnknownSettingField)

	// Row untouched
	settings, err := db.GetSettings(chatID)
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, chatID, settings.ChatID)
}
