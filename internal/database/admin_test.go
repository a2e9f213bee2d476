package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestAddAdmin_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	adminID := int64(5000)

	require.NoError(t, db.AddAdmin(adminID))
	require.NoError(t, db.AddAdmin(adminID))

	count, err := db.CountAdmins()
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	isAdmin, err := db.IsAdmin(adminID)
	require.NoError(t, err)
	require.True(t, isAdmin)
}

func TestRemoveAdmin(t *testing.T) {
	db := setupTestDB(t)
	adminID := int64(5001)

	require.NoError(t, db.AddAdmin(adminID))
	require.NoError(t, db.RemoveAdmin(adminID))

	isAdmin, err := db.IsAdmin(adminID)
	require.NoError(t, err)
	require.False(t, isAdmin)
}

func TestGetAllAdmins(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.AddAdmin(1))
	require.NoError(t, db.AddAdmin(2))

	ids, err := db.GetAllAdmins()
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2}, ids)
}

func TestBootstrapAdminSeeded(t *testing.T) {
	db, err := NewDB(sqlite.Open(":memory:"), &gorm.Config{}, Options{
		BootstrapAdminID: 42,
		QueryTimeout:     5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	isAdmin, err := db.IsAdmin(42)
	require.NoError(t, err)
	require.True(t, isAdmin)
}
