package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndGetFileInfo(t *testing.T) {
	db := setupTestDB(t)
	caption := "holiday photos"
	name := "photos.zip"

	err := db.SaveFileInfo(&File{
		FileID:           "ABC123",
		UserID:           7,
		FileType:         "document",
		MessageID:        55,
		ChatID:           -100999,
		Caption:          &caption,
		OriginalFilename: &name,
	})
	require.NoError(t, err)

	file, err := db.GetFileInfo("ABC123")
	require.NoError(t, err)
	require.NotNil(t, file)
	assert.Equal(t, int64(7), file.UserID)
	assert.Equal(t, "document", file.FileType)
	assert.Equal(t, int64(55), file.MessageID)
	assert.Equal(t, 0, file.DownloadCount)
	require.NotNil(t, file.Caption)
	assert.Equal(t, caption, *file.Caption)
	require.NotNil(t, file.OriginalFilename)
	assert.Equal(t, name, *file.OriginalFilename)
}

func TestGetFileInfo_Absent(t *testing.T) {
	db := setupTestDB(t)

	file, err := db.GetFileInfo("NOPE")
	require.NoError(t, err)
	require.Nil(t, file)
}

func TestSaveFileInfo_DuplicateID(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.SaveFileInfo(&File{FileID: "DUP1", UserID: 1, FileType: "photo"}))

	err := db.SaveFileInfo(&File{FileID: "DUP1", UserID: 2, FileType: "video"})
	require.ErrorIs(t, err, ErrDuplicateID)

	// The existing row must be unchanged
	file, err := db.GetFileInfo("DUP1")
	require.NoError(t, err)
	require.NotNil(t, file)
	assert.Equal(t, int64(1), file.UserID)
	assert.Equal(t, "photo", file.FileType)
}

func TestIncrementFileDownloads(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.SaveFileInfo(&File{FileID: "CNT1"}))

	for i := 0; i < 5; i++ {
		require.NoError(t, db.IncrementFileDownloads("CNT1"))
	}

	file, err := db.GetFileInfo("CNT1")
	require.NoError(t, err)
	require.NotNil(t, file)
	assert.Equal(t, 5, file.DownloadCount)
}

func TestDeleteFileInfo(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.SaveFileInfo(&File{FileID: "DEL1"}))

	require.NoError(t, db.DeleteFileInfo("DEL1"))

	file, err := db.GetFileInfo("DEL1")
	require.NoError(t, err)
	require.Nil(t, file)
}

func TestSearchFiles(t *testing.T) {
	db := setupTestDB(t)
	caption := "my report"

	require.NoError(t, db.SaveFileInfo(&File{
		FileID:     "AAA111",
		UploadDate: time.Now().Add(-2 * time.Hour),
	}))
	require.NoError(t, db.SaveFileInfo(&File{
		FileID:     "BBB222",
		Caption:    &caption,
		UploadDate: time.Now().Add(-1 * time.Hour),
	}))
	require.NoError(t, db.SaveFileInfo(&File{
		FileID:     "CCC333",
		UploadDate: time.Now(),
	}))

	// Match on file_id
	files, err := db.SearchFiles("AAA")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "AAA111", files[0].FileID)

	// Match on caption
	files, err = db.SearchFiles("report")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "BBB222", files[0].FileID)

	// No match
	files, err = db.SearchFiles("zzz")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestSearchFiles_OrderAndLimit(t *testing.T) {
	db := setupTestDB(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 25; i++ {
		require.NoError(t, db.SaveFileInfo(&File{
			FileID:     fmt.Sprintf("SRCH%02d", i),
			UploadDate: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	files, err := db.SearchFiles("SRCH")
	require.NoError(t, err)
	require.Len(t, files, 20)

	// Newest first
	assert.Equal(t, "SRCH24", files[0].FileID)
	for i := 1; i < len(files); i++ {
		assert.False(t, files[i].UploadDate.After(files[i-1].UploadDate))
	}
}

func TestCountFiles(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.SaveFileInfo(&File{FileID: "N1"}))
	require.NoError(t, db.SaveFileInfo(&File{FileID: "N2"}))

	n, err := db.CountFiles()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
