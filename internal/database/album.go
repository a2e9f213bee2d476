package database

import (
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// SaveAlbumInfo inserts a new album row. Serialization of the ordered message
// list is owned by this layer; callers pass plain identifiers.
func (d *DBInstance) SaveAlbumInfo(albumID string, userID int64, messageIDs []int64, chatID int64) error {
	tx, cancel := d.session()
	defer cancel()
	album := Album{
		AlbumID:    albumID,
		UserID:     userID,
		MessageIDs: encodeMessageIDs(messageIDs),
		ChatID:     chatID,
	}
	if err := tx.Create(&album).Error; err != nil {
		return translateDuplicate(err)
	}
	return nil
}

// GetAlbumInfo returns the album metadata, or nil when the id is unknown.
func (d *DBInstance) GetAlbumInfo(albumID string) (*Album, error) {
	tx, cancel := d.session()
	defer cancel()
	var album Album
	err := tx.First(&album, "album_id = ?", albumID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (d *DBInstance) IncrementAlbumDownloads(albumID string) error {
	tx, cancel := d.session()
	defer cancel()
	return tx.Model(&Album{}).Where("album_id = ?", albumID).
		Update("download_count", gorm.Expr("download_count + 1")).Error
}

func (d *DBInstance) DeleteAlbumInfo(albumID string) error {
	tx, cancel := d.session()
	defer cancel()
	return tx.Delete(&Album{AlbumID: albumID}).Error
}

func (d *DBInstance) CountAlbums() (int64, error) {
	tx, cancel := d.session()
	defer cancel()
	var n int64
	err := tx.Model(&Album{}).Count(&n).Error
	return n, err
}

// MessageIDList decodes the stored message list in upload order.
func (a *Album) MessageIDList() ([]int64, error) {
	if a.MessageIDs == "" {
		return nil, nil
	}
	parts := strings.Split(a.MessageIDs, ",")
	ids := make([]int64, len(parts))
	for i, p := range parts {
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func encodeMessageIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
