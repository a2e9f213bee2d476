package database

import (
	"errors"

	"gorm.io/gorm"
)

const searchLimit = 20

// SaveFileInfo inserts a new file row. A file_id collision comes back as
// ErrDuplicateID and leaves the existing row untouched.
func (d *DBInstance) SaveFileInfo(file *File) error {
	tx, cancel := d.session()
	defer cancel()
	if err := tx.Create(file).Error; err != nil {
		return translateDuplicate(err)
	}
	return nil
}

// GetFileInfo returns the file metadata, or nil when the id is unknown.
func (d *DBInstance) GetFileInfo(fileID string) (*File, error) {
	tx, cancel := d.session()
	defer cancel()
	var file File
	err := tx.First(&file, "file_id = ?", fileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (d *DBInstance) IncrementFileDownloads(fileID string) error {
	tx, cancel := d.session()
	defer cancel()
	return tx.Model(&File{}).Where("file_id = ?", fileID).
		Update("download_count", gorm.Expr("download_count + 1")).Error
}

func (d *DBInstance) DeleteFileInfo(fileID string) error {
	tx, cancel := d.session()
	defer cancel()
	return tx.Delete(&File{FileID: fileID}).Error
}

// SearchFiles matches query as a substring of file_id, caption or
// original_filename. Newest uploads first, at most 20 rows.
func (d *DBInstance) SearchFiles(query string) ([]File, error) {
	tx, cancel := d.session()
	defer cancel()
	pattern := "%" + query + "%"
	var files []File
	err := tx.
		Where("file_id LIKE ? OR caption LIKE ? OR original_filename LIKE ?", pattern, pattern, pattern).
		Order("upload_date DESC").
		Limit(searchLimit).
		Find(&files).Error
	return files, err
}

func (d *DBInstance) CountFiles() (int64, error) {
	tx, cancel := d.session()
	defer cancel()
	var n int64
	err := tx.Model(&File{}).Count(&n).Error
	return n, err
}
