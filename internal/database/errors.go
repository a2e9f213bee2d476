package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateID reports an insert that collided with an existing primary key.
// Callers generating random file/album identifiers rely on it to retry.
var ErrDuplicateID = errors.New("duplicate id")

// ErrUnknownSettingField is returned before any statement runs when a settings
// update names a column outside the settable set.
var ErrUnknownSettingField = errors.New("unknown setting field")

func translateDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateID
	}
	return err
}

// IsConnectionRefused reports whether err means the server is not accepting
// connections, as opposed to a statement-level failure.
func IsConnectionRefused(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "57P03" || pgErr.Code == "08006"
	}
	return false
}
