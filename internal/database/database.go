package database

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DefaultLanguage is used whenever a user has no stored language preference.
const DefaultLanguage = "fa"

const defaultQueryTimeout = 10 * time.Second

type DBInstance struct {
	db      *gorm.DB
	timeout time.Duration
}

type Options struct {
	// BootstrapAdminID is seeded into bot_admins after migration. Zero skips seeding.
	BootstrapAdminID int64
	// QueryTimeout bounds every single statement issued by this instance.
	QueryTimeout time.Duration
}

// NewDB opens the database, creates any missing tables and seeds the bootstrap
// admin. Repositories only exist behind a returned instance, so a non-nil
// result guarantees the schema is in place.
func NewDB(dialector gorm.Dialector, config *gorm.Config, opts Options) (*DBInstance, error) {
	config.TranslateError = true
	db, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// One shared connection; concurrent callers serialize on it.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&User{},
		&Admin{},
		&Settings{},
		&File{},
		&Album{},
		&CustomText{},
	)
	if err != nil {
		return nil, err
	}

	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = defaultQueryTimeout
	}
	d := &DBInstance{db: db, timeout: opts.QueryTimeout}

	if opts.BootstrapAdminID != 0 {
		if err := d.AddAdmin(opts.BootstrapAdminID); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// session derives a statement-scoped timeout context for a single call.
func (d *DBInstance) session() (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	return d.db.WithContext(ctx), cancel
}

func (d *DBInstance) Close() error {
	db, err := d.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
