package texts

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"aplodbot/internal/database"
)

var activeRegex = regexp.MustCompile(`active\.[\w]+(?:\-\w+)?\.yaml`)

// Store resolves bot texts: a custom_texts override wins, then the bundled
// message for the requested locale, then the "fa" bundle, and finally a
// generated placeholder so callers always get something to send.
type Store struct {
	db     *database.DBInstance
	bundle *i18n.Bundle
}

func NewStore(db *database.DBInstance, localesDir string) (*Store, error) {
	bundle := i18n.NewBundle(language.Persian)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	err := filepath.WalkDir(localesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && activeRegex.MatchString(d.Name()) {
			if _, err := bundle.LoadMessageFile(path); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Store{db: db, bundle: bundle}, nil
}

func (s *Store) Get(key, langCode string) (string, error) {
	text, found, err := s.db.GetCustomText(key)
	if err != nil {
		return "", err
	}
	if found {
		return text, nil
	}

	localizer := i18n.NewLocalizer(s.bundle, langCode, database.DefaultLanguage)
	// go-i18n may hand back a fallback translation together with an error,
	// so the message matters more than the error here
	msg, _ := localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if msg != "" {
		return msg, nil
	}
	return fmt.Sprintf("متن پیش‌فرض برای %s", key), nil
}

func (s *Store) Set(key, text string) error {
	return s.db.SetCustomText(key, text)
}
