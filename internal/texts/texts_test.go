package texts

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"aplodbot/internal/database"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.NewDB(sqlite.Open(":memory:"), &gorm.Config{}, database.Options{
		QueryTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	dir := t.TempDir()
	fa := "welcome: \"خوش آمدید\"\nhelp: \"راهنما\"\n"
	en := "welcome: \"Welcome\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "active.fa.yaml"), []byte(fa), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "active.en.yaml"), []byte(en), 0o644))

	store, err := NewStore(db, dir)
	require.NoError(t, err)
	return store
}

func TestGet_OverrideWins(t *testing.T) {
	store := setupStore(t)

	require.NoError(t, store.Set("welcome", "custom greeting"))

	text, err := store.Get("welcome", "en")
	require.NoError(t, err)
	require.Equal(t, "custom greeting", text)
}

func TestGet_BundleByLanguage(t *testing.T) {
	store := setupStore(t)

	text, err := store.Get("welcome", "en")
	require.NoError(t, err)
	require.Equal(t, "Welcome", text)

	text, err = store.Get("welcome", "fa")
	require.NoError(t, err)
	require.Equal(t, "خوش آمدید", text)
}

func TestGet_FallsBackToPersian(t *testing.T) {
	store := setupStore(t)

	// "help" only exists in the fa bundle
	text, err := store.Get("help", "en")
	require.NoError(t, err)
	require.Equal(t, "راهنما", text)
}

func TestGet_PlaceholderForUnknownKey(t *testing.T) {
	store := setupStore(t)

	text, err := store.Get("no_such_key", "fa")
	require.NoError(t, err)
	require.Contains(t, text, "no_such_key")
}
