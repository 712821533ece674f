package credstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopdesk/portalgate/credstore"
	"github.com/shopdesk/portalgate/session"
)

func newTestStore(t *testing.T) *credstore.FileStore {
	t.Helper()
	store, err := credstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	sess := session.Session{Token: "t1", Profile: session.Profile{"name": "Store Admin"}}

	require.NoError(t, store.Save(credstore.Admin, sess))

	loaded, ok := store.Load(credstore.Admin)
	require.True(t, ok)
	require.Equal(t, sess, loaded)
}

func TestLoadMissingFileMeansNoSession(t *testing.T) {
	store := newTestStore(t)

	_, ok := store.Load(credstore.Shop)
	require.False(t, ok)
}

func TestLoadCorruptFileMeansNoSession(t *testing.T) {
	dir := t.TempDir()
	store, err := credstore.NewFileStore(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "admin_session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, ok := store.Load(credstore.Admin)
	require.False(t, ok)
}

func TestLoadTokenlessSessionMeansNoSession(t *testing.T) {
	dir := t.TempDir()
	store, err := credstore.NewFileStore(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "shop_session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"profile":{"name":"Acme"}}`), 0o600))

	_, ok := store.Load(credstore.Shop)
	require.False(t, ok)
}

func TestClearRemovesSession(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(credstore.Admin, session.Session{Token: "t1"}))

	require.NoError(t, store.Clear(credstore.Admin))

	_, ok := store.Load(credstore.Admin)
	require.False(t, ok)
}

func TestClearWithoutSessionIsNoError(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Clear(credstore.Admin))
}

func TestPortalsAreDisjoint(t *testing.T) {
	store := newTestStore(t)
	adminSess := session.Session{Token: "admin-token"}
	shopSess := session.Session{Token: "shop-token"}

	require.NoError(t, store.Save(credstore.Admin, adminSess))
	require.NoError(t, store.Save(credstore.Shop, shopSess))
	require.NoError(t, store.Clear(credstore.Admin))

	_, adminOK := store.Load(credstore.Admin)
	require.False(t, adminOK)

	loaded, shopOK := store.Load(credstore.Shop)
	require.True(t, shopOK)
	require.Equal(t, shopSess, loaded)
}

func TestSaveOverwritesPreviousSession(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(credstore.Shop, session.Session{Token: "old"}))
	require.NoError(t, store.Save(credstore.Shop, session.Session{Token: "new"}))

	loaded, ok := store.Load(credstore.Shop)
	require.True(t, ok)
	require.Equal(t, "new", loaded.Token)
}
