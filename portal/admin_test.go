package portal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopdesk/portalgate/credstore"
	"github.com/shopdesk/portalgate/credstore/storefakes"
	"github.com/shopdesk/portalgate/portal"
	"github.com/shopdesk/portalgate/session"
)

func TestAdminHydratesFromStore(t *testing.T) {
	store := storefakes.NewFakeStore()
	stored := session.Session{Token: "t1", Profile: session.Profile{"name": "Store Admin"}}
	store.Seed(credstore.Admin, stored)

	m := portal.NewAdminManager(store)

	cur, ok := m.Current()
	require.True(t, ok)
	require.Equal(t, stored, cur)
}

func TestAdminStartsLoggedOutWithEmptyStore(t *testing.T) {
	m := portal.NewAdminManager(storefakes.NewFakeStore())

	_, ok := m.Current()
	require.False(t, ok)
}

func TestAdminLoginCommitsStateAndStoreTogether(t *testing.T) {
	store := storefakes.NewFakeStore()
	m := portal.NewAdminManager(store)
	sess := session.Session{Token: "t1", Profile: session.Profile{"name": "Store Admin", "email": "admin@example.com"}}

	m.Login(sess)

	cur, ok := m.Current()
	require.True(t, ok)
	require.Equal(t, sess, cur)

	persisted, ok := store.Load(credstore.Admin)
	require.True(t, ok)
	require.Equal(t, sess, persisted)
}

func TestAdminLoginSurvivesStoreFailure(t *testing.T) {
	store := storefakes.NewFakeStore()
	store.FailWrites(true)
	m := portal.NewAdminManager(store)
	sess := session.Session{Token: "t1"}

	m.Login(sess)

	cur, ok := m.Current()
	require.True(t, ok)
	require.Equal(t, sess, cur)

	_, stored := store.Load(credstore.Admin)
	require.False(t, stored)
}

func TestAdminLogoutClearsStateAndStore(t *testing.T) {
	store := storefakes.NewFakeStore()
	m := portal.NewAdminManager(store)
	m.Login(session.Session{Token: "t1"})

	m.Logout()

	_, ok := m.Current()
	require.False(t, ok)
	_, stored := store.Load(credstore.Admin)
	require.False(t, stored)
	require.Equal(t, 1, store.ClearCalls)
}

func TestAdminOnChangeSeesTransitions(t *testing.T) {
	m := portal.NewAdminManager(storefakes.NewFakeStore())

	var snaps []portal.Snapshot
	m.OnChange(func(s portal.Snapshot) { snaps = append(snaps, s) })

	sess := session.Session{Token: "t1"}
	m.Login(sess)
	m.Logout()

	require.Len(t, snaps, 2)
	require.True(t, snaps[0].LoggedIn)
	require.Equal(t, sess, snaps[0].Session)
	require.False(t, snaps[1].LoggedIn)
}
