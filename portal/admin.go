package portal

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/shopdesk/portalgate/credstore"
	"github.com/shopdesk/portalgate/session"
)

// AdminManager owns the admin portal session. Hydration is synchronous and
// never touches the network: a stored token is trusted until an
// authenticated request rejects it, which page-level error handling deals
// with. There is no background re-validation for the admin portal.
type AdminManager struct {
	mu    sync.Mutex
	store credstore.Store
	cur   session.Session
	subs  subscribers
}

// NewAdminManager hydrates from the credential store and returns the
// manager.
func NewAdminManager(store credstore.Store) *AdminManager {
	m := &AdminManager{store: store}
	if sess, ok := store.Load(credstore.Admin); ok {
		m.cur = sess
	}
	return m
}

// Current returns the active session. ok is false when logged out.
func (m *AdminManager) Current() (session.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.cur.Active() {
		return session.Session{}, false
	}
	return m.cur, true
}

// Login commits the full payload returned by the login endpoint — token plus
// profile — to reactive state and the credential store as one unit. There is
// no intermediate token-without-profile state. A failed store write degrades
// to a memory-only session for this process life.
func (m *AdminManager) Login(sess session.Session) {
	m.mu.Lock()
	m.cur = sess
	if err := m.store.Save(credstore.Admin, sess); err != nil {
		log.Warn().Err(err).Msg("admin session not persisted, continuing in memory")
	}
	fns := m.subs.snapshotFns()
	snap := Snapshot{Session: m.cur, LoggedIn: m.cur.Active()}
	m.mu.Unlock()

	fire(fns, snap)
}

// Logout clears reactive state and the credential store.
func (m *AdminManager) Logout() {
	m.mu.Lock()
	m.cur = session.Session{}
	if err := m.store.Clear(credstore.Admin); err != nil {
		log.Warn().Err(err).Msg("admin session not cleared from store")
	}
	fns := m.subs.snapshotFns()
	m.mu.Unlock()

	fire(fns, Snapshot{})
}

// OnChange subscribes fn to every session transition.
func (m *AdminManager) OnChange(fn func(Snapshot)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs.add(fn)
}
