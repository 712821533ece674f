package portal

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/shopdesk/portalgate/credstore"
	"github.com/shopdesk/portalgate/session"
)

// ShopBackend is the slice of the backend API the shop manager needs.
type ShopBackend interface {
	ShopLogin(ctx context.Context, username, password string) (session.Session, error)
	ShopProfile(ctx context.Context, token string) (session.Profile, error)
}

// ShopManager owns the shop portal session. Unlike the admin manager it
// self-verifies: whenever the token changes (hydration or login) it fetches
// the shop profile in the background, merging the result on success and
// logging out on failure.
//
// Every token transition bumps an epoch, and a refresh response is only
// applied while its epoch is still current. A slow response from a previous
// session can therefore never resurrect state after a logout.
type ShopManager struct {
	mu      sync.Mutex
	store   credstore.Store
	backend ShopBackend
	cur     session.Session
	epoch   uint64
	loading bool
	subs    subscribers
}

// NewShopManager hydrates from the credential store, optimistically treating
// a stored token as logged in, and kicks off one background profile
// verification for it.
func NewShopManager(store credstore.Store, api ShopBackend) *ShopManager {
	m := &ShopManager{store: store, backend: api}
	if sess, ok := store.Load(credstore.Shop); ok {
		m.cur = sess
		go m.refreshProfile(m.epoch, sess.Token)
	}
	return m
}

// Current returns the active session. ok is false when logged out.
func (m *ShopManager) Current() (session.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.cur.Active() {
		return session.Session{}, false
	}
	return m.cur, true
}

// LoginInFlight reports whether a Login call is pending. Callers use it to
// disable submit controls; a second concurrent Login is not otherwise
// prevented.
func (m *ShopManager) LoginInFlight() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Login authenticates against the backend. On success the returned
// {token, profile} pair is committed to state and store as one unit and a
// background verification is scheduled for the new token. On failure the
// error propagates with the backend's message intact and any prior session
// is left untouched.
func (m *ShopManager) Login(ctx context.Context, username, password string) (session.Session, error) {
	m.mu.Lock()
	m.loading = true
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
	}()

	sess, err := m.backend.ShopLogin(ctx, username, password)
	if err != nil {
		return session.Session{}, errors.Wrap(err, "[ShopManager.Login]")
	}

	m.mu.Lock()
	m.epoch++
	epoch := m.epoch
	m.cur = sess
	if serr := m.store.Save(credstore.Shop, sess); serr != nil {
		log.Warn().Err(serr).Msg("shop session not persisted, continuing in memory")
	}
	fns := m.subs.snapshotFns()
	snap := Snapshot{Session: sess, LoggedIn: sess.Active()}
	m.mu.Unlock()

	fire(fns, snap)
	go m.refreshProfile(epoch, sess.Token)
	return sess, nil
}

// Logout clears reactive state and the credential store.
func (m *ShopManager) Logout() {
	m.mu.Lock()
	m.epoch++
	m.cur = session.Session{}
	if err := m.store.Clear(credstore.Shop); err != nil {
		log.Warn().Err(err).Msg("shop session not cleared from store")
	}
	fns := m.subs.snapshotFns()
	m.mu.Unlock()

	fire(fns, Snapshot{})
}

// UpdateShop shallow-merges partial into the current profile and persists
// the merge. The token is unchanged. Without an active session this is a
// no-op.
func (m *ShopManager) UpdateShop(partial session.Profile) {
	m.mu.Lock()
	if !m.cur.Active() {
		m.mu.Unlock()
		return
	}
	m.cur.Profile = m.cur.Profile.Merge(partial)
	if err := m.store.Save(credstore.Shop, m.cur); err != nil {
		log.Warn().Err(err).Msg("shop profile update not persisted")
	}
	fns := m.subs.snapshotFns()
	snap := Snapshot{Session: m.cur, LoggedIn: true}
	m.mu.Unlock()

	fire(fns, snap)
}

// OnChange subscribes fn to every session transition.
func (m *ShopManager) OnChange(fn func(Snapshot)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs.add(fn)
}

// refreshProfile verifies token by fetching the shop profile. Success merges
// the fetched fields into the session; failure of any kind demotes to logged
// out. Responses whose epoch is no longer current are discarded.
func (m *ShopManager) refreshProfile(epoch uint64, token string) {
	profile, err := m.backend.ShopProfile(context.Background(), token)

	m.mu.Lock()
	if m.epoch != epoch {
		m.mu.Unlock()
		return
	}
	if err != nil {
		log.Info().Err(err).Msg("shop profile verification failed, logging out")
		m.cur = session.Session{}
		if cerr := m.store.Clear(credstore.Shop); cerr != nil {
			log.Warn().Err(cerr).Msg("shop session not cleared from store")
		}
		fns := m.subs.snapshotFns()
		m.mu.Unlock()
		fire(fns, Snapshot{})
		return
	}
	m.cur.Profile = m.cur.Profile.Merge(profile)
	if serr := m.store.Save(credstore.Shop, m.cur); serr != nil {
		log.Warn().Err(serr).Msg("refreshed shop profile not persisted")
	}
	fns := m.subs.snapshotFns()
	snap := Snapshot{Session: m.cur, LoggedIn: true}
	m.mu.Unlock()
	fire(fns, snap)
}
