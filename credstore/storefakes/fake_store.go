package storefakes

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/shopdesk/portalgate/credstore"
	"github.com/shopdesk/portalgate/session"
)

var _ credstore.Store = (*FakeStore)(nil)

// FakeStore is an in-memory credential store for tests.
type FakeStore struct {
	lock     sync.RWMutex
	slots    map[credstore.Portal]session.Session
	failures bool

	SaveCalls  int
	ClearCalls int
}

func NewFakeStore() *FakeStore {
	return &FakeStore{slots: make(map[credstore.Portal]session.Session)}
}

// FailWrites makes Save and Clear return errors, simulating unavailable
// storage.
func (fs *FakeStore) FailWrites(fail bool) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.failures = fail
}

// Seed stores a session directly, bypassing the failure toggle.
func (fs *FakeStore) Seed(portal credstore.Portal, sess session.Session) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.slots[portal] = sess
}

func (fs *FakeStore) Load(portal credstore.Portal) (session.Session, bool) {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	sess, ok := fs.slots[portal]
	if !ok || !sess.Active() {
		return session.Session{}, false
	}
	return sess, true
}

func (fs *FakeStore) Save(portal credstore.Portal, sess session.Session) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.SaveCalls++
	if fs.failures {
		return errors.New("store unavailable")
	}
	fs.slots[portal] = sess
	return nil
}

func (fs *FakeStore) Clear(portal credstore.Portal) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.ClearCalls++
	if fs.failures {
		return errors.New("store unavailable")
	}
	delete(fs.slots, portal)
	return nil
}
