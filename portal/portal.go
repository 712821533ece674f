// Package portal holds the session managers for the two portals. Each
// manager owns exactly one session: the admin back-office session and the
// shop self-service session live under disjoint credential store slots and
// never interfere.
package portal

import (
	"github.com/shopdesk/portalgate/session"
)

// Snapshot is the current value of a manager's session slot, delivered to
// subscribers on every transition.
type Snapshot struct {
	Session  session.Session
	LoggedIn bool
}

// subscribers is the shared subscription list both managers embed. Callbacks
// run outside the manager lock, so a subscriber may call back into the
// manager.
type subscribers struct {
	fns []func(Snapshot)
}

func (s *subscribers) add(fn func(Snapshot)) {
	s.fns = append(s.fns, fn)
}

func (s *subscribers) snapshotFns() []func(Snapshot) {
	out := make([]func(Snapshot), len(s.fns))
	copy(out, s.fns)
	return out
}

func fire(fns []func(Snapshot), snap Snapshot) {
	for _, fn := range fns {
		fn(snap)
	}
}
