// Package credstore persists one serialized session per portal across
// gateway restarts.
package credstore

import "github.com/shopdesk/portalgate/session"

// Portal selects which portal's credential slot an operation addresses.
// The portals persist under disjoint keys and never interfere.
type Portal string

const (
	Admin Portal = "admin"
	Shop  Portal = "shop"
)

// Store is the durable slot holding at most one session per portal.
type Store interface {
	// Load returns the persisted session for the portal. ok is false when
	// nothing is stored; corrupt data counts as absent and never fails
	// hydration.
	Load(portal Portal) (sess session.Session, ok bool)
	// Save overwrites the portal's slot with the given session.
	Save(portal Portal, sess session.Session) error
	// Clear removes the portal's slot. Clearing an empty slot is not an
	// error.
	Clear(portal Portal) error
}
