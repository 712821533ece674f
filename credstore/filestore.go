package credstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/shopdesk/portalgate/session"
)

// FileStore keeps each portal's session in a JSON file under a state
// directory. Writes go through a temp file and rename so a crash mid-write
// leaves either the old session or the new one, never a torn file.
type FileStore struct {
	dir string
}

// NewFileStore creates the state directory if needed and returns a store
// rooted at it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "[NewFileStore] create state dir")
	}
	return &FileStore{dir: dir}, nil
}

func (fs *FileStore) path(portal Portal) string {
	return filepath.Join(fs.dir, string(portal)+"_session.json")
}

// Load reads the portal's session file. A missing file, unreadable file, or
// malformed content all mean "no session".
func (fs *FileStore) Load(portal Portal) (session.Session, bool) {
	data, err := os.ReadFile(fs.path(portal))
	if err != nil {
		return session.Session{}, false
	}
	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return session.Session{}, false
	}
	if !sess.Active() {
		return session.Session{}, false
	}
	return sess, true
}

// Save serializes the session and atomically replaces the portal's file.
func (fs *FileStore) Save(portal Portal, sess session.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(err, "[FileStore.Save] marshal session")
	}
	tmp := fs.path(portal) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "[FileStore.Save] write temp file")
	}
	if err := os.Rename(tmp, fs.path(portal)); err != nil {
		return errors.Wrap(err, "[FileStore.Save] rename into place")
	}
	return nil
}

// Clear deletes the portal's session file.
func (fs *FileStore) Clear(portal Portal) error {
	err := os.Remove(fs.path(portal))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[FileStore.Clear] remove session file")
	}
	return nil
}

var _ Store = (*FileStore)(nil)
