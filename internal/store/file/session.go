package file

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/store"
)

// SessionStore ; one JSON blob on local disk.
type SessionStore struct {
	logger *slog.Logger
	path   string
}

var _ store.SessionStore = (*SessionStore)(nil)

func NewSessionStore(logger *slog.Logger, path string) *SessionStore {
	return &SessionStore{
		logger: logger,
		path:   path,
	}
}

func (c *SessionStore) Load() (*model.Session, error) {

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			// absent ; logged out
			return nil, nil
		}
		return nil, err
	}

	session := new(model.Session)
	if err = json.Unmarshal(data, session); err != nil {
		// malformed stored value ; treat as absent
		c.logger.Warn("session: malformed persisted record ; dropped",
			slog.String("file", c.path),
			slog.Any("error", err),
		)
		return nil, nil
	}
	if err = session.Verify(); err != nil {
		// persisted record violates invariants ; treat as absent
		return nil, nil
	}

	return session, nil
}

func (c *SessionStore) Save(session *model.Session) error {

	if err := session.Verify(); err != nil {
		return err
	}

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	// write aside, then rename ; no partial blob on crash
	temp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return err
	}
	name := temp.Name()
	if _, err = temp.Write(data); err != nil {
		temp.Close()
		os.Remove(name)
		return err
	}
	if err = temp.Chmod(0o600); err != nil {
		temp.Close()
		os.Remove(name)
		return err
	}
	if err = temp.Close(); err != nil {
		os.Remove(name)
		return err
	}

	return os.Rename(name, c.path)
}

func (c *SessionStore) Clear() error {
	err := os.Remove(c.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	// no error on double-clear
	return nil
}
