package store

import (
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

// SessionStore ; persisted session record (single global slot).
//
// The session service is the only intended writer.
type SessionStore interface {
	// Load reads and deserializes the persisted session record.
	// Missing -or- malformed value is treated as absent: (nil, nil).
	// Fails open to "logged out" ; no schema versioning is performed.
	Load() (*model.Session, error)
	// Save serializes and writes the session record under the fixed key.
	Save(session *model.Session) error
	// Clear removes the persisted record ; idempotent.
	Clear() error
}
