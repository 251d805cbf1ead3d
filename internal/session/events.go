package session

import (
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

// Event kinds published on [pubsub.TopicSessionUpdated].
const (
	EventLogin   = "login"
	EventLogout  = "logout"
	EventExpired = "expired" // remote rejected the token ; forced logout
)

// Event ; session state transition.
type Event struct {
	Type string `json:"type"`
	// Snapshot after the transition ; nil when signed out
	Role        model.Role          `json:"role,omitempty"`
	Permissions model.PermissionSet `json:"grantedPermissions,omitempty"`
}
