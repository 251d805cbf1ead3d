package model

import (
	"time"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/errors"
)

// Identity of the signed-in administrator.
type Identity struct {
	// Display (user) name
	UserName string `json:"userName"`
	// Sign-in email address
	Email string `json:"email"`
	// Account role ; {Admin | Child_Admin}
	Role Role `json:"role"`
}

// Session. Authorization
//
// The persisted bundle of identity, bearer token
// and granted permissions for the signed-in admin.
type Session struct {
	// Authenticated admin identity
	Identity Identity `json:"identity"`
	// Opaque [bearer] credential ; REQUIRED for all authenticated calls
	Token string `json:"token"`
	// Permission tags granted ; empty for role=Admin (implicitly has all)
	Permissions PermissionSet `json:"grantedPermissions"`
	// When was the session created
	Date time.Time `json:"date"`
}

// Indicates ANY session claims violation
var ErrSessionInvalid = errors.Unauthorized(
	errors.Message("console: session is invalid"),
)

// Verify the session record invariants:
// a non-empty token always carries a valid role.
func (e *Session) Verify() error {
	// assigned ?
	if e == nil || e.Token == "" {
		return ErrSessionInvalid
	}
	if !e.Identity.Role.Valid() {
		return ErrSessionInvalid
	}
	// [ OK ]
	return nil
}

// Role shorthand ; blank if no session.
func (e *Session) Role() Role {
	if e == nil {
		return ""
	}
	return e.Identity.Role
}

// HasPermission reports whether the session may use the capability [tag].
// Admin role bypasses permission checks entirely.
func (e *Session) HasPermission(tag string) bool {
	if e == nil {
		return false
	}
	if e.Identity.Role.IsAdmin() {
		return true
	}
	return e.Permissions.Has(tag)
}
