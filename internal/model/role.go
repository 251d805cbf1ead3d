package model

// Role of a signed-in administrator account.
type Role string

const (
	// Full-capability administrator ; bypasses permission checks entirely
	RoleAdmin Role = "Admin"
	// Restricted administrator ; capabilities gated by granted permission tags
	RoleChildAdmin Role = "Child_Admin"
)

func (e Role) Valid() bool {
	switch e {
	case RoleAdmin, RoleChildAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether [e] implicitly has ALL capabilities.
func (e Role) IsAdmin() bool {
	return e == RoleAdmin
}

func (e Role) String() string {
	return string(e)
}
