package model

// ChildAdmin record ; a restricted administrator account
// whose capabilities are the subset of its granted permission tags.
type ChildAdmin struct {
	Id        string `json:"childAdminId"`
	UserName  string `json:"userName"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	AdminType Role   `json:"adminType"`
}

// ChildAdminPermissions ; complementary sets, mutually exclusive,
// union = full permission universe.
type ChildAdminPermissions struct {
	Granted   PermissionSet `json:"grantedPermissions"`
	Ungranted PermissionSet `json:"ungrantedPermissions"`
	// passthrough fields ; edited elsewhere, submitted untouched
	Menu   PermissionSet `json:"menuPermissions,omitempty"`
	Custom PermissionSet `json:"customPermissions,omitempty"`
}

// RegisterAdmin request payload ; POST /auth/admin/register
type RegisterAdmin struct {
	UserName  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	AdminType Role   `json:"adminType"`
}
