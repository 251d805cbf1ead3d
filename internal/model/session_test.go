package model

import "testing"

func TestSessionVerify(t *testing.T) {
	tests := []struct {
		name string // description of this test case
		data *Session
		ok   bool
	}{
		{
			name: "nil session",
			data: nil,
		},
		{
			name: "no token",
			data: &Session{Identity: Identity{Role: RoleAdmin}},
		},
		{
			name: "unknown role",
			data: &Session{Token: "abc123", Identity: Identity{Role: "SuperAdmin"}},
		},
		{
			name: "admin",
			data: &Session{Token: "abc123", Identity: Identity{Role: RoleAdmin}},
			ok:   true,
		},
		{
			name: "child admin",
			data: &Session{Token: "abc123", Identity: Identity{Role: RoleChildAdmin}},
			ok:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Verify()
			if (err == nil) != tt.ok {
				t.Errorf("Verify() = %v, ok = %v", err, tt.ok)
			}
		})
	}
}

func TestSessionHasPermission(t *testing.T) {
	var none *Session
	if none.HasPermission("dashboard") {
		t.Error("nil session must grant nothing")
	}

	admin := &Session{Token: "x", Identity: Identity{Role: RoleAdmin}}
	if !admin.HasPermission("anything-at-all") {
		t.Error("Admin role bypasses permission checks")
	}

	child := &Session{
		Token:       "x",
		Identity:    Identity{Role: RoleChildAdmin},
		Permissions: PermissionSet{"dashboard"},
	}
	if !child.HasPermission("dashboard") {
		t.Error("granted tag refused")
	}
	if child.HasPermission("reports") {
		t.Error("ungranted tag allowed")
	}
}

func TestPermissionSet(t *testing.T) {
	set := PermissionSet{}
	set = set.Add("a", "b", "a", "") // duplicates and blanks ignored
	if len(set) != 2 {
		t.Fatalf("Add: %v ; expect 2 unique tags", set)
	}
	set = set.Remove("a")
	if set.Has("a") || !set.Has("b") {
		t.Errorf("Remove: %v", set)
	}
	if !set.Equal(PermissionSet{"b"}) {
		t.Errorf("Equal: %v", set)
	}
	if (PermissionSet{"a", "b"}).Equal(PermissionSet{"a", "c"}) {
		t.Error("Equal ; differing sets read equal")
	}
	clone := set.Clone()
	clone = clone.Add("c")
	if set.Has("c") {
		t.Error("Clone ; shared backing array mutated the source")
	}
}
