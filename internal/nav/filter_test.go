package nav

import (
	"reflect"
	"testing"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

func testSession(role model.Role, tags ...string) *model.Session {
	return &model.Session{
		Identity: model.Identity{
			UserName: "test",
			Role:     role,
		},
		Token:       "token",
		Permissions: model.PermissionSet(tags),
	}
}

func titles(items []Item) []string {
	var out []string
	for _, item := range items {
		out = append(out, item.Title)
	}
	return out
}

func TestFilterNoSession(t *testing.T) {
	if got := Filter(Menu(), nil); len(got) != 0 {
		t.Errorf("Filter( <nil> ): %v ; expect empty", titles(got))
	}
}

func TestFilterAdminUnchanged(t *testing.T) {
	full := Menu()
	got := Filter(full, testSession(model.RoleAdmin))
	if !reflect.DeepEqual(got, full) {
		t.Errorf("Filter( Admin ): %v ; expect unchanged tree", titles(got))
	}
}

func TestFilterChildAdmin(t *testing.T) {
	tests := []struct {
		// description of this test case
		name string
		tags []string
		want []string
	}{
		{
			name: "no grants hides every tagged entry",
			tags: nil,
			want: nil,
		},
		{
			name: "leaf grants only",
			tags: []string{"dashboard", "reports"},
			want: []string{"Dashboard", "Reports"},
		},
		{
			name: "group survives with one granted child",
			tags: []string{"userProfile", "userAnalytics"},
			want: []string{"User Profile"},
		},
		{
			name: "granted group with no granted children drops",
			tags: []string{"admin", "userProfile"},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(Menu(), testSession(model.RoleChildAdmin, tt.tags...))
			if !reflect.DeepEqual(titles(got), tt.want) {
				t.Errorf("Filter: %v ; expect %v", titles(got), tt.want)
			}
		})
	}
}

func TestFilterChildrenRecurse(t *testing.T) {
	got := Filter(Menu(), testSession(model.RoleChildAdmin,
		"userProfile", "userDetail", "userAnalytics",
	))
	if len(got) != 1 || got[0].Title != "User Profile" {
		t.Fatalf("Filter: %v ; expect the one surviving group", titles(got))
	}
	want := []string{"User Detail", "User Analytics"}
	if !reflect.DeepEqual(titles(got[0].Items), want) {
		t.Errorf("children: %v ; expect %v", titles(got[0].Items), want)
	}
}

func TestExpandFirst(t *testing.T) {
	items := Filter(Menu(), testSession(model.RoleAdmin))
	items = ExpandFirst(items)
	var expanded []string
	for _, item := range items {
		if item.Expanded {
			expanded = append(expanded, item.Title)
		}
	}
	if !reflect.DeepEqual(expanded, []string{"Admin"}) {
		t.Errorf("expanded: %v ; expect exactly the first group", expanded)
	}
}
