package nav

import (
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

// Filter returns the subset of [items] the session may see.
//
// Pure mapping: output depends only on (role, permissions, items).
//   - no session -> empty
//   - role=Admin -> items unchanged
//   - otherwise an item survives when its tag is blank -or- granted ;
//     children filter recursively, and a group whose children all
//     dropped is dropped itself
func Filter(items []Item, data *model.Session) []Item {
	if data == nil {
		return nil
	}
	if data.Role().IsAdmin() {
		return items
	}
	var show []Item
	for _, item := range items {
		if item.Tag != "" && !data.Permissions.Has(item.Tag) {
			continue
		}
		if item.Group() {
			item.Items = Filter(item.Items, data)
			if len(item.Items) == 0 {
				continue
			}
		}
		show = append(show, item)
	}
	return show
}

// ExpandFirst marks the first group with surviving children expanded.
// Render convenience ; mutates the given slice in place.
func ExpandFirst(items []Item) []Item {
	for e := range items {
		if items[e].Group() {
			items[e].Expanded = true
			break
		}
	}
	return items
}
