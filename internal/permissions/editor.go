package permissions

import (
	"sort"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

// Editor holds the two-list permission assignment of one child admin.
//
// The tag universe is fixed at load: tags only move between the
// granted and ungranted lists, never appear or vanish. Saving submits
// the granted list alone ; the complement is implied.
type Editor struct {
	granted   model.PermissionSet
	ungranted model.PermissionSet
	// selection marks ; reset after every move
	selected map[string]bool
	// passthrough fields ; submitted back untouched
	menu   model.PermissionSet
	custom model.PermissionSet
}

// NewEditor splits the assignment of [record] into the two lists.
func NewEditor(record *model.ChildAdminPermissions) *Editor {
	e := &Editor{
		selected: make(map[string]bool),
	}
	if record != nil {
		e.granted = record.Granted.Clone()
		e.ungranted = record.Ungranted.Clone()
		e.menu = record.Menu.Clone()
		e.custom = record.Custom.Clone()
	}
	return e
}

// Granted tags ; sorted copy for stable rendering.
func (e *Editor) Granted() []string {
	return sorted(e.granted)
}

// Ungranted tags ; sorted copy for stable rendering.
func (e *Editor) Ungranted() []string {
	return sorted(e.ungranted)
}

// Select toggles the selection mark on [tags].
// Unknown tags are ignored.
func (e *Editor) Select(tags ...string) {
	for _, tag := range tags {
		if e.granted.Has(tag) || e.ungranted.Has(tag) {
			e.selected[tag] = !e.selected[tag]
		}
	}
}

// MoveToGranted moves every selected ungranted tag across ;
// the selection resets afterwards.
func (e *Editor) MoveToGranted() {
	e.move(&e.ungranted, &e.granted)
}

// MoveToUngranted moves every selected granted tag across ;
// the selection resets afterwards.
func (e *Editor) MoveToUngranted() {
	e.move(&e.granted, &e.ungranted)
}

func (e *Editor) move(from, into *model.PermissionSet) {
	for tag, is := range e.selected {
		if is && from.Has(tag) {
			*from = from.Remove(tag)
			*into = into.Add(tag)
		}
	}
	e.selected = make(map[string]bool)
}

// Record assembles the submission state.
// An empty granted list is a valid submission:
// an admin with zero permissions is locked out of all gated menus.
func (e *Editor) Record() model.ChildAdminPermissions {
	return model.ChildAdminPermissions{
		Granted:   e.granted.Clone(),
		Ungranted: e.ungranted.Clone(),
		Menu:      e.menu.Clone(),
		Custom:    e.custom.Clone(),
	}
}

func sorted(src model.PermissionSet) []string {
	out := make([]string, len(src))
	copy(out, src)
	sort.Strings(out)
	return out
}
