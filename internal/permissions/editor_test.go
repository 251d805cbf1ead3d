package permissions

import (
	"reflect"
	"sort"
	"testing"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

func testRecord() *model.ChildAdminPermissions {
	return &model.ChildAdminPermissions{
		Granted:   model.PermissionSet{"dashboard", "reports"},
		Ungranted: model.PermissionSet{"feedsInfo", "userProfile", "creatorProfile"},
		Menu:      model.PermissionSet{"dashboard"},
		Custom:    model.PermissionSet{"export"},
	}
}

// universe returns every tag of both lists, sorted.
func universe(e *Editor) []string {
	all := append(e.Granted(), e.Ungranted()...)
	sort.Strings(all)
	return all
}

func TestMovePreservesUniverse(t *testing.T) {
	editor := NewEditor(testRecord())
	before := universe(editor)

	editor.Select("feedsInfo", "userProfile")
	editor.MoveToGranted()

	if got := universe(editor); !reflect.DeepEqual(got, before) {
		t.Errorf("universe changed: %v ; expect %v", got, before)
	}
	want := []string{"dashboard", "feedsInfo", "reports", "userProfile"}
	if got := editor.Granted(); !reflect.DeepEqual(got, want) {
		t.Errorf("granted: %v ; expect %v", got, want)
	}
}

func TestMoveResetsSelection(t *testing.T) {
	editor := NewEditor(testRecord())
	editor.Select("feedsInfo")
	editor.MoveToGranted()

	// stale selection must not travel with the next move
	editor.MoveToUngranted()
	if got := editor.Ungranted(); got[0] == "feedsInfo" && len(got) == 3 {
		t.Errorf("ungranted: %v ; selection leaked across moves", got)
	}
	if !model.PermissionSet(editor.Granted()).Has("feedsInfo") {
		t.Error("granted ; expect feedsInfo kept after empty move")
	}
}

func TestSelectUnknownIgnored(t *testing.T) {
	editor := NewEditor(testRecord())
	editor.Select("no-such-tag")
	editor.MoveToGranted()
	if got := editor.Granted(); len(got) != 2 {
		t.Errorf("granted: %v ; expect unchanged", got)
	}
}

func TestRecord(t *testing.T) {
	editor := NewEditor(testRecord())
	editor.Select("dashboard", "reports")
	editor.MoveToUngranted()

	body := editor.Record()
	if len(body.Granted) != 0 {
		t.Errorf("granted: %v ; empty granted set is a valid submission", body.Granted)
	}
	if len(body.Ungranted) != 5 {
		t.Errorf("ungranted: %v ; expect whole universe", body.Ungranted)
	}
	// passthrough fields travel back untouched
	if !reflect.DeepEqual(body.Menu, model.PermissionSet{"dashboard"}) {
		t.Errorf("menuPermissions: %v ; expect passthrough", body.Menu)
	}
	if !reflect.DeepEqual(body.Custom, model.PermissionSet{"export"}) {
		t.Errorf("customPermissions: %v ; expect passthrough", body.Custom)
	}
}

func TestNewEditorNil(t *testing.T) {
	editor := NewEditor(nil)
	if got := universe(editor); len(got) != 0 {
		t.Errorf("universe: %v ; expect empty", got)
	}
}
