package model

import "slices"

// PermissionSet of granted permission-tag strings.
// Unique ; order irrelevant ; JSON wire format is a plain array.
type PermissionSet []string

// Has reports whether [tag] is granted.
func (e PermissionSet) Has(tag string) bool {
	return slices.Contains(e, tag)
}

// Add grants [tags] ; duplicates ignored.
func (e PermissionSet) Add(tags ...string) PermissionSet {
	for _, tag := range tags {
		if tag == "" || e.Has(tag) {
			continue
		}
		e = append(e, tag)
	}
	return e
}

// Remove revokes [tags].
func (e PermissionSet) Remove(tags ...string) PermissionSet {
	return slices.DeleteFunc(e, func(has string) bool {
		return slices.Contains(tags, has)
	})
}

func (e PermissionSet) Clone() PermissionSet {
	return slices.Clone(e)
}

// Equal reports set equality ; order irrelevant.
func (e PermissionSet) Equal(set PermissionSet) bool {
	if len(e) != len(set) {
		return false
	}
	for _, tag := range e {
		if !set.Has(tag) {
			return false
		}
	}
	return true
}
