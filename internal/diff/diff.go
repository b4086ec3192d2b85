// Package diff compares the committed addon list against a proposed ordering
// using normalized-key set difference. All functions are pure; nothing is
// cached across snapshots.
package diff

import (
	"addonpair/internal/normalize"
	"addonpair/models"
)

// Compute returns the added/removed summary between current and proposed.
// Added holds the proposed entries whose key is absent from current, in their
// original proposed-list form; duplicates within the proposal count once.
// Removed holds the current entries (display URL) whose key is absent from
// the proposal. Both slices are always non-nil so the wire encoding is
// [] rather than null.
func Compute(current []models.AddonRef, proposed []string) models.Diff {
	currentKeys := make(map[string]struct{}, len(current))
	for _, ref := range current {
		currentKeys[normalize.Key(ref.URL)] = struct{}{}
	}

	proposedKeys := make(map[string]struct{}, len(proposed))
	for _, u := range proposed {
		proposedKeys[normalize.Key(u)] = struct{}{}
	}

	d := models.Diff{Added: []string{}, Removed: []string{}}

	seen := make(map[string]struct{}, len(proposed))
	for _, u := range proposed {
		k := normalize.Key(u)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}

		if _, ok := currentKeys[k]; !ok {
			d.Added = append(d.Added, u)
		}
	}

	for _, ref := range current {
		if _, ok := proposedKeys[normalize.Key(ref.URL)]; !ok {
			d.Removed = append(d.Removed, ref.URL)
		}
	}

	return d
}

// Identical reports whether the proposal is a true no-op: the same key at
// every position as the committed list. An empty diff with Identical false
// means the proposal only reorders existing addons — the confirmation UI
// must present that as an order change, not as "no change".
func Identical(current []models.AddonRef, proposed []string) bool {
	if len(current) != len(proposed) {
		return false
	}

	for i := range current {
		if normalize.Key(current[i].URL) != normalize.Key(proposed[i]) {
			return false
		}
	}

	return true
}
