package entrylist

import "github.com/dmitrijs2005/classroom/internal/client/models"

// The reducers below are pure: they never modify or alias their inputs.

// Replace returns a copy of loaded, in the same order.
func Replace(loaded []models.Entry) []models.Entry {
	out := make([]models.Entry, len(loaded))
	copy(out, loaded)
	return out
}

// Prepend returns e followed by entries.
func Prepend(entries []models.Entry, e models.Entry) []models.Entry {
	out := make([]models.Entry, 0, len(entries)+1)
	out = append(out, e)
	return append(out, entries...)
}

// Remove drops the first entry whose id equals id.
func Remove(entries []models.Entry, id string) []models.Entry {
	out := make([]models.Entry, 0, len(entries))
	removed := false
	for _, e := range entries {
		if !removed && e.ID == id {
			removed = true
			continue
		}
		out = append(out, e)
	}
	return out
}

// Update replaces the first entry with the given id by e, keeping its
// position. Entries are returned unchanged (as a copy) when the id is absent.
func Update(entries []models.Entry, id string, e models.Entry) []models.Entry {
	out := Replace(entries)
	if i := indexOf(out, id); i >= 0 {
		out[i] = e
	}
	return out
}

func indexOf(entries []models.Entry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
