package schedule

// Upsert returns a new list with e replacing the entry sharing its ID, or
// appended when no entry carries that ID. The input list is never mutated so
// callers get a clean before/after pair for undo or memoized re-renders.
// Duplicate IDs already present in the input collapse onto the upserted
// entry, restoring the uniqueness invariant.
func Upsert(entries []Entry, e Entry) []Entry {
	e.Clean()

	out := make([]Entry, 0, len(entries)+1)
	var replaced bool
	for _, cur := range entries {
		if cur.ID == e.ID {
			if !replaced {
				out = append(out, e)
				replaced = true
			}
			continue
		}
		out = append(out, cur)
	}
	if !replaced {
		out = append(out, e)
	}
	return out
}

// Remove returns a new list without the entry carrying id. Removing an
// unknown id is a no-op, not an error.
func Remove(entries []Entry, id string) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, cur := range entries {
		if cur.ID != id {
			out = append(out, cur)
		}
	}
	return out
}
