package schedule

import "time"

// Resolve returns the entry governing date at the wall-clock time t, or nil
// when the instant is free.
//
// An entry matches when AppliesTo holds and t falls within its half-open
// [StartTime, EndTime) window. When several entries match, precedence picks
// the winner: SCHEDULED_INSTANCE > BLOCKED > AVAILABILITY. Within equal
// precedence the first entry in list order wins; overlapping same-kind
// windows are tolerated, not rejected.
//
// Resolve is total: malformed times or entries degrade to "no match", never
// a panic.
func Resolve(entries []Entry, date time.Time, t string) *Entry {
	t, ok := NormalizeTime(t)
	if !ok {
		return nil
	}

	var match *Entry
	for i := range entries {
		e := &entries[i]
		if !AppliesTo(*e, date) {
			continue
		}
		if !covers(*e, t) {
			continue
		}
		if match == nil || e.Kind.Precedence() > match.Kind.Precedence() {
			match = e
		}
	}
	return match
}

// covers checks t against the entry's [StartTime, EndTime) window. The
// comparison is lexical, which is only sound on zero-padded "HH:MM" — a
// normalization guarantee of the entry model, re-established here for raw
// upstream records that bypassed it.
func covers(e Entry, t string) bool {
	start, ok := NormalizeTime(e.StartTime)
	if !ok {
		return false
	}
	end, ok := NormalizeTime(e.EndTime)
	if !ok {
		return false
	}
	return start <= t && t < end
}
