package utils

import "time"

// SameCalendarDay reports whether two instants fall on the same calendar day
// in the given location. Clock distance is irrelevant: 00:00:01 and 23:59:59
// of the same day both match, the neighboring day never does.
func SameCalendarDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
