package service

import "time"

// weekdayIndex converts Go's Sunday-based weekday to the 0=Monday..6=Sunday
// indexing the schedule configuration uses.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// nextTrigger returns the next instant the notification fires: today at
// hour:minute when today is one of the two trigger days and that time has not
// passed yet, otherwise hour:minute on the nearer trigger weekday searched
// forward from tomorrow. Ties go to dayA, which only matters when both days
// are equal. Pure; the caller supplies now.
func nextTrigger(now time.Time, dayA, dayB, hour, minute int) time.Time {
	candidate := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())

	if candidate.After(now) {
		weekday := weekdayIndex(now)
		if weekday == dayA || weekday == dayB {
			return candidate
		}
	}

	candidate = candidate.AddDate(0, 0, 1)
	weekday := weekdayIndex(candidate)
	deltaA := ((dayA-weekday)%7 + 7) % 7
	deltaB := ((dayB-weekday)%7 + 7) % 7

	delta := deltaA
	if deltaB < deltaA {
		delta = deltaB
	}

	return candidate.AddDate(0, 0, delta)
}

// mondayOf returns the Monday of t's calendar week, preserving t's clock time
// and location.
func mondayOf(t time.Time) time.Time {
	return t.AddDate(0, 0, -weekdayIndex(t))
}
