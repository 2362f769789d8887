package domain

// Weekday indices used by the schedule configuration, 0=Monday..6=Sunday.
const (
	Monday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// WeekdayNames maps weekday indices to their English names.
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// RotationWindowSize is how many upcoming duty weeks are listed in each
// roster notification.
const RotationWindowSize = 8
