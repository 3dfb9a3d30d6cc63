package model

import (
	"strings"
	"time"
)

// Weekdays in the order the default profile and validation report them.
// time.Weekday is the canonical enum; this slice only fixes iteration order.
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// ParseWeekday converts a caller-supplied weekday name ("monday", "MONDAY", ...)
// into a time.Weekday. The match is case-insensitive. Unknown names return an
// *InvalidWeekdayError carrying the offending token.
func ParseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(name, d.String()) {
			return d, nil
		}
	}
	return 0, &InvalidWeekdayError{Name: name}
}
