// Package timeparse converts the 12-hour clock strings used on the wire
// ("10:00 AM") into comparable minute-of-day values.
package timeparse

import (
	"errors"
	"regexp"
	"strconv"
)

var ErrInvalidTime = errors.New("invalid time format, expected H:MM AM/PM")

var clockRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2}) ([AP]M)$`)

// Minutes parses a 12-hour clock string into minutes since midnight.
// "12:00 AM" maps to 0 and "12:00 PM" to 720. Hours outside [1,12] or
// minutes outside [0,59] are rejected.
func Minutes(s string) (int, error) {
	m := clockRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, ErrInvalidTime
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return 0, ErrInvalidTime
	}

	minute, err := strconv.Atoi(m[2])
	if err != nil || minute > 59 {
		return 0, ErrInvalidTime
	}

	if m[3] == "PM" && hour != 12 {
		hour += 12
	}
	if m[3] == "AM" && hour == 12 {
		hour = 0
	}

	return hour*60 + minute, nil
}
