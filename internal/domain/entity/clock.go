package entity

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ClockTime is a wall clock time in minutes since midnight, always in [0, 1440).
type ClockTime int

// NewClockTime builds a ClockTime from an hour and minute, wrapping into a single day.
func NewClockTime(hour, minute int) ClockTime {
	return ClockTime(0).Add(hour*60 + minute)
}

// ParseClockTime parses a strict 24h "HH:MM" value. "7:05" is accepted, "24:00" is not.
func ParseClockTime(s string) (ClockTime, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(mm) != 2 || len(hh) == 0 || len(hh) > 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return ClockTime(hour*60 + minute), nil
}

// Add shifts the time by the given minutes using modulo-1440 arithmetic.
func (c ClockTime) Add(minutes int) ClockTime {
	v := (int(c) + minutes) % minutesPerDay
	if v < 0 {
		v += minutesPerDay
	}
	return ClockTime(v)
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}
