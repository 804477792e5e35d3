package entity

import (
	"time"

	"github.com/diegoclair/prayer-times-bot/internal/domain"
)

// PrayerDay is one row of the base time table, with no offsets applied.
type PrayerDay struct {
	Date  time.Time
	Times map[domain.PrayerKey]ClockTime
}

// HijriDate is a day in the Islamic lunar calendar.
type HijriDate struct {
	Day   int
	Month int
	Year  int
}

type HolidayCategory string

const (
	HolidayFeast   HolidayCategory = "holiday"
	HolidayEve     HolidayCategory = "eve"
	HolidayNight   HolidayCategory = "night"
	HolidayStart   HolidayCategory = "start"
	HolidayNewYear HolidayCategory = "new_year"
	HolidaySpecial HolidayCategory = "special"
)

// HolidayEntry is a religious observance attached to a Gregorian date.
// Night entries belong to the night preceding Date.
type HolidayEntry struct {
	Date     time.Time
	Name     string
	Category HolidayCategory
	IsNight  bool
}

// HijriOverrideRange asserts the Hijri month and year from Start until the next range begins.
type HijriOverrideRange struct {
	Start time.Time
	Month int
	Year  int
}

type RamadanPhase string

const (
	RamadanBefore RamadanPhase = "before"
	RamadanDuring RamadanPhase = "during"
)

type RamadanCountdown struct {
	Phase     RamadanPhase
	DaysUntil int
	Day       int
	DaysLeft  int
}

// AdjustedSchedule is the per-recipient view of a PrayerDay. It is computed on every request.
type AdjustedSchedule struct {
	Date            time.Time
	Times           map[domain.PrayerKey]ClockTime
	Offsets         map[domain.PrayerKey]int
	Hijri           HijriDate
	Holiday         *HolidayEntry
	TomorrowHoliday *HolidayEntry
	Ramadan         *RamadanCountdown
}

// NextPrayer is the next prayer instant found for a recipient.
type NextPrayer struct {
	Key  domain.PrayerKey
	Time ClockTime
	Date time.Time
}

type DeliveryStatus string

const (
	Delivered  DeliveryStatus = "delivered"
	Suppressed DeliveryStatus = "suppressed"
)
