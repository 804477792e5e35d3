package i18n

import (
	"fmt"

	"github.com/diegoclair/prayer-times-bot/internal/domain"
)

// Message keys shared by all locale files.
const (
	KeyScheduleTitle    = "schedule_title"
	KeyScheduleNotFound = "schedule_not_found"
	KeyDateLine         = "date_line"
	KeyHijriLine        = "hijri_line"

	KeyHolidayTonight  = "holiday_tonight"
	KeyHolidayTomorrow = "holiday_tomorrow"
	KeyRamadanBefore   = "ramadan_before"
	KeyRamadanDuring   = "ramadan_during"

	KeyOffsetGeneral    = "offset_general"
	KeyOffsetIndividual = "offset_individual"

	KeyReminderTitle        = "reminder_title"
	KeyReminderTitleSunrise = "reminder_title_sunrise"
	KeyReminderBody         = "reminder_body"

	KeyNextTitle       = "next_title"
	KeyNextTime        = "next_time"
	KeyNextRemaining   = "next_remaining"
	KeyNextUnknown     = "next_unknown"
	KeyDurationHM      = "duration_hm"
	KeyDurationMinutes = "duration_m"

	KeyFeedTitle = "feed_title"
)

// MonthKey returns the key of a Gregorian month name in the genitive case.
func MonthKey(month int) string {
	return fmt.Sprintf("month_%d", month)
}

// WeekdayKey returns the key of an ISO 8601 weekday name (1 = Monday).
func WeekdayKey(isoWeekday int) string {
	return fmt.Sprintf("weekday_%d", isoWeekday)
}

func PrayerKey(key domain.PrayerKey) string {
	return "prayer_" + string(key)
}
