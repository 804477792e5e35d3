package domain

import "strings"

// PrayerKey identifies one of the six daily time points in the table.
type PrayerKey string

const (
	Fajr    PrayerKey = "fajr"
	Sunrise PrayerKey = "sunrise"
	Dhuhr   PrayerKey = "dhuhr"
	Asr     PrayerKey = "asr"
	Maghrib PrayerKey = "maghrib"
	Isha    PrayerKey = "isha"
)

// PrayerKeys lists the prayer keys in canonical chronological order.
var PrayerKeys = []PrayerKey{Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha}

// ParsePrayerKey returns the key matching s and whether it is known.
func ParsePrayerKey(s string) (PrayerKey, bool) {
	for _, k := range PrayerKeys {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Offset bounds, in minutes, accepted for general and per-prayer offsets.
const (
	MinOffset = -120
	MaxOffset = 120
)

// ClampOffset clips an offset into [MinOffset, MaxOffset].
func ClampOffset(minutes int) int {
	return min(max(minutes, MinOffset), MaxOffset)
}

// MaxReminderMinutes bounds how long before a prayer a reminder may fire.
const MaxReminderMinutes = 120

// Digest day choices.
const (
	DigestToday    = "today"
	DigestTomorrow = "tomorrow"
)

// Hijri display styles.
const (
	HijriCyrillic = "cyrillic"
	HijriLatin    = "latin"
)

// Supported language tags. The first one is the default.
const (
	LangRussian       = "ru"
	LangCrimeanCyrl   = "crh-Cyrl"
	LangCrimeanLatn   = "crh-Latn"
	LangEnglish       = "en"
	DefaultLanguage   = LangRussian
	DefaultHijriStyle = HijriCyrillic
)

var SupportedLanguages = []string{LangRussian, LangCrimeanCyrl, LangCrimeanLatn, LangEnglish}

// ParseLanguage matches s against the supported tags, case-insensitively and
// accepting the legacy crh_cyr / crh_lat codes.
func ParseLanguage(s string) (string, bool) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "crh_cyr":
		return LangCrimeanCyrl, true
	case "crh_lat":
		return LangCrimeanLatn, true
	}
	s = strings.ReplaceAll(s, "_", "-")
	for _, lang := range SupportedLanguages {
		if strings.EqualFold(lang, s) {
			return lang, true
		}
	}
	return "", false
}

// DateLayout is the layout of calendar dates in the time table and in commands.
const DateLayout = "2006-01-02"

// ClockLayout is the layout of wall clock times.
const ClockLayout = "15:04"

// DefaultTimezone is the operating timezone of the bundled time table.
const DefaultTimezone = "Europe/Simferopol"
