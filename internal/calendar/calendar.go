// Package calendar converts Gregorian dates to the Hijri calendar and looks
// up the religious observances attached to them.
package calendar

import (
	"sort"
	"time"

	"github.com/diegoclair/prayer-times-bot/internal/domain"
	"github.com/diegoclair/prayer-times-bot/internal/domain/entity"
)

// maxMonthDays bounds how far the last override range reaches.
const maxMonthDays = 30

// RamadanPeriod spans from the first fast day until the first day of Eid, exclusive.
type RamadanPeriod struct {
	Start time.Time
	End   time.Time
}

type Calendar struct {
	overrides []entity.HijriOverrideRange
	holidays  map[string]entity.HolidayEntry
	ramadan   []RamadanPeriod
}

// New builds a Calendar from reference data. Inputs are copied and sorted.
func New(overrides []entity.HijriOverrideRange, holidays []entity.HolidayEntry, ramadan []RamadanPeriod) *Calendar {
	c := &Calendar{
		overrides: make([]entity.HijriOverrideRange, len(overrides)),
		holidays:  make(map[string]entity.HolidayEntry, len(holidays)),
		ramadan:   make([]RamadanPeriod, len(ramadan)),
	}

	copy(c.overrides, overrides)
	for i := range c.overrides {
		c.overrides[i].Start = civil(c.overrides[i].Start)
	}
	sort.Slice(c.overrides, func(i, j int) bool {
		return c.overrides[i].Start.Before(c.overrides[j].Start)
	})

	for _, h := range holidays {
		h.Date = civil(h.Date)
		c.holidays[key(h.Date)] = h
	}

	for i, p := range ramadan {
		c.ramadan[i] = RamadanPeriod{Start: civil(p.Start), End: civil(p.End)}
	}
	sort.Slice(c.ramadan, func(i, j int) bool {
		return c.ramadan[i].Start.Before(c.ramadan[j].Start)
	})

	return c
}

// Default returns a Calendar loaded with the bundled reference tables.
func Default() *Calendar {
	return New(hijriOverrides, holidays, ramadanPeriods)
}

// Hijri returns the Hijri date for d. Announced override ranges win over the
// arithmetic conversion.
func (c *Calendar) Hijri(d time.Time) entity.HijriDate {
	day := civil(d)

	idx := sort.Search(len(c.overrides), func(i int) bool {
		return c.overrides[i].Start.After(day)
	}) - 1

	if idx >= 0 {
		r := c.overrides[idx]
		offset := daysBetween(r.Start, day)
		last := idx == len(c.overrides)-1
		if !last || offset < maxMonthDays {
			return entity.HijriDate{Day: offset + 1, Month: r.Month, Year: r.Year}
		}
	}

	return Tabular(day)
}

// HolidayOn returns the observance stated for d, if any.
func (c *Calendar) HolidayOn(d time.Time) *entity.HolidayEntry {
	h, ok := c.holidays[key(civil(d))]
	if !ok {
		return nil
	}
	return &h
}

// RamadanCountdown reports the position of d relative to the next Ramadan
// that has not ended yet.
func (c *Calendar) RamadanCountdown(d time.Time) *entity.RamadanCountdown {
	day := civil(d)
	for _, p := range c.ramadan {
		if !day.Before(p.End) {
			continue
		}
		if day.Before(p.Start) {
			return &entity.RamadanCountdown{
				Phase:     entity.RamadanBefore,
				DaysUntil: daysBetween(day, p.Start),
			}
		}
		return &entity.RamadanCountdown{
			Phase:    entity.RamadanDuring,
			Day:      daysBetween(p.Start, day) + 1,
			DaysLeft: daysBetween(day, p.End),
		}
	}
	return nil
}

// MonthName returns the Hijri month name in the given display style.
// Unknown styles use the Cyrillic names.
func MonthName(style string, month int) string {
	names, ok := hijriMonthNames[style]
	if !ok {
		names = hijriMonthNames[domain.HijriCyrillic]
	}
	if month < 1 || month > len(names) {
		return ""
	}
	return names[month-1]
}

// civil drops the clock and location of t, keeping its calendar date.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func key(t time.Time) string {
	return t.Format(domain.DateLayout)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
