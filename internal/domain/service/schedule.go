package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/prayer-times-bot/internal/calendar"
	"github.com/diegoclair/prayer-times-bot/internal/domain"
	"github.com/diegoclair/prayer-times-bot/internal/domain/contract"
	"github.com/diegoclair/prayer-times-bot/internal/domain/entity"
	"github.com/diegoclair/prayer-times-bot/internal/i18n"
	"github.com/emersion/go-ical"
)

const (
	ramadanCountdownDays = 60
	separator            = "━━━━━━━━━━━━━━━━━━━━"
	feedProductID        = "-//diegoclair//prayer-times-bot//EN"
	feedEventDuration    = 15 * time.Minute
)

type scheduleService struct {
	table    contract.TimeTable
	calendar *calendar.Calendar
	tr       contract.Localizer
	clock    Clock
	loc      *time.Location
}

func newSchedule(table contract.TimeTable, cal *calendar.Calendar, tr contract.Localizer, clock Clock, loc *time.Location) *scheduleService {
	return &scheduleService{
		table:    table,
		calendar: cal,
		tr:       tr,
		clock:    clock,
		loc:      loc,
	}
}

// Now returns the current time in the operating timezone.
func (s *scheduleService) Now() time.Time {
	return s.clock.Now().In(s.loc)
}

func (s *scheduleService) Reload(ctx context.Context) error {
	return s.table.Reload(ctx)
}

// AdjustedTimes applies the general and per-prayer offsets to the table row for date.
// Offsets outside the accepted range are clipped, and results wrap within the day.
func (s *scheduleService) AdjustedTimes(date time.Time, generalOffset int, prayerOffsets map[domain.PrayerKey]int) (map[domain.PrayerKey]entity.ClockTime, bool) {
	day, ok := s.table.Lookup(date)
	if !ok {
		return nil, false
	}

	general := domain.ClampOffset(generalOffset)
	times := make(map[domain.PrayerKey]entity.ClockTime, len(domain.PrayerKeys))
	for _, key := range domain.PrayerKeys {
		times[key] = day.Times[key].Add(general + domain.ClampOffset(prayerOffsets[key]))
	}
	return times, true
}

// Schedule builds the annotated schedule of date for a recipient.
func (s *scheduleService) Schedule(date time.Time, r *entity.Recipient) (*entity.AdjustedSchedule, bool) {
	times, ok := s.AdjustedTimes(date, r.GeneralOffset, r.PrayerOffsets)
	if !ok {
		return nil, false
	}

	offsets := make(map[domain.PrayerKey]int, len(domain.PrayerKeys))
	for _, key := range domain.PrayerKeys {
		offsets[key] = r.EffectiveOffset(key)
	}

	return &entity.AdjustedSchedule{
		Date:            date,
		Times:           times,
		Offsets:         offsets,
		Hijri:           s.calendar.Hijri(date),
		Holiday:         s.calendar.HolidayOn(date),
		TomorrowHoliday: s.calendar.HolidayOn(date.AddDate(0, 0, 1)),
		Ramadan:         s.calendar.RamadanCountdown(date),
	}, true
}

// FormatSchedule renders the schedule of date as Slack mrkdwn. A date missing
// from the table renders the localized not found message.
func (s *scheduleService) FormatSchedule(date time.Time, r *entity.Recipient) string {
	lang := r.Language

	sched, ok := s.Schedule(date, r)
	if !ok {
		return s.tr.Localize(lang, i18n.KeyScheduleNotFound, nil)
	}

	var b strings.Builder
	b.WriteString(s.tr.Localize(lang, i18n.KeyScheduleTitle, nil))
	b.WriteString("\n")

	if r.ShowLocation && r.LocationName != "" {
		fmt.Fprintf(&b, "📍 %s\n", r.LocationName)
	}

	fmt.Fprintf(&b, "📅 %s (%s)\n", s.formatDate(lang, date), s.weekdayName(lang, date))

	if r.ShowHijri {
		fmt.Fprintf(&b, "🗓 %s\n", s.formatHijri(lang, r.HijriStyle, sched.Hijri))
	}

	b.WriteString(separator)
	b.WriteString("\n")

	for _, key := range r.Prayers() {
		fmt.Fprintf(&b, "%s — *%s*", s.prayerName(lang, key), sched.Times[key])
		if individual := r.IndividualOffset(key); individual != 0 {
			fmt.Fprintf(&b, " _(%+d)_", individual)
		}
		b.WriteString("\n")
	}

	if r.ShowHolidays {
		s.writeObservances(&b, lang, sched)
	}

	general := domain.ClampOffset(r.GeneralOffset)
	individual := r.HasIndividualOffsets()
	if general != 0 || individual {
		b.WriteString("\n")
		if general != 0 {
			b.WriteString(s.tr.Localize(lang, i18n.KeyOffsetGeneral, map[string]any{"Offset": fmt.Sprintf("%+d", general)}))
			b.WriteString("\n")
		}
		if individual {
			b.WriteString(s.tr.Localize(lang, i18n.KeyOffsetIndividual, nil))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func (s *scheduleService) writeObservances(b *strings.Builder, lang string, sched *entity.AdjustedSchedule) {
	if h := sched.Holiday; h != nil {
		emoji := "📿"
		switch {
		case h.Category == entity.HolidayFeast:
			emoji = "🌟"
		case h.IsNight:
			emoji = "✨"
		}
		fmt.Fprintf(b, "\n%s *%s*", emoji, h.Name)
		if h.IsNight {
			b.WriteString(s.nightRange(lang, sched.Date.AddDate(0, 0, -1), sched.Date))
		}
		b.WriteString("\n")
	}

	if h := sched.TomorrowHoliday; h != nil {
		b.WriteString("\n")
		if h.IsNight {
			b.WriteString(s.tr.Localize(lang, i18n.KeyHolidayTonight, map[string]any{
				"Name":  h.Name,
				"Range": s.nightRange(lang, sched.Date, sched.Date.AddDate(0, 0, 1)),
			}))
		} else {
			b.WriteString(s.tr.Localize(lang, i18n.KeyHolidayTomorrow, map[string]any{"Name": h.Name}))
		}
		b.WriteString("\n")
	}

	if rc := sched.Ramadan; rc != nil {
		switch {
		case rc.Phase == entity.RamadanDuring:
			b.WriteString("\n")
			b.WriteString(s.tr.Localize(lang, i18n.KeyRamadanDuring, map[string]any{"Day": rc.Day, "DaysLeft": rc.DaysLeft}))
			b.WriteString("\n")
		case rc.DaysUntil <= ramadanCountdownDays:
			b.WriteString("\n")
			b.WriteString(s.tr.Localize(lang, i18n.KeyRamadanBefore, map[string]any{"Days": rc.DaysUntil}))
			b.WriteString("\n")
		}
	}
}

// nightRange renders the evening and morning dates a night observance spans.
func (s *scheduleService) nightRange(lang string, evening, morning time.Time) string {
	if evening.Month() == morning.Month() {
		return fmt.Sprintf(" (%d-%d)", evening.Day(), morning.Day())
	}
	return fmt.Sprintf(" (%d %s - %d %s)",
		evening.Day(), s.monthName(lang, evening.Month()),
		morning.Day(), s.monthName(lang, morning.Month()))
}

// FormatReminder renders the message sent minutesBefore the given prayer.
func (s *scheduleService) FormatReminder(r *entity.Recipient, key domain.PrayerKey, at entity.ClockTime, minutesBefore int) string {
	lang := r.Language

	titleKey := i18n.KeyReminderTitle
	if key == domain.Sunrise {
		titleKey = i18n.KeyReminderTitleSunrise
	}

	return fmt.Sprintf("%s\n\n%s\n%s — *%s*",
		s.tr.Localize(lang, titleKey, nil),
		s.tr.Localize(lang, i18n.KeyReminderBody, map[string]any{"Minutes": minutesBefore}),
		s.prayerName(lang, key),
		at,
	)
}

// NextPrayer returns the first of today's adjusted prayers strictly after now,
// at minute granularity, or tomorrow's fajr once all of them have passed.
func (s *scheduleService) NextPrayer(now time.Time, r *entity.Recipient) (*entity.NextPrayer, bool) {
	today := now
	times, ok := s.AdjustedTimes(today, r.GeneralOffset, r.PrayerOffsets)
	if !ok {
		return nil, false
	}

	current := entity.NewClockTime(now.Hour(), now.Minute())
	for _, key := range domain.PrayerKeys {
		if times[key] > current {
			return &entity.NextPrayer{Key: key, Time: times[key], Date: dateOf(today)}, true
		}
	}

	tomorrow := today.AddDate(0, 0, 1)
	times, ok = s.AdjustedTimes(tomorrow, r.GeneralOffset, r.PrayerOffsets)
	if !ok {
		return nil, false
	}

	first := domain.PrayerKeys[0]
	return &entity.NextPrayer{Key: first, Time: times[first], Date: dateOf(tomorrow)}, true
}

func (s *scheduleService) FormatNextPrayer(now time.Time, r *entity.Recipient) string {
	lang := r.Language

	next, ok := s.NextPrayer(now, r)
	if !ok {
		return s.tr.Localize(lang, i18n.KeyNextUnknown, nil)
	}

	at := time.Date(next.Date.Year(), next.Date.Month(), next.Date.Day(), next.Time.Hour(), next.Time.Minute(), 0, 0, now.Location())
	remaining := max(at.Sub(now), 0)
	hours := int(remaining.Hours())
	minutes := int(remaining.Minutes()) % 60

	var left string
	if hours > 0 {
		left = s.tr.Localize(lang, i18n.KeyDurationHM, map[string]any{"Hours": hours, "Minutes": minutes})
	} else {
		left = s.tr.Localize(lang, i18n.KeyDurationMinutes, map[string]any{"Minutes": minutes})
	}

	return fmt.Sprintf("%s\n\n%s\n%s\n%s",
		s.tr.Localize(lang, i18n.KeyNextTitle, nil),
		s.prayerName(lang, next.Key),
		s.tr.Localize(lang, i18n.KeyNextTime, map[string]any{"Time": next.Time.String()}),
		s.tr.Localize(lang, i18n.KeyNextRemaining, map[string]any{"Remaining": left}),
	)
}

// CalendarFeed exports the recipient's enabled prayers for days days starting at from as iCalendar.
func (s *scheduleService) CalendarFeed(from time.Time, days int, r *entity.Recipient) ([]byte, error) {
	lang := r.Language

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, feedProductID)
	setExtendedText(cal.Component, "X-WR-CALNAME", s.tr.Localize(lang, i18n.KeyFeedTitle, nil))

	stamp := s.clock.Now().UTC()
	for i := range days {
		date := from.AddDate(0, 0, i)
		times, ok := s.AdjustedTimes(date, r.GeneralOffset, r.PrayerOffsets)
		if !ok {
			continue
		}

		for _, key := range r.Prayers() {
			at := time.Date(date.Year(), date.Month(), date.Day(), times[key].Hour(), times[key].Minute(), 0, 0, s.loc)

			event := ical.NewEvent()
			event.Props.SetText(ical.PropUID, fmt.Sprintf("%s-%s-%s@prayer-times-bot", r.SlackChannelID, date.Format(domain.DateLayout), key))
			event.Props.SetText(ical.PropSummary, s.prayerName(lang, key))
			setDateTime(event.Component, ical.PropDateTimeStamp, stamp)
			setDateTime(event.Component, ical.PropDateTimeStart, at.UTC())
			setDateTime(event.Component, ical.PropDateTimeEnd, at.Add(feedEventDuration).UTC())
			if r.LocationName != "" {
				event.Props.SetText(ical.PropLocation, r.LocationName)
			}
			if minutes := r.Reminders[key]; minutes > 0 {
				addAlarm(event, minutes, s.prayerName(lang, key))
			}
			cal.Children = append(cal.Children, event.Component)
		}
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

func setDateTime(c *ical.Component, name string, t time.Time) {
	prop := ical.NewProp(name)
	prop.SetDateTime(t)
	c.Props.Set(prop)
}

var icalTextEscaper = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)

// setExtendedText sets an X- property without the VALUE=TEXT parameter SetText adds for unknown names.
func setExtendedText(c *ical.Component, name, text string) {
	prop := ical.NewProp(name)
	prop.Value = icalTextEscaper.Replace(text)
	c.Props.Set(prop)
}

// addAlarm attaches a DISPLAY alarm firing minutes before the event start.
func addAlarm(event *ical.Event, minutes int, description string) {
	alarm := ical.NewComponent(ical.CompAlarm)
	alarm.Props.SetText(ical.PropAction, "DISPLAY")
	alarm.Props.SetText(ical.PropDescription, description)

	// Raw value keeps the trigger a DURATION instead of TEXT.
	trigger := ical.NewProp(ical.PropTrigger)
	trigger.Value = fmt.Sprintf("-PT%dM", minutes)
	alarm.Props.Set(trigger)

	event.Children = append(event.Children, alarm)
}

func (s *scheduleService) prayerName(lang string, key domain.PrayerKey) string {
	return s.tr.Localize(lang, i18n.PrayerKey(key), nil)
}

func (s *scheduleService) monthName(lang string, m time.Month) string {
	return s.tr.Localize(lang, i18n.MonthKey(int(m)), nil)
}

func (s *scheduleService) weekdayName(lang string, date time.Time) string {
	wd := int(date.Weekday())
	if wd == 0 { // Sunday = 0 in Go, ISO 8601 uses 7
		wd = 7
	}
	return s.tr.Localize(lang, i18n.WeekdayKey(wd), nil)
}

func (s *scheduleService) formatDate(lang string, date time.Time) string {
	return s.tr.Localize(lang, i18n.KeyDateLine, map[string]any{
		"Day":   date.Day(),
		"Month": s.monthName(lang, date.Month()),
		"Year":  date.Year(),
	})
}

func (s *scheduleService) formatHijri(lang, style string, h entity.HijriDate) string {
	return s.tr.Localize(lang, i18n.KeyHijriLine, map[string]any{
		"Day":   h.Day,
		"Month": calendar.MonthName(style, h.Month),
		"Year":  h.Year,
	})
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
