package calendar

import (
	"testing"
	"time"

	"github.com/diegoclair/prayer-times-bot/internal/domain"
	"github.com/diegoclair/prayer-times-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabular(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want entity.HijriDate
	}{
		{
			name: "Should convert the 2000 new year to Ramadan 1420",
			date: date(2000, time.January, 1),
			want: entity.HijriDate{Day: 24, Month: 9, Year: 1420},
		},
		{
			name: "Should convert the first day of the Hijri era",
			date: time.Date(622, time.July, 19, 0, 0, 0, 0, time.UTC),
			want: entity.HijriDate{Day: 1, Month: 1, Year: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tabular(tt.date))
		})
	}
}

func TestCalendar_Hijri(t *testing.T) {
	cal := New([]entity.HijriOverrideRange{
		{Start: date(2026, time.March, 20), Month: 10, Year: 1447},
		{Start: date(2026, time.February, 19), Month: 9, Year: 1447},
	}, nil, nil)

	tests := []struct {
		name string
		date time.Time
		want entity.HijriDate
	}{
		{
			name: "Should return day one on the range start",
			date: date(2026, time.February, 19),
			want: entity.HijriDate{Day: 1, Month: 9, Year: 1447},
		},
		{
			name: "Should count days since the range start",
			date: date(2026, time.March, 19),
			want: entity.HijriDate{Day: 29, Month: 9, Year: 1447},
		},
		{
			name: "Should switch to the next range on its start date",
			date: date(2026, time.March, 20),
			want: entity.HijriDate{Day: 1, Month: 10, Year: 1447},
		},
		{
			name: "Should ignore the clock and location of the input",
			date: time.Date(2026, time.March, 21, 23, 59, 0, 0, time.FixedZone("MSK", 3*3600)),
			want: entity.HijriDate{Day: 2, Month: 10, Year: 1447},
		},
		{
			name: "Should fall back to arithmetic before all ranges",
			date: date(2000, time.January, 1),
			want: entity.HijriDate{Day: 24, Month: 9, Year: 1420},
		},
		{
			name: "Should fall back to arithmetic past the last range window",
			date: date(2026, time.May, 1),
			want: Tabular(date(2026, time.May, 1)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cal.Hijri(tt.date))
		})
	}
}

func TestDefault_HijriMatchesHolidays(t *testing.T) {
	cal := Default()

	// 27 Rajab, 15 Shaban, 27 Ramadan, 10 Dhu al-Hijja and 10 Muharram fall on the announced observances.
	assert.Equal(t, entity.HijriDate{Day: 27, Month: 7, Year: 1447}, cal.Hijri(date(2026, time.January, 16)))
	assert.Equal(t, entity.HijriDate{Day: 15, Month: 8, Year: 1447}, cal.Hijri(date(2026, time.February, 3)))
	assert.Equal(t, entity.HijriDate{Day: 27, Month: 9, Year: 1447}, cal.Hijri(date(2026, time.March, 17)))
	assert.Equal(t, entity.HijriDate{Day: 10, Month: 12, Year: 1447}, cal.Hijri(date(2026, time.May, 27)))
	assert.Equal(t, entity.HijriDate{Day: 10, Month: 1, Year: 1448}, cal.Hijri(date(2026, time.June, 25)))
}

func TestCalendar_HolidayOn(t *testing.T) {
	cal := Default()

	h := cal.HolidayOn(date(2026, time.March, 20))
	require.NotNil(t, h)
	assert.Equal(t, "Ораза байрамы", h.Name)
	assert.Equal(t, entity.HolidayFeast, h.Category)
	assert.False(t, h.IsNight)

	night := cal.HolidayOn(time.Date(2026, time.March, 17, 18, 0, 0, 0, time.UTC))
	require.NotNil(t, night)
	assert.True(t, night.IsNight)

	assert.Nil(t, cal.HolidayOn(date(2026, time.March, 23)))
	assert.Nil(t, cal.HolidayOn(date(2025, time.March, 20)), "Should not match the same day in another year")
}

func TestCalendar_RamadanCountdown(t *testing.T) {
	cal := Default()

	tests := []struct {
		name string
		date time.Time
		want *entity.RamadanCountdown
	}{
		{
			name: "Should count days until the start",
			date: date(2026, time.January, 1),
			want: &entity.RamadanCountdown{Phase: entity.RamadanBefore, DaysUntil: 49},
		},
		{
			name: "Should report the first day",
			date: date(2026, time.February, 19),
			want: &entity.RamadanCountdown{Phase: entity.RamadanDuring, Day: 1, DaysLeft: 29},
		},
		{
			name: "Should report the last day",
			date: date(2026, time.March, 19),
			want: &entity.RamadanCountdown{Phase: entity.RamadanDuring, Day: 29, DaysLeft: 1},
		},
		{
			name: "Should look ahead to next year after Eid",
			date: date(2026, time.December, 31),
			want: &entity.RamadanCountdown{Phase: entity.RamadanBefore, DaysUntil: 39},
		},
		{
			name: "Should return nil after the last known period",
			date: date(2027, time.March, 10),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cal.RamadanCountdown(tt.date))
		})
	}
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Рамазан", MonthName(domain.HijriCyrillic, 9))
	assert.Equal(t, "Zilhicce", MonthName(domain.HijriLatin, 12))
	assert.Equal(t, "Мухаррем", MonthName("unknown", 1))
	assert.Empty(t, MonthName(domain.HijriLatin, 13))
}
