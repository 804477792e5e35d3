package calendar

import (
	"time"

	"github.com/diegoclair/prayer-times-bot/internal/domain/entity"
)

// Tabular converts a Gregorian date with the arithmetic (Kuwaiti) Islamic
// calendar: a 30-year cycle of 12 alternating 30/29-day months with 11 leap years.
func Tabular(d time.Time) entity.HijriDate {
	y, m, day := d.Date()
	jdn := julianDayNumber(y, int(m), day)

	l := jdn - 1948440 + 10632
	n := (l - 1) / 10631
	l = l - 10631*n + 354
	j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
	l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29

	month := (24 * l) / 709
	return entity.HijriDate{
		Day:   l - (709*month)/24,
		Month: month,
		Year:  30*n + j - 30,
	}
}

func julianDayNumber(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}
