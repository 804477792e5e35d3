package calendar

import (
	"time"

	"github.com/diegoclair/prayer-times-bot/internal/domain"
	"github.com/diegoclair/prayer-times-bot/internal/domain/entity"
)

var hijriMonthNames = map[string][]string{
	domain.HijriCyrillic: {
		"Мухаррем", "Сефер", "Ребиу'ль-эвель", "Ребиу'ль-ахыр",
		"Джумазие'ль-эвель", "Джумазие'ль-ахыр", "Реджеб", "Шабан",
		"Рамазан", "Шевваль", "Зилькаде", "Зильхидждже",
	},
	domain.HijriLatin: {
		"Muharrem", "Sefer", "Rebiu'l-evel", "Rebiu'l-ahır",
		"Cumaziye'l-evel", "Cumaziye'l-ahır", "Receb", "Şaban",
		"Ramazan", "Şevval", "Zilkade", "Zilhicce",
	},
}

// Month starts as announced by the regional religious administration.
var hijriOverrides = []entity.HijriOverrideRange{
	{Start: date(2025, time.June, 26), Month: 1, Year: 1447},
	{Start: date(2025, time.July, 26), Month: 2, Year: 1447},
	{Start: date(2025, time.August, 24), Month: 3, Year: 1447},
	{Start: date(2025, time.September, 23), Month: 4, Year: 1447},
	{Start: date(2025, time.October, 23), Month: 5, Year: 1447},
	{Start: date(2025, time.November, 21), Month: 6, Year: 1447},
	{Start: date(2025, time.December, 21), Month: 7, Year: 1447},
	{Start: date(2026, time.January, 20), Month: 8, Year: 1447},
	{Start: date(2026, time.February, 19), Month: 9, Year: 1447},
	{Start: date(2026, time.March, 20), Month: 10, Year: 1447},
	{Start: date(2026, time.April, 18), Month: 11, Year: 1447},
	{Start: date(2026, time.May, 18), Month: 12, Year: 1447},
	{Start: date(2026, time.June, 16), Month: 1, Year: 1448},
	{Start: date(2026, time.July, 16), Month: 2, Year: 1448},
	{Start: date(2026, time.August, 14), Month: 3, Year: 1448},
	{Start: date(2026, time.September, 12), Month: 4, Year: 1448},
	{Start: date(2026, time.October, 12), Month: 5, Year: 1448},
	{Start: date(2026, time.November, 10), Month: 6, Year: 1448},
	{Start: date(2026, time.December, 10), Month: 7, Year: 1448},
	{Start: date(2027, time.January, 9), Month: 8, Year: 1448},
	{Start: date(2027, time.February, 8), Month: 9, Year: 1448},
	{Start: date(2027, time.March, 10), Month: 10, Year: 1448},
}

var holidays = []entity.HolidayEntry{
	{Date: date(2026, time.January, 16), Name: "Мирадж геджеси", Category: entity.HolidayNight, IsNight: true},
	{Date: date(2026, time.February, 3), Name: "Бераат геджеси", Category: entity.HolidayNight, IsNight: true},
	{Date: date(2026, time.February, 19), Name: "Рамазан айынынъ башланувы", Category: entity.HolidayStart},
	{Date: date(2026, time.March, 17), Name: "Къадир геджеси", Category: entity.HolidayNight, IsNight: true},
	{Date: date(2026, time.March, 19), Name: "Ораза байрамынынъ арефеси", Category: entity.HolidayEve},
	{Date: date(2026, time.March, 20), Name: "Ораза байрамы", Category: entity.HolidayFeast},
	{Date: date(2026, time.March, 21), Name: "Ораза байрамы", Category: entity.HolidayFeast},
	{Date: date(2026, time.March, 22), Name: "Ораза байрамы", Category: entity.HolidayFeast},
	{Date: date(2026, time.May, 26), Name: "Арефе куню", Category: entity.HolidayEve},
	{Date: date(2026, time.May, 27), Name: "Къурбан байрамы", Category: entity.HolidayFeast},
	{Date: date(2026, time.May, 28), Name: "Къурбан байрамы", Category: entity.HolidayFeast},
	{Date: date(2026, time.May, 29), Name: "Къурбан байрамы", Category: entity.HolidayFeast},
	{Date: date(2026, time.May, 30), Name: "Къурбан байрамы", Category: entity.HolidayFeast},
	{Date: date(2026, time.June, 16), Name: "Хиджрий йыл башы (1448 с.)", Category: entity.HolidayNewYear},
	{Date: date(2026, time.June, 25), Name: "Ашуре куню", Category: entity.HolidaySpecial},
	{Date: date(2026, time.August, 25), Name: "Мевлид геджеси", Category: entity.HolidayNight, IsNight: true},
	{Date: date(2026, time.December, 10), Name: "Учь айларнынъ башланувы", Category: entity.HolidayStart},
	{Date: date(2026, time.December, 11), Name: "Регъаиб геджеси", Category: entity.HolidayNight, IsNight: true},
}

var ramadanPeriods = []RamadanPeriod{
	{Start: date(2026, time.February, 19), End: date(2026, time.March, 20)},
	{Start: date(2027, time.February, 8), End: date(2027, time.March, 10)},
}
