package i18n

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/diegoclair/prayer-times-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := New(domain.DefaultLanguage)
	require.NoError(t, err)
	return tr
}

func TestTranslator_Localize(t *testing.T) {
	tr := newTestTranslator(t)

	tests := []struct {
		name string
		lang string
		key  string
		data map[string]any
		want string
	}{
		{
			name: "Should render the default locale",
			lang: domain.LangRussian,
			key:  PrayerKey(domain.Fajr),
			want: "🌙 Фаджр",
		},
		{
			name: "Should render a Crimean Latin message",
			lang: domain.LangCrimeanLatn,
			key:  PrayerKey(domain.Maghrib),
			want: "🌇 Aqşam",
		},
		{
			name: "Should accept legacy language codes",
			lang: "crh_cyr",
			key:  PrayerKey(domain.Isha),
			want: "🌃 Ятсы",
		},
		{
			name: "Should render a Crimean Cyrillic template",
			lang: domain.LangCrimeanCyrl,
			key:  KeyDurationMinutes,
			data: map[string]any{"Minutes": 7},
			want: crhCyrlMessage(t, KeyDurationMinutes, "7"),
		},
		{
			name: "Should substitute template data",
			lang: domain.LangEnglish,
			key:  KeyRamadanDuring,
			data: map[string]any{"Day": 3, "DaysLeft": 27},
			want: "🌙 Ramadan: day 3 (27 days left)",
		},
		{
			name: "Should fall back to the default locale for unknown tags",
			lang: "xx",
			key:  KeyScheduleNotFound,
			want: "❌ Расписание на эту дату не найдено",
		},
		{
			name: "Should fall back to the default locale for empty tags",
			lang: "",
			key:  WeekdayKey(1),
			want: "Понедельник",
		},
		{
			name: "Should echo unknown keys",
			lang: domain.LangEnglish,
			key:  "no_such_key",
			want: "no_such_key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Localize(tt.lang, tt.key, tt.data))
		})
	}
}

// crhCyrlMessage reads a raw Crimean Cyrillic message and fills its single placeholder.
func crhCyrlMessage(t *testing.T, key, value string) string {
	t.Helper()
	content, err := localeFS.ReadFile("locales/active.crh-Cyrl.json")
	require.NoError(t, err)
	var messages map[string]string
	require.NoError(t, json.Unmarshal(content, &messages))
	raw := messages[key]
	require.Contains(t, raw, "{{.Minutes}}")
	return strings.ReplaceAll(raw, "{{.Minutes}}", value)
}

func TestTranslator_Languages(t *testing.T) {
	tr := newTestTranslator(t)
	assert.ElementsMatch(t, domain.SupportedLanguages, tr.Languages())
}

func TestNew_EveryDefaultLanguage(t *testing.T) {
	for _, lang := range append([]string{"crh_cyr", "crh_lat"}, domain.SupportedLanguages...) {
		t.Run(lang, func(t *testing.T) {
			tr, err := New(lang)
			require.NoError(t, err)
			assert.Len(t, tr.Languages(), len(domain.SupportedLanguages))
			assert.NotEqual(t, KeyScheduleTitle, tr.Localize("", KeyScheduleTitle, nil))
		})
	}
}

func TestNew_InvalidDefault(t *testing.T) {
	_, err := New("!!")
	assert.Error(t, err)
}

// TestLocaleIntegrity checks that every locale defines every key of the default locale.
func TestLocaleIntegrity(t *testing.T) {
	readKeys := func(t *testing.T, lang string) map[string]string {
		t.Helper()
		content, err := localeFS.ReadFile("locales/active." + lang + ".json")
		require.NoError(t, err)
		var messages map[string]string
		require.NoError(t, json.Unmarshal(content, &messages))
		return messages
	}

	reference := readKeys(t, domain.DefaultLanguage)

	required := []string{
		KeyScheduleTitle, KeyScheduleNotFound, KeyDateLine, KeyHijriLine,
		KeyHolidayTonight, KeyHolidayTomorrow, KeyRamadanBefore, KeyRamadanDuring,
		KeyOffsetGeneral, KeyOffsetIndividual,
		KeyReminderTitle, KeyReminderTitleSunrise, KeyReminderBody,
		KeyNextTitle, KeyNextTime, KeyNextRemaining, KeyNextUnknown,
		KeyDurationHM, KeyDurationMinutes, KeyFeedTitle,
	}
	for m := 1; m <= 12; m++ {
		required = append(required, MonthKey(m))
	}
	for d := 1; d <= 7; d++ {
		required = append(required, WeekdayKey(d))
	}
	for _, k := range domain.PrayerKeys {
		required = append(required, PrayerKey(k))
	}
	for _, key := range required {
		assert.Contains(t, reference, key, "default locale is missing %s", key)
	}

	for _, lang := range domain.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			messages := readKeys(t, lang)
			for key := range reference {
				assert.NotEmpty(t, messages[key], "locale %s is missing %s", lang, key)
			}
		})
	}
}
