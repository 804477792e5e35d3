package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/prayer-times-bot/internal/calendar"
	"github.com/diegoclair/prayer-times-bot/internal/domain"
	"github.com/diegoclair/prayer-times-bot/internal/domain/contract"
	"github.com/diegoclair/prayer-times-bot/internal/domain/entity"
	"github.com/diegoclair/prayer-times-bot/internal/i18n"
	"github.com/diegoclair/prayer-times-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testLocation mirrors the bundled table's UTC+3 without needing tzdata.
var testLocation = time.FixedZone("MSK", 3*60*60)

type allMocks struct {
	mockDataManager   *mocks.MockDataManager
	mockRecipientRepo *mocks.MockRecipientRepo
	mockSlackClient   *mocks.MockSlackClient
	mockTimeTable     *mocks.MockTimeTable
	mockDeliverer     *mocks.MockDeliverer
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	recipientRepo := mocks.NewMockRecipientRepo(ctrl)
	dm.EXPECT().Recipient().Return(recipientRepo).AnyTimes()
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		},
	).AnyTimes()

	m = allMocks{
		mockDataManager:   dm,
		mockRecipientRepo: recipientRepo,
		mockSlackClient:   mocks.NewMockSlackClient(ctrl),
		mockTimeTable:     mocks.NewMockTimeTable(ctrl),
		mockDeliverer:     mocks.NewMockDeliverer(ctrl),
	}

	// validate service creation
	instance := NewInstance(dm, m.mockSlackClient, m.mockTimeTable, newTestTranslator(t), Options{Location: testLocation})
	require.NotNil(t, instance.Settings)
	require.NotNil(t, instance.Schedule)
	require.NotNil(t, instance.Scheduler)

	return
}

// withDays serves the given rows from the mocked time table.
func (m allMocks) withDays(days ...entity.PrayerDay) {
	byDate := make(map[string]entity.PrayerDay, len(days))
	for _, d := range days {
		byDate[d.Date.Format(domain.DateLayout)] = d
	}
	m.mockTimeTable.EXPECT().Lookup(gomock.Any()).DoAndReturn(func(date time.Time) (entity.PrayerDay, bool) {
		day, ok := byDate[date.Format(domain.DateLayout)]
		return day, ok
	}).AnyTimes()
}

func newTestTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.New(domain.DefaultLanguage)
	require.NoError(t, err)
	return tr
}

func newTestSchedule(t *testing.T, m allMocks, clock Clock) *scheduleService {
	t.Helper()
	if clock == nil {
		clock = fixedClock{now: at("2026-03-18 09:00")}
	}
	return newSchedule(m.mockTimeTable, calendar.Default(), newTestTranslator(t), clock, testLocation)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// at parses "YYYY-MM-DD HH:MM" in the test location.
func at(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", value, testLocation)
	if err != nil {
		panic(err)
	}
	return t
}

// prayerDay builds a table row from six "HH:MM" values in canonical order.
func prayerDay(date string, times ...string) entity.PrayerDay {
	d, err := time.ParseInLocation(domain.DateLayout, date, testLocation)
	if err != nil {
		panic(err)
	}
	day := entity.PrayerDay{Date: d, Times: make(map[domain.PrayerKey]entity.ClockTime, len(times))}
	for i, value := range times {
		ct, err := entity.ParseClockTime(value)
		if err != nil {
			panic(err)
		}
		day.Times[domain.PrayerKeys[i]] = ct
	}
	return day
}

func testRecipient() *entity.Recipient {
	return &entity.Recipient{
		ID:             1,
		SlackChannelID: "C123",
		IsActive:       true,
		Language:       domain.LangEnglish,
		HijriStyle:     domain.HijriLatin,
		DigestDay:      domain.DigestToday,
		PrayerOffsets:  map[domain.PrayerKey]int{},
		Reminders:      map[domain.PrayerKey]int{},
	}
}
