package database

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/prayer-times-bot/internal/domain"
	"github.com/diegoclair/prayer-times-bot/internal/domain/contract"
	"github.com/diegoclair/prayer-times-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecipient(channelID string) *entity.Recipient {
	return &entity.Recipient{
		SlackChannelID:   channelID,
		SlackChannelName: "prayer-times",
		SlackTeamID:      "T123456789",
		IsActive:         true,
		Language:         domain.LangRussian,
		LocationName:     "Симферополь",
		ShowLocation:     true,
		ShowHijri:        true,
		HijriStyle:       domain.HijriCyrillic,
		ShowHolidays:     true,
		DigestDay:        domain.DigestToday,
	}
}

func TestRecipientRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newRecipientRepo(db.conn)

	recipient := newTestRecipient("C123456789")
	err := repo.Create(recipient)
	require.NoError(t, err, "Failed to create recipient")
	assert.NotZero(t, recipient.ID, "Expected recipient ID to be set after creation")

	err = repo.Create(newTestRecipient("C123456789"))
	assert.Error(t, err, "Expected duplicate channel to violate unique constraint")
}

func TestRecipientRepository_GetByChannelID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newRecipientRepo(db.conn)

	recipient := newTestRecipient("C123456789")
	recipient.GeneralOffset = 5
	recipient.PrayerOffsets = map[domain.PrayerKey]int{domain.Fajr: -2}
	recipient.EnabledPrayers = []domain.PrayerKey{domain.Fajr, domain.Maghrib}
	recipient.DailyDigestTime = "07:00"
	recipient.DigestDay = domain.DigestTomorrow
	recipient.Reminders = map[domain.PrayerKey]int{domain.Dhuhr: 10}
	require.NoError(t, repo.Create(recipient))

	got, err := repo.GetByChannelID("C123456789")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, recipient.ID, got.ID)
	assert.Equal(t, "prayer-times", got.SlackChannelName)
	assert.True(t, got.IsActive)
	assert.Equal(t, 5, got.GeneralOffset)
	assert.Equal(t, map[domain.PrayerKey]int{domain.Fajr: -2}, got.PrayerOffsets)
	assert.Equal(t, []domain.PrayerKey{domain.Fajr, domain.Maghrib}, got.EnabledPrayers)
	assert.Equal(t, "07:00", got.DailyDigestTime)
	assert.Equal(t, domain.DigestTomorrow, got.DigestDay)
	assert.Equal(t, map[domain.PrayerKey]int{domain.Dhuhr: 10}, got.Reminders)
	assert.False(t, got.CreatedAt.IsZero())

	missing, err := repo.GetByChannelID("C000000000")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRecipientRepository_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newRecipientRepo(db.conn)

	recipient := newTestRecipient("C123456789")
	recipient.DailyDigestTime = "06:30"
	require.NoError(t, repo.Create(recipient))

	recipient.Language = domain.LangCrimeanLatn
	recipient.HijriStyle = domain.HijriLatin
	recipient.DailyDigestTime = ""
	recipient.ShowHolidays = false
	require.NoError(t, repo.Update(recipient))

	got, err := repo.GetByChannelID("C123456789")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.LangCrimeanLatn, got.Language)
	assert.Equal(t, domain.HijriLatin, got.HijriStyle)
	assert.Empty(t, got.DailyDigestTime, "Expected disabled digest to be stored as NULL")
	assert.False(t, got.ShowHolidays)
}

func TestRecipientRepository_SetActive(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newRecipientRepo(db.conn)
	require.NoError(t, repo.Create(newTestRecipient("C123456789")))

	require.NoError(t, repo.SetActive("C123456789", false))
	got, err := repo.GetByChannelID("C123456789")
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	require.NoError(t, repo.SetActive("C123456789", true))
	got, err = repo.GetByChannelID("C123456789")
	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestRecipientRepository_GetWithDailyDigest(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newRecipientRepo(db.conn)

	withDigest := newTestRecipient("C1")
	withDigest.DailyDigestTime = "07:00"
	require.NoError(t, repo.Create(withDigest))

	withoutDigest := newTestRecipient("C2")
	require.NoError(t, repo.Create(withoutDigest))

	inactive := newTestRecipient("C3")
	inactive.DailyDigestTime = "07:00"
	inactive.IsActive = false
	require.NoError(t, repo.Create(inactive))

	recipients, err := repo.GetWithDailyDigest()
	require.NoError(t, err)
	require.Len(t, recipients, 1)
	assert.Equal(t, "C1", recipients[0].SlackChannelID)
}

func TestRecipientRepository_GetWithReminders(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newRecipientRepo(db.conn)

	withReminders := newTestRecipient("C1")
	withReminders.Reminders = map[domain.PrayerKey]int{domain.Dhuhr: 10}
	require.NoError(t, repo.Create(withReminders))

	require.NoError(t, repo.Create(newTestRecipient("C2")))

	inactive := newTestRecipient("C3")
	inactive.Reminders = map[domain.PrayerKey]int{domain.Asr: 15}
	inactive.IsActive = false
	require.NoError(t, repo.Create(inactive))

	recipients, err := repo.GetWithReminders()
	require.NoError(t, err)
	require.Len(t, recipients, 1)
	assert.Equal(t, "C1", recipients[0].SlackChannelID)
	assert.Equal(t, 10, recipients[0].Reminders[domain.Dhuhr])
}

func TestRecipientRepository_ListSkipsCorruptRows(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newRecipientRepo(db.conn)

	for _, channelID := range []string{"C1", "C2", "C3"} {
		r := newTestRecipient(channelID)
		r.DailyDigestTime = "07:00"
		r.Reminders = map[domain.PrayerKey]int{domain.Fajr: 10}
		require.NoError(t, repo.Create(r))
	}

	_, err := db.conn.Exec(`UPDATE recipients SET prayer_offsets = '{"fajr":' WHERE slack_channel_id = 'C2'`)
	require.NoError(t, err)

	digest, err := repo.GetWithDailyDigest()
	require.NoError(t, err)
	require.Len(t, digest, 2)
	assert.Equal(t, "C1", digest[0].SlackChannelID)
	assert.Equal(t, "C3", digest[1].SlackChannelID)

	reminders, err := repo.GetWithReminders()
	require.NoError(t, err)
	assert.Len(t, reminders, 2)

	_, err = repo.GetByChannelID("C2")
	assert.ErrorIs(t, err, errCorruptSettings)
}

func TestInstance_WithTransaction(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	t.Run("Should commit when fn succeeds", func(t *testing.T) {
		err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
			return tx.Recipient().Create(newTestRecipient("C1"))
		})
		require.NoError(t, err)

		got, err := dm.Recipient().GetByChannelID("C1")
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("Should rollback when fn fails", func(t *testing.T) {
		wantErr := errors.New("boom")
		err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
			if err := tx.Recipient().Create(newTestRecipient("C2")); err != nil {
				return err
			}
			return wantErr
		})
		require.ErrorIs(t, err, wantErr)

		got, err := dm.Recipient().GetByChannelID("C2")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
