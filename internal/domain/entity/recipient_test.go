package entity

import (
	"testing"

	"github.com/diegoclair/prayer-times-bot/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRecipient_EffectiveOffset(t *testing.T) {
	r := &Recipient{
		GeneralOffset: 5,
		PrayerOffsets: map[domain.PrayerKey]int{domain.Fajr: -2, domain.Isha: 500},
	}

	assert.Equal(t, 3, r.EffectiveOffset(domain.Fajr))
	assert.Equal(t, 5, r.EffectiveOffset(domain.Dhuhr))
	assert.Equal(t, 125, r.EffectiveOffset(domain.Isha), "per-prayer offset should be clipped to the upper bound")

	r.GeneralOffset = -999
	assert.Equal(t, -122, r.EffectiveOffset(domain.Fajr), "general offset should be clipped to the lower bound")
}

func TestRecipient_Prayers(t *testing.T) {
	t.Run("Should return all prayers when none are selected", func(t *testing.T) {
		r := &Recipient{}
		assert.Equal(t, domain.PrayerKeys, r.Prayers())
	})

	t.Run("Should return selection in canonical order", func(t *testing.T) {
		r := &Recipient{EnabledPrayers: []domain.PrayerKey{domain.Isha, domain.Fajr, domain.Isha}}
		assert.Equal(t, []domain.PrayerKey{domain.Fajr, domain.Isha}, r.Prayers())
	})
}

func TestRecipient_HasIndividualOffsets(t *testing.T) {
	assert.False(t, (&Recipient{GeneralOffset: 10}).HasIndividualOffsets())
	assert.False(t, (&Recipient{PrayerOffsets: map[domain.PrayerKey]int{domain.Asr: 0}}).HasIndividualOffsets())
	assert.True(t, (&Recipient{PrayerOffsets: map[domain.PrayerKey]int{domain.Asr: -1}}).HasIndividualOffsets())
}
