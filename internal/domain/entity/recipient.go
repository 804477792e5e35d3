package entity

import (
	"time"

	"github.com/diegoclair/prayer-times-bot/internal/domain"
)

// Recipient holds the notification and display preferences of one Slack conversation.
type Recipient struct {
	ID               int64
	SlackChannelID   string
	SlackChannelName string
	SlackTeamID      string
	IsActive         bool

	Language     string
	LocationName string
	ShowLocation bool
	ShowHijri    bool
	HijriStyle   string
	ShowHolidays bool

	GeneralOffset  int
	PrayerOffsets  map[domain.PrayerKey]int
	EnabledPrayers []domain.PrayerKey

	// DailyDigestTime is "HH:MM", empty when the digest is disabled.
	DailyDigestTime string
	DigestDay       string
	// Reminders maps a prayer to the minutes before it a reminder is sent.
	Reminders map[domain.PrayerKey]int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveOffset returns the clipped general offset plus the clipped per-prayer offset.
func (r *Recipient) EffectiveOffset(key domain.PrayerKey) int {
	return domain.ClampOffset(r.GeneralOffset) + r.IndividualOffset(key)
}

// IndividualOffset returns the clipped per-prayer offset, zero when absent.
func (r *Recipient) IndividualOffset(key domain.PrayerKey) int {
	return domain.ClampOffset(r.PrayerOffsets[key])
}

// Prayers returns the enabled prayers in canonical order; an empty selection means all of them.
func (r *Recipient) Prayers() []domain.PrayerKey {
	if len(r.EnabledPrayers) == 0 {
		return domain.PrayerKeys
	}
	enabled := make(map[domain.PrayerKey]bool, len(r.EnabledPrayers))
	for _, k := range r.EnabledPrayers {
		enabled[k] = true
	}
	prayers := make([]domain.PrayerKey, 0, len(enabled))
	for _, k := range domain.PrayerKeys {
		if enabled[k] {
			prayers = append(prayers, k)
		}
	}
	return prayers
}

// HasIndividualOffsets reports whether any per-prayer offset is non-zero.
func (r *Recipient) HasIndividualOffsets() bool {
	for _, k := range domain.PrayerKeys {
		if r.IndividualOffset(k) != 0 {
			return true
		}
	}
	return false
}
