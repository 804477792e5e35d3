package contract

import (
	"context"
	"time"

	"github.com/diegoclair/prayer-times-bot/internal/domain/entity"
)

type SettingsService interface {
	Setup(slackChannelID, channelName, teamID string) (*entity.Recipient, bool, error)
	Get(slackChannelID string) (*entity.Recipient, error)
	UpdateConfig(slackChannelID, configType, configValue string) error
	SetActive(slackChannelID string, active bool) error
}

type ScheduleService interface {
	Now() time.Time
	FormatSchedule(date time.Time, recipient *entity.Recipient) string
	FormatNextPrayer(now time.Time, recipient *entity.Recipient) string
	CalendarFeed(from time.Time, days int, recipient *entity.Recipient) ([]byte, error)
	Reload(ctx context.Context) error
}

// Deliverer sends a text to a recipient and reports whether it went out.
type Deliverer interface {
	Send(ctx context.Context, recipient *entity.Recipient, text string) entity.DeliveryStatus
}

// Localizer resolves a message key for a language tag.
// Unknown tags fall back to the default locale and unknown keys are returned as is.
type Localizer interface {
	Localize(lang, key string, data map[string]any) string
}

// TimeTable is the read side of the prayer time table.
type TimeTable interface {
	Lookup(date time.Time) (entity.PrayerDay, bool)
	Reload(ctx context.Context) error
}
