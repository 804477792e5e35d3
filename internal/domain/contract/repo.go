package contract

import (
	"context"

	"github.com/diegoclair/prayer-times-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Recipient() RecipientRepo
}

// RecipientRepo defines the contract for the recipient settings store
type RecipientRepo interface {
	Create(recipient *entity.Recipient) error
	GetByChannelID(slackChannelID string) (*entity.Recipient, error)
	Update(recipient *entity.Recipient) error
	SetActive(slackChannelID string, active bool) error
	// GetWithDailyDigest returns active recipients with a digest time configured.
	GetWithDailyDigest() ([]*entity.Recipient, error)
	// GetWithReminders returns active recipients with at least one reminder configured.
	GetWithReminders() ([]*entity.Recipient, error)
}
