package service

import (
	"context"
	"errors"
	"time"

	"github.com/diegoclair/prayer-times-bot/internal/domain/contract"
	"github.com/diegoclair/prayer-times-bot/internal/domain/entity"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

type sendOutcome int

const (
	outcomeTransient sendOutcome = iota
	outcomeRateLimited
	outcomePermanent
	outcomeMalformed
)

// Slack API error codes that mean the conversation will never accept our messages again.
var permanentSlackErrors = map[string]bool{
	"channel_not_found":       true,
	"is_archived":             true,
	"not_in_channel":          true,
	"account_inactive":        true,
	"user_disabled":           true,
	"team_access_not_granted": true,
	"restricted_action":       true,
}

// Slack API error codes for payloads that will fail the same way on every retry.
var malformedSlackErrors = map[string]bool{
	"invalid_blocks":       true,
	"msg_too_long":         true,
	"no_text":              true,
	"invalid_arguments":    true,
	"too_many_attachments": true,
}

func classifySendError(err error) (sendOutcome, time.Duration) {
	var rateLimited *slack.RateLimitedError
	if errors.As(err, &rateLimited) {
		return outcomeRateLimited, rateLimited.RetryAfter
	}

	var apiErr slack.SlackErrorResponse
	if errors.As(err, &apiErr) {
		switch {
		case permanentSlackErrors[apiErr.Err]:
			return outcomePermanent, 0
		case malformedSlackErrors[apiErr.Err]:
			return outcomeMalformed, 0
		}
	}

	return outcomeTransient, 0
}

type deliveryService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	sleep       func(ctx context.Context, d time.Duration) error
}

func newDelivery(dm contract.DataManager, slackClient contract.SlackClient) *deliveryService {
	return &deliveryService{
		dm:          dm,
		slackClient: slackClient,
		sleep:       sleepContext,
	}
}

// Send posts text to the recipient's conversation. Rate limits are waited out
// and retried; every other failure suppresses the message.
func (s *deliveryService) Send(ctx context.Context, recipient *entity.Recipient, text string) entity.DeliveryStatus {
	logger := log.With().Str("channel_id", recipient.SlackChannelID).Logger()

	for {
		_, _, err := s.slackClient.PostMessageContext(ctx, recipient.SlackChannelID,
			slack.MsgOptionText(text, false),
			slack.MsgOptionAsUser(false),
		)
		if err == nil {
			return entity.Delivered
		}

		outcome, retryAfter := classifySendError(err)
		switch outcome {
		case outcomeRateLimited:
			logger.Warn().Dur("retry_after", retryAfter).Msg("rate limited by Slack, waiting to retry")
			if err := s.sleep(ctx, retryAfter); err != nil {
				logger.Warn().Err(err).Msg("delivery cancelled while rate limited")
				return entity.Suppressed
			}
			continue

		case outcomePermanent:
			logger.Warn().Err(err).Msg("conversation is unreachable, deactivating recipient")
			if err := s.dm.Recipient().SetActive(recipient.SlackChannelID, false); err != nil {
				logger.Error().Err(err).Msg("failed to deactivate recipient")
			}
			return entity.Suppressed

		case outcomeMalformed:
			logger.Error().Err(err).Msg("message rejected by Slack")
			return entity.Suppressed

		default:
			logger.Error().Err(err).Msg("failed to deliver message")
			return entity.Suppressed
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
