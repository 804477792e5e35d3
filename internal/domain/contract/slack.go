package contract

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient defines the Slack operations used for delivery.
// *slack.Client satisfies it; tests use the generated mock.
type SlackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}
