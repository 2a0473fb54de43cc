package notify

import (
	"context"
	"fmt"

	slackapi "github.com/slack-go/slack"

	"github.com/solvelysaid/orderdesk/internal/models"
)

// slackClient abstracts the Slack API methods we use, enabling test mocks.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

// Slack posts new orders to a Slack channel as an attachment.
type Slack struct {
	client    slackClient
	channelID string
}

// SlackOpts holds parameters for creating a Slack notifier.
type SlackOpts struct {
	BotToken  string // xoxb-... Slack bot token
	ChannelID string // channel to post orders to
	// For testing: inject a mock client instead of the real Slack API.
	Client slackClient
}

// NewSlack creates a Slack notifier.
func NewSlack(opts SlackOpts) (*Slack, error) {
	if opts.Client == nil && opts.BotToken == "" {
		return nil, fmt.Errorf("notify: slack: bot token is required")
	}
	if opts.ChannelID == "" {
		return nil, fmt.Errorf("notify: slack: channel is required")
	}
	s := &Slack{client: opts.Client, channelID: opts.ChannelID}
	if s.client == nil {
		s.client = slackapi.New(opts.BotToken)
	}
	return s, nil
}

// OrderPlaced posts the order to the configured channel.
func (s *Slack) OrderPlaced(ctx context.Context, o *models.Order) error {
	att := slackapi.Attachment{
		Title:    fmt.Sprintf("New order — table %s", o.TableNumber),
		Text:     o.Summary,
		Color:    "#36a64f",
		Fallback: fmt.Sprintf("New order for table %s", o.TableNumber),
		Fields: []slackapi.AttachmentField{
			{Title: "Table", Value: o.TableNumber, Short: true},
			{Title: "Status", Value: o.Status, Short: true},
			{Title: "Order ID", Value: o.ID},
		},
	}
	_, _, err := s.client.PostMessageContext(ctx, s.channelID,
		slackapi.MsgOptionAttachments(att))
	if err != nil {
		return fmt.Errorf("notify: slack: post message: %w", err)
	}
	return nil
}
