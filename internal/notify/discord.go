package notify

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/solvelysaid/orderdesk/internal/models"
)

// discordSession abstracts the discordgo methods we use, enabling test mocks.
// Sending via REST does not require an open Gateway connection.
type discordSession interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Discord posts new orders to a Discord channel as an embed.
type Discord struct {
	sess      discordSession
	channelID string
}

// DiscordOpts holds parameters for creating a Discord notifier.
type DiscordOpts struct {
	BotToken  string // Discord bot token
	ChannelID string // channel to post orders to
	// For testing: inject a mock session instead of the real Discord API.
	Session discordSession
}

// NewDiscord creates a Discord notifier.
func NewDiscord(opts DiscordOpts) (*Discord, error) {
	if opts.Session == nil && opts.BotToken == "" {
		return nil, fmt.Errorf("notify: discord: bot token is required")
	}
	if opts.ChannelID == "" {
		return nil, fmt.Errorf("notify: discord: channel is required")
	}
	d := &Discord{sess: opts.Session, channelID: opts.ChannelID}
	if d.sess == nil {
		dg, err := discordgo.New("Bot " + opts.BotToken)
		if err != nil {
			return nil, fmt.Errorf("notify: discord: create session: %w", err)
		}
		d.sess = dg
	}
	return d, nil
}

// OrderPlaced posts the order to the configured channel.
func (d *Discord) OrderPlaced(ctx context.Context, o *models.Order) error {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("New order — table %s", o.TableNumber),
		Description: o.Summary,
		Color:       0x36a64f,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Table", Value: o.TableNumber, Inline: true},
			{Name: "Status", Value: o.Status, Inline: true},
			{Name: "Order ID", Value: o.ID},
		},
	}
	_, err := d.sess.ChannelMessageSendEmbed(d.channelID, embed,
		discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("notify: discord: send embed: %w", err)
	}
	return nil
}
