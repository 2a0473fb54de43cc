package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	slackapi "github.com/slack-go/slack"

	"github.com/solvelysaid/orderdesk/internal/models"
)

func testOrder() *models.Order {
	return &models.Order{
		ID:          "abc-123",
		TableNumber: "7",
		Summary:     "1. ต้มยำ - เผ็ดน้อย",
		Status:      models.OrderStatusWaiting,
	}
}

// mockSlack records posted channels and can fail on demand.
type mockSlack struct {
	channels []string
	err      error
}

func (m *mockSlack) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	m.channels = append(m.channels, channelID)
	return "", "", m.err
}

// mockDiscord records sent embeds and can fail on demand.
type mockDiscord struct {
	embeds []*discordgo.MessageEmbed
	err    error
}

func (m *mockDiscord) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.embeds = append(m.embeds, embed)
	return nil, m.err
}

func TestNewSlack_Validation(t *testing.T) {
	if _, err := NewSlack(SlackOpts{ChannelID: "C1"}); err == nil {
		t.Error("expected error for missing token")
	}
	if _, err := NewSlack(SlackOpts{Client: &mockSlack{}}); err == nil {
		t.Error("expected error for missing channel")
	}
}

func TestSlack_OrderPlaced(t *testing.T) {
	mock := &mockSlack{}
	s, err := NewSlack(SlackOpts{Client: mock, ChannelID: "C1"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err := s.OrderPlaced(context.Background(), testOrder()); err != nil {
		t.Fatalf("order placed: %v", err)
	}
	if len(mock.channels) != 1 || mock.channels[0] != "C1" {
		t.Errorf("channels = %v, want [C1]", mock.channels)
	}

	mock.err = errors.New("channel_not_found")
	if err := s.OrderPlaced(context.Background(), testOrder()); err == nil {
		t.Error("expected post error to propagate")
	}
}

func TestNewDiscord_Validation(t *testing.T) {
	if _, err := NewDiscord(DiscordOpts{ChannelID: "C1"}); err == nil {
		t.Error("expected error for missing token")
	}
	if _, err := NewDiscord(DiscordOpts{Session: &mockDiscord{}}); err == nil {
		t.Error("expected error for missing channel")
	}
}

func TestDiscord_OrderPlaced(t *testing.T) {
	mock := &mockDiscord{}
	d, err := NewDiscord(DiscordOpts{Session: mock, ChannelID: "C1"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err := d.OrderPlaced(context.Background(), testOrder()); err != nil {
		t.Fatalf("order placed: %v", err)
	}
	if len(mock.embeds) != 1 {
		t.Fatalf("embeds = %d, want 1", len(mock.embeds))
	}
	embed := mock.embeds[0]
	if !strings.Contains(embed.Title, "table 7") {
		t.Errorf("title = %q", embed.Title)
	}
	if embed.Description != "1. ต้มยำ - เผ็ดน้อย" {
		t.Errorf("description = %q", embed.Description)
	}
}

func TestMulti_BestEffort(t *testing.T) {
	broken := &mockDiscord{err: errors.New("gateway down")}
	working := &mockDiscord{}

	d1, _ := NewDiscord(DiscordOpts{Session: broken, ChannelID: "C1"})
	d2, _ := NewDiscord(DiscordOpts{Session: working, ChannelID: "C2"})

	m := NewMulti(d1, d2)
	if err := m.OrderPlaced(context.Background(), testOrder()); err != nil {
		t.Fatalf("multi: %v", err)
	}
	// The failure on the first channel must not stop the second.
	if len(working.embeds) != 1 {
		t.Errorf("working channel got %d embeds, want 1", len(working.embeds))
	}
}

func TestMulti_Empty(t *testing.T) {
	m := NewMulti()
	if err := m.OrderPlaced(context.Background(), testOrder()); err != nil {
		t.Errorf("empty multi: %v", err)
	}
}
