package notify

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// messageSender is the slice of *discordgo.Session the notifier needs.
type messageSender interface {
	ChannelMessageSendComplex(
		channelID string,
		data *discordgo.MessageSend,
		options ...discordgo.RequestOption,
	) (*discordgo.Message, error)
}

// DiscordNotifier implements Notifier through a Discord bot session.
// The destination's ChannelID is a Discord channel; the owner gets a
// mention above the embed.
type DiscordNotifier struct {
	session messageSender
}

// NewDiscordNotifier creates a notifier on top of an open bot session.
func NewDiscordNotifier(session *discordgo.Session) *DiscordNotifier {
	return &DiscordNotifier{session: session}
}

// Send posts the listing embed to the destination channel.
func (d *DiscordNotifier) Send(
	_ context.Context,
	dest Destination,
	payload ListingPayload,
) error {
	if dest.ChannelID == "" {
		return fmt.Errorf("discord destination has no channel")
	}

	msg := &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{discordEmbed(payload)},
	}
	if dest.UserID != "" {
		msg.Content = fmt.Sprintf("<@%s>", dest.UserID)
	}

	if _, err := d.session.ChannelMessageSendComplex(dest.ChannelID, msg); err != nil {
		return fmt.Errorf("sending discord message: %w", err)
	}
	return nil
}

func discordEmbed(p ListingPayload) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("New listing: %s", p.Title),
		URL:   p.URL,
		Color: colorTeal,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Price", Value: p.Price, Inline: true},
			{Name: "Brand", Value: orDash(p.Brand), Inline: true},
			{Name: "Size", Value: orDash(p.Size), Inline: true},
			{Name: "Condition", Value: orDash(p.Condition), Inline: true},
			{Name: "Seller", Value: orDash(p.Seller), Inline: true},
			{Name: "Search", Value: p.WatchQuery, Inline: true},
		},
	}

	if p.ImageURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: p.ImageURL}
	}

	return embed
}
