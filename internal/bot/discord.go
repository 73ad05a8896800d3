// Package bot implements the Discord slash command surface for
// managing watches from inside a server.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/tdevries/vintedwatch/internal/store"
	"github.com/tdevries/vintedwatch/internal/vinted"
	domain "github.com/tdevries/vintedwatch/pkg/types"
)

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "vinted",
		Description: "Watch Vinted searches and get notified about new listings",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "watch",
				Description: "watch a search in this channel",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "query",
						Description: "the search text",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionNumber,
						Name:        "min_price",
						Description: "minimum price in EUR",
					},
					{
						Type:        discordgo.ApplicationCommandOptionNumber,
						Name:        "max_price",
						Description: "maximum price in EUR",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "list your active watches",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "remove",
				Description: "deactivate one of your watches",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "id",
						Description: "the watch id from /vinted list",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "search",
				Description: "run a one-off search without creating a watch",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "query",
						Description: "the search text",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionNumber,
						Name:        "max_price",
						Description: "maximum price in EUR",
					},
				},
			},
		},
	},
}

// Bot owns the Discord session and its registered slash commands.
type Bot struct {
	session *discordgo.Session
}

// New opens a Discord session, registers the slash commands and starts
// handling interactions.
func New(token string, st store.Store, source vinted.Source, log *slog.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("creating discord session: %w", err)
	}

	session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		log.Info("discord bot ready", "user", r.User.Username)
	})
	session.AddHandler(interactionHandler(st, source, log))
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	if err := session.Open(); err != nil {
		return nil, fmt.Errorf("opening discord session: %w", err)
	}

	for _, cmd := range commands {
		if _, err := session.ApplicationCommandCreate(session.State.User.ID, "", cmd); err != nil {
			_ = session.Close()
			return nil, fmt.Errorf("registering command %s: %w", cmd.Name, err)
		}
	}

	return &Bot{session: session}, nil
}

// Close shuts down the Discord session.
func (b *Bot) Close() error {
	return b.session.Close()
}

func interactionHandler(
	st store.Store,
	source vinted.Source,
	log *slog.Logger,
) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		data := i.ApplicationCommandData()
		if data.Name != "vinted" {
			return
		}

		ctx := context.Background()
		sub := data.Options[0]
		userID := interactionUserID(i)

		var content string
		switch sub.Name {
		case "watch":
			content = handleWatch(ctx, st, watchArgs(sub, i), userID)
		case "list":
			content = handleList(ctx, st, userID)
		case "remove":
			content = handleRemove(ctx, st, optionString(sub, "id"), userID)
		case "search":
			content = handleSearch(ctx, source, optionString(sub, "query"), optionFloat(sub, "max_price"))
		default:
			content = "unknown subcommand"
		}

		err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Flags:   discordgo.MessageFlagsEphemeral,
				Content: content,
			},
		})
		if err != nil {
			log.Error("responding to interaction failed", "command", sub.Name, "error", err)
		}
	}
}

func watchArgs(sub *discordgo.ApplicationCommandInteractionDataOption, i *discordgo.InteractionCreate) *domain.Watch {
	return &domain.Watch{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		Query:     optionString(sub, "query"),
		PriceMin:  optionFloat(sub, "min_price"),
		PriceMax:  optionFloat(sub, "max_price"),
		Active:    true,
	}
}

func handleWatch(ctx context.Context, st store.Store, w *domain.Watch, userID string) string {
	w.UserID = userID
	if err := w.Validate(); err != nil {
		return ":no_entry: " + err.Error()
	}

	if err := st.CreateWatch(ctx, w); err != nil {
		return ":no_entry: creating watch failed: " + err.Error()
	}

	return fmt.Sprintf(":eyes: Watching **%s**%s in this channel (id `%s`)",
		w.Query, priceBand(w.PriceMin, w.PriceMax), w.ID)
}

func handleList(ctx context.Context, st store.Store, userID string) string {
	watches, err := st.ListWatches(ctx, true)
	if err != nil {
		return ":no_entry: listing watches failed: " + err.Error()
	}

	var b strings.Builder
	for _, w := range watches {
		if w.UserID != userID {
			continue
		}
		fmt.Fprintf(&b, "- `%s` **%s**%s\n", w.ID, w.Query, priceBand(w.PriceMin, w.PriceMax))
	}

	if b.Len() == 0 {
		return "You have no active watches. Create one with `/vinted watch`."
	}
	return ":eyes: Your watches:\n" + b.String()
}

func handleRemove(ctx context.Context, st store.Store, id, userID string) string {
	ok, err := st.DeactivateWatch(ctx, id, userID)
	if err != nil {
		return ":no_entry: removing watch failed: " + err.Error()
	}
	if !ok {
		return ":no_entry: No active watch with that id belongs to you."
	}
	return ":wastebasket: Watch removed."
}

func handleSearch(ctx context.Context, source vinted.Source, query string, maxPrice *float64) string {
	resp, err := source.Search(ctx, vinted.SearchRequest{
		Text:     query,
		PriceMax: maxPrice,
		Limit:    5,
	})
	if err != nil {
		return ":no_entry: search failed: " + err.Error()
	}
	if len(resp.Items) == 0 {
		return fmt.Sprintf("No listings found for **%s**.", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, ":mag: Newest listings for **%s**:\n", query)
	for _, item := range resp.Items {
		fmt.Fprintf(&b, "- [%s](%s) %s %s\n",
			item.Title, item.URL, item.Price.Amount, item.Price.CurrencyCode)
	}
	return b.String()
}

// interactionUserID resolves the invoking user for both guild and DM
// interactions.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func optionString(sub *discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range sub.Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

func optionFloat(sub *discordgo.ApplicationCommandInteractionDataOption, name string) *float64 {
	for _, opt := range sub.Options {
		if opt.Name == name {
			v := opt.FloatValue()
			return &v
		}
	}
	return nil
}

func priceBand(minP, maxP *float64) string {
	switch {
	case minP != nil && maxP != nil:
		return fmt.Sprintf(" (%.2f-%.2f EUR)", *minP, *maxP)
	case minP != nil:
		return fmt.Sprintf(" (from %.2f EUR)", *minP)
	case maxP != nil:
		return fmt.Sprintf(" (up to %.2f EUR)", *maxP)
	default:
		return ""
	}
}
