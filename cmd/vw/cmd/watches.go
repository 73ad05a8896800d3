package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/tdevries/vintedwatch/pkg/types"
)

func watchesCmd() *cobra.Command {
	watchesRoot := &cobra.Command{
		Use:   "watches",
		Short: "Manage watches",
		Long: "Manage watch subscriptions that define Vinted search queries, price\n" +
			"bands, and the channel where new listings are announced.",
	}

	watchesRoot.AddCommand(
		watchesListCmd(),
		watchesGetCmd(),
		watchesCreateCmd(),
		watchesRemoveCmd(),
		watchesNotificationsCmd(),
	)

	return watchesRoot
}

func watchesListCmd() *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List watches",
		Example: `  vw watches list
  vw watches list --active --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			watches, err := c.ListWatches(context.Background(), activeOnly)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(watches)
			}
			if len(watches) == 0 {
				fmt.Println("No watches found.")
				return nil
			}
			return printWatchTable(watches)
		},
	}
	cmd.Flags().BoolVar(&activeOnly, "active", false, "only show active watches")

	return cmd
}

func watchesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show watch details",
		Example: `  vw watches get abc123
  vw watches get abc123 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			w, err := c.GetWatch(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(w)
			}
			return printWatchDetail(w)
		},
	}
}

func watchesCreateCmd() *cobra.Command {
	var (
		watchQuery   string
		watchChannel string
		watchUser    string
		watchGuild   string
		watchMin     float64
		watchMax     float64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new watch",
		Long: "Create a watch subscription. The watch is active immediately and is\n" +
			"picked up by the next scheduled sweep.",
		Example: `  # Watch a search with a price cap
  vw watches create --query "linen blazer" --channel 123456 --user 789 --max-price 30

  # Watch with a full price band
  vw watches create --query "wool coat" --channel 123456 --user 789 \
    --min-price 20 --max-price 80`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := &domain.Watch{
				GuildID:   watchGuild,
				ChannelID: watchChannel,
				UserID:    watchUser,
				Query:     watchQuery,
			}
			if cmd.Flags().Changed("min-price") {
				w.PriceMin = &watchMin
			}
			if cmd.Flags().Changed("max-price") {
				w.PriceMax = &watchMax
			}
			if err := w.Validate(); err != nil {
				return err
			}

			c := newClient()
			created, err := c.CreateWatch(context.Background(), w)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Watch created: %q (%s)\n", created.Query, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&watchQuery, "query", "", "Vinted search text")
	cmd.Flags().StringVar(&watchChannel, "channel", "", "delivery channel id")
	cmd.Flags().StringVar(&watchUser, "user", "", "owner user id")
	cmd.Flags().StringVar(&watchGuild, "guild", "", "guild id (optional)")
	cmd.Flags().Float64Var(&watchMin, "min-price", 0, "minimum price")
	cmd.Flags().Float64Var(&watchMax, "max-price", 0, "maximum price")

	return cmd
}

func watchesRemoveCmd() *cobra.Command {
	var watchUser string

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Short:   "Deactivate a watch",
		Example: `  vw watches remove abc123 --user 789`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if watchUser == "" {
				return fmt.Errorf("--user is required")
			}
			c := newClient()
			if err := c.DeactivateWatch(context.Background(), args[0], watchUser); err != nil {
				return err
			}
			fmt.Printf("Watch %s deactivated.\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&watchUser, "user", "", "owner user id")

	return cmd
}

func watchesNotificationsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "notifications <id>",
		Short: "Show the notification ledger for a watch",
		Example: `  vw watches notifications abc123
  vw watches notifications abc123 --limit 10 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			notifications, err := c.ListNotifications(context.Background(), args[0], limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(notifications)
			}
			if len(notifications) == 0 {
				fmt.Println("No notifications recorded for this watch.")
				return nil
			}
			return printNotificationsTable(notifications)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "number of entries (default 50)")

	return cmd
}
