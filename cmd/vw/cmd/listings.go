package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/tdevries/vintedwatch/internal/api/client"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Browse collected listings",
		Long: "Browse the listings collected by watch sweeps, with filters on title,\n" +
			"brand and price.",
	}

	listingsRoot.AddCommand(
		listingsListCmd(),
		listingsGetCmd(),
	)

	return listingsRoot
}

func listingsListCmd() *cobra.Command {
	var (
		query    string
		brand    string
		minPrice float64
		maxPrice float64
		limit    int
		offset   int
		orderBy  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List listings",
		Example: `  vw listings list --query blazer --max-price 30
  vw listings list --brand Zara --order-by price --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := apiclient.ListingFilter{
				Query:   query,
				Brand:   brand,
				Limit:   limit,
				Offset:  offset,
				OrderBy: orderBy,
			}
			if cmd.Flags().Changed("min-price") {
				f.MinPrice = &minPrice
			}
			if cmd.Flags().Changed("max-price") {
				f.MaxPrice = &maxPrice
			}

			c := newClient()
			page, err := c.ListListings(context.Background(), f)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(page)
			}
			if len(page.Listings) == 0 {
				fmt.Println("No listings found.")
				return nil
			}
			if err := printListingsTable(page.Listings); err != nil {
				return err
			}
			fmt.Printf("\n%d of %d listings\n", len(page.Listings), page.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "title substring filter")
	cmd.Flags().StringVar(&brand, "brand", "", "brand filter")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum price")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price")
	cmd.Flags().IntVar(&limit, "limit", 0, "number of results (default 50)")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort field (price, first_seen_at)")

	return cmd
}

func listingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show listing details",
		Example: `  vw listings get abc123
  vw listings get abc123 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			l, err := c.GetListing(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(l)
			}
			return printListingDetail(l)
		},
	}
}
