package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/tdevries/vintedwatch/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printWatchTable(watches []domain.Watch) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tQUERY\tPRICE BAND\tCHANNEL\tACTIVE\tLAST CHECKED\n")
	for i := range watches {
		w := &watches[i]
		lastChecked := "-"
		if w.LastCheckedAt != nil {
			lastChecked = w.LastCheckedAt.Format("2006-01-02 15:04:05")
		}
		tw.writef("%s\t%s\t%s\t%s\t%v\t%s\n",
			w.ID,
			w.Query,
			formatPriceBand(w.PriceMin, w.PriceMax),
			w.ChannelID,
			w.Active,
			lastChecked,
		)
	}
	return tw.finish()
}

func printWatchDetail(w *domain.Watch) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", w.ID)
	tw.writef("Query:\t%s\n", w.Query)
	tw.writef("Price band:\t%s\n", formatPriceBand(w.PriceMin, w.PriceMax))
	tw.writef("Channel:\t%s\n", w.ChannelID)
	tw.writef("Owner:\t%s\n", w.UserID)
	tw.writef("Active:\t%v\n", w.Active)
	if w.LastCheckedAt != nil {
		tw.writef("Last checked:\t%s\n", w.LastCheckedAt.Format("2006-01-02 15:04:05"))
	}
	tw.writef("Created:\t%s\n", w.CreatedAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printListingsTable(listings []domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tTITLE\tPRICE\tBRAND\tSIZE\tFIRST SEEN\n")
	for i := range listings {
		l := &listings[i]
		tw.writef("%s\t%s\t%.2f %s\t%s\t%s\t%s\n",
			l.ID,
			truncate(l.Title, 40),
			l.Price,
			l.Currency,
			orDash(l.Brand),
			orDash(l.Size),
			l.FirstSeenAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printListingDetail(l *domain.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("Vinted ID:\t%s\n", l.VintedID)
	tw.writef("Title:\t%s\n", l.Title)
	tw.writef("Price:\t%.2f %s\n", l.Price, l.Currency)
	tw.writef("Brand:\t%s\n", orDash(l.Brand))
	tw.writef("Size:\t%s\n", orDash(l.Size))
	tw.writef("Condition:\t%s\n", orDash(l.Condition))
	tw.writef("Seller:\t%s\n", orDash(l.SellerName))
	tw.writef("Location:\t%s\n", orDash(l.Location))
	tw.writef("URL:\t%s\n", l.URL)
	tw.writef("First seen:\t%s\n", l.FirstSeenAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printNotificationsTable(notifications []domain.Notification) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tLISTING\tNOTIFIED AT\n")
	for i := range notifications {
		n := &notifications[i]
		tw.writef("%s\t%s\t%s\n",
			n.ID,
			n.ListingID,
			n.NotifiedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printJobRunsTable(runs []domain.JobRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format("2006-01-02 15:04:05")
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			completed,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatPriceBand(minP, maxP *float64) string {
	switch {
	case minP != nil && maxP != nil:
		return fmt.Sprintf("%.2f-%.2f", *minP, *maxP)
	case minP != nil:
		return fmt.Sprintf(">=%.2f", *minP)
	case maxP != nil:
		return fmt.Sprintf("<=%.2f", *maxP)
	default:
		return "-"
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
