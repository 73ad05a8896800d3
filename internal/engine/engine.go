// Package engine implements the periodic watch checking pipeline: fetch
// a catalog snapshot per watch, persist listings, and deliver exactly
// one notification per (watch, listing) pair.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tdevries/vintedwatch/internal/metrics"
	"github.com/tdevries/vintedwatch/internal/notify"
	"github.com/tdevries/vintedwatch/internal/store"
	"github.com/tdevries/vintedwatch/internal/vinted"
	domain "github.com/tdevries/vintedwatch/pkg/types"
)

const (
	defaultPerCheckLimit = 10
	defaultStaggerOffset = 2 * time.Second
)

// Engine orchestrates watch checks and notification delivery.
type Engine struct {
	store    store.Store
	source   vinted.Source
	notifier notify.Notifier
	log      *slog.Logger
	metrics  *metrics.Metrics

	perCheckLimit int
	staggerOffset time.Duration
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	src vinted.Source,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:         s,
		source:        src,
		notifier:      n,
		log:           slog.Default(),
		perCheckLimit: defaultPerCheckLimit,
		staggerOffset: defaultStaggerOffset,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithMetrics wires Prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) EngineOption {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithStaggerOffset sets the delay between checking each watch.
func WithStaggerOffset(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.staggerOffset = d
	}
}

// WithPerCheckLimit caps the snapshot size requested per check.
func WithPerCheckLimit(n int) EngineOption {
	return func(e *Engine) {
		e.perCheckLimit = n
	}
}

// RunSweep checks every active watch once, sequentially, with the
// configured stagger delay between watches. A failing watch never
// stops the sweep; only a store failure on the watch list itself or
// the daily catalog quota does.
func (eng *Engine) RunSweep(ctx context.Context) (*domain.SweepStats, error) {
	start := time.Now()
	defer func() {
		if eng.metrics != nil {
			eng.metrics.SweepDuration.Observe(time.Since(start).Seconds())
			eng.metrics.SweepsTotal.Inc()
		}
	}()

	watches, err := eng.store.ListWatches(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("listing watches: %w", err)
	}

	stats := &domain.SweepStats{Watches: len(watches)}

	for i := range watches {
		if ctx.Err() != nil {
			stats.Duration = time.Since(start)
			return stats, ctx.Err()
		}

		w := &watches[i]
		res := eng.CheckWatch(ctx, w)
		stats.Notified += res.New

		if res.Err != nil {
			stats.FailedChecks++

			if errors.Is(res.Err, vinted.ErrDailyLimitReached) {
				eng.log.Warn("daily catalog limit reached, stopping sweep",
					"watch_id", w.ID,
					"checked", i+1,
					"total", len(watches),
				)
				break
			}
			eng.log.Error("watch check failed",
				"watch_id", w.ID,
				"query", w.Query,
				"error", res.Err,
			)
		}

		// Stagger between watches to avoid catalog bursts.
		if i < len(watches)-1 && eng.staggerOffset > 0 {
			select {
			case <-ctx.Done():
				stats.Duration = time.Since(start)
				return stats, ctx.Err()
			case <-time.After(eng.staggerOffset):
			}
		}
	}

	stats.Duration = time.Since(start)
	eng.log.Info("sweep complete",
		"watches", stats.Watches,
		"notified", stats.Notified,
		"failed_checks", stats.FailedChecks,
		"duration", stats.Duration,
	)

	return stats, nil
}

// CheckWatch fetches one snapshot for the watch and notifies its
// channel about listings not yet in the ledger. The watch's
// last_checked_at is touched whether or not the fetch succeeded, so a
// persistently failing watch cannot starve the rest.
func (eng *Engine) CheckWatch(ctx context.Context, w *domain.Watch) domain.CheckResult {
	res := eng.checkWatch(ctx, w)

	if err := eng.store.TouchWatchLastChecked(ctx, w.ID, time.Now()); err != nil {
		eng.log.Error("touching last_checked_at failed", "watch_id", w.ID, "error", err)
	}

	if eng.metrics != nil {
		eng.metrics.ChecksTotal.Inc()
		if res.Err != nil {
			eng.metrics.CheckErrorsTotal.Inc()
		}
	}

	return res
}

func (eng *Engine) checkWatch(ctx context.Context, w *domain.Watch) domain.CheckResult {
	req := vinted.SearchRequest{
		Text:     w.Query,
		PriceMin: w.PriceMin,
		PriceMax: w.PriceMax,
		Limit:    eng.perCheckLimit,
	}

	resp, err := eng.source.Search(ctx, req)
	if err != nil {
		return domain.CheckResult{Err: fmt.Errorf("searching catalog: %w", err)}
	}

	res := domain.CheckResult{Seen: len(resp.Items)}

	// Snapshot order is newest-first; notifications go out in the same
	// order. Price bounds were part of the search, so every item in the
	// snapshot is a match by definition.
	for _, item := range resp.Items {
		listing, convErr := vinted.ToListing(item)
		if convErr != nil {
			eng.log.Warn("skipping malformed catalog item", "error", convErr)
			continue
		}

		if err := eng.store.UpsertListing(ctx, listing); err != nil {
			res.Err = fmt.Errorf("upserting listing %s: %w", listing.VintedID, err)
			return res
		}
		if eng.metrics != nil {
			eng.metrics.ListingsSeenTotal.Inc()
		}

		seen, err := eng.store.HasNotification(ctx, w.ID, listing.ID)
		if err != nil {
			res.Err = fmt.Errorf("checking ledger for listing %s: %w", listing.VintedID, err)
			return res
		}
		if seen {
			continue
		}

		dest := notify.Destination{ChannelID: w.ChannelID, UserID: w.UserID}
		if err := eng.notifier.Send(ctx, dest, buildPayload(w, listing)); err != nil {
			// No ledger write: the pair stays pending and is retried
			// on the next sweep.
			eng.log.Error("notification failed",
				"watch_id", w.ID,
				"vinted_id", listing.VintedID,
				"error", err,
			)
			if eng.metrics != nil {
				eng.metrics.NotificationsFailedTotal.Inc()
			}
			continue
		}

		n := &domain.Notification{WatchID: w.ID, ListingID: listing.ID}
		if err := eng.store.RecordNotification(ctx, n); err != nil {
			res.Err = fmt.Errorf("recording notification for listing %s: %w", listing.VintedID, err)
			return res
		}

		res.New++
		if eng.metrics != nil {
			eng.metrics.ListingsNewTotal.Inc()
			eng.metrics.NotificationsSentTotal.Inc()
		}
	}

	return res
}

func buildPayload(w *domain.Watch, l *domain.Listing) notify.ListingPayload {
	return notify.ListingPayload{
		WatchQuery: w.Query,
		Title:      l.Title,
		URL:        l.URL,
		ImageURL:   l.ImageURL,
		Price:      fmt.Sprintf("%.2f %s", l.Price, l.Currency),
		Brand:      l.Brand,
		Size:       l.Size,
		Condition:  l.Condition,
		Seller:     l.SellerName,
		Location:   l.Location,
	}
}
