package notify

import (
	"context"
	"log/slog"
)

// Noop implements Notifier by logging instead of delivering. Useful for
// dry runs and local development.
type Noop struct {
	logger *slog.Logger
}

// NewNoop creates a Noop notifier.
func NewNoop(logger *slog.Logger) *Noop {
	return &Noop{logger: logger}
}

// Send logs the would-be delivery and succeeds.
func (n *Noop) Send(_ context.Context, dest Destination, payload ListingPayload) error {
	n.logger.Info("notification suppressed (noop backend)",
		"channel_id", dest.ChannelID,
		"title", payload.Title,
		"price", payload.Price,
	)
	return nil
}
