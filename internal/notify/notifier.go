// Package notify defines the notification interface and implementations
// for new-listing delivery.
package notify

import (
	"context"
)

// Destination identifies where a notification goes. ChannelID is the
// delivery target (Discord channel or webhook URL depending on the
// backend); UserID is the watch owner, mentioned in the message when
// the backend supports it.
type Destination struct {
	ChannelID string
	UserID    string
}

// ListingPayload contains the data needed to announce a new listing.
type ListingPayload struct {
	WatchQuery string
	Title      string
	URL        string
	ImageURL   string
	Price      string
	Brand      string
	Size       string
	Condition  string
	Seller     string
	Location   string
}

// Notifier defines the interface for delivering new-listing notifications.
// Send returns an error on delivery failure; it never panics.
type Notifier interface {
	Send(ctx context.Context, dest Destination, payload ListingPayload) error
}
