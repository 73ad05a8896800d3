// Package domain defines the core business types for vintedwatch.
package domain

import (
	"errors"
	"time"
)

// Listing represents one Vinted catalog item snapshot. A listing is
// created the first time any watch observes it and is never deleted by
// the engine; price or title changes on the Vinted side do not create
// new rows.
type Listing struct {
	ID       string `json:"id"                  db:"id"`
	VintedID string `json:"vinted_id"           db:"vinted_id"`
	Title    string `json:"title"               db:"title"`
	URL      string `json:"url"                 db:"url"`
	ImageURL string `json:"image_url,omitempty" db:"image_url"`

	// Pricing
	Price    float64 `json:"price"    db:"price"`
	Currency string  `json:"currency" db:"currency"`

	// Source-dependent attributes; any of these may be empty and may be
	// backfilled later from a detail fetch.
	Brand      string `json:"brand,omitempty"       db:"brand"`
	Size       string `json:"size,omitempty"        db:"size"`
	Condition  string `json:"condition,omitempty"   db:"condition"`
	SellerName string `json:"seller_name,omitempty" db:"seller_name"`
	Location   string `json:"location,omitempty"    db:"location"`

	// Timestamps
	FirstSeenAt time.Time `json:"first_seen_at" db:"first_seen_at"`
	UpdatedAt   time.Time `json:"updated_at"    db:"updated_at"`
}

// Watch represents a saved Vinted search owned by a user and bound to a
// delivery channel. Watches are soft-deleted: Active=false removes them
// from scheduling but keeps the row for history.
type Watch struct {
	ID            string     `json:"id"                        db:"id"`
	GuildID       string     `json:"guild_id,omitempty"        db:"guild_id"`
	ChannelID     string     `json:"channel_id"                db:"channel_id"`
	UserID        string     `json:"user_id"                   db:"user_id"`
	Query         string     `json:"query"                     db:"query"`
	PriceMin      *float64   `json:"price_min,omitempty"       db:"price_min"`
	PriceMax      *float64   `json:"price_max,omitempty"       db:"price_max"`
	Active        bool       `json:"active"                    db:"active"`
	LastCheckedAt *time.Time `json:"last_checked_at,omitempty" db:"last_checked_at"`
	CreatedAt     time.Time  `json:"created_at"                db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"                db:"updated_at"`
}

// Validation errors returned by Watch.Validate.
var (
	ErrEmptyQuery        = errors.New("watch query must not be empty")
	ErrEmptyChannel      = errors.New("watch channel_id must not be empty")
	ErrEmptyUser         = errors.New("watch user_id must not be empty")
	ErrInvertedPriceBand = errors.New("watch price_min must not exceed price_max")
)

// Validate checks the watch invariants prior to persistence.
func (w *Watch) Validate() error {
	if w.Query == "" {
		return ErrEmptyQuery
	}
	if w.ChannelID == "" {
		return ErrEmptyChannel
	}
	if w.UserID == "" {
		return ErrEmptyUser
	}
	if w.PriceMin != nil && w.PriceMax != nil && *w.PriceMin > *w.PriceMax {
		return ErrInvertedPriceBand
	}
	return nil
}

// ListingAttributes holds the optional source attributes that can be
// backfilled onto an existing listing from a detail fetch.
type ListingAttributes struct {
	Brand      string `json:"brand,omitempty"`
	Size       string `json:"size,omitempty"`
	Condition  string `json:"condition,omitempty"`
	SellerName string `json:"seller_name,omitempty"`
	Location   string `json:"location,omitempty"`
}

// Notification is one row of the delivery ledger: the durable record
// that a listing has been delivered for a watch. The (watch, listing)
// pair is unique; its presence is the sole source of truth for
// "already notified".
type Notification struct {
	ID         string    `json:"id"          db:"id"`
	WatchID    string    `json:"watch_id"    db:"watch_id"`
	ListingID  string    `json:"listing_id"  db:"listing_id"`
	NotifiedAt time.Time `json:"notified_at" db:"notified_at"`
}

// CheckResult summarizes a single watch check.
type CheckResult struct {
	// New is the number of listings newly notified during this check.
	New int `json:"new"`
	// Seen is the snapshot size returned by the listing source.
	Seen int `json:"seen"`
	// Err is the first error that ended the check early, if any.
	// A notify failure does not end the check and is not recorded here.
	Err error `json:"-"`
}

// SweepStats summarizes one full scheduler pass over all active watches.
type SweepStats struct {
	Watches      int           `json:"watches"`
	Notified     int           `json:"notified"`
	FailedChecks int           `json:"failed_checks"`
	Duration     time.Duration `json:"duration"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// SystemState holds a precomputed snapshot of aggregate system metrics.
type SystemState struct {
	WatchesTotal       int `json:"watches_total"       db:"watches_total"`
	WatchesActive      int `json:"watches_active"      db:"watches_active"`
	ListingsTotal      int `json:"listings_total"      db:"listings_total"`
	NotificationsTotal int `json:"notifications_total" db:"notifications_total"`
}
