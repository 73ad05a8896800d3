// Package store defines the datastore abstraction for vintedwatch.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"time"

	domain "github.com/tdevries/vintedwatch/pkg/types"
)

// ListingQuery defines optional filters for listing queries.
type ListingQuery struct {
	TitleContains *string
	MinPrice      *float64
	MaxPrice      *float64
	Brand         *string
	Limit         int // default 50
	Offset        int
	OrderBy       string // "price", "first_seen_at"
}

// Store defines all data access operations for vintedwatch.
type Store interface {
	// Listings
	UpsertListing(ctx context.Context, l *domain.Listing) error
	GetListing(ctx context.Context, vintedID string) (*domain.Listing, error)
	GetListingByID(ctx context.Context, id string) (*domain.Listing, error)
	ListListings(ctx context.Context, opts *ListingQuery) ([]domain.Listing, int, error)
	UpdateListingAttributes(ctx context.Context, id string, attrs domain.ListingAttributes) error

	// Watches
	CreateWatch(ctx context.Context, w *domain.Watch) error
	GetWatch(ctx context.Context, id string) (*domain.Watch, error)
	ListWatches(ctx context.Context, activeOnly bool) ([]domain.Watch, error)
	// DeactivateWatch soft-deletes a watch. The update is scoped to the
	// owning user; it reports whether a row was actually deactivated.
	DeactivateWatch(ctx context.Context, id string, userID string) (bool, error)
	TouchWatchLastChecked(ctx context.Context, watchID string, t time.Time) error

	// Notification ledger
	HasNotification(ctx context.Context, watchID, listingID string) (bool, error)
	// RecordNotification inserts a ledger row. Inserting an existing
	// (watch, listing) pair is a no-op, not an error.
	RecordNotification(ctx context.Context, n *domain.Notification) error
	ListNotificationsByWatch(ctx context.Context, watchID string, limit int) ([]domain.Notification, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)
	AcquireSchedulerLock(ctx context.Context, jobName string, holder string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName string, holder string) error

	// Aggregates
	GetSystemState(ctx context.Context) (*domain.SystemState, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
