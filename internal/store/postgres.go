package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/tdevries/vintedwatch/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertListing inserts or updates a listing by vinted_id. An existing
// row keeps its first_seen_at; mutable fields take the new values.
func (s *PostgresStore) UpsertListing(ctx context.Context, l *domain.Listing) error {
	args := pgx.NamedArgs{
		"vinted_id":   l.VintedID,
		"title":       l.Title,
		"url":         l.URL,
		"image_url":   l.ImageURL,
		"price":       l.Price,
		"currency":    l.Currency,
		"brand":       nullIfEmpty(l.Brand),
		"size":        nullIfEmpty(l.Size),
		"condition":   nullIfEmpty(l.Condition),
		"seller_name": nullIfEmpty(l.SellerName),
		"location":    nullIfEmpty(l.Location),
	}

	return s.pool.QueryRow(ctx, queryUpsertListing, args).Scan(
		&l.ID, &l.FirstSeenAt, &l.UpdatedAt,
	)
}

// GetListing retrieves a listing by its Vinted item ID.
func (s *PostgresStore) GetListing(ctx context.Context, vintedID string) (*domain.Listing, error) {
	l := &domain.Listing{}
	if err := scanListing(s.pool.QueryRow(ctx, queryGetListingByVintedID, vintedID), l); err != nil {
		return nil, err
	}
	return l, nil
}

// GetListingByID retrieves a listing by its internal UUID.
func (s *PostgresStore) GetListingByID(ctx context.Context, id string) (*domain.Listing, error) {
	l := &domain.Listing{}
	if err := scanListing(s.pool.QueryRow(ctx, queryGetListingByID, id), l); err != nil {
		return nil, err
	}
	return l, nil
}

// ListListings queries listings with optional filters, returning results and total count.
func (s *PostgresStore) ListListings(
	ctx context.Context,
	opts *ListingQuery,
) ([]domain.Listing, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	// Get total count.
	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting listings: %w", err)
	}

	// Get data rows.
	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, 0, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating listings: %w", err)
	}

	return listings, total, nil
}

// UpdateListingAttributes backfills source attributes onto a listing.
func (s *PostgresStore) UpdateListingAttributes(
	ctx context.Context,
	id string,
	attrs domain.ListingAttributes,
) error {
	_, err := s.pool.Exec(ctx, queryUpdateListingAttributes,
		id, attrs.Brand, attrs.Size, attrs.Condition, attrs.SellerName, attrs.Location,
	)
	if err != nil {
		return fmt.Errorf("updating listing attributes: %w", err)
	}
	return nil
}

// CreateWatch inserts a new watch.
func (s *PostgresStore) CreateWatch(ctx context.Context, w *domain.Watch) error {
	args := pgx.NamedArgs{
		"guild_id":   nullIfEmpty(w.GuildID),
		"channel_id": w.ChannelID,
		"user_id":    w.UserID,
		"query":      w.Query,
		"price_min":  w.PriceMin,
		"price_max":  w.PriceMax,
		"active":     w.Active,
	}

	return s.pool.QueryRow(ctx, queryCreateWatch, args).Scan(
		&w.ID, &w.CreatedAt, &w.UpdatedAt,
	)
}

// GetWatch retrieves a watch by its ID.
func (s *PostgresStore) GetWatch(ctx context.Context, id string) (*domain.Watch, error) {
	w := &domain.Watch{}
	if err := scanWatch(s.pool.QueryRow(ctx, queryGetWatch, id), w); err != nil {
		return nil, err
	}
	return w, nil
}

// ListWatches returns all watches, optionally filtered to active only.
// Results are ordered oldest-first so every sweep visits watches in a
// stable order.
func (s *PostgresStore) ListWatches(
	ctx context.Context,
	activeOnly bool,
) ([]domain.Watch, error) {
	query := queryListWatchesAll
	if activeOnly {
		query = queryListWatchesActive
	}

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying watches: %w", err)
	}
	defer rows.Close()

	var watches []domain.Watch
	for rows.Next() {
		var w domain.Watch
		if err := scanWatch(rows, &w); err != nil {
			return nil, fmt.Errorf("scanning watch: %w", err)
		}
		watches = append(watches, w)
	}

	return watches, rows.Err()
}

// DeactivateWatch marks a watch inactive. The update only applies when
// userID matches the watch owner; the bool reports whether a row changed.
func (s *PostgresStore) DeactivateWatch(
	ctx context.Context,
	id string,
	userID string,
) (bool, error) {
	tag, err := s.pool.Exec(ctx, queryDeactivateWatch, id, userID)
	if err != nil {
		return false, fmt.Errorf("deactivating watch: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// TouchWatchLastChecked sets the last_checked_at timestamp for a watch.
func (s *PostgresStore) TouchWatchLastChecked(
	ctx context.Context,
	watchID string,
	t time.Time,
) error {
	_, err := s.pool.Exec(ctx, queryTouchWatchLastChecked, watchID, t)
	if err != nil {
		return fmt.Errorf("updating watch last_checked_at: %w", err)
	}
	return nil
}

// HasNotification reports whether the ledger already holds the
// (watch, listing) pair.
func (s *PostgresStore) HasNotification(
	ctx context.Context,
	watchID, listingID string,
) (bool, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx, queryHasNotification, watchID, listingID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking notification: %w", err)
	}
	return exists, nil
}

// RecordNotification inserts a ledger row, silently ignoring duplicates.
func (s *PostgresStore) RecordNotification(ctx context.Context, n *domain.Notification) error {
	err := s.pool.QueryRow(ctx, queryRecordNotification, n.WatchID, n.ListingID).
		Scan(&n.ID, &n.NotifiedAt)

	// ON CONFLICT DO NOTHING returns no rows; treat as success.
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	return err
}

// ListNotificationsByWatch returns ledger rows for a watch, newest first.
func (s *PostgresStore) ListNotificationsByWatch(
	ctx context.Context,
	watchID string,
	limit int,
) ([]domain.Notification, error) {
	rows, err := s.pool.Query(ctx, queryListNotificationsByWatch, watchID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying notifications: %w", err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.WatchID, &n.ListingID, &n.NotifiedAt); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// RecoverStaleJobRuns marks any 'running' job rows older than olderThan as 'crashed',
// then deletes all rows older than 30 days. Returns the number of rows marked as crashed.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale job runs crashed: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldJobRuns); err != nil {
		return affected, fmt.Errorf("deleting old job runs: %w", err)
	}

	return affected, nil
}

// AcquireSchedulerLock attempts to acquire a distributed lock for the given job.
// Returns true if the lock was acquired, false if another holder already owns it.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	expiresAt := time.Now().Add(ttl)

	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, expiresAt).Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil // lock held by another; conflict not replaced
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}

	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
) error {
	_, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder)
	if err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

// GetSystemState returns aggregate counts in a single round trip.
func (s *PostgresStore) GetSystemState(ctx context.Context) (*domain.SystemState, error) {
	st := &domain.SystemState{}
	err := s.pool.QueryRow(ctx, queryGetSystemState).Scan(
		&st.WatchesTotal, &st.WatchesActive,
		&st.ListingsTotal, &st.NotificationsTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("querying system state: %w", err)
	}
	return st, nil
}

// scanJobRuns scans rows from a job_runs query into a slice.
func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanListing scans a full listing row.
func scanListing(row scannable, l *domain.Listing) error {
	return row.Scan(
		&l.ID, &l.VintedID, &l.Title, &l.URL, &l.ImageURL,
		&l.Price, &l.Currency,
		&l.Brand, &l.Size, &l.Condition, &l.SellerName, &l.Location,
		&l.FirstSeenAt, &l.UpdatedAt,
	)
}

// scanWatch scans a full watch row.
func scanWatch(row scannable, w *domain.Watch) error {
	return row.Scan(
		&w.ID, &w.GuildID, &w.ChannelID, &w.UserID, &w.Query,
		&w.PriceMin, &w.PriceMax, &w.Active, &w.LastCheckedAt,
		&w.CreatedAt, &w.UpdatedAt,
	)
}

// nullIfEmpty maps "" to SQL NULL for optional text columns.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
