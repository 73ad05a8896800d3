package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Listing queries.
const (
	queryUpsertListing = `
		INSERT INTO listings (
			vinted_id, title, url, image_url,
			price, currency,
			brand, size, condition, seller_name, location,
			first_seen_at, updated_at
		) VALUES (
			@vinted_id, @title, @url, @image_url,
			@price, @currency,
			@brand, @size, @condition, @seller_name, @location,
			now(), now()
		)
		ON CONFLICT (vinted_id) DO UPDATE SET
			title       = EXCLUDED.title,
			url         = EXCLUDED.url,
			image_url   = EXCLUDED.image_url,
			price       = EXCLUDED.price,
			currency    = EXCLUDED.currency,
			brand       = EXCLUDED.brand,
			size        = EXCLUDED.size,
			condition   = EXCLUDED.condition,
			seller_name = EXCLUDED.seller_name,
			location    = EXCLUDED.location,
			updated_at  = now()
		RETURNING id, first_seen_at, updated_at`

	queryGetListingByVintedID = `
		SELECT id, vinted_id, title, url, image_url,
			price, currency,
			COALESCE(brand, ''), COALESCE(size, ''), COALESCE(condition, ''),
			COALESCE(seller_name, ''), COALESCE(location, ''),
			first_seen_at, updated_at
		FROM listings
		WHERE vinted_id = $1`

	queryGetListingByID = `
		SELECT id, vinted_id, title, url, image_url,
			price, currency,
			COALESCE(brand, ''), COALESCE(size, ''), COALESCE(condition, ''),
			COALESCE(seller_name, ''), COALESCE(location, ''),
			first_seen_at, updated_at
		FROM listings
		WHERE id = $1`

	queryUpdateListingAttributes = `
		UPDATE listings SET
			brand       = NULLIF($2, ''),
			size        = NULLIF($3, ''),
			condition   = NULLIF($4, ''),
			seller_name = NULLIF($5, ''),
			location    = NULLIF($6, ''),
			updated_at  = now()
		WHERE id = $1`
)

// Watch queries.
const (
	queryCreateWatch = `
		INSERT INTO watches (
			guild_id, channel_id, user_id, query,
			price_min, price_max, active, created_at, updated_at
		) VALUES (
			@guild_id, @channel_id, @user_id, @query,
			@price_min, @price_max, @active, now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetWatch = `
		SELECT id, COALESCE(guild_id, ''), channel_id, user_id, query,
			price_min, price_max, active, last_checked_at, created_at, updated_at
		FROM watches
		WHERE id = $1`

	queryListWatchesAll = `
		SELECT id, COALESCE(guild_id, ''), channel_id, user_id, query,
			price_min, price_max, active, last_checked_at, created_at, updated_at
		FROM watches
		ORDER BY created_at ASC`

	queryListWatchesActive = `
		SELECT id, COALESCE(guild_id, ''), channel_id, user_id, query,
			price_min, price_max, active, last_checked_at, created_at, updated_at
		FROM watches
		WHERE active = true
		ORDER BY created_at ASC`

	queryDeactivateWatch = `
		UPDATE watches SET
			active = false,
			updated_at = now()
		WHERE id = $1 AND user_id = $2 AND active = true`

	queryTouchWatchLastChecked = `
		UPDATE watches SET last_checked_at = $2 WHERE id = $1`
)

// Notification ledger queries.
const (
	queryRecordNotification = `
		INSERT INTO notifications (watch_id, listing_id, notified_at)
		VALUES ($1, $2, now())
		ON CONFLICT (watch_id, listing_id) DO NOTHING
		RETURNING id, notified_at`

	queryHasNotification = `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE watch_id = $1 AND listing_id = $2
		)`

	queryListNotificationsByWatch = `
		SELECT id, watch_id, listing_id, notified_at
		FROM notifications
		WHERE watch_id = $1
		ORDER BY notified_at DESC
		LIMIT $2`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs SET
			status       = 'crashed',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldJobRuns = `
		DELETE FROM job_runs WHERE started_at < now() - interval '30 days'`

	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, lock_holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE
			SET locked_at   = now(),
				lock_holder = EXCLUDED.lock_holder,
				expires_at  = EXCLUDED.expires_at
			WHERE scheduler_locks.expires_at < now()
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks WHERE job_name = $1 AND lock_holder = $2`
)

// Aggregate queries.
const (
	queryGetSystemState = `
		SELECT
			(SELECT COUNT(*) FROM watches)                          AS watches_total,
			(SELECT COUNT(*) FROM watches WHERE active = true)      AS watches_active,
			(SELECT COUNT(*) FROM listings)                         AS listings_total,
			(SELECT COUNT(*) FROM notifications)                    AS notifications_total`
)
