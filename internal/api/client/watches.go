package client

import (
	"context"
	"fmt"
	"net/url"

	domain "github.com/tdevries/vintedwatch/pkg/types"
)

// watchRequest contains only the fields the API accepts for create.
type watchRequest struct {
	GuildID   string   `json:"guild_id,omitempty"`
	ChannelID string   `json:"channel_id"`
	UserID    string   `json:"user_id"`
	Query     string   `json:"query"`
	PriceMin  *float64 `json:"price_min,omitempty"`
	PriceMax  *float64 `json:"price_max,omitempty"`
}

// ListWatches returns watches, optionally restricted to active ones.
func (c *Client) ListWatches(ctx context.Context, activeOnly bool) ([]domain.Watch, error) {
	path := "/api/v1/watches"
	if activeOnly {
		path += "?active=true"
	}

	var watches []domain.Watch
	if err := c.get(ctx, path, &watches); err != nil {
		return nil, err
	}
	return watches, nil
}

// GetWatch returns a single watch by ID.
func (c *Client) GetWatch(ctx context.Context, id string) (*domain.Watch, error) {
	var w domain.Watch
	if err := c.get(ctx, "/api/v1/watches/"+id, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// CreateWatch creates a new watch.
func (c *Client) CreateWatch(ctx context.Context, w *domain.Watch) (*domain.Watch, error) {
	req := watchRequest{
		GuildID:   w.GuildID,
		ChannelID: w.ChannelID,
		UserID:    w.UserID,
		Query:     w.Query,
		PriceMin:  w.PriceMin,
		PriceMax:  w.PriceMax,
	}

	var created domain.Watch
	if err := c.post(ctx, "/api/v1/watches", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeactivateWatch deactivates a watch on behalf of its owner.
func (c *Client) DeactivateWatch(ctx context.Context, id, userID string) error {
	path := fmt.Sprintf("/api/v1/watches/%s?user_id=%s", id, url.QueryEscape(userID))
	return c.del(ctx, path, nil)
}

// ListNotifications returns the notification ledger for a watch.
func (c *Client) ListNotifications(
	ctx context.Context,
	watchID string,
	limit int,
) ([]domain.Notification, error) {
	path := fmt.Sprintf("/api/v1/watches/%s/notifications", watchID)
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}

	var notifications []domain.Notification
	if err := c.get(ctx, path, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}
