package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/tdevries/vintedwatch/pkg/types"
)

// ListingFilter narrows a listings query.
type ListingFilter struct {
	Query    string
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	Limit    int
	Offset   int
	OrderBy  string
}

// ListingsPage is one page of listings with the total match count.
type ListingsPage struct {
	Listings []domain.Listing `json:"listings"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// ListListings returns listings matching the filter.
func (c *Client) ListListings(ctx context.Context, f ListingFilter) (*ListingsPage, error) {
	params := url.Values{}
	if f.Query != "" {
		params.Set("q", f.Query)
	}
	if f.Brand != "" {
		params.Set("brand", f.Brand)
	}
	if f.MinPrice != nil {
		params.Set("min_price", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		params.Set("max_price", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		params.Set("offset", strconv.Itoa(f.Offset))
	}
	if f.OrderBy != "" {
		params.Set("order_by", f.OrderBy)
	}

	path := "/api/v1/listings"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var page ListingsPage
	if err := c.get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetListing returns a single listing by ID.
func (c *Client) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.get(ctx, "/api/v1/listings/"+id, &l); err != nil {
		return nil, err
	}
	return &l, nil
}
