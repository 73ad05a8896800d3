// Package vinted provides a Vinted catalog client abstracted behind the
// Source interface for testability.
package vinted

import (
	"context"
)

// SearchRequest defines the parameters for a catalog search.
type SearchRequest struct {
	Text     string
	PriceMin *float64
	PriceMax *float64
	// Limit caps the snapshot size (per_page). Zero means the client default.
	Limit int
}

// SearchResponse holds the results of a catalog search. Items arrive
// newest-first; callers rely on that order.
type SearchResponse struct {
	Items []Item
	Total int
}

// Source defines the interface for fetching listing snapshots.
type Source interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
}

// Item is one catalog entry as returned by the Vinted API.
type Item struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	Price      Money  `json:"price"`
	Photo      *Photo `json:"photo"`
	BrandTitle string `json:"brand_title"`
	SizeTitle  string `json:"size_title"`
	Status     string `json:"status"`
	User       *User  `json:"user"`
}

// Money is the Vinted price object. Amount is a decimal string.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currency_code"`
}

// Photo holds the primary item photo.
type Photo struct {
	URL string `json:"url"`
}

// User holds the seller summary embedded in a catalog item.
type User struct {
	Login       string `json:"login"`
	CountryCode string `json:"country_code"`
	City        string `json:"city"`
}
