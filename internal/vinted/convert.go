package vinted

import (
	"fmt"
	"strconv"
	"strings"

	domain "github.com/tdevries/vintedwatch/pkg/types"
)

// ToListing converts a catalog item into a domain listing. The price
// amount must be a parseable decimal; everything else degrades to an
// empty attribute.
func ToListing(item Item) (*domain.Listing, error) {
	if item.ID == 0 {
		return nil, fmt.Errorf("%w: item without id", ErrUnexpectedPayload)
	}

	price, err := strconv.ParseFloat(item.Price.Amount, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing price %q: %v", ErrUnexpectedPayload, item.Price.Amount, err)
	}

	l := &domain.Listing{
		VintedID:  strconv.FormatInt(item.ID, 10),
		Title:     item.Title,
		URL:       item.URL,
		Price:     price,
		Currency:  item.Price.CurrencyCode,
		Brand:     item.BrandTitle,
		Size:      item.SizeTitle,
		Condition: item.Status,
	}

	if item.Photo != nil {
		l.ImageURL = item.Photo.URL
	}
	if item.User != nil {
		l.SellerName = item.User.Login
		l.Location = sellerLocation(item.User)
	}

	return l, nil
}

func sellerLocation(u *User) string {
	parts := make([]string, 0, 2)
	if u.City != "" {
		parts = append(parts, u.City)
	}
	if u.CountryCode != "" {
		parts = append(parts, u.CountryCode)
	}
	return strings.Join(parts, ", ")
}
