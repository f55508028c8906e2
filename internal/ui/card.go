package ui

import (
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"

	"alx_listing/internal/domain"
)

const currencySymbol = "$"

type cardView struct {
	ListingID   string
	Title       string
	Description string
	Image       string
	Price       string
	Location    string
}

// RenderCard renders the listing card. Rating and OnBookNow are accepted
// but not rendered.
func RenderCard(p domain.CardProps) (template.HTML, error) {
	if err := validateCard(p); err != nil {
		return "", err
	}
	out, err := execute(cardT, cardView{
		ListingID:   p.ListingID,
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Price:       FormatPrice(p.Price),
		Location:    p.Location,
	})
	if err != nil {
		return "", fmt.Errorf("render card: %w", err)
	}
	return out, nil
}

// FormatPrice prefixes the shortest decimal form of price with "$",
// e.g. 120 -> "$120", 99.5 -> "$99.5". Prices are always written in plain
// decimal, never in exponent form: 1e21 -> "$1000000000000000000000".
func FormatPrice(price float64) string {
	return currencySymbol + strconv.FormatFloat(price, 'f', -1, 64)
}

// CardPropsFromListing projects a listing onto card props, using the cover
// image.
func CardPropsFromListing(l domain.Listing) domain.CardProps {
	return domain.CardProps{
		ListingID:   l.ID,
		Title:       l.Title,
		Description: l.Description,
		Image:       l.Cover(),
		Price:       l.Price,
		Location:    l.Location,
	}
}

func validateCard(p domain.CardProps) error {
	required := []struct{ field, v string }{
		{"title", p.Title},
		{"description", p.Description},
		{"image", p.Image},
		{"location", p.Location},
	}
	for _, r := range required {
		if strings.TrimSpace(r.v) == "" {
			return domain.Violation("card", r.field, "required")
		}
	}
	switch {
	case math.IsNaN(p.Price) || math.IsInf(p.Price, 0):
		return domain.Violation("card", "price", "must be a finite number")
	case p.Price < 0:
		return domain.Violation("card", "price", "must not be negative")
	}
	return nil
}
