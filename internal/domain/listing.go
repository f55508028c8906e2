package domain

import "github.com/google/uuid"

// listingNS scopes derived listing IDs.
var listingNS = uuid.MustParse("6f1c2a9e-3b8d-4e51-9a7f-0c2d4b6e8a10")

type Listing struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Location    string
	Images      []string // ordered; first one is the cover
	Amenities   []string
	Host        Host
}

type Host struct {
	Name   string
	Avatar string
}

// ListingID derives a stable ID from title and location so a fixed sample
// record renders identically across requests.
func ListingID(title, location string) string {
	return uuid.NewSHA1(listingNS, []byte(title+"\x00"+location)).String()
}

// Cover returns the first image, or "" when the listing has none.
func (l Listing) Cover() string {
	if len(l.Images) == 0 {
		return ""
	}
	return l.Images[0]
}
