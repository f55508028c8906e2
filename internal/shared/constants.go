package shared

// Endpoint paths reserved for the listing API. Nothing serves them yet;
// the web server answers them with 501.
var APIURLs = struct {
	Listings string
	Users    string
	Bookings string
}{
	Listings: "/api/listings",
	Users:    "/api/users",
	Bookings: "/api/bookings",
}

var App = struct {
	Name            string
	Version         string
	DefaultCurrency string
}{
	Name:            "ALX Listing App",
	Version:         "1.0.0",
	DefaultCurrency: "USD",
}

// Public asset locations, served under /assets and copied by the exporter.
var Assets = struct {
	Images     string
	Icons      string
	Stylesheet string
}{
	Images:     "/assets/images",
	Icons:      "/assets/icons",
	Stylesheet: "/assets/styles/globals.css",
}

var Text = struct {
	BookNow     string
	ViewDetails string
	Loading     string
	Error       string
	NoListings  string
}{
	BookNow:     "Book Now",
	ViewDetails: "View Details",
	Loading:     "Loading...",
	Error:       "Something went wrong",
	NoListings:  "No listings available",
}

// ReservedAPIPaths returns the endpoint paths in a fixed order.
func ReservedAPIPaths() []string {
	return []string{APIURLs.Listings, APIURLs.Users, APIURLs.Bookings}
}
