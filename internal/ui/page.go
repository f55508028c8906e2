package ui

import (
	"fmt"
	"html/template"

	"alx_listing/internal/domain"
	"alx_listing/internal/shared"
)

const (
	HomePage = "index"

	BookNowID     = "book-now"
	ViewDetailsID = "view-details"
)

// Home is the landing page: one sample card and two buttons. The zero
// value links the default stylesheet and wires the buttons to
// POST /actions/{id}.
type Home struct {
	Stylesheet string // falls back to shared.Assets.Stylesheet
	Static     bool   // no action ids and no click script
}

// PageOption adjusts the pages returned by Pages.
type PageOption func(*Home)

// WithStylesheet links href instead of the bundled stylesheet.
func WithStylesheet(href string) PageOption {
	return func(h *Home) { h.Stylesheet = href }
}

// StaticExport renders pages for hosting without a server: buttons carry
// no activation handle and the click script is left out.
func StaticExport() PageOption {
	return func(h *Home) { h.Static = true }
}

func (Home) Name() string { return HomePage }

// SampleListing builds the record shown on the home page. It is rebuilt
// for every render.
func SampleListing() domain.Listing {
	const title, location = "Beautiful Apartment", "New York, NY"
	return domain.Listing{
		ID:          domain.ListingID(title, location),
		Title:       title,
		Description: "A lovely apartment in the city center",
		Price:       120,
		Location:    location,
		Images:      []string{shared.Assets.Images + "/placeholder.jpg"},
	}
}

func (h Home) Buttons() []domain.ButtonProps {
	bs := []domain.ButtonProps{
		NewButtonProps(shared.Text.BookNow, WithID(BookNowID), WithVariant(domain.VariantPrimary)),
		NewButtonProps(shared.Text.ViewDetails, WithID(ViewDetailsID), WithVariant(domain.VariantOutline)),
	}
	if h.Static {
		for i := range bs {
			bs[i].ID = ""
		}
	}
	return bs
}

func (h Home) Render() (template.HTML, error) {
	card, err := RenderCard(CardPropsFromListing(SampleListing()))
	if err != nil {
		return "", err
	}
	var buttons []template.HTML
	for _, b := range h.Buttons() {
		out, err := RenderButton(b)
		if err != nil {
			return "", err
		}
		buttons = append(buttons, out)
	}
	body, err := execute(homeT, struct {
		Heading string
		Cards   []template.HTML
		Buttons []template.HTML
	}{shared.App.Name, []template.HTML{card}, buttons})
	if err != nil {
		return "", fmt.Errorf("render home: %w", err)
	}
	return Document(shared.App.Name, body, h.shell())
}

func (h Home) shell() Shell {
	href := h.Stylesheet
	if href == "" {
		href = shared.Assets.Stylesheet
	}
	return Shell{Stylesheet: href, Interactive: !h.Static}
}

// Shell controls what the document head and tail carry around a body.
type Shell struct {
	Stylesheet  string // omitted when empty
	Interactive bool   // include the script that posts button actions
}

// Document wraps a page body in the HTML shell.
func Document(title string, body template.HTML, shell Shell) (template.HTML, error) {
	out, err := execute(layoutT, struct {
		Title       string
		Generator   string
		Stylesheet  string
		Interactive bool
		Body        template.HTML
	}{title, shared.App.Name + " " + shared.App.Version, shell.Stylesheet, shell.Interactive, body})
	if err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}
	return out, nil
}

// Pages lists every page the server and exporter know about.
func Pages(opts ...PageOption) []domain.Page {
	var home Home
	for _, o := range opts {
		o(&home)
	}
	return []domain.Page{home}
}

// FindButton looks up an activatable button on a page by id.
func FindButton(p domain.Page, id string) (domain.ButtonProps, bool) {
	for _, b := range p.Buttons() {
		if b.ID != "" && b.ID == id {
			return b, true
		}
	}
	return domain.ButtonProps{}, false
}
