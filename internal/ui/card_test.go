package ui_test

import (
	"errors"
	"html/template"
	"math"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"alx_listing/internal/domain"
	"alx_listing/internal/ui"
)

func parse(t *testing.T, h template.HTML) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(h)))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func sampleCard() domain.CardProps {
	return domain.CardProps{
		Title:       "Beautiful Apartment",
		Description: "A lovely apartment in the city center",
		Image:       "/assets/images/placeholder.jpg",
		Price:       120,
		Location:    "New York, NY",
	}
}

func TestRenderCard_ShowsFields(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{120, "$120"},
		{99.5, "$99.5"},
		{0, "$0"},
		{1250.75, "$1250.75"},
		{1e21, "$1000000000000000000000"},
		{0.0000001, "$0.0000001"},
	}
	for _, tt := range tests {
		p := sampleCard()
		p.Price = tt.price
		out, err := ui.RenderCard(p)
		if err != nil {
			t.Fatalf("price %v: %v", tt.price, err)
		}
		doc := parse(t, out)
		if got := doc.Find(`[data-field="price"]`).Text(); got != tt.want {
			t.Fatalf("price %v: got %q want %q", tt.price, got, tt.want)
		}
		if got := doc.Find(`[data-field="title"]`).Text(); got != p.Title {
			t.Fatalf("title: %q", got)
		}
		if got := doc.Find(`[data-field="description"]`).Text(); got != p.Description {
			t.Fatalf("description: %q", got)
		}
		if got := doc.Find(`[data-field="location"]`).Text(); got != p.Location {
			t.Fatalf("location: %q", got)
		}
		img := doc.Find("img")
		if src, _ := img.Attr("src"); src != p.Image {
			t.Fatalf("img src: %q", src)
		}
		if alt, _ := img.Attr("alt"); alt != p.Title {
			t.Fatalf("img alt: %q", alt)
		}
	}
}

func TestRenderCard_NoListingIDAttrWhenUnset(t *testing.T) {
	out, err := ui.RenderCard(sampleCard())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, ok := parse(t, out).Find(`[data-component="card"]`).Attr("data-listing-id"); ok {
		t.Fatalf("card without a listing id should not carry data-listing-id")
	}
}

func TestRenderCard_MissingRequiredField(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*domain.CardProps)
	}{
		{"title", func(p *domain.CardProps) { p.Title = "" }},
		{"description", func(p *domain.CardProps) { p.Description = "  " }},
		{"image", func(p *domain.CardProps) { p.Image = "" }},
		{"location", func(p *domain.CardProps) { p.Location = "" }},
		{"price", func(p *domain.CardProps) { p.Price = -1 }},
		{"price", func(p *domain.CardProps) { p.Price = math.NaN() }},
		{"price", func(p *domain.CardProps) { p.Price = math.Inf(1) }},
	}
	for _, tt := range tests {
		p := sampleCard()
		tt.mutate(&p)
		out, err := ui.RenderCard(p)
		if !errors.Is(err, domain.ErrContractViolation) {
			t.Fatalf("%s: expected contract violation, got %v", tt.field, err)
		}
		var ce *domain.ContractError
		if !errors.As(err, &ce) || ce.Field != tt.field || ce.Component != "card" {
			t.Fatalf("%s: unexpected error detail: %v", tt.field, err)
		}
		if out != "" {
			t.Fatalf("%s: expected no output, got %q", tt.field, out)
		}
	}
}

func TestRenderCard_OptionalFieldsIgnored(t *testing.T) {
	called := false
	rating := 4.9
	p := sampleCard()
	p.Rating = &rating
	p.OnBookNow = func() { called = true }

	withOpt, err := ui.RenderCard(p)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	without, _ := ui.RenderCard(sampleCard())
	if withOpt != without {
		t.Fatalf("optional fields changed output")
	}
	if called {
		t.Fatalf("OnBookNow must not be called while rendering")
	}
}

func TestRenderCard_Idempotent(t *testing.T) {
	a, err := ui.RenderCard(sampleCard())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	b, _ := ui.RenderCard(sampleCard())
	if a != b {
		t.Fatalf("renders differ:\n%s\n%s", a, b)
	}
}

func TestRenderCard_EscapesText(t *testing.T) {
	p := sampleCard()
	p.Title = `<script>alert("x")</script>`
	out, err := ui.RenderCard(p)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Fatalf("title was not escaped: %s", out)
	}
	if got := parse(t, out).Find(`[data-field="title"]`).Text(); got != p.Title {
		t.Fatalf("escaped title should read back as the original, got %q", got)
	}
}

func TestCardPropsFromListing(t *testing.T) {
	l := domain.Listing{
		ID:          "x",
		Title:       "Loft",
		Description: "Bright",
		Price:       80,
		Location:    "Lagos",
		Images:      []string{"/a.jpg", "/b.jpg"},
		Amenities:   []string{"wifi"},
		Host:        domain.Host{Name: "Ada", Avatar: "/ada.png"},
	}
	p := ui.CardPropsFromListing(l)
	if p.Image != "/a.jpg" || p.Title != "Loft" || p.Price != 80 || p.Location != "Lagos" {
		t.Fatalf("unexpected props: %+v", p)
	}
	if p.ListingID != "x" {
		t.Fatalf("listing id: %q", p.ListingID)
	}
	out, err := ui.RenderCard(p)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if id, _ := parse(t, out).Find(`[data-component="card"]`).Attr("data-listing-id"); id != "x" {
		t.Fatalf("data-listing-id: %q", id)
	}

	l.Images = nil
	if _, err := ui.RenderCard(ui.CardPropsFromListing(l)); !errors.Is(err, domain.ErrContractViolation) {
		t.Fatalf("listing without images should violate the card contract, got %v", err)
	}
}
