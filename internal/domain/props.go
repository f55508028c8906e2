package domain

type CardProps struct {
	ListingID   string // optional; exposed as data-listing-id
	Title       string
	Description string
	Image       string
	Price       float64
	Location    string
	Rating      *float64 // carried, not rendered yet
	OnBookNow   func()   // carried, not wired to any button yet
}

// Variant is one of the closed set of button styles.
type Variant string

const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
	VariantOutline   Variant = "outline"
)

var Variants = []Variant{VariantPrimary, VariantSecondary, VariantOutline}

func (v Variant) Valid() bool {
	switch v {
	case VariantPrimary, VariantSecondary, VariantOutline:
		return true
	}
	return false
}

// ButtonType is the HTML submission role of a button.
type ButtonType string

const (
	TypeButton ButtonType = "button"
	TypeSubmit ButtonType = "submit"
	TypeReset  ButtonType = "reset"
)

func (t ButtonType) Valid() bool {
	switch t {
	case TypeButton, TypeSubmit, TypeReset:
		return true
	}
	return false
}

type ButtonProps struct {
	ID       string // optional; activation handle for POST /actions/{id}
	Children any    // string is escaped, template.HTML is trusted
	Variant  Variant
	OnClick  func()
	Disabled bool
	Type     ButtonType
}
