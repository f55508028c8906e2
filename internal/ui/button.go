package ui

import (
	"fmt"
	"html/template"
	"strings"

	"alx_listing/internal/domain"
)

const (
	baseStyles     = "px-4 py-2 rounded font-medium focus:outline-none focus:ring-2 focus:ring-offset-2 transition-colors"
	disabledStyles = "opacity-50 cursor-not-allowed"
)

var variantStyles = map[domain.Variant]string{
	domain.VariantPrimary:   "bg-blue-500 hover:bg-blue-600 text-white focus:ring-blue-500",
	domain.VariantSecondary: "bg-gray-500 hover:bg-gray-600 text-white focus:ring-gray-500",
	domain.VariantOutline:   "border border-blue-500 text-blue-500 hover:bg-blue-50 focus:ring-blue-500",
}

type ButtonOption func(*domain.ButtonProps)

func WithVariant(v domain.Variant) ButtonOption {
	return func(p *domain.ButtonProps) { p.Variant = v }
}

func WithType(t domain.ButtonType) ButtonOption {
	return func(p *domain.ButtonProps) { p.Type = t }
}

func WithOnClick(fn func()) ButtonOption {
	return func(p *domain.ButtonProps) { p.OnClick = fn }
}

func WithID(id string) ButtonOption {
	return func(p *domain.ButtonProps) { p.ID = id }
}

func Disabled() ButtonOption {
	return func(p *domain.ButtonProps) { p.Disabled = true }
}

// NewButtonProps returns props with the defaults filled in: primary variant,
// enabled, type "button".
func NewButtonProps(children any, opts ...ButtonOption) domain.ButtonProps {
	p := domain.ButtonProps{
		Children: children,
		Variant:  domain.VariantPrimary,
		Type:     domain.TypeButton,
	}
	for _, o := range opts {
		o(&p)
	}
	return p
}

// ButtonClass resolves the class attribute for a variant.
func ButtonClass(v domain.Variant, disabled bool) (string, error) {
	vs, ok := variantStyles[v]
	if !ok {
		return "", fmt.Errorf("%w %q: %w", domain.ErrUnknownVariant, v,
			domain.Violation("button", "variant", "must be primary, secondary or outline"))
	}
	parts := []string{baseStyles, vs}
	if disabled {
		parts = append(parts, disabledStyles)
	}
	return strings.Join(parts, " "), nil
}

type buttonView struct {
	ID       string
	Type     domain.ButtonType
	Class    string
	Variant  domain.Variant
	Disabled bool
	Children any
}

func RenderButton(p domain.ButtonProps) (template.HTML, error) {
	if p.Children == nil || p.Children == "" || p.Children == template.HTML("") {
		return "", domain.Violation("button", "children", "required")
	}
	if !p.Type.Valid() {
		return "", domain.Violation("button", "type", fmt.Sprintf("unknown type %q", p.Type))
	}
	class, err := ButtonClass(p.Variant, p.Disabled)
	if err != nil {
		return "", err
	}
	out, err := execute(buttonT, buttonView{
		ID:       p.ID,
		Type:     p.Type,
		Class:    class,
		Variant:  p.Variant,
		Disabled: p.Disabled,
		Children: p.Children,
	})
	if err != nil {
		return "", fmt.Errorf("render button: %w", err)
	}
	return out, nil
}

// Activate delivers one click to the button. A disabled button returns
// ErrButtonDisabled and does not call OnClick; a nil OnClick is a no-op.
func Activate(p domain.ButtonProps) error {
	if p.Disabled {
		return domain.ErrButtonDisabled
	}
	if p.OnClick != nil {
		p.OnClick()
	}
	return nil
}
