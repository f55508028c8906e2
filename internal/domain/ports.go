package domain

import (
	"context"
	"html/template"
)

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Page is a full document the server can render on request.
type Page interface {
	Name() string
	Render() (template.HTML, error)
	// Buttons lists the activatable buttons the page renders.
	Buttons() []ButtonProps
}

// Rendered is a page body plus its validator; this is what gets cached.
type Rendered struct {
	Page string `json:"page"`
	HTML string `json:"html"`
	ETag string `json:"etag"`
}
