package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"alx_listing/internal/adapters/observability"
	"alx_listing/internal/domain"
	"alx_listing/internal/shared"
	"alx_listing/internal/ui"
)

type PageService struct {
	pages    map[string]domain.Page
	cache    domain.Cache // nil disables caching
	cacheTTL time.Duration
	group    singleflight.Group
}

func NewPageService(pages []domain.Page, c domain.Cache, ttl time.Duration) *PageService {
	m := make(map[string]domain.Page, len(pages))
	for _, p := range pages {
		m[p.Name()] = p
	}
	return &PageService{pages: m, cache: c, cacheTTL: ttl}
}

func (s *PageService) Page(name string) (domain.Page, bool) {
	p, ok := s.pages[name]
	return p, ok
}

// Names returns the registered page names in sorted order.
func (s *PageService) Names() []string {
	out := make([]string, 0, len(s.pages))
	for n := range s.pages {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

func cacheKey(name string) string {
	return fmt.Sprintf("page:%s:%s", name, shared.App.Version)
}

// Render returns the page body and its weak ETag, from cache when possible.
// Cache failures are logged and never fail the render.
func (s *PageService) Render(ctx context.Context, name string) (domain.Rendered, error) {
	page, ok := s.pages[name]
	if !ok {
		return domain.Rendered{}, fmt.Errorf("page %q: %w", name, domain.ErrNotFound)
	}

	key := cacheKey(name)
	if r, ok := s.cached(ctx, key); ok {
		return r, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		// a caller that missed just before the previous flight stored the
		// page finds it here
		if r, ok := s.cached(ctx, key); ok {
			return r, nil
		}
		start := time.Now()
		body, err := page.Render()
		observability.ObserveRender(name, err, time.Since(start))
		if err != nil {
			return domain.Rendered{}, err
		}
		r := domain.Rendered{Page: name, HTML: string(body), ETag: ETag([]byte(body))}
		if s.cache != nil {
			if err := s.cache.Set(ctx, key, r, int(s.cacheTTL.Seconds())); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("page cache set failed")
			}
		}
		return r, nil
	})
	if err != nil {
		return domain.Rendered{}, fmt.Errorf("render %s: %w", name, err)
	}
	return v.(domain.Rendered), nil
}

func (s *PageService) cached(ctx context.Context, key string) (domain.Rendered, bool) {
	if s.cache == nil {
		return domain.Rendered{}, false
	}
	var r domain.Rendered
	ok, err := s.cache.Get(ctx, key, &r)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("page cache get failed")
	}
	return r, ok
}

// Invalidate drops a cached page.
func (s *PageService) Invalidate(ctx context.Context, name string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Del(ctx, cacheKey(name))
}

// Activate delivers a click to the button with the given id on a page.
func (s *PageService) Activate(name, buttonID string) error {
	page, ok := s.pages[name]
	if !ok {
		return fmt.Errorf("page %q: %w", name, domain.ErrNotFound)
	}
	b, ok := ui.FindButton(page, buttonID)
	if !ok {
		return fmt.Errorf("button %q on %s: %w", buttonID, name, domain.ErrNotFound)
	}
	err := ui.Activate(b)
	observability.ObserveActivation(name, buttonID, err)
	return err
}

// ETag is a weak validator over the body bytes.
func ETag(body []byte) string {
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`
}
