package shared_test

import (
	"testing"
	"time"

	"alx_listing/internal/shared"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_ADDR", "REDIS_ADDR", "CACHE_TTL_SECONDS", "EXPORT_WORKERS", "PUBLIC_DIR", "STYLESHEET_HREF"} {
		t.Setenv(k, "")
	}
	c := shared.FromEnv()
	if c.AppEnv != "prod" || c.HTTPAddr != ":3000" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.CacheTTL != 900*time.Second {
		t.Fatalf("cache ttl: %s", c.CacheTTL)
	}
	if c.Stylesheet != "/assets/styles/globals.css" {
		t.Fatalf("stylesheet: %q", c.Stylesheet)
	}
	if c.RedisAddr != "" || c.PublicDir != "public" || c.ExportWorkers != 4 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("EXPORT_WORKERS", "0")
	t.Setenv("ACTION_RPS", "not-a-number")
	t.Setenv("STYLESHEET_HREF", "https://cdn.example.com/site.css")

	c := shared.FromEnv()
	if c.HTTPAddr != ":9999" || c.CacheTTL != time.Minute || c.RedisDB != 3 {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.Stylesheet != "https://cdn.example.com/site.css" {
		t.Fatalf("stylesheet override not applied: %q", c.Stylesheet)
	}
	if c.ExportWorkers != 1 {
		t.Fatalf("export workers should be clamped to 1, got %d", c.ExportWorkers)
	}
	if c.ActionRPS != 10 {
		t.Fatalf("bad ACTION_RPS should fall back to default, got %d", c.ActionRPS)
	}
}

func TestReservedAPIPaths(t *testing.T) {
	got := shared.ReservedAPIPaths()
	want := []string{"/api/listings", "/api/users", "/api/bookings"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path %d: got %s want %s", i, got[i], want[i])
		}
	}
}
