package app_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"alx_listing/internal/app"
	"alx_listing/internal/ui"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestExport_PagesAndAssets(t *testing.T) {
	public := t.TempDir()
	writeFile(t, filepath.Join(public, "assets", "images", "placeholder.jpg"), "jpg")
	writeFile(t, filepath.Join(public, "assets", "icons", "star.svg"), "<svg/>")
	writeFile(t, filepath.Join(public, "favicon.ico"), "ico")
	out := filepath.Join(t.TempDir(), "site")

	pages := app.NewPageService(ui.Pages(ui.StaticExport()), nil, time.Minute)
	res, err := app.NewExportService(pages, public, out, 2).Export(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(res.Pages) != 1 || res.Pages[0] != "index.html" {
		t.Fatalf("pages: %v", res.Pages)
	}
	if res.Assets != 3 {
		t.Fatalf("assets: %d", res.Assets)
	}

	html, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	want, _ := pages.Render(context.Background(), ui.HomePage)
	if string(html) != want.HTML {
		t.Fatalf("exported page differs from served page")
	}
	if !strings.Contains(string(html), "Beautiful Apartment") {
		t.Fatalf("exported page missing sample card")
	}
	if strings.Contains(string(html), "<script") || strings.Contains(string(html), "data-action") {
		t.Fatalf("static export should not post actions to a server")
	}
	if !strings.Contains(string(html), `href="/assets/styles/globals.css"`) {
		t.Fatalf("exported page missing stylesheet link")
	}

	b, err := os.ReadFile(filepath.Join(out, "assets", "icons", "star.svg"))
	if err != nil || string(b) != "<svg/>" {
		t.Fatalf("icon not copied: %q %v", b, err)
	}
}

func TestExport_MissingPublicDir(t *testing.T) {
	out := t.TempDir()
	pages := app.NewPageService(ui.Pages(), nil, time.Minute)
	res, err := app.NewExportService(pages, filepath.Join(out, "nope"), out, 0).Export(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if res.Assets != 0 || len(res.Pages) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}
