package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"alx_listing/internal/adapters/observability"
	"alx_listing/internal/app"
	"alx_listing/internal/shared"
	"alx_listing/internal/ui"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("public", cfg.PublicDir).
		Str("out", cfg.OutDir).
		Int("workers", cfg.ExportWorkers).
		Msg("export starting")

	start := time.Now()
	pages := app.NewPageService(ui.Pages(ui.WithStylesheet(cfg.Stylesheet), ui.StaticExport()), nil, 0)
	res, err := app.NewExportService(pages, cfg.PublicDir, cfg.OutDir, cfg.ExportWorkers).Export(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}

	log.Info().
		Strs("pages", res.Pages).
		Int("assets", res.Assets).
		Dur("took", time.Since(start)).
		Msg("export completed")
}
