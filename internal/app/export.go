package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
)

// ExportService writes every page and the public directory to an output
// directory, producing a site that can be served by any static host.
type ExportService struct {
	pages     *PageService
	publicDir string
	outDir    string
	workers   int64
}

type ExportResult struct {
	Pages  []string // written page files, relative to outDir
	Assets int      // copied asset files
}

func NewExportService(p *PageService, publicDir, outDir string, workers int) *ExportService {
	if workers <= 0 {
		workers = 1
	}
	return &ExportService{pages: p, publicDir: publicDir, outDir: outDir, workers: int64(workers)}
}

// PageFile maps a page name to its exported file name.
func PageFile(name string) string {
	return name + ".html"
}

func (s *ExportService) Export(ctx context.Context) (ExportResult, error) {
	var res ExportResult
	if err := os.MkdirAll(s.outDir, 0o755); err != nil {
		return res, err
	}

	for _, name := range s.pages.Names() {
		out, err := s.pages.Render(ctx, name)
		if err != nil {
			return res, err
		}
		file := PageFile(name)
		if err := os.WriteFile(filepath.Join(s.outDir, file), []byte(out.HTML), 0o644); err != nil {
			return res, fmt.Errorf("write %s: %w", file, err)
		}
		res.Pages = append(res.Pages, file)
		log.Info().Str("page", name).Str("file", file).Msg("page exported")
	}

	n, err := s.copyPublic(ctx)
	res.Assets = n
	return res, err
}

func (s *ExportService) copyPublic(ctx context.Context) (int, error) {
	if s.publicDir == "" {
		return 0, nil
	}
	if _, err := os.Stat(s.publicDir); errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("dir", s.publicDir).Msg("public dir missing, no assets exported")
		return 0, nil
	}

	sem := semaphore.NewWeighted(s.workers)
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		copied int
		errs   []error
	)

	walkErr := filepath.WalkDir(s.publicDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.publicDir, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(s.outDir, rel)
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			return err
		}
		wg.Add(1)
		go func(src, dst string) {
			defer wg.Done()
			defer sem.Release(1)

			err := copyFile(src, dst)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Warn().Str("src", src).Err(err).Msg("asset copy failed")
				errs = append(errs, err)
				return
			}
			copied++
		}(path, dst)
		return nil
	})

	wg.Wait()
	if walkErr != nil {
		errs = append(errs, walkErr)
	}
	return copied, errors.Join(errs...)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
