package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"alx_listing/internal/app"
	"alx_listing/internal/domain"
	"alx_listing/internal/shared"
	"alx_listing/internal/ui"
)

type Handlers struct {
	Pages     *app.PageService
	PublicDir string        // "" disables /assets
	Actions   *rate.Limiter // nil means unlimited
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.page(ui.HomePage))

	actions := s.mux.With()
	if h.Actions != nil {
		actions = s.mux.With(RateLimit(h.Actions))
	}
	actions.Post("/actions/{id}", h.activate(ui.HomePage))

	for _, p := range shared.ReservedAPIPaths() {
		s.mux.HandleFunc(p, notImplemented)
		s.mux.HandleFunc(p+"/*", notImplemented)
	}

	if h.PublicDir != "" {
		fs := http.FileServer(http.Dir(filepath.Join(h.PublicDir, "assets")))
		s.mux.Handle("/assets/*", http.StripPrefix("/assets/", fs))
	}
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func (h *Handlers) page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := h.Pages.Render(r.Context(), name)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeProblem(w, http.StatusNotFound, "Not Found", "page not found")
				return
			}
			log.Error().Err(err).Str("page", name).Msg("page render failed")
			writeProblem(w, http.StatusInternalServerError, shared.Text.Error, "")
			return
		}

		// If client already has this version, short-circuit.
		if inm := r.Header.Get("If-None-Match"); inm != "" && inm == out.ETag {
			w.Header().Set("ETag", out.ETag)
			w.WriteHeader(http.StatusNotModified)
			return
		}

		w.Header().Set("ETag", out.ETag)
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Content-Language", "en")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(out.HTML)); err != nil {
			log.Error().Err(err).Str("page", name).Msg("failed to write page body")
		}
	}
}

func (h *Handlers) activate(pageName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		err := h.Pages.Activate(pageName, id)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, domain.ErrNotFound):
			writeProblem(w, http.StatusNotFound, "Not Found", "no button "+id)
		case errors.Is(err, domain.ErrButtonDisabled):
			writeProblem(w, http.StatusConflict, "Button Disabled", "button "+id+" is disabled")
		default:
			log.Error().Err(err).Str("button", id).Msg("button activation failed")
			writeProblem(w, http.StatusInternalServerError, shared.Text.Error, "")
		}
	}
}

func notImplemented(w http.ResponseWriter, r *http.Request) {
	writeProblem(w, http.StatusNotImplemented, "Not Implemented", r.URL.Path+" is reserved and not served by this build")
}
