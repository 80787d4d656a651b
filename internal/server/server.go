// Package server exposes the dashboard over HTTP: an HTML page with the
// language filter, and a JSON API returning the recomputed view.
package server

import (
	"embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/naka-gawa/repo-insights/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// Recomputer produces the dashboard view for a language selection.
type Recomputer interface {
	Recompute(sel domain.Selection) domain.ViewModel
	Languages() []string
}

// Server serves the dashboard.
type Server struct {
	dashboard Recomputer
	logger    *log.Logger
	page      *template.Template
	router    *chi.Mux
}

// New creates a Server with all routes registered.
func New(dashboard Recomputer, logger *log.Logger) (*Server, error) {
	page, err := template.New("dashboard.html").Funcs(funcMap).ParseFS(templateFS, "templates/dashboard.html")
	if err != nil {
		return nil, err
	}
	s := &Server{
		dashboard: dashboard,
		logger:    logger,
		page:      page,
		router:    chi.NewRouter(),
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: s.logger, NoColor: true}))
	s.router.Use(middleware.Recoverer)

	s.router.Get("/", s.handlePage)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/languages", s.handleLanguages)
		r.Get("/view", s.handleView)
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// SelectionFromQuery reads the language selection from query parameters.
// Without any "language" parameter every language is selected; empty values
// are dropped, so "?language=" alone selects nothing.
func SelectionFromQuery(q url.Values) domain.Selection {
	values, ok := q["language"]
	if !ok {
		return domain.AllLanguages()
	}
	langs := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			langs = append(langs, v)
		}
	}
	return domain.SelectLanguages(langs...)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string][]string{"languages": s.dashboard.Languages()})
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	vm := s.dashboard.Recompute(SelectionFromQuery(r.URL.Query()))
	s.writeJSON(w, http.StatusOK, vm)
}

type pageData struct {
	View     domain.ViewModel
	Selected map[string]bool
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	vm := s.dashboard.Recompute(SelectionFromQuery(r.URL.Query()))
	data := pageData{View: vm, Selected: make(map[string]bool, len(vm.Selected))}
	for _, l := range vm.Selected {
		data.Selected[l] = true
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		s.logger.Printf("Failed to execute dashboard template: %v", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		s.logger.Printf("Failed to encode response: %v", err)
	}
}
