package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"

	"hearth/internal/recipes"
)

type recipeLister interface {
	List(ctx context.Context) ([]recipes.Recipe, error)
}

type Server struct {
	lister recipeLister
	domain string
}

const robots = `# Allow all search engines to crawl the site
User-agent: *
Allow: /

# Sitemap location
Sitemap: %s/sitemap.xml
`

func New(lister recipeLister, domain string) *Server {
	return &Server{lister: lister, domain: domain}
}

func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /sitemap.xml", s.handleSitemap)
	mux.HandleFunc("GET /robots.txt", s.handleRobots)
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc string `xml:"loc"`
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	all, err := s.lister.List(r.Context())
	if err != nil {
		http.Error(w, "failed to load sitemap", http.StatusInternalServerError)
		slog.ErrorContext(r.Context(), "failed to read sitemap urls", "error", err)
		return
	}

	entries := make([]urlEntry, 0, len(all)+1)
	entries = append(entries, urlEntry{Loc: s.domain + "/recipes"})
	for _, recipe := range all {
		entries = append(entries, urlEntry{Loc: s.domain + "/recipes/" + recipe.Slug})
	}
	slog.InfoContext(r.Context(), "serving sitemap", "count", len(entries))

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		slog.ErrorContext(r.Context(), "failed to write sitemap header", "error", err)
		return
	}
	if err := xml.NewEncoder(w).Encode(urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  entries,
	}); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode sitemap", "error", err)
	}
}

func (s *Server) handleRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := fmt.Fprintf(w, robots, s.domain); err != nil {
		slog.ErrorContext(r.Context(), "failed to write robots.txt", "error", err)
	}
}
