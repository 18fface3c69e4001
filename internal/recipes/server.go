package recipes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/mail"
	"strconv"
	"strings"

	"hearth/internal/sanity"
	"hearth/internal/templates"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Mailer sends a rendered recipe to an address. nil disables sharing.
type Mailer interface {
	Share(ctx context.Context, to, subject, plainText, htmlBody string) error
}

type server struct {
	service *Service
	images  *sanity.ImageBuilder
	mailer  Mailer
	domain  string
	tracer  trace.Tracer
}

// NewHandler returns the recipe page handlers. mailer may be nil.
func NewHandler(service *Service, images *sanity.ImageBuilder, mailer Mailer, domain string) *server {
	return &server{
		service: service,
		images:  images,
		mailer:  mailer,
		domain:  domain,
		tracer:  otel.Tracer("hearth/recipes"),
	}
}

func (s *server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleList)
	mux.HandleFunc("GET /recipes", s.handleList)
	mux.HandleFunc("GET /recipes/{slug}", s.handleSingle)
	mux.HandleFunc("POST /recipes/{slug}/share", s.handleShare)
}

func (s *server) Ready(ctx context.Context) error {
	return s.service.Ready(ctx)
}

func (s *server) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "recipes.list")
	defer span.End()

	f := Filter{
		Query:      strings.TrimSpace(r.URL.Query().Get("q")),
		Tag:        strings.TrimSpace(r.URL.Query().Get("tag")),
		Difficulty: strings.TrimSpace(r.URL.Query().Get("difficulty")),
	}

	all, err := s.service.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load recipe list", "error", err)
		http.Error(w, "recipes are unavailable right now", http.StatusBadGateway)
		return
	}

	matched := Search(all, f)
	span.SetAttributes(attribute.Int("recipes.total", len(all)), attribute.Int("recipes.matched", len(matched)))
	s.renderList(w, r, all, matched, f)
}

func (s *server) handleSingle(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "recipes.single")
	defer span.End()

	slug := r.PathValue("slug")
	scale := parseScale(r.URL.Query().Get("scale"))
	span.SetAttributes(attribute.String("recipe.slug", slug), attribute.Float64("recipe.scale", scale))

	// the detail document and the list (for related picks) are independent
	// fetches; run them together
	var recipe *Recipe
	var all []Recipe
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recipe, err = s.service.BySlug(gctx, slug)
		return err
	})
	g.Go(func() error {
		var err error
		all, err = s.service.List(gctx)
		if err != nil {
			// related picks are best effort
			slog.WarnContext(gctx, "failed to load list for related recipes", "slug", slug, "error", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.ErrorContext(ctx, "failed to load recipe", "slug", slug, "error", err)
		http.Error(w, "recipe is unavailable right now", http.StatusBadGateway)
		return
	}

	related := Related(all, recipe, 3)
	shared := r.URL.Query().Get("shared") == "1"
	s.renderRecipe(w, r, recipe, related, scale, shared)
}

func (s *server) handleShare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if s.mailer == nil {
		http.NotFound(w, r)
		return
	}

	slug := r.PathValue("slug")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	to := strings.TrimSpace(r.Form.Get("to"))
	if _, err := mail.ParseAddress(to); err != nil {
		http.Error(w, "provide a valid email address", http.StatusBadRequest)
		return
	}

	recipe, err := s.service.BySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.ErrorContext(ctx, "failed to load recipe for share", "slug", slug, "error", err)
		http.Error(w, "recipe is unavailable right now", http.StatusBadGateway)
		return
	}

	htmlBody, err := s.shareBody(recipe)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render share mail", "slug", slug, "error", err)
		http.Error(w, "failed to render mail", http.StatusInternalServerError)
		return
	}
	plain := fmt.Sprintf("%s, open it on Hearth: %s/recipes/%s", recipe.Title, s.domain, recipe.Slug)

	if err := s.mailer.Share(ctx, to, "Recipe for you: "+recipe.Title, plain, htmlBody); err != nil {
		slog.ErrorContext(ctx, "failed to send share mail", "slug", slug, "error", err)
		http.Error(w, "failed to send mail", http.StatusBadGateway)
		return
	}

	slog.InfoContext(ctx, "shared recipe by mail", "slug", slug)
	http.Redirect(w, r, "/recipes/"+slug+"?shared=1", http.StatusSeeOther)
}

func (s *server) shareBody(recipe *Recipe) (string, error) {
	data := struct {
		Title        string
		FamilyMember string
		Description  string
		Ingredients  []ingredientView
		Instructions []string
		URL          string
	}{
		Title:        recipe.Title,
		FamilyMember: recipe.FamilyMember,
		Description:  recipe.Description,
		Ingredients:  ingredientViews(recipe.Ingredients, 1),
		Instructions: recipe.Instructions,
		URL:          s.domain + "/recipes/" + recipe.Slug,
	}
	var buf bytes.Buffer
	if err := templates.Mail.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// parseScale interprets the ?scale= query arg. Anything unusable means the
// default view.
func parseScale(raw string) float64 {
	if raw == "" {
		return 1
	}
	scale, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return 1
	}
	return scale
}
