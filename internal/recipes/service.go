package recipes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hearth/internal/cache"

	"github.com/samber/lo"
)

const recipeCachePrefix = "recipe/"
const listCacheKey = "list/all"
const defaultTTL = 5 * time.Minute

var ErrNotFound = errors.New("recipe not found")

var nowFn = time.Now

// listQuery projects the list-page fields only; ingredients and instructions
// come down with the single-document query.
const listQuery = `*[_type == "recipe"] | order(title asc){
  _id, title, "slug": slug.current, description, familyMember,
  servings, prepTime, cookTime, difficulty, tags,
  "image": image.asset._ref
}`

const singleQueryFmt = `*[_type == "recipe" && slug.current == %q][0]{
  ..., "slug": slug.current, "image": image.asset._ref,
  ingredients[]{ _key, item, quantity, unit, note }
}`

type contentClient interface {
	Query(ctx context.Context, groq string, out any) error
}

// Service fetches recipe documents through the content client, caching raw
// responses so a flaky content API degrades to stale pages instead of errors.
type Service struct {
	client contentClient
	cache  cache.Cache
	ttl    time.Duration
}

func NewService(client contentClient, c cache.Cache) *Service {
	return &Service{client: client, cache: c, ttl: defaultTTL}
}

func (s *Service) Ready(ctx context.Context) error {
	var count int
	return s.client.Query(ctx, `count(*[_type == "recipe"])`, &count)
}

// envelope wraps a cached response with its fetch time so staleness is
// decided here, not by the cache backend.
type envelope struct {
	FetchedAt time.Time       `json:"fetched_at"`
	Body      json.RawMessage `json:"body"`
}

func (s *Service) List(ctx context.Context) ([]Recipe, error) {
	var all []Recipe
	if err := s.fetch(ctx, listCacheKey, listQuery, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (s *Service) BySlug(ctx context.Context, slug string) (*Recipe, error) {
	var recipe Recipe
	if err := s.fetch(ctx, recipeCachePrefix+slug, fmt.Sprintf(singleQueryFmt, slug), &recipe); err != nil {
		return nil, err
	}
	// GROQ [0] on no match yields null, which decodes to the zero Recipe
	if recipe.ID == "" {
		return nil, ErrNotFound
	}
	return &recipe, nil
}

func (s *Service) fetch(ctx context.Context, key, groq string, out any) error {
	cached, age := s.fromCache(ctx, key)
	if cached != nil && age <= s.ttl {
		return json.Unmarshal(cached, out)
	}

	var result json.RawMessage
	if err := s.client.Query(ctx, groq, &result); err != nil {
		if cached != nil {
			slog.WarnContext(ctx, "content fetch failed, serving stale cache", "key", key, "age", age, "error", err)
			return json.Unmarshal(cached, out)
		}
		return err
	}

	env := envelope{FetchedAt: nowFn(), Body: result}
	if err := s.cache.Put(ctx, key, string(lo.Must(json.Marshal(env))), cache.Unconditional()); err != nil {
		// cache writes are best effort
		slog.ErrorContext(ctx, "failed to cache content response", "key", key, "error", err)
	}
	return json.Unmarshal(result, out)
}

// fromCache returns the cached body and its age, or (nil, 0) on any miss or
// decode problem.
func (s *Service) fromCache(ctx context.Context, key string) (json.RawMessage, time.Duration) {
	rc, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrNotFound) {
			slog.ErrorContext(ctx, "cache read failed", "key", key, "error", err)
		}
		return nil, 0
	}
	defer func() {
		if err := rc.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close cached response", "key", key, "error", err)
		}
	}()

	var env envelope
	if err := json.NewDecoder(rc).Decode(&env); err != nil {
		slog.ErrorContext(ctx, "failed to decode cached response", "key", key, "error", err)
		return nil, 0
	}
	return env.Body, nowFn().Sub(env.FetchedAt)
}
