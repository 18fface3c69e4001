package recipes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"hearth/internal/cache"
	"hearth/internal/config"
	"hearth/internal/sanity"
	"hearth/internal/templates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImages() *sanity.ImageBuilder {
	return sanity.NewImageBuilder(config.ContentConfig{ProjectID: "abc123", Dataset: "production"})
}

func initTemplates(t *testing.T) {
	t.Helper()
	require.NoError(t, templates.Init("/static/styles.css"))
}

type capturingMailer struct {
	to      string
	subject string
	html    string
}

func (m *capturingMailer) Share(_ context.Context, to, subject, _, htmlBody string) error {
	m.to = to
	m.subject = subject
	m.html = htmlBody
	return nil
}

func testMux(t *testing.T, content *fakeContent, mailer Mailer) *http.ServeMux {
	t.Helper()
	initTemplates(t)
	svc := NewService(content, cache.NewInMemoryCache())
	handler := NewHandler(svc, testImages(), mailer, "https://hearth.test")
	mux := http.NewServeMux()
	handler.Register(mux)
	return mux
}

func TestHandleListRendersRecipes(t *testing.T) {
	content := &fakeContent{result: []Recipe{
		{ID: "r1", Title: "Nonna's Lasagna", Slug: "nonna-lasagna", PrepTime: 40, CookTime: 35, Difficulty: "showstopper", Tags: []string{"pasta"}},
		{ID: "r2", Title: "Weeknight Chili", Slug: "weeknight-chili", Difficulty: "weeknight"},
	}}
	mux := testMux(t, content, nil)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/recipes", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Nonna&#39;s Lasagna")
	assert.Contains(t, body, "Weeknight Chili")
	assert.Contains(t, body, "1h 15m")
	assert.Contains(t, body, "Showstopper")
}

func TestHandleListAppliesFilter(t *testing.T) {
	content := &fakeContent{result: []Recipe{
		{ID: "r1", Title: "Nonna's Lasagna", Slug: "nonna-lasagna", Difficulty: "showstopper"},
		{ID: "r2", Title: "Weeknight Chili", Slug: "weeknight-chili", Difficulty: "weeknight"},
	}}
	mux := testMux(t, content, nil)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/recipes?difficulty=weeknight", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Weeknight Chili")
	assert.NotContains(t, body, "nonna-lasagna")
}

func TestHandleSingleScalesIngredients(t *testing.T) {
	content := &fakeContent{result: Recipe{
		ID:    "r1",
		Title: "Pancakes",
		Slug:  "pancakes",
		Ingredients: []Ingredient{
			{Key: "i1", Item: "flour", Quantity: "1 1/2", Unit: "cups"},
			{Key: "i2", Item: "salt", Quantity: "pinch"},
		},
		Instructions: []string{"Mix.", "Fry."},
	}}
	mux := testMux(t, content, nil)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/recipes/pancakes?scale=2", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `<span class="amount">3</span>`)
	assert.Contains(t, body, "pinch (x2)")
}

func TestHandleSingleDefaultScalePreservesText(t *testing.T) {
	content := &fakeContent{result: Recipe{
		ID:          "r1",
		Title:       "Pancakes",
		Slug:        "pancakes",
		Ingredients: []Ingredient{{Key: "i1", Item: "flour", Quantity: "1 1/2", Unit: "cups"}},
	}}
	mux := testMux(t, content, nil)

	for _, target := range []string{"/recipes/pancakes", "/recipes/pancakes?scale=bogus", "/recipes/pancakes?scale=-2"} {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, rr.Code, target)
		assert.Contains(t, rr.Body.String(), `<span class="amount">1 1/2</span>`, target)
	}
}

func TestHandleSingleNotFound(t *testing.T) {
	content := &fakeContent{result: nil}
	mux := testMux(t, content, nil)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/recipes/no-such-recipe", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandleShareWithoutMailerIs404(t *testing.T) {
	content := &fakeContent{result: Recipe{ID: "r1", Slug: "pancakes"}}
	mux := testMux(t, content, nil)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/recipes/pancakes/share", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandleShareSendsMail(t *testing.T) {
	content := &fakeContent{result: Recipe{ID: "r1", Title: "Pancakes", Slug: "pancakes"}}
	mailer := &capturingMailer{}
	mux := testMux(t, content, mailer)

	form := url.Values{"to": {"aunt@example.com"}}
	req := httptest.NewRequest(http.MethodPost, "/recipes/pancakes/share", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "aunt@example.com", mailer.to)
	assert.Contains(t, mailer.subject, "Pancakes")
	assert.Contains(t, mailer.html, "https://hearth.test/recipes/pancakes")
}

func TestHandleShareRejectsBadAddress(t *testing.T) {
	content := &fakeContent{result: Recipe{ID: "r1", Slug: "pancakes"}}
	mux := testMux(t, content, &capturingMailer{})

	form := url.Values{"to": {"not-an-address"}}
	req := httptest.NewRequest(http.MethodPost, "/recipes/pancakes/share", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
