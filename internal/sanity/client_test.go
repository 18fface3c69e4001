package sanity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hearth/internal/config"
)

func testConfig() config.ContentConfig {
	return config.ContentConfig{
		ProjectID:  "abc123",
		Dataset:    "production",
		APIVersion: "2024-01-01",
		UseCDN:     true,
	}
}

func TestQueryDecodesResultEnvelope(t *testing.T) {
	var gotQuery string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ms": 3, "result": [{"title": "Sunday Stew"}]}`))
	}))
	defer backend.Close()

	client := NewClient(testConfig()).WithBaseURL(backend.URL)

	var out []struct {
		Title string `json:"title"`
	}
	if err := client.Query(context.Background(), `*[_type == "recipe"]`, &out); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if gotQuery != `*[_type == "recipe"]` {
		t.Errorf("query not passed through, got %q", gotQuery)
	}
	if len(out) != 1 || out[0].Title != "Sunday Stew" {
		t.Errorf("unexpected result %+v", out)
	}
}

func TestQuerySendsBearerToken(t *testing.T) {
	var gotAuth string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"result": 0}`))
	}))
	defer backend.Close()

	cfg := testConfig()
	cfg.Token = "secret"
	client := NewClient(cfg).WithBaseURL(backend.URL)

	var n int
	if err := client.Query(context.Background(), "count(*)", &n); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("expected bearer token, got %q", gotAuth)
	}
}

func TestQuerySurfacesAPIError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad query", http.StatusBadRequest)
	}))
	defer backend.Close()

	client := NewClient(testConfig()).WithBaseURL(backend.URL)

	err := client.Query(context.Background(), "bogus", nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("unexpected status %d", apiErr.StatusCode)
	}
}

func TestQueryURLUsesCDNHost(t *testing.T) {
	client := NewClient(testConfig())
	want := "https://abc123.apicdn.sanity.io/v2024-01-01/data/query/production"
	if client.queryURL != want {
		t.Errorf("queryURL = %q, want %q", client.queryURL, want)
	}

	cfg := testConfig()
	cfg.UseCDN = false
	live := NewClient(cfg)
	want = "https://abc123.api.sanity.io/v2024-01-01/data/query/production"
	if live.queryURL != want {
		t.Errorf("queryURL = %q, want %q", live.queryURL, want)
	}
}
