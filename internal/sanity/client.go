package sanity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"hearth/internal/config"

	"github.com/hashicorp/go-retryablehttp"
)

// Client issues GROQ queries against a hosted Sanity dataset.
type Client struct {
	http     *retryablehttp.Client
	queryURL string
	token    string
}

// APIError is a non-2xx answer from the content API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("content api returned %d: %s", e.StatusCode, e.Body)
}

func NewClient(cfg config.ContentConfig) *Client {
	host := "api.sanity.io"
	if cfg.UseCDN {
		host = "apicdn.sanity.io"
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.Logger = nil // retries show up in our own logs

	return &Client{
		http:     rc,
		queryURL: fmt.Sprintf("https://%s.%s/v%s/data/query/%s", cfg.ProjectID, host, cfg.APIVersion, cfg.Dataset),
		token:    cfg.Token,
	}
}

type queryEnvelope struct {
	Result json.RawMessage `json:"result"`
}

// Query runs a GROQ query and decodes the result envelope into out.
func (c *Client) Query(ctx context.Context, groq string, out any) error {
	u := c.queryURL + "?query=" + url.QueryEscape(groq)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build query request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("content query failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var envelope queryEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode query response: %w", err)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("failed to decode query result: %w", err)
	}
	return nil
}

// Ready runs the cheapest possible query to prove the dataset is reachable.
func (c *Client) Ready(ctx context.Context) error {
	var count int
	return c.Query(ctx, `count(*[_type == "recipe"])`, &count)
}

// WithBaseURL overrides the query endpoint, for tests.
func (c *Client) WithBaseURL(base string) *Client {
	c.queryURL = base
	return c
}
