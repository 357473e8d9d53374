// Package client talks to the recipe API and drives the mood picker session.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pageza/moodbites/backend/internal/types"
)

// ErrNotFound is returned when the server has no recipe for a mood
var ErrNotFound = errors.New("no recipes found for this mood")

// APIError is any other non-2xx response
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// Client is a thin JSON client for the recipe API. Requests are never retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the server at baseURL
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Moods fetches the distinct mood labels
func (c *Client) Moods(ctx context.Context) ([]string, error) {
	var moods []string
	if err := c.get(ctx, "/api/moods", &moods); err != nil {
		return nil, err
	}
	return moods, nil
}

// RecipeForMood fetches one random recipe for mood
func (c *Client) RecipeForMood(ctx context.Context, mood string) (*types.Recipe, error) {
	var recipe types.Recipe
	if err := c.get(ctx, "/api/recipes/"+url.PathEscape(mood), &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func errorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var errResp types.ErrorResponse
	if json.Unmarshal(data, &errResp) == nil && errResp.Error != "" {
		return errResp.Error
	}
	return strings.TrimSpace(string(data))
}
