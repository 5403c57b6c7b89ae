package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/newskeeper/newskeeper_backend/internal/apperrors"
	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
	portssvc "github.com/newskeeper/newskeeper_backend/internal/core/ports/services"
)

const (
	// DefaultBaseURL is the public NewsAPI.org v2 endpoint.
	DefaultBaseURL = "https://newsapi.org/v2"

	language       = "en"
	requestTimeout = 10 * time.Second
)

// Client talks to the NewsAPI.org REST API. It implements the news search
// port; every call is bounded by the client timeout and the caller's context.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ portssvc.NewsSvcFacade = (*Client)(nil)

func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// errorBody is the NewsAPI failure envelope ({"status":"error",...}).
type errorBody struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TopHeadlines fetches English top headlines, narrowed to a category when one
// is given.
func (c *Client) TopHeadlines(ctx context.Context, category string) (*domain.NewsResponse, error) {
	params := url.Values{}
	params.Set("language", language)
	if category != "" {
		params.Set("category", category)
	}
	return c.get(ctx, "/top-headlines", params)
}

// Everything runs a free-text search sorted by relevancy. `to` bounds the
// publication date (YYYY-M-D); empty query or bound are omitted.
func (c *Client) Everything(ctx context.Context, query, to string) (*domain.NewsResponse, error) {
	params := url.Values{}
	params.Set("language", language)
	params.Set("page", "1")
	if query != "" {
		params.Set("q", query)
		params.Set("sortBy", "relevancy")
	}
	if to != "" {
		params.Set("to", to)
	}
	return c.get(ctx, "/everything", params)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*domain.NewsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build news request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news request failed: %w: %w", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body errorBody
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return nil, fmt.Errorf("news API returned %d (%s): %w", resp.StatusCode, body.Code, apperrors.ErrUpstream)
	}

	var result domain.NewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode news response: %w: %w", apperrors.ErrUpstream, err)
	}
	return &result, nil
}
