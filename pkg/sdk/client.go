// Package discovery provides a Go client for the discovery search API.
//
//	client := discovery.New("http://localhost:8080",
//	    discovery.WithAPIKey("secret"),
//	)
//	resp, _ := client.Search(ctx, discovery.SearchRequest{
//	    Query:    "backend engineer in Berlin",
//	    Location: "berlin",
//	})
//	fmt.Println(resp.Summary)
package discovery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client is the discovery SDK entry point.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures the Client.
type Option interface {
	apply(*Client)
}

type optionFunc func(*Client)

func (f optionFunc) apply(c *Client) { f(c) }

// WithAPIKey sets the bearer token sent with every request.
func WithAPIKey(key string) Option {
	return optionFunc(func(c *Client) {
		c.apiKey = key
	})
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *Client) {
		c.httpClient = hc
	})
}

// New creates a discovery API client.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o.apply(c)
	}
	return c
}

// SearchRequest is the search query payload. Keyword nil means the server
// derives the lexical term from Query; point it at an empty string to disable
// the lexical term entirely.
type SearchRequest struct {
	Query       string  `json:"query"`
	Keyword     *string `json:"keyword,omitempty"`
	Location    string  `json:"location,omitempty"`
	Skill       string  `json:"skill,omitempty"`
	Limit       int     `json:"limit,omitempty"`
	Offset      int     `json:"offset,omitempty"`
	RequesterID string  `json:"requester_id,omitempty"`
}

// SearchResponse is the ranked search outcome.
type SearchResponse struct {
	Summary string         `json:"summary"`
	Results []SearchResult `json:"results"`
	Meta    SearchMeta     `json:"meta"`
}

// SearchResult is one ranked candidate.
type SearchResult struct {
	Collection string  `json:"collection"`
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Context    string  `json:"context"`
	Bio        string  `json:"bio"`
	Score      float64 `json:"score"`
}

// SearchMeta echoes the effective query parameters.
type SearchMeta struct {
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
	Keyword  string  `json:"keyword"`
	Location string  `json:"location,omitempty"`
	Skill    string  `json:"skill,omitempty"`
	Weights  Weights `json:"weights"`
	MinScore float64 `json:"min_score"`
}

// Weights are the blended-score coefficients.
type Weights struct {
	Vector  float64 `json:"vector"`
	Lexical float64 `json:"lexical"`
}

// HealthReport is the aggregated service health.
type HealthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// APIError is a non-2xx answer from the service.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("discovery: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Search runs one discovery query.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("discovery: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("discovery: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("discovery: search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var out SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("discovery: decode response: %w", err)
	}
	return &out, nil
}

// Health fetches the aggregated service health. A degraded service answers
// with a report and a nil error.
func (c *Client) Health(ctx context.Context) (*HealthReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("discovery: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("discovery: health request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusServiceUnavailable {
		return nil, decodeAPIError(resp)
	}

	var out HealthReport
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("discovery: decode health response: %w", err)
	}
	return &out, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = "unknown"
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
