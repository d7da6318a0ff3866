package fourchan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRequestInterval follows the API rule of at most one request per second.
const DefaultRequestInterval = time.Second

type Client struct {
	baseURL string
	links   Links
	http    *http.Client
	limiter *rate.Limiter
	log     *slog.Logger
}

// NewClient builds a read-only API client. A nil httpClient gets a client
// without a timeout; an interval <= 0 disables request pacing.
func NewClient(baseURL string, links Links, interval time.Duration, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		links:   links,
		http:    httpClient,
		limiter: rate.NewLimiter(limit, 1),
		log:     slog.Default(),
	}
}

func (c *Client) Links() Links {
	return c.links
}

func (c *Client) FetchCatalog(ctx context.Context, board string) ([]Page, error) {
	var pages []Page
	path := "/" + url.PathEscape(board) + "/catalog.json"
	if err := c.getJSON(ctx, path, "catalog", &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func (c *Client) FetchThread(ctx context.Context, board string, id int64) ([]Post, error) {
	var payload struct {
		Posts *[]Post `json:"posts"`
	}
	path := fmt.Sprintf("/%s/thread/%d.json", url.PathEscape(board), id)
	if err := c.getJSON(ctx, path, "thread", &payload); err != nil {
		return nil, err
	}
	if payload.Posts == nil {
		return nil, &FormatError{Resource: "thread", Reason: "no posts field"}
	}
	if len(*payload.Posts) == 0 {
		return nil, &FormatError{Resource: "thread", Reason: "thread has no posts"}
	}
	return *payload.Posts, nil
}

func (c *Client) getJSON(ctx context.Context, path, resource string, out any) error {
	fullURL := c.baseURL + path
	if err := c.limiter.Wait(ctx); err != nil {
		return &FetchError{Resource: resource, URL: fullURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return &FetchError{Resource: resource, URL: fullURL, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("api request failed", "resource", resource, "url", fullURL, "err", err)
		return &FetchError{Resource: resource, URL: fullURL, Err: err}
	}
	defer resp.Body.Close()
	c.log.Debug("api request", "resource", resource, "url", fullURL, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &FetchError{
			Resource:   resource,
			URL:        fullURL,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FormatError{Resource: resource, Reason: "decode response", Err: err}
	}
	return nil
}
