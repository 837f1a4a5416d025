// Package congress is the client for the congress.gov v3 REST API:
// credentialed GETs, typed page payloads, and cursor-based pagination.
package congress

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"congrec/internal/cache"
)

// Client wraps a resty client bound to the API base URL. The access
// credential is appended to every request as the api_key query
// parameter.
type Client struct {
	http     *resty.Client
	key      string
	pages    cache.Cache
	cacheTTL time.Duration
}

// NewClient creates an API client. The key is required by the API for
// every endpoint.
func NewClient(baseURL, key string, timeout time.Duration, userAgent string) *Client {
	c := resty.New()
	c.SetBaseURL(baseURL)
	c.SetTimeout(timeout)
	c.SetHeader("User-Agent", userAgent)
	return &Client{http: c, key: key}
}

// WithCache enables serving repeated page requests from the given
// cache. Responses are cached by URL without the credential.
func (c *Client) WithCache(pages cache.Cache, ttl time.Duration) *Client {
	c.pages = pages
	c.cacheTTL = ttl
	return c
}

// get fetches url (relative to the base, or an absolute cursor URL)
// and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, url string, out any) error {
	if c.pages != nil {
		if body, ok := c.pages.Get(cache.Key(url)); ok {
			return json.Unmarshal(body, out)
		}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("api_key", c.key).
		SetQueryParam("format", "json").
		Get(url)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	if resp.IsError() {
		return fmt.Errorf("get %s: unexpected status %s", url, resp.Status())
	}

	body := resp.Body()
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	if c.pages != nil {
		_ = c.pages.Set(cache.Key(url), body, c.cacheTTL)
	}
	return nil
}

// Volume fetches the first page of a volume's daily issue listing.
func (c *Client) Volume(ctx context.Context, volume int) (*VolumePage, error) {
	var page VolumePage
	if err := c.get(ctx, fmt.Sprintf("/daily-congressional-record/%d", volume), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// VolumeNext follows a volume listing cursor.
func (c *Client) VolumeNext(ctx context.Context, cursor string) (*VolumePage, error) {
	var page VolumePage
	if err := c.get(ctx, cursor, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// IssueArticles fetches the first page of an issue's article listing,
// given the issue URL from a volume page.
func (c *Client) IssueArticles(ctx context.Context, issueURL string) (*ArticlesPage, error) {
	var page ArticlesPage
	if err := c.get(ctx, articlesURL(issueURL), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// IssueArticlesNext follows an article listing cursor.
func (c *Client) IssueArticlesNext(ctx context.Context, cursor string) (*ArticlesPage, error) {
	var page ArticlesPage
	if err := c.get(ctx, cursor, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Members fetches the first page of the member listing for a congress.
func (c *Client) Members(ctx context.Context, congress int) (*MembersPage, error) {
	var page MembersPage
	if err := c.get(ctx, fmt.Sprintf("/member/congress/%d", congress), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// MembersNext follows a member listing cursor.
func (c *Client) MembersNext(ctx context.Context, cursor string) (*MembersPage, error) {
	var page MembersPage
	if err := c.get(ctx, cursor, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// articlesURL turns an issue URL from a volume page into its article
// listing URL by dropping the query string and appending /articles.
func articlesURL(issueURL string) string {
	base := issueURL
	if i := strings.Index(base, "?"); i >= 0 {
		base = base[:i]
	}
	return strings.TrimSuffix(base, "/") + "/articles"
}
