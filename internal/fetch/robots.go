package fetch

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/temoto/robotstxt"
)

// Robots checks robots.txt before article pulls, caching the parsed
// rules per host. An unreachable robots.txt allows fetching.
type Robots struct {
	http      *resty.Client
	userAgent string

	mu    sync.RWMutex
	hosts map[string]*robotstxt.RobotsData
}

// NewRobots creates a checker that shares the fetch session's client.
func NewRobots(http *resty.Client, userAgent string) *Robots {
	return &Robots{
		http:      http,
		userAgent: userAgent,
		hosts:     make(map[string]*robotstxt.RobotsData),
	}
}

// Allowed reports whether the URL may be fetched under the host's
// robots.txt.
func (r *Robots) Allowed(ctx context.Context, rawURL string) (bool, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false, fmt.Errorf("parse URL: %w", err)
	}

	data, err := r.hostData(ctx, parsed)
	if err != nil || data == nil {
		return true, nil
	}
	return data.TestAgent(parsed.Path, r.userAgent), nil
}

func (r *Robots) hostData(ctx context.Context, u *url.URL) (*robotstxt.RobotsData, error) {
	r.mu.RLock()
	data, ok := r.hosts[u.Host]
	r.mu.RUnlock()
	if ok {
		return data, nil
	}

	resp, err := r.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s://%s/robots.txt", u.Scheme, u.Host))
	if err != nil {
		return nil, err
	}
	data, err = robotstxt.FromStatusAndBytes(resp.StatusCode(), resp.Body())
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.hosts[u.Host] = data
	r.mu.Unlock()
	return data, nil
}
