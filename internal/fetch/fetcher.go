// Package fetch pulls in-scope article text, cleans it, and persists
// it under a deterministic directory layout.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http/cookiejar"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"congrec/internal/cleanhtml"
	"congrec/internal/model"
	"congrec/internal/store"
)

// FailedSentinel is recorded in place of the file path when an article
// cannot be pulled or cleaned. The batch keeps its one-row-per-article
// shape even under failure.
const FailedSentinel = "Error when pulling"

// Fetcher pulls articles one at a time over a single cookie-jar
// session. GPO serves per-session cookies, so the session is scoped to
// the run, never to an article.
type Fetcher struct {
	session *resty.Client
	limiter *rate.Limiter
	robots  *Robots
	store   *store.Store
	root    string
	terms   []string
	logger  *slog.Logger
}

// Options configures a fetch run.
type Options struct {
	Root            string
	ProceduralTerms []string
	Delay           time.Duration
	Timeout         time.Duration
	UserAgent       string
	CheckRobots     bool
}

// New creates a fetcher writing under opts.Root and recording outcomes
// in st.
func New(st *store.Store, opts Options, logger *slog.Logger) (*Fetcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	session := resty.New()
	session.SetTimeout(opts.Timeout)
	session.SetHeader("User-Agent", opts.UserAgent)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	session.SetCookieJar(jar)

	f := &Fetcher{
		session: session,
		limiter: rate.NewLimiter(rate.Every(opts.Delay), 1),
		store:   st,
		root:    opts.Root,
		terms:   opts.ProceduralTerms,
		logger:  logger,
	}
	if opts.CheckRobots {
		f.robots = NewRobots(session, opts.UserAgent)
	}
	return f, nil
}

// Run filters the locator table to in-scope articles and pulls each
// one. Per-article failures record the sentinel and processing
// continues; only setup and store errors abort the run.
func (f *Fetcher) Run(ctx context.Context) error {
	locs, err := f.store.Locators(ctx)
	if err != nil {
		return fmt.Errorf("load locators: %w", err)
	}
	required := Filter(locs, f.terms)
	f.logger.Info("fetch scope", "total", len(locs), "in_scope", len(required))
	if len(required) == 0 {
		return nil
	}

	// Warm-up request to establish the session cookie before the
	// per-article pulls.
	if _, err := f.session.R().SetContext(ctx).Get(required[0].TextURL); err != nil {
		return fmt.Errorf("warm up session: %w", err)
	}

	for i, loc := range required {
		if err := f.limiter.Wait(ctx); err != nil {
			return err
		}

		path, err := f.pull(ctx, loc)
		if err != nil {
			f.logger.Warn("article pull failed",
				"title", loc.Title, "url", loc.TextURL, "error", err)
			path = FailedSentinel
		} else {
			f.logger.Info("pulled article",
				"title", loc.Title, "progress", fmt.Sprintf("%d/%d", i+1, len(required)))
		}
		if err := f.store.RecordArticleFile(ctx, loc, path); err != nil {
			return err
		}
	}
	return nil
}

// pull fetches and cleans one article, writing its text file and
// returning the path.
func (f *Fetcher) pull(ctx context.Context, loc model.ArticleLocator) (string, error) {
	if f.robots != nil {
		allowed, err := f.robots.Allowed(ctx, loc.TextURL)
		if err != nil {
			return "", err
		}
		if !allowed {
			return "", fmt.Errorf("disallowed by robots.txt: %s", loc.TextURL)
		}
	}

	resp, err := f.session.R().SetContext(ctx).Get(loc.TextURL)
	if err != nil {
		return "", fmt.Errorf("get article: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("get article: unexpected status %s", resp.Status())
	}

	text, err := cleanhtml.Text(string(resp.Body()))
	if err != nil {
		return "", err
	}

	path := ArticlePath(f.root, loc)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create article dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write article: %w", err)
	}
	return path, nil
}
