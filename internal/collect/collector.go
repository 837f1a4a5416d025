// Package collect walks the daily Congressional Record hierarchy
// (volume, issue, section, article) and produces the article locator
// table.
package collect

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"congrec/internal/congress"
	"congrec/internal/model"
)

// ErrNoFormattedText is returned when an article offers no
// "Formatted Text" representation. This is an API contract violation
// and deliberately aborts the traversal instead of being skipped.
var ErrNoFormattedText = errors.New(`no "Formatted Text" representation`)

// Collector traverses the record API and accumulates locator rows.
type Collector struct {
	client *congress.Client
	logger *slog.Logger
}

// New creates a collector.
func New(client *congress.Client, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{client: client, logger: logger}
}

// Collect walks volumes startVolume through endVolume inclusive and
// returns every article locator in traversal order: volume ascending,
// then issue page order, then section/article order as returned by
// the API.
func (c *Collector) Collect(ctx context.Context, startVolume, endVolume int) ([]model.ArticleLocator, error) {
	var rows []model.ArticleLocator
	for volume := startVolume; volume <= endVolume; volume++ {
		volRows, err := c.collectVolume(ctx, volume)
		if err != nil {
			return nil, fmt.Errorf("volume %d: %w", volume, err)
		}
		rows = append(rows, volRows...)
	}
	return rows, nil
}

// collectVolume follows the volume listing cursor. The current page is
// always processed before the cursor test so the terminal page's
// issues are not dropped.
func (c *Collector) collectVolume(ctx context.Context, volume int) ([]model.ArticleLocator, error) {
	page, err := c.client.Volume(ctx, volume)
	if err != nil {
		return nil, err
	}

	var rows []model.ArticleLocator
	for {
		for _, issue := range page.Issues {
			issueRows, err := c.collectIssue(ctx, volume, issue)
			if err != nil {
				return nil, err
			}
			rows = append(rows, issueRows...)
			c.logger.Info("collected issue",
				"volume", volume,
				"issue", issue.IssueNumber,
				"articles", len(issueRows))
		}
		next := page.Pagination.Next
		if next == "" {
			break
		}
		if page, err = c.client.VolumeNext(ctx, next); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// collectIssue follows an issue's article listing cursor, selecting
// the formatted-text representation of every article.
func (c *Collector) collectIssue(ctx context.Context, volume int, issue congress.IssueRef) ([]model.ArticleLocator, error) {
	issueNo, err := strconv.Atoi(issue.IssueNumber)
	if err != nil {
		return nil, fmt.Errorf("issue number %q: %w", issue.IssueNumber, err)
	}

	page, err := c.client.IssueArticles(ctx, issue.URL)
	if err != nil {
		return nil, err
	}

	var rows []model.ArticleLocator
	for {
		for _, section := range page.Sections {
			for _, article := range section.Articles {
				textURL, err := formattedTextURL(article)
				if err != nil {
					return nil, fmt.Errorf("issue %d article %q: %w", issueNo, article.Title, err)
				}
				rows = append(rows, model.ArticleLocator{
					Volume:    volume,
					Issue:     issueNo,
					IssueDate: issue.IssueDate,
					Section:   model.Section(section.Name),
					Title:     article.Title,
					TextURL:   textURL,
				})
			}
		}
		next := page.Pagination.Next
		if next == "" {
			break
		}
		if page, err = c.client.IssueArticlesNext(ctx, next); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

func formattedTextURL(article congress.Article) (string, error) {
	for _, rep := range article.Text {
		if rep.Type == congress.FormattedTextType {
			return rep.URL, nil
		}
	}
	return "", ErrNoFormattedText
}
