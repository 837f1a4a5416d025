package fetch

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"congrec/internal/model"
)

// volumeSuffix matches the "; congressional record vol. N, no. N"
// annotation appended to article titles, which is stripped from file
// names.
var volumeSuffix = regexp.MustCompile(`; congressional record vol\. [0-9]+, no\. [0-9]+`)

// InScope reports whether a locator survives the procedural filter:
// only House and Senate section articles whose lowercased title
// contains none of the configured procedural terms.
func InScope(loc model.ArticleLocator, proceduralTerms []string) bool {
	if loc.Section != model.SectionHouse && loc.Section != model.SectionSenate {
		return false
	}
	title := strings.ToLower(loc.Title)
	for _, term := range proceduralTerms {
		if term != "" && strings.Contains(title, term) {
			return false
		}
	}
	return true
}

// Filter returns the in-scope subset of locators in input order.
func Filter(locs []model.ArticleLocator, proceduralTerms []string) []model.ArticleLocator {
	out := make([]model.ArticleLocator, 0, len(locs))
	for _, loc := range locs {
		if InScope(loc, proceduralTerms) {
			out = append(out, loc)
		}
	}
	return out
}

// Slug derives the filesystem-safe name for an article title: the
// lowercased title with the volume annotation and path separators
// removed.
func Slug(title string) string {
	s := volumeSuffix.ReplaceAllString(strings.ToLower(title), "")
	s = strings.ReplaceAll(s, "/", " ")
	return strings.TrimSpace(s)
}

// ArticlePath is the deterministic output path for a locator under
// root: <root>/<volume>/<issue>/<section>/<slug>.txt.
func ArticlePath(root string, loc model.ArticleLocator) string {
	return filepath.Join(root,
		strconv.Itoa(loc.Volume),
		strconv.Itoa(loc.Issue),
		string(loc.Section),
		Slug(loc.Title)+".txt")
}
