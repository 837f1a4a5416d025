// Package cleanhtml strips markup and known Congressional Record
// boilerplate from raw article responses.
package cleanhtml

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// gpoHeader is the fixed provenance line printed at the top of every
// GPO-served article.
const gpoHeader = "From the Congressional Record Online through the Government Publishing Office [www.gpo.gov]"

var (
	pagesPattern   = regexp.MustCompile(`\[Pages \w+-\w*\]`)
	bracketPattern = regexp.MustCompile(`\[\[.*?\]\]`)
)

// Text reduces a raw HTML article body to plain text with the GPO
// header and bracketed page-number annotations removed.
func Text(raw string) (string, error) {
	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("parse article html: %w", err)
	}

	text := goquery.NewDocumentFromNode(root).Text()
	text = strings.ReplaceAll(text, gpoHeader, "")
	text = pagesPattern.ReplaceAllString(text, "")
	text = bracketPattern.ReplaceAllString(text, "")
	return text, nil
}
