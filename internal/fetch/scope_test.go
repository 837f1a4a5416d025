package fetch

import (
	"path/filepath"
	"testing"

	"congrec/internal/model"
)

var procTerms = []string{"prayer", "pledge of allegiance", "adjournment"}

func locator(section model.Section, title string) model.ArticleLocator {
	return model.ArticleLocator{
		Volume:  164,
		Issue:   12,
		Section: section,
		Title:   title,
	}
}

func TestInScope(t *testing.T) {
	cases := []struct {
		name string
		loc  model.ArticleLocator
		want bool
	}{
		{"house debate", locator(model.SectionHouse, "BORDER SECURITY FUNDING"), true},
		{"senate debate", locator(model.SectionSenate, "NOMINATION OF JANE DOE"), true},
		{"house procedural", locator(model.SectionHouse, "PRAYER"), false},
		{"senate procedural", locator(model.SectionSenate, "Pledge of Allegiance"), false},
		{"procedural substring", locator(model.SectionHouse, "MOTION FOR ADJOURNMENT TODAY"), false},
		{"extensions excluded", locator(model.SectionExtensions, "TRIBUTE TO A CONSTITUENT"), false},
		{"daily digest excluded", locator(model.SectionDigest, "DAILY DIGEST"), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := InScope(c.loc, procTerms); got != c.want {
				t.Errorf("InScope(%q, %q) = %v, want %v", c.loc.Section, c.loc.Title, got, c.want)
			}
		})
	}
}

func TestFilter_KeepsOrder(t *testing.T) {
	locs := []model.ArticleLocator{
		locator(model.SectionHouse, "FIRST BILL"),
		locator(model.SectionHouse, "PRAYER"),
		locator(model.SectionSenate, "SECOND BILL"),
		locator(model.SectionDigest, "DIGEST"),
	}
	got := Filter(locs, procTerms)
	if len(got) != 2 {
		t.Fatalf("expected 2 in-scope locators, got %d", len(got))
	}
	if got[0].Title != "FIRST BILL" || got[1].Title != "SECOND BILL" {
		t.Errorf("unexpected order: %q, %q", got[0].Title, got[1].Title)
	}
}

func TestSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{
			"BORDER SECURITY; Congressional Record Vol. 164, No. 12",
			"border security",
		},
		{
			"H.R. 1234/S. types of measure",
			"h.r. 1234 s. types of measure",
		},
		{"PLAIN TITLE", "plain title"},
	}
	for _, c := range cases {
		if got := Slug(c.in); got != c.want {
			t.Errorf("Slug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestArticlePath(t *testing.T) {
	loc := model.ArticleLocator{
		Volume:  164,
		Issue:   12,
		Section: model.SectionHouse,
		Title:   "BORDER SECURITY; Congressional Record Vol. 164, No. 12",
	}
	got := ArticlePath("scraped_articles", loc)
	want := filepath.Join("scraped_articles", "164", "12", "House Section", "border security.txt")
	if got != want {
		t.Errorf("ArticlePath = %q, want %q", got, want)
	}
}
