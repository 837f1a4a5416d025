package collect

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"congrec/internal/congress"
	"congrec/internal/model"
)

func articleJSON(title string, withFormatted bool) map[string]any {
	text := []map[string]any{
		{"type": "PDF", "url": "https://example.gov/" + title + ".pdf"},
	}
	if withFormatted {
		text = append(text, map[string]any{
			"type": "Formatted Text",
			"url":  "https://example.gov/" + title + ".htm",
		})
	}
	return map[string]any{"title": title, "text": text}
}

// newRecordServer serves one volume with one issue whose article
// listing spans three pages; pages 1 and 2 carry a next cursor, page 3
// does not.
func newRecordServer(t *testing.T) *httptest.Server {
	t.Helper()

	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/daily-congressional-record/164":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"dailyCongressionalRecord": []map[string]any{
					{
						"issueNumber": "12",
						"issueDate":   "2018-01-20",
						"url":         server.URL + "/daily-congressional-record/164/12?format=json",
					},
				},
				"pagination": map[string]any{"count": 1},
			})

		case "/daily-congressional-record/164/12/articles":
			page := r.URL.Query().Get("page")
			switch page {
			case "", "1":
				_ = json.NewEncoder(w).Encode(map[string]any{
					"articles": []map[string]any{
						{
							"name": "House Section",
							"sectionArticles": []map[string]any{
								articleJSON("article-one", true),
								articleJSON("article-two", true),
							},
						},
					},
					"pagination": map[string]any{
						"next": server.URL + "/daily-congressional-record/164/12/articles?page=2",
					},
				})
			case "2":
				_ = json.NewEncoder(w).Encode(map[string]any{
					"articles": []map[string]any{
						{
							"name": "Senate Section",
							"sectionArticles": []map[string]any{
								articleJSON("article-three", true),
							},
						},
					},
					"pagination": map[string]any{
						"next": server.URL + "/daily-congressional-record/164/12/articles?page=3",
					},
				})
			case "3":
				_ = json.NewEncoder(w).Encode(map[string]any{
					"articles": []map[string]any{
						{
							"name": "Daily Digest",
							"sectionArticles": []map[string]any{
								articleJSON("article-four", true),
							},
						},
					},
					"pagination": map[string]any{"count": 4},
				})
			default:
				http.NotFound(w, r)
			}

		default:
			http.NotFound(w, r)
		}
	}))
	return server
}

func TestCollect_ThreePageIssueListing(t *testing.T) {
	server := newRecordServer(t)
	defer server.Close()

	client := congress.NewClient(server.URL, "test-key", 5*time.Second, "congrec-test")
	rows, err := New(client, nil).Collect(context.Background(), 164, 164)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	// Every article from every page exactly once, in page order, the
	// terminal page included.
	wantTitles := []string{"article-one", "article-two", "article-three", "article-four"}
	if len(rows) != len(wantTitles) {
		t.Fatalf("expected %d rows, got %d", len(wantTitles), len(rows))
	}
	for i, want := range wantTitles {
		if rows[i].Title != want {
			t.Errorf("row %d title = %q, want %q", i, rows[i].Title, want)
		}
	}

	first := rows[0]
	if first.Volume != 164 || first.Issue != 12 || first.IssueDate != "2018-01-20" {
		t.Errorf("unexpected locator fields: %+v", first)
	}
	if first.Section != model.SectionHouse {
		t.Errorf("expected House Section, got %q", first.Section)
	}
	if first.TextURL != "https://example.gov/article-one.htm" {
		t.Errorf("expected formatted text URL, got %q", first.TextURL)
	}
	if rows[3].Section != model.SectionDigest {
		t.Errorf("expected Daily Digest section passthrough, got %q", rows[3].Section)
	}
}

func TestCollect_MissingFormattedTextIsHardError(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/daily-congressional-record/165":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"dailyCongressionalRecord": []map[string]any{
					{
						"issueNumber": "1",
						"issueDate":   "2019-01-03",
						"url":         server.URL + "/daily-congressional-record/165/1?format=json",
					},
				},
				"pagination": map[string]any{"count": 1},
			})
		case "/daily-congressional-record/165/1/articles":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"articles": []map[string]any{
					{
						"name": "House Section",
						"sectionArticles": []map[string]any{
							articleJSON("pdf-only-article", false),
						},
					},
				},
				"pagination": map[string]any{"count": 1},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := congress.NewClient(server.URL, "test-key", 5*time.Second, "congrec-test")
	_, err := New(client, nil).Collect(context.Background(), 165, 165)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ErrNoFormattedText) {
		t.Errorf("expected ErrNoFormattedText, got %v", err)
	}
	if want := "pdf-only-article"; !strings.Contains(err.Error(), want) {
		t.Errorf("expected error to name the article, got %q", err)
	}
}
