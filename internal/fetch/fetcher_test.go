package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"congrec/internal/model"
	"congrec/internal/store"
)

const articleHTML = `<html><body><pre>
From the Congressional Record Online through the Government Publishing Office [www.gpo.gov]
[Pages H100-H102]
BORDER SECURITY
Mr. SMITH. We must act now.
</pre></body></html>`

func TestFetcher_Run(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/articles/good.htm":
			fmt.Fprint(w, articleHTML)
		case "/articles/missing.htm":
			http.NotFound(w, r)
		default:
			fmt.Fprint(w, "<html><body>warmup</body></html>")
		}
	}))
	defer server.Close()

	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "records.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	locators := []model.ArticleLocator{
		{Volume: 164, Issue: 12, Section: model.SectionHouse,
			Title: "BORDER SECURITY", TextURL: server.URL + "/articles/good.htm"},
		{Volume: 164, Issue: 12, Section: model.SectionHouse,
			Title: "PRAYER", TextURL: server.URL + "/articles/prayer.htm"},
		{Volume: 164, Issue: 12, Section: model.SectionSenate,
			Title: "LOST ARTICLE", TextURL: server.URL + "/articles/missing.htm"},
		{Volume: 164, Issue: 12, Section: model.SectionDigest,
			Title: "DIGEST", TextURL: server.URL + "/articles/digest.htm"},
	}
	if err := st.AppendLocators(context.Background(), locators); err != nil {
		t.Fatalf("append locators: %v", err)
	}

	root := filepath.Join(dir, "scraped_articles")
	fetcher, err := New(st, Options{
		Root:            root,
		ProceduralTerms: []string{"prayer"},
		Delay:           0,
		Timeout:         5 * time.Second,
		UserAgent:       "congrec-test",
	}, nil)
	if err != nil {
		t.Fatalf("new fetcher: %v", err)
	}

	if err := fetcher.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	files, err := st.ArticleFiles(context.Background())
	if err != nil {
		t.Fatalf("article files: %v", err)
	}
	// Procedural and digest rows filtered out, one success and one
	// sentinel left.
	if len(files) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(files))
	}

	good := files[0]
	if good.Path == FailedSentinel {
		t.Fatalf("expected first article to succeed")
	}
	content, err := os.ReadFile(good.Path)
	if err != nil {
		t.Fatalf("read article: %v", err)
	}
	text := string(content)
	if strings.Contains(text, "Government Publishing Office") {
		t.Error("expected GPO header to be stripped")
	}
	if strings.Contains(text, "[Pages") {
		t.Error("expected page annotations to be stripped")
	}
	if !strings.Contains(text, "Mr. SMITH. We must act now.") {
		t.Errorf("expected speech text to survive cleaning, got %q", text)
	}

	if files[1].Path != FailedSentinel {
		t.Errorf("expected sentinel for failed article, got %q", files[1].Path)
	}
}
