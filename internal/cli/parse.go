package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"congrec/internal/fetch"
	"congrec/internal/model"
	"congrec/internal/nlp"
	"congrec/internal/roster"
	"congrec/internal/segment"
	"congrec/internal/store"
	"congrec/internal/worker"
)

var (
	parseWorkers int
	parseTimeout time.Duration
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Segment pulled articles into speaker-attributed speeches",
	Long: `Parse reads every pulled article, splits it into speaker/speech
pairs on the boundary pattern, validates the split, attributes each
speech to a party via the members roster, and reduces speeches to
filtered token groups. Each successful article becomes one JSON file
under the parsed directory; failures are recorded in the parse index
and the batch continues.

Example:
  congrec parse
  congrec parse --workers 8`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().IntVar(&parseWorkers, "workers", 0, "parse workers (default from config)")
	parseCmd.Flags().DurationVar(&parseTimeout, "timeout", time.Hour, "total timeout for the parse run")
}

// parseOutcome is one article's parse result for the index: the output
// path on success, a failure description otherwise.
type parseOutcome struct {
	file    store.ArticleFile
	path    string
	failure string
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	workers := cfg.Concurrency.ParseWorkers
	if parseWorkers > 0 {
		workers = parseWorkers
	}

	ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
	defer cancel()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	files, err := st.ArticleFiles(ctx)
	if err != nil {
		return fmt.Errorf("load article index: %w", err)
	}

	entries, err := roster.ReadCSV(cfg.Paths.MembersCSV)
	if err != nil {
		return fmt.Errorf("load members roster: %w", err)
	}
	lookup := roster.BuildLookup(entries)

	pipeline, err := nlp.NewProsePipeline()
	if err != nil {
		return err
	}
	segmenter := segment.New(lookup, pipeline)
	logger := newLogger()

	if err := os.MkdirAll(cfg.Paths.ParsedDir, 0o755); err != nil {
		return fmt.Errorf("create parsed dir: %w", err)
	}

	pool := worker.NewPool(workers, func(ctx context.Context, file store.ArticleFile) parseOutcome {
		outcome := parseArticle(segmenter, cfg.Paths.ParsedDir, file)
		if outcome.failure != "" {
			logger.Warn("article parse failed", "title", file.Locator.Title, "reason", outcome.failure)
		} else {
			logger.Info("parsed article", "title", file.Locator.Title, "path", outcome.path)
		}
		return outcome
	})
	outcomes := pool.Run(ctx, files)

	if err := writeParseIndex(filepath.Join(cfg.Paths.ParsedDir, "parsed_records_index.csv"), outcomes); err != nil {
		return err
	}

	// The pool returns an input-order prefix, so a short result set
	// means the deadline cut the run off. The index on disk covers only
	// the completed articles; report that rather than exiting clean.
	if len(outcomes) < len(files) {
		return fmt.Errorf("parse run cut short after %d of %d articles: %w", len(outcomes), len(files), ctx.Err())
	}

	parsed := 0
	for _, o := range outcomes {
		if o.failure == "" {
			parsed++
		}
	}
	fmt.Fprintf(os.Stderr, "Parsed %d/%d articles into %s\n", parsed, len(outcomes), cfg.Paths.ParsedDir)
	return nil
}

// parseArticle segments one pulled article and writes its JSON output.
func parseArticle(segmenter *segment.Segmenter, parsedDir string, file store.ArticleFile) parseOutcome {
	if file.Path == fetch.FailedSentinel {
		return parseOutcome{file: file, failure: "article was never pulled"}
	}

	raw, err := os.ReadFile(file.Path)
	if err != nil {
		return parseOutcome{file: file, failure: fmt.Sprintf("read article: %v", err)}
	}

	result := segmenter.Segment(string(raw))
	if result.Failure != nil {
		return parseOutcome{file: file, failure: result.Failure.String()}
	}

	out := model.ParsedArticle{
		URL:      file.Locator.TextURL,
		Speeches: result.Records,
	}
	data, err := json.Marshal(out)
	if err != nil {
		return parseOutcome{file: file, failure: fmt.Sprintf("encode result: %v", err)}
	}

	name := strings.TrimSuffix(filepath.Base(file.Path), ".txt") + ".json"
	outPath := filepath.Join(parsedDir, name)
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return parseOutcome{file: file, failure: fmt.Sprintf("write result: %v", err)}
	}
	return parseOutcome{file: file, path: outPath}
}

// writeParseIndex mirrors the article index with each article's parse
// outcome, preserving the one-row-per-article batch shape.
func writeParseIndex(path string, outcomes []parseOutcome) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create parse index: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close parse index: %w", closeErr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"volume", "issue", "section", "article_title", "article_url", "parsed_fpath"}); err != nil {
		return fmt.Errorf("write parse index header: %w", err)
	}
	for _, o := range outcomes {
		loc := o.file.Locator
		value := o.path
		if o.failure != "" {
			value = o.failure
		}
		record := []string{
			strconv.Itoa(loc.Volume),
			strconv.Itoa(loc.Issue),
			string(loc.Section),
			loc.Title,
			loc.TextURL,
			value,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write parse index row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
