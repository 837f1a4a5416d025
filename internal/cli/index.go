package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"congrec/internal/cache"
	"congrec/internal/collect"
	"congrec/internal/congress"
	"congrec/internal/model"
)

var (
	startVolume  int
	endVolume    int
	indexTimeout time.Duration
)

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the article locator table for a volume range",
	Long: `Index walks the daily Congressional Record API hierarchy
(volume, issue, section, article) and appends one locator row per
article to the records database. Only the "Formatted Text"
representation of each article is indexed; an article without one
aborts the traversal, since it signals an API contract violation.

Example:
  congrec index --start-volume 164 --end-volume 167`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)

	indexCmd.Flags().IntVar(&startVolume, "start-volume", 164, "first record volume to index")
	indexCmd.Flags().IntVar(&endVolume, "end-volume", 167, "last record volume to index (inclusive)")
	indexCmd.Flags().DurationVar(&indexTimeout, "timeout", 30*time.Minute, "total timeout for the traversal")
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if cfg.API.Key == "" {
		return errors.New("no API key configured (set CONGREC_API_KEY or api_key in the config file)")
	}
	if startVolume > endVolume {
		return fmt.Errorf("start volume %d is after end volume %d", startVolume, endVolume)
	}

	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	client := newAPIClient(cfg)
	logger := newLogger()

	rows, err := collect.New(client, logger).Collect(ctx, startVolume, endVolume)
	if err != nil {
		return fmt.Errorf("collect: %w", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.AppendLocators(ctx, rows); err != nil {
		return fmt.Errorf("load records_ix: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Indexed %d articles from volumes %d-%d into %s\n",
		len(rows), startVolume, endVolume, cfg.Paths.Database)
	return nil
}

// newAPIClient builds the congress.gov client, attaching the page
// cache when enabled.
func newAPIClient(cfg *model.Config) *congress.Client {
	client := congress.NewClient(cfg.API.BaseURL, cfg.API.Key, cfg.HTTP.Timeout, cfg.HTTP.UserAgent)
	if cfg.Cache.Enabled {
		pages := cache.NewLayered(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		client = client.WithCache(pages, cfg.Cache.DiskTTL)
	}
	return client
}
