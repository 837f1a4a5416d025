package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"congrec/internal/fetch"
)

var pullTimeout time.Duration

// pullCmd represents the pull command
var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Fetch and clean the text of in-scope articles",
	Long: `Pull reads the locator table, filters out procedural articles and
non-House/Senate sections, and fetches each remaining article's
formatted text over one shared session. The cleaned text lands under
the articles directory; a failed article records a sentinel value and
the run continues.

Example:
  congrec pull
  congrec pull --timeout 6h`,
	RunE: runPull,
}

func init() {
	rootCmd.AddCommand(pullCmd)

	pullCmd.Flags().DurationVar(&pullTimeout, "timeout", 12*time.Hour, "total timeout for the pull run")
}

func runPull(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), pullTimeout)
	defer cancel()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	fetcher, err := fetch.New(st, fetch.Options{
		Root:            cfg.Paths.ArticlesDir,
		ProceduralTerms: cfg.Filter.ProceduralTerms,
		Delay:           cfg.Fetch.Delay,
		Timeout:         cfg.HTTP.Timeout,
		UserAgent:       cfg.HTTP.UserAgent,
		CheckRobots:     cfg.Fetch.CheckRobots,
	}, newLogger())
	if err != nil {
		return err
	}

	if err := fetcher.Run(ctx); err != nil {
		return fmt.Errorf("pull articles: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Articles written under %s\n", cfg.Paths.ArticlesDir)
	return nil
}
