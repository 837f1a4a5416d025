package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"congrec/internal/roster"
)

var (
	startCongress  int
	endCongress    int
	membersTimeout time.Duration
)

// membersCmd represents the members command
var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Fetch the legislator roster for a congressional-session range",
	Long: `Members walks the member API for each congress in the range and
writes the raw roster rows to the members CSV. The parse stage reads
this file to build the last-name -> party lookup.

Record volume 164 begins in the 115th congress and volume 167 in the
117th, so the default range covers the default volume range.

Example:
  congrec members --start-congress 115 --end-congress 117`,
	RunE: runMembers,
}

func init() {
	rootCmd.AddCommand(membersCmd)

	membersCmd.Flags().IntVar(&startCongress, "start-congress", 115, "first congress to fetch")
	membersCmd.Flags().IntVar(&endCongress, "end-congress", 117, "last congress to fetch (inclusive)")
	membersCmd.Flags().DurationVar(&membersTimeout, "timeout", 15*time.Minute, "total timeout for the fetch")
}

func runMembers(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if cfg.API.Key == "" {
		return errors.New("no API key configured (set CONGREC_API_KEY or api_key in the config file)")
	}
	if startCongress > endCongress {
		return fmt.Errorf("start congress %d is after end congress %d", startCongress, endCongress)
	}

	ctx, cancel := context.WithTimeout(context.Background(), membersTimeout)
	defer cancel()

	client := newAPIClient(cfg)
	logger := newLogger()

	entries, err := roster.New(client, logger).Fetch(ctx, startCongress, endCongress)
	if err != nil {
		return fmt.Errorf("fetch members: %w", err)
	}

	if err := roster.WriteCSV(cfg.Paths.MembersCSV, entries); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Wrote %d member rows for congresses %d-%d to %s\n",
		len(entries), startCongress, endCongress, cfg.Paths.MembersCSV)
	return nil
}
