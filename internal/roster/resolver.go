// Package roster resolves legislator surnames to party affiliation
// from the member API across a congressional-session range.
package roster

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"congrec/internal/congress"
	"congrec/internal/model"
)

// Resolver fetches raw roster entries.
type Resolver struct {
	client *congress.Client
	logger *slog.Logger
}

// New creates a resolver.
func New(client *congress.Client, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{client: client, logger: logger}
}

// Fetch walks the member listing for each congress in the range,
// inclusive. The cursor loop processes the current page before the
// terminal test, so the last page's members are kept.
func (r *Resolver) Fetch(ctx context.Context, startCongress, endCongress int) ([]model.RosterEntry, error) {
	var entries []model.RosterEntry
	for congno := startCongress; congno <= endCongress; congno++ {
		page, err := r.client.Members(ctx, congno)
		if err != nil {
			return nil, fmt.Errorf("congress %d: %w", congno, err)
		}
		count := 0
		for {
			for _, m := range page.Members {
				entries = append(entries, entryFromMember(m, congno))
				count++
			}
			next := page.Pagination.Next
			if next == "" {
				break
			}
			if page, err = r.client.MembersNext(ctx, next); err != nil {
				return nil, fmt.Errorf("congress %d: %w", congno, err)
			}
		}
		r.logger.Info("fetched members", "congress", congno, "members", count)
	}
	return entries, nil
}

// entryFromMember maps an API member to a roster entry. The API names
// members "Last, First"; the chamber comes from the first listed term.
func entryFromMember(m congress.Member, congno int) model.RosterEntry {
	last, _, _ := strings.Cut(m.Name, ",")
	chamber := ""
	if len(m.Terms.Item) > 0 {
		chamber = m.Terms.Item[0].Chamber
	}
	return model.RosterEntry{
		Name:     m.Name,
		LastName: strings.TrimSpace(last),
		Party:    m.Party,
		State:    m.State,
		Chamber:  model.Chamber(chamber),
		Congress: congno,
	}
}
