package cli

import (
	"fmt"

	"congrec/internal/model"
	"congrec/internal/store"
)

func openStore(cfg *model.Config) (*store.Store, error) {
	st, err := store.Open(cfg.Paths.Database)
	if err != nil {
		return nil, fmt.Errorf("open records db %s: %w", cfg.Paths.Database, err)
	}
	return st, nil
}
