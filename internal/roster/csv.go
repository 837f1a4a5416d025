package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"congrec/internal/model"
)

var csvHeader = []string{"name", "partyName", "state", "chamber", "congress", "last_name"}

// WriteCSV persists raw roster entries so the parse stage can rebuild
// the lookup without refetching.
func WriteCSV(path string, entries []model.RosterEntry) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range entries {
		record := []string{e.Name, e.Party, e.State, string(e.Chamber), strconv.Itoa(e.Congress), e.LastName}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write member %s: %w", e.Name, err)
		}
	}
	w.Flush()
	return w.Error()
}

// ReadCSV loads roster entries written by WriteCSV.
func ReadCSV(path string) ([]model.RosterEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	entries := make([]model.RosterEntry, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != len(csvHeader) {
			return nil, fmt.Errorf("%s: malformed row %v", path, rec)
		}
		congno, err := strconv.Atoi(rec[4])
		if err != nil {
			return nil, fmt.Errorf("%s: congress %q: %w", path, rec[4], err)
		}
		entries = append(entries, model.RosterEntry{
			Name:     rec[0],
			Party:    rec[1],
			State:    rec[2],
			Chamber:  model.Chamber(rec[3]),
			Congress: congno,
			LastName: rec[5],
		})
	}
	return entries, nil
}
