package roster

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"congrec/internal/congress"
	"congrec/internal/model"
)

func memberJSON(name, party, state, chamber string) map[string]any {
	return map[string]any{
		"name":      name,
		"partyName": party,
		"state":     state,
		"terms": map[string]any{
			"item": []map[string]any{{"chamber": chamber}},
		},
	}
}

func TestResolver_FetchFollowsCursor(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/member/congress/115" {
			http.NotFound(w, r)
			return
		}

		page := map[string]any{
			"members": []map[string]any{
				memberJSON("Smith, John", "Republican", "TX", "House of Representatives"),
			},
			"pagination": map[string]any{
				"count": 3,
				"next":  server.URL + "/member/congress/115?offset=1",
			},
		}
		if r.URL.Query().Get("offset") == "1" {
			page = map[string]any{
				"members": []map[string]any{
					memberJSON("Jones, Mary", "Democratic", "CA", "Senate"),
					memberJSON("Lee, Ann", "Democratic", "WA", "House of Representatives"),
				},
				"pagination": map[string]any{"count": 3},
			}
		}
		_ = json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	client := congress.NewClient(server.URL, "test-key", 5*time.Second, "congrec-test")
	entries, err := New(client, nil).Fetch(context.Background(), 115, 115)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	// All members from the cursor page and the terminal page, once
	// each, in page order.
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	wantLast := []string{"Smith", "Jones", "Lee"}
	for i, want := range wantLast {
		if entries[i].LastName != want {
			t.Errorf("entry %d last name = %q, want %q", i, entries[i].LastName, want)
		}
	}
	if entries[1].Chamber != model.ChamberSenate {
		t.Errorf("expected Jones in the Senate, got %q", entries[1].Chamber)
	}
	if entries[0].Congress != 115 {
		t.Errorf("expected congress 115, got %d", entries[0].Congress)
	}
}

func TestCSV_Roundtrip(t *testing.T) {
	entries := []model.RosterEntry{
		{Name: "Smith, John", LastName: "Smith", Party: "Republican", State: "TX",
			Chamber: model.ChamberHouse, Congress: 115},
		{Name: "Jones, Mary", LastName: "Jones", Party: "Democratic", State: "CA",
			Chamber: model.ChamberSenate, Congress: 116},
	}

	path := filepath.Join(t.TempDir(), "members.csv")
	if err := WriteCSV(path, entries); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	got, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if !reflect.DeepEqual(got, entries) {
		t.Errorf("roundtrip mismatch:\n got  %+v\n want %+v", got, entries)
	}
}
