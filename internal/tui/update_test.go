package tui

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/athletetrack/athletetrack/internal/api"
	"github.com/athletetrack/athletetrack/internal/constants"
	"github.com/athletetrack/athletetrack/internal/models"
	"github.com/athletetrack/athletetrack/internal/query"
)

// A result that arrives after its key was invalidated is discarded by the
// cache; the update loop must then re-prime the active view so the key is
// fetched again instead of staying stale forever.
func TestInvalidatedResultSchedulesRefetch(t *testing.T) {
	client, err := api.New("http://127.0.0.1:1", filepath.Join(t.TempDir(), "cookies.json"))
	if err != nil {
		t.Fatal(err)
	}
	m := NewModel(client, "")
	m.session.SetUser(models.User{ID: 7, Username: "dana"})
	m.view = ViewFinances
	key := m.key(constants.ResourceFinances)

	fetch := m.cache.Fetch(key, func(ctx context.Context) (interface{}, error) {
		return []models.Finance{{ID: 1, UserID: 7}}, nil
	})
	if fetch == nil {
		t.Fatal("expected a fetch command")
	}
	result := fetch().(query.ResultMsg)

	// A save lands while the fetch is still in flight.
	m.cache.InvalidateKey(key)

	next, cmd := m.Update(result)
	if cmd == nil {
		t.Fatal("dropped result should schedule a refetch for the active view")
	}
	m = next.(Model)
	if res := m.cache.Get(key); !res.Fetching {
		t.Error("the invalidated key should be fetching again")
	}
}
