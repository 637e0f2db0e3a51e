package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/athletetrack/athletetrack/internal/api"
	"github.com/athletetrack/athletetrack/internal/constants"
	"github.com/athletetrack/athletetrack/internal/models"
)

func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	runErr := fn()
	w.Close()
	os.Stdout = old
	out, _ := io.ReadAll(r)
	if runErr != nil {
		t.Fatalf("command failed: %v", runErr)
	}
	return string(out)
}

func TestFinanceListTotalsCoverWholeRange(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	withFixedNow(t, fixed)

	var records []models.Finance
	for i := 0; i < constants.TableRowLimit+5; i++ {
		records = append(records, models.Finance{
			ID:          i + 1,
			UserID:      7,
			Category:    "Training",
			Amount:      10,
			Date:        fixed.AddDate(0, 0, -i),
			Description: "session",
		})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/user", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.User{ID: 7, Username: "dana"})
	})
	mux.HandleFunc(constants.ResourceFinances, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(records)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := api.New(server.URL, filepath.Join(t.TempDir(), "cookies.json"))
	if err != nil {
		t.Fatal(err)
	}

	cmd := &FinanceListCmd{Range: "30d"}
	out := captureStdout(t, func() error { return cmd.Run(&Context{API: client}) })

	want := fmt.Sprintf("expenses %.2f", float64(len(records))*10)
	if !strings.Contains(out, want) {
		t.Errorf("totals should cover all %d records in range, got:\n%s", len(records), out)
	}
	if got := strings.Count(out, "Training"); got != constants.TableRowLimit {
		t.Errorf("listing should stay truncated to %d rows, printed %d", constants.TableRowLimit, got)
	}
}
