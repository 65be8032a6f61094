package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rentdesk/portal/internal/backend"
	"github.com/rentdesk/portal/internal/models"
	"github.com/rentdesk/portal/internal/session"
)

func TestDiffEditsOnlyChangedRows(t *testing.T) {
	snapshot := []models.MaintenanceRequest{
		{ID: 1, Status: "pending", Priority: "low", Cost: 0},
		{ID: 2, Status: "pending", Priority: "high", Cost: 50},
		{ID: 3, Status: "completed", Priority: "medium", Cost: 120},
	}
	edits := []MaintenanceEdit{
		{RequestID: 1, Status: "in_progress", Priority: "low", Cost: 0}, // status changed
		{RequestID: 2, Status: "pending", Priority: "high", Cost: 50},   // untouched
		{RequestID: 3, Status: "completed", Priority: "medium", Cost: 140}, // cost changed
		{RequestID: 99, Status: "pending", Priority: "low", Cost: 0},    // not in snapshot
	}

	changed := DiffEdits(snapshot, edits)

	if len(changed) != 2 {
		t.Fatalf("expected 2 changed rows, got %d: %+v", len(changed), changed)
	}
	if changed[0].RequestID != 1 || changed[1].RequestID != 3 {
		t.Fatalf("wrong rows flagged as changed: %+v", changed)
	}
}

func TestDiffEditsNoChanges(t *testing.T) {
	snapshot := []models.MaintenanceRequest{{ID: 1, Status: "pending", Priority: "low"}}
	edits := []MaintenanceEdit{{RequestID: 1, Status: "pending", Priority: "low"}}

	if changed := DiffEdits(snapshot, edits); changed != nil {
		t.Fatalf("expected nil for unchanged rows, got %+v", changed)
	}
}

func TestSaveAllOneRequestPerRow(t *testing.T) {
	var (
		mu   sync.Mutex
		puts []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		puts = append(puts, r.Method+" "+r.URL.Path)
		mu.Unlock()
		if strings.HasSuffix(r.URL.Path, "/2") {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"boom"}`))
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	api, err := backend.NewClient(srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	svc := NewMaintenanceService(api)
	sess := &session.Session{UserID: 1, Role: session.RoleAdmin}

	changed := []MaintenanceEdit{
		{RequestID: 1, Status: "completed", Priority: "low", Cost: 10},
		{RequestID: 2, Status: "in_progress", Priority: "high", Cost: 20},
		{RequestID: 3, Status: "cancelled", Priority: "medium", Cost: 0},
	}

	failures := svc.SaveAll(context.Background(), sess, changed)

	mu.Lock()
	defer mu.Unlock()
	if len(puts) != 3 {
		t.Fatalf("expected exactly one request per changed row, got %d: %v", len(puts), puts)
	}
	for _, p := range puts {
		if !strings.HasPrefix(p, "PUT /admin/maintenance-request/") {
			t.Fatalf("unexpected request %q", p)
		}
	}

	if len(failures) != 1 {
		t.Fatalf("expected 1 failure, got %d: %+v", len(failures), failures)
	}
	if failures[0].RequestID != 2 {
		t.Fatalf("expected row 2 to fail, got %d", failures[0].RequestID)
	}
}

func TestSaveAllNothingToSave(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued for an empty change set")
	}))
	defer srv.Close()

	api, err := backend.NewClient(srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if failures := NewMaintenanceService(api).SaveAll(context.Background(), &session.Session{UserID: 1, Role: session.RoleAdmin}, nil); failures != nil {
		t.Fatalf("expected nil failures, got %+v", failures)
	}
}
