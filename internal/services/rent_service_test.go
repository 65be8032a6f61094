package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rentdesk/portal/internal/backend"
	"github.com/rentdesk/portal/internal/models"
	"github.com/rentdesk/portal/internal/session"
)

func rentStub(t *testing.T, handler http.HandlerFunc) *RentService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := backend.NewClient(srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return NewRentService(api)
}

func TestRentLoadAllSlices(t *testing.T) {
	svc := rentStub(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/stats"):
			json.NewEncoder(w).Encode(models.RentStats{Collected: 3000, Expected: 4000, Percentage: 75})
		case strings.HasSuffix(r.URL.Path, "/months"):
			json.NewEncoder(w).Encode([]string{"2026-07", "2026-08"})
		default:
			json.NewEncoder(w).Encode([]models.Payment{{ID: 1}, {ID: 2}})
		}
	})

	ledger := svc.Load(context.Background(), &session.Session{UserID: 1, Role: session.RoleAdmin}, backend.RentFilters{Month: "2026-08"})

	if ledger.PaymentsErr != nil || ledger.StatsErr != nil || ledger.MonthsErr != nil {
		t.Fatalf("expected no slice errors, got %v / %v / %v", ledger.PaymentsErr, ledger.StatsErr, ledger.MonthsErr)
	}
	if len(ledger.Payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(ledger.Payments))
	}
	if ledger.Stats == nil || ledger.Stats.Percentage != 75 {
		t.Fatalf("expected stats loaded, got %+v", ledger.Stats)
	}
	if len(ledger.Months) != 2 {
		t.Fatalf("expected 2 months, got %d", len(ledger.Months))
	}
	if ledger.Filters.Month != "2026-08" {
		t.Fatalf("expected filters carried through, got %+v", ledger.Filters)
	}
}

func TestRentLoadFailureStaysLocal(t *testing.T) {
	svc := rentStub(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/stats"):
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"stats backend down"}`))
		case strings.HasSuffix(r.URL.Path, "/months"):
			json.NewEncoder(w).Encode([]string{"2026-08"})
		default:
			json.NewEncoder(w).Encode([]models.Payment{{ID: 1}})
		}
	})

	ledger := svc.Load(context.Background(), &session.Session{UserID: 1, Role: session.RoleAdmin}, backend.RentFilters{})

	if ledger.StatsErr == nil {
		t.Fatal("expected the stats slice to carry its error")
	}
	if ledger.PaymentsErr != nil {
		t.Fatalf("payments fetch must not be cancelled by the stats failure: %v", ledger.PaymentsErr)
	}
	if ledger.MonthsErr != nil {
		t.Fatalf("months fetch must not be cancelled by the stats failure: %v", ledger.MonthsErr)
	}
	if len(ledger.Payments) != 1 || len(ledger.Months) != 1 {
		t.Fatalf("expected surviving slices populated, got %+v", ledger)
	}
}
