package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rentdesk/portal/internal/backend"
	"github.com/rentdesk/portal/internal/models"
	"github.com/rentdesk/portal/internal/session"
)

func TestParseLeaseDateLayouts(t *testing.T) {
	for _, raw := range []string{"2026-03-15", "2026-03-15T00:00:00Z", "03/15/2026"} {
		parsed, ok := ParseLeaseDate(raw)
		if !ok {
			t.Fatalf("expected %q to parse", raw)
		}
		if parsed.Year() != 2026 || parsed.Month() != time.March || parsed.Day() != 15 {
			t.Fatalf("%q parsed to wrong date: %v", raw, parsed)
		}
	}

	if _, ok := ParseLeaseDate("next tuesday"); ok {
		t.Fatal("expected unknown format to fail")
	}
}

func TestLeaseExpired(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		endDate string
		want    bool
	}{
		{"well past", "2026-08-01", true},
		{"exactly at tolerance", "2026-08-29", true},
		{"ended yesterday, within tolerance", "2026-08-30", false},
		{"ends today", "2026-08-31", false},
		{"future", "2026-09-30", false},
		{"unparseable", "soon", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		lease := &models.Lease{EndDate: tc.endDate}
		if got := LeaseExpired(lease, now); got != tc.want {
			t.Fatalf("%s: LeaseExpired(%q) = %v, want %v", tc.name, tc.endDate, got, tc.want)
		}
	}

	if LeaseExpired(nil, now) {
		t.Fatal("nil lease must never count as expired")
	}
}

func TestUnitViewApplyEndLease(t *testing.T) {
	view := &UnitView{UnitDetail: models.UnitDetail{
		Unit:          models.Unit{ID: 1, Status: models.UnitOccupied},
		CurrentTenant: &models.Tenant{ID: 2},
		CurrentLease:  &models.Lease{ID: 3},
		Payments:      []models.Payment{{ID: 4}},
	}}

	view.ApplyEndLease()

	if view.CurrentTenant != nil || view.CurrentLease != nil || view.Payments != nil {
		t.Fatalf("expected tenant/lease/payments cleared, got %+v", view.UnitDetail)
	}
	if view.Status != models.UnitVacant {
		t.Fatalf("expected status vacant, got %q", view.Status)
	}
	if view.HasActiveLease() {
		t.Fatal("expected no active lease after end")
	}
}

func TestUnitViewApplyAssignment(t *testing.T) {
	view := &UnitView{UnitDetail: models.UnitDetail{Unit: models.Unit{ID: 1, Status: models.UnitVacant}}}

	view.ApplyAssignment(&backend.AssignTenantResult{
		Tenant: models.Tenant{ID: 9, FirstName: "Tess"},
		Lease:  models.Lease{ID: 11},
	})

	if !view.HasActiveLease() {
		t.Fatal("expected an active lease after assignment")
	}
	if view.CurrentTenant == nil || view.CurrentTenant.ID != 9 {
		t.Fatalf("expected tenant 9 attached, got %+v", view.CurrentTenant)
	}
	if view.Status != models.UnitOccupied {
		t.Fatalf("expected status occupied, got %q", view.Status)
	}
}

func TestUnitViewPrependPayment(t *testing.T) {
	view := &UnitView{UnitDetail: models.UnitDetail{
		Payments: []models.Payment{{ID: 1}, {ID: 2}},
	}}

	view.PrependPayment(models.Payment{ID: 3})

	if len(view.Payments) != 3 {
		t.Fatalf("expected 3 payments, got %d", len(view.Payments))
	}
	if view.Payments[0].ID != 3 || view.Payments[1].ID != 1 || view.Payments[2].ID != 2 {
		t.Fatalf("expected newest first with prior entries kept, got %+v", view.Payments)
	}
}

func unitStub(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := backend.NewClient(srv.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return api
}

func TestUnitServiceLoadAutoEndsExpiredLease(t *testing.T) {
	calls := 0
	api := unitStub(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		// The backend still thinks the lease is active on both fetches.
		json.NewEncoder(w).Encode(models.UnitDetail{
			Unit:         models.Unit{ID: 5, Status: models.UnitOccupied},
			CurrentLease: &models.Lease{ID: 7, EndDate: "2026-01-01"},
		})
	})

	svc := NewUnitService(api)
	svc.now = func() time.Time { return time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC) }

	view, err := svc.Load(context.Background(), &session.Session{UserID: 1, Role: session.RoleAdmin}, 5)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !view.AutoEnded {
		t.Fatal("expected AutoEnded for an expired lease")
	}
	if view.HasActiveLease() {
		t.Fatal("expected lease cleared locally")
	}
	if view.Status != models.UnitVacant {
		t.Fatalf("expected vacant, got %q", view.Status)
	}
	if calls != 2 {
		t.Fatalf("expected initial fetch plus reconcile, got %d calls", calls)
	}
}

func TestUnitServiceLoadActiveLeaseUntouched(t *testing.T) {
	calls := 0
	api := unitStub(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(models.UnitDetail{
			Unit:         models.Unit{ID: 5, Status: models.UnitOccupied},
			CurrentLease: &models.Lease{ID: 7, EndDate: "2027-01-01"},
		})
	})

	svc := NewUnitService(api)
	svc.now = func() time.Time { return time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC) }

	view, err := svc.Load(context.Background(), &session.Session{UserID: 1, Role: session.RoleAdmin}, 5)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if view.AutoEnded {
		t.Fatal("active lease must not auto-end")
	}
	if !view.HasActiveLease() {
		t.Fatal("expected lease kept")
	}
	if calls != 1 {
		t.Fatalf("expected a single fetch, got %d", calls)
	}
}
