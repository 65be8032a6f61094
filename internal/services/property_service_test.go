package services

import (
	"testing"

	"github.com/rentdesk/portal/internal/models"
)

func TestComputePropertyStats(t *testing.T) {
	units := []models.Unit{
		{ID: 1, Status: models.UnitOccupied, MonthlyRent: 1200},
		{ID: 2, Status: models.UnitOccupied, MonthlyRent: 950},
		{ID: 3, Status: models.UnitVacant, MonthlyRent: 800},
		{ID: 4, Status: models.UnitMaintenance, MonthlyRent: 1100},
		{ID: 5, Status: "", MonthlyRent: 700}, // unknown status counts as vacant
	}

	stats := ComputePropertyStats(units)

	if stats.TotalUnits != 5 {
		t.Fatalf("expected 5 total units, got %d", stats.TotalUnits)
	}
	if stats.Occupied != 2 {
		t.Fatalf("expected 2 occupied, got %d", stats.Occupied)
	}
	if stats.Vacant != 2 {
		t.Fatalf("expected 2 vacant, got %d", stats.Vacant)
	}
	if stats.UnderMaintenance != 1 {
		t.Fatalf("expected 1 under maintenance, got %d", stats.UnderMaintenance)
	}
	if stats.TotalMonthlyRent != 4750 {
		t.Fatalf("expected total rent 4750, got %v", stats.TotalMonthlyRent)
	}
}

func TestComputePropertyStatsEmpty(t *testing.T) {
	stats := ComputePropertyStats(nil)
	if stats != (PropertyStats{}) {
		t.Fatalf("expected zero stats for no units, got %+v", stats)
	}
}
