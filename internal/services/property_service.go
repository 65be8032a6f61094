package services

import (
	"context"

	"github.com/rentdesk/portal/internal/backend"
	"github.com/rentdesk/portal/internal/models"
	"github.com/rentdesk/portal/internal/session"
)

// PropertyStats is computed locally from the fetched unit list. The detail
// screen never trusts server-side aggregates for these numbers.
type PropertyStats struct {
	TotalUnits       int
	Occupied         int
	Vacant           int
	UnderMaintenance int
	TotalMonthlyRent float64
}

// ComputePropertyStats derives occupancy counts and the total monthly rent
// across all units of a property.
func ComputePropertyStats(units []models.Unit) PropertyStats {
	stats := PropertyStats{TotalUnits: len(units)}
	for _, u := range units {
		switch u.Status {
		case models.UnitOccupied:
			stats.Occupied++
		case models.UnitMaintenance:
			stats.UnderMaintenance++
		default:
			stats.Vacant++
		}
		stats.TotalMonthlyRent += u.MonthlyRent
	}
	return stats
}

type PropertyService struct {
	api *backend.Client
}

func NewPropertyService(api *backend.Client) *PropertyService {
	return &PropertyService{api: api}
}

// PropertyDetail bundles everything the detail screen renders.
type PropertyDetail struct {
	Property models.Property
	Units    []models.Unit
	Stats    PropertyStats
}

func (s *PropertyService) List(ctx context.Context, sess *session.Session) ([]models.Property, error) {
	return s.api.ListProperties(ctx, sess)
}

func (s *PropertyService) Detail(ctx context.Context, sess *session.Session, propertyID int64) (*PropertyDetail, error) {
	prop, err := s.api.GetProperty(ctx, sess, propertyID)
	if err != nil {
		return nil, err
	}
	units, err := s.api.ListUnits(ctx, sess, propertyID)
	if err != nil {
		return nil, err
	}
	return &PropertyDetail{
		Property: *prop,
		Units:    units,
		Stats:    ComputePropertyStats(units),
	}, nil
}

func (s *PropertyService) Create(ctx context.Context, sess *session.Session, in backend.PropertyInput) (*models.Property, error) {
	return s.api.CreateProperty(ctx, sess, in)
}

func (s *PropertyService) Update(ctx context.Context, sess *session.Session, id int64, in backend.PropertyInput) (*models.Property, error) {
	return s.api.UpdateProperty(ctx, sess, id, in)
}

func (s *PropertyService) Delete(ctx context.Context, sess *session.Session, id int64) error {
	return s.api.DeleteProperty(ctx, sess, id)
}
