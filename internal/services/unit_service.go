package services

import (
	"context"
	"time"

	"github.com/rentdesk/portal/internal/backend"
	"github.com/rentdesk/portal/internal/models"
	"github.com/rentdesk/portal/internal/session"
)

// LeaseExpiryTolerance guards the local end-date comparison against clock
// skew between the portal host and the backend: a lease is treated as ended
// only once its end date is at least this far in the past.
const LeaseExpiryTolerance = 24 * time.Hour

// leaseDateLayouts are the wire formats the backend has been observed to use
// for date-only fields.
var leaseDateLayouts = []string{time.DateOnly, time.RFC3339, "01/02/2006"}

// ParseLeaseDate parses a wire date. The bool is false when no known layout
// matched.
func ParseLeaseDate(raw string) (time.Time, bool) {
	for _, layout := range leaseDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// LeaseExpired reports whether a lease's end date is in the past beyond the
// tolerance window. Unparseable dates never count as expired.
func LeaseExpired(lease *models.Lease, now time.Time) bool {
	if lease == nil || lease.EndDate == "" {
		return false
	}
	end, ok := ParseLeaseDate(lease.EndDate)
	if !ok {
		return false
	}
	// End dates are inclusive: the lease runs through the end of that day.
	return now.Sub(end.AddDate(0, 0, 1)) >= LeaseExpiryTolerance
}

// UnitView is the unit detail screen state. AutoEnded is set when the lease
// was implicitly ended client-side before the backend confirmed it.
type UnitView struct {
	models.UnitDetail
	AutoEnded bool
}

// HasActiveLease decides which actions the detail screen offers: Assign
// Tenant when false; Record Payment and End Lease when true.
func (v *UnitView) HasActiveLease() bool {
	return v.CurrentLease != nil
}

// ApplyEndLease clears the tenant/lease association and flips the displayed
// status to vacant, the same local state transition the end-lease action
// performs.
func (v *UnitView) ApplyEndLease() {
	v.CurrentTenant = nil
	v.CurrentLease = nil
	v.Payments = nil
	v.Status = models.UnitVacant
}

// ApplyAssignment attaches the tenant/lease pair returned by a successful
// assign-tenant call.
func (v *UnitView) ApplyAssignment(result *backend.AssignTenantResult) {
	tenant := result.Tenant
	lease := result.Lease
	v.CurrentTenant = &tenant
	v.CurrentLease = &lease
	v.Status = models.UnitOccupied
}

// PrependPayment puts a newly recorded payment at the front of the history
// without dropping prior entries.
func (v *UnitView) PrependPayment(p models.Payment) {
	v.Payments = append([]models.Payment{p}, v.Payments...)
}

type UnitService struct {
	api *backend.Client
	now func() time.Time
}

func NewUnitService(api *backend.Client) *UnitService {
	return &UnitService{api: api, now: time.Now}
}

// Load fetches the unit detail and derives the auto-ended state. When the
// current lease is already past its end date the view is shown as ended and
// a second fetch reconciles with whatever the backend has since computed.
func (s *UnitService) Load(ctx context.Context, sess *session.Session, unitID int64) (*UnitView, error) {
	detail, err := s.api.GetUnit(ctx, sess, unitID)
	if err != nil {
		return nil, err
	}

	view := &UnitView{UnitDetail: *detail}
	if !LeaseExpired(view.CurrentLease, s.now()) {
		return view, nil
	}

	view.ApplyEndLease()
	view.AutoEnded = true

	// Reconcile: the backend may have ended the lease already. A failed
	// reconcile keeps the derived local state; the notice still shows.
	if fresh, err := s.api.GetUnit(ctx, sess, unitID); err == nil && fresh.CurrentLease == nil {
		view.UnitDetail = *fresh
		view.ApplyEndLease()
	}
	return view, nil
}

func (s *UnitService) AssignTenant(ctx context.Context, sess *session.Session, unitID int64, in backend.AssignTenantInput) (*backend.AssignTenantResult, error) {
	return s.api.AssignTenant(ctx, sess, unitID, in)
}

func (s *UnitService) RecordPayment(ctx context.Context, sess *session.Session, unitID int64, in backend.RecordPaymentInput) (*models.Payment, error) {
	return s.api.RecordPayment(ctx, sess, unitID, in)
}

func (s *UnitService) EndLease(ctx context.Context, sess *session.Session, unitID int64) error {
	return s.api.EndLease(ctx, sess, unitID)
}

func (s *UnitService) Create(ctx context.Context, sess *session.Session, in backend.UnitInput) (*models.Unit, error) {
	return s.api.CreateUnit(ctx, sess, in)
}

func (s *UnitService) Update(ctx context.Context, sess *session.Session, id int64, in backend.UnitInput) (*models.Unit, error) {
	return s.api.UpdateUnit(ctx, sess, id, in)
}

func (s *UnitService) Delete(ctx context.Context, sess *session.Session, id int64) error {
	return s.api.DeleteUnit(ctx, sess, id)
}
