package services

import (
	"context"

	"github.com/rentdesk/portal/internal/backend"
	"github.com/rentdesk/portal/internal/models"
	"github.com/rentdesk/portal/internal/session"
)

type TenantService struct {
	api *backend.Client
}

func NewTenantService(api *backend.Client) *TenantService {
	return &TenantService{api: api}
}

func (s *TenantService) Dashboard(ctx context.Context, sess *session.Session) (*models.TenantDashboard, error) {
	return s.api.GetTenantDashboard(ctx, sess)
}

func (s *TenantService) Leases(ctx context.Context, sess *session.Session) ([]models.Lease, error) {
	return s.api.ListTenantLeases(ctx, sess)
}

func (s *TenantService) Payments(ctx context.Context, sess *session.Session) ([]models.Payment, error) {
	return s.api.ListTenantPayments(ctx, sess)
}

// PaymentPrefill fetches the active lease so the filing form can prefill the
// lease/tenant/admin ids the payment must reference.
func (s *TenantService) PaymentPrefill(ctx context.Context, sess *session.Session) (*backend.TenantLeaseInfo, error) {
	return s.api.GetActiveLease(ctx, sess)
}

// FilePayment submits the payment. Status is forced to pending inside the
// client; the portal never decides financial status.
func (s *TenantService) FilePayment(ctx context.Context, sess *session.Session, in backend.FilePaymentInput) (*models.Payment, error) {
	return s.api.FilePayment(ctx, sess, in)
}

func (s *TenantService) Maintenance(ctx context.Context, sess *session.Session) ([]models.MaintenanceRequest, error) {
	return s.api.ListTenantMaintenance(ctx, sess)
}

func (s *TenantService) SubmitMaintenance(ctx context.Context, sess *session.Session, in backend.MaintenanceInput) (*models.MaintenanceRequest, error) {
	return s.api.SubmitMaintenanceRequest(ctx, sess, in)
}

func (s *TenantService) Profile(ctx context.Context, sess *session.Session) (*models.Tenant, error) {
	return s.api.GetTenantProfile(ctx, sess)
}

func (s *TenantService) UpdateProfile(ctx context.Context, sess *session.Session, in backend.ProfileUpdateInput) (*models.Tenant, error) {
	return s.api.UpdateTenantProfile(ctx, sess, in)
}

func (s *TenantService) ChangePassword(ctx context.Context, sess *session.Session, current, newPassword string) error {
	return s.api.ChangeTenantPassword(ctx, sess, current, newPassword)
}
