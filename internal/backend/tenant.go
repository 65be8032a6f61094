package backend

import (
	"context"

	"github.com/rentdesk/portal/internal/models"
	"github.com/rentdesk/portal/internal/session"
)

// TenantLeaseInfo is the active-lease prefill fetched before filing a
// payment: the ids the payment must reference.
type TenantLeaseInfo struct {
	Lease    models.Lease `json:"lease"`
	TenantID int64        `json:"tenant_id"`
	AdminID  int64        `json:"admin_id"`
}

// FilePaymentInput is the tenant-side payment submission. Status is not a
// field on purpose: the portal always forces it to pending at the call site
// and financial status determination stays entirely server-side.
type FilePaymentInput struct {
	LeaseID                    int64   `json:"lease_id"`
	TenantID                   int64   `json:"tenant_id"`
	AdminID                    int64   `json:"admin_id"`
	Amount                     float64 `json:"amount"`
	PaymentDate                string  `json:"payment_date"`
	PaymentMethod              string  `json:"payment_method"`
	TransactionReferenceNumber string  `json:"transaction_reference_number"`
	PeriodStart                string  `json:"period_start"`
	PeriodEnd                  string  `json:"period_end"`
}

type filePaymentRequest struct {
	FilePaymentInput
	Status models.PaymentStatus `json:"status"`
}

// ProfileUpdateInput is the editable slice of the tenant profile.
type ProfileUpdateInput struct {
	FirstName             string `json:"first_name"`
	LastName              string `json:"last_name"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// MaintenanceInput is a tenant-submitted maintenance request.
type MaintenanceInput struct {
	Description string `json:"request_description"`
	Priority    string `json:"request_priority"`
}

func (c *Client) GetTenantDashboard(ctx context.Context, s *session.Session) (*models.TenantDashboard, error) {
	var dash models.TenantDashboard
	if err := c.do(ctx, "GET", "/tenant-dashboard", nil, nil, &dash, s); err != nil {
		return nil, err
	}
	return &dash, nil
}

func (c *Client) ListTenantLeases(ctx context.Context, s *session.Session) ([]models.Lease, error) {
	var leases []models.Lease
	if err := c.do(ctx, "GET", "/tenant-leases", nil, nil, &leases, s); err != nil {
		return nil, err
	}
	return leases, nil
}

func (c *Client) ListTenantPayments(ctx context.Context, s *session.Session) ([]models.Payment, error) {
	var payments []models.Payment
	if err := c.do(ctx, "GET", "/tenant-payments", nil, nil, &payments, s); err != nil {
		return nil, err
	}
	return payments, nil
}

// GetActiveLease fetches the prefill ids for the payment filing form.
func (c *Client) GetActiveLease(ctx context.Context, s *session.Session) (*TenantLeaseInfo, error) {
	var info TenantLeaseInfo
	if err := c.do(ctx, "GET", "/tenant-leases/active", nil, nil, &info, s); err != nil {
		return nil, err
	}
	return &info, nil
}

// FilePayment submits a payment with status forced to pending.
func (c *Client) FilePayment(ctx context.Context, s *session.Session, in FilePaymentInput) (*models.Payment, error) {
	req := filePaymentRequest{FilePaymentInput: in, Status: models.PaymentPending}
	var payment models.Payment
	if err := c.do(ctx, "POST", "/tenant/file-payment", nil, req, &payment, s); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *Client) SubmitMaintenanceRequest(ctx context.Context, s *session.Session, in MaintenanceInput) (*models.MaintenanceRequest, error) {
	var req models.MaintenanceRequest
	if err := c.do(ctx, "POST", "/tenant/maintenance", nil, in, &req, s); err != nil {
		return nil, err
	}
	return &req, nil
}

func (c *Client) ListTenantMaintenance(ctx context.Context, s *session.Session) ([]models.MaintenanceRequest, error) {
	var reqs []models.MaintenanceRequest
	if err := c.do(ctx, "GET", "/tenant/maintenance", nil, nil, &reqs, s); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (c *Client) GetTenantProfile(ctx context.Context, s *session.Session) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := c.do(ctx, "GET", "/tenant-profile", nil, nil, &tenant, s); err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (c *Client) UpdateTenantProfile(ctx context.Context, s *session.Session, in ProfileUpdateInput) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := c.do(ctx, "PUT", "/tenant-profile/update", nil, in, &tenant, s); err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (c *Client) ChangeTenantPassword(ctx context.Context, s *session.Session, current, newPassword string) error {
	req := changePasswordRequest{CurrentPassword: current, NewPassword: newPassword}
	return c.do(ctx, "PUT", "/tenant-profile/change-password", nil, req, nil, s)
}
