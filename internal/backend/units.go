package backend

import (
	"context"
	"fmt"

	"github.com/rentdesk/portal/internal/models"
	"github.com/rentdesk/portal/internal/session"
)

// UnitInput is the create/update payload for a unit.
type UnitInput struct {
	PropertyID    int64   `json:"property_id"`
	UnitNumber    string  `json:"unit_number"`
	UnitName      string  `json:"unit_name"`
	Type          string  `json:"type"`
	MonthlyRent   float64 `json:"monthly_rent"`
	DepositAmount float64 `json:"deposit_amount"`
}

// AssignTenantInput creates a tenant and lease against a unit in one call.
type AssignTenantInput struct {
	FirstName             string  `json:"first_name"`
	LastName              string  `json:"last_name"`
	Email                 string  `json:"email"`
	Phone                 string  `json:"phone"`
	EmergencyContactName  string  `json:"emergency_contact_name"`
	EmergencyContactPhone string  `json:"emergency_contact_phone"`
	MoveInDate            string  `json:"move_in_date"`
	LeaseStartDate        string  `json:"start_date"`
	LeaseEndDate          string  `json:"end_date"`
	PaymentDueDay         int     `json:"payment_due_day"`
	MonthlyRent           float64 `json:"monthly_rent"`
}

// AssignTenantResult mirrors the `{tenant, lease}` body the assign-tenant
// endpoint returns on success.
type AssignTenantResult struct {
	Tenant models.Tenant `json:"tenant"`
	Lease  models.Lease  `json:"lease"`
}

// RecordPaymentInput is the admin-side payment recording payload.
type RecordPaymentInput struct {
	Amount                     float64 `json:"amount"`
	PaymentDate                string  `json:"payment_date"`
	PaymentMethod              string  `json:"payment_method"`
	TransactionReferenceNumber string  `json:"transaction_reference_number"`
	PeriodStart                string  `json:"period_start"`
	PeriodEnd                  string  `json:"period_end"`
}

func (c *Client) ListUnits(ctx context.Context, s *session.Session, propertyID int64) ([]models.Unit, error) {
	endpoint := fmt.Sprintf("/units/property/%d", propertyID)
	var units []models.Unit
	if err := c.do(ctx, "GET", endpoint, nil, nil, &units, s); err != nil {
		return nil, err
	}
	return units, nil
}

func (c *Client) GetUnit(ctx context.Context, s *session.Session, id int64) (*models.UnitDetail, error) {
	endpoint := fmt.Sprintf("/units/%d", id)
	var detail models.UnitDetail
	if err := c.do(ctx, "GET", endpoint, nil, nil, &detail, s); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) CreateUnit(ctx context.Context, s *session.Session, in UnitInput) (*models.Unit, error) {
	var unit models.Unit
	if err := c.do(ctx, "POST", "/units", nil, in, &unit, s); err != nil {
		return nil, err
	}
	return &unit, nil
}

func (c *Client) UpdateUnit(ctx context.Context, s *session.Session, id int64, in UnitInput) (*models.Unit, error) {
	endpoint := fmt.Sprintf("/units/%d", id)
	var unit models.Unit
	if err := c.do(ctx, "PATCH", endpoint, nil, in, &unit, s); err != nil {
		return nil, err
	}
	return &unit, nil
}

func (c *Client) DeleteUnit(ctx context.Context, s *session.Session, id int64) error {
	endpoint := fmt.Sprintf("/units/%d", id)
	return c.do(ctx, "DELETE", endpoint, nil, nil, nil, s)
}

func (c *Client) AssignTenant(ctx context.Context, s *session.Session, unitID int64, in AssignTenantInput) (*AssignTenantResult, error) {
	endpoint := fmt.Sprintf("/units/%d/assign-tenant", unitID)
	var result AssignTenantResult
	if err := c.do(ctx, "POST", endpoint, nil, in, &result, s); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) RecordPayment(ctx context.Context, s *session.Session, unitID int64, in RecordPaymentInput) (*models.Payment, error) {
	endpoint := fmt.Sprintf("/units/%d/record-payment", unitID)
	var payment models.Payment
	if err := c.do(ctx, "POST", endpoint, nil, in, &payment, s); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *Client) EndLease(ctx context.Context, s *session.Session, unitID int64) error {
	endpoint := fmt.Sprintf("/units/%d/end-lease", unitID)
	return c.do(ctx, "POST", endpoint, nil, nil, nil, s)
}
