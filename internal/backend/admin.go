package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rentdesk/portal/internal/models"
	"github.com/rentdesk/portal/internal/session"
)

// RentFilters are combined into query parameters exactly as the rent screen
// selects them; empty values are omitted.
type RentFilters struct {
	Month  string
	Status string
	Search string
}

func (f RentFilters) query() url.Values {
	vals := url.Values{}
	if f.Month != "" {
		vals.Set("month", f.Month)
	}
	if f.Status != "" {
		vals.Set("status", f.Status)
	}
	if f.Search != "" {
		vals.Set("search", f.Search)
	}
	return vals
}

// MaintenanceUpdate carries the three admin-editable fields of a request.
type MaintenanceUpdate struct {
	Status   string  `json:"request_status"`
	Priority string  `json:"request_priority"`
	Cost     float64 `json:"cost"`
}

func (c *Client) GetAdminStats(ctx context.Context, s *session.Session) (*models.AdminStats, error) {
	endpoint := fmt.Sprintf("/admin/stats/%d", s.UserID)
	var stats models.AdminStats
	if err := c.do(ctx, "GET", endpoint, nil, nil, &stats, s); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) ListMaintenanceRequests(ctx context.Context, s *session.Session) ([]models.MaintenanceRequest, error) {
	endpoint := fmt.Sprintf("/admin/maintenance-requests/%d", s.UserID)
	var reqs []models.MaintenanceRequest
	if err := c.do(ctx, "GET", endpoint, nil, nil, &reqs, s); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (c *Client) UpdateMaintenanceRequest(ctx context.Context, s *session.Session, requestID int64, in MaintenanceUpdate) error {
	endpoint := fmt.Sprintf("/admin/maintenance-request/%d", requestID)
	return c.do(ctx, "PUT", endpoint, nil, in, nil, s)
}

func (c *Client) ListRentPayments(ctx context.Context, s *session.Session, f RentFilters) ([]models.Payment, error) {
	endpoint := fmt.Sprintf("/admin/rent-payments/%d", s.UserID)
	var payments []models.Payment
	if err := c.do(ctx, "GET", endpoint, f.query(), nil, &payments, s); err != nil {
		return nil, err
	}
	return payments, nil
}

func (c *Client) GetRentStats(ctx context.Context, s *session.Session, f RentFilters) (*models.RentStats, error) {
	endpoint := fmt.Sprintf("/admin/rent-payments/%d/stats", s.UserID)
	var stats models.RentStats
	if err := c.do(ctx, "GET", endpoint, f.query(), nil, &stats, s); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListRentMonths returns the distinct months for the rent filter dropdown.
func (c *Client) ListRentMonths(ctx context.Context, s *session.Session) ([]string, error) {
	endpoint := fmt.Sprintf("/admin/rent-payments/%d/months", s.UserID)
	var months []string
	if err := c.do(ctx, "GET", endpoint, nil, nil, &months, s); err != nil {
		return nil, err
	}
	return months, nil
}

func (c *Client) UpdateRentPaymentStatus(ctx context.Context, s *session.Session, paymentID int64, status models.PaymentStatus) error {
	endpoint := fmt.Sprintf("/admin/rent-payments/%d/status", paymentID)
	body := map[string]any{"status": status}
	return c.do(ctx, "PATCH", endpoint, nil, body, nil, s)
}
