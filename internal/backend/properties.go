package backend

import (
	"context"
	"fmt"

	"github.com/rentdesk/portal/internal/models"
	"github.com/rentdesk/portal/internal/session"
)

// PropertyInput is the create/update payload for a property.
type PropertyInput struct {
	PropertyName string `json:"property_name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

// ListProperties returns the properties owned by the acting admin.
func (c *Client) ListProperties(ctx context.Context, s *session.Session) ([]models.Property, error) {
	endpoint := fmt.Sprintf("/properties/admin/%d", s.UserID)
	var props []models.Property
	if err := c.do(ctx, "GET", endpoint, nil, nil, &props, s); err != nil {
		return nil, err
	}
	return props, nil
}

func (c *Client) GetProperty(ctx context.Context, s *session.Session, id int64) (*models.Property, error) {
	endpoint := fmt.Sprintf("/properties/%d", id)
	var prop models.Property
	if err := c.do(ctx, "GET", endpoint, nil, nil, &prop, s); err != nil {
		return nil, err
	}
	return &prop, nil
}

func (c *Client) CreateProperty(ctx context.Context, s *session.Session, in PropertyInput) (*models.Property, error) {
	var prop models.Property
	if err := c.do(ctx, "POST", "/properties", nil, in, &prop, s); err != nil {
		return nil, err
	}
	return &prop, nil
}

func (c *Client) UpdateProperty(ctx context.Context, s *session.Session, id int64, in PropertyInput) (*models.Property, error) {
	endpoint := fmt.Sprintf("/properties/%d", id)
	var prop models.Property
	if err := c.do(ctx, "PATCH", endpoint, nil, in, &prop, s); err != nil {
		return nil, err
	}
	return &prop, nil
}

func (c *Client) DeleteProperty(ctx context.Context, s *session.Session, id int64) error {
	endpoint := fmt.Sprintf("/properties/%d", id)
	return c.do(ctx, "DELETE", endpoint, nil, nil, nil, s)
}
