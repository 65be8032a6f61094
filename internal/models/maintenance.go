package models

type MaintenanceRequest struct {
	ID          int64   `json:"request_id"`
	TenantID    int64   `json:"tenant_id"`
	Description string  `json:"request_description"`
	Status      string  `json:"request_status"`
	Priority    string  `json:"request_priority"`
	Cost        float64 `json:"cost"`
	RequestDate string  `json:"request_date"`
}
