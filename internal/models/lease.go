package models

// Lease links one Tenant to one Unit. Dates travel as date-only strings; the
// portal parses them only where it derives display state (see services).
type Lease struct {
	ID            int64  `json:"lease_id"`
	TenantID      int64  `json:"tenant_id"`
	UnitID        int64  `json:"unit_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	PaymentDueDay int    `json:"payment_due_day"`
	LeaseStatus   string `json:"lease_status"`
}
