package models

// AdminStats is the dashboard aggregate the backend computes per admin.
type AdminStats struct {
	TotalProperties     int     `json:"total_properties"`
	TotalUnits          int     `json:"total_units"`
	OccupiedUnits       int     `json:"occupied_units"`
	VacantUnits         int     `json:"vacant_units"`
	TotalTenants        int     `json:"total_tenants"`
	PendingMaintenance  int     `json:"pending_maintenance"`
	MonthlyRentExpected float64 `json:"monthly_rent_expected"`
}

// RentStats is the aggregate slice of the rent ledger screen.
type RentStats struct {
	Collected  float64 `json:"collected"`
	Expected   float64 `json:"expected"`
	Percentage float64 `json:"percentage"`
}

// TenantDashboard is the single aggregate fetch backing the tenant home
// screen.
type TenantDashboard struct {
	Tenant        Tenant    `json:"tenant"`
	Lease         *Lease    `json:"lease,omitempty"`
	Unit          *Unit     `json:"unit,omitempty"`
	Property      *Property `json:"property,omitempty"`
	Payments      []Payment `json:"payments"`
	PaymentStatus string    `json:"payment_status"`
}
