package models

type UnitStatus string

const (
	UnitVacant      UnitStatus = "vacant"
	UnitOccupied    UnitStatus = "occupied"
	UnitMaintenance UnitStatus = "maintenance"
)

// Unit belongs to one Property. Status transitions are driven by lease
// assignment and termination on the backend; the portal only mirrors them.
type Unit struct {
	ID            int64      `json:"unit_id"`
	PropertyID    int64      `json:"property_id"`
	UnitNumber    string     `json:"unit_number"`
	UnitName      string     `json:"unit_name"`
	Status        UnitStatus `json:"status"`
	Type          string     `json:"type"`
	MonthlyRent   float64    `json:"monthly_rent"`
	DepositAmount float64    `json:"deposit_amount"`
}

// UnitDetail is the nested shape the unit detail endpoint returns: the unit
// plus its active tenant/lease association and payment history, when any.
type UnitDetail struct {
	Unit
	CurrentTenant *Tenant   `json:"current_tenant,omitempty"`
	CurrentLease  *Lease    `json:"current_lease,omitempty"`
	Payments      []Payment `json:"payments,omitempty"`
}
