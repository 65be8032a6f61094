package models

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentPaid      PaymentStatus = "paid"
	PaymentRejected  PaymentStatus = "rejected"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment belongs to one Lease. Status is assigned authoritatively by the
// backend; the portal never marks a payment completed on its own.
type Payment struct {
	ID                         int64         `json:"payment_id"`
	LeaseID                    int64         `json:"lease_id"`
	Amount                     float64       `json:"amount"`
	PaymentDate                string        `json:"payment_date"`
	PaymentMethod              string        `json:"payment_method"`
	TransactionReferenceNumber string        `json:"transaction_reference_number"`
	PeriodStart                string        `json:"period_start"`
	PeriodEnd                  string        `json:"period_end"`
	Status                     PaymentStatus `json:"status"`
}
