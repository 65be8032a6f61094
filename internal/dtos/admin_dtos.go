package dtos

// ----------------------
// Admin CRUD forms
// ----------------------

type PropertyForm struct {
	PropertyName string `validate:"required,min=1,max=255"`
	Address      string `validate:"required,min=1,max=255"`
	City         string `validate:"required,min=1,max=100"`
	State        string `validate:"required,min=1,max=50"`
	ZipCode      string `validate:"required,min=1,max=20"`
}

type UnitForm struct {
	UnitNumber    string  `validate:"required,min=1,max=50"`
	UnitName      string  `validate:"max=100"`
	Type          string  `validate:"required,min=1,max=50"`
	MonthlyRent   float64 `validate:"gte=0"`
	DepositAmount float64 `validate:"gte=0"`
}

type AssignTenantForm struct {
	FirstName             string  `validate:"required,min=1,max=100"`
	LastName              string  `validate:"required,min=1,max=100"`
	Email                 string  `validate:"required,email"`
	Phone                 string  `validate:"required"`
	EmergencyContactName  string  `validate:"max=100"`
	EmergencyContactPhone string  `validate:"max=30"`
	MoveInDate            string  `validate:"required"`
	LeaseStartDate        string  `validate:"required"`
	LeaseEndDate          string  `validate:"required"`
	PaymentDueDay         int     `validate:"gte=1,lte=31"`
	MonthlyRent           float64 `validate:"gte=0"`
}

type RecordPaymentForm struct {
	Amount                     float64 `validate:"required,gt=0"`
	PaymentDate                string  `validate:"required"`
	PaymentMethod              string  `validate:"required"`
	TransactionReferenceNumber string  `validate:"max=100"`
	PeriodStart                string  `validate:"required"`
	PeriodEnd                  string  `validate:"required"`
}
