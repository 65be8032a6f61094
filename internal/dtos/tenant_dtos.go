package dtos

// ----------------------
// Tenant portal forms
// ----------------------

type FilePaymentForm struct {
	Amount                     float64 `validate:"required,gt=0"`
	PaymentDate                string  `validate:"required"`
	PaymentMethod              string  `validate:"required"`
	TransactionReferenceNumber string  `validate:"max=100"`
	PeriodStart                string  `validate:"required"`
	PeriodEnd                  string  `validate:"required"`
}

type MaintenanceRequestForm struct {
	Description string `validate:"required,min=1,max=2000"`
	Priority    string `validate:"required,oneof=low medium high urgent"`
}

type ProfileForm struct {
	FirstName             string `validate:"required,min=1,max=100"`
	LastName              string `validate:"required,min=1,max=100"`
	Email                 string `validate:"required,email"`
	Phone                 string `validate:"required"`
	EmergencyContactName  string `validate:"max=100"`
	EmergencyContactPhone string `validate:"max=30"`
}

type ChangePasswordForm struct {
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required"`
	ConfirmPassword string `validate:"required"`
}
