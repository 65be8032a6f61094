package routes

const (
	Health = "/health"

	Login          = "/login"
	Logout         = "/logout"
	Register       = "/register"
	ForgotPassword = "/forgot-password"
	ResetPassword  = "/reset-password/{token}"
	Unauthorized   = "/unauthorized"
	Dashboard      = "/dashboard"

	AdminHome           = "/admin"
	AdminProperties     = "/admin/properties"
	AdminPropertyDetail = "/admin/properties/{id}"
	AdminPropertyEdit   = "/admin/properties/{id}/edit"
	AdminPropertyDelete = "/admin/properties/{id}/delete"
	AdminUnitCreate     = "/admin/properties/{id}/units"
	AdminUnitDetail     = "/admin/units/{id}"
	AdminUnitEdit       = "/admin/units/{id}/edit"
	AdminUnitDelete     = "/admin/units/{id}/delete"
	AdminAssignTenant   = "/admin/units/{id}/assign-tenant"
	AdminRecordPayment  = "/admin/units/{id}/record-payment"
	AdminEndLease       = "/admin/units/{id}/end-lease"
	AdminRent           = "/admin/rent"
	AdminRentStatus     = "/admin/rent/{paymentId}/status"
	AdminMaintenance    = "/admin/maintenance"
	AdminMaintenanceAll = "/admin/maintenance/save-all"

	TenantHome        = "/tenant"
	TenantLeases      = "/tenant/leases"
	TenantPayments    = "/tenant/payments"
	TenantFilePayment = "/tenant/payments/new"
	TenantMaintenance = "/tenant/maintenance"
	TenantProfile     = "/tenant/profile"
	TenantPassword    = "/tenant/profile/password"
)
