package controllers

import (
	"net/http"

	"github.com/rentdesk/portal/internal/backend"
	"github.com/rentdesk/portal/internal/dtos"
	"github.com/rentdesk/portal/internal/middleware"
	"github.com/rentdesk/portal/internal/models"
	"github.com/rentdesk/portal/internal/services"
	"github.com/rentdesk/portal/internal/validate"
	"github.com/rentdesk/portal/internal/views"
)

type TenantController struct {
	tenant *services.TenantService
	views  *views.Renderer
}

func NewTenantController(tenant *services.TenantService, v *views.Renderer) *TenantController {
	return &TenantController{tenant: tenant, views: v}
}

func (c *TenantController) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	page := Page{Title: "My Dashboard", Session: sess, Flash: PopFlash(w, r)}
	dash, err := c.tenant.Dashboard(r.Context(), sess)
	if err != nil {
		page.Error = apiMessage(err, "Could not load your dashboard")
	} else {
		page.Data = dash
	}
	render(c.views, w, "tenant_dashboard", page)
}

type tenantLeasesData struct {
	Leases []models.Lease
}

func (c *TenantController) Leases(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	page := Page{Title: "My Leases", Session: sess, Flash: PopFlash(w, r)}
	leases, err := c.tenant.Leases(r.Context(), sess)
	if err != nil {
		page.Error = apiMessage(err, "Could not load lease history")
	} else {
		page.Data = tenantLeasesData{Leases: leases}
	}
	render(c.views, w, "tenant_leases", page)
}

type tenantPaymentsData struct {
	Payments []models.Payment
}

func (c *TenantController) Payments(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	page := Page{Title: "My Payments", Session: sess, Flash: PopFlash(w, r)}
	payments, err := c.tenant.Payments(r.Context(), sess)
	if err != nil {
		page.Error = apiMessage(err, "Could not load payment history")
	} else {
		page.Data = tenantPaymentsData{Payments: payments}
	}
	render(c.views, w, "tenant_payments", page)
}

// ShowFilePayment prefetches the active lease so the form can prefill the
// lease/tenant/admin ids the payment must reference.
func (c *TenantController) ShowFilePayment(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	page := Page{Title: "File a Payment", Session: sess, Flash: PopFlash(w, r)}
	info, err := c.tenant.PaymentPrefill(r.Context(), sess)
	if err != nil {
		page.Error = apiMessage(err, "You need an active lease to file a payment")
	} else {
		page.Data = info
	}
	render(c.views, w, "tenant_file_payment", page)
}

// FilePayment submits the payment. Status is forced to pending downstream;
// the portal never marks a payment completed.
func (c *TenantController) FilePayment(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		SetFlash(w, "error", "Invalid form submission")
		http.Redirect(w, r, "/tenant/payments/new", http.StatusSeeOther)
		return
	}

	form := dtos.FilePaymentForm{
		Amount:                     formFloat(r, "amount"),
		PaymentDate:                r.FormValue("payment_date"),
		PaymentMethod:              r.FormValue("payment_method"),
		TransactionReferenceNumber: r.FormValue("transaction_reference_number"),
		PeriodStart:                r.FormValue("period_start"),
		PeriodEnd:                  r.FormValue("period_end"),
	}
	if err := formValidate.Struct(form); err != nil {
		SetFlash(w, "error", "Amount, date, method and period are required")
		http.Redirect(w, r, "/tenant/payments/new", http.StatusSeeOther)
		return
	}

	_, err := c.tenant.FilePayment(r.Context(), sess, backend.FilePaymentInput{
		LeaseID:                    formID(r, "lease_id"),
		TenantID:                   formID(r, "tenant_id"),
		AdminID:                    formID(r, "admin_id"),
		Amount:                     form.Amount,
		PaymentDate:                form.PaymentDate,
		PaymentMethod:              form.PaymentMethod,
		TransactionReferenceNumber: form.TransactionReferenceNumber,
		PeriodStart:                form.PeriodStart,
		PeriodEnd:                  form.PeriodEnd,
	})
	if err != nil {
		SetFlash(w, "error", apiMessage(err, "Failed to file payment"))
		http.Redirect(w, r, "/tenant/payments/new", http.StatusSeeOther)
		return
	}
	SetFlash(w, "success", "Payment filed and awaiting review")
	http.Redirect(w, r, "/tenant/payments", http.StatusSeeOther)
}

type tenantMaintenanceData struct {
	Requests []models.MaintenanceRequest
}

func (c *TenantController) Maintenance(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	page := Page{Title: "Maintenance", Session: sess, Flash: PopFlash(w, r)}
	reqs, err := c.tenant.Maintenance(r.Context(), sess)
	if err != nil {
		page.Error = apiMessage(err, "Could not load maintenance requests")
	} else {
		page.Data = tenantMaintenanceData{Requests: reqs}
	}
	render(c.views, w, "tenant_maintenance", page)
}

func (c *TenantController) SubmitMaintenance(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		SetFlash(w, "error", "Invalid form submission")
		http.Redirect(w, r, "/tenant/maintenance", http.StatusSeeOther)
		return
	}

	form := dtos.MaintenanceRequestForm{
		Description: r.FormValue("request_description"),
		Priority:    r.FormValue("request_priority"),
	}
	if err := formValidate.Struct(form); err != nil {
		SetFlash(w, "error", "A description and priority are required")
		http.Redirect(w, r, "/tenant/maintenance", http.StatusSeeOther)
		return
	}

	_, err := c.tenant.SubmitMaintenance(r.Context(), sess, backend.MaintenanceInput{
		Description: form.Description,
		Priority:    form.Priority,
	})
	if err != nil {
		SetFlash(w, "error", apiMessage(err, "Failed to submit maintenance request"))
	} else {
		SetFlash(w, "success", "Maintenance request submitted")
	}
	http.Redirect(w, r, "/tenant/maintenance", http.StatusSeeOther)
}

func (c *TenantController) Profile(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	page := Page{Title: "My Profile", Session: sess, Flash: PopFlash(w, r)}
	tenant, err := c.tenant.Profile(r.Context(), sess)
	if err != nil {
		page.Error = apiMessage(err, "Could not load your profile")
	} else {
		page.Data = tenant
	}
	render(c.views, w, "tenant_profile", page)
}

// UpdateProfile validates the phone number locally (length after stripping a
// detected country-code prefix) before any network call.
func (c *TenantController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		SetFlash(w, "error", "Invalid form submission")
		http.Redirect(w, r, "/tenant/profile", http.StatusSeeOther)
		return
	}

	form := dtos.ProfileForm{
		FirstName:             r.FormValue("first_name"),
		LastName:              r.FormValue("last_name"),
		Email:                 r.FormValue("email"),
		Phone:                 r.FormValue("phone"),
		EmergencyContactName:  r.FormValue("emergency_contact_name"),
		EmergencyContactPhone: r.FormValue("emergency_contact_phone"),
	}
	if err := formValidate.Struct(form); err != nil {
		SetFlash(w, "error", "Name, email and phone are required")
		http.Redirect(w, r, "/tenant/profile", http.StatusSeeOther)
		return
	}
	if err := validate.CheckPhone(form.Phone); err != nil {
		SetFlash(w, "error", err.Error())
		http.Redirect(w, r, "/tenant/profile", http.StatusSeeOther)
		return
	}

	_, err := c.tenant.UpdateProfile(r.Context(), sess, backend.ProfileUpdateInput{
		FirstName:             form.FirstName,
		LastName:              form.LastName,
		Email:                 form.Email,
		Phone:                 form.Phone,
		EmergencyContactName:  form.EmergencyContactName,
		EmergencyContactPhone: form.EmergencyContactPhone,
	})
	if err != nil {
		SetFlash(w, "error", apiMessage(err, "Failed to update profile"))
	} else {
		SetFlash(w, "success", "Profile updated")
	}
	http.Redirect(w, r, "/tenant/profile", http.StatusSeeOther)
}

// ChangePassword is a separate form with its own success/error state; the
// local password policy runs before the backend is called.
func (c *TenantController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		SetFlash(w, "error", "Invalid form submission")
		http.Redirect(w, r, "/tenant/profile", http.StatusSeeOther)
		return
	}

	form := dtos.ChangePasswordForm{
		CurrentPassword: r.FormValue("current_password"),
		NewPassword:     r.FormValue("new_password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}
	if err := formValidate.Struct(form); err != nil {
		SetFlash(w, "error", "All password fields are required")
		http.Redirect(w, r, "/tenant/profile", http.StatusSeeOther)
		return
	}
	if err := validate.CheckNewPassword(form.NewPassword, form.ConfirmPassword); err != nil {
		SetFlash(w, "error", err.Error())
		http.Redirect(w, r, "/tenant/profile", http.StatusSeeOther)
		return
	}

	if err := c.tenant.ChangePassword(r.Context(), sess, form.CurrentPassword, form.NewPassword); err != nil {
		SetFlash(w, "error", apiMessage(err, "Failed to change password"))
	} else {
		SetFlash(w, "success", "Password changed")
	}
	http.Redirect(w, r, "/tenant/profile", http.StatusSeeOther)
}
