package controllers

import (
	"net/http"

	"github.com/rentdesk/portal/internal/backend"
	"github.com/rentdesk/portal/internal/dtos"
	"github.com/rentdesk/portal/internal/middleware"
	"github.com/rentdesk/portal/internal/services"
	"github.com/rentdesk/portal/internal/views"
)

type AdminUnitsController struct {
	units *services.UnitService
	views *views.Renderer
}

func NewAdminUnitsController(units *services.UnitService, v *views.Renderer) *AdminUnitsController {
	return &AdminUnitsController{units: units, views: v}
}

// Create adds a unit under a property.
func (c *AdminUnitsController) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	propertyID, err := pathID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		SetFlash(w, "error", "Invalid form submission")
		http.Redirect(w, r, propertyPath(propertyID), http.StatusSeeOther)
		return
	}

	form := dtos.UnitForm{
		UnitNumber:    r.FormValue("unit_number"),
		UnitName:      r.FormValue("unit_name"),
		Type:          r.FormValue("type"),
		MonthlyRent:   formFloat(r, "monthly_rent"),
		DepositAmount: formFloat(r, "deposit_amount"),
	}
	if err := formValidate.Struct(form); err != nil {
		SetFlash(w, "error", "Unit number and type are required")
		http.Redirect(w, r, propertyPath(propertyID), http.StatusSeeOther)
		return
	}

	_, err = c.units.Create(r.Context(), sess, backend.UnitInput{
		PropertyID:    propertyID,
		UnitNumber:    form.UnitNumber,
		UnitName:      form.UnitName,
		Type:          form.Type,
		MonthlyRent:   form.MonthlyRent,
		DepositAmount: form.DepositAmount,
	})
	if err != nil {
		SetFlash(w, "error", apiMessage(err, "Failed to add unit"))
	} else {
		SetFlash(w, "success", "Unit added")
	}
	http.Redirect(w, r, propertyPath(propertyID), http.StatusSeeOther)
}

// Detail renders the unit page. A lease already past its end date is shown
// as ended before the backend confirms; the screen says so with a notice.
func (c *AdminUnitsController) Detail(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	page := Page{Title: "Unit", Session: sess, Flash: PopFlash(w, r)}
	view, err := c.units.Load(r.Context(), sess, id)
	if err != nil {
		page.Error = apiMessage(err, "Could not load unit")
		render(c.views, w, "admin_unit_detail", page)
		return
	}

	if view.AutoEnded && page.Flash == nil {
		page.Flash = &Flash{Kind: "info", Message: "This unit's lease reached its end date and was auto-ended."}
	}
	page.Title = "Unit " + view.UnitNumber
	page.Data = view
	render(c.views, w, "admin_unit_detail", page)
}

func (c *AdminUnitsController) Update(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		SetFlash(w, "error", "Invalid form submission")
		http.Redirect(w, r, unitPath(id), http.StatusSeeOther)
		return
	}

	form := dtos.UnitForm{
		UnitNumber:    r.FormValue("unit_number"),
		UnitName:      r.FormValue("unit_name"),
		Type:          r.FormValue("type"),
		MonthlyRent:   formFloat(r, "monthly_rent"),
		DepositAmount: formFloat(r, "deposit_amount"),
	}
	if err := formValidate.Struct(form); err != nil {
		SetFlash(w, "error", "Unit number and type are required")
		http.Redirect(w, r, unitPath(id), http.StatusSeeOther)
		return
	}

	_, err = c.units.Update(r.Context(), sess, id, backend.UnitInput{
		PropertyID:    formID(r, "property_id"),
		UnitNumber:    form.UnitNumber,
		UnitName:      form.UnitName,
		Type:          form.Type,
		MonthlyRent:   form.MonthlyRent,
		DepositAmount: form.DepositAmount,
	})
	if err != nil {
		SetFlash(w, "error", apiMessage(err, "Failed to update unit"))
	} else {
		SetFlash(w, "success", "Unit updated")
	}
	http.Redirect(w, r, unitPath(id), http.StatusSeeOther)
}

func (c *AdminUnitsController) Delete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	propertyID := formID(r, "property_id")

	if err := c.units.Delete(r.Context(), sess, id); err != nil {
		SetFlash(w, "error", apiMessage(err, "Failed to delete unit"))
		http.Redirect(w, r, unitPath(id), http.StatusSeeOther)
		return
	}
	SetFlash(w, "success", "Unit deleted")
	http.Redirect(w, r, propertyPath(propertyID), http.StatusSeeOther)
}

func (c *AdminUnitsController) AssignTenant(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		SetFlash(w, "error", "Invalid form submission")
		http.Redirect(w, r, unitPath(id), http.StatusSeeOther)
		return
	}

	form := dtos.AssignTenantForm{
		FirstName:             r.FormValue("first_name"),
		LastName:              r.FormValue("last_name"),
		Email:                 r.FormValue("email"),
		Phone:                 r.FormValue("phone"),
		EmergencyContactName:  r.FormValue("emergency_contact_name"),
		EmergencyContactPhone: r.FormValue("emergency_contact_phone"),
		MoveInDate:            r.FormValue("move_in_date"),
		LeaseStartDate:        r.FormValue("start_date"),
		LeaseEndDate:          r.FormValue("end_date"),
		PaymentDueDay:         formInt(r, "payment_due_day"),
		MonthlyRent:           formFloat(r, "monthly_rent"),
	}
	if err := formValidate.Struct(form); err != nil {
		SetFlash(w, "error", "Tenant name, email, phone and lease dates are required")
		http.Redirect(w, r, unitPath(id), http.StatusSeeOther)
		return
	}

	_, err = c.units.AssignTenant(r.Context(), sess, id, backend.AssignTenantInput{
		FirstName:             form.FirstName,
		LastName:              form.LastName,
		Email:                 form.Email,
		Phone:                 form.Phone,
		EmergencyContactName:  form.EmergencyContactName,
		EmergencyContactPhone: form.EmergencyContactPhone,
		MoveInDate:            form.MoveInDate,
		LeaseStartDate:        form.LeaseStartDate,
		LeaseEndDate:          form.LeaseEndDate,
		PaymentDueDay:         form.PaymentDueDay,
		MonthlyRent:           form.MonthlyRent,
	})
	if err != nil {
		SetFlash(w, "error", apiMessage(err, "Failed to assign tenant"))
	} else {
		SetFlash(w, "success", "Tenant assigned")
	}
	http.Redirect(w, r, unitPath(id), http.StatusSeeOther)
}

func (c *AdminUnitsController) RecordPayment(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		SetFlash(w, "error", "Invalid form submission")
		http.Redirect(w, r, unitPath(id), http.StatusSeeOther)
		return
	}

	form := dtos.RecordPaymentForm{
		Amount:                     formFloat(r, "amount"),
		PaymentDate:                r.FormValue("payment_date"),
		PaymentMethod:              r.FormValue("payment_method"),
		TransactionReferenceNumber: r.FormValue("transaction_reference_number"),
		PeriodStart:                r.FormValue("period_start"),
		PeriodEnd:                  r.FormValue("period_end"),
	}
	if err := formValidate.Struct(form); err != nil {
		SetFlash(w, "error", "Amount, date, method and period are required")
		http.Redirect(w, r, unitPath(id), http.StatusSeeOther)
		return
	}

	_, err = c.units.RecordPayment(r.Context(), sess, id, backend.RecordPaymentInput{
		Amount:                     form.Amount,
		PaymentDate:                form.PaymentDate,
		PaymentMethod:              form.PaymentMethod,
		TransactionReferenceNumber: form.TransactionReferenceNumber,
		PeriodStart:                form.PeriodStart,
		PeriodEnd:                  form.PeriodEnd,
	})
	if err != nil {
		SetFlash(w, "error", apiMessage(err, "Failed to record payment"))
	} else {
		SetFlash(w, "success", "Payment recorded")
	}
	http.Redirect(w, r, unitPath(id), http.StatusSeeOther)
}

func (c *AdminUnitsController) EndLease(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := c.units.EndLease(r.Context(), sess, id); err != nil {
		SetFlash(w, "error", apiMessage(err, "Failed to end lease"))
	} else {
		SetFlash(w, "success", "Lease ended; the unit is now vacant")
	}
	http.Redirect(w, r, unitPath(id), http.StatusSeeOther)
}
