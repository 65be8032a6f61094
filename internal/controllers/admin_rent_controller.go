package controllers

import (
	"net/http"
	"net/url"

	"github.com/rentdesk/portal/internal/backend"
	"github.com/rentdesk/portal/internal/middleware"
	"github.com/rentdesk/portal/internal/models"
	"github.com/rentdesk/portal/internal/services"
	"github.com/rentdesk/portal/internal/views"
)

type AdminRentController struct {
	rent  *services.RentService
	views *views.Renderer
}

func NewAdminRentController(rent *services.RentService, v *views.Renderer) *AdminRentController {
	return &AdminRentController{rent: rent, views: v}
}

// View loads the rent ledger. Filters come straight from the query string;
// any change re-fetches payments, stats, and months in parallel.
func (c *AdminRentController) View(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	filters := backend.RentFilters{
		Month:  r.URL.Query().Get("month"),
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
	}

	ledger := c.rent.Load(r.Context(), sess, filters)
	render(c.views, w, "admin_rent", Page{
		Title:   "Rent Management",
		Session: sess,
		Flash:   PopFlash(w, r),
		Data:    ledger,
	})
}

// UpdateStatus approves or rejects one payment, then returns to the ledger
// with the active filters preserved.
func (c *AdminRentController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	paymentID, err := pathID(r, "paymentId")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	status := models.PaymentStatus(r.FormValue("status"))
	switch status {
	case models.PaymentCompleted, models.PaymentRejected, models.PaymentRefunded:
	default:
		SetFlash(w, "error", "Unsupported payment status")
		http.Redirect(w, r, rentPath(r), http.StatusSeeOther)
		return
	}

	if err := c.rent.UpdateStatus(r.Context(), sess, paymentID, status); err != nil {
		SetFlash(w, "error", apiMessage(err, "Failed to update payment status"))
	} else {
		SetFlash(w, "success", "Payment status updated")
	}
	http.Redirect(w, r, rentPath(r), http.StatusSeeOther)
}

// rentPath rebuilds the ledger URL with the filters the form carried along.
func rentPath(r *http.Request) string {
	vals := url.Values{}
	for _, key := range []string{"month", "status_filter", "search"} {
		if v := r.FormValue(key); v != "" {
			name := key
			if key == "status_filter" {
				name = "status"
			}
			vals.Set(name, v)
		}
	}
	if len(vals) == 0 {
		return "/admin/rent"
	}
	return "/admin/rent?" + vals.Encode()
}
