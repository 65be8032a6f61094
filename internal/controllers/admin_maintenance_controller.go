package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/rentdesk/portal/internal/middleware"
	"github.com/rentdesk/portal/internal/models"
	"github.com/rentdesk/portal/internal/services"
	"github.com/rentdesk/portal/internal/views"
)

type AdminMaintenanceController struct {
	maintenance *services.MaintenanceService
	views       *views.Renderer
}

func NewAdminMaintenanceController(m *services.MaintenanceService, v *views.Renderer) *AdminMaintenanceController {
	return &AdminMaintenanceController{maintenance: m, views: v}
}

type maintenanceListData struct {
	Requests []models.MaintenanceRequest
}

func (c *AdminMaintenanceController) View(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	page := Page{Title: "Maintenance", Session: sess, Flash: PopFlash(w, r)}
	reqs, err := c.maintenance.List(r.Context(), sess)
	if err != nil {
		page.Error = apiMessage(err, "Could not load maintenance requests")
	} else {
		page.Data = maintenanceListData{Requests: reqs}
	}
	render(c.views, w, "admin_maintenance", page)
}

// SaveAll persists only the rows that changed since the snapshot rendered
// into the form. The snapshot rides along as hidden orig_* fields, so the
// diff is taken against the state of the last successful load, not a fresh
// fetch.
func (c *AdminMaintenanceController) SaveAll(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		SetFlash(w, "error", "Invalid form submission")
		http.Redirect(w, r, "/admin/maintenance", http.StatusSeeOther)
		return
	}

	var (
		snapshot []models.MaintenanceRequest
		edits    []services.MaintenanceEdit
	)
	for _, rawID := range r.PostForm["ids"] {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			continue
		}
		snapshot = append(snapshot, models.MaintenanceRequest{
			ID:       id,
			Status:   r.FormValue(fmt.Sprintf("orig_status_%d", id)),
			Priority: r.FormValue(fmt.Sprintf("orig_priority_%d", id)),
			Cost:     formFloat(r, fmt.Sprintf("orig_cost_%d", id)),
		})
		edits = append(edits, services.MaintenanceEdit{
			RequestID: id,
			Status:    r.FormValue(fmt.Sprintf("status_%d", id)),
			Priority:  r.FormValue(fmt.Sprintf("priority_%d", id)),
			Cost:      formFloat(r, fmt.Sprintf("cost_%d", id)),
		})
	}

	changed := services.DiffEdits(snapshot, edits)
	if len(changed) == 0 {
		SetFlash(w, "info", "No changes to save")
		http.Redirect(w, r, "/admin/maintenance", http.StatusSeeOther)
		return
	}

	failures := c.maintenance.SaveAll(r.Context(), sess, changed)
	if len(failures) > 0 {
		SetFlash(w, "error", fmt.Sprintf("Saved %d of %d changed requests", len(changed)-len(failures), len(changed)))
	} else {
		SetFlash(w, "success", fmt.Sprintf("Saved %d changed request(s)", len(changed)))
	}
	http.Redirect(w, r, "/admin/maintenance", http.StatusSeeOther)
}
