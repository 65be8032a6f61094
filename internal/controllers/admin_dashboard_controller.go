package controllers

import (
	"net/http"

	"github.com/rentdesk/portal/internal/backend"
	"github.com/rentdesk/portal/internal/middleware"
	"github.com/rentdesk/portal/internal/views"
)

type AdminDashboardController struct {
	api   *backend.Client
	views *views.Renderer
}

func NewAdminDashboardController(api *backend.Client, v *views.Renderer) *AdminDashboardController {
	return &AdminDashboardController{api: api, views: v}
}

func (c *AdminDashboardController) Home(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	page := Page{Title: "Dashboard", Session: sess, Flash: PopFlash(w, r)}
	stats, err := c.api.GetAdminStats(r.Context(), sess)
	if err != nil {
		page.Error = "Could not load dashboard stats"
	} else {
		page.Data = stats
	}
	render(c.views, w, "admin_dashboard", page)
}
