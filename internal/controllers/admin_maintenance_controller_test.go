package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/rentdesk/portal/internal/backend"
	"github.com/rentdesk/portal/internal/middleware"
	"github.com/rentdesk/portal/internal/routes"
	"github.com/rentdesk/portal/internal/services"
	"github.com/rentdesk/portal/internal/session"
	"github.com/rentdesk/portal/internal/views"
)

func maintenanceHarness(t *testing.T, handler http.HandlerFunc) (*mux.Router, *[]string) {
	t.Helper()

	var (
		mu       sync.Mutex
		requests []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests = append(requests, r.Method+" "+r.URL.Path)
		mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	api, err := backend.NewClient(srv.URL, 5*time.Second)
	require.NoError(t, err)
	renderer, err := views.New()
	require.NoError(t, err)

	c := NewAdminMaintenanceController(services.NewMaintenanceService(api), renderer)

	router := mux.NewRouter()
	// Session middleware is exercised elsewhere; inject a fixed admin session
	// the way the guard would.
	router.HandleFunc(routes.AdminMaintenanceAll, withAdminSession(c.SaveAll)).Methods("POST")

	return router, &requests
}

// withSessionRole injects a session into the request context the way the
// role guard would on a real request.
func withSessionRole(next http.HandlerFunc, s *session.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), middleware.ContextKeySession, s)
		next(w, r.WithContext(ctx))
	}
}

func withAdminSession(next http.HandlerFunc) http.HandlerFunc {
	return withSessionRole(next, &session.Session{UserID: 1, Role: session.RoleAdmin, Username: "ada"})
}

func TestSaveAllOnlyDirtyRowsHitBackend(t *testing.T) {
	router, requests := maintenanceHarness(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	// Row 1 untouched, row 2 status changed, row 3 cost changed.
	form := url.Values{
		"ids":             {"1", "2", "3"},
		"orig_status_1":   {"pending"},
		"orig_priority_1": {"low"},
		"orig_cost_1":     {"0.00"},
		"status_1":        {"pending"},
		"priority_1":      {"low"},
		"cost_1":          {"0.00"},

		"orig_status_2":   {"pending"},
		"orig_priority_2": {"high"},
		"orig_cost_2":     {"50.00"},
		"status_2":        {"in_progress"},
		"priority_2":      {"high"},
		"cost_2":          {"50.00"},

		"orig_status_3":   {"completed"},
		"orig_priority_3": {"medium"},
		"orig_cost_3":     {"120.00"},
		"status_3":        {"completed"},
		"priority_3":      {"medium"},
		"cost_3":          {"140.00"},
	}

	rec := postForm(router, "/admin/maintenance/save-all", form)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin/maintenance", rec.Header().Get("Location"))

	require.Len(t, *requests, 2, "exactly one request per dirty row")
	for _, req := range *requests {
		require.True(t, strings.HasPrefix(req, "PUT /admin/maintenance-request/"), req)
	}
	require.NotContains(t, *requests, "PUT /admin/maintenance-request/1")
}

func TestSaveAllNoChangesSkipsBackend(t *testing.T) {
	router, requests := maintenanceHarness(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	form := url.Values{
		"ids":             {"1"},
		"orig_status_1":   {"pending"},
		"orig_priority_1": {"low"},
		"orig_cost_1":     {"0.00"},
		"status_1":        {"pending"},
		"priority_1":      {"low"},
		"cost_1":          {"0.00"},
	}

	rec := postForm(router, "/admin/maintenance/save-all", form)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Empty(t, *requests, "unchanged rows must not produce requests")
}
