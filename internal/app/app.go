package app

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rentdesk/portal/internal/backend"
	"github.com/rentdesk/portal/internal/config"
	"github.com/rentdesk/portal/internal/controllers"
	"github.com/rentdesk/portal/internal/middleware"
	"github.com/rentdesk/portal/internal/routes"
	"github.com/rentdesk/portal/internal/services"
	"github.com/rentdesk/portal/internal/session"
	"github.com/rentdesk/portal/internal/views"
)

type App struct {
	Config *config.Config
	API    *backend.Client
	Views  *views.Renderer
}

func NewApp(cfg *config.Config) (*App, error) {
	api, err := backend.NewClient(cfg.BackendBaseURL, cfg.RequestTimeout)
	if err != nil {
		return nil, err
	}

	renderer, err := views.New()
	if err != nil {
		return nil, err
	}

	return &App{
		Config: cfg,
		API:    api,
		Views:  renderer,
	}, nil
}

// Router builds the full route table. Admin and tenant page trees sit behind
// their role guards; everything else is public.
func (a *App) Router() *mux.Router {
	//----------------------------------------------------------------------
	// Services
	//----------------------------------------------------------------------
	propertyService := services.NewPropertyService(a.API)
	unitService := services.NewUnitService(a.API)
	rentService := services.NewRentService(a.API)
	maintenanceService := services.NewMaintenanceService(a.API)
	tenantService := services.NewTenantService(a.API)

	//----------------------------------------------------------------------
	// Controllers
	//----------------------------------------------------------------------
	healthController := controllers.NewHealthController()
	authController := controllers.NewAuthController(a.API, a.Views)
	dashboardController := controllers.NewAdminDashboardController(a.API, a.Views)
	propertiesController := controllers.NewAdminPropertiesController(propertyService, a.Views)
	unitsController := controllers.NewAdminUnitsController(unitService, a.Views)
	rentController := controllers.NewAdminRentController(rentService, a.Views)
	maintenanceController := controllers.NewAdminMaintenanceController(maintenanceService, a.Views)
	tenantController := controllers.NewTenantController(tenantService, a.Views)

	//----------------------------------------------------------------------
	// Router & Endpoints
	//----------------------------------------------------------------------
	router := mux.NewRouter()
	router.Use(middleware.RequestID, middleware.Logging)

	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods("GET")
	router.PathPrefix("/static/").Handler(views.StaticHandler()).Methods("GET")

	// Public pages
	router.HandleFunc(routes.Login, authController.ShowLogin).Methods("GET")
	router.HandleFunc(routes.Login, authController.Login).Methods("POST")
	router.HandleFunc(routes.Logout, authController.Logout).Methods("POST")
	router.HandleFunc(routes.Register, authController.ShowRegister).Methods("GET")
	router.HandleFunc(routes.ForgotPassword, authController.ShowForgotPassword).Methods("GET")
	router.HandleFunc(routes.ResetPassword, authController.ShowResetPassword).Methods("GET")
	router.HandleFunc(routes.ResetPassword, authController.ResetPassword).Methods("POST")
	router.HandleFunc(routes.Unauthorized, authController.Unauthorized).Methods("GET")
	router.HandleFunc(routes.Dashboard, authController.Dashboard).Methods("GET")

	// Admin pages
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireRole(session.RoleAdmin))
	admin.HandleFunc("", dashboardController.Home).Methods("GET")
	admin.HandleFunc("/", dashboardController.Home).Methods("GET")

	admin.HandleFunc("/properties", propertiesController.List).Methods("GET")
	admin.HandleFunc("/properties", propertiesController.Create).Methods("POST")
	admin.HandleFunc("/properties/{id}", propertiesController.Detail).Methods("GET")
	admin.HandleFunc("/properties/{id}/edit", propertiesController.Update).Methods("POST")
	admin.HandleFunc("/properties/{id}/delete", propertiesController.Delete).Methods("POST")
	admin.HandleFunc("/properties/{id}/units", unitsController.Create).Methods("POST")

	admin.HandleFunc("/units/{id}", unitsController.Detail).Methods("GET")
	admin.HandleFunc("/units/{id}/edit", unitsController.Update).Methods("POST")
	admin.HandleFunc("/units/{id}/delete", unitsController.Delete).Methods("POST")
	admin.HandleFunc("/units/{id}/assign-tenant", unitsController.AssignTenant).Methods("POST")
	admin.HandleFunc("/units/{id}/record-payment", unitsController.RecordPayment).Methods("POST")
	admin.HandleFunc("/units/{id}/end-lease", unitsController.EndLease).Methods("POST")

	admin.HandleFunc("/rent", rentController.View).Methods("GET")
	admin.HandleFunc("/rent/{paymentId}/status", rentController.UpdateStatus).Methods("POST")

	admin.HandleFunc("/maintenance", maintenanceController.View).Methods("GET")
	admin.HandleFunc("/maintenance/save-all", maintenanceController.SaveAll).Methods("POST")

	// Tenant pages
	tenant := router.PathPrefix("/tenant").Subrouter()
	tenant.Use(middleware.RequireRole(session.RoleTenant))
	tenant.HandleFunc("", tenantController.Dashboard).Methods("GET")
	tenant.HandleFunc("/", tenantController.Dashboard).Methods("GET")
	tenant.HandleFunc("/leases", tenantController.Leases).Methods("GET")
	tenant.HandleFunc("/payments", tenantController.Payments).Methods("GET")
	tenant.HandleFunc("/payments/new", tenantController.ShowFilePayment).Methods("GET")
	tenant.HandleFunc("/payments/new", tenantController.FilePayment).Methods("POST")
	tenant.HandleFunc("/maintenance", tenantController.Maintenance).Methods("GET")
	tenant.HandleFunc("/maintenance", tenantController.SubmitMaintenance).Methods("POST")
	tenant.HandleFunc("/profile", tenantController.Profile).Methods("GET")
	tenant.HandleFunc("/profile", tenantController.UpdateProfile).Methods("POST")
	tenant.HandleFunc("/profile/password", tenantController.ChangePassword).Methods("POST")

	// Root goes to login; the login handler redirects active sessions onward.
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, routes.Login, http.StatusSeeOther)
	}).Methods("GET")

	return router
}
