package controllers

import (
	"errors"
	"net/http"

	"github.com/rentdesk/portal/internal/backend"
	"github.com/rentdesk/portal/internal/dtos"
	"github.com/rentdesk/portal/internal/middleware"
	"github.com/rentdesk/portal/internal/models"
	"github.com/rentdesk/portal/internal/services"
	"github.com/rentdesk/portal/internal/views"
)

type AdminPropertiesController struct {
	properties *services.PropertyService
	views      *views.Renderer
}

func NewAdminPropertiesController(properties *services.PropertyService, v *views.Renderer) *AdminPropertiesController {
	return &AdminPropertiesController{properties: properties, views: v}
}

type propertiesListData struct {
	Properties []models.Property
}

func (c *AdminPropertiesController) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	page := Page{Title: "Properties", Session: sess, Flash: PopFlash(w, r)}
	props, err := c.properties.List(r.Context(), sess)
	if err != nil {
		page.Error = apiMessage(err, "Could not load properties")
	} else {
		page.Data = propertiesListData{Properties: props}
	}
	render(c.views, w, "admin_properties", page)
}

func (c *AdminPropertiesController) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		SetFlash(w, "error", "Invalid form submission")
		http.Redirect(w, r, "/admin/properties", http.StatusSeeOther)
		return
	}

	form := dtos.PropertyForm{
		PropertyName: r.FormValue("property_name"),
		Address:      r.FormValue("address"),
		City:         r.FormValue("city"),
		State:        r.FormValue("state"),
		ZipCode:      r.FormValue("zip_code"),
	}
	if err := formValidate.Struct(form); err != nil {
		SetFlash(w, "error", "All property fields are required")
		http.Redirect(w, r, "/admin/properties", http.StatusSeeOther)
		return
	}

	_, err := c.properties.Create(r.Context(), sess, backend.PropertyInput{
		PropertyName: form.PropertyName,
		Address:      form.Address,
		City:         form.City,
		State:        form.State,
		ZipCode:      form.ZipCode,
	})
	if err != nil {
		SetFlash(w, "error", apiMessage(err, "Failed to create property"))
	} else {
		SetFlash(w, "success", "Property created")
	}
	http.Redirect(w, r, "/admin/properties", http.StatusSeeOther)
}

func (c *AdminPropertiesController) Detail(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	page := Page{Title: "Property", Session: sess, Flash: PopFlash(w, r)}
	detail, err := c.properties.Detail(r.Context(), sess, id)
	if err != nil {
		page.Error = apiMessage(err, "Could not load property")
	} else {
		page.Title = detail.Property.PropertyName
		page.Data = detail
	}
	render(c.views, w, "admin_property_detail", page)
}

func (c *AdminPropertiesController) Update(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		SetFlash(w, "error", "Invalid form submission")
		http.Redirect(w, r, "/admin/properties", http.StatusSeeOther)
		return
	}

	form := dtos.PropertyForm{
		PropertyName: r.FormValue("property_name"),
		Address:      r.FormValue("address"),
		City:         r.FormValue("city"),
		State:        r.FormValue("state"),
		ZipCode:      r.FormValue("zip_code"),
	}
	if err := formValidate.Struct(form); err != nil {
		SetFlash(w, "error", "All property fields are required")
		http.Redirect(w, r, propertyPath(id), http.StatusSeeOther)
		return
	}

	_, err = c.properties.Update(r.Context(), sess, id, backend.PropertyInput{
		PropertyName: form.PropertyName,
		Address:      form.Address,
		City:         form.City,
		State:        form.State,
		ZipCode:      form.ZipCode,
	})
	if err != nil {
		SetFlash(w, "error", apiMessage(err, "Failed to update property"))
	} else {
		SetFlash(w, "success", "Property updated")
	}
	http.Redirect(w, r, propertyPath(id), http.StatusSeeOther)
}

func (c *AdminPropertiesController) Delete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := c.properties.Delete(r.Context(), sess, id); err != nil {
		SetFlash(w, "error", apiMessage(err, "Failed to delete property"))
	} else {
		SetFlash(w, "success", "Property deleted")
	}
	http.Redirect(w, r, "/admin/properties", http.StatusSeeOther)
}

// apiMessage surfaces the backend's error message verbatim when one exists,
// falling back to a generic message for network/parse failures.
func apiMessage(err error, fallback string) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
