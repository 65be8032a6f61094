package controllers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/rentdesk/portal/internal/session"
	"github.com/rentdesk/portal/internal/utils"
	"github.com/rentdesk/portal/internal/views"
)

var formValidate = validator.New()

// Flash is a one-shot notice carried across a redirect in a short-lived
// cookie.
type Flash struct {
	Kind    string `json:"kind"` // success | error | info
	Message string `json:"message"`
}

const flashCookieName = "flash"

// Page is the envelope every template receives.
type Page struct {
	Title   string
	Session *session.Session
	Flash   *Flash
	Error   string
	Data    any
}

func SetFlash(w http.ResponseWriter, kind, message string) {
	payload, err := json.Marshal(Flash{Kind: kind, Message: message})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(string(payload)),
		Path:     "/",
		MaxAge:   60,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash reads and clears the flash cookie. Malformed values are dropped
// silently; a notice is never worth an error page.
func PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	ck, err := r.Cookie(flashCookieName)
	if err != nil || ck.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := url.QueryUnescape(ck.Value)
	if err != nil {
		return nil
	}
	var f Flash
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return nil
	}
	return &f
}

func render(v *views.Renderer, w http.ResponseWriter, name string, data Page) {
	if err := v.Render(w, name, data); err != nil {
		utils.Logger.WithError(err).Errorf("failed to render template %s", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func pathID(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[key], 10, 64)
}

func formFloat(r *http.Request, key string) float64 {
	v, _ := strconv.ParseFloat(r.FormValue(key), 64)
	return v
}

func formID(r *http.Request, key string) int64 {
	v, _ := strconv.ParseInt(r.FormValue(key), 10, 64)
	return v
}

func formInt(r *http.Request, key string) int {
	v, _ := strconv.Atoi(r.FormValue(key))
	return v
}

func propertyPath(id int64) string {
	return "/admin/properties/" + strconv.FormatInt(id, 10)
}

func unitPath(id int64) string {
	return "/admin/units/" + strconv.FormatInt(id, 10)
}
