package session

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/rentdesk/portal/internal/utils"
)

// CookieName is the one client-persisted cookie the portal owns. It is
// written at login, read on every protected page, and cleared at logout.
const CookieName = "user"

// TTL matches the 7-day expiry the login flow always issues.
const TTL = 7 * 24 * time.Hour

const (
	RoleAdmin  = "admin"
	RoleTenant = "tenant"
)

// Session is the canonical schema. Only this shape is ever written; see
// FromRequest for the legacy nested shape still accepted on read.
type Session struct {
	UserID   int64  `json:"user_id"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

func (s *Session) IsAdmin() bool  { return s != nil && s.Role == RoleAdmin }
func (s *Session) IsTenant() bool { return s != nil && s.Role == RoleTenant }

// envelope tolerates the historical payload where the user object was nested
// one level under "user". Reads collapse both shapes into the canonical one.
type envelope struct {
	Session
	User *Session `json:"user,omitempty"`
}

// FromRequest resolves the session from the request cookie. It never returns
// an error: absence, undecodable values, and malformed JSON are all logged and
// treated as "no session".
func FromRequest(r *http.Request) *Session {
	ck, err := r.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return nil
	}

	raw, err := url.QueryUnescape(ck.Value)
	if err != nil {
		utils.Logger.WithError(err).Debug("session cookie is not URL-decodable")
		return nil
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		utils.Logger.WithError(err).Debug("session cookie is not valid JSON")
		return nil
	}

	s := env.Session
	if s.UserID == 0 && env.User != nil {
		s = *env.User
	}
	if s.UserID == 0 || s.Role == "" {
		return nil
	}
	return &s
}

// Write persists the session cookie with the fixed 7-day expiry.
func Write(w http.ResponseWriter, s *Session) {
	payload, err := json.Marshal(s)
	if err != nil {
		utils.Logger.WithError(err).Error("failed to encode session cookie")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    url.QueryEscape(string(payload)),
		Path:     "/",
		Expires:  time.Now().Add(TTL),
		MaxAge:   int(TTL.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie (logout).
func Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})
}
