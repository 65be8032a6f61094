package session

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func requestWithCookie(value string) *http.Request {
	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: value})
	return r
}

func TestWriteReadRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, &Session{UserID: 42, Role: RoleAdmin, Username: "ada"})

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	ck := cookies[0]
	if ck.Name != CookieName {
		t.Fatalf("expected cookie name %q, got %q", CookieName, ck.Name)
	}
	if ck.MaxAge != int(TTL.Seconds()) {
		t.Fatalf("expected max-age %d, got %d", int(TTL.Seconds()), ck.MaxAge)
	}

	got := FromRequest(requestWithCookie(ck.Value))
	if got == nil {
		t.Fatal("expected a session, got nil")
	}
	if got.UserID != 42 || got.Role != RoleAdmin || got.Username != "ada" {
		t.Fatalf("round trip mangled session: %+v", got)
	}
}

func TestFromRequestLegacyNestedShape(t *testing.T) {
	raw := `{"user":{"user_id":7,"role":"tenant","username":"tess"}}`
	got := FromRequest(requestWithCookie(url.QueryEscape(raw)))
	if got == nil {
		t.Fatal("expected legacy nested payload to resolve, got nil")
	}
	if got.UserID != 7 || got.Role != RoleTenant {
		t.Fatalf("legacy payload resolved wrong: %+v", got)
	}
}

func TestFromRequestFlatShapeWinsOverNested(t *testing.T) {
	raw := `{"user_id":1,"role":"admin","username":"a","user":{"user_id":2,"role":"tenant"}}`
	got := FromRequest(requestWithCookie(url.QueryEscape(raw)))
	if got == nil || got.UserID != 1 || got.Role != RoleAdmin {
		t.Fatalf("expected flat shape to win, got %+v", got)
	}
}

func TestFromRequestMalformedValues(t *testing.T) {
	cases := map[string]string{
		"not json":        url.QueryEscape("not-json"),
		"bad escape":      "%zz",
		"empty object":    url.QueryEscape("{}"),
		"missing role":    url.QueryEscape(`{"user_id":3}`),
		"missing user id": url.QueryEscape(`{"role":"admin"}`),
	}
	for name, value := range cases {
		if got := FromRequest(requestWithCookie(value)); got != nil {
			t.Fatalf("%s: expected nil session, got %+v", name, got)
		}
	}
}

func TestFromRequestNoCookie(t *testing.T) {
	if got := FromRequest(httptest.NewRequest("GET", "/", nil)); got != nil {
		t.Fatalf("expected nil session without cookie, got %+v", got)
	}
}

func TestClearExpiresCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	Clear(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge != -1 {
		t.Fatalf("expected max-age -1, got %d", cookies[0].MaxAge)
	}
}
