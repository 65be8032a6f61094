package views

import (
	"bytes"
	"strings"
	"testing"
)

func TestAllPageTemplatesParse(t *testing.T) {
	if _, err := New(); err != nil {
		t.Fatalf("templates failed to parse: %v", err)
	}
}

func TestTemplateFuncs(t *testing.T) {
	if got := funcMap["money"].(func(float64) string)(1234.5); got != "$1234.50" {
		t.Fatalf("money(1234.5) = %q", got)
	}
	if got := funcMap["title"].(func(string) string)("pending"); got != "Pending" {
		t.Fatalf("title(pending) = %q", got)
	}
	if got := funcMap["title"].(func(string) string)(""); got != "" {
		t.Fatalf("title(\"\") = %q", got)
	}
}

func TestRenderUnknownTemplateFails(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, "no_such_page", nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestLoginPageRenders(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var buf bytes.Buffer
	data := struct {
		Title   string
		Session any
		Flash   any
		Error   string
		Data    struct{ Email string }
	}{Title: "Login", Data: struct{ Email string }{Email: "pat@example.com"}}

	if err := r.Render(&buf, "login", data); err != nil {
		t.Fatalf("render login: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `action="/login"`) {
		t.Fatalf("login form action missing:\n%s", out)
	}
	if !strings.Contains(out, "pat@example.com") {
		t.Fatal("submitted email not retained in form")
	}
}
