package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestIssueSetsCookieAttributes(t *testing.T) {
	m := NewManager(Config{
		CookieName: "kiosk_session",
		TTL:        time.Hour,
		Secure:     true,
		SameSite:   "strict",
		Path:       "/v1",
	})
	w := httptest.NewRecorder()

	id, err := m.Issue(w, Record{KioskID: "KIOSK-03"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if id == "" {
		t.Fatalf("expected non-empty session id")
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != "kiosk_session" || c.Value != id {
		t.Fatalf("unexpected cookie %q=%q", c.Name, c.Value)
	}
	if !c.HttpOnly || !c.Secure || c.Path != "/v1" {
		t.Fatalf("unexpected cookie attributes: %+v", c)
	}
	if c.SameSite != http.SameSiteStrictMode {
		t.Fatalf("expected strict same-site, got %v", c.SameSite)
	}
	if c.MaxAge != 3600 {
		t.Fatalf("expected max-age 3600, got %d", c.MaxAge)
	}
}

func TestReadRestoresRecord(t *testing.T) {
	m := NewManager(Config{TTL: time.Hour})
	w := httptest.NewRecorder()
	id, err := m.Issue(w, Record{KioskID: "KIOSK-03", MemberID: "m-1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "lockerdocs_session", Value: id})

	rec, ok := m.Read(req)
	if !ok {
		t.Fatalf("expected session hit")
	}
	if rec.KioskID != "KIOSK-03" || rec.MemberID != "m-1" {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestReadMissesWithoutCookie(t *testing.T) {
	m := NewManager(Config{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := m.Read(req); ok {
		t.Fatalf("expected miss without cookie")
	}
}

func TestClearExpiresCookieAndDropsRecord(t *testing.T) {
	m := NewManager(Config{TTL: time.Hour})
	w := httptest.NewRecorder()
	id, err := m.Issue(w, Record{KioskID: "KIOSK-03"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "lockerdocs_session", Value: id})

	cleared := httptest.NewRecorder()
	m.Clear(cleared, req)

	cookies := cleared.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("expected expiring cookie, got %+v", cookies)
	}
	if _, ok := m.Read(req); ok {
		t.Fatalf("expected record to be dropped")
	}
}
