// Package session associates kiosk session cookies with short-lived records.
// The document core has no dependency on this package; it exists for the HTTP
// surface only.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/smallbiznis/lockerdocs/internal/cache"
)

// Config controls the cookie attributes and record lifetime.
type Config struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
	SameSite   string
	Path       string
	Domain     string
}

// Record is the short-lived state attached to one kiosk session.
type Record struct {
	KioskID  string
	MemberID string
	IssuedAt time.Time
}

type Manager struct {
	cfg   Config
	store cache.Cache[string, Record]
}

func NewManager(cfg Config) *Manager {
	if cfg.CookieName == "" {
		cfg.CookieName = "lockerdocs_session"
	}
	if cfg.Path == "" {
		cfg.Path = "/"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Minute
	}
	return &Manager{
		cfg:   cfg,
		store: cache.NewTTLCache[string, Record](),
	}
}

// Issue stores a fresh record and sets the session cookie on the response.
func (m *Manager) Issue(w http.ResponseWriter, rec Record) (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}
	m.store.Set(id, rec, m.cfg.TTL)
	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    id,
		Path:     m.cfg.Path,
		Domain:   m.cfg.Domain,
		MaxAge:   int(m.cfg.TTL / time.Second),
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: m.sameSite(),
	})
	return id, nil
}

// Read restores the record referenced by the request's session cookie.
func (m *Manager) Read(r *http.Request) (Record, bool) {
	cookie, err := r.Cookie(m.cfg.CookieName)
	if err != nil || cookie.Value == "" {
		return Record{}, false
	}
	return m.store.Get(cookie.Value)
}

// Clear drops the stored record, if any, and expires the cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(m.cfg.CookieName); err == nil {
		m.store.Delete(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Path:     m.cfg.Path,
		Domain:   m.cfg.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: m.sameSite(),
	})
}

func (m *Manager) sameSite() http.SameSite {
	switch strings.ToLower(strings.TrimSpace(m.cfg.SameSite)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func newSessionID() (string, error) {
	var buf [24]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf[:]), nil
}
