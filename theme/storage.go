package theme

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	// SessionName is the cookie holding visitor preferences.
	SessionName = "portfolio_prefs"
	// PreferenceKey is the session value holding the dark mode flag.
	PreferenceKey = "darkMode"

	preferenceMaxAge = 365 * 24 * 60 * 60
)

// MemoryStorage keeps the flag in memory. The zero value holds nothing.
type MemoryStorage struct {
	value  bool
	stored bool
	// Err, when set, is returned by both Load and Save.
	Err error
}

// Load implements Storage.
func (m *MemoryStorage) Load() (bool, bool, error) {
	if m.Err != nil {
		return false, false, m.Err
	}
	return m.value, m.stored, nil
}

// Save implements Storage.
func (m *MemoryStorage) Save(v bool) error {
	if m.Err != nil {
		return m.Err
	}
	m.value = v
	m.stored = true
	return nil
}

// SessionGetter returns the preference session for the current request.
type SessionGetter func() (*sessions.Session, error)

// StoreSession adapts a gorilla store into a SessionGetter for r.
func StoreSession(store sessions.Store, r *http.Request) SessionGetter {
	return func() (*sessions.Session, error) {
		return store.Get(r, SessionName)
	}
}

// SessionStorage persists the flag in a gorilla session cookie scoped to one
// request/response pair.
type SessionStorage struct {
	get    SessionGetter
	r      *http.Request
	w      http.ResponseWriter
	secure bool
}

// NewSessionStorage binds a session getter to the current request and response.
func NewSessionStorage(get SessionGetter, r *http.Request, w http.ResponseWriter, secure bool) *SessionStorage {
	return &SessionStorage{get: get, r: r, w: w, secure: secure}
}

// Load implements Storage. An undecodable cookie (rotated secret, tampering)
// comes back with a fresh session and is reported as ErrUnreadable so the
// next Save overwrites it.
func (s *SessionStorage) Load() (bool, bool, error) {
	sess, err := s.get()
	if err != nil && sess != nil {
		return false, false, fmt.Errorf("load preference: %w: %w", ErrUnreadable, err)
	}
	if err != nil {
		return false, false, fmt.Errorf("load preference: %w", err)
	}
	v, ok := sess.Values[PreferenceKey].(bool)
	return v, ok, nil
}

// Save implements Storage. The cookie is written to the response headers,
// so Save must run before the body is written.
func (s *SessionStorage) Save(v bool) error {
	sess, err := s.get()
	if sess == nil {
		if err == nil {
			err = errors.New("no session")
		}
		return fmt.Errorf("save preference: %w", err)
	}
	sess.Values[PreferenceKey] = v
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   preferenceMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.secure,
	}
	if err := sess.Save(s.r, s.w); err != nil {
		return fmt.Errorf("save preference: %w", err)
	}
	return nil
}
