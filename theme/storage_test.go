package theme

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
)

func newCookieStore() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
}

func requestWithCookies(cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func sessionStorage(store sessions.Store, r *http.Request, w http.ResponseWriter) *SessionStorage {
	return NewSessionStorage(StoreSession(store, r), r, w, false)
}

func TestSessionStorageEmptyRequest(t *testing.T) {
	storage := sessionStorage(newCookieStore(), requestWithCookies(nil), httptest.NewRecorder())
	v, ok, err := storage.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok || v {
		t.Fatalf("Load() = %v, %v; want false, false", v, ok)
	}
}

func TestSessionStorageRoundTrip(t *testing.T) {
	store := newCookieStore()
	rec := httptest.NewRecorder()
	st := New(sessionStorage(store, requestWithCookies(nil), rec), false)
	st.Toggle()

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected preference cookie to be set")
	}
	if cookies[0].Name != SessionName {
		t.Fatalf("cookie name = %q, want %q", cookies[0].Name, SessionName)
	}
	if cookies[0].SameSite != http.SameSiteLaxMode {
		t.Errorf("cookie SameSite = %v, want Lax", cookies[0].SameSite)
	}

	fresh := New(sessionStorage(store, requestWithCookies(cookies), httptest.NewRecorder()), false)
	if !fresh.Value() {
		t.Fatal("expected persisted dark mode to be restored")
	}
	if !fresh.Persistent() {
		t.Fatal("expected restored state to remain persistent")
	}
}

func TestSessionStorageUndecodableCookieIsOverwritten(t *testing.T) {
	store := newCookieStore()
	req := requestWithCookies([]*http.Cookie{{Name: SessionName, Value: "not-a-valid-cookie"}})
	rec := httptest.NewRecorder()
	var reported error
	st := New(sessionStorage(store, req, rec), false,
		WithErrorHandler(func(err error) { reported = err }))

	if !st.Persistent() {
		t.Fatal("a bad cookie must not disable persistence")
	}
	if !errors.Is(reported, ErrUnreadable) || !strings.Contains(reported.Error(), "load preference") {
		t.Fatalf("reported = %v, want unreadable load preference error", reported)
	}
	if st.Value() {
		t.Fatal("expected default light mode")
	}

	st.Toggle()
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 || cookies[0].Name != SessionName {
		t.Fatalf("toggle did not rewrite the preference cookie: %v", cookies)
	}
	fresh := New(sessionStorage(store, requestWithCookies(cookies), httptest.NewRecorder()), false)
	if !fresh.Value() || !fresh.Persistent() {
		t.Fatalf("Value() = %v Persistent() = %v, want true true", fresh.Value(), fresh.Persistent())
	}
}

func TestSessionStorageForeignSecretIsOverwritten(t *testing.T) {
	old := sessions.NewCookieStore([]byte("fedcba9876543210fedcba9876543210"))
	signed := httptest.NewRecorder()
	New(sessionStorage(old, requestWithCookies(nil), signed), false).Toggle()

	store := newCookieStore()
	rec := httptest.NewRecorder()
	st := New(sessionStorage(store, requestWithCookies(signed.Result().Cookies()), rec), false)
	if !st.Persistent() || st.Value() {
		t.Fatalf("Persistent() = %v Value() = %v, want true false", st.Persistent(), st.Value())
	}

	st.Toggle()
	fresh := New(sessionStorage(store, requestWithCookies(rec.Result().Cookies()), httptest.NewRecorder()), false)
	if !fresh.Value() {
		t.Fatal("cookie signed with the current secret should restore dark mode")
	}
}

type brokenStore struct {
	*sessions.CookieStore
}

func (brokenStore) Get(*http.Request, string) (*sessions.Session, error) {
	return nil, errors.New("store offline")
}

func TestSessionStorageMissingSessionDegrades(t *testing.T) {
	st := New(sessionStorage(brokenStore{newCookieStore()}, requestWithCookies(nil), httptest.NewRecorder()), false)
	if st.Persistent() {
		t.Fatal("expected memory-only state when no session is available")
	}
}
