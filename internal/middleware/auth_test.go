package middleware

import (
	"bonushunt_backend/pkg/token"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

var testSecret = []byte("test-secret")

func authedRequest(t *testing.T, userID uuid.UUID, isAdmin bool, ttl time.Duration) *http.Request {
	t.Helper()

	tokenStr, err := token.GenerateAccessToken(userID, isAdmin, testSecret, ttl)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/hunts", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	return req
}

func TestAuth(t *testing.T) {
	userID := uuid.New()

	var gotUserID uuid.UUID
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	Auth(testSecret)(next).ServeHTTP(rec, authedRequest(t, userID, false, time.Hour))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !gotOK {
		t.Fatal("expected user id in context")
	}
	if gotUserID != userID {
		t.Errorf("user id: expected %s, got %s", userID, gotUserID)
	}
}

func TestAuthRejects(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not be called")
	})
	handler := Auth(testSecret)(next)

	tests := []struct {
		name string
		req  func(t *testing.T) *http.Request
	}{
		{
			name: "no authorization header",
			req: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodGet, "/hunts", nil)
			},
		},
		{
			name: "malformed token",
			req: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/hunts", nil)
				req.Header.Set("Authorization", "Bearer not-a-jwt")
				return req
			},
		},
		{
			name: "expired token",
			req: func(t *testing.T) *http.Request {
				return authedRequest(t, uuid.New(), false, -time.Minute)
			},
		},
		{
			name: "wrong signing key",
			req: func(t *testing.T) *http.Request {
				tokenStr, err := token.GenerateAccessToken(uuid.New(), false, []byte("other-secret"), time.Hour)
				if err != nil {
					t.Fatalf("failed to generate token: %v", err)
				}
				req := httptest.NewRequest(http.MethodGet, "/hunts", nil)
				req.Header.Set("Authorization", "Bearer "+tokenStr)
				return req
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, tc.req(t))

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	handler := Auth(testSecret)(RequireAdmin(next))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, uuid.New(), true, time.Hour))
	if rec.Code != http.StatusOK || !called {
		t.Errorf("admin token: expected 200 and handler call, got %d", rec.Code)
	}

	called = false
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(t, uuid.New(), false, time.Hour))
	if rec.Code != http.StatusForbidden {
		t.Errorf("non-admin token: expected 403, got %d", rec.Code)
	}
	if called {
		t.Error("handler must not be called for non-admin")
	}
}
