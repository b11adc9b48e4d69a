package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, subject string, expiresIn time.Duration) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

// echoUserID is a terminal handler that records the resolved user ID
func echoUserID(captured *uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_ValidToken(t *testing.T) {
	m := NewAuthMiddleware(testSecret)
	userID := uuid.New()

	var captured uuid.UUID
	handler := m.RequireAuth(echoUserID(&captured))

	req := httptest.NewRequest(http.MethodGet, "/myprofile", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, userID.String(), time.Hour))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if captured != userID {
		t.Errorf("expected user %s in context, got %s", userID, captured)
	}
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/myprofile", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/myprofile", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", uuid.New().String(), time.Hour))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/myprofile", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, uuid.New().String(), -time.Minute))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_NonUUIDSubject(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/myprofile", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "not-a-uuid", time.Hour))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestOptionalAuth_NoHeader(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	var captured uuid.UUID
	handler := m.OptionalAuth(echoUserID(&captured))

	req := httptest.NewRequest(http.MethodGet, "/get-post/abc", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if captured != uuid.Nil {
		t.Errorf("expected anonymous viewer, got %s", captured)
	}
}

func TestOptionalAuth_ValidToken(t *testing.T) {
	m := NewAuthMiddleware(testSecret)
	userID := uuid.New()

	var captured uuid.UUID
	handler := m.OptionalAuth(echoUserID(&captured))

	req := httptest.NewRequest(http.MethodGet, "/get-post/abc", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, userID.String(), time.Hour))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if captured != userID {
		t.Errorf("expected user %s in context, got %s", userID, captured)
	}
}
