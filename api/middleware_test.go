package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/garnizeh/dogwalk/api"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestJWTAuthMiddleware(t *testing.T) {
	secret := "testsecret"

	r := mux.NewRouter()
	r.Use(api.JWTAuthMiddlewareWithSecret(secret))
	r.HandleFunc("/protected", func(w http.ResponseWriter, req *http.Request) {
		if _, ok := api.UserIDFromContext(req.Context()); !ok {
			http.Error(w, "no identity", http.StatusInternalServerError)
			return
		}
		if role, _ := api.RoleFromContext(req.Context()); role != "owner" {
			http.Error(w, "wrong role claim", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "MissingHeader", header: "", wantStatus: http.StatusUnauthorized},
		{name: "NotBearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "Garbage", header: "Bearer not-a-token", wantStatus: http.StatusUnauthorized},
		{
			name: "Expired",
			header: "Bearer " + signToken(t, secret, jwt.MapClaims{
				"user_id": float64(1), "exp": time.Now().Add(-time.Hour).Unix(),
			}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "WrongSecret",
			header: "Bearer " + signToken(t, "othersecret", jwt.MapClaims{
				"user_id": float64(1), "exp": time.Now().Add(time.Hour).Unix(),
			}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "Valid",
			header: "Bearer " + signToken(t, secret, jwt.MapClaims{
				"user_id": float64(7), "username": "alice123", "role": "owner",
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Result().StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Result().StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	h := api.CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("preflight must not reach the handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/dogs", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	res := w.Result()
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", res.StatusCode)
	}
	if res.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("missing CORS header")
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	h := api.RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Result().StatusCode)
	}
}

func TestTimeoutMiddleware(t *testing.T) {
	h := api.TimeoutMiddleware(5 * time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Deadline(); !ok {
			http.Error(w, "no deadline", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Result().StatusCode)
	}

	// a non-positive duration leaves the request unbounded
	h = api.TimeoutMiddleware(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Deadline(); ok {
			http.Error(w, "unexpected deadline", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("unbounded: status = %d, want 200", w.Result().StatusCode)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	h := api.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Result().Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected a generated X-Request-ID header")
	}

	// a caller-provided id is echoed back
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if got := w.Result().Header.Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("X-Request-ID = %q, want abc-123", got)
	}
}
