package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/garnizeh/dogwalk/api"
	"github.com/garnizeh/dogwalk/internal/models"
	"github.com/garnizeh/dogwalk/pkg/repository"
	"github.com/garnizeh/dogwalk/pkg/repository/mock"
	"github.com/gorilla/mux"
)

func newUsersRouter(mocks *mock.Mocks) *mux.Router {
	h := api.NewUsersHandler(mocks.UserRepo)
	r := mux.NewRouter()
	r.HandleFunc("/api/users", h.ListUsers).Methods("GET")
	r.HandleFunc("/api/users", h.CreateUser).Methods("POST")
	return r
}

func TestCreateUserHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		createErr  error
		wantStatus int
	}{
		{
			name:       "Success",
			body:       map[string]string{"username": "alice123", "email": "alice@example.com", "password": "walkies", "role": "owner"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "MissingEmail",
			body:       map[string]string{"username": "alice123", "password": "walkies", "role": "owner"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "BadRole",
			body:       map[string]string{"username": "alice123", "email": "alice@example.com", "password": "walkies", "role": "admin"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "DuplicateUsername",
			body:       map[string]string{"username": "alice123", "email": "other@example.com", "password": "walkies", "role": "owner"},
			createErr:  repository.ErrDuplicate,
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := mock.NewMocks()
			mocks.UserRepo.CreateErr = tt.createErr
			r := newUsersRouter(mocks)

			res := doJSON(t, r, http.MethodPost, "/api/users", tt.body)
			if res.StatusCode != tt.wantStatus {
				body, _ := io.ReadAll(res.Body)
				t.Fatalf("status = %d, want %d body=%s", res.StatusCode, tt.wantStatus, body)
			}

			if tt.wantStatus == http.StatusCreated {
				stored := mocks.UserRepo.Stored
				if stored == nil {
					t.Fatal("user never reached the repo")
				}
				if stored.PasswordHash == "walkies" || !strings.HasPrefix(stored.PasswordHash, "$2a$") {
					t.Fatalf("password was not bcrypt-hashed: %q", stored.PasswordHash)
				}
			}
		})
	}
}

func TestListUsersHandler(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.UserRepo.Users = []models.User{
		{ID: 1, Username: "alice123", Email: "alice@example.com", Role: models.RoleOwner},
		{ID: 3, Username: "bobwalker", Email: "bob@example.com", Role: models.RoleWalker},
	}
	handler := api.NewUsersHandler(mocks.UserRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	w := httptest.NewRecorder()
	handler.ListUsers(w, req)

	if strings.Contains(w.Body.String(), "password") {
		t.Fatalf("listing leaks password material: %s", w.Body.String())
	}

	var got []models.User
	if err := json.NewDecoder(w.Result().Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[1].Username != "bobwalker" {
		t.Fatalf("unexpected users: %+v", got)
	}
}
