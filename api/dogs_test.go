package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/garnizeh/dogwalk/api"
	"github.com/garnizeh/dogwalk/internal/models"
	"github.com/garnizeh/dogwalk/pkg/repository/mock"
)

func TestListDogs(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.DogRepo.WithOwner = []models.DogWithOwner{
		{DogName: "Max", Size: models.SizeMedium, OwnerUsername: "alice123"},
		{DogName: "Bella", Size: models.SizeSmall, OwnerUsername: "carol123"},
	}
	handler := api.NewDogsHandler(mocks.DogRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/dogs", nil)
	w := httptest.NewRecorder()
	handler.ListDogs(w, req)

	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}

	var got []models.DogWithOwner
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].DogName != "Max" || got[0].OwnerUsername != "alice123" {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestListDogsEmpty(t *testing.T) {
	handler := api.NewDogsHandler(mock.NewMocks().DogRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/dogs", nil)
	w := httptest.NewRecorder()
	handler.ListDogs(w, req)

	body, _ := io.ReadAll(w.Result().Body)
	if string(bytes.TrimSpace(body)) != "[]" {
		t.Fatalf("expected empty JSON array, got %s", body)
	}
}

func TestListMyDogs(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.DogRepo.Dogs = []models.Dog{
		{ID: 1, OwnerID: 7, Name: "Max", Size: models.SizeMedium},
		{ID: 2, OwnerID: 8, Name: "Bella", Size: models.SizeSmall},
	}
	handler := api.NewDogsHandler(mocks.DogRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/dogs/mine", nil)
	req = req.WithContext(context.WithValue(req.Context(), api.CtxUserID, int64(7)))
	w := httptest.NewRecorder()
	handler.ListMyDogs(w, req)

	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}

	var got []models.Dog
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Max" {
		t.Fatalf("expected only the caller's dogs, got %+v", got)
	}
}

func TestListMyDogsWithoutIdentity(t *testing.T) {
	handler := api.NewDogsHandler(mock.NewMocks().DogRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/dogs/mine", nil)
	w := httptest.NewRecorder()
	handler.ListMyDogs(w, req)

	if w.Result().StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Result().StatusCode)
	}
}

func TestCreateDog(t *testing.T) {
	tests := []struct {
		name       string
		userID     int64
		role       string
		body       any
		wantStatus int
	}{
		{
			name:       "Success",
			userID:     7,
			role:       "owner",
			body:       map[string]string{"name": "Rex", "size": "large"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "WalkerForbidden",
			userID:     3,
			role:       "walker",
			body:       map[string]string{"name": "Rex", "size": "large"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "MissingName",
			userID:     7,
			role:       "owner",
			body:       map[string]string{"size": "large"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "BadSize",
			userID:     7,
			role:       "owner",
			body:       map[string]string{"name": "Rex", "size": "giant"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := mock.NewMocks()
			handler := api.NewDogsHandler(mocks.DogRepo)

			b, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/api/dogs", bytes.NewReader(b))
			ctx := context.WithValue(req.Context(), api.CtxUserID, tt.userID)
			ctx = context.WithValue(ctx, api.CtxRole, tt.role)
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()
			handler.CreateDog(w, req)

			if w.Result().StatusCode != tt.wantStatus {
				body, _ := io.ReadAll(w.Result().Body)
				t.Fatalf("status = %d, want %d body=%s", w.Result().StatusCode, tt.wantStatus, body)
			}
			if tt.wantStatus == http.StatusCreated {
				if mocks.DogRepo.LastCreate == nil || mocks.DogRepo.LastCreate.OwnerID != tt.userID {
					t.Fatalf("dog not created for caller: %+v", mocks.DogRepo.LastCreate)
				}
			}
		})
	}
}
