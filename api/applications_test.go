package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/garnizeh/dogwalk/api"
	"github.com/garnizeh/dogwalk/internal/models"
	"github.com/garnizeh/dogwalk/pkg/repository"
	"github.com/garnizeh/dogwalk/pkg/repository/mock"
	"github.com/gorilla/mux"
)

func newApplicationsRouter(mocks *mock.Mocks) *mux.Router {
	h := api.NewApplicationsHandler(mocks.ApplicationRepo)
	r := mux.NewRouter()
	r.HandleFunc("/api/applications", h.ListApplications).Methods("GET")
	r.HandleFunc("/api/applications", h.CreateApplication).Methods("POST")
	r.HandleFunc("/api/applications/{id:[0-9]+}/status", h.UpdateApplicationStatus).Methods("PUT")
	return r
}

func TestCreateApplication(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		createErr  error
		wantStatus int
	}{
		{
			name:       "Success",
			body:       map[string]int64{"request_id": 1, "walker_id": 3},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "MissingWalker",
			body:       map[string]int64{"request_id": 1},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Duplicate",
			body:       map[string]int64{"request_id": 1, "walker_id": 3},
			createErr:  repository.ErrDuplicate,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "UnknownRequest",
			body:       map[string]int64{"request_id": 99, "walker_id": 3},
			createErr:  repository.ErrBadReference,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := mock.NewMocks()
			mocks.ApplicationRepo.CreateErr = tt.createErr
			r := newApplicationsRouter(mocks)

			res := doJSON(t, r, http.MethodPost, "/api/applications", tt.body)
			if res.StatusCode != tt.wantStatus {
				body, _ := io.ReadAll(res.Body)
				t.Fatalf("status = %d, want %d body=%s", res.StatusCode, tt.wantStatus, body)
			}
		})
	}
}

func TestListApplicationsFilters(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.ApplicationRepo.Applications = []models.WalkApplication{
		{ID: 1, RequestID: 2, WalkerID: 3, Status: models.ApplicationAccepted},
		{ID: 2, RequestID: 2, WalkerID: 4, Status: models.ApplicationPending},
		{ID: 3, RequestID: 5, WalkerID: 3, Status: models.ApplicationPending},
	}
	r := newApplicationsRouter(mocks)

	res := doJSON(t, r, http.MethodGet, "/api/applications?request_id=2&status=pending", nil)
	defer res.Body.Close()

	var got []models.WalkApplication
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("unexpected filtered result: %+v", got)
	}

	res = doJSON(t, r, http.MethodGet, "/api/applications?walker_id=zero", nil)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid walker_id: status = %d, want 400", res.StatusCode)
	}
}

func TestUpdateApplicationStatus(t *testing.T) {
	mocks := mock.NewMocks()
	r := newApplicationsRouter(mocks)

	res := doJSON(t, r, http.MethodPut, "/api/applications/1/status", map[string]string{"status": "accepted"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("accept: status = %d", res.StatusCode)
	}

	// pending is not a valid decision
	res = doJSON(t, r, http.MethodPut, "/api/applications/1/status", map[string]string{"status": "pending"})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("pending: status = %d, want 400", res.StatusCode)
	}

	mocks.ApplicationRepo.UpdateErr = repository.ErrNotFound
	res = doJSON(t, r, http.MethodPut, "/api/applications/42/status", map[string]string{"status": "rejected"})
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("missing: status = %d, want 404", res.StatusCode)
	}
}
