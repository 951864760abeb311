package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/garnizeh/dogwalk/internal/models"
	"github.com/garnizeh/dogwalk/pkg/repository"
	"github.com/gorilla/mux"
)

type WalkRequestsHandler struct {
	requestRepo repository.WalkRequestRepo
}

func NewWalkRequestsHandler(wr repository.WalkRequestRepo) *WalkRequestsHandler {
	return &WalkRequestsHandler{requestRepo: wr}
}

// ListWalkRequests returns walk requests, optionally filtered with ?status=.
func (h *WalkRequestsHandler) ListWalkRequests(w http.ResponseWriter, r *http.Request) {
	var status models.RequestStatus
	if s := r.URL.Query().Get("status"); s != "" {
		status = models.RequestStatus(s)
		switch status {
		case models.RequestOpen, models.RequestAccepted, models.RequestCompleted, models.RequestCancelled:
		default:
			writeError(w, "unknown status", http.StatusBadRequest)
			return
		}
	}

	reqs, err := h.requestRepo.ListWalkRequests(r.Context(), status)
	if err != nil {
		logger.Error("list walk requests", "err", err)
		writeError(w, "server error", http.StatusInternalServerError)
		return
	}

	if reqs == nil {
		reqs = []models.WalkRequest{}
	}

	writeJSON(w, reqs, http.StatusOK)
}

// ListOpenWalkRequests returns the walker-facing board of open requests with
// dog and owner details.
func (h *WalkRequestsHandler) ListOpenWalkRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.requestRepo.ListOpenWalkRequests(r.Context())
	if err != nil {
		logger.Error("list open walk requests", "err", err)
		writeError(w, "server error", http.StatusInternalServerError)
		return
	}

	if reqs == nil {
		reqs = []models.OpenWalkRequest{}
	}

	writeJSON(w, reqs, http.StatusOK)
}

type createWalkRequestRequest struct {
	DogID           int64  `json:"dog_id"`
	RequestedTime   string `json:"requested_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Location        string `json:"location"`
}

type createWalkRequestResponse struct {
	RequestID int64 `json:"request_id"`
}

func (h *WalkRequestsHandler) CreateWalkRequest(w http.ResponseWriter, r *http.Request) {
	var req createWalkRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	req.Location = strings.TrimSpace(req.Location)
	if req.DogID <= 0 || req.RequestedTime == "" || req.DurationMinutes <= 0 || req.Location == "" {
		writeError(w, "missing fields", http.StatusBadRequest)
		return
	}
	if _, err := time.Parse(time.RFC3339, req.RequestedTime); err != nil {
		writeError(w, "requested_time must be RFC 3339", http.StatusBadRequest)
		return
	}

	wr := &models.WalkRequest{
		DogID:           req.DogID,
		RequestedTime:   req.RequestedTime,
		DurationMinutes: req.DurationMinutes,
		Location:        req.Location,
	}
	id, err := h.requestRepo.CreateWalkRequest(r.Context(), wr)
	if err != nil {
		if errors.Is(err, repository.ErrBadReference) {
			writeError(w, "dog does not exist", http.StatusBadRequest)
			return
		}
		logger.Error("create walk request", "err", err)
		writeError(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, createWalkRequestResponse{RequestID: id}, http.StatusCreated)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateWalkRequestStatus moves a request along its lifecycle
// (open -> accepted -> completed, cancel from open or accepted).
func (h *WalkRequestsHandler) UpdateWalkRequestStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	to := models.RequestStatus(req.Status)
	switch to {
	case models.RequestAccepted, models.RequestCompleted, models.RequestCancelled:
	default:
		writeError(w, "unknown status", http.StatusBadRequest)
		return
	}

	switch err := h.requestRepo.UpdateWalkRequestStatus(r.Context(), id, to); {
	case err == nil:
		writeJSON(w, map[string]string{"status": string(to)}, http.StatusOK)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, "walk request not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrInvalidTransition):
		writeError(w, "invalid status transition", http.StatusBadRequest)
	default:
		logger.Error("update walk request status", "err", err)
		writeError(w, "server error", http.StatusInternalServerError)
	}
}
