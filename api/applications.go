package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/garnizeh/dogwalk/internal/models"
	"github.com/garnizeh/dogwalk/pkg/repository"
	"github.com/gorilla/mux"
)

type ApplicationsHandler struct {
	applicationRepo repository.WalkApplicationRepo
}

func NewApplicationsHandler(ar repository.WalkApplicationRepo) *ApplicationsHandler {
	return &ApplicationsHandler{applicationRepo: ar}
}

// ListApplications returns applications, optionally filtered with
// ?request_id=, ?walker_id= and ?status=.
func (h *ApplicationsHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var f repository.WalkApplicationFilter
	if v := q.Get("request_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			writeError(w, "invalid request_id", http.StatusBadRequest)
			return
		}
		f.RequestID = id
	}
	if v := q.Get("walker_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			writeError(w, "invalid walker_id", http.StatusBadRequest)
			return
		}
		f.WalkerID = id
	}
	if v := q.Get("status"); v != "" {
		status := models.ApplicationStatus(v)
		switch status {
		case models.ApplicationPending, models.ApplicationAccepted, models.ApplicationRejected:
		default:
			writeError(w, "unknown status", http.StatusBadRequest)
			return
		}
		f.Status = status
	}

	apps, err := h.applicationRepo.ListWalkApplications(r.Context(), f)
	if err != nil {
		logger.Error("list applications", "err", err)
		writeError(w, "server error", http.StatusInternalServerError)
		return
	}

	if apps == nil {
		apps = []models.WalkApplication{}
	}

	writeJSON(w, apps, http.StatusOK)
}

type createApplicationRequest struct {
	RequestID int64 `json:"request_id"`
	WalkerID  int64 `json:"walker_id"`
}

type createApplicationResponse struct {
	ApplicationID int64 `json:"application_id"`
}

func (h *ApplicationsHandler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var req createApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.RequestID <= 0 || req.WalkerID <= 0 {
		writeError(w, "missing fields", http.StatusBadRequest)
		return
	}

	a := &models.WalkApplication{RequestID: req.RequestID, WalkerID: req.WalkerID}
	id, err := h.applicationRepo.CreateWalkApplication(r.Context(), a)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			writeError(w, "walker already applied to this request", http.StatusConflict)
		case errors.Is(err, repository.ErrBadReference):
			writeError(w, "request or walker does not exist", http.StatusBadRequest)
		default:
			logger.Error("create application", "err", err)
			writeError(w, "server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, createApplicationResponse{ApplicationID: id}, http.StatusCreated)
}

// UpdateApplicationStatus accepts or rejects a pending application.
func (h *ApplicationsHandler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
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

	to := models.ApplicationStatus(req.Status)
	if to != models.ApplicationAccepted && to != models.ApplicationRejected {
		writeError(w, "unknown status", http.StatusBadRequest)
		return
	}

	switch err := h.applicationRepo.UpdateWalkApplicationStatus(r.Context(), id, to); {
	case err == nil:
		writeJSON(w, map[string]string{"status": string(to)}, http.StatusOK)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, "application not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrInvalidTransition):
		writeError(w, "invalid status transition", http.StatusBadRequest)
	default:
		logger.Error("update application status", "err", err)
		writeError(w, "server error", http.StatusInternalServerError)
	}
}
