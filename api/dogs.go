package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/garnizeh/dogwalk/internal/models"
	"github.com/garnizeh/dogwalk/pkg/repository"
)

type DogsHandler struct {
	dogRepo repository.DogRepo
}

func NewDogsHandler(dr repository.DogRepo) *DogsHandler {
	return &DogsHandler{dogRepo: dr}
}

// ListDogs returns every dog with its owner's username.
func (h *DogsHandler) ListDogs(w http.ResponseWriter, r *http.Request) {
	dogs, err := h.dogRepo.ListDogsWithOwner(r.Context())
	if err != nil {
		logger.Error("list dogs", "err", err)
		writeError(w, "server error", http.StatusInternalServerError)
		return
	}

	if dogs == nil {
		dogs = []models.DogWithOwner{}
	}

	writeJSON(w, dogs, http.StatusOK)
}

// ListMyDogs returns the dogs owned by the authenticated user. Runs behind
// the JWT middleware, so a missing user id here is a server bug.
func (h *DogsHandler) ListMyDogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "not logged in", http.StatusUnauthorized)
		return
	}

	dogs, err := h.dogRepo.ListDogsByOwner(r.Context(), userID)
	if err != nil {
		logger.Error("list my dogs", "err", err)
		writeError(w, "server error", http.StatusInternalServerError)
		return
	}

	if dogs == nil {
		dogs = []models.Dog{}
	}

	writeJSON(w, dogs, http.StatusOK)
}

type createDogRequest struct {
	Name string `json:"name"`
	Size string `json:"size"`
}

type createDogResponse struct {
	DogID int64 `json:"dog_id"`
}

// CreateDog registers a dog under the authenticated owner.
func (h *DogsHandler) CreateDog(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, "not logged in", http.StatusUnauthorized)
		return
	}
	if role, _ := RoleFromContext(r.Context()); role != string(models.RoleOwner) {
		writeError(w, "only owners can register dogs", http.StatusForbidden)
		return
	}

	var req createDogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, "missing fields", http.StatusBadRequest)
		return
	}
	size := models.DogSize(req.Size)
	if !size.Valid() {
		writeError(w, "size must be small, medium or large", http.StatusBadRequest)
		return
	}

	d := &models.Dog{OwnerID: userID, Name: req.Name, Size: size}
	id, err := h.dogRepo.CreateDog(r.Context(), d)
	if err != nil {
		if errors.Is(err, repository.ErrBadReference) {
			writeError(w, "owner does not exist", http.StatusBadRequest)
			return
		}
		logger.Error("create dog", "err", err)
		writeError(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, createDogResponse{DogID: id}, http.StatusCreated)
}
