package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/garnizeh/dogwalk/internal/models"
	"github.com/garnizeh/dogwalk/pkg/repository"
)

type RatingsHandler struct {
	ratingRepo repository.WalkRatingRepo
}

func NewRatingsHandler(rr repository.WalkRatingRepo) *RatingsHandler {
	return &RatingsHandler{ratingRepo: rr}
}

// ListRatings returns ratings, optionally filtered with ?walker_id=.
func (h *RatingsHandler) ListRatings(w http.ResponseWriter, r *http.Request) {
	var walkerID int64
	if v := r.URL.Query().Get("walker_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			writeError(w, "invalid walker_id", http.StatusBadRequest)
			return
		}
		walkerID = id
	}

	ratings, err := h.ratingRepo.ListWalkRatings(r.Context(), walkerID)
	if err != nil {
		logger.Error("list ratings", "err", err)
		writeError(w, "server error", http.StatusInternalServerError)
		return
	}

	if ratings == nil {
		ratings = []models.WalkRating{}
	}

	writeJSON(w, ratings, http.StatusOK)
}

type createRatingRequest struct {
	RequestID int64  `json:"request_id"`
	WalkerID  int64  `json:"walker_id"`
	OwnerID   int64  `json:"owner_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type createRatingResponse struct {
	RatingID int64 `json:"rating_id"`
}

func (h *RatingsHandler) CreateRating(w http.ResponseWriter, r *http.Request) {
	var req createRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.RequestID <= 0 || req.WalkerID <= 0 || req.OwnerID <= 0 {
		writeError(w, "missing fields", http.StatusBadRequest)
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeError(w, "rating must be between 1 and 5", http.StatusBadRequest)
		return
	}

	rt := &models.WalkRating{
		RequestID: req.RequestID,
		WalkerID:  req.WalkerID,
		OwnerID:   req.OwnerID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	id, err := h.ratingRepo.CreateWalkRating(r.Context(), rt)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			writeError(w, "walk already rated", http.StatusConflict)
		case errors.Is(err, repository.ErrBadReference):
			writeError(w, "request, walker or owner does not exist", http.StatusBadRequest)
		case errors.Is(err, repository.ErrInvalidTransition):
			writeError(w, "walk is not completed", http.StatusBadRequest)
		default:
			logger.Error("create rating", "err", err)
			writeError(w, "server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, createRatingResponse{RatingID: id}, http.StatusCreated)
}
