package api

import (
	"net/http"

	"github.com/garnizeh/dogwalk/internal/models"
	"github.com/garnizeh/dogwalk/pkg/repository"
)

type WalkersHandler struct {
	summaryRepo repository.WalkerSummaryRepo
}

func NewWalkersHandler(sr repository.WalkerSummaryRepo) *WalkersHandler {
	return &WalkersHandler{summaryRepo: sr}
}

// Summary returns aggregated stats per walker: completed walk count, rating
// count and mean. average_rating is null for walkers without ratings.
func (h *WalkersHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.summaryRepo.WalkerSummaries(r.Context())
	if err != nil {
		logger.Error("walker summary", "err", err)
		writeError(w, "server error", http.StatusInternalServerError)
		return
	}

	if summaries == nil {
		summaries = []models.WalkerSummary{}
	}

	writeJSON(w, summaries, http.StatusOK)
}
