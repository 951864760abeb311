package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/garnizeh/dogwalk/api"
	"github.com/garnizeh/dogwalk/internal/models"
	"github.com/garnizeh/dogwalk/pkg/repository/mock"
)

func TestWalkerSummary(t *testing.T) {
	avg := 4.5
	mocks := mock.NewMocks()
	mocks.SummaryRepo.Summaries = []models.WalkerSummary{
		{WalkerUsername: "bobwalker", TotalRatings: 2, AverageRating: &avg, CompletedWalks: 2},
		{WalkerUsername: "newwalker", TotalRatings: 0, AverageRating: nil, CompletedWalks: 0},
	}
	handler := api.NewWalkersHandler(mocks.SummaryRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/walkers/summary", nil)
	w := httptest.NewRecorder()
	handler.Summary(w, req)

	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}

	body := w.Body.String()

	// a walker without ratings must serialize with an explicit null
	if !strings.Contains(body, `"average_rating":null`) {
		t.Fatalf("expected null average_rating in body: %s", body)
	}

	var got []models.WalkerSummary
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}
	if got[0].WalkerUsername != "bobwalker" || got[0].TotalRatings != 2 || got[0].AverageRating == nil || *got[0].AverageRating != 4.5 {
		t.Fatalf("unexpected bobwalker summary: %+v", got[0])
	}
	if got[1].AverageRating != nil {
		t.Fatalf("expected nil average for newwalker")
	}
}

func TestWalkerSummaryError(t *testing.T) {
	mocks := mock.NewMocks()
	mocks.SummaryRepo.Err = fmt.Errorf("db gone")
	handler := api.NewWalkersHandler(mocks.SummaryRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/walkers/summary", nil)
	w := httptest.NewRecorder()
	handler.Summary(w, req)

	if w.Result().StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Result().StatusCode)
	}
	if strings.Contains(w.Body.String(), "db gone") {
		t.Fatalf("internal error detail leaked: %s", w.Body.String())
	}
}
