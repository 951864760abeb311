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

type PaymentsHandler struct {
	paymentRepo repository.PaymentRepo
}

func NewPaymentsHandler(pr repository.PaymentRepo) *PaymentsHandler {
	return &PaymentsHandler{paymentRepo: pr}
}

// ListPayments returns payments, optionally filtered with ?request_id= and
// ?status=.
func (h *PaymentsHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var f repository.PaymentFilter
	if v := q.Get("request_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			writeError(w, "invalid request_id", http.StatusBadRequest)
			return
		}
		f.RequestID = id
	}
	if v := q.Get("status"); v != "" {
		status := models.PaymentStatus(v)
		switch status {
		case models.PaymentPending, models.PaymentCompleted, models.PaymentFailed:
		default:
			writeError(w, "unknown status", http.StatusBadRequest)
			return
		}
		f.Status = status
	}

	payments, err := h.paymentRepo.ListPayments(r.Context(), f)
	if err != nil {
		logger.Error("list payments", "err", err)
		writeError(w, "server error", http.StatusInternalServerError)
		return
	}

	if payments == nil {
		payments = []models.Payment{}
	}

	writeJSON(w, payments, http.StatusOK)
}

type createPaymentRequest struct {
	RequestID int64   `json:"request_id"`
	OwnerID   int64   `json:"owner_id"`
	WalkerID  int64   `json:"walker_id"`
	Amount    float64 `json:"amount"`
}

type createPaymentResponse struct {
	PaymentID int64 `json:"payment_id"`
}

func (h *PaymentsHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.RequestID <= 0 || req.OwnerID <= 0 || req.WalkerID <= 0 {
		writeError(w, "missing fields", http.StatusBadRequest)
		return
	}
	if req.Amount <= 0 {
		writeError(w, "amount must be positive", http.StatusBadRequest)
		return
	}

	p := &models.Payment{
		RequestID: req.RequestID,
		OwnerID:   req.OwnerID,
		WalkerID:  req.WalkerID,
		Amount:    req.Amount,
	}
	id, err := h.paymentRepo.CreatePayment(r.Context(), p)
	if err != nil {
		if errors.Is(err, repository.ErrBadReference) {
			writeError(w, "request, owner or walker does not exist", http.StatusBadRequest)
			return
		}
		logger.Error("create payment", "err", err)
		writeError(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, createPaymentResponse{PaymentID: id}, http.StatusCreated)
}

// UpdatePaymentStatus settles or fails a pending payment.
func (h *PaymentsHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
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

	to := models.PaymentStatus(req.Status)
	if to != models.PaymentCompleted && to != models.PaymentFailed {
		writeError(w, "unknown status", http.StatusBadRequest)
		return
	}

	switch err := h.paymentRepo.UpdatePaymentStatus(r.Context(), id, to); {
	case err == nil:
		writeJSON(w, map[string]string{"status": string(to)}, http.StatusOK)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, "payment not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrInvalidTransition):
		writeError(w, "invalid status transition", http.StatusBadRequest)
	default:
		logger.Error("update payment status", "err", err)
		writeError(w, "server error", http.StatusInternalServerError)
	}
}
