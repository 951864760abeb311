package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/garnizeh/dogwalk/internal/models"
	"github.com/garnizeh/dogwalk/pkg/repository"
	"golang.org/x/crypto/bcrypt"
)

type UsersHandler struct {
	userRepo repository.UserRepo
}

func NewUsersHandler(ur repository.UserRepo) *UsersHandler {
	return &UsersHandler{userRepo: ur}
}

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type createUserResponse struct {
	UserID int64 `json:"user_id"`
}

func (h *UsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeError(w, "missing fields", http.StatusBadRequest)
		return
	}
	role := models.Role(req.Role)
	if !role.Valid() {
		writeError(w, "role must be owner or walker", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("hash password", "err", err)
		writeError(w, "server error", http.StatusInternalServerError)
		return
	}

	u := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		Role:         role,
		PasswordHash: string(hash),
	}
	id, err := h.userRepo.CreateUser(r.Context(), u)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeError(w, "username or email already taken", http.StatusConflict)
			return
		}
		logger.Error("create user", "err", err)
		writeError(w, "server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, createUserResponse{UserID: id}, http.StatusCreated)
}

// ListUsers returns every account without password hashes; the repo query
// never selects the hash column.
func (h *UsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.ListUsers(r.Context())
	if err != nil {
		logger.Error("list users", "err", err)
		writeError(w, "server error", http.StatusInternalServerError)
		return
	}

	if users == nil {
		users = []models.User{}
	}

	writeJSON(w, users, http.StatusOK)
}
