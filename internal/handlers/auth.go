package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dealflow/apiserver/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// AuthHandler provides login and registration endpoints.
type AuthHandler struct {
	userService *services.UserService
	validate    *validator.Validate
}

// NewAuthHandler constructs an AuthHandler with the provided dependencies.
func NewAuthHandler(userService *services.UserService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		validate:    validate,
	}
}

// AuthRouter registers auth routes on the given router.
func AuthRouter(r chi.Router, userService *services.UserService, validate *validator.Validate) {
	handler := NewAuthHandler(userService, validate)

	r.Post("/login", handler.Login)
	r.Post("/register", handler.Register)
}

// Login verifies credentials and returns the account, hash excluded.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to authenticate")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Register creates a new account. Missing fields are all named in a single
// 400; a taken username is a 400 as well, not a 409.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, missingFieldsMessage(err))
		return
	}

	_, err := h.userService.Register(r.Context(), services.RegisterParams{
		Username: *req.Username,
		Password: *req.Password,
		Email:    *req.Email,
		Name:     *req.Name,
		UserType: *req.UserType,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			writeError(w, http.StatusBadRequest, "Username already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Message: "User registered successfully"})
}

// LoginRequest requires both credentials present and non-empty.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest uses pointer fields so a key that is absent can be told
// apart from one sent as an empty value.
type RegisterRequest struct {
	Username *string `json:"username" validate:"required"`
	Password *string `json:"password" validate:"required"`
	Email    *string `json:"email" validate:"required"`
	Name     *string `json:"name" validate:"required"`
	UserType *string `json:"type" validate:"required"`
}
