package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/internal/user/usecase/command"
	"github.com/tair/storefront/internal/user/usecase/query"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/middleware"
	"github.com/tair/storefront/pkg/response"
)

// UserHandler handles HTTP requests for accounts and profiles using CQRS pattern
type UserHandler struct {
	// Command handlers
	registerHandler *command.RegisterUserHandler
	loginHandler    *command.LoginUserHandler
	updateHandler   *command.UpdateProfileHandler

	// Query handlers
	getUserHandler *query.GetUserHandler

	tokens  middleware.TokenValidator
	metrics *middleware.Metrics
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	registerHandler *command.RegisterUserHandler,
	loginHandler *command.LoginUserHandler,
	updateHandler *command.UpdateProfileHandler,
	getUserHandler *query.GetUserHandler,
	tokens middleware.TokenValidator,
	metrics *middleware.Metrics,
) *UserHandler {
	return &UserHandler{
		registerHandler: registerHandler,
		loginHandler:    loginHandler,
		updateHandler:   updateHandler,
		getUserHandler:  getUserHandler,
		tokens:          tokens,
		metrics:         metrics,
	}
}

// RegisterRoutes registers the auth and profile routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	authed := middleware.Auth(h.tokens)

	// Public routes
	router.HandleFunc("/api/auth/register", h.metrics.Wrap("/api/auth/register", h.Register)).Methods("POST")
	router.HandleFunc("/api/auth/login", h.metrics.Wrap("/api/auth/login", h.Login)).Methods("POST")

	// Protected routes
	router.HandleFunc("/api/profile", h.metrics.Wrap("/api/profile", authed(h.GetProfile))).Methods("GET")
	router.HandleFunc("/api/profile", h.metrics.Wrap("/api/profile", authed(h.UpdateProfile))).Methods("PATCH")
}

// Register handles POST /api/auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.registerHandler.Handle(r.Context(), command.RegisterUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Str("email", req.Email).Msg("Registration failed")
		response.FromError(w, err)
		return
	}

	h.metrics.Mutation("user_register")
	logger.Info(r.Context()).Uint("user_id", user.ID).Msg("User registered")

	response.OK(w, http.StatusCreated, "User registered successfully", user)
}

// Login handles POST /api/auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.loginHandler.Handle(r.Context(), command.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Str("email", req.Email).Msg("Login failed")
		response.FromError(w, err)
		return
	}

	logger.Info(r.Context()).Uint("user_id", resp.User.ID).Msg("User logged in")
	response.OK(w, http.StatusOK, "Login successful", resp)
}

// GetProfile handles GET /api/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	user, err := h.getUserHandler.Handle(r.Context(), query.GetUserQuery{ID: userID})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("user_id", userID).Msg("Failed to load profile")
		response.FromError(w, err)
		return
	}

	response.OK(w, http.StatusOK, "", user)
}

// UpdateProfile handles PATCH /api/profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req struct {
		Name         *string `json:"name"`
		Email        *string `json:"email"`
		ProfileImage *string `json:"profile_image"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.updateHandler.Handle(r.Context(), command.UpdateProfileCommand{
		UserID:       userID,
		Name:         req.Name,
		Email:        req.Email,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Uint("user_id", userID).Msg("Failed to update profile")
		response.FromError(w, err)
		return
	}

	h.metrics.Mutation("profile_update")
	response.OK(w, http.StatusOK, "Profile updated successfully", user)
}
