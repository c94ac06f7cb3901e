package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/teamdispo/dispo/internal/api/dto"
	"github.com/teamdispo/dispo/internal/api/middleware"
	"github.com/teamdispo/dispo/internal/auth"
	"github.com/teamdispo/dispo/internal/config"
	"github.com/teamdispo/dispo/internal/domain/user"
	"github.com/teamdispo/dispo/internal/pkg/errors"
	"github.com/teamdispo/dispo/internal/pkg/logger"
	"github.com/teamdispo/dispo/internal/pkg/utils"
	"github.com/teamdispo/dispo/internal/pkg/validator"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService user.Service
	config      *config.Config
	logger      *logger.Logger
	validator   *validator.Validator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	userService user.Service,
	cfg *config.Config,
	log *logger.Logger,
	val *validator.Validator,
) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		config:      cfg,
		logger:      log,
		validator:   val,
	}
}

// Login handles user login
// @Summary User login
// @Description Authenticate with username and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Successfully authenticated"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Failure 401 {object} utils.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	authenticated, err := h.userService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.WithFields(map[string]interface{}{
			"username": req.Username,
		}).Warn("Authentication failed")
		writeServiceError(w, err, errors.Unauthorized("Invalid credentials"))
		return
	}

	tokens, err := auth.MintTokens(
		authenticated.ID,
		authenticated.Username,
		h.config.Auth.JWTSecret,
		h.config.Auth.AccessTokenExpiry,
		h.config.Auth.RefreshTokenExpiry,
	)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to generate tokens")
		utils.WriteError(w, errors.Internal("Failed to generate tokens", err))
		return
	}

	h.setAuthCookies(w, tokens)

	h.logger.WithFields(map[string]interface{}{
		"user_id":  authenticated.ID,
		"username": authenticated.Username,
	}).Info("User logged in")

	utils.WriteSuccess(w, http.StatusOK, dto.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         dto.NewUserDTO(authenticated),
	})
}

// Register handles user registration
// @Summary User registration
// @Description Register a new team member account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.AuthResponse "User successfully registered"
// @Failure 400 {object} utils.ErrorResponse "Invalid request or validation error"
// @Failure 409 {object} utils.ErrorResponse "Username already taken"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	newUser, err := h.userService.Register(r.Context(), req.Username, req.Password, req.FirstName, req.LastName)
	if err != nil {
		writeServiceError(w, err, errors.Internal("Failed to create user", err))
		return
	}

	tokens, err := auth.MintTokens(
		newUser.ID,
		newUser.Username,
		h.config.Auth.JWTSecret,
		h.config.Auth.AccessTokenExpiry,
		h.config.Auth.RefreshTokenExpiry,
	)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to generate tokens")
		utils.WriteError(w, errors.Internal("Failed to generate tokens", err))
		return
	}

	h.setAuthCookies(w, tokens)

	utils.WriteSuccess(w, http.StatusCreated, dto.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         dto.NewUserDTO(newUser),
	})
}

// Logout handles user logout
// @Summary User logout
// @Description Clear authentication cookies
// @Tags Auth
// @Success 200 {object} utils.SuccessResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	for _, name := range []string{"accessToken", "refreshToken"} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			HttpOnly: true,
			Secure:   h.config.Server.Environment == "production",
			SameSite: http.SameSiteStrictMode,
			Path:     "/",
			MaxAge:   -1,
		})
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Logged out", nil)
}

// Me returns the authenticated user's profile
// @Summary Current user
// @Description Return the profile of the authenticated user
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.UserDTO
// @Failure 401 {object} utils.ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("Not authenticated"))
		return
	}

	u, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, errors.NotFound("User"))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.NewUserDTO(u))
}

func (h *AuthHandler) setAuthCookies(w http.ResponseWriter, tokens auth.TokenPair) {
	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    tokens.AccessToken,
		HttpOnly: true,
		Secure:   h.config.Server.Environment == "production",
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   int(h.config.Auth.AccessTokenExpiry.Seconds()),
	})

	http.SetCookie(w, &http.Cookie{
		Name:     "refreshToken",
		Value:    tokens.RefreshToken,
		HttpOnly: true,
		Secure:   h.config.Server.Environment == "production",
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   int(h.config.Auth.RefreshTokenExpiry.Seconds()),
	})
}
