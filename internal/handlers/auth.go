package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"clinic-desk-server/internal/clinic"
	"clinic-desk-server/internal/config"
	"clinic-desk-server/internal/middleware"
	"clinic-desk-server/internal/utils"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	Service ClinicService
	Cfg     *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc ClinicService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Service: svc, Cfg: cfg}
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response body for successful login.
type LoginResponse struct {
	AccessToken string                   `json:"accessToken"`
	User        clinic.AuthenticatedUser `json:"user"`
}

// Login handles user login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user, err := h.Service.Authenticate(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, clinic.ErrNotFound) {
			utils.Unauthorized(c, "Invalid login or password")
			return
		}
		respondError(c, "login", err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Login, user.Role, user.PatientID, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token: "+err.Error())
		return
	}

	utils.Success(c, "Login successful", LoginResponse{AccessToken: token, User: *user})
}

// ProfileResponse describes the signed-in user as carried by the token.
type ProfileResponse struct {
	ID        uint   `json:"id"`
	Login     string `json:"login"`
	Role      string `json:"role"`
	PatientID *uint  `json:"patientId,omitempty"`
}

// GetProfile returns the identity of the current user.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	id, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User ID not found in token")
		return
	}
	login, _ := middleware.GetUserLoginFromContext(c)
	role, _ := middleware.GetUserRoleFromContext(c)

	profile := ProfileResponse{ID: id, Login: login, Role: string(role)}
	if patientID, ok := middleware.GetPatientIDFromContext(c); ok {
		profile.PatientID = &patientID
	}
	utils.Success(c, "Profile fetched successfully", profile)
}
