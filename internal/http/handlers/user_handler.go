package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Adiraj90/Ai-trip-planner/internal/modules/user"
)

type UserHandler struct {
	users *user.Service
}

func NewUserHandler(users *user.Service) *UserHandler {
	return &UserHandler{users: users}
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Country  string `json:"country"`
}

// Register handles POST /api/auth/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	u, err := h.users.Register(c.Request.Context(), user.RegisterCommand{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		FullName: strings.TrimSpace(req.FullName),
		Country:  strings.TrimSpace(req.Country),
	})
	if err != nil {
		writeUserError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, u)
}

type loginReq struct {
	Login    string `json:"login"` // username or email
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	u, err := h.users.Authenticate(c.Request.Context(), strings.TrimSpace(req.Login), req.Password)
	if err != nil {
		writeUserError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, u)
}

// Profile handles GET /api/users/:id.
func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	u, err := h.users.Profile(c.Request.Context(), userID)
	if err != nil {
		writeUserError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, u)
}

type updateProfileReq struct {
	FullName        *string `json:"full_name"`
	Email           *string `json:"email"`
	MobileNumber    *string `json:"mobile_number"`
	ProfileImageURL *string `json:"profile_image_url"`
}

// UpdateProfile handles PUT /api/users/:id.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	err := h.users.UpdateProfile(c.Request.Context(), userID, user.ProfileUpdate{
		FullName:        req.FullName,
		Email:           req.Email,
		MobileNumber:    req.MobileNumber,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		writeUserError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type changePasswordReq struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword handles PUT /api/users/:id/password.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.users.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		writeUserError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Preferences handles GET /api/users/:id/preferences.
func (h *UserHandler) Preferences(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	prefs, err := h.users.Preferences(c.Request.Context(), userID)
	if err != nil {
		writeUserError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, prefs)
}

type updatePreferencesReq struct {
	DefaultCurrency      *string `json:"default_currency"`
	PreferredTripType    *string `json:"preferred_trip_type"`
	PreferredFoodType    *string `json:"preferred_food_type"`
	PreferredBudgetRange *string `json:"preferred_budget_range"`
}

// UpdatePreferences handles PUT /api/users/:id/preferences.
func (h *UserHandler) UpdatePreferences(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req updatePreferencesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	err := h.users.UpdatePreferences(c.Request.Context(), userID, user.PreferencesUpdate{
		DefaultCurrency:      req.DefaultCurrency,
		PreferredTripType:    req.PreferredTripType,
		PreferredFoodType:    req.PreferredFoodType,
		PreferredBudgetRange: req.PreferredBudgetRange,
	})
	if err != nil {
		writeUserError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
