package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hopedeeds/internal/service"
)

// AuthHandler handles registration, login and identity endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterOrganizationRequest creates an organization with its first admin.
type RegisterOrganizationRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterRequest represents a volunteer self-registration request.
type RegisterRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone"`
	Password       string `json:"password" validate:"required,min=6"`
	OrganizationID string `json:"organizationId" validate:"required,uuid"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterOrganization godoc
// @Summary Register an organization and its admin account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterOrganizationRequest true "Organization registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/register-org [post]
func (h *AuthHandler) RegisterOrganization(c echo.Context) error {
	var req RegisterOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	token, org, user, err := h.authService.RegisterOrganization(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"token":        token,
		"organization": org,
		"user":         user,
	})
}

// Register godoc
// @Summary Register a volunteer account with an existing organization
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Volunteer registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}
	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		return badRequest("invalid organizationId")
	}

	token, user, err := h.authService.RegisterVolunteer(c.Request().Context(), req.Name, req.Email, req.Phone, req.Password, orgID)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	token, user, org, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"token":        token,
		"user":         user,
		"organization": org,
	})
}

// Me godoc
// @Summary Return the authenticated user and their organization
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}

	user, org, err := h.authService.Me(c.Request().Context(), cl.UserID)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":         user,
		"organization": org,
	})
}
