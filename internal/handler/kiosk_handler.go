package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hopedeeds/internal/service"
)

// KioskHandler handles the front-desk check-in flow. The kiosk is operated
// by an admin or manager on behalf of volunteers who identify themselves by
// email or phone.
type KioskHandler struct {
	kioskService service.KioskService
}

// NewKioskHandler creates a new kiosk handler.
func NewKioskHandler(kioskService service.KioskService) *KioskHandler {
	return &KioskHandler{kioskService: kioskService}
}

// KioskRequest identifies a volunteer at the front desk.
type KioskRequest struct {
	EmailOrPhone string `json:"emailOrPhone" validate:"required"`
}

// CheckIn godoc
// @Summary Check a volunteer in to their active shift by email or phone
// @Tags kiosk
// @Accept json
// @Produce json
// @Param request body KioskRequest true "Volunteer contact"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /kiosk/checkin [post]
func (h *KioskHandler) CheckIn(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}

	var req KioskRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	result, err := h.kioskService.CheckIn(c.Request().Context(), cl.OrganizationID, req.EmailOrPhone)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":    "Check-in successful",
		"user":       result.User,
		"shift":      result.Shift,
		"attendance": result.Attendance,
	})
}

// CheckOut godoc
// @Summary Check a volunteer out of their open session by email or phone
// @Tags kiosk
// @Accept json
// @Produce json
// @Param request body KioskRequest true "Volunteer contact"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /kiosk/checkout [post]
func (h *KioskHandler) CheckOut(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}

	var req KioskRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	result, err := h.kioskService.CheckOut(c.Request().Context(), cl.OrganizationID, req.EmailOrPhone)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":       "Checkout successful",
		"user":          result.User,
		"shift":         result.Shift,
		"attendance":    result.Attendance,
		"hoursAdded":    result.HoursAdded,
		"volunteerHour": result.VolunteerHour,
	})
}

// CurrentRoster godoc
// @Summary List everyone currently checked in, longest first
// @Tags kiosk
// @Produce json
// @Success 200 {array} model.Attendance
// @Security BearerAuth
// @Router /kiosk/current-roster [get]
func (h *KioskHandler) CurrentRoster(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}

	roster, err := h.kioskService.CurrentRoster(c.Request().Context(), cl.OrganizationID)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, roster)
}
