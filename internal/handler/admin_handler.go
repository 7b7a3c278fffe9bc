package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hopedeeds/internal/model"
	"hopedeeds/internal/service"
)

// AdminHandler serves the dashboard rollup endpoints.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// recentShift is the trimmed shift block of a recent-attendance row.
type recentShift struct {
	ID          uuid.UUID          `json:"id"`
	StartTime   time.Time          `json:"startTime"`
	EndTime     time.Time          `json:"endTime"`
	Opportunity *model.Opportunity `json:"opportunity,omitempty"`
}

// recentAttendanceRow flattens an attendance record for the dashboard feed.
type recentAttendanceRow struct {
	ID       uuid.UUID    `json:"id"`
	User     *model.User  `json:"user"`
	Shift    *recentShift `json:"shift"`
	CheckIn  time.Time    `json:"checkIn"`
	CheckOut *time.Time   `json:"checkOut"`
}

// limitParam reads an optional positive ?limit=, falling back to def.
func limitParam(c echo.Context, def int) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// Overview godoc
// @Summary Organization-wide volunteer, opportunity and hour statistics
// @Tags admin
// @Produce json
// @Success 200 {object} service.Overview
// @Security BearerAuth
// @Router /admin/overview [get]
func (h *AdminHandler) Overview(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}

	overview, err := h.adminService.Overview(c.Request().Context(), cl.OrganizationID)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, overview)
}

// UpcomingShifts godoc
// @Summary Upcoming shifts with remaining capacity
// @Tags admin
// @Produce json
// @Param limit query int false "Max rows (default 20)"
// @Success 200 {array} service.UpcomingShift
// @Security BearerAuth
// @Router /admin/upcoming-shifts [get]
func (h *AdminHandler) UpcomingShifts(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}

	shifts, err := h.adminService.UpcomingShifts(c.Request().Context(), cl.OrganizationID, limitParam(c, 20))
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, shifts)
}

// RecentAttendance godoc
// @Summary Most recent check-ins across the organization
// @Tags admin
// @Produce json
// @Param limit query int false "Max rows (default 50)"
// @Success 200 {array} recentAttendanceRow
// @Security BearerAuth
// @Router /admin/recent-attendance [get]
func (h *AdminHandler) RecentAttendance(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}

	records, err := h.adminService.RecentAttendance(c.Request().Context(), cl.OrganizationID, limitParam(c, 50))
	if err != nil {
		return fail(err)
	}

	rows := make([]recentAttendanceRow, 0, len(records))
	for _, rec := range records {
		row := recentAttendanceRow{
			ID:       rec.ID,
			User:     rec.User,
			CheckIn:  rec.CheckIn,
			CheckOut: rec.CheckOut,
		}
		if rec.Shift != nil {
			row.Shift = &recentShift{
				ID:          rec.Shift.ID,
				StartTime:   rec.Shift.StartTime,
				EndTime:     rec.Shift.EndTime,
				Opportunity: rec.Shift.Opportunity,
			}
		}
		rows = append(rows, row)
	}

	return c.JSON(http.StatusOK, rows)
}

// PendingVolunteers godoc
// @Summary Volunteers still awaiting background check or orientation
// @Tags admin
// @Produce json
// @Success 200 {array} model.User
// @Security BearerAuth
// @Router /admin/pending-volunteers [get]
func (h *AdminHandler) PendingVolunteers(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}

	volunteers, err := h.adminService.PendingVolunteers(c.Request().Context(), cl.OrganizationID)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, volunteers)
}
