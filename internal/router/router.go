package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"hopedeeds/internal/auth"
	"hopedeeds/internal/config"
	"hopedeeds/internal/handler"
	"hopedeeds/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	orgHandler *handler.OrganizationHandler,
	oppHandler *handler.OpportunityHandler,
	shiftHandler *handler.ShiftHandler,
	attendanceHandler *handler.AttendanceHandler,
	kioskHandler *handler.KioskHandler,
	volunteerHandler *handler.VolunteerHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":  "ok",
			"message": "HopeDeeds API is running",
		})
	})

	// Public routes
	api.POST("/auth/register-org", authHandler.RegisterOrganization)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/organizations", orgHandler.Create)

	// Secured routes (require a bearer token)
	secured := api.Group("", auth.Middleware(cfg.JWTSecret))

	// Staff gate for management and kiosk surfaces
	staff := auth.RequireRole(model.RoleAdmin, model.RoleManager)

	secured.GET("/auth/me", authHandler.Me)
	secured.GET("/organizations/:id", orgHandler.Get)

	// Opportunity routes
	secured.GET("/opportunities", oppHandler.List)
	secured.GET("/opportunities/:id", oppHandler.Get)
	secured.POST("/opportunities", oppHandler.Create, staff)
	secured.PUT("/opportunities/:id", oppHandler.Update, staff)
	secured.DELETE("/opportunities/:id", oppHandler.Delete, staff)

	// Shift routes
	secured.GET("/shifts/:id", shiftHandler.Get)
	secured.POST("/shifts", shiftHandler.Create, staff)
	secured.PUT("/shifts/:id", shiftHandler.Update, staff)
	secured.DELETE("/shifts/:id", shiftHandler.Delete, staff)
	secured.POST("/shifts/:id/signup", shiftHandler.Signup)
	secured.DELETE("/shifts/:id/signup", shiftHandler.CancelSignup)
	secured.GET("/shifts/:id/signups", shiftHandler.ListSignups, staff)

	// Attendance routes
	secured.POST("/attendance/checkin", attendanceHandler.CheckIn)
	secured.POST("/attendance/checkout", attendanceHandler.CheckOut)
	secured.GET("/attendance/user/:id", attendanceHandler.ListForUser, staff)
	secured.GET("/attendance/shift/:id", attendanceHandler.ListForShift, staff)
	secured.PUT("/attendance/:id", attendanceHandler.Edit, staff)

	// Kiosk routes
	secured.POST("/kiosk/checkin", kioskHandler.CheckIn, staff)
	secured.POST("/kiosk/checkout", kioskHandler.CheckOut, staff)
	secured.GET("/kiosk/current-roster", kioskHandler.CurrentRoster, staff)

	// Volunteer administration routes
	secured.GET("/volunteers", volunteerHandler.List, staff)
	secured.GET("/volunteers/:id", volunteerHandler.Get, staff)
	secured.PUT("/volunteers/:id", volunteerHandler.Update, staff)
	secured.PATCH("/volunteers/:id/background-check", volunteerHandler.ApproveBackgroundCheck, staff)
	secured.PATCH("/volunteers/:id/orientation", volunteerHandler.ApproveOrientation, staff)
	secured.PATCH("/volunteers/:id/deactivate", volunteerHandler.Deactivate, staff)
	secured.GET("/volunteers/:id/hours", volunteerHandler.ListHours, staff)
	secured.POST("/volunteers/:id/hours/add", volunteerHandler.AddHours, staff)
	secured.DELETE("/volunteers/:id/hours/:hourId", volunteerHandler.DeleteHour, staff)

	// Dashboard rollups
	secured.GET("/admin/overview", adminHandler.Overview, staff)
	secured.GET("/admin/upcoming-shifts", adminHandler.UpcomingShifts, staff)
	secured.GET("/admin/recent-attendance", adminHandler.RecentAttendance, staff)
	secured.GET("/admin/pending-volunteers", adminHandler.PendingVolunteers, staff)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
