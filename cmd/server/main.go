package main

import (
	"log"
	"net/http"
	"os"

	"hopedeeds/docs"

	"github.com/labstack/echo/v4"

	"hopedeeds/internal/auth"
	"hopedeeds/internal/cache"
	"hopedeeds/internal/config"
	"hopedeeds/internal/db"
	"hopedeeds/internal/handler"
	"hopedeeds/internal/model"
	"hopedeeds/internal/repository"
	"hopedeeds/internal/router"
	"hopedeeds/internal/service"
)

// @title HopeDeeds API
// @version 1.0
// @description Multi-tenant volunteer management API: opportunities, shifts, signups, attendance and kiosk check-in.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.VolunteerHour{},
			&model.Attendance{},
			&model.ShiftSignup{},
			&model.Shift{},
			&model.Opportunity{},
			&model.User{},
			&model.Organization{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Organization{},
		&model.User{},
		&model.Opportunity{},
		&model.Shift{},
		&model.ShiftSignup{},
		&model.Attendance{},
		&model.VolunteerHour{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	orgRepo := repository.NewOrganizationRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	oppRepo := repository.NewOpportunityRepository(gormDB)
	shiftRepo := repository.NewShiftRepository(gormDB)
	signupRepo := repository.NewSignupRepository(gormDB)
	attendanceRepo := repository.NewAttendanceRepository(gormDB)
	hourRepo := repository.NewHourRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, orgRepo, jwtService)
	orgService := service.NewOrganizationService(orgRepo)
	oppService := service.NewOpportunityService(oppRepo, shiftRepo, signupRepo)
	shiftService := service.NewShiftService(shiftRepo, oppRepo, signupRepo, userRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo, shiftRepo, signupRepo, userRepo)
	kioskService := service.NewKioskService(userRepo, shiftRepo, attendanceRepo)
	volunteerService := service.NewVolunteerService(userRepo, hourRepo)
	adminService := service.NewAdminService(userRepo, oppRepo, shiftRepo, signupRepo, attendanceRepo, hourRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	orgHandler := handler.NewOrganizationHandler(orgService)
	oppHandler := handler.NewOpportunityHandler(oppService)
	shiftHandler := handler.NewShiftHandler(shiftService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	kioskHandler := handler.NewKioskHandler(kioskService)
	volunteerHandler := handler.NewVolunteerHandler(volunteerService)
	adminHandler := handler.NewAdminHandler(adminService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		orgHandler,
		oppHandler,
		shiftHandler,
		attendanceHandler,
		kioskHandler,
		volunteerHandler,
		adminHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
