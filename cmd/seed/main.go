package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hopedeeds/internal/config"
	"hopedeeds/internal/db"
	"hopedeeds/internal/model"
	"hopedeeds/internal/repository"
)

const seedPassword = "password123"

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.Organization{},
		&model.User{},
		&model.Opportunity{},
		&model.Shift{},
		&model.ShiftSignup{},
		&model.Attendance{},
		&model.VolunteerHour{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	orgRepo := repository.NewOrganizationRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	oppRepo := repository.NewOpportunityRepository(gormDB)
	shiftRepo := repository.NewShiftRepository(gormDB)
	signupRepo := repository.NewSignupRepository(gormDB)

	if existing, err := userRepo.FindByEmail(ctx, "admin@hopedeeds.local"); err == nil && existing != nil {
		log.Println("Seed data already present, nothing to do")
		return
	} else if err != nil && err != gorm.ErrRecordNotFound {
		log.Fatalf("Failed to check for existing seed data: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	org := &model.Organization{
		Name:         "Helping Hands Community Center",
		ContactEmail: "admin@hopedeeds.local",
	}
	admin := &model.User{
		Name:                   "Helping Hands Community Center",
		Email:                  "admin@hopedeeds.local",
		PasswordHash:           string(hash),
		Role:                   model.RoleAdmin,
		HasBackgroundCheck:     true,
		HasAttendedOrientation: true,
	}
	if err := orgRepo.CreateWithAdmin(ctx, org, admin); err != nil {
		log.Fatalf("Failed to create organization: %v", err)
	}
	log.Printf("Created organization %s with admin %s", org.Name, admin.Email)

	volunteers := []*model.User{
		{
			Name:                   "Alice Rivera",
			Email:                  "alice@hopedeeds.local",
			Phone:                  "555-0101",
			PasswordHash:           string(hash),
			Role:                   model.RoleVolunteer,
			OrganizationID:         org.ID,
			HasBackgroundCheck:     true,
			HasAttendedOrientation: true,
		},
		{
			Name:           "Ben Okafor",
			Email:          "ben@hopedeeds.local",
			Phone:          "555-0102",
			PasswordHash:   string(hash),
			Role:           model.RoleVolunteer,
			OrganizationID: org.ID,
		},
		{
			Name:                   "Carmen Liu",
			Email:                  "carmen@hopedeeds.local",
			Phone:                  "555-0103",
			PasswordHash:           string(hash),
			Role:                   model.RoleManager,
			OrganizationID:         org.ID,
			HasBackgroundCheck:     true,
			HasAttendedOrientation: true,
		},
	}
	for _, v := range volunteers {
		if err := userRepo.Create(ctx, v); err != nil {
			log.Fatalf("Failed to create user %s: %v", v.Email, err)
		}
	}
	log.Printf("Created %d users", len(volunteers))

	opp := &model.Opportunity{
		OrganizationID: org.ID,
		Title:          "Food Bank Sorting",
		Description:    "Sort and shelve donated goods in the warehouse.",
		Location:       "Main warehouse, 42 Hope St",
	}
	if err := oppRepo.Create(ctx, opp); err != nil {
		log.Fatalf("Failed to create opportunity: %v", err)
	}

	today := time.Now().Truncate(24 * time.Hour)
	shifts := []*model.Shift{
		{
			OpportunityID: opp.ID,
			StartTime:     today.Add(9 * time.Hour),
			EndTime:       today.Add(12 * time.Hour),
			Capacity:      8,
		},
		{
			OpportunityID: opp.ID,
			StartTime:     today.Add(24*time.Hour + 13*time.Hour),
			EndTime:       today.Add(24*time.Hour + 17*time.Hour),
			Capacity:      4,
		},
	}
	for _, s := range shifts {
		if err := shiftRepo.Create(ctx, s); err != nil {
			log.Fatalf("Failed to create shift: %v", err)
		}
	}
	log.Printf("Created opportunity %q with %d shifts", opp.Title, len(shifts))

	signup := &model.ShiftSignup{
		ShiftID: shifts[0].ID,
		UserID:  volunteers[0].ID,
	}
	if err := signupRepo.Create(ctx, signup); err != nil {
		log.Fatalf("Failed to create signup: %v", err)
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - Admin login: %s / %s", admin.Email, seedPassword)
}
