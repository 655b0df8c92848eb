package main

import (
	"log"
	"os"

	"github.com/google/uuid"

	"contactnest/internal/config"
	"contactnest/internal/database"
	"contactnest/internal/models"
	"contactnest/internal/repository"
	"contactnest/internal/utils"
)

// Seeds the bootstrap admin account. Idempotent: exits quietly when an
// account with the configured email already exists.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminUsername == "" || adminEmail == "" || adminPassword == "" {
		log.Fatal("Missing environment variables: ADMIN_USERNAME, ADMIN_EMAIL, ADMIN_PASSWORD")
	}

	userRepo := repository.NewUserRepository(db)

	existing, err := userRepo.FindByEmail(adminEmail)
	if err != nil {
		log.Fatalf("Failed to check existing admin: %v", err)
	}
	if existing != nil {
		log.Println("Admin user already exists:", existing.Username)
		log.Println("   Email:", existing.Email)
		return
	}

	passwordHash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := &models.User{
		ID:           uuid.New(),
		Username:     adminUsername,
		Email:        adminEmail,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}

	if err := userRepo.Create(admin); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Println("Admin user created successfully!")
	log.Println("   Username:", admin.Username)
	log.Println("   Email:", admin.Email)
}
