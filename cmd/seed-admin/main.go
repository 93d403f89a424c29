package main

import (
	"flag"
	"log"
	"sufipulse-api/config"
	"sufipulse-api/models"
	"sufipulse-api/utils"
	"time"

	"github.com/joho/godotenv"
)

// Creates or repairs the administrator account. Safe to run repeatedly:
// an existing admin gets its password reset to the given value.
func main() {
	email := flag.String("email", "admin@sufipulse.com", "admin email address")
	password := flag.String("password", "", "admin password (required)")
	name := flag.String("name", "SufiPulse Admin", "admin display name")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if *password == "" {
		log.Fatal("-password is required")
	}
	if !utils.ValidateEmail(*email) {
		log.Fatalf("Invalid email address: %s", *email)
	}
	if ok, msg := utils.ValidatePassword(*password); !ok {
		log.Fatalf("Weak password: %s", msg)
	}

	config.InitDB()

	hash, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	var existing models.User
	if err := config.DB.Where("email = ?", *email).First(&existing).Error; err == nil {
		if existing.Role != models.RoleAdmin {
			log.Fatalf("User %s exists with role %s, refusing to overwrite", *email, existing.Role)
		}
		if err := config.DB.Model(&models.User{}).
			Where("id = ?", existing.ID).
			Updates(map[string]interface{}{
				"password_hash": hash,
				"is_registered": true,
				"updated_at":    time.Now(),
			}).Error; err != nil {
			log.Fatalf("Failed to update admin: %v", err)
		}
		log.Printf("Admin account %s updated", *email)
		return
	}

	now := time.Now()
	admin := models.User{
		Email:        *email,
		Name:         *name,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsRegistered: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	log.Printf("Admin account %s created (id=%d)", *email, admin.ID)
}
