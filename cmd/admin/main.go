package main

import (
	"fmt"
	"log"
	"os"

	"cityvoice/backend/internal/config"
	"cityvoice/backend/internal/models"
	"cityvoice/backend/internal/storage"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "list":
		complaints, err := storageSvc.ListComplaints()
		if err != nil {
			log.Fatalf("Error listing complaints: %v", err)
		}
		for _, c := range complaints {
			fmt.Printf("%s  [%-11s]  %s (%d images)\n", c.ID, c.Status, c.Title, len(c.Images))
		}
	case "set-status":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin set-status <complaint_id> <status>")
			os.Exit(1)
		}
		id, status := os.Args[2], os.Args[3]
		if !models.ValidStatus(status) {
			fmt.Println("Status must be one of: open, \"in progress\", closed.")
			os.Exit(1)
		}
		if _, err := storageSvc.UpdateComplaintStatus(id, status); err != nil {
			log.Fatalf("Error updating complaint: %v", err)
		}
		fmt.Printf("Complaint %s is now %q.\n", id, status)
	case "delete":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin delete <complaint_id>")
			os.Exit(1)
		}
		id := os.Args[2]
		if err := storageSvc.DeleteComplaint(id); err != nil {
			log.Fatalf("Error deleting complaint: %v", err)
		}
		fmt.Printf("Complaint %s has been deleted.\n", id)
	case "set-password":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin set-password <email> <new_password>")
			os.Exit(1)
		}
		if err := setPassword(storageSvc, os.Args[2], os.Args[3]); err != nil {
			log.Fatalf("Error setting password: %v", err)
		}
		fmt.Printf("Password updated for %s.\n", os.Args[2])
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func setPassword(s storage.Storage, email, password string) error {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	return s.UpdateUser(user)
}
