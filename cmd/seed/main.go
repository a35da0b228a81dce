package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/anandamid/presensi-backend-go/internal/config"
	"github.com/anandamid/presensi-backend-go/internal/domain/user"
	"github.com/anandamid/presensi-backend-go/internal/pkg/database"
	"github.com/anandamid/presensi-backend-go/internal/repository/postgresql"
	userService "github.com/anandamid/presensi-backend-go/internal/service/user"
)

// Jalankan setelah migrations: go run ./cmd/seed
// Membuat user admin pertama jika belum ada. Username dan password bisa
// dioverride lewat ADMIN_USERNAME / ADMIN_PASSWORD.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	repo := postgresql.NewUserRepository(db)
	svc := userService.NewUserService(repo)

	username := envOr("ADMIN_USERNAME", "admin")
	password := envOr("ADMIN_PASSWORD", "admin123")

	ctx := context.Background()
	if _, err := repo.GetByUsername(ctx, username); err == nil {
		fmt.Printf("User %s sudah ada.\n", username)
		return
	} else if !errors.Is(err, user.ErrUserNotFound) {
		log.Fatal("Failed to check existing admin: ", err)
	}

	created, err := svc.Create(ctx, user.CreateUserRequest{
		Nama:     "Administrator",
		Username: username,
		Password: password,
		Role:     string(user.RoleAdmin),
	})
	if err != nil {
		log.Fatal("Failed to create admin user: ", err)
	}

	fmt.Printf("User admin dibuat: username=%s\n", created.Username)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
