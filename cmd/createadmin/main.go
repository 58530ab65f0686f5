// Command createadmin creates an admin account from the command line.
//
// Usage:
//
//	createadmin <username> <password>
//
// Reads DATABASE_URL from the environment (or a .env file), like the server.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/accuransi/website-api/src/database"
	"github.com/accuransi/website-api/src/models"
	"github.com/accuransi/website-api/src/repositories"
	"github.com/accuransi/website-api/src/repositories/postgres"
	"github.com/accuransi/website-api/src/services"
	"github.com/joho/godotenv"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: createadmin <username> <password>")
		os.Exit(1)
	}
	username, password := os.Args[1], os.Args[2]

	_ = godotenv.Load()
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		fmt.Fprintln(os.Stderr, "error: DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.New(ctx, databaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	userService := services.NewUserService(postgres.NewUserRepository(db.Pool()))

	user, err := userService.Create(ctx, username, password, models.RoleAdmin)
	switch {
	case errors.Is(err, repositories.ErrUsernameTaken):
		fmt.Fprintf(os.Stderr, "error: a user with the username %q already exists\n", username)
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "error: failed to create admin user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("created admin user %q (id %d)\n", user.Username, user.ID)
}
