// Command adduser creates an operator account directly in the database.
// Usage: go run ./cmd/adduser -email ops@example.com -name "Jane Ops" -role admin
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"insdocs/internal/config"
	"insdocs/internal/domain"
	"insdocs/internal/repository/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	email := flag.String("email", "", "login email")
	name := flag.String("name", "", "full name")
	role := flag.String("role", string(domain.RoleMember), "role: admin or member")
	flag.Parse()

	if *email == "" || *name == "" {
		return fmt.Errorf("usage: adduser -email <email> -name <name> [-role admin|member]")
	}
	userRole := domain.UserRole(*role)
	if userRole != domain.RoleAdmin && userRole != domain.RoleMember {
		return fmt.Errorf("invalid role %q", *role)
	}

	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        *email,
		PasswordHash: string(hash),
		FullName:     *name,
		Role:         userRole,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	userRepo := postgres.NewUserRepo(db)
	if err := userRepo.Create(context.Background(), user); err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	log.Printf("created user %s (%s) with role %s", user.Email, user.ID, user.Role)
	return nil
}
