// Command promote grants a role to an existing user by email address.
// It is used to bootstrap the first admin user.
//
// Usage:
//
//	promote --email=user@example.com [--role=admin]
//
// Reads the same configuration as the API server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/blog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/blog-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/blog-backend/internal/config"
	"github.com/heartmarshall/blog-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the user to promote")
	role := flag.String("role", "admin", "slug of the role to grant")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=admin]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	users := user.New(pool)

	u, err := users.GetByEmail(ctx, domain.NormalizeEmail(*email))
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with email %q.\n", *email)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("find user: %v", err)
	}

	if u.HasRole(*role) {
		fmt.Printf("User %q already has role %q.\n", *email, *role)
		return
	}

	if err := users.AssignRole(ctx, u.ID, *role); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.Fatalf("unknown role %q", *role)
		}
		log.Fatalf("assign role: %v", err)
	}

	fmt.Printf("User %q granted role %q.\n", *email, *role)
}
