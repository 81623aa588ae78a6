package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"leads-backend/config"
	"leads-backend/repository"
	"leads-backend/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	username := flag.String("username", "", "attorney username (required)")
	fullName := flag.String("name", "", "attorney full name")
	email := flag.String("email", "", "attorney email address (required)")
	password := flag.String("password", os.Getenv("ATTORNEY_PASSWORD"), "password, defaults to $ATTORNEY_PASSWORD")
	flag.Parse()

	if *username == "" || *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *fullName == "" {
		*fullName = *username
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	// Seed never issues tokens
	attorneys := service.NewAttorneyService(repository.NewAttorneyRepository(pool), nil, zap.NewNop())

	attorney, created, err := attorneys.Seed(ctx, service.SeedAccount{
		Username: *username,
		FullName: *fullName,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		log.Fatalf("Failed to create attorney: %v", err)
	}

	if !created {
		fmt.Printf("Attorney %s already exists, password unchanged\n", attorney.Username)
		return
	}
	fmt.Printf("✅ Attorney created\n")
	fmt.Printf("   Username: %s\n", attorney.Username)
	fmt.Printf("   Email: %s\n", attorney.Email)
}
