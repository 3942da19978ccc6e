package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/pkg/config"
	pkgjwt "github.com/Bhavya-Chawat/AI-Interview-Assistant/pkg/jwt"
)

// Issues a bearer token for local API testing.
func main() {
	email := flag.String("email", "dev@test.local", "email claim for the token")
	userID := flag.String("user", "", "user ID (random when empty)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	expiry, err := time.ParseDuration(cfg.JWT.Expiry)
	if err != nil {
		log.Fatalf("Invalid JWT_EXPIRY: %v", err)
	}

	id := uuid.New()
	if *userID != "" {
		id, err = uuid.Parse(*userID)
		if err != nil {
			log.Fatalf("Invalid user ID: %v", err)
		}
	}

	jwtManager := pkgjwt.NewManager(cfg.JWT.Secret, expiry)
	token, err := jwtManager.GenerateToken(id, *email)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Printf("User ID: %s\n", id)
	fmt.Printf("Email:   %s\n", *email)
	fmt.Printf("Expires: %s\n", time.Now().Add(expiry).Format(time.RFC3339))
	fmt.Printf("\nAuthorization: Bearer %s\n", token)
}
