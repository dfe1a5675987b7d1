package main

import (
	"fmt"
	"log"
	"os"

	"github.com/your-org/foodhub-storefront/internal/config"
	"github.com/your-org/foodhub-storefront/internal/pkg/auth"
)

// Prints the stored form of a password for seeding foodhub-users by hand
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run scripts/generate_password.go <password>")
	}
	password := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	verifier := auth.NewPasswordVerifier(cfg)
	hash, err := verifier.Hash(password)
	if err != nil {
		log.Fatal("Error generating hash:", err)
	}

	fmt.Printf("Scheme: %s\n", cfg.Auth.PasswordScheme)
	fmt.Printf("Stored value: %s\n", hash)

	if err := verifier.Verify(password, hash); err != nil {
		log.Fatal("Hash verification failed:", err)
	}
	fmt.Println("✅ Hash verified successfully!")
}
