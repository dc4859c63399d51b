package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/helloworld/api-backend/internal/crypto"
)

func main() {
	email := flag.String("email", "", "mint an admin token for this email")
	secret := flag.String("secret", "", "base64 ADMIN_JWT_SECRET used to sign the token")
	flag.Parse()

	if *email != "" {
		mintToken(*email, *secret)
		return
	}

	fmt.Println("Hello World API - Admin Secret Generator")
	fmt.Println("========================================")
	fmt.Println()

	key, err := crypto.GenerateJWTSecret()
	if err != nil {
		log.Fatalf("Failed to generate JWT secret: %v", err)
	}

	fmt.Println("Add this to your .env file:")
	fmt.Println("----------------------------")
	fmt.Printf("ADMIN_JWT_SECRET=%s\n", key)
	fmt.Println()
	fmt.Println("SECURITY WARNING:")
	fmt.Println("   - Keep this secret out of version control")
	fmt.Println("   - Anyone holding it can sign admin tokens")
	fmt.Println()

	// Check that the secret round-trips before handing it out
	token, _, err := crypto.GenerateAdminJWT("selftest@localhost", key)
	if err != nil {
		log.Fatalf("Signing test failed: %v", err)
	}
	if _, err := crypto.VerifyAdminJWT(token, key); err != nil {
		log.Fatalf("Verification test failed: %v", err)
	}
	fmt.Println("Signing test passed!")
	fmt.Println()
	fmt.Println("Mint an admin token with:")
	fmt.Println("   go run scripts/generate_keys.go -email admin@example.com -secret <ADMIN_JWT_SECRET>")
}

func mintToken(email, secret string) {
	if secret == "" {
		log.Fatal("-secret is required when -email is set")
	}

	token, expiresAt, err := crypto.GenerateAdminJWT(email, secret)
	if err != nil {
		log.Fatalf("Failed to generate admin token: %v", err)
	}

	fmt.Printf("Authorization: Bearer %s\n", token)
	fmt.Printf("Expires at: %s\n", expiresAt.Format(time.RFC3339))
}
