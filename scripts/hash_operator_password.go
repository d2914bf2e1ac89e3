package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// Generates the bcrypt hash the server expects in OPERATOR_PASSWORD_HASH.
// The admin schema endpoints only accept tokens issued against this hash.
func main() {
	// Parse command line flags
	password := flag.String("password", "", "Operator password to hash")
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	if *password == "" {
		log.Fatal("Usage: go run scripts/hash_operator_password.go -password <password>")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), *cost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	fmt.Printf("✓ Operator password hash generated!\n")
	fmt.Printf("OPERATOR_PASSWORD_HASH=%s\n", string(hash))
	fmt.Println("\nExport it and request a token:")
	fmt.Printf("curl -X POST http://localhost:8080/api/v1/auth/token \\\n")
	fmt.Printf("  -H 'Content-Type: application/json' \\\n")
	fmt.Printf("  -d '{\"password\": \"<your password>\"}'\n")
}
