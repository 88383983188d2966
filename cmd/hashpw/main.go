package main

import (
	"flag"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// Prints a bcrypt hash for a password, handy when rotating the demo
// account passwords set via env.
func main() {
	password := flag.String("password", "", "password to hash")
	flag.Parse()

	if *password == "" {
		log.Fatal("❌ usage: hashpw -password <password>")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	log.Printf("✅ Hash: %s", string(hashed))
}
