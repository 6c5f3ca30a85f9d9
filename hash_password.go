//go:build ignore

// Generates the bcrypt hash for ADMIN_PASSWORD_HASH.
//
//	go run hash_password.go 'your-password'
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: go run hash_password.go <password>")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("could not hash password: %v", err)
	}
	fmt.Println(string(hash))
}
