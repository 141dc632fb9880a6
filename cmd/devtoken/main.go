// Command devtoken prints a signed access token for local testing.
//
//	go run ./cmd/devtoken -user 42 -role provider
package main

import (
	"flag"
	"fmt"
	"os"

	"tourism-reservation/config"
	"tourism-reservation/internal/middleware"
	"tourism-reservation/internal/model"
)

func main() {
	cfg := config.LoadConfig()

	userID := flag.Int("user", 1, "user id placed in the token subject")
	role := flag.String("role", string(model.RoleUser), "role claim: user, provider or admin")
	ttl := flag.Duration("ttl", cfg.Auth.TokenTTL, "token lifetime")
	secret := flag.String("secret", cfg.Auth.JWTSecret, "signing secret, defaults to JWT_SECRET")
	flag.Parse()

	caller := model.Caller{ID: *userID, Role: model.Role(*role)}
	if caller.ID <= 0 || !caller.Role.IsValid() {
		fmt.Fprintln(os.Stderr, "user must be positive and role one of user, provider, admin")
		os.Exit(2)
	}

	token, err := middleware.SignToken(*secret, caller, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sign token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
