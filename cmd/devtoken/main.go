// Command devtoken prints a signed bearer token for local testing against the API.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"eventplanner/config"
	"eventplanner/internal/adapters/auth"
	"eventplanner/internal/domain"
)

func main() {
	userID := flag.String("user", "organizer-1", "subject (user ID) of the token")
	email := flag.String("email", "organizer@example.com", "email claim")
	roles := flag.String("roles", domain.RoleOrganizer, "comma separated roles")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	token, err := auth.NewJWTIssuer(cfg.JWTSecret).Issue(*userID, *email, strings.Split(*roles, ","), *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "issue token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
