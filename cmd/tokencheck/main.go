// cmd/tokencheck/main.go
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"meetingbot/models"
	"meetingbot/services"
)

// tokencheck inspects the stored calendar-owner credential and can
// refresh it out of band. The web path never refreshes; an expired
// token simply surfaces as a booking error in the chat reply.
func main() {
	refresh := flag.Bool("refresh", false, "refresh the access token and save it back")
	flag.Parse()

	store, err := services.NewCredentialStore()
	if err != nil {
		log.Fatalf("Failed to set up credential store: %v", err)
	}

	cred, err := store.Load()
	if err != nil {
		log.Fatalf("No usable credential: %v", err)
	}

	log.Printf("Token type:    %s", cred.TokenType)
	log.Printf("Scope:         %s", cred.Scope)
	log.Printf("Issued at:     %s", cred.IssuedAt.Format(time.RFC3339))
	log.Printf("Expires:       %s", cred.Expiry.Format(time.RFC3339))
	if time.Now().After(cred.Expiry) {
		log.Printf("Status:        EXPIRED")
	} else {
		log.Printf("Status:        valid for %s", time.Until(cred.Expiry).Round(time.Second))
	}

	if !*refresh {
		return
	}

	if cred.RefreshToken == "" {
		log.Fatal("Credential has no refresh token; re-run the login flow")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := services.NewGoogleOAuthConfig()
	tok, err := cfg.TokenSource(ctx, cred.Token()).Token()
	if err != nil {
		log.Fatalf("Failed to refresh token: %v", err)
	}

	fresh := models.CredentialFromToken(tok)
	if fresh.RefreshToken == "" {
		fresh.RefreshToken = cred.RefreshToken
	}
	if fresh.Scope == "" {
		fresh.Scope = cred.Scope
	}

	if err := store.Save(fresh); err != nil {
		log.Fatalf("Failed to save refreshed credential: %v", err)
	}
	log.Printf("Refreshed; new expiry %s", fresh.Expiry.Format(time.RFC3339))
}
