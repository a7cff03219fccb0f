package models

import (
	"time"

	"golang.org/x/oauth2"
)

// Credential is the single calendar-owner OAuth token. Exactly one
// exists process-wide; the auth flow writes it, every booking reads it.
type Credential struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	Expiry       time.Time `json:"expiry"`
	Scope        string    `json:"scope"`
	TokenType    string    `json:"token_type"`
	IssuedAt     time.Time `json:"issued_at"`
}

// Token converts the stored credential into the oauth2 token the Google
// client libraries expect.
func (c *Credential) Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		Expiry:       c.Expiry,
		TokenType:    c.TokenType,
	}
}

// CredentialFromToken builds a Credential from a freshly exchanged or
// refreshed oauth2 token, stamping the issue time.
func CredentialFromToken(tok *oauth2.Token) *Credential {
	scope, _ := tok.Extra("scope").(string)
	return &Credential{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		Expiry:       tok.Expiry,
		Scope:        scope,
		TokenType:    tok.TokenType,
		IssuedAt:     time.Now(),
	}
}
