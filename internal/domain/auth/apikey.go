// Package auth defines API key identity for the back-office panels.
package auth

import "context"

// APIKeyInfo holds the identity and scope data for a validated API key.
// Scopes map to the role-specific panels (orders, delivery, production,
// billing, logistics).
type APIKeyInfo struct {
	ID      string
	KeyHash string
	Name    string
	Scopes  []string
}

// Repository provides lookup of API keys by their HMAC hash.
type Repository interface {
	FindByHash(ctx context.Context, hash string) (*APIKeyInfo, error)
}
