package models

import (
	"time"
)

// Person represents a wallet-addressed marketplace identity
type Person struct {
	ID            string    `json:"id" db:"id"`
	Wallet        string    `json:"wallet" db:"wallet"`
	Name          string    `json:"name" db:"name"`
	PhotoURL      string    `json:"photoUrl" db:"photo_url"`
	BackgroundURL string    `json:"backgroundUrl" db:"background_url"`
	Email         string    `json:"email,omitempty" db:"email"`
	JoinedDate    time.Time `json:"joinedDate" db:"joined_date"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// CreatePersonRequest represents a request to register a person
type CreatePersonRequest struct {
	Wallet        string `json:"wallet"`
	Name          string `json:"name"`
	PhotoURL      string `json:"photoUrl"`
	BackgroundURL string `json:"backgroundUrl"`
	Email         string `json:"email"`
}

// UpdatePersonRequest represents a profile update
type UpdatePersonRequest struct {
	Name          *string `json:"name,omitempty"`
	PhotoURL      *string `json:"photoUrl,omitempty"`
	BackgroundURL *string `json:"backgroundUrl,omitempty"`
	Email         *string `json:"email,omitempty"`
}

// WalletAuthRequest represents a request to authenticate with a wallet
type WalletAuthRequest struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
	Message   string `json:"message"`
}

// AuthToken represents the authentication token response
type AuthToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Person    *Person   `json:"person,omitempty"`
}
