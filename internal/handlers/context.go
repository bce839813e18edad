package handlers

import (
	"context"
)

// Context keys
type contextKey string

const (
	// WalletKey is the key for the authenticated wallet in the context
	WalletKey contextKey = "wallet"
)

// NewContextWithWallet adds an authenticated wallet to the context
func NewContextWithWallet(ctx context.Context, wallet string) context.Context {
	return context.WithValue(ctx, WalletKey, wallet)
}

// WalletFromContext extracts the authenticated wallet from the context
func WalletFromContext(ctx context.Context) (string, bool) {
	wallet, ok := ctx.Value(WalletKey).(string)
	return wallet, ok
}
