package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/arcmarket/arc-api/internal/apperr"
	"github.com/arcmarket/arc-api/internal/config"
	"github.com/arcmarket/arc-api/internal/models"
)

// Claims represents the JWT claims for an authenticated wallet
type Claims struct {
	Wallet string `json:"wallet"`
	jwt.RegisteredClaims
}

// AuthService handles wallet-signature login and JWT issuance
type AuthService struct {
	cfg     config.AuthConfig
	persons PersonStore
	wallet  *WalletService
}

// NewAuthService creates a new AuthService
func NewAuthService(cfg config.AuthConfig, persons PersonStore, wallet *WalletService) *AuthService {
	return &AuthService{
		cfg:     cfg,
		persons: persons,
		wallet:  wallet,
	}
}

// AuthenticateWithWallet verifies a signed login message and returns a
// token for the wallet. A wallet seen for the first time gets a Person
// record created on the spot.
func (s *AuthService) AuthenticateWithWallet(req models.WalletAuthRequest) (*models.AuthToken, error) {
	if req.Address == "" || req.Signature == "" || req.Message == "" {
		return nil, apperr.Validation("address, signature and message are required")
	}
	if !s.wallet.IsAddressValid(req.Address) {
		return nil, apperr.Validation("invalid wallet address")
	}

	valid, err := s.wallet.VerifySignature(req.Address, req.Message, req.Signature)
	if err != nil {
		return nil, apperr.Validation("signature verification failed")
	}
	if !valid {
		return nil, apperr.Validation("signature does not match wallet address")
	}

	wallet := strings.ToLower(req.Address)
	person, err := s.persons.GetByWallet(wallet)
	if err != nil {
		return nil, apperr.Unavailable(err)
	}
	if person == nil {
		person = &models.Person{Wallet: wallet}
		if err := s.persons.Create(person); err != nil {
			return nil, apperr.Internal(err)
		}
	}

	token, expiresAt, err := s.generateToken(wallet)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &models.AuthToken{
		Token:     token,
		ExpiresAt: expiresAt,
		Person:    person,
	}, nil
}

// ValidateToken validates a JWT token and returns the wallet it was
// issued to
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.cfg.JWTSecret), nil
	})

	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	return claims.Wallet, nil
}

// generateToken generates a JWT token for a wallet
func (s *AuthService) generateToken(wallet string) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(s.cfg.JWTExpiration) * time.Hour)

	claims := &Claims{
		Wallet: wallet,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "arc-api",
			Subject:   wallet,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}
