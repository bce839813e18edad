package services

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// WalletService verifies wallet ownership through signed login messages
type WalletService struct{}

// NewWalletService creates a new WalletService
func NewWalletService() *WalletService {
	return &WalletService{}
}

// VerifySignature verifies that signature over message was produced by
// the key behind address. 64-byte signatures are treated as Schnorr
// (the address carries the x-only public key); anything else as a
// compact recoverable ECDSA signature whose recovered key must derive
// the address.
func (s *WalletService) VerifySignature(address, message, signature string) (bool, error) {
	sigBytes, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return false, fmt.Errorf("invalid signature format: %w", err)
	}

	if len(sigBytes) == schnorr.SignatureSize {
		return s.verifySchnorrSignature(address, message, sigBytes)
	}

	return s.verifyECDSASignature(address, message, sigBytes)
}

// verifyECDSASignature recovers the signing key from a compact
// signature and checks that it derives the claimed address
func (s *WalletService) verifyECDSASignature(address, message string, sigBytes []byte) (bool, error) {
	msgHash := chainhash.HashB([]byte(message))

	pubKey, _, err := ecdsa.RecoverCompact(sigBytes, msgHash)
	if err != nil {
		return false, fmt.Errorf("failed to recover public key: %w", err)
	}

	derived := s.DeriveAddress(pubKey)
	return strings.EqualFold(derived, address), nil
}

// verifySchnorrSignature verifies a Schnorr signature against the
// x-only public key encoded in the address
func (s *WalletService) verifySchnorrSignature(address, message string, sigBytes []byte) (bool, error) {
	msgHash := chainhash.HashB([]byte(message))

	sig, err := schnorr.ParseSignature(sigBytes)
	if err != nil {
		return false, fmt.Errorf("failed to parse Schnorr signature: %w", err)
	}

	keyBytes, err := hex.DecodeString(strings.TrimPrefix(address, "0x"))
	if err != nil {
		return false, fmt.Errorf("invalid address format: %w", err)
	}

	pubKey, err := schnorr.ParsePubKey(keyBytes)
	if err != nil {
		return false, fmt.Errorf("failed to parse public key: %w", err)
	}

	return sig.Verify(msgHash, pubKey), nil
}

// DeriveAddress derives the platform wallet address for a public key:
// the trailing 20 bytes of the hashed compressed key, hex encoded with
// a 0x prefix
func (s *WalletService) DeriveAddress(pubKey *btcec.PublicKey) string {
	digest := chainhash.HashB(pubKey.SerializeCompressed())
	return "0x" + hex.EncodeToString(digest[len(digest)-20:])
}

// GenerateMessageToSign generates a login message for wallet signature.
// The timestamp limits replay of captured signatures.
func (s *WalletService) GenerateMessageToSign(address string) string {
	return fmt.Sprintf("Sign this message to authenticate with ARC: %s at %d", address, time.Now().Unix())
}

// IsAddressValid checks the platform address format
func (s *WalletService) IsAddressValid(address string) bool {
	if !strings.HasPrefix(address, "0x") {
		return false
	}
	body := strings.TrimPrefix(address, "0x")
	if len(body) != 40 && len(body) != 64 {
		return false
	}
	_, err := hex.DecodeString(body)
	return err == nil
}
