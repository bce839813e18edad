package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAddressValid(t *testing.T) {
	svc := NewWalletService()

	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{"derived address", "0x" + strings.Repeat("ab", 20), true},
		{"x-only pubkey address", "0x" + strings.Repeat("cd", 32), true},
		{"missing prefix", strings.Repeat("ab", 20), false},
		{"wrong length", "0xabcdef", false},
		{"not hex", "0x" + strings.Repeat("zz", 20), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.IsAddressValid(tt.address))
		})
	}
}

func TestVerifySignatureRejectsGarbage(t *testing.T) {
	svc := NewWalletService()

	_, err := svc.VerifySignature("0x"+strings.Repeat("ab", 20), "hello", "not-hex")
	require.Error(t, err)

	// 64 bytes routes to the Schnorr path, which needs an x-only key
	_, err = svc.VerifySignature("0x"+strings.Repeat("ab", 20), "hello", strings.Repeat("00", 64))
	require.Error(t, err)
}

func TestGenerateMessageToSign(t *testing.T) {
	svc := NewWalletService()
	address := "0x" + strings.Repeat("ab", 20)

	message := svc.GenerateMessageToSign(address)
	assert.Contains(t, message, address)
}
