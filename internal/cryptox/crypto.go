// Package cryptox seals small secrets (the bearer token) for storage at
// rest. Keys are derived with argon2id from a per-install random secret
// file, and values are encrypted with AES-GCM.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/econdash/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	saltSize   = 16
	secretSize = 32
	nonceSize  = 12
	keySize    = 32
)

var ErrMalformedSealed = errors.New("malformed sealed value")

// DeriveKey stretches the raw secret into an AES-256 key.
func DeriveKey(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, keySize)
}

// LoadOrCreateKey reads the install secret from path, generating and
// persisting one (0600) on first use, and returns the derived key.
// The file layout is salt(16) || secret(32).
func LoadOrCreateKey(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		raw = common.GenerateRandByteArray(saltSize + secretSize)
		if err := os.WriteFile(path, raw, 0o600); err != nil {
			return nil, fmt.Errorf("write secret file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("read secret file: %w", err)
	}
	if len(raw) != saltSize+secretSize {
		return nil, fmt.Errorf("secret file %s: unexpected size %d", path, len(raw))
	}
	return DeriveKey(raw[saltSize:], raw[:saltSize]), nil
}

// Seal encrypts plaintext with AES-GCM under key and returns
// nonce || ciphertext as a single blob.
func Seal(plaintext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	nonce := common.GenerateRandByteArray(nonceSize)
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts a blob produced by Seal.
func Open(sealed, key []byte) ([]byte, error) {
	if len(sealed) < nonceSize {
		return nil, ErrMalformedSealed
	}
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	plaintext, err := gcm.Open(nil, sealed[:nonceSize], sealed[nonceSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("open sealed value: %w", err)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}
	return gcm, nil
}
