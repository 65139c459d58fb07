// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// keyStore is the private implementation of [KeyStore]. The shared key is
// sealed with AES-GCM under a KEK derived from the passphrase via
// Argon2id; the random salt travels inside the blob, so the only secret a
// user has to remember is the passphrase.
type keyStore struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyStore constructs a [KeyStore] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyStore() KeyStore {
	return &keyStore{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

const saltSize = 16

// Seal implements [KeyStore]. The blob layout is salt || nonce ||
// ciphertext, base64-encoded for safe storage in the database.
func (k *keyStore) Seal(key []byte, passphrase string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := k.newGCM(passphrase, salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ct := gcm.Seal(nil, nonce, key, nil)
	blob := append(append(salt, nonce...), ct...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [KeyStore].
func (k *keyStore) Open(sealed string, passphrase string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return nil, fmt.Errorf("decode sealed key: %w", err)
	}
	if len(blob) < saltSize {
		return nil, fmt.Errorf("%w: sealed key too short", ErrWrongPassphrase)
	}

	salt, rest := blob[:saltSize], blob[saltSize:]
	gcm, err := k.newGCM(passphrase, salt)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return nil, fmt.Errorf("%w: sealed key too short", ErrWrongPassphrase)
	}

	nonce, ct := rest[:nonceSize], rest[nonceSize:]
	key, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrongPassphrase, err)
	}

	return key, nil
}

func (k *keyStore) newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	kek := argon2.IDKey([]byte(passphrase), salt, k.argonTime, k.argonMemory, k.argonThreads, k.argonKeyLen)

	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}
