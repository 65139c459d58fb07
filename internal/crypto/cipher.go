// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// KeySize is the shared key length in bytes (AES-256).
	KeySize = 32

	// NonceSize is the IV length in bytes (one AES block).
	NonceSize = aes.BlockSize
)

// aesCBCService is the private implementation of [CipherService].
type aesCBCService struct{}

// NewCipherService constructs the AES-256-CBC [CipherService].
func NewCipherService() CipherService {
	return &aesCBCService{}
}

// GenerateKey implements [CipherService]. It reads 32 random bytes from
// the OS CSPRNG. Returns an error if the random read fails.
func (s *aesCBCService) GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// GenerateNonce implements [CipherService]. It reads one block of random
// bytes from the OS CSPRNG. Returns an error if the random read fails.
func (s *aesCBCService) GenerateNonce() ([]byte, error) {
	iv := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

// Encrypt implements [CipherService].
func (s *aesCBCService) Encrypt(key, iv, plaintext []byte) ([]byte, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	out := make([]byte, len(padded))
	// a fresh single-use encrypter bound to this IV
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	return out, nil
}

// Decrypt implements [CipherService].
func (s *aesCBCService) Decrypt(key, iv, ciphertext []byte) ([]byte, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a multiple of the block size", ErrDecryption, len(ciphertext))
	}

	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)

	return pkcs7Unpad(out, aes.BlockSize)
}

func newBlock(key, iv []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeySize, len(key))
	}
	if len(iv) != NonceSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNonceSize, len(iv))
	}
	return aes.NewCipher(key)
}

func pkcs7Pad(in []byte, size int) []byte {
	n := size - len(in)%size
	return append(append([]byte(nil), in...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(in []byte, size int) ([]byte, error) {
	if len(in) == 0 || len(in)%size != 0 {
		return nil, fmt.Errorf("%w: bad padded length %d", ErrDecryption, len(in))
	}

	n := int(in[len(in)-1])
	if n == 0 || n > size {
		return nil, fmt.Errorf("%w: bad padding byte %d", ErrDecryption, n)
	}
	for _, b := range in[len(in)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: inconsistent padding", ErrDecryption)
		}
	}

	return in[:len(in)-n], nil
}
