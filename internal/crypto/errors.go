package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when a key is not 32 bytes long.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when an IV is not one AES block
	// long.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrDecryption is returned when ciphertext is malformed: its length
	// is not a multiple of the block size, or the padding is invalid.
	ErrDecryption = errors.New("decryption failed")

	// ErrWrongPassphrase is returned by the keystore when a sealed key
	// cannot be opened with the supplied passphrase.
	ErrWrongPassphrase = errors.New("wrong passphrase")
)
