package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_service_mock.go -package=mock

// CipherService is the cipher engine of the protocol: every encrypted
// field that crosses the wire goes through it. One algorithm only —
// AES-256 in CBC mode with PKCS#7 padding.
//
// Each Encrypt/Decrypt call builds its own single-use transform bound to
// the given IV; transforms are never cached or reused across IVs. Callers
// generate a fresh nonce per request and reuse it for every field of that
// request, which is what the companion expects.
type CipherService interface {
	// GenerateKey returns a fresh 32-byte key from the OS CSPRNG.
	GenerateKey() ([]byte, error)

	// GenerateNonce returns a fresh 16-byte IV from the OS CSPRNG.
	GenerateNonce() ([]byte, error)

	// Encrypt pads plaintext to the block size and encrypts it under
	// (key, iv). Accepts plaintext of any length, including empty.
	Encrypt(key, iv, plaintext []byte) ([]byte, error)

	// Decrypt reverses Encrypt. Fails with [ErrDecryption] if the
	// ciphertext length is not a multiple of the block size or the
	// padding is invalid.
	Decrypt(key, iv, ciphertext []byte) ([]byte, error)
}

// KeyStore seals and opens shared keys for persistence at rest.
type KeyStore interface {
	// Seal encrypts key under a passphrase-derived KEK and returns an
	// opaque base64 blob safe to store on disk.
	Seal(key []byte, passphrase string) (string, error)

	// Open reverses Seal. Returns [ErrWrongPassphrase] if the blob does
	// not authenticate under the supplied passphrase.
	Open(sealed string, passphrase string) ([]byte, error)
}
