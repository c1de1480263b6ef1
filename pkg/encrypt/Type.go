package encrypt

import (
	"crypto/cipher"
	"errors"
)

var (
	ErrNotInitialized     = errors.New("credential codec used before initialization")
	ErrAlreadyInitialized = errors.New("credential codec is already initialized")
	ErrInvalidKey         = errors.New("encryption key must be 32 bytes hex encoded")
)

// Codec encrypts and decrypts stored mirror passwords with AES-256-GCM.
// The AEAD is built once in New and only read afterwards, so a Codec is safe for concurrent use.
type Codec struct {
	aead cipher.AEAD
}

// DecryptionError is returned when a stored ciphertext cannot be opened with the codec key.
type DecryptionError struct {
	Err error
}

func (e *DecryptionError) Error() string {
	return "failed to decrypt password: " + e.Err.Error()
}

func (e *DecryptionError) Unwrap() error {
	return e.Err
}
