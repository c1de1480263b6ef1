package encrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

func New(keyString string) (*Codec, error) {
	key, err := hex.DecodeString(keyString)

	if err != nil || len(key) != 32 {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Codec{
		aead: aesGCM,
	}, nil
}

// Encrypt returns hex(nonce || ciphertext). The empty password stays empty so callers can tell
// "no password configured" apart without decrypting.
func (c *Codec) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return fmt.Sprintf("%x", ciphertext), nil
}

func (c *Codec) Decrypt(encrypted string) (string, error) {
	if encrypted == "" {
		return "", nil
	}

	enc, err := hex.DecodeString(encrypted)
	if err != nil {
		return "", &DecryptionError{Err: err}
	}

	nonceSize := c.aead.NonceSize()

	if nonceSize > len(enc) {
		return "", &DecryptionError{Err: errors.New("ciphertext too short")}
	}

	nonce, ciphertext := enc[:nonceSize], enc[nonceSize:]

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", &DecryptionError{Err: err}
	}

	return string(plaintext), nil
}
