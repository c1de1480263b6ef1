package encrypt

import (
	"sync"
)

var (
	defaultMu    sync.RWMutex
	defaultCodec *Codec
)

// Init sets the process-wide codec. It must run exactly once during startup, before any trigger fires.
func Init(keyString string) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultCodec != nil {
		return ErrAlreadyInitialized
	}

	codec, err := New(keyString)
	if err != nil {
		return err
	}

	defaultCodec = codec
	return nil
}

// Default returns the process-wide codec or ErrNotInitialized.
func Default() (*Codec, error) {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	if defaultCodec == nil {
		return nil, ErrNotInitialized
	}

	return defaultCodec, nil
}

func Encrypt(plaintext string) (string, error) {
	codec, err := Default()
	if err != nil {
		return "", err
	}

	return codec.Encrypt(plaintext)
}

func Decrypt(encrypted string) (string, error) {
	codec, err := Default()
	if err != nil {
		return "", err
	}

	return codec.Decrypt(encrypted)
}
