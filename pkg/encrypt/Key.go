package encrypt

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

func GenerateKey() (string, error) {
	key := make([]byte, 32)

	if _, err := rand.Read(key); err != nil {
		return "", err
	}

	return hex.EncodeToString(key), nil
}

func WriteKey(path string, key string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(err, "failed to create key directory")
	}

	return errors.Wrap(os.WriteFile(path, []byte(key+"\n"), 0600), "failed to write key file")
}

func ReadKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}

// LoadOrCreateKey reads the key at path, generating and storing a new one when the file does not exist.
func LoadOrCreateKey(path string) (string, error) {
	key, err := ReadKey(path)

	if err == nil {
		return key, nil
	}

	if !os.IsNotExist(err) {
		return "", errors.Wrapf(err, "failed to read key file %s", path)
	}

	key, err = GenerateKey()
	if err != nil {
		return "", err
	}

	if err = WriteKey(path, key); err != nil {
		return "", err
	}

	return key, nil
}
