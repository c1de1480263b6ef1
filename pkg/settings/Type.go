package settings

import (
	"context"
)

// Flat is the host's persisted key/value form of a repository's mirror settings.
type Flat map[string]string

type MirrorTarget struct {
	Url      string `json:"url" yaml:"url" validate:"required" diff:"url"`
	Username string `json:"username" yaml:"username" diff:"username"`
	Password string `json:"-" yaml:"-" diff:"-"`
	Index    int    `json:"index" yaml:"index" diff:"index"`
}

// Store persists Flat settings per repository. Replace swaps the whole key set of a repository.
type Store interface {
	Get(ctx context.Context, repository string) (Flat, error)
	Replace(ctx context.Context, repository string, flat Flat) error
}

type Encrypter interface {
	Encrypt(plaintext string) (string, error)
}
