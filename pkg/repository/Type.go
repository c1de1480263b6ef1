package repository

import "errors"

var (
	ErrInvalidName = errors.New("invalid repository name")
	ErrNotFound    = errors.New("repository not found")
)

// Repository is the primary repository a trigger refers to.
type Repository struct {
	Name string
	Path string
}

// Resolver maps repository names to directories below Root.
type Resolver struct {
	Root   string
	Suffix string
}
